// Package middleware contains HTTP middleware for the Fiber application.
//
// Middleware here is transport plumbing only: nothing in this tree touches
// servo state. Each component lives in its own subpackage and is registered
// in the main application setup, ahead of the feature routes.
//
// # Components
//
//   - rayid: tags every request with a unique RayID, stored in the request
//     locals and echoed in the X-Ray-Id response header, so log lines and
//     client reports can be correlated.
package middleware
