// Package client provides an HTTP client for a running servo controller.
//
// It speaks the controller's wire protocol: POST /servo with a JSON
// position command and GET /status for the current state. Tracking
// commands (cmd/track, cmd/set, cmd/status) use it to drive a controller
// from another machine.
//
// # Usage Example
//
//	cl := client.New("http://192.168.4.1:8080", time.Second)
//
//	st, err := cl.Status(ctx)
//	applied, err := cl.SetPosition(ctx, 120)
//
// SetPosition clamps out-of-range angles before sending, so callers can
// hand it raw tracking output without pre-validating.
package client
