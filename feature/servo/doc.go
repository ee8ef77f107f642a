// Package servo implements the servo control feature.
//
// It owns the controller state machine: validating position commands, driving
// the actuator, running the safety watchdog, and reporting status.
//
// # Concurrency
//
// All state lives on a single control loop goroutine (Service.Run). HTTP
// handlers submit commands and snapshot requests over channels and wait for
// the loop's reply, so there is exactly one writer and no locks.
//
// # Safety Watchdog
//
// A servo left off-center under load draws holding current indefinitely. When
// no command arrives for the configured timeout while the servo sits away
// from neutral, the loop drives it back to 90 degrees. The correction goes
// through the same actuation path as a commanded move and fires at most once
// per excursion.
//
// # Components
//
//   - Service: the control loop (validation, actuation, watchdog, snapshots).
//   - Handler: exposes the HTTP endpoints.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /servo : move the servo (JSON: {"position": 0-180}).
//   - GET /status : current position, uptime and wifi signal strength.
package servo
