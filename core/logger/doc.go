// Package logger builds the application's zap logger.
//
// The controller logs structured JSON in production and colored console
// output during development; the encoding and minimum level come from the
// log section of the configuration. Key names (level, time, message) are
// pinned so collectors keep working when the encoding changes.
//
// # Request Correlation
//
// WithRayID pulls the request's RayID out of the Fiber context and attaches
// it as a field, so every log line written while serving a request can be
// matched to the X-Ray-Id header the client saw.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Controller started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
