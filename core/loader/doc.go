// Package loader wires application features into the HTTP server.
//
// A feature is a self-contained module that knows its own name, whether it is
// enabled, and how to register its routes. The Manager keeps the registry:
// features are registered at startup and LoadAll mounts the enabled ones in
// registration order, so route precedence is explicit in one place.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Keeping features behind this interface lets each one (servo today, more
// later) be built and tested against a bare Fiber app in isolation.
package loader
