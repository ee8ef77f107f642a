package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// Addr returns the listen address ("" host binds all interfaces).
func (c Config) Addr() string {
	return ":" + c.Port
}
