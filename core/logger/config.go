package logger

// Config holds logger configuration.
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoding: "json" for production, "console" for development.
	Format string `mapstructure:"format" default:"json"`
}
