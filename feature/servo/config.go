package servo

import "time"

// Config holds configuration for the safety watchdog.
type Config struct {
	// Timeout is how long the servo may sit away from neutral with no
	// commands arriving before the watchdog recenters it.
	Timeout time.Duration `mapstructure:"timeout" default:"5s"`
	// PollInterval is how often the watchdog checks for expiry.
	PollInterval time.Duration `mapstructure:"poll_interval" default:"250ms"`
}
