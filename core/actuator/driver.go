package actuator

import (
	"context"
	"fmt"
	"math"

	"servo-controller/core/utils"
)

// Servo travel in degrees. Every backend maps this range onto its pulse window.
const (
	minAngle = 0
	maxAngle = 180
)

// Default pulse window for hobby servos, in microseconds.
const (
	defaultMinPulseUs = 500
	defaultMaxPulseUs = 2500
)

// Driver moves the physical servo. Implementations translate an angle in
// degrees into whatever signal the backend hardware understands.
type Driver interface {
	// Move steers the servo to the given angle in degrees (0-180).
	Move(ctx context.Context, angle int) error
	// Close releases the underlying hardware resources.
	Close() error
}

// New creates a Driver for the configured backend.
func New(cfg Config) (Driver, error) {
	// Ensure a usable pulse window if not set
	if cfg.MinPulseUs <= 0 || cfg.MaxPulseUs <= cfg.MinPulseUs {
		cfg.MinPulseUs = defaultMinPulseUs
		cfg.MaxPulseUs = defaultMaxPulseUs
	}

	switch cfg.Driver {
	case DriverFake:
		return NewFake(), nil
	case DriverRPIO:
		return newRPIO(cfg)
	case DriverMaestro:
		return newMaestro(cfg)
	default:
		return nil, fmt.Errorf("unknown servo driver %q", cfg.Driver)
	}
}

// pulseWidth maps an angle onto the configured pulse window and returns the
// pulse width in microseconds. Angles outside the travel range are clamped.
func pulseWidth(cfg Config, angle int) int {
	angle = utils.Clamp(angle, minAngle, maxAngle)
	span := float64(cfg.MaxPulseUs - cfg.MinPulseUs)
	return cfg.MinPulseUs + int(math.Round(float64(angle)/float64(maxAngle)*span))
}
