package servo

import "time"

// Servo travel limits and resting position, in degrees.
const (
	MinPosition     = 0
	MaxPosition     = 180
	NeutralPosition = 90
)

// WatchdogMode tracks whether the safety watchdog has work to do.
type WatchdogMode uint8

const (
	// ModeSettled means the servo sits at neutral and the watchdog stays quiet.
	ModeSettled WatchdogMode = iota
	// ModeActive means the servo was commanded away from neutral and the
	// watchdog will recenter it once commands stop arriving.
	ModeActive
)

// String implements fmt.Stringer.
func (m WatchdogMode) String() string {
	switch m {
	case ModeSettled:
		return "settled"
	case ModeActive:
		return "active"
	default:
		return "unknown"
	}
}

// State is a point-in-time snapshot of the controller.
type State struct {
	// Position is the servo's current angle in degrees.
	Position int
	// Mode is the watchdog state.
	Mode WatchdogMode
	// LastCommandAt is when the actuator last moved, commanded or corrected.
	LastCommandAt time.Time
	// Uptime is the time since the control loop started.
	Uptime time.Duration
	// WifiStrength is the wireless signal level in dBm (0 when unknown).
	WifiStrength int
}
