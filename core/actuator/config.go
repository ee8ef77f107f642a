package actuator

// Driver backends.
const (
	DriverFake    = "fake"
	DriverRPIO    = "rpio"
	DriverMaestro = "maestro"
)

// Config holds configuration for the servo driver.
type Config struct {
	// Driver selects the backend (fake, rpio, maestro).
	Driver string `mapstructure:"driver" default:"fake"`
	// Pin is the BCM GPIO pin driving the servo (rpio backend).
	Pin int `mapstructure:"pin" default:"18"`
	// MinPulseUs is the pulse width in microseconds at 0 degrees.
	MinPulseUs int `mapstructure:"min_pulse_us" default:"500"`
	// MaxPulseUs is the pulse width in microseconds at 180 degrees.
	MaxPulseUs int `mapstructure:"max_pulse_us" default:"2500"`
	// SerialDevice is the serial port of the servo board (maestro backend).
	SerialDevice string `mapstructure:"serial_device" default:"/dev/ttyACM0"`
	// SerialBaud is the serial line speed (maestro backend).
	SerialBaud int `mapstructure:"serial_baud" default:"115200"`
	// Channel is the board channel the servo is wired to (maestro backend).
	Channel int `mapstructure:"channel" default:"0"`
}

// IsValidDriver checks if the configured driver is a known backend.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverFake, DriverRPIO, DriverMaestro:
		return true
	default:
		return false
	}
}
