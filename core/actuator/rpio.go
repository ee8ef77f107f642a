package actuator

import (
	"context"
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// Hardware PWM runs at 50Hz with the 20ms period split into 2000 ticks,
// so one tick of duty cycle is 10us of pulse width.
const (
	pwmFrequencyHz = 50
	pwmCycleTicks  = 2000
	pwmTickUs      = 10
)

// rpioPWMPins are the BCM pins with hardware PWM support on the Pi.
var rpioPWMPins = map[int]bool{12: true, 13: true, 18: true, 19: true}

type rpioDriver struct {
	cfg Config
	pin rpio.Pin
}

func newRPIO(cfg Config) (*rpioDriver, error) {
	if !rpioPWMPins[cfg.Pin] {
		return nil, fmt.Errorf("pin %d has no hardware PWM (use 12, 13, 18 or 19)", cfg.Pin)
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("opening gpio memory range: %w", err)
	}
	pin := rpio.Pin(cfg.Pin)
	pin.Mode(rpio.Pwm)
	pin.Freq(pwmFrequencyHz * pwmCycleTicks)
	return &rpioDriver{cfg: cfg, pin: pin}, nil
}

func (d *rpioDriver) Move(_ context.Context, angle int) error {
	duty := uint32(pulseWidth(d.cfg, angle) / pwmTickUs)
	d.pin.DutyCycle(duty, pwmCycleTicks)
	return nil
}

func (d *rpioDriver) Close() error {
	return rpio.Close()
}
