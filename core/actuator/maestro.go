package actuator

import (
	"context"
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// Pololu compact protocol command byte.
const maestroCmdSetTarget = 0x84

type maestroDriver struct {
	cfg  Config
	port io.WriteCloser
}

func newMaestro(cfg Config) (*maestroDriver, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name: cfg.SerialDevice,
		Baud: cfg.SerialBaud,
	})
	if err != nil {
		return nil, fmt.Errorf("opening maestro serial port %s: %w", cfg.SerialDevice, err)
	}
	return &maestroDriver{cfg: cfg, port: port}, nil
}

// Move issues a Set Target command. The Maestro takes the target as a 14-bit
// value in quarter-microseconds, split across two 7-bit data bytes.
func (d *maestroDriver) Move(_ context.Context, angle int) error {
	target := pulseWidth(d.cfg, angle) * 4
	frame := []byte{
		maestroCmdSetTarget,
		byte(d.cfg.Channel),
		byte(target & 0x7f),
		byte((target >> 7) & 0x7f),
	}
	if _, err := d.port.Write(frame); err != nil {
		return fmt.Errorf("writing set target: %w", err)
	}
	return nil
}

func (d *maestroDriver) Close() error {
	return d.port.Close()
}
