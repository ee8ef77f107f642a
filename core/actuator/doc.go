// Package actuator provides an abstraction layer for the servo hardware.
//
// It hides the signal generation details behind a small Driver interface so the
// control loop stays hardware-agnostic. Three backends are provided: Raspberry Pi
// hardware PWM, a Pololu Maestro serial board, and an in-memory fake for
// development machines.
//
// # Driver Interface
//
// The Driver interface abstracts the underlying signal path, making it easier
// to mock actuation for unit testing (as seen in core/actuator/mocks).
//
// # Backends
//
//   - fake: records moves in memory; the default on machines without hardware.
//   - rpio: drives the servo from a Raspberry Pi hardware PWM pin (12, 13, 18
//     or 19) at 50Hz using memory-mapped GPIO.
//   - maestro: issues Set Target commands to a Pololu Maestro board over serial.
//
// # Usage
//
//	driver, err := actuator.New(cfg)
//	err = driver.Move(ctx, 90)
package actuator
