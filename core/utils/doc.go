// Package utils holds small helpers shared across the servo controller:
// tolerant type coercion for command payloads and integer range math used
// by the control loop and the tracking client.
package utils
