// Package wifi reads wireless link statistics from the kernel.
//
// It parses /proc/net/wireless to report the signal level of the host's
// wireless interface. The link is an optional collaborator: a wired box or a
// stripped-down container simply has no readings, and callers get a sentinel
// value instead of an error.
//
// # Monitor
//
// The Monitor reads on demand and holds no state between calls. Readings
// returns the parsed per-interface statistics; SignalStrength condenses them
// to the single dBm figure the status endpoint reports.
//
// # Usage
//
//	monitor := wifi.NewMonitor(cfg.Wifi)
//	strength := monitor.SignalStrength() // 0 when no wireless link
package wifi
