package wifi

// Config holds configuration for the wireless link monitor.
type Config struct {
	// Interface pins readings to one interface (e.g. wlan0). Empty takes the first.
	Interface string `mapstructure:"interface" default:""`
	// ProcPath is the kernel wireless statistics file.
	ProcPath string `mapstructure:"proc_path" default:"/proc/net/wireless"`
}
