package wifi

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SignalUnknown is the signal strength reported when the host has no readable
// wireless link. Radios report RSSI 0 when not associated.
const SignalUnknown = 0

// Reading holds the link statistics of one wireless interface.
type Reading struct {
	Interface   string
	LinkQuality int
	LevelDBm    int
	NoiseDBm    int
}

// Monitor reads wireless link statistics on demand.
type Monitor struct {
	cfg Config
}

// NewMonitor creates a Monitor for the configured statistics source.
func NewMonitor(cfg Config) *Monitor {
	if cfg.ProcPath == "" {
		cfg.ProcPath = "/proc/net/wireless"
	}
	return &Monitor{cfg: cfg}
}

// Readings parses the kernel statistics file and returns one Reading per
// associated wireless interface.
func (m *Monitor) Readings() ([]Reading, error) {
	dump, err := os.ReadFile(filepath.Clean(m.cfg.ProcPath))
	if err != nil {
		return nil, err
	}

	var result []Reading
	lines := strings.Split(strings.TrimSpace(string(dump)), "\n")
	for i, line := range lines {
		// The first two lines are column headers.
		if i < 2 {
			continue
		}
		r, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}

	return result, nil
}

func parseLine(line string) (Reading, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Reading{}, fmt.Errorf("malformed wireless stats line %q", line)
	}

	// Quality columns are printed with a trailing period (e.g. "54." "-56.").
	iface := strings.TrimRight(fields[0], ":")

	link, err := strconv.Atoi(strings.TrimRight(fields[2], "."))
	if err != nil {
		return Reading{}, fmt.Errorf("invalid link quality reading: %w", err)
	}
	level, err := strconv.Atoi(strings.TrimRight(fields[3], "."))
	if err != nil {
		return Reading{}, fmt.Errorf("invalid signal level reading: %w", err)
	}
	noise, err := strconv.Atoi(fields[4])
	if err != nil {
		return Reading{}, fmt.Errorf("invalid noise reading: %w", err)
	}

	return Reading{
		Interface:   iface,
		LinkQuality: link,
		LevelDBm:    level,
		NoiseDBm:    noise,
	}, nil
}

// SignalStrength returns the signal level in dBm for the configured interface,
// or for the first associated interface when none is configured. It returns
// SignalUnknown when the host has no readable wireless link.
func (m *Monitor) SignalStrength() int {
	readings, err := m.Readings()
	if err != nil || len(readings) == 0 {
		return SignalUnknown
	}

	if m.cfg.Interface != "" {
		for _, r := range readings {
			if r.Interface == m.cfg.Interface {
				return r.LevelDBm
			}
		}
		return SignalUnknown
	}

	return readings[0].LevelDBm
}

// LocalAddress returns the host's first non-loopback IPv4 address. Useful for
// the startup log so operators know where to point clients.
func LocalAddress() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}
	return "", errors.New("no non-loopback IPv4 address found")
}
