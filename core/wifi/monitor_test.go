package wifi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStats = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
 wlan0: 0000   54.  -56.  -256        0      0      0      0      0        0
 wlan1: 0000   70.  -40.  -256        0      0      0      0      0        0`

func writeStats(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wireless")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMonitor_Readings(t *testing.T) {
	m := NewMonitor(Config{ProcPath: writeStats(t, sampleStats)})

	readings, err := m.Readings()

	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, Reading{Interface: "wlan0", LinkQuality: 54, LevelDBm: -56, NoiseDBm: -256}, readings[0])
	assert.Equal(t, "wlan1", readings[1].Interface)
	assert.Equal(t, -40, readings[1].LevelDBm)
}

func TestMonitor_Readings_Malformed(t *testing.T) {
	m := NewMonitor(Config{ProcPath: writeStats(t, "header\nheader\n wlan0: garbage")})

	_, err := m.Readings()

	assert.Error(t, err)
}

func TestMonitor_SignalStrength(t *testing.T) {
	t.Run("First Interface", func(t *testing.T) {
		m := NewMonitor(Config{ProcPath: writeStats(t, sampleStats)})
		assert.Equal(t, -56, m.SignalStrength())
	})

	t.Run("Named Interface", func(t *testing.T) {
		m := NewMonitor(Config{ProcPath: writeStats(t, sampleStats), Interface: "wlan1"})
		assert.Equal(t, -40, m.SignalStrength())
	})

	t.Run("Unknown Interface", func(t *testing.T) {
		m := NewMonitor(Config{ProcPath: writeStats(t, sampleStats), Interface: "wlan9"})
		assert.Equal(t, SignalUnknown, m.SignalStrength())
	})

	t.Run("No Wireless Link", func(t *testing.T) {
		// No file at all, e.g. a wired box or a container without /proc/net/wireless.
		m := NewMonitor(Config{ProcPath: filepath.Join(t.TempDir(), "missing")})
		assert.Equal(t, SignalUnknown, m.SignalStrength())
	})

	t.Run("Headers Only", func(t *testing.T) {
		m := NewMonitor(Config{ProcPath: writeStats(t, "h1\nh2")})
		assert.Equal(t, SignalUnknown, m.SignalStrength())
	})
}
