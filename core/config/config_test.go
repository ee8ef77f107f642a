package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"servo-controller/core/actuator"
	"servo-controller/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, actuator.DriverFake, cfg.Servo.Driver)
	assert.Equal(t, 18, cfg.Servo.Pin)
	assert.Equal(t, 500, cfg.Servo.MinPulseUs)
	assert.Equal(t, 2500, cfg.Servo.MaxPulseUs)
	assert.Equal(t, 5*time.Second, cfg.Watchdog.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Watchdog.PollInterval)
	assert.Equal(t, "/proc/net/wireless", cfg.Wifi.ProcPath)
	assert.True(t, cfg.Discovery.Enabled)
	assert.Equal(t, "_servo-ctrl._tcp", cfg.Discovery.Service)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVO_DRIVER", "rpio")
	t.Setenv("SERVO_PIN", "12")
	t.Setenv("WATCHDOG_TIMEOUT", "10s")
	t.Setenv("DISCOVERY_ENABLED", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, actuator.DriverRPIO, cfg.Servo.Driver)
	assert.Equal(t, 12, cfg.Servo.Pin)
	assert.Equal(t, 10*time.Second, cfg.Watchdog.Timeout)
	assert.False(t, cfg.Discovery.Enabled)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	// godotenv.Overload writes into the process environment; t.Setenv first so
	// the test framework restores the originals afterwards.
	t.Setenv("SERVO_PIN", "")
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	env := "SERVO_PIN=13\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 13, cfg.Servo.Pin)
	assert.Equal(t, "debug", cfg.Log.Level)
}
