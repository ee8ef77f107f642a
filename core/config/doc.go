// Package config provides configuration management for the servo controller.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port)
//   - Servo: driver backend, GPIO pin, pulse window, serial port
//   - Watchdog: idle timeout and poll interval
//   - Wifi: wireless link monitor settings
//   - Discovery: mDNS advertisement settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
