package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"servo-controller/core/actuator"
	"servo-controller/core/config"
	"servo-controller/core/discovery"
	"servo-controller/core/loader"
	"servo-controller/core/logger"
	"servo-controller/core/middleware/rayid"
	"servo-controller/core/wifi"

	"servo-controller/feature/servo"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "servo-controller/docs/swagger"
)

// @title Servo Controller API
// @version 1.0
// @description HTTP control for a WiFi pan servo with a safety watchdog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the servo controller server",
	Long:  `Starts the HTTP server, drives the servo to neutral and runs the safety watchdog.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the servo driver
		driver, err := actuator.New(cfg.Servo)
		if err != nil {
			logg.Fatal("Failed to open servo driver", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		link := wifi.NewMonitor(cfg.Wifi)
		feat := servo.NewFeature(driver, link, cfg.Watchdog, logg, clock.New())
		mgr.Register(feat)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			// Log the incoming request
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Unmatched routes answer with the usage text. Mounted after LoadAll
		// so real routes win.
		app.Use(feat.NotFoundHandler())

		// 7. Start the control loop
		runCtx, stopLoop := context.WithCancel(context.Background())
		loopDone := make(chan struct{})
		go func() {
			defer close(loopDone)
			if err := feat.Run(runCtx); err != nil {
				logg.Error("Control loop stopped", zap.Error(err))
			}
		}()

		// 8. Advertise the controller on the local network
		adv := discovery.NewAdvertiser(cfg.Discovery)
		if cfg.Discovery.Enabled {
			if port, err := strconv.Atoi(cfg.Server.Port); err != nil {
				logg.Warn("Skipping mDNS advertisement: port is not numeric", zap.String("port", cfg.Server.Port))
			} else if err := adv.Start(port, []string{"range=0-180", "neutral=90"}); err != nil {
				logg.Warn("mDNS advertisement failed", zap.Error(err))
			}
		}

		// 9. Start Server
		go func() {
			addr, err := wifi.LocalAddress()
			if err != nil {
				addr = "unknown"
			}
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("address", addr),
				zap.String("driver", cfg.Servo.Driver),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		stopLoop()
		<-loopDone
		adv.Stop()
		_ = driver.Close()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
