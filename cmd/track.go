package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"servo-controller/core/client"
	"servo-controller/core/logger"
	"servo-controller/core/tracking"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the track command
	trackFrameWidth  int
	trackDeadZone    int
	trackStep        int
	trackHome        int
	trackReturnAfter time.Duration
)

// trackCmd bridges a vision pipeline to a running controller.
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Drive a controller from detection coordinates on stdin",
	Long: `Reads detections from stdin and pans the servo to keep the target centered.

One reading per line: an integer is the target's horizontal pixel center in
the camera frame, "-" (or any non-numeric line) means no target this frame.
The servo moves a few degrees per frame toward the target and returns to the
home angle after the target has been gone long enough.

Examples:
  # Pipe detector output
  detector --print-center | servo-controller track --addr http://192.168.4.1:8080

  # Manual driving from the terminal
  servo-controller track --step 10`,
	RunE: runTrack,
}

func init() {
	RootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVar(&controllerAddr, "addr", defaultControllerAddr, "Controller base URL")
	trackCmd.Flags().DurationVar(&requestTimeout, "timeout", time.Second, "Per-request timeout")
	trackCmd.Flags().IntVar(&trackFrameWidth, "frame-width", 640, "Camera frame width in pixels")
	trackCmd.Flags().IntVar(&trackDeadZone, "dead-zone", 50, "Horizontal dead zone in pixels")
	trackCmd.Flags().IntVar(&trackStep, "step", 2, "Max degrees moved per frame (0 jumps straight to the target)")
	trackCmd.Flags().IntVar(&trackHome, "home", 90, "Resting angle to return to")
	trackCmd.Flags().DurationVar(&trackReturnAfter, "return-after", 3*time.Second, "How long the target must be gone before returning home")
}

func runTrack(cmd *cobra.Command, args []string) error {
	if trackFrameWidth <= 0 {
		return fmt.Errorf("frame width must be positive, got %d", trackFrameWidth)
	}

	logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cl := client.New(controllerAddr, requestTimeout)

	// Probe the controller and pick up its actual position.
	current := trackHome
	if st, err := cl.Status(ctx); err != nil {
		logg.Warn("Controller not responding, will retry during operation", zap.Error(err))
	} else {
		current = st.Position
		logg.Info("Connected to controller",
			zap.Int("position", st.Position),
			zap.Int("wifi_strength", st.WifiStrength),
		)
	}

	// Start from a known pose.
	if applied, err := cl.SetPosition(ctx, trackHome); err != nil {
		logg.Warn("Failed to center servo", zap.Error(err))
	} else {
		current = applied
	}

	tracker := tracking.NewTracker(tracking.Planner{
		FrameWidth: trackFrameWidth,
		DeadZone:   trackDeadZone,
		Step:       trackStep,
		Home:       trackHome,
		Min:        0,
		Max:        180,
	}, trackReturnAfter, nil)

	logg.Info("Tracking from stdin",
		zap.Int("frame_width", trackFrameWidth),
		zap.Int("dead_zone", trackDeadZone),
		zap.Int("step", trackStep),
	)

	// Feed stdin through a channel so an interrupt can stop the loop even
	// while no line is arriving.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logg.Warn("Reading stdin failed", zap.Error(err))
		}
	}()

	frames := 0
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			frames++

			var next int
			var move bool
			if centerX, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				next, move = tracker.Observe(centerX, current)
			} else {
				next, move = tracker.Lost(current)
			}

			if move {
				applied, err := cl.SetPosition(ctx, next)
				if err != nil {
					logg.Warn("Command failed", zap.Error(err))
					continue
				}
				current = applied
			}

			if frames%30 == 0 {
				logg.Info("Tracking",
					zap.Int("frames", frames),
					zap.Int("position", current),
					zap.Duration("return_home_in", tracker.Waiting()),
				)
			}
		}
	}

	// Park the servo before exiting. The interrupt context is already
	// cancelled here, so the final command gets its own deadline.
	homeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := cl.SetPosition(homeCtx, trackHome); err != nil {
		logg.Warn("Failed to return servo home", zap.Error(err))
	} else {
		logg.Info("Servo returned home", zap.Int("position", trackHome))
	}

	return nil
}
