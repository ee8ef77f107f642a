package servo

import (
	"context"
	"time"

	"servo-controller/core/actuator"
	"servo-controller/core/utils"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// LinkMonitor reports the host's wireless signal strength in dBm.
type LinkMonitor interface {
	SignalStrength() int
}

type applyRequest struct {
	payload []byte
	reply   chan applyResult
}

type applyResult struct {
	position int
	err      error
}

type stateRequest struct {
	reply chan State
}

// Service is the servo controller. A single goroutine (Run) owns all state:
// handlers queue work over channels and the loop applies commands, watchdog
// corrections and snapshots one at a time, in arrival order.
type Service struct {
	driver actuator.Driver
	link   LinkMonitor
	clock  clock.Clock
	logger *zap.Logger
	cfg    Config

	applyCh chan applyRequest
	stateCh chan stateRequest

	// Loop state. Only Run touches these after construction.
	position      int
	lastCommandAt time.Time
	mode          WatchdogMode
	startedAt     time.Time
}

// NewService creates the controller service.
func NewService(driver actuator.Driver, link LinkMonitor, cfg Config, logger *zap.Logger, clk clock.Clock) *Service {
	// Ensure usable watchdog settings if not set
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 250 * time.Millisecond
	}

	return &Service{
		driver:  driver,
		link:    link,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
		applyCh: make(chan applyRequest),
		stateCh: make(chan stateRequest),
	}
}

// Run starts the control loop and blocks until ctx is cancelled. The servo is
// driven to neutral once on startup.
func (s *Service) Run(ctx context.Context) error {
	s.startedAt = s.clock.Now()
	s.actuate(ctx, NeutralPosition)
	s.lastCommandAt = s.clock.Now()
	s.mode = ModeSettled

	s.logger.Info("Servo controller ready",
		zap.Int("position", s.position),
		zap.Duration("watchdog_timeout", s.cfg.Timeout),
	)

	ticker := s.clock.Ticker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case req := <-s.applyCh:
			req.reply <- s.handleApply(ctx, req.payload)
		case req := <-s.stateCh:
			req.reply <- s.snapshot()
		case <-ticker.C:
			s.checkWatchdog(ctx)
		case <-ctx.Done():
			s.logger.Info("Servo controller stopping")
			return nil
		}
	}
}

// Apply validates a raw command payload and, if valid, moves the servo.
// It returns the position actually applied.
func (s *Service) Apply(ctx context.Context, payload []byte) (int, error) {
	req := applyRequest{payload: payload, reply: make(chan applyResult, 1)}

	select {
	case s.applyCh <- req:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res.position, res.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Snapshot returns the controller's current state.
func (s *Service) Snapshot(ctx context.Context) (State, error) {
	req := stateRequest{reply: make(chan State, 1)}

	select {
	case s.stateCh <- req:
	case <-ctx.Done():
		return State{}, ctx.Err()
	}

	select {
	case st := <-req.reply:
		return st, nil
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
}

// handleApply runs on the loop goroutine. Rejected commands change nothing.
func (s *Service) handleApply(ctx context.Context, payload []byte) applyResult {
	pos, err := parseCommand(payload)
	if err != nil {
		s.logger.Warn("Rejected servo command", zap.Error(err))
		return applyResult{err: err}
	}

	applied := s.actuate(ctx, pos)
	s.lastCommandAt = s.clock.Now()
	if applied == NeutralPosition {
		s.mode = ModeSettled
	} else {
		s.mode = ModeActive
	}

	s.logger.Info("Servo moved",
		zap.Int("position", applied),
		zap.String("watchdog", s.mode.String()),
	)
	return applyResult{position: applied}
}

// actuate clamps the angle, writes it to the driver and records it as the
// current position. Driver failures are logged; the recorded position
// advances regardless so the watchdog keeps an accurate view of intent.
func (s *Service) actuate(ctx context.Context, position int) int {
	position = utils.Clamp(position, MinPosition, MaxPosition)
	if err := s.driver.Move(ctx, position); err != nil {
		s.logger.Error("Servo write failed", zap.Int("position", position), zap.Error(err))
	}
	s.position = position
	return position
}

// checkWatchdog recenters the servo when it has sat away from neutral longer
// than the timeout with no commands arriving. It fires at most once per
// excursion: after the correction the watchdog is settled until the next
// off-neutral command.
func (s *Service) checkWatchdog(ctx context.Context) {
	if s.mode != ModeActive {
		return
	}

	elapsed := s.clock.Now().Sub(s.lastCommandAt)
	if elapsed <= s.cfg.Timeout {
		return
	}

	s.logger.Warn("Command timeout - returning to center",
		zap.Duration("idle", elapsed),
		zap.Int("from", s.position),
	)
	s.actuate(ctx, NeutralPosition)
	s.lastCommandAt = s.clock.Now()
	s.mode = ModeSettled
}

// snapshot runs on the loop goroutine.
func (s *Service) snapshot() State {
	return State{
		Position:      s.position,
		Mode:          s.mode,
		LastCommandAt: s.lastCommandAt,
		Uptime:        s.clock.Now().Sub(s.startedAt),
		WifiStrength:  s.link.SignalStrength(),
	}
}
