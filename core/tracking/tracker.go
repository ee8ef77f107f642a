package tracking

import (
	"time"

	"servo-controller/core/utils"

	"github.com/benbjohnson/clock"
)

// defaultReturnDelay is how long the target must be gone before the
// servo gives up and returns home.
const defaultReturnDelay = 3 * time.Second

// homeTolerance is the slack in degrees within which the servo counts
// as already home, so the return move is skipped.
const homeTolerance = 2

// Tracker layers lost-target timing on top of a Planner. It remembers
// when the target disappeared and decides when the servo should stop
// waiting and return to its home angle.
//
// Tracker is not safe for concurrent use; it belongs to a single
// tracking loop.
type Tracker struct {
	planner     Planner
	returnDelay time.Duration
	clock       clock.Clock

	// lostAt is when the target first went missing. Zero while the
	// target is visible.
	lostAt time.Time
}

// NewTracker creates a tracker around the given planner. A non-positive
// returnDelay falls back to three seconds. A nil clk uses the wall clock.
func NewTracker(planner Planner, returnDelay time.Duration, clk clock.Clock) *Tracker {
	if returnDelay <= 0 {
		returnDelay = defaultReturnDelay
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Tracker{
		planner:     planner,
		returnDelay: returnDelay,
		clock:       clk,
	}
}

// Observe reports a detection at pixel column centerX and returns the
// next angle to command. Seeing the target cancels any pending return
// home. The move flag is true even when the stepped angle equals the
// current one, because resending keeps the controller holding position.
func (t *Tracker) Observe(centerX, current int) (next int, move bool) {
	t.lostAt = time.Time{}

	target, adjust := t.planner.Target(centerX, current)
	if !adjust {
		return current, false
	}
	return StepToward(current, target, t.planner.Step), true
}

// Lost reports that no target is visible this frame and returns the next
// angle to command, if any. The first call arms the return-home timer;
// once the delay passes the tracker commands the home angle until the
// servo sits within two degrees of it.
func (t *Tracker) Lost(current int) (next int, move bool) {
	now := t.clock.Now()

	if t.lostAt.IsZero() {
		t.lostAt = now
		return current, false
	}
	if now.Sub(t.lostAt) < t.returnDelay {
		return current, false
	}

	if utils.Abs(current-t.planner.Home) <= homeTolerance {
		// Close enough. Disarm so a later disappearance restarts the wait.
		t.lostAt = time.Time{}
		return current, false
	}
	return t.planner.Home, true
}

// Waiting reports how long until the tracker will command a return home,
// or zero when the timer is not armed or has already expired.
func (t *Tracker) Waiting() time.Duration {
	if t.lostAt.IsZero() {
		return 0
	}
	remaining := t.returnDelay - t.clock.Now().Sub(t.lostAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
