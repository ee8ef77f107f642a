package tracking

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func newTestTracker() (*Tracker, *clock.Mock) {
	mock := clock.NewMock()
	return NewTracker(wideRange, 3*time.Second, mock), mock
}

// TestTracker_Observe checks that detections produce stepped moves and
// cancel the return-home timer.
func TestTracker_Observe(t *testing.T) {
	t.Run("StepsTowardTarget", func(t *testing.T) {
		tracker, _ := newTestTracker()

		// Target far right of center wants 61 degrees; one frame moves 2.
		next, move := tracker.Observe(420, 90)
		assert.True(t, move)
		assert.Equal(t, 88, next)
	})

	t.Run("HoldsInsideDeadZone", func(t *testing.T) {
		tracker, _ := newTestTracker()

		next, move := tracker.Observe(330, 90)
		assert.False(t, move)
		assert.Equal(t, 90, next)
	})

	t.Run("ResendsAtRangeLimit", func(t *testing.T) {
		tracker, _ := newTestTracker()

		// Already pinned at the limit the target wants. The command is
		// still sent so the controller keeps holding against its own
		// inactivity timeout.
		next, move := tracker.Observe(639, 0)
		assert.True(t, move)
		assert.Equal(t, 0, next)
	})

	t.Run("CancelsPendingReturn", func(t *testing.T) {
		tracker, mock := newTestTracker()

		tracker.Lost(120)
		mock.Add(5 * time.Second)

		// The target reappears dead center: no move, but the timer resets.
		_, move := tracker.Observe(320, 120)
		assert.False(t, move)

		// The next disappearance has to wait out the full delay again.
		_, move = tracker.Lost(120)
		assert.False(t, move)
		mock.Add(2 * time.Second)
		_, move = tracker.Lost(120)
		assert.False(t, move)
		mock.Add(time.Second)
		next, move := tracker.Lost(120)
		assert.True(t, move)
		assert.Equal(t, 90, next)
	})
}

// TestTracker_Lost checks the return-home timer arming, expiry and the
// near-home tolerance.
func TestTracker_Lost(t *testing.T) {
	t.Run("FirstCallArmsWithoutMoving", func(t *testing.T) {
		tracker, _ := newTestTracker()

		next, move := tracker.Lost(120)
		assert.False(t, move)
		assert.Equal(t, 120, next)
	})

	t.Run("WaitsOutTheDelay", func(t *testing.T) {
		tracker, mock := newTestTracker()

		tracker.Lost(120)
		mock.Add(2999 * time.Millisecond)
		_, move := tracker.Lost(120)
		assert.False(t, move)

		mock.Add(time.Millisecond)
		next, move := tracker.Lost(120)
		assert.True(t, move)
		assert.Equal(t, 90, next)
	})

	t.Run("SkipsWhenAlreadyNearHome", func(t *testing.T) {
		tracker, mock := newTestTracker()

		tracker.Lost(91)
		mock.Add(4 * time.Second)

		// Within two degrees of home: no move, and the timer disarms.
		next, move := tracker.Lost(91)
		assert.False(t, move)
		assert.Equal(t, 91, next)

		// Disarmed means the next call starts a fresh wait even though
		// the clock has long passed the old deadline.
		_, move = tracker.Lost(50)
		assert.False(t, move)
	})

	t.Run("StopsCommandingOnceHome", func(t *testing.T) {
		tracker, mock := newTestTracker()

		tracker.Lost(120)
		mock.Add(3 * time.Second)

		next, move := tracker.Lost(120)
		assert.True(t, move)
		assert.Equal(t, 90, next)

		// The caller moved the servo home; the follow-up call disarms.
		_, move = tracker.Lost(90)
		assert.False(t, move)
	})
}

// TestTracker_Waiting checks the remaining-delay readout used for
// progress logging.
func TestTracker_Waiting(t *testing.T) {
	tracker, mock := newTestTracker()

	assert.Zero(t, tracker.Waiting())

	tracker.Lost(120)
	assert.Equal(t, 3*time.Second, tracker.Waiting())

	mock.Add(time.Second)
	assert.Equal(t, 2*time.Second, tracker.Waiting())

	mock.Add(5 * time.Second)
	assert.Zero(t, tracker.Waiting())

	tracker.Observe(320, 120)
	assert.Zero(t, tracker.Waiting())
}
