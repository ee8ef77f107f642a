package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wideRange covers the full servo sweep on a 640px frame.
var wideRange = Planner{
	FrameWidth: 640,
	DeadZone:   50,
	Step:       2,
	Home:       90,
	Min:        0,
	Max:        180,
}

// TestPlanner_Target checks offset-to-angle geometry, the dead zone and
// range clamping.
func TestPlanner_Target(t *testing.T) {
	tests := []struct {
		name    string
		planner Planner
		centerX int
		current int
		want    int
		move    bool
	}{
		{"Centered", wideRange, 320, 90, 90, false},
		{"InsideDeadZone", wideRange, 365, 90, 90, false},
		// The dead zone is inclusive; an offset of exactly 50px holds still.
		{"DeadZoneBoundary", wideRange, 370, 90, 90, false},
		{"JustOutsideDeadZone", wideRange, 371, 90, 75, true},
		// 100px right of center at 0.28125 deg/px pans ~28 degrees left.
		{"TargetRightPansLeft", wideRange, 420, 90, 61, true},
		{"TargetLeftPansRight", wideRange, 220, 90, 118, true},
		{"ClampsHigh", wideRange, 0, 170, 180, true},
		{"ClampsLow", wideRange, 639, 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, move := tt.planner.Target(tt.centerX, tt.current)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.move, move)
		})
	}

	t.Run("NarrowRange", func(t *testing.T) {
		narrow := wideRange
		narrow.Min = 45
		narrow.Max = 135

		// Half the sweep across the same frame halves the correction.
		got, move := narrow.Target(420, 90)
		assert.True(t, move)
		assert.Equal(t, 75, got)
	})

	t.Run("ZeroFrameWidth", func(t *testing.T) {
		got, move := Planner{}.Target(480, 90)
		assert.False(t, move)
		assert.Equal(t, 90, got)
	})
}

// TestStepToward checks per-frame movement smoothing.
func TestStepToward(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		step    int
		want    int
	}{
		{"StepsUp", 0, 10, 2, 2},
		{"StepsDown", 10, 0, 2, 8},
		{"WithinStep", 5, 6, 2, 6},
		{"ExactlyOneStepAway", 5, 7, 2, 7},
		{"AtTarget", 5, 5, 2, 5},
		{"ZeroStepJumps", 0, 180, 0, 180},
		{"NegativeStepJumps", 90, 10, -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepToward(tt.current, tt.target, tt.step))
		})
	}
}
