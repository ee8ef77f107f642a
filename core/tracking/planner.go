package tracking

import "servo-controller/core/utils"

// Planner maps detection pixel offsets to servo target angles.
// It holds no state; every field is plain configuration.
type Planner struct {
	// FrameWidth is the camera frame width in pixels.
	// A non-positive width disables movement entirely.
	FrameWidth int

	// DeadZone is the horizontal slack in pixels. Detections within
	// this distance of frame center leave the servo alone.
	DeadZone int

	// Step is the maximum degrees moved per frame. Zero or negative
	// jumps straight to the target.
	Step int

	// Home is the resting angle the servo returns to when tracking stops.
	Home int

	// Min and Max bound the reachable angles. Targets outside the range
	// are clamped, not rejected.
	Min int
	Max int
}

// Target returns the angle that would center a detection at pixel column
// centerX, and whether the servo needs to move at all. Detections inside
// the dead zone report no movement.
func (p Planner) Target(centerX, current int) (int, bool) {
	if p.FrameWidth <= 0 {
		return current, false
	}

	offset := centerX - p.FrameWidth/2
	if utils.Abs(offset) <= p.DeadZone {
		return current, false
	}

	// Full frame width spans the full servo range. The correction runs
	// against the offset: the camera pans toward the target.
	degPerPixel := float64(p.Max-p.Min) / float64(p.FrameWidth)
	target := int(float64(current) - float64(offset)*degPerPixel)

	return utils.Clamp(target, p.Min, p.Max), true
}

// StepToward moves current toward target by at most step degrees.
// A step of zero or less jumps straight to the target.
func StepToward(current, target, step int) int {
	if step <= 0 {
		return target
	}

	diff := target - current
	if utils.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}
