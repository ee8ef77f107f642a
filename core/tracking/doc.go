// Package tracking converts detection coordinates into servo pan commands.
//
// A camera rides on the servo, so keeping a detection centered is a
// feedback loop: each frame reports where the target sits in the frame,
// and the planner computes the angle that would bring it back to center.
//
// # Components
//
// 1. Planner: stateless geometry. Maps a horizontal pixel offset to a
// target angle, honoring a dead zone so small offsets don't jitter the
// servo, and clamping to the reachable range.
//
// 2. Tracker: stateful loop logic on top of a Planner. Smooths movement
// by stepping toward the target a few degrees per frame, and returns the
// servo to its home angle after the target has been gone long enough.
//
// # Direction
//
// The correction runs against the offset: a target right of frame center
// means the camera must swing left to face it, so the angle decreases.
//
// # Usage Example
//
//	tracker := tracking.NewTracker(tracking.Planner{
//	    FrameWidth: 640,
//	    DeadZone:   50,
//	    Step:       2,
//	    Home:       90,
//	    Min:        0,
//	    Max:        180,
//	}, 3*time.Second, nil)
//
//	// Target visible at pixel column 480:
//	next, move := tracker.Observe(480, current)
//
//	// Target gone this frame:
//	next, move := tracker.Lost(current)
//
// Both return the angle to command and whether to send it at all.
package tracking
