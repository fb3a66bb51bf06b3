// Package motion drives numeric values with declarative animations.
//
// A Value is a numeric cell with at most one animation in flight. Installing
// an animation replaces the previous one and starts from the current value
// and velocity. Nothing runs on its own: the owner calls Evaluate once per
// rendered frame with the frame time, and the animation advances by the time
// elapsed since the previous evaluation.
//
//	offset := motion.NewValue("offset", 0)
//	offset.Animate(motion.Repeat(motion.Timing(100, time.Second), motion.Infinite, true))
//
//	// every frame
//	x := offset.Evaluate(now)
//
// Animations are Instant, Spring, Timing, Repeat and Sequence. They are plain
// descriptions; each installation starts a fresh run.
package motion
