package entity

// Animation cycles through FrameCount frames over a fixed cycle time.
type Animation struct {
	frameCount   int
	maxFrameTime float64
	elapsed      float64
	frame        int
}

// NewAnimation creates an animation showing each frame for
// cycleTime/frameCount seconds.
func NewAnimation(frameCount int, cycleTime float64) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	return &Animation{
		frameCount:   frameCount,
		maxFrameTime: cycleTime / float64(frameCount),
	}
}

// Update accumulates dt and advances at most one frame, wrapping to 0
// after the last one.
func (a *Animation) Update(dt float64) {
	a.elapsed += dt
	if a.elapsed > a.maxFrameTime {
		a.frame++
		a.elapsed = 0
	}
	if a.frame >= a.frameCount {
		a.frame = 0
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.frame }

// FrameCount returns the number of frames in the cycle.
func (a *Animation) FrameCount() int { return a.frameCount }

// Elapsed returns the time spent in the current frame.
func (a *Animation) Elapsed() float64 { return a.elapsed }
