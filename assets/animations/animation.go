package animations

import "github.com/automoto/sharkie/config"

// Animation walks an ordered list of image handles, one frame per Advance.
type Animation struct {
	Frames           []string
	frame            int
	played           int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Advance moves to the next frame, wrapping or freezing at the end.
func (a *Animation) Advance() {
	if len(a.Frames) == 0 {
		return
	}
	a.played++
	if a.frame+1 >= len(a.Frames) {
		a.Looped = true
		if a.FreezeOnComplete {
			return
		}
		a.frame = 0
		return
	}
	a.frame++
}

// Frame is the 0-based index of the frame on screen.
func (a *Animation) Frame() int {
	return a.frame
}

// Image is the handle of the frame on screen, or "" for an empty set.
func (a *Animation) Image() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.frame]
}

// Played counts the frames shown since the last Restart, the first one included.
func (a *Animation) Played() int {
	return a.played
}

// Finished reports whether every frame of the set has been shown once.
func (a *Animation) Finished() bool {
	return a.played >= len(a.Frames)
}

func (a *Animation) Restart() {
	a.frame = 0
	a.played = 1
	a.Looped = false
}

func NewAnimation(def config.AnimationDef) *Animation {
	a := &Animation{
		Frames:           def.Frames,
		FreezeOnComplete: def.Once,
	}
	a.Restart()
	return a
}
