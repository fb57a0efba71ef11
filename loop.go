package persona

import (
	"context"
	"time"
)

// A FrameLoop calls Task once per host frame with the time elapsed since
// the previous frame.  Frames with dt <= 0 (a clock that stalled or went
// backwards) are skipped rather than applied as one huge step.
type FrameLoop struct {
	Task func(dt float64)
	last time.Time
}

func NewFrameLoop(task func(dt float64)) *FrameLoop {
	return &FrameLoop{Task: task}
}

// Tick reports whether the task ran.
func (l *FrameLoop) Tick(now time.Time) bool {
	if l.last.IsZero() {
		l.last = now
		return false
	}
	dt := now.Sub(l.last).Seconds()
	l.last = now
	if !(dt > 0) {
		return false
	}
	l.Task(dt)
	return true
}

// Run ticks the loop every interval until ctx is done.
func (l *FrameLoop) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			l.Tick(now)
		}
	}
}
