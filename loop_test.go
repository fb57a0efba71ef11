package persona

import (
	"context"
	"testing"
	"time"
)

func TestFrameLoop_Tick(t *testing.T) {
	var dts []float64
	l := NewFrameLoop(func(dt float64) { dts = append(dts, dt) })
	t0 := time.Unix(1000, 0)
	for _, test := range []struct {
		at  time.Duration
		ran bool
	}{
		{0, false},
		{16 * time.Millisecond, true},
		{16 * time.Millisecond, false},
		{10 * time.Millisecond, false},
		{30 * time.Millisecond, true},
	} {
		if ran := l.Tick(t0.Add(test.at)); ran != test.ran {
			t.Errorf("tick at %v: expected %v, got %v", test.at, test.ran, ran)
		}
	}
	for _, dt := range dts {
		if !(dt > 0) {
			t.Errorf("task called with dt=%v", dt)
		}
	}
	if len(dts) != 2 || dts[0] != 0.016 || dts[1] != 0.02 {
		t.Errorf("expected [0.016 0.02], got %v", dts)
	}
}

func TestFrameLoop_Run(t *testing.T) {
	n := 0
	l := NewFrameLoop(func(dt float64) { n++ })
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx, 5*time.Millisecond); err != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
	if n == 0 {
		t.Error("task never ran")
	}
}
