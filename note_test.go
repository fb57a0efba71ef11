package persona

import (
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	for s, expect := range map[string]int{
		"c":    48,
		"C3":   48,
		"c#3":  49,
		"db3":  49,
		"a4":   69,
		"Bb2":  46,
		" e ":  52,
		"c-1":  -1,
		"g9":   127,
		"x3":   -1,
		"":     -1,
		"c#b3": -1,
	} {
		n, err := ParseNote(s)
		if expect < 0 {
			if err == nil {
				t.Errorf("%q: expected an error, got %d", s, n)
			}
			continue
		}
		if err != nil || n != expect {
			t.Errorf("%q: expected %d, got %d, %v", s, expect, n, err)
		}
	}
}

func TestNoteName(t *testing.T) {
	for note, expect := range map[int]string{
		60:  "C4",
		57:  "A3",
		49:  "C#3",
		0:   "C0",
		127: "C8",
	} {
		if s := NoteName(note); s != expect {
			t.Errorf("%d: expected %s, got %s", note, expect, s)
		}
	}
	for n := 12; n <= 108; n++ {
		if m, err := ParseNote(NoteName(n)); err != nil || m != n {
			t.Errorf("%d -> %s -> %d, %v", n, NoteName(n), m, err)
		}
	}
}

func TestMIDIToHz(t *testing.T) {
	for note, hz := range map[int]float64{
		76: 440,
		64: 220,
		69: 440 * math.Exp2(-7.0/12),
	} {
		if f := MIDIToHz(note); math.Abs(f-hz) > 1e-9 {
			t.Errorf("%d: expected %v, got %v", note, hz, f)
		}
	}
}

func TestRoot(t *testing.T) {
	var r Root
	if _, ok := r.Note(); ok {
		t.Fatal("zero Root is set")
	}
	if n := r.Step(1); n != 58 {
		t.Errorf("first step: expected 58, got %d", n)
	}
	if n := r.Set(10); n != MinRootNote {
		t.Errorf("expected %d, got %d", MinRootNote, n)
	}
	if n := r.Step(-1); n != MinRootNote {
		t.Errorf("expected %d, got %d", MinRootNote, n)
	}
	if n := r.Set(200); n != MaxRootNote {
		t.Errorf("expected %d, got %d", MaxRootNote, n)
	}

	s := New(nil, WithRand(extremes()))
	r.Apply(s, 76)
	if hz := s.Controls().RootHz; math.Abs(hz-440) > 1e-9 {
		t.Errorf("expected 440 Hz, got %v", hz)
	}
}
