package persona

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	transposeSemitones = -7

	MinRootNote     = 24
	MaxRootNote     = 96
	DefaultRootNote = 60

	defaultOctave    = 3
	fallbackRootNote = 57
	minNamedNote     = 12
	maxNamedNote     = 108
)

var (
	noteOffsets = map[string]int{
		"c": 0, "c#": 1, "db": 1, "d": 2, "d#": 3, "eb": 3, "e": 4, "f": 5,
		"f#": 6, "gb": 6, "g": 7, "g#": 8, "ab": 8, "a": 9, "a#": 10, "bb": 10, "b": 11,
	}
	noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	noteRE    = regexp.MustCompile(`^([a-g])([#b]?)(\d+)?$`)
)

// MIDIToHz converts a MIDI note to the root frequency.  Roots sound a fifth
// below the nominal pitch.
func MIDIToHz(note int) float64 {
	return 440 * math.Exp2(float64(note+transposeSemitones-69)/12)
}

func ClampRootNote(note int) int {
	if note < MinRootNote {
		return MinRootNote
	}
	if note > MaxRootNote {
		return MaxRootNote
	}
	return note
}

// ParseNote parses names like "c", "F#2" or "bb4".  The octave defaults to 3.
func ParseNote(s string) (int, error) {
	m := noteRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("invalid note %q", s)
	}
	semi := noteOffsets[m[1]+m[2]]
	octave := defaultOctave
	if m[3] != "" {
		o, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, fmt.Errorf("invalid octave in note %q: %w", s, err)
		}
		octave = o
	}
	return (octave+1)*12 + semi, nil
}

func NoteName(note int) string {
	if note < minNamedNote {
		note = minNamedNote
	}
	if note > maxNamedNote {
		note = maxNamedNote
	}
	return fmt.Sprintf("%s%d", noteNames[note%12], note/12-1)
}

// Root tracks the current root note.
type Root struct {
	note int
	set  bool
}

func (r *Root) Note() (int, bool) { return r.note, r.set }

// Set clamps note to the root range and returns it.
func (r *Root) Set(note int) int {
	r.note, r.set = ClampRootNote(note), true
	return r.note
}

// Step moves the root by delta semitones, starting from A3 if no root has
// been set yet.
func (r *Root) Step(delta int) int {
	if !r.set {
		r.Set(fallbackRootNote)
	}
	return r.Set(r.note + delta)
}

// Apply sets the root and tunes s to it.
func (r *Root) Apply(s *Synth, note int) {
	s.SetRootHz(MIDIToHz(r.Set(note)))
}
