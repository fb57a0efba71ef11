package persona

import "fmt"

// A Stage is one timbral archetype along the persona axis.
type Stage struct {
	ID       string
	Position float64
	Partials int
	Chord    []int // semitone offsets, one voice each
}

var chords = map[string][]int{
	"Rut":      {0, 1},
	"Emerging": {0, 1, 7},
	"Growing":  {0, 2, 7},
	"Taste":    {0, 1, 4, 7},
}

// NewStage returns a stage whose chord is looked up by id.  Ids without a
// chord get a unison.
func NewStage(id string, position float64, partials int) Stage {
	return Stage{ID: id, Position: position, Partials: partials, Chord: ChordFor(id)}
}

func ChordFor(id string) []int {
	c, ok := chords[id]
	if !ok || len(c) == 0 {
		return []int{0}
	}
	return append([]int(nil), c...)
}

// Voices returns the stage's chord, falling back to a unison.
func (s Stage) Voices() []int {
	if len(s.Chord) == 0 {
		return []int{0}
	}
	return s.Chord
}

// A StageTable is an immutable, position-ordered list of stages.
type StageTable struct {
	stages                   []Stage
	minPartials, maxPartials int
}

func DefaultStages() StageTable {
	t, err := NewStageTable(
		NewStage("Rut", 0, 2),
		NewStage("Emerging", 1.0/3, 4),
		NewStage("Growing", 2.0/3, 8),
		NewStage("Taste", 1, 16),
	)
	if err != nil {
		panic(err)
	}
	return t
}

func NewStageTable(stages ...Stage) (StageTable, error) {
	if len(stages) < 2 {
		return StageTable{}, fmt.Errorf("%w: need at least 2 stages, got %d", ErrInvalidStages, len(stages))
	}
	if stages[0].Position != 0 || stages[len(stages)-1].Position != 1 {
		return StageTable{}, fmt.Errorf("%w: positions must run from 0 to 1", ErrInvalidStages)
	}
	t := StageTable{stages: make([]Stage, len(stages))}
	for i, s := range stages {
		if i > 0 && s.Position <= stages[i-1].Position {
			return StageTable{}, fmt.Errorf("%w: stage %q is not after %q", ErrInvalidStages, s.ID, stages[i-1].ID)
		}
		if s.Partials < 1 {
			return StageTable{}, fmt.Errorf("%w: stage %q has %d partials", ErrInvalidStages, s.ID, s.Partials)
		}
		s.Chord = append([]int(nil), s.Voices()...)
		t.stages[i] = s
		if i == 0 || s.Partials < t.minPartials {
			t.minPartials = s.Partials
		}
		if s.Partials > t.maxPartials {
			t.maxPartials = s.Partials
		}
	}
	return t, nil
}

func (t StageTable) Len() int         { return len(t.stages) }
func (t StageTable) At(i int) Stage   { return t.stages[i] }
func (t StageTable) MinPartials() int { return t.minPartials }
func (t StageTable) MaxPartials() int { return t.maxPartials }

// Stages returns a copy of the table's stages.
func (t StageTable) Stages() []Stage {
	return append([]Stage(nil), t.stages...)
}
