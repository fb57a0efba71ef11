package persona

import (
	"errors"
	"testing"
)

func TestNewStageTable_invalid(t *testing.T) {
	for name, stages := range map[string][]Stage{
		"empty":      nil,
		"one":        {NewStage("Rut", 0, 2)},
		"bad start":  {NewStage("Rut", 0.1, 2), NewStage("Taste", 1, 16)},
		"bad end":    {NewStage("Rut", 0, 2), NewStage("Taste", 0.9, 16)},
		"unordered":  {NewStage("Rut", 0, 2), NewStage("Growing", 0.7, 8), NewStage("Emerging", 0.3, 4), NewStage("Taste", 1, 16)},
		"duplicate":  {NewStage("Rut", 0, 2), NewStage("A", 0.5, 2), NewStage("B", 0.5, 2), NewStage("Taste", 1, 16)},
		"no partial": {NewStage("Rut", 0, 0), NewStage("Taste", 1, 16)},
	} {
		if _, err := NewStageTable(stages...); !errors.Is(err, ErrInvalidStages) {
			t.Errorf("%s: expected ErrInvalidStages, got %v", name, err)
		}
	}
}

func TestDefaultStages(t *testing.T) {
	s := DefaultStages()
	if s.Len() != 4 {
		t.Fatalf("expected 4 stages, got %d", s.Len())
	}
	if s.MinPartials() != 2 || s.MaxPartials() != 16 {
		t.Errorf("expected partials 2..16, got %d..%d", s.MinPartials(), s.MaxPartials())
	}
	for i, c := range [][]int{{0, 1}, {0, 1, 7}, {0, 2, 7}, {0, 1, 4, 7}} {
		if got := s.At(i).Voices(); !equalInts(got, c) {
			t.Errorf("stage %d: expected chord %v, got %v", i, c, got)
		}
	}
}

func TestChordFor_unknown(t *testing.T) {
	if c := ChordFor("Nobody"); !equalInts(c, []int{0}) {
		t.Errorf("expected unison, got %v", c)
	}
	if v := (Stage{ID: "x"}).Voices(); !equalInts(v, []int{0}) {
		t.Errorf("expected unison, got %v", v)
	}
}

func TestStageTable_copies(t *testing.T) {
	s := DefaultStages()
	s.Stages()[0].Partials = 99
	c := ChordFor("Rut")
	c[1] = 5
	if s.At(0).Partials != 2 || ChordFor("Rut")[1] != 1 {
		t.Error("stage table shares its storage")
	}
}

func equalInts(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
