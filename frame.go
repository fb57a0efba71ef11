package persona

import "context"

type EngineState int

const (
	Suspended EngineState = iota
	Running
	Closed
)

func (s EngineState) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// An Engine realizes parameter frames as smoothed node parameters and
// produces the sound.  Time is the engine's clock in seconds; turbulence is
// evaluated on it.
type Engine interface {
	Apply(ParameterFrame)
	Time() float64
	State() EngineState
	Resume(ctx context.Context) error
	Suspend(ctx context.Context) error
}

// A ParameterFrame is the complete set of targets the engine should be
// approaching.  Spectra[i] holds the sine coefficients for stage i's
// oscillators (see Spectrum); they only change with WavetablePos, so engines
// may skip rebuilding their tables while it is unchanged.
type ParameterFrame struct {
	Time         float64
	StageGain    []Target
	VoiceFreq    [][]Target
	Spectra      [][]float64
	WavetablePos float64
	Cutoff       Target
	Q            Target
	DelayTime    Target
	Feedback     Target
	Drive        Target
}

// A VisualFrame is the read-only view of the synth a renderer draws from.
type VisualFrame struct {
	Weights      []float64
	RichnessNorm float64
	WavetablePos float64
	DominantID   string
}

// State is a snapshot of the synth's mix.
type State struct {
	Value         float64
	Weights       []float64
	Dominant      Stage
	DominantIndex int
	RichnessNorm  float64
	Fundamental   float64
	WavetablePos  float64
}
