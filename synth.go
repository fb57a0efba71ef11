package persona

import (
	"context"
	"log/slog"
)

const (
	defaultRootHz = (50 + 440) / 2.0
	minRootHz     = 20
	maxRootHz     = 2000

	defaultRefinement = 0.5
	initialDelayMax   = 0.08

	lagBase, lagScale = 0.01, 0.3

	freqTimeConst     = 0.05
	filterTimeConst   = 0.1
	qTimeConst        = 0.1
	delayTimeConst    = 0.1
	feedbackTimeConst = 0.2
	driveTimeConst    = 0.05
)

// ControlState is the set of user-facing controls, all in [0,1] except
// RootHz.
type ControlState struct {
	Value        float64
	Delay        float64
	Entropy      float64
	Refinement   float64
	Coupling     float64
	Lag          float64
	WavetablePos float64
	RootHz       float64
}

func DefaultControls() ControlState {
	return ControlState{Refinement: defaultRefinement, RootHz: defaultRootHz}
}

// Synth owns the control state and recomputes every derived parameter as
// soon as a control changes, handing the result to its Engine.  A Synth
// must only be used from one goroutine.
type Synth struct {
	stages StageTable
	engine Engine
	rand   Rand
	turb   Turbulence
	log    *slog.Logger

	ctl ControlState

	weights     []float64
	gainLag     float64 // stage gain time constant, fixed at the last mix change
	richness    float64
	fundamental float64
	jitter      [][]float64 // Hz, per stage and voice

	cutoff, q           float64
	delayTime, feedback float64
	drive               float64
}

type Option func(*Synth)

func WithStages(t StageTable) Option   { return func(s *Synth) { s.stages = t } }
func WithRand(r Rand) Option           { return func(s *Synth) { s.rand = r } }
func WithLogger(l *slog.Logger) Option { return func(s *Synth) { s.log = l } }

// New returns a synth with default controls.  engine may be nil, in which
// case the synth only computes state (for rendering or tests).
func New(engine Engine, opts ...Option) *Synth {
	s := &Synth{engine: engine}
	for _, o := range opts {
		o(s)
	}
	if s.stages.Len() == 0 {
		s.stages = DefaultStages()
	}
	if s.rand == nil {
		s.rand = NewRand()
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	s.ctl = DefaultControls()
	s.delayTime = s.rand.Float64() * initialDelayMax
	s.drive = Drive(0)
	s.turb = NewTurbulence(s.rand)
	s.jitter = make([][]float64, s.stages.Len())
	for i := range s.jitter {
		s.jitter[i] = make([]float64, len(s.stages.At(i).Voices()))
	}

	s.updateMix()
	s.push()
	return s
}

func (s *Synth) SetValue(t float64) {
	if !finite(t) {
		return
	}
	s.ctl.Value = clamp01(t)
	s.updateMix()
	s.push()
}

func (s *Synth) SetCoupling(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.Coupling = clamp01(a)
	s.updateMix()
	s.push()
}

func (s *Synth) SetRootHz(hz float64) {
	if !finite(hz) {
		return
	}
	s.ctl.RootHz = clamp(hz, minRootHz, maxRootHz)
	s.updateSpectral()
	s.push()
}

func (s *Synth) SetEntropy(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.Entropy = clamp01(a)
	s.updateSpectral()
	s.drive = Drive(s.ctl.Entropy)
	s.push()
}

func (s *Synth) SetRefinement(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.Refinement = clamp01(a)
	s.updateFilter()
	s.push()
}

func (s *Synth) SetDelay(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.Delay = clamp01(a)
	s.delayTime = DelayTime(s.ctl.Delay)
	s.feedback = Feedback(s.ctl.Delay)
	s.push()
}

// SetLag sets how slowly stage gains follow the persona control.  It takes
// effect with the next mix change.
func (s *Synth) SetLag(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.Lag = clamp01(a)
}

func (s *Synth) SetWavetablePos(a float64) {
	if !finite(a) {
		return
	}
	s.ctl.WavetablePos = clamp01(a)
	s.push()
}

// NoteOn sets the root from a MIDI note and returns the clamped root note.
// A velocity of zero is a note-off and is ignored, as are notes outside
// 0-127.
func (s *Synth) NoteOn(note, velocity int) (root int, ok bool) {
	if velocity <= 0 || note < 0 || note > 127 {
		return 0, false
	}
	root = ClampRootNote(note)
	s.SetRootHz(MIDIToHz(root))
	return root, true
}

func (s *Synth) updateMix() {
	s.weights = Mix(s.stages, s.ctl.Value, s.ctl.Coupling)
	s.gainLag = lagBase + lagScale*s.ctl.Lag
	s.updateSpectral()
}

func (s *Synth) updateSpectral() {
	s.richness = Richness(s.stages, s.weights)
	s.fundamental = s.ctl.RootHz * FundamentalFactor(s.richness)
	for _, voices := range s.jitter {
		base := StageJitter(s.rand, s.ctl.Entropy)
		for v := range voices {
			voices[v] = base + VoiceJitter(s.rand, s.ctl.Entropy)
		}
	}
	s.updateFilter()
}

func (s *Synth) updateFilter() {
	shape := s.turb.Shape(s.now(), s.ctl.Entropy)
	s.cutoff = Cutoff(s.ctl.Refinement, shape, s.ctl.Entropy)
	s.q = Resonance(s.ctl.Refinement, shape, s.ctl.Entropy)
}

func (s *Synth) now() float64 {
	if s.engine == nil {
		return 0
	}
	return s.engine.Time()
}

func (s *Synth) push() {
	if s.engine != nil {
		s.engine.Apply(s.Frame())
	}
}

// Frame assembles the engine targets from the current derived state.
func (s *Synth) Frame() ParameterFrame {
	n := s.stages.Len()
	f := ParameterFrame{
		Time:         s.now(),
		StageGain:    make([]Target, n),
		VoiceFreq:    make([][]Target, n),
		Spectra:      make([][]float64, n),
		WavetablePos: s.ctl.WavetablePos,
		Cutoff:       Target{s.cutoff, filterTimeConst},
		Q:            Target{s.q, qTimeConst},
		DelayTime:    Target{s.delayTime, delayTimeConst},
		Feedback:     Target{s.feedback, feedbackTimeConst},
		Drive:        Target{s.drive, driveTimeConst},
	}
	for i := 0; i < n; i++ {
		st := s.stages.At(i)
		f.StageGain[i] = Target{s.weights[i], s.gainLag}
		f.Spectra[i] = Spectrum(s.ctl.WavetablePos, AudioOffset, st.Partials)
		voices := st.Voices()
		f.VoiceFreq[i] = make([]Target, len(voices))
		for v, semi := range voices {
			hz := VoiceFreq(s.fundamental, i, n, semi, s.jitter[i][v])
			f.VoiceFreq[i][v] = Target{hz, freqTimeConst}
		}
	}
	return f
}

func (s *Synth) Controls() ControlState { return s.ctl }
func (s *Synth) Stages() StageTable     { return s.stages }

func (s *Synth) State() State {
	d := Dominant(s.weights)
	return State{
		Value:         s.ctl.Value,
		Weights:       append([]float64(nil), s.weights...),
		Dominant:      s.stages.At(d),
		DominantIndex: d,
		RichnessNorm:  s.richness,
		Fundamental:   s.fundamental,
		WavetablePos:  s.ctl.WavetablePos,
	}
}

func (s *Synth) VisualFrame() VisualFrame {
	return VisualFrame{
		Weights:      append([]float64(nil), s.weights...),
		RichnessNorm: s.richness,
		WavetablePos: s.ctl.WavetablePos,
		DominantID:   s.stages.At(Dominant(s.weights)).ID,
	}
}

// Resume starts the engine if it is suspended.
func (s *Synth) Resume(ctx context.Context) error {
	if s.engine == nil {
		return &LifecycleError{Op: "resume", Err: ErrNoEngine}
	}
	if s.engine.State() != Suspended {
		return nil
	}
	if err := s.engine.Resume(ctx); err != nil {
		return &LifecycleError{Op: "resume", Err: err}
	}
	s.log.Debug("engine resumed", "time", s.engine.Time())
	return nil
}

// Pause suspends the engine if it is running.
func (s *Synth) Pause(ctx context.Context) error {
	if s.engine == nil {
		return &LifecycleError{Op: "pause", Err: ErrNoEngine}
	}
	if s.engine.State() != Running {
		return nil
	}
	if err := s.engine.Suspend(ctx); err != nil {
		return &LifecycleError{Op: "pause", Err: err}
	}
	s.log.Debug("engine suspended", "time", s.engine.Time())
	return nil
}
