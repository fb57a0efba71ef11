package audio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/persona"
)

const (
	masterGain  = 0.25
	meterWindow = 0.3 // seconds
)

// A Backend moves rendered samples to an output device.
type Backend interface {
	Start() error
	Stop() error
	Close() error
}

// Engine is a software realization of the persona node graph: per-stage
// banks of wavetable oscillators, a master gain, a drive stage into a
// waveshaper, a resonant lowpass, and a feedback delay summed with the dry
// filter output.  Every parameter follows its frame target with exponential
// smoothing, stepped once per rendered block.
//
// Apply and the lifecycle methods may be called from a control goroutine
// while Render runs on the backend's audio goroutine.
type Engine struct {
	Params Params
	log    *slog.Logger

	applyMu sync.Mutex
	mu      sync.Mutex
	state   persona.EngineState
	backend Backend
	samples atomic.Int64
	level   atomic.Uint64

	tables  *persona.TableBuilder
	build   func(spectrum []float64) []float64
	wavePos float64
	built   bool
	tuned   bool // filter coefficients are current

	stages                              []*stageBank
	cutoff, q, delayTime, feedback, drv *persona.SmoothedParam
	shaper                              *Shaper
	chain                               chain
}

type chain struct {
	Filter            Lowpass
	Delay             FeedbackDelay
	Meter             *AmpMeter
	Mix, Stage, Voice Audio
}

type stageBank struct {
	gain   *persona.SmoothedParam
	voices []*voice
}

type voice struct {
	Osc  WavetableOsc
	freq *persona.SmoothedParam
	gain float64
}

// NewEngine returns a suspended engine with no backend.
func NewEngine(p Params, log *slog.Logger) (*Engine, error) {
	if p.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %v", p.SampleRate)
	}
	if p.BufferSize <= 0 {
		p.BufferSize = 1024
	}
	if log == nil {
		log = slog.Default()
	}
	tables, err := persona.NewTableBuilder(persona.DefaultTableSize)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		Params:    p,
		log:       log,
		tables:    tables,
		cutoff:    persona.NewSmoothedParam(350),
		q:         persona.NewSmoothedParam(1),
		delayTime: persona.NewSmoothedParam(0),
		feedback:  persona.NewSmoothedParam(0),
		drv:       persona.NewSmoothedParam(1),
		shaper:    NewShaper(shaperAmount),
	}
	e.build = tables.Build
	e.chain.Meter = NewAmpMeter(meterWindow)
	Init(&e.chain, p)
	return e, nil
}

// SetBackend attaches the output device.  The engine closes it on Close.
func (e *Engine) SetBackend(b Backend) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.backend = b
}

func (e *Engine) Time() float64 {
	return float64(e.samples.Load()) / e.Params.SampleRate
}

// Level is the recent RMS output level.
func (e *Engine) Level() float64 {
	return math.Float64frombits(e.level.Load())
}

func (e *Engine) State() persona.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Resume(ctx context.Context) error {
	return e.transition(ctx, persona.Running, Backend.Start)
}

func (e *Engine) Suspend(ctx context.Context) error {
	return e.transition(ctx, persona.Suspended, Backend.Stop)
}

func (e *Engine) transition(ctx context.Context, to persona.EngineState, f func(Backend) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	b, from := e.backend, e.state
	e.mu.Unlock()
	if from == persona.Closed {
		return fmt.Errorf("audio: engine is closed")
	}
	if from == to {
		return nil
	}
	// The backend may call Render synchronously, so it is driven unlocked.
	if b != nil {
		if err := f(b); err != nil {
			e.log.Error("audio backend transition failed", "from", from, "to", to, "err", err)
			return err
		}
	}
	e.mu.Lock()
	e.state = to
	e.mu.Unlock()
	e.log.Debug("audio engine", "state", to)
	return nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	b := e.backend
	e.backend = nil
	e.state = persona.Closed
	e.mu.Unlock()
	if b != nil {
		return b.Close()
	}
	return nil
}

// Apply retargets every parameter.  The first frame for a stage sets its
// oscillator frequencies outright so voices do not glide in from zero.
// Wavetables are built before the render lock is taken.
func (e *Engine) Apply(f persona.ParameterFrame) {
	e.applyMu.Lock()
	defer e.applyMu.Unlock()

	var tables [][]float64
	if e.needTables(f) {
		tables = make([][]float64, len(f.Spectra))
		for i, sp := range f.Spectra {
			tables[i] = e.build(sp)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.stages) != len(f.StageGain) {
		e.stages = make([]*stageBank, len(f.StageGain))
	}
	for i, g := range f.StageGain {
		s := e.stages[i]
		if s == nil || len(s.voices) != len(f.VoiceFreq[i]) {
			s = &stageBank{gain: persona.NewSmoothedParam(0)}
			for _, t := range f.VoiceFreq[i] {
				v := &voice{freq: persona.NewSmoothedParam(t.Value), gain: 1 / float64(len(f.VoiceFreq[i]))}
				Init(v, e.Params)
				s.voices = append(s.voices, v)
			}
			e.stages[i] = s
		}
		s.gain.SetTarget(g)
		for j, t := range f.VoiceFreq[i] {
			s.voices[j].freq.SetTarget(t)
		}
	}

	if tables != nil {
		for i, s := range e.stages {
			if i >= len(tables) {
				break
			}
			for _, v := range s.voices {
				v.Osc.SetTable(tables[i])
			}
		}
		e.wavePos, e.built = f.WavetablePos, true
	}

	e.cutoff.SetTarget(f.Cutoff)
	e.q.SetTarget(f.Q)
	e.delayTime.SetTarget(f.DelayTime)
	e.feedback.SetTarget(f.Feedback)
	e.drv.SetTarget(f.Drive)
}

// needTables reports whether f needs new wavetables: the morph moved or
// the stage layout changed.  Only Apply writes the fields it reads.
func (e *Engine) needTables(f persona.ParameterFrame) bool {
	if !e.built || f.WavetablePos != e.wavePos || len(e.stages) != len(f.StageGain) {
		return true
	}
	for i, s := range e.stages {
		if s == nil || len(s.voices) != len(f.VoiceFreq[i]) {
			return true
		}
	}
	return false
}

// Render fills out with the next block.  A suspended engine outputs
// silence and its clock stands still.
func (e *Engine) Render(out []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != persona.Running {
		for i := range out {
			out[i] = 0
		}
		return
	}

	n := len(out)
	dt := float64(n) / e.Params.SampleRate
	c := &e.chain
	c.Mix = c.Mix.Resize(n).Zero()
	c.Stage = c.Stage.Resize(n)
	c.Voice = c.Voice.Resize(n)

	for _, s := range e.stages {
		gain := s.gain.Step(dt)
		c.Stage.Zero()
		for _, v := range s.voices {
			v.Osc.Fill(c.Voice, v.freq.Step(dt))
			c.Stage.AddX(c.Stage, c.Voice, v.gain)
		}
		c.Mix.AddX(c.Mix, c.Stage, gain)
	}

	if !e.tuned || !e.cutoff.Settled() || !e.q.Settled() {
		c.Filter.SetParams(e.cutoff.Step(dt), e.q.Step(dt))
		e.tuned = true
	}
	delayTime, feedback := e.delayTime.Step(dt), e.feedback.Step(dt)
	c.Mix.MulX(c.Mix, masterGain*e.drv.Step(dt))
	for i, x := range c.Mix {
		y := c.Filter.Filter(e.shaper.Shape(x))
		out[i] = float32(y + c.Delay.Delay(y, delayTime, feedback))
	}

	e.samples.Add(int64(n))
	e.level.Store(math.Float64bits(c.Meter.Amplitude(out)))
}
