package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/gordonklaus/persona"
	"github.com/gordonklaus/persona/render"
)

const controlStep = 0.05

// A session is the synth and everything that steers it.  It is owned by a
// single goroutine.
type session struct {
	synth  *persona.Synth
	engine persona.Engine
	drift  *persona.Drift
	root   persona.Root
	rand   persona.Rand
	loop   *persona.FrameLoop

	energy float64
	quit   bool
}

func newSession(engine persona.Engine, r persona.Rand) *session {
	s := &session{
		synth:  persona.New(engine, persona.WithStages(persona.DefaultStages()), persona.WithRand(r), persona.WithLogger(logger)),
		engine: engine,
		drift:  persona.NewDrift(r),
		rand:   r,
		energy: energy,
	}
	s.loop = persona.NewFrameLoop(func(dt float64) { s.drift.Step(dt, s.synth) })
	if configFlag != "" {
		persona.DecodeConfig(configFlag).Apply(s.synth, s.drift, &s.root)
		logger.Debug("config applied", "config", configFlag)
	}
	return s
}

func seeded(seed int64) persona.Rand {
	return rand.New(rand.NewSource(seed))
}

// A noteOn is a MIDI note-on.  Velocity 0 is a note-off.
type noteOn struct {
	key, velocity uint8
}

func (s *session) note(n noteOn) {
	root, ok := s.synth.NoteOn(int(n.key), int(n.velocity))
	if !ok {
		return
	}
	s.root.Set(root)
	logger.Debug("root", "note", persona.NoteName(root), "hz", s.synth.Controls().RootHz)
}

// poll handles every key and note already waiting, without blocking.
func (s *session) poll(ctx context.Context, keys <-chan rune, notes <-chan noteOn) {
	for {
		select {
		case k := <-keys:
			s.key(ctx, k)
		case n := <-notes:
			s.note(n)
		default:
			return
		}
	}
}

// view is what the renderer sees: the synth's visual frame, with the
// renderer's entropy and refinement following the synth's.
func (s *session) view() (persona.VisualFrame, render.Settings) {
	ctl := s.synth.Controls()
	return s.synth.VisualFrame(), render.Settings{
		Entropy:    ctl.Entropy,
		Refinement: ctl.Refinement,
		Energy:     s.energy,
	}
}

func (s *session) config() string {
	return persona.CaptureConfig(s.synth, s.drift, &s.root).Encode()
}

// key handles one control key.  Lower case lowers a control and upper case
// raises it.  Controls with a drift LFO move its centre too.
func (s *session) key(ctx context.Context, k rune) {
	ctl := s.synth.Controls()
	nudge := func(lfo *persona.LFO, v float64, set func(float64)) {
		if lfo != nil {
			lfo.Base = clamp01(v)
		}
		set(v)
	}
	switch k {
	case 'p', 'P':
		nudge(&s.drift.Persona, ctl.Value+sign(k)*controlStep, s.synth.SetValue)
	case 'd', 'D':
		nudge(&s.drift.Delay, ctl.Delay+sign(k)*controlStep, s.synth.SetDelay)
	case 'e', 'E':
		nudge(&s.drift.Entropy, ctl.Entropy+sign(k)*controlStep, s.synth.SetEntropy)
	case 'r', 'R':
		nudge(&s.drift.Refinement, ctl.Refinement+sign(k)*controlStep, s.synth.SetRefinement)
	case 'c', 'C':
		nudge(nil, ctl.Coupling+sign(k)*controlStep, s.synth.SetCoupling)
	case 'l', 'L':
		nudge(nil, ctl.Lag+sign(k)*controlStep, s.synth.SetLag)
	case 'w', 'W':
		nudge(nil, ctl.WavetablePos+sign(k)*controlStep, s.synth.SetWavetablePos)
	case '-', '_':
		s.root.Apply(s.synth, s.root.Step(-1))
	case '+', '=':
		s.root.Apply(s.synth, s.root.Step(1))
	case ' ':
		s.toggle(ctx)
	case 's':
		fmt.Printf("%s\r\n", s.config())
	case 'q', 3:
		s.quit = true
	}
}

func (s *session) toggle(ctx context.Context) {
	var err error
	if s.engine != nil && s.engine.State() == persona.Running {
		err = s.synth.Pause(ctx)
	} else {
		err = s.synth.Resume(ctx)
	}
	if err != nil {
		logger.Error("toggle playback", "err", err)
	}
}

func sign(k rune) float64 {
	if k >= 'A' && k <= 'Z' {
		return 1
	}
	return -1
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
