//go:build !headless

package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gordonklaus/persona"
	"github.com/gordonklaus/persona/render"
)

// runWindow hands the session to the window's game loop, which then owns it
// until the window closes.
func runWindow(ctx context.Context, s *session, notes <-chan noteOn) error {
	c := render.NewCanvas(winW, winH, persona.NewSampler(s.synth.Stages(), s.rand), s.rand)
	w := render.NewWindow(c, s.loop, s.view)
	w.Poll = func() error {
		if ctx.Err() != nil {
			return ebiten.Termination
		}
		s.poll(ctx, nil, notes)
		return nil
	}
	w.OnKey = func(k ebiten.Key) bool {
		if r, ok := keyRune(k); ok {
			s.key(ctx, r)
		}
		return !s.quit
	}
	err := w.Run("persona")
	logger.Info("window closed", "config", s.config())
	return err
}

func keyRune(k ebiten.Key) (rune, bool) {
	name := k.String()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		if shift {
			return rune(name[0]), true
		}
		return rune(name[0]) + 'a' - 'A', true
	case k == ebiten.KeyMinus:
		return '-', true
	case k == ebiten.KeyEqual:
		return '+', true
	case k == ebiten.KeySpace:
		return ' ', true
	}
	return 0, false
}
