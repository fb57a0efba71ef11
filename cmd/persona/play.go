package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/persona"
	"github.com/gordonklaus/persona/audio"
)

const controlRate = 60 // Hz

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the synth, steered from the keyboard or a MIDI input",
	Long: `Play the synth.  The persona, delay, entropy and refinement controls
drift slowly around their set values.  MIDI note-ons on --midi-port set the
root note.

Examples:
  persona play
  persona play --backend oto --midi-port "Launchkey" --window`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := audio.Open(backend, audio.Params{SampleRate: rate, BufferSize: buffer}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.Error("close audio", "err", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	s := newSession(e, persona.NewRand())
	if err := s.synth.Resume(ctx); err != nil {
		return err
	}

	notes := make(chan noteOn, 16)
	if midiPort != "" {
		stop, err := listenMIDI(midiPort, notes)
		if err != nil {
			return err
		}
		defer stop()
	}

	if window {
		return runWindow(ctx, s, notes)
	}

	keyc := make(chan rune, 16)
	if keys {
		restore, err := readKeys(ctx, keyc)
		if err != nil {
			return err
		}
		defer restore()
	}
	return control(ctx, s, keyc, notes)
}

// control owns the session until ctx is done or quit is pressed.  Keys and
// notes are handled once per control frame, before the drift step.
func control(ctx context.Context, s *session, keys <-chan rune, notes <-chan noteOn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	drift := s.loop.Task
	s.loop.Task = func(dt float64) {
		s.poll(ctx, keys, notes)
		if s.quit {
			cancel()
			return
		}
		drift(dt)
	}
	err := s.loop.Run(ctx, time.Second/controlRate)
	logger.Info("stopped", "config", s.config())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
