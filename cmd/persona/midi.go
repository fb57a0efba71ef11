//go:build !headless

package main

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/gordonklaus/persona"
)

// listenMIDI sends every note-on arriving at port to notes.  Notes are
// dropped while the channel is full.
func listenMIDI(port string, notes chan<- noteOn) (stop func(), err error) {
	in, err := midi.FindInPort(port)
	if err != nil {
		return nil, fmt.Errorf("MIDI input %q: %w", port, err)
	}
	stop, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		key, vel, ok := persona.NoteOnKey(msg)
		if !ok {
			return
		}
		select {
		case notes <- noteOn{key, vel}:
		default:
			logger.Warn("MIDI note dropped", "key", key)
		}
	}, midi.HandleError(func(err error) {
		logger.Warn("MIDI listener error", "port", port, "err", err)
	}))
	if err != nil {
		return nil, fmt.Errorf("listen to %q: %w", port, err)
	}
	logger.Info("MIDI input connected", "port", in.String())
	return func() {
		stop()
		midi.CloseDriver()
	}, nil
}
