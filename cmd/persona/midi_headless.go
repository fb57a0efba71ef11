//go:build headless

package main

import "errors"

func listenMIDI(port string, notes chan<- noteOn) (stop func(), err error) {
	return nil, errors.New("MIDI input is not available in headless builds")
}
