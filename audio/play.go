package audio

import (
	"fmt"
	"log/slog"

	"github.com/gordonklaus/persona"
)

// Backend names accepted by Open.
const (
	PortAudioBackend = "portaudio"
	OtoBackend       = "oto"
	HeadlessBackend  = "headless"
)

// Open creates an engine playing through the named backend.  The engine
// starts suspended; resume it to hear anything.
func Open(backend string, p Params, log *slog.Logger) (*Engine, error) {
	e, err := NewEngine(p, log)
	if err != nil {
		return nil, err
	}
	var b Backend
	switch backend {
	case PortAudioBackend:
		b, err = NewPortAudio(e)
	case OtoBackend:
		b, err = NewOto(e)
	case HeadlessBackend, "":
	default:
		return nil, fmt.Errorf("%w: %q", persona.ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}
	if b != nil {
		e.SetBackend(b)
	}
	e.log.Info("audio engine open", "backend", backend, "rate", p.SampleRate)
	return e, nil
}
