//go:build !headless

package audio

import "github.com/gordonklaus/portaudio"

// PortAudio plays an engine through the default portaudio output device.
type PortAudio struct {
	stream *portaudio.Stream
}

func NewPortAudio(e *Engine) (*PortAudio, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, e.Params.SampleRate, e.Params.BufferSize, e.Render)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	return &PortAudio{stream: stream}, nil
}

func (p *PortAudio) Start() error { return p.stream.Start() }
func (p *PortAudio) Stop() error  { return p.stream.Stop() }

func (p *PortAudio) Close() error {
	err := p.stream.Close()
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
