//go:build !headless

package audio

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
)

// Oto plays an engine through an oto player.  Only one oto context may exist
// per process.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
}

func NewOto(e *Engine) (*Oto, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(e.Params.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &Oto{ctx: ctx, player: ctx.NewPlayer(&otoReader{engine: e})}, nil
}

func (o *Oto) Start() error {
	o.player.Play()
	return nil
}

func (o *Oto) Stop() error {
	o.player.Pause()
	return nil
}

func (o *Oto) Close() error { return o.player.Close() }

// otoReader renders the engine as little-endian float32 bytes.
type otoReader struct {
	engine *Engine
	buf    []float32
}

func (r *otoReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	r.buf = r.buf[:n]
	r.engine.Render(r.buf)
	for i, x := range r.buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(x))
	}
	return 4 * n, nil
}
