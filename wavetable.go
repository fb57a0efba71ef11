package persona

import (
	"fmt"
	"math"

	"github.com/ktye/fft"
)

const DefaultTableSize = 2048

// A TableBuilder turns sine spectra into single-cycle wavetables with an
// inverse FFT.  It reuses its buffer, so it is not safe for concurrent use.
type TableBuilder struct {
	fft fft.FFT
	buf []complex128
}

// NewTableBuilder returns a builder for tables of the given size, which must
// be a power of two.
func NewTableBuilder(size int) (*TableBuilder, error) {
	if size < 4 || size&(size-1) != 0 {
		return nil, fmt.Errorf("wavetable size %d is not a power of two", size)
	}
	f, err := fft.New(size)
	if err != nil {
		return nil, fmt.Errorf("wavetable: %w", err)
	}
	return &TableBuilder{fft: f, buf: make([]complex128, size)}, nil
}

func (b *TableBuilder) Size() int { return len(b.buf) }

// Build writes one period of sum(imag[n]*sin(2*pi*n*k/size)) into a new table,
// normalized to a peak of 1.  Partials at or above size/2 are dropped.
func (b *TableBuilder) Build(imag []float64) []float64 {
	size := len(b.buf)
	for i := range b.buf {
		b.buf[i] = 0
	}
	for n := 1; n < len(imag) && n < size/2; n++ {
		b.buf[n] = complex(0, -imag[n]/2)
		b.buf[size-n] = complex(0, imag[n]/2)
	}
	b.buf = b.fft.Inverse(b.buf)

	table := make([]float64, size)
	peak := 0.0
	for i, x := range b.buf {
		table[i] = real(x)
		peak = math.Max(peak, math.Abs(table[i]))
	}
	if peak > 0 {
		for i := range table {
			table[i] /= peak
		}
	}
	return table
}
