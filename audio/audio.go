package audio

// Audio is one block of mono samples.
type Audio []float64

func (a *Audio) InitAudio(p Params) {
	*a = make(Audio, p.BufferSize)
}

// Resize returns a with length n, reallocating only when it must grow.
func (a Audio) Resize(n int) Audio {
	if cap(a) < n {
		return make(Audio, n)
	}
	return a[:n]
}

func (z Audio) Zero() Audio {
	for i := range z {
		z[i] = 0
	}
	return z
}

// AddX adds y scaled by f into x.
func (z Audio) AddX(x Audio, y Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] + f*y[i]
	}
	return z
}

// MulX scales x by f into z.
func (z Audio) MulX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] * f
	}
	return z
}
