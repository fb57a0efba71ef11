package persona

import (
	"net/url"
	"strconv"
	"strings"
)

// Config keys, in wire order.
const (
	KeyPersona         = "p"
	KeyDelay           = "d"
	KeyEntropy         = "e"
	KeyRefinement      = "r"
	KeyPersonaDepth    = "pl"
	KeyDelayDepth      = "dl"
	KeyEntropyDepth    = "el"
	KeyRefinementDepth = "rl"
	KeyWavetable       = "w"
	KeyRootNote        = "rn"
)

var numericKeys = []string{
	KeyPersona, KeyDelay, KeyEntropy, KeyRefinement,
	KeyPersonaDepth, KeyDelayDepth, KeyEntropyDepth, KeyRefinementDepth,
	KeyWavetable,
}

// A Config is the whole shareable state of a session: the four controls,
// their LFO depths, the wavetable position and the root note name.  Absent
// fields are simply missing from Values.
type Config struct {
	Values   map[string]float64
	RootNote string
}

// Encode writes c as key=value pairs joined by '&', numbers fixed to three
// decimals.
func (c Config) Encode() string {
	var parts []string
	for _, k := range numericKeys {
		v, ok := c.Values[k]
		if !ok || !finite(v) {
			continue
		}
		parts = append(parts, k+"="+strconv.FormatFloat(v, 'f', 3, 64))
	}
	if c.RootNote != "" {
		parts = append(parts, KeyRootNote+"="+url.QueryEscape(c.RootNote))
	}
	return strings.Join(parts, "&")
}

// DecodeConfig parses an encoded config, with or without a leading '#'.
// Unknown keys and values that do not parse are dropped.
func DecodeConfig(s string) Config {
	c := Config{Values: map[string]float64{}}
	s = strings.TrimPrefix(s, "#")
	for _, pair := range strings.Split(s, "&") {
		eq := strings.IndexByte(pair, '=')
		if eq <= 0 {
			continue
		}
		key, raw := pair[:eq], pair[eq+1:]
		if key == KeyRootNote {
			if rn, err := url.QueryUnescape(raw); err == nil {
				c.RootNote = rn
			}
			continue
		}
		if !isNumericKey(key) {
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil && finite(v) {
			c.Values[key] = v
		}
	}
	return c
}

func isNumericKey(k string) bool {
	for _, n := range numericKeys {
		if k == n {
			return true
		}
	}
	return false
}

// CaptureConfig records the current controls, drift depths and root note.
func CaptureConfig(s *Synth, d *Drift, root *Root) Config {
	ctl := s.Controls()
	c := Config{Values: map[string]float64{
		KeyPersona:    ctl.Value,
		KeyDelay:      ctl.Delay,
		KeyEntropy:    ctl.Entropy,
		KeyRefinement: ctl.Refinement,
		KeyWavetable:  ctl.WavetablePos,
	}}
	if d != nil {
		c.Values[KeyPersonaDepth] = d.Persona.Depth
		c.Values[KeyDelayDepth] = d.Delay.Depth
		c.Values[KeyEntropyDepth] = d.Entropy.Depth
		c.Values[KeyRefinementDepth] = d.Refinement.Depth
	}
	if root != nil {
		if n, ok := root.Note(); ok {
			c.RootNote = NoteName(n)
		}
	}
	return c
}

// Apply pushes the present fields into the synth, drift and root.  Each
// control also becomes the centre of its LFO.  A root note that does not
// parse is ignored.  d and root may be nil.
func (c Config) Apply(s *Synth, d *Drift, root *Root) {
	if d == nil {
		d = new(Drift)
	}
	if root == nil {
		root = new(Root)
	}
	controls := []struct {
		key, depthKey string
		lfo           *LFO
		set           func(float64)
	}{
		{KeyPersona, KeyPersonaDepth, &d.Persona, s.SetValue},
		{KeyDelay, KeyDelayDepth, &d.Delay, s.SetDelay},
		{KeyEntropy, KeyEntropyDepth, &d.Entropy, s.SetEntropy},
		{KeyRefinement, KeyRefinementDepth, &d.Refinement, s.SetRefinement},
	}
	for _, ctl := range controls {
		if v, ok := c.Values[ctl.key]; ok {
			ctl.lfo.Base = v
			ctl.set(v)
		}
	}
	for _, ctl := range controls {
		if v, ok := c.Values[ctl.depthKey]; ok {
			ctl.lfo.Depth = v
		}
	}
	if v, ok := c.Values[KeyWavetable]; ok {
		s.SetWavetablePos(v)
	}
	if c.RootNote != "" {
		if n, err := ParseNote(c.RootNote); err == nil {
			root.Apply(s, n)
		}
	}
}
