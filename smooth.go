package persona

import "math"

// A Target is a parameter value to approach exponentially with the given
// time constant in seconds.
type Target struct {
	Value        float64
	TimeConstant float64
}

// SmoothedParam approaches its target by current += (target-current)*(1-exp(-dt/tc))
// each time it is stepped.  Hosts step it once per engine tick.
type SmoothedParam struct {
	current float64
	target  Target
}

func NewSmoothedParam(v float64) *SmoothedParam {
	return &SmoothedParam{current: v, target: Target{Value: v}}
}

func (p *SmoothedParam) SetTarget(t Target) {
	if !finite(t.Value) {
		return
	}
	p.target = t
}

func (p *SmoothedParam) Step(dt float64) float64 {
	if !(dt > 0) {
		return p.current
	}
	if p.target.TimeConstant <= 0 {
		p.current = p.target.Value
		return p.current
	}
	p.current += (p.target.Value - p.current) * (1 - math.Exp(-dt/p.target.TimeConstant))
	return p.current
}

func (p *SmoothedParam) Value() float64 { return p.current }
func (p *SmoothedParam) Target() Target { return p.target }
func (p *SmoothedParam) Settled() bool  { return math.Abs(p.current-p.target.Value) < 1e-6 }
