package scales

import "github.com/aclements/go-moremath/scale"

// Linear maps a numeric domain linearly onto [R0, R1].
type Linear struct {
	dom    scale.Linear
	R0, R1 float64
}

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{
		dom: scale.Linear{Min: d0, Max: d1},
		R0:  r0,
		R1:  r1,
	}
}

// Map returns the range position of x. A degenerate domain maps every value
// to the middle of the range.
func (l *Linear) Map(x float64) float64 {
	t := 0.5
	if l.dom.Min != l.dom.Max {
		t = l.dom.Map(x)
	}
	return l.R0 + t*(l.R1-l.R0)
}

// Domain returns the input bounds.
func (l *Linear) Domain() (lo, hi float64) {
	return l.dom.Min, l.dom.Max
}
