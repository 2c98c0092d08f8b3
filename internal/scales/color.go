package scales

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// rdBu is the 11-class ColorBrewer RdBu diverging scheme, red to blue.
var rdBu = []color.RGBA{
	{0x67, 0x00, 0x1f, 0xff},
	{0xb2, 0x18, 0x2b, 0xff},
	{0xd6, 0x60, 0x4d, 0xff},
	{0xf4, 0xa5, 0x82, 0xff},
	{0xfd, 0xdb, 0xc7, 0xff},
	{0xf7, 0xf7, 0xf7, 0xff},
	{0xd1, 0xe5, 0xf0, 0xff},
	{0x92, 0xc5, 0xde, 0xff},
	{0x43, 0x93, 0xc3, 0xff},
	{0x21, 0x66, 0xac, 0xff},
	{0x05, 0x30, 0x61, 0xff},
}

// RdBu is the red-to-blue diverging gradient.
var RdBu palette.Continuous = BasisGradient{Colors: rdBu}

// BasisGradient is a Continuous palette through Colors using a uniform cubic
// B-spline per RGB channel. The curve starts at the first color and ends at
// the last; interior colors are control points, not stops.
type BasisGradient struct {
	Colors []color.RGBA
}

func (g BasisGradient) Map(t float64) color.Color {
	n := len(g.Colors) - 1
	if n < 1 {
		if n == 0 {
			return g.Colors[0]
		}
		return color.RGBA{}
	}

	var i int
	switch {
	case t <= 0:
		t, i = 0, 0
	case t >= 1:
		t, i = 1, n-1
	default:
		i = int(math.Floor(t * float64(n)))
	}
	x := (t - float64(i)/float64(n)) * float64(n)

	channel := func(get func(color.RGBA) uint8) uint8 {
		v1 := float64(get(g.Colors[i]))
		v2 := float64(get(g.Colors[i+1]))
		v0 := 2*v1 - v2
		if i > 0 {
			v0 = float64(get(g.Colors[i-1]))
		}
		v3 := 2*v2 - v1
		if i < n-1 {
			v3 = float64(get(g.Colors[i+2]))
		}
		return clamp8(basis(x, v0, v1, v2, v3))
	}

	return color.RGBA{
		R: channel(func(c color.RGBA) uint8 { return c.R }),
		G: channel(func(c color.RGBA) uint8 { return c.G }),
		B: channel(func(c color.RGBA) uint8 { return c.B }),
		A: 0xff,
	}
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Reversed flips a Continuous palette so that Map(t) = P.Map(1-t).
type Reversed struct {
	P palette.Continuous
}

func (r Reversed) Map(t float64) color.Color {
	return r.P.Map(1 - t)
}

// ColdToHot is RdBu reversed: blue for low values, red for high ones.
var ColdToHot palette.Continuous = Reversed{P: RdBu}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Sequential maps [Min, Max] onto [0, 1] and through an interpolating palette.
type Sequential struct {
	Min, Max float64
	Interp   palette.Continuous
}

// NewSequential returns a sequential color scale over [lo, hi].
func NewSequential(lo, hi float64, interp palette.Continuous) *Sequential {
	return &Sequential{Min: lo, Max: hi, Interp: interp}
}

// Color returns the palette color for x. A degenerate domain maps every
// value to the middle of the palette.
func (s *Sequential) Color(x float64) color.Color {
	t := 0.5
	if s.Max != s.Min {
		t = (x - s.Min) / (s.Max - s.Min)
	}
	return s.Interp.Map(t)
}

// Map returns the color for x as #rrggbb.
func (s *Sequential) Map(x float64) string {
	return Hex(s.Color(x))
}
