package generator

import (
	"fmt"

	svg "github.com/ajstarks/svgo/float"
)

type orientation int

const (
	bottom orientation = iota
	left
)

// axis draws a domain line and labeled ticks the way a chart axis does: ticks
// extend outward by inner pixels, the domain line ends bend outward by outer.
type axis struct {
	attrs      []string
	orient     orientation
	ticks      []Tick
	r0, r1     float64
	inner      float64
	outer      float64
	labelSpace float64
}

func newAxis(orient orientation, ticks []Tick, r0, r1 float64, attrs ...string) axis {
	return axis{
		attrs:      attrs,
		orient:     orient,
		ticks:      ticks,
		r0:         r0,
		r1:         r1,
		inner:      6,
		outer:      6,
		labelSpace: 3,
	}
}

func (a axis) write(canvas *svg.SVG) {
	anchor := `text-anchor="middle"`
	if a.orient == left {
		anchor = `text-anchor="end"`
	}
	attrs := append(append([]string(nil), a.attrs...),
		`fill="none"`, `font-size="10"`, `font-family="sans-serif"`, anchor)
	canvas.Group(attrs...)

	canvas.Path(a.domainPath(), `class="domain"`, `stroke="currentColor"`)

	offset := a.inner
	if offset < 0 {
		offset = 0
	}
	offset += a.labelSpace
	for _, t := range a.ticks {
		switch a.orient {
		case bottom:
			canvas.Group(`class="tick"`, `opacity="1"`, fmt.Sprintf(`transform="translate(%s,0)"`, num(t.Pos)))
			canvas.Line(0, 0, 0, a.inner, `stroke="currentColor"`)
			canvas.Text(0, offset, t.Label, `fill="currentColor"`, `dy="0.71em"`)
		case left:
			canvas.Group(`class="tick"`, `opacity="1"`, fmt.Sprintf(`transform="translate(0,%s)"`, num(t.Pos)))
			canvas.Line(0, 0, -a.inner, 0, `stroke="currentColor"`)
			canvas.Text(-offset, 0, t.Label, `fill="currentColor"`, `dy="0.32em"`)
		}
		canvas.Gend()
	}

	canvas.Gend()
}

func (a axis) domainPath() string {
	switch a.orient {
	case left:
		return fmt.Sprintf("M%s,%sH0V%sH%s", num(-a.outer), num(a.r0), num(a.r1), num(-a.outer))
	default:
		return fmt.Sprintf("M%s,%sV0H%sV%s", num(a.r0), num(a.outer), num(a.r1), num(a.outer))
	}
}
