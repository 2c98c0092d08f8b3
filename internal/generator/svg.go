package generator

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func startFrame(canvas *svg.SVG) {
	canvas.Start(OuterWidth, OuterHeight, `id="svg"`, `class="graph"`)
	canvas.Group(fmt.Sprintf(`transform="translate(%d,%d)"`, MarginLeft, MarginTop))
}

func endFrame(canvas *svg.SVG) {
	canvas.Gend()
	canvas.End()
}

// WriteFrame writes the empty chart frame: the sized <svg> and its inner
// group, with no axes, cells or legend.
func WriteFrame(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	startFrame(canvas)
	endFrame(canvas)
	return bw.Flush()
}

// WriteSVG writes the complete chart.
func (c *Chart) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	startFrame(canvas)

	newAxis(bottom, c.XTicks, 0, Width,
		`id="x-axis"`, fmt.Sprintf(`transform="translate(0,%d)"`, Height)).write(canvas)
	newAxis(left, c.YTicks, Height, 0, `id="y-axis"`).write(canvas)

	canvas.Text(Width/2, -MarginTop/1.7, Title,
		`id="title"`, `text-anchor="middle"`, "font-size:26px")
	canvas.Text(Width/2, -MarginTop/2+18, Description,
		`id="description"`, `text-anchor="middle"`, "font-size:18px")

	for _, cell := range c.Cells {
		canvas.Rect(cell.X, cell.Y, cell.Width, cell.Height,
			`class="cell"`,
			fmt.Sprintf(`fill="%s"`, cell.Fill),
			fmt.Sprintf(`data-month="%d"`, cell.Month),
			fmt.Sprintf(`data-year="%d"`, cell.Year),
			fmt.Sprintf(`data-temp="%s"`, num(cell.Temp)),
			fmt.Sprintf(`data-variance="%s"`, num(cell.Variance)),
			fmt.Sprintf(`data-tooltip="%s"`, html.EscapeString(cell.Tooltip)),
		)
	}

	c.writeLegend(canvas)

	endFrame(canvas)
	return bw.Flush()
}

func (c *Chart) writeLegend(canvas *svg.SVG) {
	canvas.Group(`id="legend"`,
		fmt.Sprintf(`transform="translate(%s,%s)"`, num((Width-LegendWidth)/2.0), num(Height+50)))

	for _, r := range c.Legend {
		canvas.Rect(r.X, 0, r.Width, LegendHeight, fmt.Sprintf(`fill="%s"`, r.Fill))
	}

	newLegendAxis(c.LegendTicks).write(canvas)

	canvas.Gend()
}

// newLegendAxis returns the axis under the legend strip. Ticks and the
// domain ends both extend 10px.
func newLegendAxis(ticks []Tick) axis {
	a := newAxis(bottom, ticks, 0, LegendWidth, fmt.Sprintf(`transform="translate(0,%d)"`, LegendHeight))
	a.inner = 10
	a.outer = 10
	return a
}
