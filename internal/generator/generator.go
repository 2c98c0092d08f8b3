// Package generator turns a temperature dataset into the heat map's render
// commands and writes them out as SVG and HTML.
package generator

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/natefinch/atomic"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/scales"
)

// Chart geometry.
const (
	MarginTop    = 60
	MarginRight  = 100
	MarginBottom = 100
	MarginLeft   = 100

	OuterWidth  = 1300
	OuterHeight = 600

	Width  = OuterWidth - MarginLeft - MarginRight
	Height = OuterHeight - MarginTop - MarginBottom

	LegendWidth  = 350
	LegendHeight = 30
)

const (
	Title       = "Monthly Global Land-Surface Temperature"
	Description = "Temperatures from 1754 to 2015"
)

// Geometry is the pixel extent handed to the scale builder.
var Geometry = scales.Geometry{Width: Width, Height: Height, LegendWidth: LegendWidth}

// Cell is the render command for one record.
type Cell struct {
	X, Y          float64
	Width, Height float64
	Fill          string

	Year     int
	Month    int // zero-based
	Temp     float64
	Variance float64
	Tooltip  string
}

// Tick is one axis label at a position along the axis.
type Tick struct {
	Pos   float64
	Label string
}

// LegendRect is one colored bucket of the legend strip.
type LegendRect struct {
	X, Width float64
	Fill     string
	Bucket   scales.LegendBucket
}

// Chart is the full set of render commands for one dataset.
type Chart struct {
	Scales *scales.Set

	XTicks      []Tick
	YTicks      []Tick
	Cells       []Cell
	Legend      []LegendRect
	LegendTicks []Tick
}

// BuildChart derives scales from ds and maps every record through them.
// ds must hold at least one record.
func BuildChart(ds *fetcher.Dataset) *Chart {
	s := scales.Build(ds, Geometry)
	c := &Chart{Scales: s}

	xw := s.Years.Bandwidth()
	for _, year := range s.Years.Domain() {
		if year%10 != 0 {
			continue
		}
		x, _ := s.Years.Map(year)
		c.XTicks = append(c.XTicks, Tick{Pos: x + xw/2, Label: strconv.Itoa(year)})
	}

	yw := s.Months.Bandwidth()
	for _, name := range s.Months.Domain() {
		y, _ := s.Months.Map(name)
		c.YTicks = append(c.YTicks, Tick{Pos: y + yw/2, Label: name})
	}

	c.Cells = make([]Cell, len(ds.MonthlyVariance))
	for i, rec := range ds.MonthlyVariance {
		x, y := s.CellPosition(rec)
		temp := ds.Temperature(rec)
		c.Cells[i] = Cell{
			X:        x,
			Y:        y,
			Width:    xw,
			Height:   yw,
			Fill:     s.Color.Map(temp),
			Year:     rec.Year,
			Month:    rec.Month - 1,
			Temp:     temp,
			Variance: rec.Variance,
			Tooltip:  TooltipHTML(ds, rec),
		}
	}

	for _, b := range s.LegendBuckets() {
		x0, x1 := s.LegendX.Map(b.Lower), s.LegendX.Map(b.Upper)
		c.Legend = append(c.Legend, LegendRect{X: x0, Width: x1 - x0, Fill: b.Color, Bucket: b})
	}
	for _, v := range s.Legend.Bounds() {
		c.LegendTicks = append(c.LegendTicks, Tick{Pos: s.LegendX.Map(v), Label: fmt.Sprintf("%.1f", v)})
	}

	return c
}

// GenerateHeatmapHTML renders the page for chart and atomically replaces outputPath.
func GenerateHeatmapHTML(chart *Chart, outputPath string, refresh int) error {
	var buf bytes.Buffer
	if err := RenderChartPage(&buf, chart, refresh); err != nil {
		return err
	}
	return atomic.WriteFile(outputPath, &buf)
}

// GenerateFrameHTML writes the page with only the empty chart frame, used
// when the dataset could not be loaded.
func GenerateFrameHTML(outputPath string, refresh int) error {
	var buf bytes.Buffer
	if err := RenderFramePage(&buf, refresh); err != nil {
		return err
	}
	return atomic.WriteFile(outputPath, &buf)
}

// WriteSVGFile atomically writes the standalone SVG for chart.
func WriteSVGFile(chart *Chart, outputPath string) error {
	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf); err != nil {
		return fmt.Errorf("failed to render SVG: %w", err)
	}
	return atomic.WriteFile(outputPath, &buf)
}
