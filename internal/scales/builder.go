// Package scales derives the chart's position and color mappings from a dataset.
package scales

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
)

// Set holds every scale derived from one dataset.
type Set struct {
	Years   *Band[int]
	Months  *Band[string]
	Color   *Sequential
	Legend  *Threshold
	LegendX *Linear

	MinTemp, MaxTemp float64
}

// Geometry is the pixel extent the scales map onto.
type Geometry struct {
	Width, Height float64
	LegendWidth   float64
}

// Build derives all scales from ds. It is a pure function of its inputs.
// ds must hold at least one record.
func Build(ds *fetcher.Dataset, g Geometry) *Set {
	years := make([]int, len(ds.MonthlyVariance))
	for i, rec := range ds.MonthlyVariance {
		years[i] = rec.Year
	}

	lo, hi := stats.Bounds(ds.Temperatures())

	legendColors := LegendColors(ColdToHot)

	return &Set{
		Years:   NewBand(years, 0, g.Width),
		Months:  NewBand(AxisMonths(), g.Height, 0),
		Color:   NewSequential(lo, hi, ColdToHot),
		Legend:  NewLegendThreshold(lo, hi, legendColors),
		LegendX: NewLinear(lo, hi, 0, g.LegendWidth),
		MinTemp: lo,
		MaxTemp: hi,
	}
}

// CellPosition returns the top-left corner of rec's cell.
func (s *Set) CellPosition(rec fetcher.TemperatureRecord) (x, y float64) {
	x, _ = s.Years.Map(rec.Year)
	y, _ = s.Months.Map(MonthName(rec.Month))
	return x, y
}

// LegendBuckets returns the legend intervals closed by the data extent.
func (s *Set) LegendBuckets() []LegendBucket {
	return s.Legend.LegendBuckets(s.MinTemp, s.MaxTemp)
}
