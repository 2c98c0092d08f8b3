package generator

import (
	"fmt"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/scales"
)

// TooltipHTML is the hover text for rec. Line breaks are <br> tags; the page
// script inserts it as HTML.
func TooltipHTML(ds *fetcher.Dataset, rec fetcher.TemperatureRecord) string {
	return fmt.Sprintf("Year: %d<br>Month: %s<br>Temperature: %.2f°C<br>Variance: %.2f°C",
		rec.Year,
		scales.MonthName(rec.Month),
		ds.Temperature(rec),
		rec.Variance,
	)
}
