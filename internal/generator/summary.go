package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/scales"
)

// Summary describes a dataset and its legend without drawing the chart.
type Summary struct {
	Records         int
	FirstYear       int
	LastYear        int
	BaseTemperature float64

	MinTemp  float64
	MaxTemp  float64
	MeanTemp float64
	StdDev   float64

	Buckets []scales.LegendBucket
}

// Summarize computes the summary of ds. ds must hold at least one record.
func Summarize(ds *fetcher.Dataset) Summary {
	s := scales.Build(ds, Geometry)
	sample := stats.Sample{Xs: ds.Temperatures()}

	first, last := ds.MonthlyVariance[0].Year, ds.MonthlyVariance[0].Year
	for _, rec := range ds.MonthlyVariance {
		if rec.Year < first {
			first = rec.Year
		}
		if rec.Year > last {
			last = rec.Year
		}
	}

	return Summary{
		Records:         len(ds.MonthlyVariance),
		FirstYear:       first,
		LastYear:        last,
		BaseTemperature: ds.BaseTemperature,
		MinTemp:         s.MinTemp,
		MaxTemp:         s.MaxTemp,
		MeanTemp:        sample.Mean(),
		StdDev:          sample.StdDev(),
		Buckets:         s.LegendBuckets(),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// WriteSummary prints sum to w, with each legend bucket as a colored swatch.
func WriteSummary(w io.Writer, sum Summary) error {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString(headerStyle.Render(Title) + "\n")
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", label+":")), value)
	}
	row("Records", p.Sprintf("%d", sum.Records))
	row("Years", fmt.Sprintf("%d - %d", sum.FirstYear, sum.LastYear))
	row("Base temperature", fmt.Sprintf("%.2f°C", sum.BaseTemperature))
	row("Min temperature", fmt.Sprintf("%.2f°C", sum.MinTemp))
	row("Max temperature", fmt.Sprintf("%.2f°C", sum.MaxTemp))
	row("Mean temperature", fmt.Sprintf("%.2f°C", sum.MeanTemp))
	row("Std deviation", fmt.Sprintf("%.2f°C", sum.StdDev))

	b.WriteString("\n" + headerStyle.Render("Legend") + "\n")
	for _, bucket := range sum.Buckets {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(bucket.Color)).Render("    ")
		fmt.Fprintf(&b, "%s %5.1f - %5.1f°C  %s\n", swatch, bucket.Lower, bucket.Upper, bucket.Color)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
