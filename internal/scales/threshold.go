package scales

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/palette"
)

// LegendStops are the gradient positions sampled for the legend colors.
var LegendStops = []float64{0, 0.1, 0.2, 0.35, 0.5, 0.65, 0.75, 0.9, 1}

// Threshold is a step function from numbers to colors. Bounds are the
// internal boundaries; Colors has one more entry than Bounds.
type Threshold struct {
	bounds []float64
	colors []string
}

// NewThreshold returns a threshold scale. len(colors) must be len(bounds)+1.
func NewThreshold(bounds []float64, colors []string) (*Threshold, error) {
	if len(colors) != len(bounds)+1 {
		return nil, fmt.Errorf("threshold scale needs %d colors for %d bounds, got %d", len(bounds)+1, len(bounds), len(colors))
	}
	t := &Threshold{
		bounds: append([]float64(nil), bounds...),
		colors: append([]string(nil), colors...),
	}
	return t, nil
}

// LegendColors samples interp at LegendStops.
func LegendColors(interp palette.Continuous) []string {
	colors := make([]string, len(LegendStops))
	for i, stop := range LegendStops {
		colors[i] = Hex(interp.Map(stop))
	}
	return colors
}

// NewLegendThreshold splits [lo, hi] into len(colors) equal-width buckets.
func NewLegendThreshold(lo, hi float64, colors []string) *Threshold {
	step := (hi - lo) / float64(len(colors))
	bounds := make([]float64, len(colors)-1)
	for i := range bounds {
		bounds[i] = lo + float64(i+1)*step
	}
	// Lengths agree by construction.
	t, _ := NewThreshold(bounds, colors)
	return t
}

// Map returns the color of the bucket containing x. A value equal to a
// boundary belongs to the bucket above it.
func (t *Threshold) Map(x float64) string {
	i := sort.Search(len(t.bounds), func(i int) bool { return t.bounds[i] > x })
	return t.colors[i]
}

// Bounds returns the internal boundaries in increasing order.
func (t *Threshold) Bounds() []float64 {
	return append([]float64(nil), t.bounds...)
}

// Colors returns the bucket colors, lowest bucket first.
func (t *Threshold) Colors() []string {
	return append([]string(nil), t.colors...)
}

// Extent is the interval of one threshold bucket. The lowest bucket has no
// lower bound and the highest has no upper bound.
type Extent struct {
	Lower, Upper       float64
	HasLower, HasUpper bool
}

func (t *Threshold) extentAt(i int) Extent {
	var e Extent
	if i > 0 && i-1 < len(t.bounds) {
		e.Lower, e.HasLower = t.bounds[i-1], true
	}
	if i >= 0 && i < len(t.bounds) {
		e.Upper, e.HasUpper = t.bounds[i], true
	}
	return e
}

// InvertExtent returns the extent of the first bucket colored c.
func (t *Threshold) InvertExtent(c string) (Extent, bool) {
	for i, col := range t.colors {
		if col == c {
			return t.extentAt(i), true
		}
	}
	return Extent{}, false
}

// LegendBucket is one legend interval with open ends closed by the data extent.
type LegendBucket struct {
	Lower, Upper float64
	Color        string
}

// LegendBuckets inverts each color of the range to its extent, substituting
// lo and hi for open ends. A repeated color yields its first bucket again.
func (t *Threshold) LegendBuckets(lo, hi float64) []LegendBucket {
	colors := t.Colors()
	buckets := make([]LegendBucket, len(colors))
	for i, c := range colors {
		e, _ := t.InvertExtent(c)
		b := LegendBucket{Lower: lo, Upper: hi}
		if e.HasLower {
			b.Lower = e.Lower
		}
		if e.HasUpper {
			b.Upper = e.Upper
		}
		b.Color = t.Map(b.Lower)
		buckets[i] = b
	}
	return buckets
}
