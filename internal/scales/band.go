package scales

// Band maps discrete values to equal-width contiguous slots of a range, with
// no padding between slots. Duplicate domain values keep their first position.
type Band[K comparable] struct {
	domain  []K
	index   map[K]int
	start   float64
	step    float64
	reverse bool
}

// NewBand builds a band scale over domain spanning [r0, r1]. When r1 < r0 the
// first domain value is placed at the high end of the range.
func NewBand[K comparable](domain []K, r0, r1 float64) *Band[K] {
	b := &Band[K]{index: make(map[K]int, len(domain))}
	for _, v := range domain {
		if _, ok := b.index[v]; ok {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}

	b.reverse = r1 < r0
	start, stop := r0, r1
	if b.reverse {
		start, stop = r1, r0
	}
	n := len(b.domain)
	if n < 1 {
		n = 1
	}
	b.start = start
	b.step = (stop - start) / float64(n)
	return b
}

// Map returns the start position of v's slot. ok is false if v is not in the domain.
func (b *Band[K]) Map(v K) (pos float64, ok bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	if b.reverse {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Bandwidth returns the width of each slot.
func (b *Band[K]) Bandwidth() float64 {
	return b.step
}

// Domain returns the distinct domain values in first-seen order.
func (b *Band[K]) Domain() []K {
	out := make([]K, len(b.domain))
	copy(out, b.domain)
	return out
}
