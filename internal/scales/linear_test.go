package scales

import "testing"

func TestLinear(t *testing.T) {
	l := NewLinear(2, 12, 0, 350)
	tests := []struct {
		x, want float64
	}{
		{2, 0},
		{12, 350},
		{7, 175},
	}
	for _, tt := range tests {
		if got := l.Map(tt.x); got != tt.want {
			t.Errorf("Map(%v) = %v; want %v", tt.x, got, tt.want)
		}
	}

	lo, hi := l.Domain()
	if lo != 2 || hi != 12 {
		t.Errorf("Domain() = (%v, %v); want (2, 12)", lo, hi)
	}
}

func TestLinear_degenerateDomain(t *testing.T) {
	l := NewLinear(8.5, 8.5, 0, 350)
	if got := l.Map(8.5); got != 175 {
		t.Errorf("Map(8.5) = %v; want 175", got)
	}
}
