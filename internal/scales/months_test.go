package scales

import "testing"

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "January"},
		{2, "February"},
		{6, "June"},
		{12, "December"},
		{0, ""},
		{13, ""},
	}
	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q; want %q", tt.month, got, tt.want)
		}
	}
}

func TestAxisMonths_reversed(t *testing.T) {
	got := AxisMonths()
	if len(got) != 12 {
		t.Fatalf("len(AxisMonths()) = %d; want 12", len(got))
	}
	if got[0] != "December" || got[11] != "January" {
		t.Errorf("AxisMonths() = %v; want December first and January last", got)
	}

	// Callers get a copy.
	got[0] = "x"
	if AxisMonths()[0] != "December" {
		t.Error("AxisMonths() returned shared storage")
	}
}
