package scales

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// axisMonths is monthNames reversed, the order the vertical axis is built from.
var axisMonths = func() [12]string {
	var r [12]string
	for i, name := range monthNames {
		r[len(monthNames)-1-i] = name
	}
	return r
}()

// AxisMonths returns the month names in vertical-axis domain order, December first.
func AxisMonths() []string {
	out := make([]string, len(axisMonths))
	copy(out, axisMonths[:])
	return out
}

// MonthName returns the label for a 1-based month, indexing the axis table as
// axisMonths[12-month]. It returns "" outside 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return axisMonths[12-month]
}
