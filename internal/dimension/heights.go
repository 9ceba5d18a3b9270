package dimension

// tankHeightStep maps a closed range of nominal feet to the inch offset
// applied to feet*12. The steps come from the shell layout table in the
// engineering workbook; they are a lookup, not a formula, and are checked in
// ascending order.
type tankHeightStep struct {
	minFt  int
	maxFt  int
	offset float64
}

var tankHeightSteps = []tankHeightStep{
	{4, 6, 0.25},
	{7, 12, -0.5},
	{13, 16, -1.25},
	{17, 24, -2},
	{25, 30, -2.75},
	{31, 35, -3.5},
}

// TankInchesFromFeet converts a nominal tank height in feet to the actual
// shell height in inches. Values outside the table fall through to a plain
// feet*12: the table's authors treat that as the extrapolation default, so
// out-of-range input is not an error here.
func TankInchesFromFeet(feet int) float64 {
	for _, step := range tankHeightSteps {
		if feet >= step.minFt && feet <= step.maxFt {
			return float64(feet)*12 + step.offset
		}
	}
	return float64(feet) * 12
}
