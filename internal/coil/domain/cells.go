package coil

// Cell is one extracted workbook cell: either a materialized value, an
// unevaluated formula string, or empty. Extraction happens outside this
// package; the reconciler only interprets what it is handed.
type Cell struct {
	Value   string
	Formula string
}

// HasValue reports whether the cell carries a materialized value.
func (c Cell) HasValue() bool { return c.Value != "" }

// HasFormula reports whether the cell carries only a formula to recompute.
func (c Cell) HasFormula() bool { return !c.HasValue() && c.Formula != "" }

// Empty reports a cell with neither value nor formula.
func (c Cell) Empty() bool { return c.Value == "" && c.Formula == "" }

// Row is one extracted workbook row with its labeled cells. Index is the
// 1-based workbook row number; the first data row is 3.
type Row struct {
	Index       int
	Diameter    Cell
	Length      Cell
	PartNumber  Cell
	Description Cell
	SquareFeet  Cell
}

// Sheet is one extracted workbook tab.
type Sheet struct {
	Name string
	Rows []Row
}

// HeaderRowThreshold: workbook rows below this 1-based index are headers.
const HeaderRowThreshold = 3

// allowedDiameters is the fixed set of shell diameters that appear in the
// legacy workbook. Membership is the validity check: a diameter outside the
// set is bad data even if it is numerically plausible.
var allowedDiameters = map[float64]struct{}{
	28.25: {}, 31.125: {}, 36: {}, 40: {}, 42: {}, 42.875: {}, 48: {},
	48.875: {}, 51.75: {}, 54: {}, 54.625: {}, 57.125: {}, 60: {},
	60.625: {}, 63.125: {}, 66: {}, 66.125: {}, 69: {}, 69.125: {},
	72: {}, 73.125: {}, 76: {}, 78: {}, 79.125: {}, 81.125: {}, 82: {},
	84: {}, 88: {}, 90: {}, 93.125: {}, 94: {}, 96: {}, 99.125: {},
	100: {}, 102: {}, 105.125: {}, 108: {}, 111.125: {}, 114: {},
	117.125: {}, 120: {}, 123.125: {}, 126: {}, 129.125: {}, 132: {},
	135.125: {}, 138: {}, 141.125: {}, 144: {}, 147.125: {}, 150: {},
	156: {}, 162: {}, 168: {},
}

// DiameterAllowed reports membership in the legacy diameter allow-list.
func DiameterAllowed(diameter float64) bool {
	_, ok := allowedDiameters[diameter]
	return ok
}
