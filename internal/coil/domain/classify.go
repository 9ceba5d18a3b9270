package coil

// Classifier decides whether a coil diameter belongs to a heater or a tank.
//
// Two rules exist in the legacy data and they disagree; each import source
// picks the rule its spreadsheet was built with. They stay separate on
// purpose: which one is authoritative for new data is a stakeholder
// question, not something to unify in code.
type Classifier interface {
	Classify(diameter float64) ComponentType
}

// ThresholdClassifier marks small diameters as heaters. The JSON-export
// data source used a fixed cutoff.
type ThresholdClassifier struct {
	// MaxHeaterDiameter is inclusive: a diameter at the threshold is
	// still a heater.
	MaxHeaterDiameter float64
}

// Classify applies the cutoff.
func (c ThresholdClassifier) Classify(diameter float64) ComponentType {
	if diameter <= c.MaxHeaterDiameter {
		return ComponentHeater
	}
	return ComponentTank
}

// DefaultThresholdClassifier is the JSON data source's rule: <=30" is a
// heater shell.
var DefaultThresholdClassifier = ThresholdClassifier{MaxHeaterDiameter: 30}

// MembershipClassifier marks a diameter as heater when it appears in a
// named heater-diameter set. The Excel data source carried such a set.
type MembershipClassifier struct {
	HeaterDiameters map[float64]struct{}
}

// NewMembershipClassifier builds a classifier over the given set.
func NewMembershipClassifier(diameters []float64) MembershipClassifier {
	set := make(map[float64]struct{}, len(diameters))
	for _, d := range diameters {
		set[d] = struct{}{}
	}
	return MembershipClassifier{HeaterDiameters: set}
}

// Classify applies set membership.
func (c MembershipClassifier) Classify(diameter float64) ComponentType {
	if _, ok := c.HeaterDiameters[diameter]; ok {
		return ComponentHeater
	}
	return ComponentTank
}

// LegacyHeaterDiameters is the heater-diameter set carried by the Excel
// data source. It happens to cover the full allow-list, so that source
// classifies every allowed coil as a heater; preserved as found.
func LegacyHeaterDiameters() []float64 {
	out := make([]float64, 0, len(allowedDiameters))
	for d := range allowedDiameters {
		out = append(out, d)
	}
	return out
}
