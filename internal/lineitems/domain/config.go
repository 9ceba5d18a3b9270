package lineitems

import "strconv"

// Family dash defaults. Each family's line items hang off its own dash base
// within a job.
const (
	DefaultHeaterDash = "01"
	DefaultTankDash   = "03"
	DefaultPumpDash   = "05"
)

// HeaterConfig is the validated heater form input for one generation.
type HeaterConfig struct {
	JobNumber string
	Dash      string

	DiameterIn     int
	HeightIn       int
	StackDiamIn    int
	FlangeInletIn  int
	GasTrainSizeIn int

	Model         string
	Material      string
	GasTrainMount string
	BTUInMMBTU    float64
	Hand          string
	// Label distinguishes heaters on multi-heater jobs ("A"/"B"). The
	// form writes "0" for none; see hasLabel.
	Label string
}

// Validate reports the first missing or invalid field.
func (c HeaterConfig) Validate() error {
	if err := requireCommon(c.JobNumber, c.Dash); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"diameter_in", c.DiameterIn},
		{"height_in", c.HeightIn},
		{"stack_diam_in", c.StackDiamIn},
		{"flange_inlet_in", c.FlangeInletIn},
		{"gas_train_size_in", c.GasTrainSizeIn},
	} {
		if f.v <= 0 {
			return invalidField(f.name, f.v)
		}
	}
	if c.Model == "" {
		return missingField("model")
	}
	if c.Material == "" {
		return missingField("material")
	}
	if c.GasTrainMount == "" {
		return missingField("gas_train_mount")
	}
	if c.BTUInMMBTU <= 0 {
		return invalidField("btu_mmbtu", c.BTUInMMBTU)
	}
	if c.Hand == "" {
		return missingField("hand")
	}
	return nil
}

func (c HeaterConfig) params() map[string]string {
	return map[string]string{
		"job_number":        c.JobNumber,
		"dash":              c.Dash,
		"diameter_in":       strconv.Itoa(c.DiameterIn),
		"height_in":         strconv.Itoa(c.HeightIn),
		"stack_diam_in":     strconv.Itoa(c.StackDiamIn),
		"flange_inlet_in":   strconv.Itoa(c.FlangeInletIn),
		"gas_train_size_in": strconv.Itoa(c.GasTrainSizeIn),
		"model":             c.Model,
		"material":          c.Material,
		"gas_train_mount":   c.GasTrainMount,
		"btu_mmbtu":         formatNumber(c.BTUInMMBTU),
		"hand":              c.Hand,
		"label":             c.Label,
	}
}

// TankConfig is the validated tank form input for one generation.
type TankConfig struct {
	JobNumber string
	Dash      string

	DiameterIn int
	HeightFt   int
	TypeCode   string
	Material   string
}

// Validate reports the first missing or invalid field.
func (c TankConfig) Validate() error {
	if err := requireCommon(c.JobNumber, c.Dash); err != nil {
		return err
	}
	if c.DiameterIn <= 0 {
		return invalidField("diameter_in", c.DiameterIn)
	}
	if c.HeightFt <= 0 {
		return invalidField("height_ft", c.HeightFt)
	}
	if c.TypeCode == "" {
		return missingField("type_code")
	}
	if c.Material == "" {
		return missingField("material")
	}
	return nil
}

func (c TankConfig) params() map[string]string {
	return map[string]string{
		"job_number":  c.JobNumber,
		"dash":        c.Dash,
		"diameter_in": strconv.Itoa(c.DiameterIn),
		"height_ft":   strconv.Itoa(c.HeightFt),
		"type_code":   c.TypeCode,
		"material":    c.Material,
	}
}

// PumpConfig is the validated pump skid form input for one generation.
type PumpConfig struct {
	JobNumber string
	Dash      string

	PumpCount string
	Pressure  string
	TypeCode  string
	HP        float64
	Material  string

	FrameLenIn int
	FrameWIn   int
	FrameHIn   int
}

// Validate reports the first missing or invalid field.
func (c PumpConfig) Validate() error {
	if err := requireCommon(c.JobNumber, c.Dash); err != nil {
		return err
	}
	if c.PumpCount == "" {
		return missingField("pump_count")
	}
	if c.Pressure == "" {
		return missingField("pressure")
	}
	if c.TypeCode == "" {
		return missingField("type_code")
	}
	if c.HP <= 0 {
		return invalidField("hp", c.HP)
	}
	if c.Material == "" {
		return missingField("material")
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"frame_len_in", c.FrameLenIn},
		{"frame_w_in", c.FrameWIn},
		{"frame_h_in", c.FrameHIn},
	} {
		if f.v <= 0 {
			return invalidField(f.name, f.v)
		}
	}
	return nil
}

func (c PumpConfig) params() map[string]string {
	return map[string]string{
		"job_number":   c.JobNumber,
		"dash":         c.Dash,
		"pump_count":   c.PumpCount,
		"pressure":     c.Pressure,
		"type_code":    c.TypeCode,
		"hp":           formatNumber(c.HP),
		"material":     c.Material,
		"frame_len_in": strconv.Itoa(c.FrameLenIn),
		"frame_w_in":   strconv.Itoa(c.FrameWIn),
		"frame_h_in":   strconv.Itoa(c.FrameHIn),
	}
}

func requireCommon(jobNumber, dash string) error {
	if jobNumber == "" {
		return missingField("job_number")
	}
	if dash == "" {
		return missingField("dash")
	}
	return nil
}
