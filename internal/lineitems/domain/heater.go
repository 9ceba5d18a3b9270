package lineitems

import (
	"fmt"
	"strings"

	"fabline/internal/dimension"
)

// dualBTUThreshold splits heater mod piping into SINGLE and DUAL trains.
// Strictly-less-than: a 15 MMBTU heater is already DUAL.
const dualBTUThreshold = 15.0

// GenerateHeater produces the seven heater line items in fixed order:
// FAB, .1 WELD, .2 SHELL, .3 STACK, .4 GAS TRAIN, .5 MOD PIPING,
// .1-A PRECUT. Either all seven rows are produced or none.
func GenerateHeater(c HeaterConfig) ([]LineItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(c.Label)
	hasLabel := hasLabel(label)
	params := c.params()

	rows := make([]LineItem, 0, 7)
	add := func(suffix, desc string, tmpl Template, ptype ProductType) {
		pn := PartNumber(c.JobNumber, c.Dash+suffix)
		rows = append(rows, LineItem{
			Kind:        KindHeater,
			PartNumber:  pn,
			Description: desc,
			BOMNumber:   BOMNumber(pn),
			Template:    tmpl,
			ProductType: ptype,
			Params:      params,
		})
	}

	heater := "HEATER"
	if hasLabel {
		heater = "HEATER " + label
	}

	add("", fmt.Sprintf("%s, FAB, %dX%d, %s, %s", heater, c.DiameterIn, c.HeightIn, c.Model, c.Material),
		TemplateFGFab, ProductItem)

	add(".1", fmt.Sprintf("%s, WELD, %dX%d, %s", heater, c.DiameterIn, c.HeightIn, c.Material),
		TemplateSubAssy, ProductPeggedSupply)

	add(".2", fmt.Sprintf("%s, SHELL, %dX%d, %s", heater, c.DiameterIn, c.HeightIn, c.Material),
		TemplateSubAssy, ProductPhantom)

	// The stack height runs the inch height through the tank feet table.
	// That coupling is how the workbook sizes stacks; keep it.
	stackHeight := int(dimension.TankInchesFromFeet(c.HeightIn))
	add(".3", fmt.Sprintf("%s, STACK, %dX%d, W/%dFL", heater, c.StackDiamIn, stackHeight, c.FlangeInletIn),
		TemplateSubAssy, ProductPhantom)

	gasTrain := "GAS TRAIN"
	if hasLabel {
		gasTrain = fmt.Sprintf("GAS TRAIN, HTR %s", label)
	}
	add(".4", fmt.Sprintf("%s, %d, %s, SIEMENS, %sMBTU, %s",
		gasTrain, c.GasTrainSizeIn, c.GasTrainMount, formatNumber(c.BTUInMMBTU), c.Hand),
		TemplateSubAssy, ProductPeggedSupply)

	if c.BTUInMMBTU < dualBTUThreshold {
		add(".5", fmt.Sprintf("%s, MOD PIPING, %s", heater, c.Model),
			TemplateSubAssy, ProductPhantom)
	} else {
		add(".5", fmt.Sprintf("%s, MOD PIPING, DUAL, %s", heater, c.Model),
			TemplateSubAssy, ProductPhantom)
	}

	add(".1-A", fmt.Sprintf("PRECUT HTR%d, %dSTACK, 11GA, %s", c.DiameterIn, c.StackDiamIn, c.Material),
		TemplateSubAssy, ProductPhantom)

	return rows, nil
}

// hasLabel reports whether the heater label field carries a real label.
// The form's "none" spellings are "", "0" and "0.0".
func hasLabel(label string) bool {
	switch label {
	case "", "0", "0.0":
		return false
	}
	return true
}
