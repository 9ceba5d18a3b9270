package lineitems

import (
	"fmt"

	"fabline/internal/dimension"
)

// GenerateTank produces the three tank line items: FAB, .1 SHELL, -A PRECUT.
func GenerateTank(c TankConfig) ([]LineItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	params := c.params()
	rows := make([]LineItem, 0, 3)
	add := func(suffix, desc string, tmpl Template, ptype ProductType) {
		pn := PartNumber(c.JobNumber, c.Dash+suffix)
		rows = append(rows, LineItem{
			Kind:        KindTank,
			PartNumber:  pn,
			Description: desc,
			BOMNumber:   BOMNumber(pn),
			Template:    tmpl,
			ProductType: ptype,
			Params:      params,
		})
	}

	add("", fmt.Sprintf("TANK, %dX%d, %s, %s", c.DiameterIn, c.HeightFt, c.TypeCode, c.Material),
		TemplateFGFab, ProductItem)

	inches := dimension.TankInchesFromFeet(c.HeightFt)
	add(".1", fmt.Sprintf("TANK, SHELL, %dX%.2f, %s", c.DiameterIn, inches, c.Material),
		TemplateSubAssy, ProductPhantom)

	add("-A", fmt.Sprintf("PRECUT TANK%dX%d, 11GA, %s", c.DiameterIn, c.HeightFt, c.Material),
		TemplateSubAssy, ProductPhantom)

	return rows, nil
}
