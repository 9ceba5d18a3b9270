package lineitems

import (
	"fmt"
	"strings"
)

// GeneratePump produces the three pump skid line items: main, .1 SKID,
// .1-A PRECUT.
func GeneratePump(c PumpConfig) ([]LineItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	params := c.params()
	rows := make([]LineItem, 0, 3)
	add := func(suffix, desc string, tmpl Template, ptype ProductType) {
		pn := PartNumber(c.JobNumber, c.Dash+suffix)
		rows = append(rows, LineItem{
			Kind:        KindPump,
			PartNumber:  pn,
			Description: desc,
			BOMNumber:   BOMNumber(pn),
			Template:    tmpl,
			ProductType: ptype,
			Params:      params,
		})
	}

	// Low pressure is the default build; its code never appears in the
	// description. Any other pressure code is spelled out.
	if strings.EqualFold(c.Pressure, "LP") {
		add("", fmt.Sprintf("PUMP, %s, %s, %sHP", c.PumpCount, c.TypeCode, formatNumber(c.HP)),
			TemplateFGFab, ProductItem)
	} else {
		add("", fmt.Sprintf("PUMP, %s, %s, %s, %sHP", c.PumpCount, c.Pressure, c.TypeCode, formatNumber(c.HP)),
			TemplateFGFab, ProductItem)
	}

	add(".1", fmt.Sprintf("PUMP SKID, %s, %dX%dX%d, %s", c.PumpCount, c.FrameLenIn, c.FrameWIn, c.FrameHIn, c.Material),
		TemplateSubAssy, ProductPhantom)

	// Simplex skids are light enough for 11GA; anything bigger gets
	// 3/16 plate.
	gauge := "3/16PL"
	if strings.EqualFold(c.PumpCount, "SIMPLEX") {
		gauge = "11GA"
	}
	add(".1-A", fmt.Sprintf("PRECUT, %s PUMP SKID, %s", c.PumpCount, gauge),
		TemplateSubAssy, ProductPhantom)

	return rows, nil
}
