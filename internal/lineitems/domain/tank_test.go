package lineitems

import (
	"errors"
	"testing"
)

func TestGenerateTank_Rows(t *testing.T) {
	rows, err := GenerateTank(TankConfig{
		JobNumber:  "33371",
		Dash:       DefaultTankDash,
		DiameterIn: 96,
		HeightFt:   10,
		TypeCode:   "HW",
		Material:   "316",
	})
	if err != nil {
		t.Fatalf("GenerateTank: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].PartNumber != "33371-03" || rows[0].Description != "TANK, 96X10, HW, 316" {
		t.Fatalf("main row = %q %q", rows[0].PartNumber, rows[0].Description)
	}
	if rows[0].Template != TemplateFGFab || rows[0].ProductType != ProductItem {
		t.Fatalf("main row template/type = %q/%q", rows[0].Template, rows[0].ProductType)
	}

	// 10 ft -> 119.50 shell inches, always two decimals.
	if rows[1].PartNumber != "33371-03.1" || rows[1].Description != "TANK, SHELL, 96X119.50, 316" {
		t.Fatalf("shell row = %q %q", rows[1].PartNumber, rows[1].Description)
	}

	if rows[2].PartNumber != "33371-03-A" || rows[2].Description != "PRECUT TANK96X10, 11GA, 316" {
		t.Fatalf("precut row = %q %q", rows[2].PartNumber, rows[2].Description)
	}
	for _, r := range rows {
		if r.BOMNumber != r.PartNumber+"-000" {
			t.Fatalf("bom %q does not derive from %q", r.BOMNumber, r.PartNumber)
		}
		if r.Kind != KindTank {
			t.Fatalf("kind = %q", r.Kind)
		}
	}
}

func TestGenerateTank_MissingField(t *testing.T) {
	_, err := GenerateTank(TankConfig{JobNumber: "33371", Dash: "03", DiameterIn: 96, HeightFt: 10, Material: "304"})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "type_code" {
		t.Fatalf("expected type_code FieldError, got %v", err)
	}
}
