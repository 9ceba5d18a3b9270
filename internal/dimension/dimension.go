// Package dimension holds the sheet-metal math shared by the line item
// generators and the legacy coil import. The formulas replicate the
// engineering workbook cell formulas and their constants must not change.
package dimension

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension indicates a non-finite, zero or negative geometry input.
// The legacy workbook tooling mapped these to 0.0; here they are reported so
// bad data cannot masquerade as an empty sheet.
var ErrInvalidDimension = errors.New("dimension: invalid dimension")

const (
	// seamAllowance is subtracted from the diameter before computing the
	// circumference; it accounts for the rolled seam (workbook constant).
	seamAllowance = 0.1094
	// overlapInches is the flat overlap added to every coil length.
	overlapInches = 2.0
)

// LengthFromDiameter computes the coil length in inches needed to roll a
// shell of the given diameter: ceiling(pi*(d-0.1094)+2) to the next quarter
// inch. Rounding is upward only; a coil cut short of the formula value is
// scrap.
func LengthFromDiameter(diameterIn float64) (float64, error) {
	if err := checkPositive("diameter", diameterIn); err != nil {
		return 0, err
	}
	raw := math.Pi*(diameterIn-seamAllowance) + overlapInches
	return ceilQuarter(raw), nil
}

// SquareFeet computes the sheet area for a diameter/length pair,
// (d*l)/144, rounded to the nearest quarter square foot. Unlike
// LengthFromDiameter this rounds to nearest, matching the workbook's
// MROUND, not its CEILING.
func SquareFeet(diameterIn, lengthIn float64) (float64, error) {
	if err := checkPositive("diameter", diameterIn); err != nil {
		return 0, err
	}
	if err := checkPositive("length", lengthIn); err != nil {
		return 0, err
	}
	return roundQuarter(diameterIn * lengthIn / 144), nil
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidDimension, name)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidDimension, name, v)
	}
	return nil
}

func ceilQuarter(v float64) float64 {
	return math.Ceil(v*4) / 4
}

func roundQuarter(v float64) float64 {
	return math.Round(v*4) / 4
}
