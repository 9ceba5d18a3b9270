package dimension

import (
	"errors"
	"math"
	"testing"
)

func TestLengthFromDiameter_KnownValues(t *testing.T) {
	cases := []struct {
		diameter float64
		want     float64
	}{
		// ceiling(pi*(d-0.1094)+2, 0.25)
		{48, 152.5},
		{60, 190.25},
		{72, 228},
		{28.25, 90.5},
	}
	for _, tc := range cases {
		got, err := LengthFromDiameter(tc.diameter)
		if err != nil {
			t.Fatalf("LengthFromDiameter(%v): %v", tc.diameter, err)
		}
		if got != tc.want {
			t.Fatalf("LengthFromDiameter(%v) = %v, want %v", tc.diameter, got, tc.want)
		}
	}
}

func TestLengthFromDiameter_RoundUpProperty(t *testing.T) {
	prev := 0.0
	for d := 10.0; d <= 200; d += 0.73 {
		got, err := LengthFromDiameter(d)
		if err != nil {
			t.Fatalf("LengthFromDiameter(%v): %v", d, err)
		}
		raw := math.Pi*(d-0.1094) + 2
		if got < raw {
			t.Fatalf("LengthFromDiameter(%v) = %v below raw formula %v", d, got, raw)
		}
		if rem := math.Mod(got*4, 1); rem != 0 {
			t.Fatalf("LengthFromDiameter(%v) = %v is not a quarter multiple", d, got)
		}
		if got < prev {
			t.Fatalf("LengthFromDiameter not monotonic at %v: %v < %v", d, got, prev)
		}
		prev = got
	}
}

func TestSquareFeet_NearestQuarter(t *testing.T) {
	got, err := SquareFeet(48, 152.5)
	if err != nil {
		t.Fatalf("SquareFeet: %v", err)
	}
	// 48*152.5/144 = 50.8333 -> 50.75
	if got != 50.75 {
		t.Fatalf("SquareFeet(48, 152.5) = %v, want 50.75", got)
	}
	if rem := math.Mod(got*4, 1); rem != 0 {
		t.Fatalf("SquareFeet result %v is not a quarter multiple", got)
	}
}

func TestInvalidInputsAreErrors(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, d := range bad {
		if _, err := LengthFromDiameter(d); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("LengthFromDiameter(%v): want ErrInvalidDimension, got %v", d, err)
		}
		if _, err := SquareFeet(d, 10); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("SquareFeet(%v, 10): want ErrInvalidDimension, got %v", d, err)
		}
		if _, err := SquareFeet(10, d); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("SquareFeet(10, %v): want ErrInvalidDimension, got %v", d, err)
		}
	}
}
