package lineitems

import (
	"sort"
	"testing"
)

func TestComparePartNumbers_Ordering(t *testing.T) {
	pns := []string{
		"33371-05.1-A",
		"33371-01.1",
		"9999-01",
		"33371-01",
		"33371-01.1-A",
		"33371-03-A",
		"33371-01.2",
		"33371-05",
		"33371-03",
		"33371-01.5",
		"33371-01.10",
	}
	sort.Slice(pns, func(i, j int) bool {
		return ComparePartNumbers(pns[i], pns[j]) < 0
	})

	want := []string{
		"9999-01", // base compares numerically, not lexically
		"33371-01",
		"33371-01.1",
		"33371-01.1-A",
		"33371-01.2",
		"33371-01.5",
		"33371-01.10", // digit runs compare as integers: 10 after 5
		"33371-03",
		"33371-03-A",
		"33371-05",
		"33371-05.1-A",
	}
	for i := range want {
		if pns[i] != want[i] {
			t.Fatalf("position %d = %q, want %q (full: %v)", i, pns[i], want[i], pns)
		}
	}
}

func TestComparePartNumbers_Equal(t *testing.T) {
	if ComparePartNumbers("33371-01.1", "33371-01.1") != 0 {
		t.Fatalf("equal part numbers must compare 0")
	}
}

func TestComparePartNumbers_Unparseable(t *testing.T) {
	// Non job-dash part numbers sort after parseable ones, as strings.
	if ComparePartNumbers("33371-01", "SPARE") >= 0 {
		t.Fatalf("parseable must sort before unparseable")
	}
	if ComparePartNumbers("SPARE", "ADHOC") <= 0 {
		t.Fatalf("unparseable compare as strings")
	}
}

func TestBOMNumber(t *testing.T) {
	if got := BOMNumber("33371-01.1"); got != "33371-01.1-000" {
		t.Fatalf("BOMNumber = %q", got)
	}
}
