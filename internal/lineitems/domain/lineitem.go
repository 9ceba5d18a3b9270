// Package lineitems generates the D365-importable part numbers, descriptions
// and BOM numbers for the heater, tank and pump product families.
package lineitems

import (
	"strconv"
	"strings"
)

// Kind identifies the product family a line item belongs to.
type Kind string

const (
	KindHeater Kind = "heater"
	KindTank   Kind = "tank"
	KindPump   Kind = "pump"
)

// Template is the D365 costing template a line imports under.
type Template string

const (
	TemplateFGFab   Template = "FG FAB"
	TemplateSubAssy Template = "Sub Assy"
)

// ProductType is the D365 coverage classification of a line.
type ProductType string

const (
	ProductItem         ProductType = "Item"
	ProductPeggedSupply ProductType = "Pegged Supply"
	ProductPhantom      ProductType = "Phantom"
)

// LineItem is one generated import row. Items are immutable once generated;
// re-running a generation for the same configuration yields an identical set.
type LineItem struct {
	Kind        Kind
	PartNumber  string
	Description string
	BOMNumber   string
	Template    Template
	ProductType ProductType
	// Params snapshots the source configuration so a saved item can be
	// traced back to the form values that produced it.
	Params map[string]string
}

// PartNumber joins a job number with a dash suffix, e.g. "33371" + "01.1-A"
// -> "33371-01.1-A".
func PartNumber(jobNumber, dash string) string {
	return jobNumber + "-" + dash
}

// BOMNumber derives the bill-of-materials number from a part number.
func BOMNumber(partNumber string) string {
	return partNumber + "-000"
}

// ComparePartNumbers orders part numbers the way drafters read them: the
// base job number compares as an integer, and the dash remainder compares
// token by token with digit runs as integers and separators as characters.
// Part numbers that do not split into base-dash form compare as plain
// strings after all that do.
func ComparePartNumbers(a, b string) int {
	ka, aok := partNumberKey(a)
	kb, bok := partNumberKey(b)
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case !aok && !bok:
		return strings.Compare(a, b)
	}
	if ka.base != kb.base {
		if ka.base < kb.base {
			return -1
		}
		return 1
	}
	return compareTokens(ka.tokens, kb.tokens)
}

type pnKey struct {
	base   int
	tokens []pnToken
}

// pnToken is either a numeric run or a single separator character.
type pnToken struct {
	numeric bool
	num     int
	sep     byte
}

func partNumberKey(pn string) (pnKey, bool) {
	base, rest, found := strings.Cut(pn, "-")
	if !found {
		return pnKey{}, false
	}
	baseNum, err := strconv.Atoi(base)
	if err != nil {
		return pnKey{}, false
	}

	var tokens []pnToken
	acc := ""
	flush := func() {
		if acc != "" {
			n, _ := strconv.Atoi(acc)
			tokens = append(tokens, pnToken{numeric: true, num: n})
			acc = ""
		}
	}
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		if ch >= '0' && ch <= '9' {
			acc += string(ch)
			continue
		}
		flush()
		tokens = append(tokens, pnToken{sep: ch})
	}
	flush()
	return pnKey{base: baseNum, tokens: tokens}, true
}

func compareTokens(a, b []pnToken) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ta, tb := a[i], b[i]
		if ta.numeric != tb.numeric {
			// numeric runs sort before separators, mirroring how
			// "01" precedes "01.1".
			if ta.numeric {
				return -1
			}
			return 1
		}
		if ta.numeric {
			if ta.num != tb.num {
				if ta.num < tb.num {
					return -1
				}
				return 1
			}
			continue
		}
		if ta.sep != tb.sep {
			if ta.sep < tb.sep {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// formatNumber renders a float the way the descriptions expect: trimmed
// decimals, no exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
