// Package chem holds the formula-string primitives shared by the solution
// and salt packages. A species formula is a bare formula optionally suffixed
// with charge markers: repeated signs ("Fe+++") or a signed count ("SO4-2").
package chem

import (
	"strconv"
	"strings"
	"unicode"
)

// FormalCharge parses the trailing charge markers of a species formula.
// Neutral species (no marker) return 0.
//
//	FormalCharge("Na+")   == 1
//	FormalCharge("Fe+++") == 3
//	FormalCharge("SO4-2") == -2
//	FormalCharge("H2O")   == 0
func FormalCharge(formula string) int {
	idx := strings.IndexAny(formula, "+-")
	if idx < 0 {
		return 0
	}

	marker := formula[idx]
	sign := 1
	if marker == '-' {
		sign = -1
	}

	suffix := formula[idx:]
	if strings.Count(suffix, string(marker)) == len(suffix) {
		// repeated markers: "+", "++", "---"
		return sign * len(suffix)
	}
	if n, err := strconv.Atoi(suffix[1:]); err == nil {
		// signed count: "+3", "-2"
		return sign * n
	}
	return 0
}

// TrimFormalCharge removes the charge annotation from a species formula.
// A neutral formula has no marker to split on and trims to the empty string.
//
//	TrimFormalCharge("Fe+++") == "Fe"
//	TrimFormalCharge("SO4-2") == "SO4"
//	TrimFormalCharge("Na+")   == "Na"
func TrimFormalCharge(formula string) string {
	charge := FormalCharge(formula)
	switch {
	case charge > 0:
		bare, _, _ := strings.Cut(formula, "+")
		return bare
	case charge < 0:
		bare, _, _ := strings.Cut(formula, "-")
		return bare
	default:
		return ""
	}
}

// Polyatomic reports whether a bare formula contains more than one atom
// kind or an explicit atom count, i.e. whether it needs parentheses when a
// stoichiometric coefficient is appended.
func Polyatomic(bare string) bool {
	upper := 0
	for _, r := range bare {
		if unicode.IsDigit(r) {
			return true
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return upper > 1
}
