// Package solution models a multi-species aqueous mixture. Component order
// is insertion order and is preserved, which gives the salt matcher a
// deterministic tie-break when two species carry equal amounts.
package solution

import (
	"github.com/aquachem/ionmatch/pkg/common/code"
)

// Water is the solvent token an aqueous solution is expected to be
// dominated by.
const Water = "H2O"

// Amounts are stored in mol; conversion factors express one unit in mol.
var unitFactors = map[string]float64{
	"mol":  1,
	"mmol": 1e-3,
	"kmol": 1e3,
}

type Solution struct {
	order []string
	moles map[string]float64
}

func New() *Solution {
	return &Solution{moles: map[string]float64{}}
}

// Add sets the molar amount of a species. A repeated formula overwrites the
// amount but keeps its original position.
func (s *Solution) Add(formula string, moles float64) *Solution {
	if _, ok := s.moles[formula]; !ok {
		s.order = append(s.order, formula)
	}
	s.moles[formula] = moles
	return s
}

// Components lists the species formulas in insertion order.
func (s *Solution) Components() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Amount returns the amount of a species converted into the requested unit.
func (s *Solution) Amount(formula, unit string) (float64, error) {
	factor, ok := unitFactors[unit]
	if !ok {
		return 0, code.UnknownUnitErr.WithMsgf("unsupported amount unit %q", unit)
	}
	moles, ok := s.moles[formula]
	if !ok {
		return 0, code.UnknownSpeciesErr.WithMsgf("species %q is not part of the solution", formula)
	}
	return moles / factor, nil
}
