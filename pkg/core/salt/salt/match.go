// Package salt implements the matching core: ranking solution components
// by molar amount, picking the dominant cation/anion pair and assembling a
// charge-balanced salt formula from it.
package salt

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/aquachem/ionmatch/pkg/common/code"
	"github.com/aquachem/ionmatch/pkg/core/chem"
	core "github.com/aquachem/ionmatch/pkg/core/salt"
	"github.com/aquachem/ionmatch/pkg/core/solution"
	"github.com/aquachem/ionmatch/pkg/middleware/logger"
)

// RankComponents sorts the components of a solution in descending order by
// molar amount. All species are included, solvent and traces alike. The
// sort is stable: species with equal amounts keep their component order.
// Amount-query failures surface unchanged.
func RankComponents(sol core.Solution) ([]string, error) {
	formulas := sol.Components()

	amounts := make(map[string]float64, len(formulas))
	for _, f := range formulas {
		amount, err := sol.Amount(f, "mol")
		if err != nil {
			return nil, err
		}
		amounts[f] = amount
	}

	ranked := make([]string, len(formulas))
	copy(ranked, formulas)
	sort.SliceStable(ranked, func(i, j int) bool {
		return amounts[ranked[i]] > amounts[ranked[j]]
	})
	return ranked, nil
}

// IdentifySalt analyzes the components of a solution and identifies the
// salt that most closely approximates it: the dominant cation paired with
// the dominant anion. A solution whose most prominent component is not
// water cannot be matched with confidence and is rejected with
// code.SolutionNotAqueous after a warning.
func IdentifySalt(ctx context.Context, sol core.Solution) (string, error) {
	ranked, err := RankComponents(sol)
	if err != nil {
		return "", err
	}
	cation, anion, err := dominantIons(ctx, ranked)
	if err != nil {
		return "", err
	}
	return BuildSalt(cation, anion), nil
}

// dominantIons scans a ranked species list and returns the first
// positive-charge and first negative-charge species. A slot is assigned at
// most once; neutral species (water included) are skipped. Either return
// may be empty when the solution holds no such ion.
func dominantIons(ctx context.Context, ranked []string) (cation, anion string, err error) {
	if len(ranked) == 0 {
		return "", "", code.SolutionEmptyErr
	}
	if ranked[0] != solution.Water {
		logger.Warnf(ctx, "H2O is not the most prominent component")
		return "", "", code.SolutionNotAqueous
	}

	for _, item := range ranked {
		switch charge := chem.FormalCharge(item); {
		case charge > 0 && cation == "":
			cation = item
		case charge < 0 && anion == "":
			anion = item
		}
		if cation != "" && anion != "" {
			break
		}
	}
	return cation, anion, nil
}

// BuildSalt generates the chemical formula of a salt from its component
// ions. Stoichiometric coefficients come from cross-multiplication of the
// formal charges: the cation count is |z_anion| and vice versa, collapsed
// to 1 when equal (NaCl, not Na1Cl1). Polyatomic ions are parenthesized
// before a coefficient greater than one is appended.
//
//	BuildSalt("Na+", "Cl-")     == "NaCl"
//	BuildSalt("Mg+2", "Cl-")    == "MgCl2"
//	BuildSalt("Fe+3", "SO4-2")  == "Fe2(SO4)3"
//	BuildSalt("Fe+2", "SO4-2")  == "FeSO4"
//
// Ions without a formal charge are degenerate inputs: their coefficient
// logic yields zero-magnitude counts and the bare fragments degrade to
// empty strings rather than raising an error.
func BuildSalt(cation, anion string) string {
	zCation := chem.FormalCharge(cation)
	zAnion := chem.FormalCharge(anion)

	nuCation := abs(zAnion)
	nuAnion := abs(zCation)
	if nuCation == nuAnion {
		nuCation, nuAnion = 1, 1
	}

	var b strings.Builder
	writeIonBlock(&b, chem.TrimFormalCharge(cation), nuCation)
	writeIonBlock(&b, chem.TrimFormalCharge(anion), nuAnion)
	return b.String()
}

func writeIonBlock(b *strings.Builder, bare string, count int) {
	if count <= 1 {
		b.WriteString(bare)
		return
	}
	if chem.Polyatomic(bare) {
		b.WriteByte('(')
		b.WriteString(bare)
		b.WriteByte(')')
	} else {
		b.WriteString(bare)
	}
	b.WriteString(strconv.Itoa(count))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
