package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquachem/ionmatch/pkg/core/chem"
)

func TestFormalCharge(t *testing.T) {
	cases := []struct {
		formula string
		want    int
	}{
		{"Na+", 1},
		{"Cl-", -1},
		{"Fe+++", 3},
		{"Fe+3", 3},
		{"SO4-2", -2},
		{"Mg+2", 2},
		{"OH-", -1},
		{"H2O", 0},
		{"CH3COO-", -1},
		{"", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, chem.FormalCharge(c.formula), "formula %q", c.formula)
	}
}

func TestTrimFormalCharge(t *testing.T) {
	assert.Equal(t, "Fe", chem.TrimFormalCharge("Fe+++"))
	assert.Equal(t, "SO4", chem.TrimFormalCharge("SO4-2"))
	assert.Equal(t, "Na", chem.TrimFormalCharge("Na+"))
	assert.Equal(t, "OH", chem.TrimFormalCharge("OH-"))

	// a neutral formula has no charge marker to split on
	assert.Equal(t, "", chem.TrimFormalCharge("H2O"))
}

func TestPolyatomic(t *testing.T) {
	assert.True(t, chem.Polyatomic("SO4"))
	assert.True(t, chem.Polyatomic("OH"))
	assert.True(t, chem.Polyatomic("NH4"))
	assert.False(t, chem.Polyatomic("Cl"))
	assert.False(t, chem.Polyatomic("Fe"))
	assert.False(t, chem.Polyatomic("Na"))
}
