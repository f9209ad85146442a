package salt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquachem/ionmatch/pkg/common/code"
	core "github.com/aquachem/ionmatch/pkg/core/salt"
	salt "github.com/aquachem/ionmatch/pkg/core/salt/salt"
)

// New builds a service from config defaults: no pubchem enrichment, no
// datastore, an in-process worker pool.
func newService() core.Service { return salt.New() }

func identifyReq(components ...core.ComponentReq) *core.IdentifyReq {
	return &core.IdentifyReq{Components: components}
}

func TestServiceIdentify(t *testing.T) {
	svc := newService()

	resp, err := svc.Identify(context.Background(), identifyReq(
		core.ComponentReq{Formula: "H2O", Moles: 55.5},
		core.ComponentReq{Formula: "Na+", Moles: 0.5},
		core.ComponentReq{Formula: "Cl-", Moles: 0.5},
		core.ComponentReq{Formula: "H+", Moles: 1e-7},
		core.ComponentReq{Formula: "OH-", Moles: 1e-7},
	))
	require.NoError(t, err)
	assert.Equal(t, "NaCl", resp.Formula)
	assert.Equal(t, "Na+", resp.Cation)
	assert.Equal(t, "Cl-", resp.Anion)
	assert.Nil(t, resp.Compound)
}

func TestServiceIdentifyNonAqueous(t *testing.T) {
	svc := newService()

	_, err := svc.Identify(context.Background(), identifyReq(
		core.ComponentReq{Formula: "Na+", Moles: 2},
		core.ComponentReq{Formula: "Cl-", Moles: 2},
		core.ComponentReq{Formula: "H2O", Moles: 1},
	))
	assert.True(t, errors.Is(err, code.SolutionNotAqueous))
}

func TestServiceIdentifyEmpty(t *testing.T) {
	svc := newService()

	_, err := svc.Identify(context.Background(), identifyReq())
	assert.True(t, errors.Is(err, code.SolutionEmptyErr))
}

func TestServiceIdentifyBatch(t *testing.T) {
	svc := newService()

	resp, err := svc.IdentifyBatch(context.Background(), &core.IdentifyBatchReq{
		Solutions: []core.IdentifyReq{
			*identifyReq(
				core.ComponentReq{Formula: "H2O", Moles: 55.5},
				core.ComponentReq{Formula: "Na+", Moles: 0.5},
				core.ComponentReq{Formula: "Cl-", Moles: 0.5},
			),
			*identifyReq(
				core.ComponentReq{Formula: "H2O", Moles: 55.5},
				core.ComponentReq{Formula: "Mg+2", Moles: 0.3},
				core.ComponentReq{Formula: "Cl-", Moles: 0.6},
			),
			*identifyReq(
				core.ComponentReq{Formula: "Na+", Moles: 2},
				core.ComponentReq{Formula: "H2O", Moles: 1},
			),
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	require.NotNil(t, resp.Results[0].Result)
	assert.Equal(t, "NaCl", resp.Results[0].Result.Formula)

	require.NotNil(t, resp.Results[1].Result)
	assert.Equal(t, "MgCl2", resp.Results[1].Result.Formula)

	assert.Nil(t, resp.Results[2].Result)
	assert.NotEmpty(t, resp.Results[2].Error)
}

func TestServiceIdentifyBatchEmpty(t *testing.T) {
	svc := newService()

	_, err := svc.IdentifyBatch(context.Background(), &core.IdentifyBatchReq{})
	assert.True(t, errors.Is(err, code.ParamErr))
}

func TestServiceBuild(t *testing.T) {
	svc := newService()

	resp, err := svc.Build(context.Background(), &core.BuildReq{Cation: "Fe+3", Anion: "SO4-2"})
	require.NoError(t, err)
	assert.Equal(t, "Fe2(SO4)3", resp.Formula)
	assert.Equal(t, "Fe", resp.Cation)
	assert.Equal(t, "SO4", resp.Anion)
}

func TestServiceBuildRejectsNeutralIons(t *testing.T) {
	svc := newService()

	_, err := svc.Build(context.Background(), &core.BuildReq{Cation: "Na", Anion: "Cl-"})
	assert.True(t, errors.Is(err, code.IonChargeZeroErr))

	_, err = svc.Build(context.Background(), &core.BuildReq{Cation: "Na+", Anion: "Cl"})
	assert.True(t, errors.Is(err, code.IonChargeZeroErr))

	// swapped signs are rejected too
	_, err = svc.Build(context.Background(), &core.BuildReq{Cation: "Cl-", Anion: "Na+"})
	assert.True(t, errors.Is(err, code.IonChargeZeroErr))
}

func TestServiceHistoryWithoutStore(t *testing.T) {
	svc := newService()

	_, err := svc.History(context.Background(), &core.HistoryReq{})
	assert.True(t, errors.Is(err, code.RecordQueryErr))
}
