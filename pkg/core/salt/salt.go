package salt

import (
	"context"

	common "github.com/aquachem/ionmatch/pkg/common"
)

// Solution is the read surface the matcher needs from any solution
// implementation: its species set and an amount query.
type Solution interface {
	// Components lists the species formulas. The order is the tie-break
	// when two species carry equal amounts.
	Components() []string
	// Amount returns the molar amount of a species in the given unit.
	Amount(formula, unit string) (float64, error)
}

// Service is the salt-matching business surface exposed to the web layer.
type Service interface {
	// Identify matches a solution to the single salt that best
	// approximates it.
	Identify(ctx context.Context, req *IdentifyReq) (*IdentifyResp, error)
	// IdentifyBatch runs Identify over many solutions on a worker pool.
	IdentifyBatch(ctx context.Context, req *IdentifyBatchReq) (*IdentifyBatchResp, error)
	// Build assembles a charge-balanced salt formula from one cation and
	// one anion.
	Build(ctx context.Context, req *BuildReq) (*BuildResp, error)
	// History lists past identifications.
	History(ctx context.Context, req *HistoryReq) (*common.PageResp[[]*HistoryItem], error)
}
