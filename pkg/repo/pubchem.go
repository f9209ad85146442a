package repo

import "context"

type CompoundInfo struct {
	CID              int64  `json:"cid"`
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}

type PubChemRepo interface {
	// GetCompoundByFormula resolves a molecular formula (e.g. "NaCl") to
	// compound metadata.
	GetCompoundByFormula(ctx context.Context, formula string) (*CompoundInfo, error)
}
