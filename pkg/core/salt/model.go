package salt

import (
	"time"

	common "github.com/aquachem/ionmatch/pkg/common"
	"github.com/aquachem/ionmatch/pkg/common/uuid"
)

type ComponentReq struct {
	Formula string  `json:"formula" binding:"required"`
	Moles   float64 `json:"moles" binding:"required"`
}

type IdentifyReq struct {
	Components []ComponentReq `json:"components" binding:"required,dive"`
}

type CompoundInfo struct {
	CID              int64  `json:"cid,omitempty"`
	Name             string `json:"name,omitempty"`
	MolecularFormula string `json:"molecular_formula,omitempty"`
	SMILES           string `json:"smiles,omitempty"`
}

type IdentifyResp struct {
	Formula string `json:"formula"`
	// Cation and Anion are the matched species as they appear in the
	// solution, charge markers included.
	Cation   string        `json:"cation"`
	Anion    string        `json:"anion"`
	Compound *CompoundInfo `json:"compound,omitempty"`
}

type IdentifyBatchReq struct {
	Solutions []IdentifyReq `json:"solutions" binding:"required,dive"`
}

type IdentifyBatchItem struct {
	Result *IdentifyResp `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type IdentifyBatchResp struct {
	Results []*IdentifyBatchItem `json:"results"`
}

type BuildReq struct {
	Cation string `json:"cation" binding:"required"`
	Anion  string `json:"anion" binding:"required"`
}

type BuildResp struct {
	Formula string `json:"formula"`
	Cation  string `json:"cation"`
	Anion   string `json:"anion"`
}

type HistoryReq struct {
	common.PageReq

	Formula *string `json:"formula" form:"formula"`
}

type HistoryItem struct {
	UUID       uuid.UUID          `json:"uuid"`
	CreatedAt  time.Time          `json:"created_at"`
	Formula    string             `json:"formula"`
	Cation     string             `json:"cation"`
	Anion      string             `json:"anion"`
	Components map[string]float64 `json:"components"`
}
