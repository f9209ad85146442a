package pubchem

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alphadose/haxmap"
	resty "github.com/go-resty/resty/v2"
	r "github.com/redis/go-redis/v9"

	"github.com/aquachem/ionmatch/internal/config"
	"github.com/aquachem/ionmatch/pkg/common/code"
	"github.com/aquachem/ionmatch/pkg/middleware/logger"
	"github.com/aquachem/ionmatch/pkg/middleware/redis"
	"github.com/aquachem/ionmatch/pkg/repo"
)

const cacheKeyPrefix = "pubchem:formula:"

type property struct {
	CID              int64  `json:"CID"`
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
	rdb    *r.Client
	local  *haxmap.Map[string, *repo.CompoundInfo]
	ttl    time.Duration
}

func NewPubChemRepo() repo.PubChemRepo {
	conf := config.Global()

	return &pubchemImpl{
		client: resty.New().
			SetTimeout(time.Duration(conf.RPC.PubChem.Timeout) * time.Second).
			EnableTrace().
			SetBaseURL(conf.RPC.PubChem.Addr).
			SetHeader("Content-Type", "application/json"),
		rdb:   redis.GetClient(),
		local: haxmap.New[string, *repo.CompoundInfo](),
		ttl:   time.Duration(conf.Salt.CacheTTL) * time.Second,
	}
}

func (p *pubchemImpl) GetCompoundByFormula(ctx context.Context, formula string) (*repo.CompoundInfo, error) {
	if info := p.fromCache(ctx, formula); info != nil {
		return info, nil
	}

	properties := "Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"
	urlPath := "/rest/pug/compound/fastformula/{formula}/property/{props}/JSON"

	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"formula": formula,
			"props":   properties,
		}).
		SetResult(propResp).
		Get(urlPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to request properties from PubChem: %v", err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, code.CompoundNotFoundErr.WithMsgf("PubChem has no compound for formula %s", formula)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, code.RPCHttpCodeErr.WithMsgf("PubChem property query failed: status %d", res.StatusCode())
	}

	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.CompoundNotFoundErr.WithMsgf("PubChem returned no properties for formula %s", formula)
	}

	propData := propResp.PropertyTable.Properties[0]

	name := propData.Title
	if name == "" {
		name = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}

	info := &repo.CompoundInfo{
		CID:              propData.CID,
		Name:             name,
		MolecularFormula: propData.MolecularFormula,
		SMILES:           smiles,
	}
	p.toCache(ctx, formula, info)
	return info, nil
}

// fromCache prefers redis; without a configured redis client results stay
// in a process-local map.
func (p *pubchemImpl) fromCache(ctx context.Context, formula string) *repo.CompoundInfo {
	if p.rdb == nil {
		if info, ok := p.local.Get(formula); ok {
			return info
		}
		return nil
	}

	raw, err := p.rdb.Get(ctx, cacheKeyPrefix+formula).Bytes()
	if err != nil {
		return nil
	}
	info := &repo.CompoundInfo{}
	if err := json.Unmarshal(raw, info); err != nil {
		return nil
	}
	return info
}

func (p *pubchemImpl) toCache(ctx context.Context, formula string, info *repo.CompoundInfo) {
	if p.rdb == nil {
		p.local.Set(formula, info)
		return
	}

	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := p.rdb.Set(ctx, cacheKeyPrefix+formula, raw, p.ttl).Err(); err != nil {
		logger.Warnf(ctx, "cache pubchem result for %s err: %+v", formula, err)
	}
}
