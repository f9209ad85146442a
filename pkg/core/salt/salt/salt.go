package salt

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/aquachem/ionmatch/internal/config"
	common "github.com/aquachem/ionmatch/pkg/common"
	"github.com/aquachem/ionmatch/pkg/common/code"
	"github.com/aquachem/ionmatch/pkg/core/chem"
	core "github.com/aquachem/ionmatch/pkg/core/salt"
	"github.com/aquachem/ionmatch/pkg/core/solution"
	"github.com/aquachem/ionmatch/pkg/middleware/db"
	"github.com/aquachem/ionmatch/pkg/middleware/logger"
	"github.com/aquachem/ionmatch/pkg/repo"
	repoIdent "github.com/aquachem/ionmatch/pkg/repo/identification"
	"github.com/aquachem/ionmatch/pkg/repo/model"
	repoPubchem "github.com/aquachem/ionmatch/pkg/repo/pubchem"
	"github.com/aquachem/ionmatch/pkg/utils"
)

type saltImpl struct {
	pubchem repo.PubChemRepo        // nil when enrichment is disabled
	history repo.IdentificationRepo // nil when no datastore is configured
	pool    *ants.Pool
}

func New() core.Service {
	conf := config.Global()

	impl := &saltImpl{}
	if conf.RPC.PubChem.Enable {
		impl.pubchem = repoPubchem.NewPubChemRepo()
	}
	if db.DB() != nil {
		impl.history = repoIdent.NewIdentificationRepo()
	}
	pool, err := ants.NewPool(conf.Salt.BatchPoolSize,
		ants.WithExpiryDuration(10*time.Second))
	if err != nil {
		logger.Errorf(context.Background(), "init batch pool err: %+v, batch items run inline", err)
	}
	impl.pool = pool
	return impl
}

func (s *saltImpl) Identify(ctx context.Context, req *core.IdentifyReq) (*core.IdentifyResp, error) {
	if len(req.Components) == 0 {
		return nil, code.SolutionEmptyErr
	}

	sol := solution.New()
	for _, c := range req.Components {
		sol.Add(c.Formula, c.Moles)
	}

	ranked, err := RankComponents(sol)
	if err != nil {
		return nil, err
	}
	cation, anion, err := dominantIons(ctx, ranked)
	if err != nil {
		return nil, err
	}

	resp := &core.IdentifyResp{
		Formula: BuildSalt(cation, anion),
		Cation:  cation,
		Anion:   anion,
	}

	if s.pubchem != nil && resp.Formula != "" {
		info, err := s.pubchem.GetCompoundByFormula(ctx, resp.Formula)
		if err != nil {
			logger.Warnf(ctx, "pubchem lookup for %s err: %+v", resp.Formula, err)
		} else {
			resp.Compound = &core.CompoundInfo{
				CID:              info.CID,
				Name:             info.Name,
				MolecularFormula: info.MolecularFormula,
				SMILES:           info.SMILES,
			}
		}
	}

	// best effort, a history failure never fails the identification
	s.record(ctx, req, resp)

	return resp, nil
}

func (s *saltImpl) record(ctx context.Context, req *core.IdentifyReq, resp *core.IdentifyResp) {
	if s.history == nil {
		return
	}

	comps := make(map[string]float64, len(req.Components))
	for _, c := range req.Components {
		comps[c.Formula] = c.Moles
	}
	raw, err := json.Marshal(comps)
	if err != nil {
		logger.Errorf(ctx, "marshal identification components err: %+v", err)
		return
	}

	rec := &model.Identification{
		Formula:    resp.Formula,
		Cation:     resp.Cation,
		Anion:      resp.Anion,
		Components: raw,
	}
	if err := s.history.CreateIdentification(ctx, rec); err != nil {
		logger.Errorf(ctx, "record identification err: %+v", err)
	}
}

func (s *saltImpl) IdentifyBatch(ctx context.Context, req *core.IdentifyBatchReq) (*core.IdentifyBatchResp, error) {
	if len(req.Solutions) == 0 {
		return nil, code.ParamErr.WithMsg("empty batch request")
	}

	results := make([]*core.IdentifyBatchItem, len(req.Solutions))
	var wg sync.WaitGroup
	for i := range req.Solutions {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			_ = utils.SafelyRun(func() {
				resp, err := s.Identify(ctx, &req.Solutions[i])
				if err != nil {
					results[i] = &core.IdentifyBatchItem{Error: err.Error()}
					return
				}
				results[i] = &core.IdentifyBatchItem{Result: resp}
			})
		}
		if s.pool == nil {
			task()
			continue
		}
		if err := s.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return &core.IdentifyBatchResp{Results: results}, nil
}

func (s *saltImpl) Build(_ context.Context, req *core.BuildReq) (*core.BuildResp, error) {
	zCation := chem.FormalCharge(req.Cation)
	zAnion := chem.FormalCharge(req.Anion)
	if zCation <= 0 {
		return nil, code.IonChargeZeroErr.WithMsgf("cation %q must carry a positive charge", req.Cation)
	}
	if zAnion >= 0 {
		return nil, code.IonChargeZeroErr.WithMsgf("anion %q must carry a negative charge", req.Anion)
	}

	return &core.BuildResp{
		Formula: BuildSalt(req.Cation, req.Anion),
		Cation:  chem.TrimFormalCharge(req.Cation),
		Anion:   chem.TrimFormalCharge(req.Anion),
	}, nil
}

func (s *saltImpl) History(ctx context.Context, req *core.HistoryReq) (*common.PageResp[[]*core.HistoryItem], error) {
	if s.history == nil {
		return nil, code.RecordQueryErr.WithMsg("identification history store is not configured")
	}

	req.Normalize()
	q := repo.IdentificationQuery{
		Formula: req.Formula,
		Offset:  req.Offset(),
		Limit:   req.PageSize,
	}

	list, total, err := s.history.ListIdentifications(ctx, q)
	if err != nil {
		return nil, code.RecordQueryErr.WithErr(err)
	}

	items := utils.FilterSlice(list, func(rec *model.Identification) (*core.HistoryItem, bool) {
		comps := map[string]float64{}
		if len(rec.Components) > 0 {
			_ = json.Unmarshal(rec.Components, &comps)
		}
		return &core.HistoryItem{
			UUID:       rec.UUID,
			CreatedAt:  rec.CreatedAt,
			Formula:    rec.Formula,
			Cation:     rec.Cation,
			Anion:      rec.Anion,
			Components: comps,
		}, true
	})

	return &common.PageResp[[]*core.HistoryItem]{
		Data:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
