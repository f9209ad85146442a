package identification

import (
	"context"

	"github.com/aquachem/ionmatch/pkg/middleware/db"
	"github.com/aquachem/ionmatch/pkg/repo"
	"github.com/aquachem/ionmatch/pkg/repo/model"
)

type identificationImpl struct {
	*db.Datastore
}

func NewIdentificationRepo() repo.IdentificationRepo {
	return &identificationImpl{Datastore: db.DB()}
}

func (i *identificationImpl) CreateIdentification(ctx context.Context, rec *model.Identification) error {
	return i.DBWithContext(ctx).Create(rec).Error
}

// ListIdentifications counts and pages inside one transaction so the total
// matches the returned page.
func (i *identificationImpl) ListIdentifications(ctx context.Context, q repo.IdentificationQuery) (list []*model.Identification, total int64, err error) {
	err = i.ExecTx(ctx, func(txCtx context.Context) error {
		tx := i.DBWithContext(txCtx).Model(&model.Identification{})
		if q.Formula != nil && *q.Formula != "" {
			tx = tx.Where("formula = ?", *q.Formula)
		}

		if err := tx.Count(&total).Error; err != nil {
			return err
		}
		return tx.Order("id desc").Offset(q.Offset).Limit(q.Limit).Find(&list).Error
	})
	return list, total, err
}
