package repo

import (
	"context"

	"github.com/aquachem/ionmatch/pkg/repo/model"
)

type IdentificationQuery struct {
	Formula *string
	Offset  int
	Limit   int
}

type IdentificationRepo interface {
	CreateIdentification(ctx context.Context, rec *model.Identification) error
	ListIdentifications(ctx context.Context, q IdentificationQuery) ([]*model.Identification, int64, error)
}
