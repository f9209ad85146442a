package migrate

import (
	"context"

	"github.com/aquachem/ionmatch/pkg/middleware/db"
	"github.com/aquachem/ionmatch/pkg/middleware/logger"
	"github.com/aquachem/ionmatch/pkg/repo/model"
)

func Table(ctx context.Context) error {
	d := db.DB().DBWithContext(ctx)
	models := []any{
		&model.Identification{},
	}
	for _, m := range models {
		if err := d.AutoMigrate(m); err != nil {
			logger.Errorf(ctx, "migrate table err: %+v", err)
			return err
		}
	}
	return nil
}
