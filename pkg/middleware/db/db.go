package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/aquachem/ionmatch/pkg/middleware/logger"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
}

// Datastore wraps the gorm handle. Repos embed it and always go through
// DBWithContext so transactions opened by ExecTx are honored.
type Datastore struct {
	db *gorm.DB
}

type txKey struct{}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

func (d *Datastore) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

var store *Datastore

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.Host, conf.User, conf.PW, conf.DBName, conf.Port)

	level := gormlogger.Warn
	if conf.LogConf.Level == "debug" {
		level = gormlogger.Info
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		logger.Fatalf(ctx, "init postgres fail err: %+v", err)
	}

	if err := gdb.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		logger.Errorf(ctx, "install gorm tracing plugin err: %+v", err)
	}

	store = &Datastore{db: gdb}
}

func ClosePostgres(ctx context.Context) {
	if store == nil {
		return
	}
	sqlDB, err := store.db.DB()
	if err != nil {
		logger.Errorf(ctx, "close postgres err: %+v", err)
		return
	}
	_ = sqlDB.Close()
}

func DB() *Datastore {
	return store
}
