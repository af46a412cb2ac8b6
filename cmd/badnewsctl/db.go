package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/bootstrap"
	"github.com/yanizio/badnews/internal/config"
	"github.com/yanizio/badnews/internal/database"
	"github.com/yanizio/badnews/internal/headline"
)

// openStore loads configuration, opens and migrates the database.  The
// returned func closes the pool and flushes the logger.
func openStore(ctx context.Context) (*headline.SQLStore, *config.Config, *zap.SugaredLogger, func(), error) {
	cfg, log, err := bootstrap.Init(false)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	db, err := bootstrap.OpenDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := migrate(ctx, db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}
	closeFn := func() {
		db.Close()
		_ = log.Sync()
	}
	return headline.NewSQLStore(db), cfg, log, closeFn, nil
}

func migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	stmts, err := headline.Migrations(driver)
	if err != nil {
		return err
	}
	return database.Migrate(ctx, db, stmts)
}
