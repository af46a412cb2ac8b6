// internal/bootstrap/bootstrap.go
//
// Startup steps shared by cmd/web and cmd/badnewsctl.
//
// Context
// -------
//  1. Load configuration (conf/.env → conf/global.yaml → BADNEWS_ env).
//  2. Start the daily rotating logger.
//  3. Resolve a Vault password reference, build the DSN, open the pool.
//
// Schema migration is left to the caller: cmd/web asks every component,
// the CLI applies the headline DDL directly.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/config"
	"github.com/yanizio/badnews/internal/database"
	"github.com/yanizio/badnews/internal/logger"
	"github.com/yanizio/badnews/internal/vault"
)

// Init loads the configuration and installs the logger.  tee mirrors log
// output to stdout.
func Init(tee bool) (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Paths.Root, cfg.Log.Dir, cfg.Log.Level, tee)
	if err != nil {
		return nil, nil, fmt.Errorf("start logger: %w", err)
	}
	return cfg, log, nil
}

// OpenDB resolves the database password and opens the pool.
func OpenDB(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*sqlx.DB, error) {
	pw := cfg.Database.Password
	if vault.IsRef(pw) {
		vc, err := vault.New(ctx, log)
		if err != nil {
			return nil, err
		}
		if pw, err = vc.Resolve(ctx, pw); err != nil {
			return nil, fmt.Errorf("resolve database password: %w", err)
		}
		log.Infow("database password resolved from vault")
	}

	log.Infow("connecting to database", "driver", cfg.Database.Driver)
	db, err := database.OpenWithOptions(ctx, cfg.Database.Driver, cfg.Database.BuildDSN(pw), database.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Infow("database online", "driver", cfg.Database.Driver)
	return db, nil
}
