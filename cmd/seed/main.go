// Command seed loads the provisioning dataset (goal catalog plus tutor
// profiles with their initial availability) into whichever storage
// backend the configuration selects. It is a one-shot provisioning
// tool, not part of the serving path.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/tutorhub/tutorhub-api/internal/filestore"
	"github.com/tutorhub/tutorhub-api/internal/repository"
	"github.com/tutorhub/tutorhub-api/internal/seed"
	"github.com/tutorhub/tutorhub-api/pkg/config"
	"github.com/tutorhub/tutorhub-api/pkg/database"
	"github.com/tutorhub/tutorhub-api/pkg/logger"
)

func main() {
	var seedFile string
	flag.StringVar(&seedFile, "seed", "", "Path to the seed dataset (overrides STORE_SEED_FILE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if seedFile == "" {
		seedFile = cfg.Store.SeedFile
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ds, err := seed.Load(seedFile)
	if err != nil {
		logr.Sugar().Fatalw("failed to load seed dataset", "file", seedFile, "error", err)
	}

	ctx := context.Background()

	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck

		if err := database.Migrate(ctx, db, cfg.Store.MigrationsDir); err != nil {
			logr.Sugar().Fatalw("failed to apply migrations", "error", err)
		}
		if err := repository.NewSeedRepository(db).Seed(ctx, ds); err != nil {
			logr.Sugar().Fatalw("failed to seed postgres backend", "error", err)
		}

	case config.BackendFile:
		st, err := filestore.New(cfg.Store.DataDir, logr)
		if err != nil {
			logr.Sugar().Fatalw("failed to open data directory", "error", err)
		}
		if err := st.Seed(ctx, ds); err != nil {
			logr.Sugar().Fatalw("failed to seed file backend", "error", err)
		}
	}

	logr.Sugar().Infow("seed applied",
		"backend", cfg.Store.Backend,
		"goals", len(ds.Goals),
		"teachers", len(ds.Teachers),
	)
}
