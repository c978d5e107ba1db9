package main

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/fields"
	fields_repository "github.com/init-pkg/sheet-export/internal/app/fields/repository"
	fields_service "github.com/init-pkg/sheet-export/internal/app/fields/service"
	postgres_client "github.com/init-pkg/sheet-export/internal/clients/postgres"
	"github.com/init-pkg/sheet-export/internal/config"
)

// Seeds the global field definitions of the default vocabulary.
func main() {
	var (
		ctx = context.Background()
		log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		cfg = config.MustLoad()
	)

	if err := postgres_client.Migrate(ctx, cfg.Infrastructure.Db.Dsn); err != nil {
		log.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.Infrastructure.Db.Dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error("open database failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	keys := fields.DefaultVocabulary().SortedGlobalKeys()
	registry := fields_service.New(log, fields_repository.New(db))
	err = registry.Ensure(ctx, app.EnsureFieldsRequest{
		Keys:   keys,
		Scope:  fields.ScopeGlobal,
		Source: fields.SourceManual,
	})
	if err != nil {
		log.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("global fields seeded", slog.Int("keys", len(keys)))
}
