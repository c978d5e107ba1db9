package settings_service

import (
	"context"
	"log/slog"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
)

type Repository interface {
	First(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) error
}

// SettingsService manages the single settings row.
type SettingsService struct {
	log  *slog.Logger
	repo Repository
}

var _ app.SettingsService = &SettingsService{}

func New(log *slog.Logger, repo Repository) *SettingsService {
	return &SettingsService{log, repo}
}

// Get returns empty settings when none are stored.
func (this *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	s, err := this.repo.First(ctx)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "Settings load failed."})
	}
	if s == nil {
		return &models.Settings{}, nil
	}
	return s, nil
}

// Upsert replaces every column. Without an id the existing row is reused.
func (this *SettingsService) Upsert(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	if s.ID == "" {
		current, err := this.repo.First(ctx)
		if err != nil {
			return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "Settings load failed."})
		}
		if current != nil {
			s.ID = current.ID
		}
	}

	if err := this.repo.Save(ctx, s); err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "Settings save failed."})
	}

	this.log.InfoContext(ctx, "settings saved", slog.String("id", s.ID))
	return s, nil
}
