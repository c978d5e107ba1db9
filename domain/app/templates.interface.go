package app

import (
	"context"

	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

type CreateTemplateRequest struct {
	WholesalerID string
	Name         string
	Workbook     []byte
	Mapping      workbook.Mapping
}

type TemplateService interface {
	Create(ctx context.Context, req CreateTemplateRequest) (*models.Template, error)
	List(ctx context.Context, wholesalerID string) ([]models.Template, error)
	Get(ctx context.Context, id string) (*models.Template, error)
	UpdateMapping(ctx context.Context, id string, mapping workbook.Mapping) error
	Delete(ctx context.Context, id string) error
}

type WholesalerService interface {
	List(ctx context.Context) ([]models.Wholesaler, error)
	Get(ctx context.Context, id string) (*models.Wholesaler, error)
	Create(ctx context.Context, name, slug string, brandColor *string) (*models.Wholesaler, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, s *models.Settings) (*models.Settings, error)
}
