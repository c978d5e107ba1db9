package settings_repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/init-pkg/sheet-export/domain/models"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db}
}

// First returns nil when no settings row exists.
func (this *Repository) First(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := this.db.WithContext(ctx).Order("id").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (this *Repository) Save(ctx context.Context, s *models.Settings) error {
	return this.db.WithContext(ctx).Save(s).Error
}
