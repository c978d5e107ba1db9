package wholesalers_repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
)

var errWholesalerNotFound = errs.NotFound("Wholesaler not found.")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db}
}

func (this *Repository) List(ctx context.Context) ([]models.Wholesaler, error) {
	var out []models.Wholesaler
	if err := this.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (this *Repository) Get(ctx context.Context, id string) (*models.Wholesaler, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errWholesalerNotFound
	}
	var w models.Wholesaler
	err := this.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errWholesalerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (this *Repository) Create(ctx context.Context, w *models.Wholesaler) error {
	err := this.db.WithContext(ctx).Create(w).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Validation("Slug already exists.")
	}
	return err
}
