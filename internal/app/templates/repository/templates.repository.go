package templates_repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

var errTemplateNotFound = errs.NotFound("Template not found.")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db}
}

func (this *Repository) Create(ctx context.Context, t *models.Template) error {
	err := this.db.WithContext(ctx).Create(t).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.Validation("Unknown wholesaler_id.")
	}
	return err
}

// List omits the workbook bytes, newest first.
func (this *Repository) List(ctx context.Context, wholesalerID string) ([]models.Template, error) {
	var out []models.Template
	q := this.db.WithContext(ctx).Omit("workbook").Order("created_at DESC")
	if wholesalerID != "" {
		q = q.Where("wholesaler_id = ?", wholesalerID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (this *Repository) Get(ctx context.Context, id string) (*models.Template, error) {
	if !validID(id) {
		return nil, errTemplateNotFound
	}
	var t models.Template
	err := this.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateMapping touches mapping_json only.
func (this *Repository) UpdateMapping(ctx context.Context, id string, mapping workbook.Mapping) error {
	if !validID(id) {
		return errTemplateNotFound
	}
	res := this.db.WithContext(ctx).
		Model(&models.Template{}).
		Where("id = ?", id).
		Update("mapping_json", models.MappingJSON(mapping))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errTemplateNotFound
	}
	return nil
}

func (this *Repository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return errTemplateNotFound
	}
	res := this.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Template{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errTemplateNotFound
	}
	return nil
}

// validID reports whether id can be a template primary key.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
