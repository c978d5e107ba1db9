package fields_repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/models"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db}
}

func scoped(q *gorm.DB, scope fields.Scope, wholesalerID *string) *gorm.DB {
	q = q.Where("scope = ?", string(scope))
	if wholesalerID == nil {
		return q.Where("wholesaler_id IS NULL")
	}
	return q.Where("wholesaler_id = ?", *wholesalerID)
}

func (this *Repository) ExistingKeys(ctx context.Context, scope fields.Scope, wholesalerID *string, keys []string) (map[string]struct{}, error) {
	var found []string
	q := this.db.WithContext(ctx).Model(&models.FieldDefinition{}).Where("key IN ?", keys)
	if err := scoped(q, scope, wholesalerID).Pluck("key", &found).Error; err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(found))
	for _, k := range found {
		out[k] = struct{}{}
	}
	return out, nil
}

// CreateDefinitions ignores rows that already exist, so concurrent ensures
// stay idempotent.
func (this *Repository) CreateDefinitions(ctx context.Context, defs []models.FieldDefinition) error {
	if len(defs) == 0 {
		return nil
	}
	return this.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defs).Error
}

func (this *Repository) ListWithValues(ctx context.Context, scope fields.Scope, wholesalerID *string) ([]models.FieldDefinition, error) {
	var defs []models.FieldDefinition
	q := this.db.WithContext(ctx).Preload("FieldValues")
	if err := scoped(q, scope, wholesalerID).Order("key").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

func (this *Repository) UpsertValues(ctx context.Context, values []models.FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	return this.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "field_definition_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&values).Error
}
