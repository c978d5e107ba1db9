package app

import (
	"context"

	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/models"
)

type EnsureFieldsRequest struct {
	Keys         []string
	Scope        fields.Scope
	WholesalerID *string
	Source       fields.Source
}

type FieldValueItem struct {
	FieldDefinitionID string
	Value             string
}

type FieldRegistryService interface {
	Ensure(ctx context.Context, req EnsureFieldsRequest) error
	ListValues(ctx context.Context, scope fields.Scope, wholesalerID *string) ([]models.FieldDefinition, error)
	SetValues(ctx context.Context, items []FieldValueItem) error
}
