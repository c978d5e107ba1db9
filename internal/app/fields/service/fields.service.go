package fields_service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/models"
)

type Repository interface {
	ExistingKeys(ctx context.Context, scope fields.Scope, wholesalerID *string, keys []string) (map[string]struct{}, error)
	CreateDefinitions(ctx context.Context, defs []models.FieldDefinition) error
	ListWithValues(ctx context.Context, scope fields.Scope, wholesalerID *string) ([]models.FieldDefinition, error)
	UpsertValues(ctx context.Context, values []models.FieldValue) error
}

type FieldsService struct {
	log  *slog.Logger
	repo Repository
}

var _ app.FieldRegistryService = &FieldsService{}

func New(log *slog.Logger, repo Repository) *FieldsService {
	return &FieldsService{log, repo}
}

// Ensure creates the definitions that do not exist yet for the given owner.
func (this *FieldsService) Ensure(ctx context.Context, req app.EnsureFieldsRequest) error {
	keys := uniqueKeys(req.Keys)
	if len(keys) == 0 {
		return nil
	}

	scope := req.Scope
	if scope == "" {
		scope = fields.ScopeWholesaler
	}
	if !scope.IsValid() {
		return errs.Validation("Invalid scope.")
	}
	source := req.Source
	if source == "" {
		source = fields.SourceManual
	}
	if !source.IsValid() {
		return errs.Validation("Invalid source.")
	}

	owner := req.WholesalerID
	if scope == fields.ScopeGlobal {
		owner = nil
	} else if owner == nil || *owner == "" {
		return errs.Validation("Missing wholesaler_id.")
	}

	existing, err := this.repo.ExistingKeys(ctx, scope, owner, keys)
	if err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{Message: "load field definitions"})
	}

	var missing []models.FieldDefinition
	for _, key := range keys {
		if _, ok := existing[key]; ok {
			continue
		}
		missing = append(missing, models.FieldDefinition{
			Key:          key,
			Label:        Label(key),
			Scope:        string(scope),
			WholesalerID: owner,
			Source:       string(source),
		})
	}
	if len(missing) == 0 {
		return nil
	}

	if err := this.repo.CreateDefinitions(ctx, missing); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{Message: "create field definitions"})
	}

	this.log.InfoContext(ctx, "field definitions created",
		slog.String("scope", string(scope)),
		slog.String("source", string(source)),
		slog.Int("count", len(missing)),
	)
	return nil
}

func (this *FieldsService) ListValues(ctx context.Context, scope fields.Scope, wholesalerID *string) ([]models.FieldDefinition, error) {
	if scope == "" {
		scope = fields.ScopeWholesaler
	}
	if !scope.IsValid() {
		return nil, errs.Validation("Invalid scope.")
	}
	if scope == fields.ScopeGlobal {
		wholesalerID = nil
	} else if wholesalerID == nil || *wholesalerID == "" {
		return nil, errs.Validation("Missing wholesaler_id.")
	}

	defs, err := this.repo.ListWithValues(ctx, scope, wholesalerID)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "list field values"})
	}
	return defs, nil
}

func (this *FieldsService) SetValues(ctx context.Context, items []app.FieldValueItem) error {
	if len(items) == 0 {
		return nil
	}

	// last write per definition wins
	index := make(map[string]int, len(items))
	values := make([]models.FieldValue, 0, len(items))
	for _, item := range items {
		if item.FieldDefinitionID == "" {
			return errs.Validation("Missing field_definition_id.")
		}
		if i, ok := index[item.FieldDefinitionID]; ok {
			values[i].Value = item.Value
			continue
		}
		index[item.FieldDefinitionID] = len(values)
		values = append(values, models.FieldValue{FieldDefinitionID: item.FieldDefinitionID, Value: item.Value})
	}

	if err := this.repo.UpsertValues(ctx, values); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{Message: "store field values"})
	}
	return nil
}

// Label derives the display label: underscores become spaces.
func Label(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
