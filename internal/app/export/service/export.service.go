package export_service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/values"
	"github.com/init-pkg/sheet-export/internal/app/export/writer"
	"github.com/init-pkg/sheet-export/internal/config"
)

type ExportService struct {
	log       *slog.Logger
	templates app.TemplateService
	registry  app.FieldRegistryService
	catalog   app.CatalogService
	events    app.EventPublisher
	strict    bool
}

var _ app.ExportService = &ExportService{}

func New(
	log *slog.Logger,
	cfg *config.Config,
	templates app.TemplateService,
	registry app.FieldRegistryService,
	catalog app.CatalogService,
	events app.EventPublisher,
) *ExportService {
	return &ExportService{
		log:       log,
		templates: templates,
		registry:  registry,
		catalog:   catalog,
		events:    events,
		strict:    cfg.Export.Strict,
	}
}

// Export fills the template. Values are layered lowest first: catalog
// derived fields, stored field values, then the explicit fields.
func (this *ExportService) Export(ctx context.Context, req app.ExportRequest) (*app.ExportResult, error) {
	if req.TemplateID == "" {
		return nil, errs.Validation("Missing template_id.")
	}

	t, err := this.templates.Get(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	set, err := this.catalogFields(req)
	if err != nil {
		return nil, err
	}
	if req.IncludeStoredValues {
		stored, err := this.storedValues(ctx, t.WholesalerID)
		if err != nil {
			return nil, err
		}
		set = set.Overlay(stored)
	}
	set = set.Overlay(req.Fields)

	res, err := writer.Fill(t.Workbook, t.Mapping.Mapping(), set)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "export failed"})
	}

	for _, s := range res.Skipped {
		this.log.WarnContext(ctx, "export entry skipped",
			slog.String("template_id", t.ID),
			slog.String("key", s.Key),
			slog.String("cell", s.Cell),
			slog.String("reason", s.Reason),
		)
	}
	if this.strict && len(res.Skipped) > 0 {
		return nil, &errs.AppError{
			Kind:    errs.KindValidation,
			Message: fmt.Sprintf("%d mapping entries could not be written", len(res.Skipped)),
			Details: res.Skipped,
		}
	}

	this.log.InfoContext(ctx, "export generated",
		slog.String("template_id", t.ID),
		slog.Int("written", res.Written),
		slog.Int("skipped", len(res.Skipped)),
	)
	event := app.Event{
		Type:         "export.generated",
		TemplateID:   t.ID,
		WholesalerID: t.WholesalerID,
		Attributes:   map[string]any{"written": res.Written, "skipped": len(res.Skipped)},
	}
	if err := this.events.Publish(ctx, event); err != nil {
		this.log.WarnContext(ctx, "event publish failed", slog.String("type", event.Type), slog.String("error", err.Error()))
	}

	return &app.ExportResult{
		FileName: writer.FileName(t.Name),
		Content:  res.Content,
		Skipped:  res.Skipped,
	}, nil
}

func (this *ExportService) catalogFields(req app.ExportRequest) (values.Set, error) {
	if len(req.Product) == 0 && len(req.StockItem) == 0 {
		return values.Set{}, nil
	}
	product, err := this.catalog.ParseItem(req.Product)
	if err != nil {
		return nil, err
	}
	stock, err := this.catalog.ParseItem(req.StockItem)
	if err != nil {
		return nil, err
	}
	return this.catalog.ExportFields(product, stock), nil
}

// storedValues merges global values under the wholesaler ones. Empty stored
// values are left out.
func (this *ExportService) storedValues(ctx context.Context, wholesalerID string) (values.Set, error) {
	out := values.Set{}

	global, err := this.registry.ListValues(ctx, fields.ScopeGlobal, nil)
	if err != nil {
		return nil, err
	}
	scoped, err := this.registry.ListValues(ctx, fields.ScopeWholesaler, &wholesalerID)
	if err != nil {
		return nil, err
	}

	for _, defs := range [][]models.FieldDefinition{global, scoped} {
		for i := range defs {
			if v, ok := defs[i].CurrentValue(); ok && v != "" {
				out[defs[i].Key] = values.String(v)
			}
		}
	}
	return out, nil
}
