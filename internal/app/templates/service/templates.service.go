package templates_service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

type Repository interface {
	Create(ctx context.Context, t *models.Template) error
	List(ctx context.Context, wholesalerID string) ([]models.Template, error)
	Get(ctx context.Context, id string) (*models.Template, error)
	UpdateMapping(ctx context.Context, id string, mapping workbook.Mapping) error
	Delete(ctx context.Context, id string) error
}

type TemplatesService struct {
	log     *slog.Logger
	repo    Repository
	parser  app.ExcelParserService
	mapping app.MappingService
	events  app.EventPublisher
}

var _ app.TemplateService = &TemplatesService{}

func New(
	log *slog.Logger,
	repo Repository,
	parser app.ExcelParserService,
	mapping app.MappingService,
	events app.EventPublisher,
) *TemplatesService {
	return &TemplatesService{
		log:     log,
		repo:    repo,
		parser:  parser,
		mapping: mapping,
		events:  events,
	}
}

func (this *TemplatesService) Create(ctx context.Context, req app.CreateTemplateRequest) (*models.Template, error) {
	name := strings.TrimSpace(req.Name)
	if req.WholesalerID == "" || name == "" || len(req.Workbook) == 0 {
		return nil, errs.Validation("Missing required fields.")
	}
	mapping, err := checkMapping(req.Mapping)
	if err != nil {
		return nil, err
	}
	if _, err := this.parser.Parse(ctx, req.Workbook); err != nil {
		return nil, err
	}

	t := &models.Template{
		Name:         name,
		WholesalerID: req.WholesalerID,
		Workbook:     req.Workbook,
		Mapping:      models.MappingJSON(mapping),
	}
	if err := this.repo.Create(ctx, t); err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	if err := this.mapping.RegisterKeys(ctx, mapping, t.WholesalerID); err != nil {
		return nil, err
	}

	this.log.InfoContext(ctx, "template created",
		slog.String("template_id", t.ID),
		slog.String("wholesaler_id", t.WholesalerID),
		slog.Int("keys", len(mapping)),
	)
	this.publish(ctx, app.Event{Type: "template.created", TemplateID: t.ID, WholesalerID: t.WholesalerID})
	return t, nil
}

func (this *TemplatesService) List(ctx context.Context, wholesalerID string) ([]models.Template, error) {
	out, err := this.repo.List(ctx, wholesalerID)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "list templates"})
	}
	return out, nil
}

func (this *TemplatesService) Get(ctx context.Context, id string) (*models.Template, error) {
	if id == "" {
		return nil, errs.Validation("Missing template_id.")
	}
	t, err := this.repo.Get(ctx, id)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return t, nil
}

// UpdateMapping replaces the stored mapping. The workbook bytes are never
// rewritten.
func (this *TemplatesService) UpdateMapping(ctx context.Context, id string, mapping workbook.Mapping) error {
	if id == "" || mapping == nil {
		return errs.Validation("Missing required fields.")
	}
	mapping, err := checkMapping(mapping)
	if err != nil {
		return err
	}

	t, err := this.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := this.repo.UpdateMapping(ctx, id, mapping); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	if err := this.mapping.RegisterKeys(ctx, mapping, t.WholesalerID); err != nil {
		return err
	}

	this.log.InfoContext(ctx, "template mapping updated", slog.String("template_id", id), slog.Int("keys", len(mapping)))
	this.publish(ctx, app.Event{Type: "template.mapping_updated", TemplateID: id, WholesalerID: t.WholesalerID})
	return nil
}

func (this *TemplatesService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errs.Validation("Missing id.")
	}
	if err := this.repo.Delete(ctx, id); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	this.log.InfoContext(ctx, "template deleted", slog.String("template_id", id))
	this.publish(ctx, app.Event{Type: "template.deleted", TemplateID: id})
	return nil
}

func (this *TemplatesService) publish(ctx context.Context, event app.Event) {
	if err := this.events.Publish(ctx, event); err != nil {
		this.log.WarnContext(ctx, "event publish failed", slog.String("type", event.Type), slog.String("error", err.Error()))
	}
}

func checkMapping(m workbook.Mapping) (workbook.Mapping, error) {
	if m == nil {
		return workbook.Mapping{}, nil
	}
	if bad := m.Invalid(); len(bad) > 0 {
		return nil, &errs.AppError{
			Kind:    errs.KindValidation,
			Message: fmt.Sprintf("mapping values must be cell references like Sheet1!B2: %s", strings.Join(bad, ", ")),
			Details: bad,
		}
	}
	return m, nil
}
