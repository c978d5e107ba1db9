package wholesalers_service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Repository interface {
	List(ctx context.Context) ([]models.Wholesaler, error)
	Get(ctx context.Context, id string) (*models.Wholesaler, error)
	Create(ctx context.Context, w *models.Wholesaler) error
}

type WholesalersService struct {
	log  *slog.Logger
	repo Repository
}

var _ app.WholesalerService = &WholesalersService{}

func New(log *slog.Logger, repo Repository) *WholesalersService {
	return &WholesalersService{log, repo}
}

func (this *WholesalersService) List(ctx context.Context) ([]models.Wholesaler, error) {
	out, err := this.repo.List(ctx)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Message: "list wholesalers"})
	}
	return out, nil
}

func (this *WholesalersService) Get(ctx context.Context, id string) (*models.Wholesaler, error) {
	w, err := this.repo.Get(ctx, id)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return w, nil
}

func (this *WholesalersService) Create(ctx context.Context, name, slug string, brandColor *string) (*models.Wholesaler, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" || slug == "" {
		return nil, errs.Validation("Missing required fields.")
	}
	if !slugPattern.MatchString(slug) {
		return nil, errs.Validation("Slug must be lowercase letters, digits and single dashes.")
	}

	w := &models.Wholesaler{Name: name, Slug: slug, BrandColor: brandColor}
	if err := this.repo.Create(ctx, w); err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	this.log.InfoContext(ctx, "wholesaler created", slog.String("wholesaler_id", w.ID), slog.String("slug", slug))
	return w, nil
}
