package templates_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type TemplatesHttpHandler struct {
	service    app.TemplateService
	adminToken string
}

func New(service app.TemplateService, cfg *config.Config) *TemplatesHttpHandler {
	return &TemplatesHttpHandler{service, cfg.Http.AdminToken}
}

func (this *TemplatesHttpHandler) Register(mainApp *fiber.App) {
	var admin = mainApp.Group("/api/templates", httpx.AdminOnly(this.adminToken))
	admin.Post("/", this.create)
	admin.Get("/", this.list)
	admin.Patch("/", this.updateMapping)
	admin.Delete("/", this.delete)

	mainApp.Get("/api/catalog/templates", this.catalog)
}

type createResponse struct {
	ID string `json:"id"`
}

// create godoc
// @Summary  Store a template workbook with its mapping
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.CreateTemplateRequest true "Template"
// @Success  200 {object} createResponse
// @Failure  400 {object} httpx.ErrorBody
// @Router   /api/templates [post]
func (this *TemplatesHttpHandler) create(fctx fiber.Ctx) error {
	var req dtos.CreateTemplateRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}
	file, err := httpx.DecodeBase64(req.WorkbookBase64)
	if err != nil {
		return err
	}

	t, err := this.service.Create(fctx.Context(), app.CreateTemplateRequest{
		WholesalerID: req.WholesalerID,
		Name:         req.Name,
		Workbook:     file,
		Mapping:      req.Mapping,
	})
	if err != nil {
		return err
	}
	return fctx.JSON(createResponse{ID: t.ID})
}

// list godoc
// @Summary  Templates, newest first
// @Tags     templates
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    wholesaler_id query string false "Filter by wholesaler"
// @Success  200 {array} models.Template
// @Router   /api/templates [get]
func (this *TemplatesHttpHandler) list(fctx fiber.Ctx) error {
	out, err := this.service.List(fctx.Context(), fctx.Query("wholesaler_id"))
	if err != nil {
		return err
	}
	return fctx.JSON(out)
}

// updateMapping godoc
// @Summary  Replace the mapping of a template
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.UpdateTemplateMappingRequest true "Mapping"
// @Success  200 {object} httpx.OK
// @Router   /api/templates [patch]
func (this *TemplatesHttpHandler) updateMapping(fctx fiber.Ctx) error {
	var req dtos.UpdateTemplateMappingRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	if err := this.service.UpdateMapping(fctx.Context(), req.ID, req.Mapping); err != nil {
		return err
	}
	return fctx.JSON(httpx.OK{Ok: true})
}

// delete godoc
// @Summary  Delete a template
// @Tags     templates
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    id query string true "Template id"
// @Success  200 {object} httpx.OK
// @Router   /api/templates [delete]
func (this *TemplatesHttpHandler) delete(fctx fiber.Ctx) error {
	if err := this.service.Delete(fctx.Context(), fctx.Query("id")); err != nil {
		return err
	}
	return fctx.JSON(httpx.OK{Ok: true})
}

// catalog godoc
// @Summary  Templates of one wholesaler without mapping details
// @Tags     catalog
// @Produce  json
// @Param    wholesaler_id query string true "Wholesaler"
// @Success  200 {array} dtos.TemplateSummary
// @Router   /api/catalog/templates [get]
func (this *TemplatesHttpHandler) catalog(fctx fiber.Ctx) error {
	wholesalerID := fctx.Query("wholesaler_id")
	if wholesalerID == "" {
		return errs.Validation("Missing wholesaler_id.")
	}

	items, err := this.service.List(fctx.Context(), wholesalerID)
	if err != nil {
		return err
	}

	out := make([]dtos.TemplateSummary, 0, len(items))
	for _, t := range items {
		out = append(out, dtos.TemplateSummary{ID: t.ID, Name: t.Name, WholesalerID: t.WholesalerID})
	}
	return fctx.JSON(out)
}
