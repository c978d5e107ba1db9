package mapping_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type MappingHttpHandler struct {
	service    app.MappingService
	adminToken string
}

func New(service app.MappingService, cfg *config.Config) *MappingHttpHandler {
	return &MappingHttpHandler{service, cfg.Http.AdminToken}
}

func (this *MappingHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/mapping", httpx.AdminOnly(this.adminToken))

	app.Post("/generate", this.generate)
}

// generate godoc
// @Summary  Propose a field to cell mapping for a template workbook
// @Tags     mapping
// @Accept   json,mpfd
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.GenerateMappingRequest false "Workbook as base64"
// @Param    file formData file false "Workbook upload"
// @Success  200 {object} app.GenerateMappingResult
// @Failure  400 {object} httpx.ErrorBody
// @Router   /api/mapping/generate [post]
func (this *MappingHttpHandler) generate(fctx fiber.Ctx) error {
	var req dtos.GenerateMappingRequest

	file, ok, err := httpx.FormFile(fctx, "file")
	if err != nil {
		return err
	}
	if ok {
		req.WholesalerID = fctx.FormValue("wholesaler_id")
		if err := httpx.Validate(&req); err != nil {
			return err
		}
	} else {
		if err := httpx.Bind(fctx, &req); err != nil {
			return err
		}
		if file, err = httpx.DecodeBase64(req.WorkbookBase64); err != nil {
			return err
		}
	}

	res, err := this.service.Generate(fctx.Context(), app.GenerateMappingRequest{
		File:         file,
		WholesalerID: req.WholesalerID,
	})
	if err != nil {
		return err
	}

	return fctx.JSON(res)
}
