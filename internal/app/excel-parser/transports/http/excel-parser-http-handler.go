package excel_parser_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type ExcelParserHttpHandler struct {
	service    app.MappingService
	adminToken string
}

func New(service app.MappingService, cfg *config.Config) *ExcelParserHttpHandler {
	return &ExcelParserHttpHandler{service, cfg.Http.AdminToken}
}

func (this *ExcelParserHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/excel-parsers", httpx.AdminOnly(this.adminToken))

	app.Post("/scan", this.scan)
}

type scanRequest struct {
	WorkbookBase64 string `json:"workbook_base64"`
}

// scan godoc
// @Summary  Scan a workbook for label candidates without inference
// @Tags     excel-parsers
// @Accept   json,mpfd
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    file formData file false "Workbook upload"
// @Success  200 {object} app.ScanResult
// @Failure  400 {object} httpx.ErrorBody
// @Router   /api/excel-parsers/scan [post]
func (this *ExcelParserHttpHandler) scan(fctx fiber.Ctx) error {
	file, ok, err := httpx.FormFile(fctx, "file")
	if err != nil {
		return err
	}
	if !ok {
		var req scanRequest
		if err := httpx.Bind(fctx, &req); err != nil {
			return err
		}
		if file, err = httpx.DecodeBase64(req.WorkbookBase64); err != nil {
			return err
		}
	}

	res, err := this.service.Scan(fctx.Context(), file)
	if err != nil {
		return err
	}
	return fctx.JSON(res)
}
