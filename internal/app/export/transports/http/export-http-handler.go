package export_http_handler

import (
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SkippedHeader   = "X-Export-Skipped"
)

type ExportHttpHandler struct {
	service app.ExportService
}

func New(service app.ExportService) *ExportHttpHandler {
	return &ExportHttpHandler{service}
}

func (this *ExportHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/excel")

	app.Post("/generate", this.generate)
}

// generate godoc
// @Summary  Fill a template and download it
// @Tags     export
// @Accept   json
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    body body dtos.ExportRequest true "Export"
// @Success  200 {file} file
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /api/excel/generate [post]
func (this *ExportHttpHandler) generate(fctx fiber.Ctx) error {
	var req dtos.ExportRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	res, err := this.service.Export(fctx.Context(), app.ExportRequest{
		TemplateID:          req.TemplateID,
		Fields:              req.Fields,
		Product:             req.Product,
		StockItem:           req.StockItem,
		IncludeStoredValues: req.IncludeStoredValues,
	})
	if err != nil {
		return err
	}

	// The template name is kept whole, slashes included.
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": res.FileName})
	fctx.Set(fiber.HeaderContentDisposition, disposition)
	fctx.Set(fiber.HeaderContentType, ContentTypeXLSX)
	fctx.Set(SkippedHeader, strconv.Itoa(len(res.Skipped)))
	return fctx.Send(res.Content)
}
