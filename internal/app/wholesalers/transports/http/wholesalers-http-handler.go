package wholesalers_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type WholesalersHttpHandler struct {
	service    app.WholesalerService
	adminToken string
}

func New(service app.WholesalerService, cfg *config.Config) *WholesalersHttpHandler {
	return &WholesalersHttpHandler{service, cfg.Http.AdminToken}
}

func (this *WholesalersHttpHandler) Register(mainApp *fiber.App) {
	var admin = mainApp.Group("/api/wholesalers", httpx.AdminOnly(this.adminToken))
	admin.Get("/", this.list)
	admin.Post("/", this.create)

	mainApp.Get("/api/catalog/wholesalers", this.list)
}

// list godoc
// @Summary  Wholesalers sorted by name
// @Tags     wholesalers
// @Produce  json
// @Success  200 {array} models.Wholesaler
// @Router   /api/catalog/wholesalers [get]
func (this *WholesalersHttpHandler) list(fctx fiber.Ctx) error {
	out, err := this.service.List(fctx.Context())
	if err != nil {
		return err
	}
	return fctx.JSON(out)
}

// create godoc
// @Summary  Create a wholesaler
// @Tags     wholesalers
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.CreateWholesalerRequest true "Wholesaler"
// @Success  200 {object} models.Wholesaler
// @Failure  400 {object} httpx.ErrorBody
// @Router   /api/wholesalers [post]
func (this *WholesalersHttpHandler) create(fctx fiber.Ctx) error {
	var req dtos.CreateWholesalerRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	w, err := this.service.Create(fctx.Context(), req.Name, req.Slug, req.BrandColor)
	if err != nil {
		return err
	}
	return fctx.JSON(w)
}
