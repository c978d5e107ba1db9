package catalog_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type CatalogHttpHandler struct {
	service app.CatalogService
}

func New(service app.CatalogService) *CatalogHttpHandler {
	return &CatalogHttpHandler{service}
}

func (this *CatalogHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/breww")

	app.Post("/search", this.search)
	app.Post("/stock-items", this.stockItems)
}

// search godoc
// @Summary  Search catalog products
// @Tags     breww
// @Accept   json
// @Produce  json
// @Param    body body dtos.CatalogSearchRequest true "Query"
// @Success  200 {array} app.CatalogItem
// @Failure  400 {object} httpx.ErrorBody
// @Router   /api/breww/search [post]
func (this *CatalogHttpHandler) search(fctx fiber.Ctx) error {
	var req dtos.CatalogSearchRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	items, err := this.service.Search(fctx.Context(), req.Query)
	if err != nil {
		return err
	}
	return fctx.JSON(items)
}

// stockItems godoc
// @Summary  Stock items of a product
// @Tags     breww
// @Accept   json
// @Produce  json
// @Param    body body dtos.StockItemsRequest true "Product"
// @Success  200 {array} app.CatalogItem
// @Router   /api/breww/stock-items [post]
func (this *CatalogHttpHandler) stockItems(fctx fiber.Ctx) error {
	var req dtos.StockItemsRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	items, err := this.service.StockItems(fctx.Context(), req.ProductID)
	if err != nil {
		return err
	}
	return fctx.JSON(items)
}
