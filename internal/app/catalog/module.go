package catalog_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	catalog_service "github.com/init-pkg/sheet-export/internal/app/catalog/service"
	catalog_http_handler "github.com/init-pkg/sheet-export/internal/app/catalog/transports/http"
	breww_client "github.com/init-pkg/sheet-export/internal/clients/breww"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			func(c *breww_client.BrewwClient) catalog_service.Client { return c },
			fx.Annotate(catalog_service.New, fx.As(new(app.CatalogService))),
			catalog_http_handler.New,
		),
		fx.Invoke(func(h *catalog_http_handler.CatalogHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
