package export_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	export_service "github.com/init-pkg/sheet-export/internal/app/export/service"
	export_http_handler "github.com/init-pkg/sheet-export/internal/app/export/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(export_service.New, fx.As(new(app.ExportService))),
			export_http_handler.New,
		),
		fx.Invoke(func(h *export_http_handler.ExportHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
