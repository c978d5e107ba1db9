package settings_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	settings_repository "github.com/init-pkg/sheet-export/internal/app/settings/repository"
	settings_service "github.com/init-pkg/sheet-export/internal/app/settings/service"
	settings_http_handler "github.com/init-pkg/sheet-export/internal/app/settings/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(settings_repository.New, fx.As(new(settings_service.Repository))),
			fx.Annotate(settings_service.New, fx.As(new(app.SettingsService))),
			settings_http_handler.New,
		),
		fx.Invoke(func(h *settings_http_handler.SettingsHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
