package templates_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	templates_repository "github.com/init-pkg/sheet-export/internal/app/templates/repository"
	templates_service "github.com/init-pkg/sheet-export/internal/app/templates/service"
	templates_http_handler "github.com/init-pkg/sheet-export/internal/app/templates/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(templates_repository.New, fx.As(new(templates_service.Repository))),
			fx.Annotate(templates_service.New, fx.As(new(app.TemplateService))),
			templates_http_handler.New,
		),
		fx.Invoke(func(h *templates_http_handler.TemplatesHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
