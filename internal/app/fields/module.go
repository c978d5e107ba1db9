package fields_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	fields_repository "github.com/init-pkg/sheet-export/internal/app/fields/repository"
	fields_service "github.com/init-pkg/sheet-export/internal/app/fields/service"
	fields_http_handler "github.com/init-pkg/sheet-export/internal/app/fields/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(fields_repository.New, fx.As(new(fields_service.Repository))),
			fx.Annotate(fields_service.New, fx.As(new(app.FieldRegistryService))),
			fields_http_handler.New,
		),
		fx.Invoke(func(h *fields_http_handler.FieldsHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
