package wholesalers_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	wholesalers_repository "github.com/init-pkg/sheet-export/internal/app/wholesalers/repository"
	wholesalers_service "github.com/init-pkg/sheet-export/internal/app/wholesalers/service"
	wholesalers_http_handler "github.com/init-pkg/sheet-export/internal/app/wholesalers/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(wholesalers_repository.New, fx.As(new(wholesalers_service.Repository))),
			fx.Annotate(wholesalers_service.New, fx.As(new(app.WholesalerService))),
			wholesalers_http_handler.New,
		),
		fx.Invoke(func(h *wholesalers_http_handler.WholesalersHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
