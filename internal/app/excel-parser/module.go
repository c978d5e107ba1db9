package excel_parser_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	excel_parser_service "github.com/init-pkg/sheet-export/internal/app/excel-parser/service"
	excel_parser_http_handler "github.com/init-pkg/sheet-export/internal/app/excel-parser/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(excel_parser_service.New, fx.As(new(app.ExcelParserService))),
			excel_parser_http_handler.New,
		),
		fx.Invoke(func(h *excel_parser_http_handler.ExcelParserHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}
