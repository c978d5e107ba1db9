package bootstrap

import (
	"context"
	"log/slog"
	"os"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	_ "github.com/init-pkg/sheet-export/docs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Load,
			newLogger,
			fields.DefaultVocabulary,
			newHttpApp,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
	)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Env == "local" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

func newHttpApp(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "sheet-export",
		BodyLimit:    cfg.Http.BodyLimit,
		ErrorHandler: httpx.ErrorHandler(log),
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(httpx.OK{Ok: true})
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info("http server listening", slog.String("addr", cfg.Http.Addr))
				if err := app.Listen(cfg.Http.Addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("http server stopped", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}
