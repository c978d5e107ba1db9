package mapping_module

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/fields"
	mapping_service "github.com/init-pkg/sheet-export/internal/app/mapping/general"
	header_mapping_service "github.com/init-pkg/sheet-export/internal/app/mapping/header"
	"github.com/init-pkg/sheet-export/internal/app/mapping/inference"
	"github.com/init-pkg/sheet-export/internal/app/mapping/keys"
	"github.com/init-pkg/sheet-export/internal/app/mapping/merger"
	"github.com/init-pkg/sheet-export/internal/app/mapping/scanner"
	mapping_http_handler "github.com/init-pkg/sheet-export/internal/app/mapping/transports/http"
	gemini_client "github.com/init-pkg/sheet-export/internal/clients/gemini"
	"github.com/init-pkg/sheet-export/internal/config"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			func(v fields.Vocabulary) *keys.Normalizer { return keys.New(v) },
			func(n *keys.Normalizer) *scanner.Scanner { return scanner.New(n) },
			func(n *keys.Normalizer) *merger.Merger { return merger.New(n) },
			header_mapping_service.New,
			newCache,
			fx.Annotate(newInferrer, fx.As(new(app.Inferrer))),
			fx.Annotate(mapping_service.New, fx.As(new(app.MappingService))),
			mapping_http_handler.New,
		),
		fx.Invoke(func(h *mapping_http_handler.MappingHttpHandler, app *fiber.App) {
			h.Register(app)
		}),
	)
}

func newCache(cfg *config.Config, client *redis.Client) app.InferenceCache {
	if client == nil {
		return inference.NopCache{}
	}
	return inference.NewRedisCache(client, cfg.Infrastructure.Redis.TTL)
}

// Gemini first, OpenAI structured outputs as the fallback.
func newInferrer(
	log *slog.Logger,
	cache app.InferenceCache,
	gemini *gemini_client.GeminiClient,
	openai *header_mapping_service.HeaderMappingService,
) *inference.Service {
	return inference.New(log, cache, gemini, openai)
}
