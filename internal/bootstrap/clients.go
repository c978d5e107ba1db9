package bootstrap

import (
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	breww_client "github.com/init-pkg/sheet-export/internal/clients/breww"
	gemini_client "github.com/init-pkg/sheet-export/internal/clients/gemini"
	openai_client "github.com/init-pkg/sheet-export/internal/clients/openai"
	postgres_client "github.com/init-pkg/sheet-export/internal/clients/postgres"
	rabbitmq_client "github.com/init-pkg/sheet-export/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/sheet-export/internal/clients/redis"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres_client.New,
			redis_client.New,
			openai_client.New,
			gemini_client.New,
			breww_client.New,
			fx.Annotate(rabbitmq_client.New, fx.As(new(app.EventPublisher))),
		),
	)
}
