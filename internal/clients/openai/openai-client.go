package openai_client

import (
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/init-pkg/sheet-export/internal/config"
)

// New returns nil without an api key so the fallback backend reports itself
// unconfigured.
func New(cfg *config.Config) *openai.Client {
	if cfg.Clients.OpenAI.ApiKey == "" {
		return nil
	}

	var cl = openai.NewClient(
		option.WithAPIKey(cfg.Clients.OpenAI.ApiKey),
		option.WithMaxRetries(1),
	)

	return &cl
}
