package gemini_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/internal/config"
)

// GeminiClient is the primary inference backend. It walks every configured
// api version and model, first success wins.
type GeminiClient struct {
	cfg      config.Gemini
	settings app.SettingsService
	log      *slog.Logger
}

func New(cfg *config.Config, settings app.SettingsService, log *slog.Logger) *GeminiClient {
	return &GeminiClient{
		cfg:      cfg.Clients.Gemini,
		settings: settings,
		log:      log,
	}
}

func (this *GeminiClient) Name() string {
	return "gemini"
}

func (this *GeminiClient) Configured(ctx context.Context) bool {
	return this.apiKey(ctx) != ""
}

// apiKey prefers the stored settings over the static config.
func (this *GeminiClient) apiKey(ctx context.Context) string {
	if this.settings != nil {
		s, err := this.settings.Get(ctx)
		if err != nil {
			this.log.WarnContext(ctx, "settings load failed", slog.String("error", err.Error()))
		} else if s != nil && s.GeminiApiKey != nil && strings.TrimSpace(*s.GeminiApiKey) != "" {
			return strings.TrimSpace(*s.GeminiApiKey)
		}
	}
	return this.cfg.ApiKey
}

func (this *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	key := this.apiKey(ctx)
	if key == "" {
		return "", errs.Validation("Gemini settings not configured.")
	}

	if this.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, this.cfg.Timeout)
		defer cancel()
	}

	var (
		failures []string
		status   int
	)
	for _, version := range this.cfg.ApiVersions {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{APIVersion: version},
		})
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", version, err))
			continue
		}

		for _, model := range this.cfg.Models {
			result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
				Temperature: genai.Ptr(this.cfg.Temperature),
			})
			if err != nil {
				if code := apiErrorCode(err); code != 0 {
					status = code
				}
				failures = append(failures, fmt.Sprintf("%s/%s: %v", version, model, err))
				continue
			}

			this.log.DebugContext(ctx, "gemini model answered",
				slog.String("version", version),
				slog.String("model", model),
			)
			return result.Text(), nil
		}
	}

	if len(failures) == 0 {
		return "", errs.Validation("No compatible Gemini models found.")
	}
	return "", errs.Upstream("Gemini request failed.", status, strings.Join(failures, "\n"))
}

func apiErrorCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
