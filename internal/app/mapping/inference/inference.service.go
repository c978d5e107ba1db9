// Package inference runs the model cascade that proposes a field mapping
// for a workbook transcript.
package inference

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
)

const cacheKeyPrefix = "sheet-export:inference:"

var ErrNotConfigured = errs.Validation("inference not configured")

type Service struct {
	log      *slog.Logger
	cache    app.InferenceCache
	backends []app.InferenceBackend
}

// New builds the cascade. Backends are tried in the given order.
func New(log *slog.Logger, cache app.InferenceCache, backends ...app.InferenceBackend) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{
		log:      log,
		cache:    cache,
		backends: backends,
	}
}

func (this *Service) Infer(ctx context.Context, transcript string) (string, error) {
	prompt := BuildPrompt(transcript)
	key := CacheKey(prompt)

	cached, ok, err := this.cache.Get(ctx, key)
	if err != nil {
		this.log.WarnContext(ctx, "inference cache read failed", slog.String("error", err.Error()))
	} else if ok {
		this.log.DebugContext(ctx, "inference cache hit", slog.String("key", key))
		return cached, nil
	}

	var (
		tried    int
		failures []string
		status   int
	)
	for _, backend := range this.backends {
		if !backend.Configured(ctx) {
			continue
		}
		tried++

		text, err := backend.Generate(ctx, prompt)
		if err != nil {
			this.log.WarnContext(ctx, "inference backend failed",
				slog.String("backend", backend.Name()),
				slog.String("error", err.Error()),
			)
			failures = append(failures, fmt.Sprintf("%s: %v", backend.Name(), err))

			var appErr *errs.AppError
			if errors.As(err, &appErr) && appErr.Status != 0 {
				status = appErr.Status
			}
			continue
		}

		this.log.InfoContext(ctx, "inference completed",
			slog.String("backend", backend.Name()),
			slog.Int("length", len(text)),
		)
		if strings.TrimSpace(text) != "" {
			if err := this.cache.Set(ctx, key, text); err != nil {
				this.log.WarnContext(ctx, "inference cache write failed", slog.String("error", err.Error()))
			}
		}
		return text, nil
	}

	if tried == 0 {
		return "", ErrNotConfigured
	}
	return "", errs.Upstream("inference failed", status, strings.Join(failures, "\n"))
}

// CacheKey is the SHA-256 of the prompt, hex encoded and namespaced.
func CacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
