package inference

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/init-pkg/sheet-export/domain/errs"
)

type stubBackend struct {
	name       string
	configured bool
	text       string
	err        error
	calls      int
	prompt     string
}

func (s *stubBackend) Name() string { return s.name }
func (s *stubBackend) Configured(context.Context) bool { return s.configured }
func (s *stubBackend) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.text, s.err
}

type memoryCache struct {
	items   map[string]string
	readErr error
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.readErr != nil {
		return "", false, c.readErr
	}
	v, ok := c.items[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string) error {
	c.items[key] = value
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInferFallsThroughToSecondBackend(t *testing.T) {
	first := &stubBackend{name: "gemini", configured: true, err: errs.Upstream("boom", 503, "unavailable")}
	second := &stubBackend{name: "openai", configured: true, text: `{"ean":"Sheet1!B1"}`}
	cache := &memoryCache{items: map[string]string{}}

	svc := New(newLogger(), cache, first, second)
	text, err := svc.Infer(context.Background(), "Sheet: Sheet1\nEAN")
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"ean":"Sheet1!B1"}` {
		t.Errorf("text = %q", text)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
	if !strings.Contains(second.prompt, "Template inhoud:\nSheet: Sheet1\nEAN") {
		t.Errorf("prompt is missing the transcript: %q", second.prompt)
	}
	if len(cache.items) != 1 {
		t.Errorf("cache holds %d items, want 1", len(cache.items))
	}
}

func TestInferServesFromCache(t *testing.T) {
	backend := &stubBackend{name: "gemini", configured: true, text: `{"sku":"Sheet1!C2"}`}
	cache := &memoryCache{items: map[string]string{}}
	svc := New(newLogger(), cache, backend)

	for i := 0; i < 2; i++ {
		if _, err := svc.Infer(context.Background(), "same transcript"); err != nil {
			t.Fatal(err)
		}
	}
	if backend.calls != 1 {
		t.Errorf("backend calls = %d, want 1", backend.calls)
	}
}

func TestInferBypassesBrokenCache(t *testing.T) {
	backend := &stubBackend{name: "gemini", configured: true, text: "{}"}
	cache := &memoryCache{items: map[string]string{}, readErr: errors.New("connection refused")}

	if _, err := New(newLogger(), cache, backend).Infer(context.Background(), "x"); err != nil {
		t.Fatalf("cache error leaked: %v", err)
	}
	if backend.calls != 1 {
		t.Errorf("backend calls = %d, want 1", backend.calls)
	}
}

func TestInferNotConfigured(t *testing.T) {
	backend := &stubBackend{name: "gemini"}
	_, err := New(newLogger(), nil, backend).Infer(context.Background(), "x")
	if errs.KindOf(err) != errs.KindValidation {
		t.Fatalf("kind = %v, want validation", errs.KindOf(err))
	}
	if backend.calls != 0 {
		t.Error("unconfigured backend was called")
	}
}

func TestInferAllFail(t *testing.T) {
	a := &stubBackend{name: "gemini", configured: true, err: errs.Upstream("quota", 429, "RESOURCE_EXHAUSTED")}
	b := &stubBackend{name: "openai", configured: true, err: errors.New("dial tcp: timeout")}

	_, err := New(newLogger(), nil, a, b).Infer(context.Background(), "x")
	var appErr *errs.AppError
	if !errors.As(err, &appErr) || appErr.Kind != errs.KindUpstream {
		t.Fatalf("err = %v, want upstream", err)
	}
	if appErr.Status != 429 {
		t.Errorf("status = %d, want 429", appErr.Status)
	}
	details, _ := appErr.Details.(string)
	if !strings.Contains(details, "gemini") || !strings.Contains(details, "openai") {
		t.Errorf("details = %q, want both backends", details)
	}
}

func TestCacheKeyIsStable(t *testing.T) {
	if CacheKey(BuildPrompt("a")) != CacheKey(BuildPrompt("a")) {
		t.Fatal("cache key differs for the same prompt")
	}
	if CacheKey(BuildPrompt("a")) == CacheKey(BuildPrompt("b")) {
		t.Fatal("cache key collides for different prompts")
	}
}
