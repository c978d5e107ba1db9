package breww_client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/internal/config"
)

// BrewwClient talks to the Breww REST api. Credentials come from the stored
// settings, falling back to the static config.
type BrewwClient struct {
	cfg      config.Breww
	settings app.SettingsService
	client   *http.Client
	log      *slog.Logger
}

func New(cfg *config.Config, settings app.SettingsService, log *slog.Logger) *BrewwClient {
	client := &http.Client{
		Timeout: cfg.Clients.Breww.Timeout,
	}

	return &BrewwClient{
		cfg:      cfg.Clients.Breww,
		settings: settings,
		client:   client,
		log:      log,
	}
}

// BaseURL accepts a full base url or a bare subdomain.
func BaseURL(subdomain string) string {
	s := strings.TrimSpace(subdomain)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "://") {
		return strings.TrimRight(s, "/")
	}
	return fmt.Sprintf("https://%s.breww.com/api", s)
}

func (this *BrewwClient) credentials(ctx context.Context) (string, string, error) {
	subdomain, key := this.cfg.Subdomain, this.cfg.ApiKey

	if this.settings != nil {
		s, err := this.settings.Get(ctx)
		if err != nil {
			return "", "", errs.WrapAppError(err, &errs.ErrorOpts{Message: "Breww settings load failed."})
		}
		if s.BrewwSubdomain != nil && strings.TrimSpace(*s.BrewwSubdomain) != "" {
			subdomain = *s.BrewwSubdomain
		}
		if s.BrewwApiKey != nil && strings.TrimSpace(*s.BrewwApiKey) != "" {
			key = strings.TrimSpace(*s.BrewwApiKey)
		}
	}

	base := BaseURL(subdomain)
	if base == "" || key == "" {
		return "", "", errs.Validation("Breww settings not configured.")
	}
	return base, key, nil
}

// Products searches products by name or code.
func (this *BrewwClient) Products(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{}
	params.Set("name__contains", query)
	params.Set("code__contains", query)
	return this.get(ctx, "/products/", params)
}

func (this *BrewwClient) StockItems(ctx context.Context, productID string) ([]byte, error) {
	return this.get(ctx, "/products/"+url.PathEscape(productID)+"/stock-items", nil)
}

// get tries a Bearer token first and retries with the Token scheme on 401
// and 403.
func (this *BrewwClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	base, key, err := this.credentials(ctx)
	if err != nil {
		return nil, err
	}

	parsedURL, e := url.Parse(base + path)
	if e != nil {
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "Breww base URL is invalid."})
	}
	if params != nil {
		parsedURL.RawQuery = params.Encode()
	}

	status, body, e := this.do(ctx, parsedURL.String(), "Bearer "+key)
	if e == nil && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
		status, body, e = this.do(ctx, parsedURL.String(), "Token "+key)
	}
	if e != nil {
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{Kind: errs.KindUpstream, Message: "Breww request failed."})
	}

	if status < 200 || status > 299 {
		this.log.WarnContext(ctx, "breww request failed", slog.String("path", path), slog.Int("status", status))
		return nil, errs.Upstream("Breww request failed.", status, string(body))
	}
	return body, nil
}

func (this *BrewwClient) do(ctx context.Context, target string, auth string) (int, []byte, error) {
	req, e := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if e != nil {
		return 0, nil, e
	}

	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, e := this.client.Do(req)
	if e != nil {
		return 0, nil, e
	}
	defer res.Body.Close()

	body, e := io.ReadAll(res.Body)
	if e != nil {
		return 0, nil, e
	}
	return res.StatusCode, body, nil
}
