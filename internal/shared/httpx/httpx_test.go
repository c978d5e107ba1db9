package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/errs"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	admin := app.Group("/admin", AdminOnly("secret"))
	admin.Get("/ping", func(c fiber.Ctx) error {
		return c.JSON(OK{Ok: true})
	})
	app.Get("/missing", func(c fiber.Ctx) error {
		return errs.NotFound("Template not found.")
	})
	app.Get("/upstream", func(c fiber.Ctx) error {
		return errs.Upstream("Breww request failed.", 403, "forbidden")
	})
	app.Get("/upstream-unknown", func(c fiber.Ctx) error {
		return errs.Upstream("inference failed", 0, "")
	})
	return app
}

func TestAdminOnly(t *testing.T) {
	app := newApp()

	cases := []struct {
		token string
		want  int
	}{
		{"", http.StatusUnauthorized},
		{"wrong", http.StatusUnauthorized},
		{"secret", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if tc.token != "" {
			req.Header.Set(AdminTokenHeader, tc.token)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != tc.want {
			t.Errorf("token %q: status = %d, want %d", tc.token, res.StatusCode, tc.want)
		}
	}
}

func TestAdminOnlyWithoutConfiguredToken(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))})
	app.Group("/admin", AdminOnly("")).Get("/x", func(c fiber.Ctx) error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/admin/x", nil)
	req.Header.Set(AdminTokenHeader, "")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", res.StatusCode)
	}
}

func TestErrorHandlerStatuses(t *testing.T) {
	app := newApp()

	cases := []struct {
		path   string
		status int
		body   ErrorBody
	}{
		{"/missing", http.StatusNotFound, ErrorBody{Error: "Template not found."}},
		{"/upstream", http.StatusForbidden, ErrorBody{Error: "Breww request failed.", Status: 403, Details: "forbidden"}},
		{"/upstream-unknown", http.StatusBadGateway, ErrorBody{Error: "inference failed"}},
	}
	for _, tc := range cases {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.path, res.StatusCode, tc.status)
		}
		var body ErrorBody
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Error != tc.body.Error || body.Status != tc.body.Status {
			t.Errorf("%s: body = %+v, want %+v", tc.path, body, tc.body)
		}
		if tc.body.Details != nil && body.Details != tc.body.Details {
			t.Errorf("%s: details = %v, want %v", tc.path, body.Details, tc.body.Details)
		}
	}
}
