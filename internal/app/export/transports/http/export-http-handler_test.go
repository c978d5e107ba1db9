package export_http_handler

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type stubService struct {
	got      app.ExportRequest
	fileName string
}

func (s *stubService) Export(_ context.Context, req app.ExportRequest) (*app.ExportResult, error) {
	s.got = req
	if req.TemplateID == "missing" {
		return nil, errs.NotFound("Template not found.")
	}
	return &app.ExportResult{
		FileName: s.fileName,
		Content:  []byte("xlsx"),
		Skipped:  []app.SkippedEntry{{Key: "logistiek", Cell: "Logistiek!A1", Reason: "sheet not found"}},
	}, nil
}

func newApp(svc app.ExportService) *fiber.App {
	mainApp := fiber.New(fiber.Config{
		ErrorHandler: httpx.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	New(svc).Register(mainApp)
	return mainApp
}

func post(t *testing.T, a *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/excel/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := a.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGenerate(t *testing.T) {
	svc := &stubService{fileName: "Artikelformulier.xlsx"}
	res := post(t, newApp(svc), `{"template_id": "tpl-1", "fields": {"artikelnaam": "Tripel", "abv": 8.5}, "include_stored_values": true}`)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if got := res.Header.Get("Content-Type"); got != ContentTypeXLSX {
		t.Errorf("content type = %q", got)
	}
	if got := attachmentName(t, res); got != "Artikelformulier.xlsx" {
		t.Errorf("filename = %q", got)
	}
	if got := res.Header.Get(SkippedHeader); got != "1" {
		t.Errorf("skipped = %q", got)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) != "xlsx" {
		t.Errorf("body = %q", body)
	}

	if svc.got.TemplateID != "tpl-1" || !svc.got.IncludeStoredValues {
		t.Errorf("request = %+v", svc.got)
	}
	if v := svc.got.Fields["abv"]; v.String() != "8.5" {
		t.Errorf("abv = %v", v)
	}
}

func attachmentName(t *testing.T, res *http.Response) string {
	t.Helper()
	kind, params, err := mime.ParseMediaType(res.Header.Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("disposition %q: %v", res.Header.Get("Content-Disposition"), err)
	}
	if kind != "attachment" {
		t.Errorf("disposition kind = %q", kind)
	}
	return params["filename"]
}

func TestGenerateKeepsFullTemplateName(t *testing.T) {
	for _, name := range []string{"Horeca/Retail.xlsx", "Brouwerij Één.xlsx"} {
		res := post(t, newApp(&stubService{fileName: name}), `{"template_id": "tpl-1"}`)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d", name, res.StatusCode)
		}
		if got := attachmentName(t, res); got != name {
			t.Errorf("filename = %q, want %q", got, name)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	a := newApp(&stubService{})

	if res := post(t, a, `{}`); res.StatusCode != http.StatusBadRequest {
		t.Errorf("missing template_id: status = %d", res.StatusCode)
	}
	if res := post(t, a, `{"template_id": "missing"}`); res.StatusCode != http.StatusNotFound {
		t.Errorf("unknown template: status = %d", res.StatusCode)
	}
}
