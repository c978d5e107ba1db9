package mapping_service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/workbook"
	"github.com/init-pkg/sheet-export/internal/app/mapping/keys"
	"github.com/init-pkg/sheet-export/internal/app/mapping/merger"
	"github.com/init-pkg/sheet-export/internal/app/mapping/scanner"
)

type stubParser struct {
	wb *workbook.Workbook
}

func (s stubParser) Parse(context.Context, []byte) (*workbook.Workbook, error) {
	return s.wb, nil
}

type stubInferrer struct {
	text string
	err  error
}

func (s stubInferrer) Infer(context.Context, string) (string, error) {
	return s.text, s.err
}

type recordingRegistry struct {
	calls []app.EnsureFieldsRequest
}

func (r *recordingRegistry) Ensure(_ context.Context, req app.EnsureFieldsRequest) error {
	r.calls = append(r.calls, req)
	return nil
}

func (r *recordingRegistry) ListValues(context.Context, fields.Scope, *string) ([]models.FieldDefinition, error) {
	return nil, nil
}

func (r *recordingRegistry) SetValues(context.Context, []app.FieldValueItem) error {
	return nil
}

func eanWorkbook() *workbook.Workbook {
	sheet := workbook.NewSheet("Sheet1")
	sheet.Set(workbook.Position{Row: 1, Col: 1}, workbook.Cell{Kind: workbook.KindText, Text: "EAN"})
	return &workbook.Workbook{Sheets: []*workbook.Sheet{sheet}}
}

func newService(inferrer app.Inferrer, registry app.FieldRegistryService) *Service {
	vocabulary := fields.DefaultVocabulary()
	normalizer := keys.New(vocabulary)
	return New(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubParser{eanWorkbook()},
		scanner.New(normalizer),
		merger.New(normalizer),
		inferrer,
		registry,
		vocabulary,
	)
}

func TestGenerateMergesAndRegisters(t *testing.T) {
	registry := &recordingRegistry{}
	svc := newService(stubInferrer{
		text: `{"ean":"Sheet1!B1","sku":"Sheet1!C2","houdbaarheid":"Sheet1!D4","kleur":"Sheet1!E5"}`,
	}, registry)

	res, err := svc.Generate(context.Background(), app.GenerateMappingRequest{File: []byte("x"), WholesalerID: "w1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Candidates["ean"] != "Sheet1!B1" {
		t.Errorf("candidates = %v", res.Candidates)
	}
	if len(res.Mapping) != 4 || res.Mapping["sku"] != "Sheet1!C2" {
		t.Errorf("mapping = %v", res.Mapping)
	}
	if res.Diagnostic != "" {
		t.Errorf("diagnostic = %q", res.Diagnostic)
	}

	if len(registry.calls) != 3 {
		t.Fatalf("ensure calls = %d, want 3", len(registry.calls))
	}
	global, provider, custom := registry.calls[0], registry.calls[1], registry.calls[2]
	if global.Scope != fields.ScopeGlobal || global.WholesalerID != nil || len(global.Keys) != 1 || global.Keys[0] != "houdbaarheid" {
		t.Errorf("global partition = %+v", global)
	}
	if provider.Scope != fields.ScopeWholesaler || provider.Source != fields.SourceBreww || len(provider.Keys) != 2 {
		t.Errorf("provider partition = %+v", provider)
	}
	if custom.Source != fields.SourceManual || len(custom.Keys) != 1 || custom.Keys[0] != "kleur" {
		t.Errorf("custom partition = %+v", custom)
	}
	if custom.WholesalerID == nil || *custom.WholesalerID != "w1" {
		t.Errorf("custom owner = %v", custom.WholesalerID)
	}
}

func TestGenerateKeepsCandidatesWhenInferenceFails(t *testing.T) {
	registry := &recordingRegistry{}
	svc := newService(stubInferrer{err: errs.Upstream("inference failed", 429, "quota")}, registry)

	res, err := svc.Generate(context.Background(), app.GenerateMappingRequest{File: []byte("x")})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Mapping) != 1 || res.Mapping["ean"] != "Sheet1!B1" {
		t.Errorf("mapping = %v, want scanner candidates", res.Mapping)
	}
	if res.Upstream == nil || res.Upstream.Status != 429 || res.Upstream.Details != "quota" {
		t.Errorf("upstream = %+v", res.Upstream)
	}
	if res.Diagnostic == "" {
		t.Error("expected a diagnostic")
	}
	if len(registry.calls) != 0 {
		t.Errorf("registry called without a wholesaler: %+v", registry.calls)
	}
}

func TestGenerateMalformedInference(t *testing.T) {
	svc := newService(stubInferrer{text: "not json at all"}, &recordingRegistry{})

	res, err := svc.Generate(context.Background(), app.GenerateMappingRequest{File: []byte("x")})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Mapping) != 1 || len(res.Inferred) != 0 {
		t.Errorf("mapping = %v inferred = %v", res.Mapping, res.Inferred)
	}
	if res.Diagnostic != merger.ErrNoMapping.Error() {
		t.Errorf("diagnostic = %q", res.Diagnostic)
	}
}

func TestRegisterKeysSkipsEmptyPartitions(t *testing.T) {
	registry := &recordingRegistry{}
	svc := newService(stubInferrer{}, registry)

	if err := svc.RegisterKeys(context.Background(), workbook.Mapping{"ean": "Sheet1!B1"}, "w1"); err != nil {
		t.Fatal(err)
	}
	if len(registry.calls) != 1 || registry.calls[0].Source != fields.SourceBreww {
		t.Errorf("calls = %+v, want one provider ensure", registry.calls)
	}
}
