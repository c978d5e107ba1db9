package app

import (
	"context"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

// ScanResult is the grid scanner output for one workbook.
type ScanResult struct {
	Candidates     workbook.Mapping `json:"candidates"`
	Transcript     string           `json:"transcript"`
	TranscriptRows int              `json:"transcript_rows"`
}

type GenerateMappingRequest struct {
	File         []byte
	WholesalerID string
}

type UpstreamDetail struct {
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}

type GenerateMappingResult struct {
	Mapping        workbook.Mapping `json:"mapping"`
	Candidates     workbook.Mapping `json:"candidates"`
	Inferred       workbook.Mapping `json:"inferred"`
	TranscriptRows int              `json:"transcript_rows"`
	Diagnostic     string           `json:"diagnostic,omitempty"`
	Upstream       *UpstreamDetail  `json:"upstream,omitempty"`
}

type MappingService interface {
	Scan(ctx context.Context, file []byte) (*ScanResult, error)
	Generate(ctx context.Context, req GenerateMappingRequest) (*GenerateMappingResult, error)
	// RegisterKeys ensures a field definition exists for every mapping key.
	RegisterKeys(ctx context.Context, mapping workbook.Mapping, wholesalerID string) error
}

// Inferrer turns a workbook transcript into free-form text that should
// contain a JSON object of key -> cell reference.
type Inferrer interface {
	Infer(ctx context.Context, transcript string) (string, error)
}

// InferenceBackend is one concrete model behind the Inferrer cascade.
type InferenceBackend interface {
	Name() string
	Configured(ctx context.Context) bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type InferenceCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
