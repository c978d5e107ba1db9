package app

import (
	"context"
	"encoding/json"

	"github.com/init-pkg/sheet-export/domain/values"
)

type ExportRequest struct {
	TemplateID          string
	Fields              values.Set
	Product             json.RawMessage
	StockItem           json.RawMessage
	IncludeStoredValues bool
}

// SkippedEntry is a mapping entry the writer could not apply.
type SkippedEntry struct {
	Key    string `json:"key"`
	Cell   string `json:"cell"`
	Reason string `json:"reason"`
}

type ExportResult struct {
	FileName string
	Content  []byte
	Skipped  []SkippedEntry
}

type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

type Event struct {
	Type         string         `json:"type"`
	TemplateID   string         `json:"template_id,omitempty"`
	WholesalerID string         `json:"wholesaler_id,omitempty"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
