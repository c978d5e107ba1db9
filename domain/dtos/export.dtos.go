package dtos

import (
	"encoding/json"

	"github.com/init-pkg/sheet-export/domain/values"
)

type ExportRequest struct {
	TemplateID          string          `json:"template_id" validate:"required"`
	Fields              values.Set      `json:"fields"`
	Product             json.RawMessage `json:"product,omitempty"`
	StockItem           json.RawMessage `json:"stock_item,omitempty"`
	IncludeStoredValues bool            `json:"include_stored_values"`
}
