package app

import (
	"context"
	"encoding/json"

	"github.com/init-pkg/sheet-export/domain/values"
)

// CatalogItem is one record returned by the catalog provider. Raw keeps the
// full provider payload.
type CatalogItem struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Code    string          `json:"code,omitempty"`
	SKU     string          `json:"sku,omitempty"`
	EAN     string          `json:"ean,omitempty"`
	ABV     *float64        `json:"abv,omitempty"`
	Volume  string          `json:"volume,omitempty"`
	Barcode string          `json:"barcode_number,omitempty"`
	Raw     json.RawMessage `json:"raw"`
}

type CatalogService interface {
	Search(ctx context.Context, query string) ([]CatalogItem, error)
	StockItems(ctx context.Context, productID string) ([]CatalogItem, error)
	// ParseItem reads a single provider record as sent back by a client.
	ParseItem(raw json.RawMessage) (*CatalogItem, error)
	ExportFields(product, stock *CatalogItem) values.Set
}
