package catalog_service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/values"
)

type Client interface {
	Products(ctx context.Context, query string) ([]byte, error)
	StockItems(ctx context.Context, productID string) ([]byte, error)
}

type CatalogService struct {
	log    *slog.Logger
	client Client
}

var _ app.CatalogService = &CatalogService{}

func New(log *slog.Logger, client Client) *CatalogService {
	return &CatalogService{log, client}
}

// Search returns the products whose name, code, sku or barcode contains the
// query, case-insensitively.
func (this *CatalogService) Search(ctx context.Context, query string) ([]app.CatalogItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation("Missing search query.")
	}

	body, err := this.client.Products(ctx, query)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)
	out := []app.CatalogItem{}
	for _, item := range Items(body) {
		for _, field := range []string{item.Name, item.Code, item.SKU, item.Barcode} {
			if field != "" && strings.Contains(strings.ToLower(field), lowered) {
				out = append(out, item)
				break
			}
		}
	}

	this.log.InfoContext(ctx, "catalog search", slog.String("query", query), slog.Int("results", len(out)))
	return out, nil
}

func (this *CatalogService) StockItems(ctx context.Context, productID string) ([]app.CatalogItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errs.Validation("Missing productId.")
	}

	body, err := this.client.StockItems(ctx, productID)
	if err != nil {
		return nil, err
	}
	return Items(body), nil
}

func (this *CatalogService) ParseItem(raw json.RawMessage) (*app.CatalogItem, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, errs.Validation("Catalog item is not valid JSON.")
	}
	result := gjson.ParseBytes(raw)
	if !result.IsObject() {
		return nil, errs.Validation("Catalog item must be an object.")
	}
	item := parseItem(result)
	return &item, nil
}

// ExportFields derives the provider keys: the name and abv come from the
// product, the codes and volume from the stock item. Missing values are null
// so they never blank a template cell.
func (this *CatalogService) ExportFields(product, stock *app.CatalogItem) values.Set {
	out := values.Set{}
	if product != nil {
		out[fields.KeyArtikelnaam] = text(product.Name)
		if product.ABV != nil {
			out[fields.KeyABV] = values.Number(*product.ABV)
		} else {
			out[fields.KeyABV] = values.Null()
		}
	}
	if stock != nil {
		out[fields.KeySKU] = text(stock.SKU)
		ean := stock.EAN
		if ean == "" {
			ean = stock.Barcode
		}
		out[fields.KeyEAN] = text(ean)
		out[fields.KeyVolume] = text(stock.Volume)
	}
	return out
}

// Items reads a provider list from results, data or the root array.
func Items(body []byte) []app.CatalogItem {
	root := gjson.ParseBytes(body)

	var list gjson.Result
	switch {
	case root.Get("results").IsArray():
		list = root.Get("results")
	case root.Get("data").IsArray():
		list = root.Get("data")
	case root.IsArray():
		list = root
	default:
		return []app.CatalogItem{}
	}

	out := make([]app.CatalogItem, 0, len(list.Array()))
	list.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			out = append(out, parseItem(value))
		}
		return true
	})
	return out
}

func parseItem(v gjson.Result) app.CatalogItem {
	item := app.CatalogItem{
		ID:      v.Get("id").String(),
		Name:    v.Get("name").String(),
		Code:    v.Get("code").String(),
		SKU:     v.Get("sku").String(),
		EAN:     v.Get("ean").String(),
		Volume:  v.Get("volume").String(),
		Barcode: v.Get("barcode_number").String(),
		Raw:     json.RawMessage(v.Raw),
	}
	if abv := v.Get("abv"); abv.Exists() && abv.Type != gjson.Null && abv.String() != "" {
		f := abv.Float()
		item.ABV = &f
	}
	return item
}

func text(s string) values.Value {
	if s == "" {
		return values.Null()
	}
	return values.String(s)
}
