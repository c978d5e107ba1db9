package catalog_service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/values"
)

type stubClient struct {
	products []byte
	stock    []byte
}

func (c stubClient) Products(context.Context, string) ([]byte, error) {
	return c.products, nil
}

func (c stubClient) StockItems(context.Context, string) ([]byte, error) {
	return c.stock, nil
}

func newService(c stubClient) *CatalogService {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), c)
}

func TestItemsShapes(t *testing.T) {
	cases := map[string]string{
		"results": `{"results":[{"id":1,"name":"A"},{"id":2,"name":"B"}]}`,
		"data":    `{"data":[{"id":1,"name":"A"},{"id":2,"name":"B"}]}`,
		"root":    `[{"id":1,"name":"A"},{"id":2,"name":"B"}]`,
	}
	for name, body := range cases {
		items := Items([]byte(body))
		if len(items) != 2 || items[0].ID != "1" || items[1].Name != "B" {
			t.Errorf("%s: items = %+v", name, items)
		}
	}
	if items := Items([]byte(`{"detail":"nothing"}`)); len(items) != 0 {
		t.Errorf("unknown shape: items = %+v", items)
	}
}

func TestSearchFiltersLocally(t *testing.T) {
	svc := newService(stubClient{products: []byte(`{"results":[
		{"id":1,"name":"Tripel Reserve","code":"TR-01"},
		{"id":2,"name":"Blond","code":"BL-01","barcode_number":"8712345tripel"},
		{"id":3,"name":"Stout","code":"ST-01"}
	]}`)})

	items, err := svc.Search(context.Background(), "TRIPEL")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "2" {
		t.Errorf("items = %+v", items)
	}
}

func TestSearchNeedsQuery(t *testing.T) {
	if _, err := newService(stubClient{}).Search(context.Background(), " "); errs.KindOf(err) != errs.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestExportFields(t *testing.T) {
	svc := newService(stubClient{})
	product, err := svc.ParseItem(json.RawMessage(`{"id":7,"name":"Tripel Reserve","abv":8.5}`))
	if err != nil {
		t.Fatal(err)
	}
	stock, err := svc.ParseItem(json.RawMessage(`{"id":70,"sku":"TR-33","barcode_number":"8712345678901","volume":"33cl"}`))
	if err != nil {
		t.Fatal(err)
	}

	got := svc.ExportFields(product, stock)
	want := values.Set{
		"artikelnaam": values.String("Tripel Reserve"),
		"abv":         values.Number(8.5),
		"sku":         values.String("TR-33"),
		"ean":         values.String("8712345678901"),
		"volume":      values.String("33cl"),
	}
	for k, v := range want {
		if got[k].CellValue() != v.CellValue() {
			t.Errorf("%s = %v, want %v", k, got[k].CellValue(), v.CellValue())
		}
	}
}

func TestExportFieldsMissingValuesAreNull(t *testing.T) {
	svc := newService(stubClient{})
	product, _ := svc.ParseItem(json.RawMessage(`{"id":7,"name":"Blond"}`))

	got := svc.ExportFields(product, nil)
	if !got["abv"].IsNull() {
		t.Errorf("abv = %v, want null", got["abv"])
	}
	if _, ok := got["sku"]; ok {
		t.Error("stock keys derived without a stock item")
	}
}

func TestParseItemRejectsNonObject(t *testing.T) {
	if _, err := newService(stubClient{}).ParseItem(json.RawMessage(`[1,2]`)); errs.KindOf(err) != errs.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
}
