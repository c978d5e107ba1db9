package writer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/init-pkg/sheet-export/domain/values"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

func templateBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A12", "Artikelnaam")
	f.SetCellValue("Sheet1", "A13", "ABV")
	f.SetCellValue("Sheet1", "B13", "n.v.t.")
	f.SetCellValue("Sheet1", "D1", "Bestelformulier")
	f.SetCellFormula("Sheet1", "E1", "SUM(1,2)")
	if _, err := f.NewSheet("Logistiek"); err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Logistiek", "A1", "Pallet")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func open(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestFillWritesMappedCellsOnly(t *testing.T) {
	pristine := templateBytes(t)
	mapping := workbook.Mapping{"artikelnaam": "Sheet1!B12"}
	set := values.Set{"artikelnaam": values.String("Tripel Reserve"), "sku": values.String("unused")}

	res, err := Fill(pristine, mapping, set)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written != 1 || len(res.Skipped) != 0 {
		t.Errorf("written = %d skipped = %v", res.Written, res.Skipped)
	}

	f := open(t, res.Content)
	if got := cell(t, f, "Sheet1", "B12"); got != "Tripel Reserve" {
		t.Errorf("B12 = %q", got)
	}
	if got := cell(t, f, "Sheet1", "D1"); got != "Bestelformulier" {
		t.Errorf("D1 = %q, want untouched", got)
	}
	if got, _ := f.GetCellFormula("Sheet1", "E1"); got != "SUM(1,2)" {
		t.Errorf("E1 formula = %q", got)
	}
	if got := cell(t, f, "Logistiek", "A1"); got != "Pallet" {
		t.Errorf("Logistiek!A1 = %q", got)
	}
}

func TestFillSkipsMissingSheet(t *testing.T) {
	mapping := workbook.Mapping{"artikelnaam": "Sheet1!B12", "ean": "Sheet9!A1"}
	set := values.Set{"artikelnaam": values.String("Tripel Reserve"), "ean": values.String("8712345678901")}

	res, err := Fill(templateBytes(t), mapping, set)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Key != "ean" || res.Skipped[0].Reason != ReasonSheetMissing {
		t.Errorf("skipped = %+v", res.Skipped)
	}
	if got := cell(t, open(t, res.Content), "Sheet1", "B12"); got != "Tripel Reserve" {
		t.Errorf("B12 = %q", got)
	}
}

func TestFillNullLeavesTemplateDefault(t *testing.T) {
	mapping := workbook.Mapping{"abv": "Sheet1!B13", "volume": "Sheet1!B14"}
	set := values.Set{"abv": values.Null()}

	res, err := Fill(templateBytes(t), mapping, set)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written != 0 || len(res.Skipped) != 0 {
		t.Errorf("written = %d skipped = %v", res.Written, res.Skipped)
	}
	if got := cell(t, open(t, res.Content), "Sheet1", "B13"); got != "n.v.t." {
		t.Errorf("B13 = %q, want template default", got)
	}
}

func TestFillValueKinds(t *testing.T) {
	mapping := workbook.Mapping{
		"abv":        "Sheet1!B13",
		"retour":     "Sheet1!C1",
		"allergenen": "Sheet1!C2",
		"dozen":      "Sheet1!C3",
	}
	set := values.Set{
		"abv":        values.Number(8.5),
		"retour":     values.Bool(true),
		"allergenen": values.Structured([]byte(`{"gluten": true}`)),
		"dozen":      values.Number(24),
	}

	res, err := Fill(templateBytes(t), mapping, set)
	if err != nil {
		t.Fatal(err)
	}
	f := open(t, res.Content)

	if got := cell(t, f, "Sheet1", "B13"); got != "8.5" {
		t.Errorf("abv = %q", got)
	}
	if got := cell(t, f, "Sheet1", "C1"); got != "TRUE" {
		t.Errorf("bool = %q", got)
	}
	if got := cell(t, f, "Sheet1", "C2"); got != `{"gluten":true}` {
		t.Errorf("structured = %q", got)
	}
	if got := cell(t, f, "Sheet1", "C3"); got != "24" {
		t.Errorf("integral = %q", got)
	}
}

func TestFillReportsMalformedRef(t *testing.T) {
	mapping := workbook.Mapping{"ean": "Sheet1!not-a-cell"}
	res, err := Fill(templateBytes(t), mapping, values.Set{"ean": values.String("x")})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != ReasonInvalidRef {
		t.Errorf("skipped = %+v", res.Skipped)
	}
}

func TestFillDoesNotMutatePristine(t *testing.T) {
	pristine := templateBytes(t)
	snapshot := append([]byte(nil), pristine...)

	for _, name := range []string{"Tripel Reserve", "Blond"} {
		if _, err := Fill(pristine, workbook.Mapping{"artikelnaam": "Sheet1!B12"}, values.Set{"artikelnaam": values.String(name)}); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(pristine, snapshot) {
		t.Fatal("pristine bytes changed")
	}
	if got := cell(t, open(t, pristine), "Sheet1", "B12"); got != "" {
		t.Errorf("pristine B12 = %q, want empty", got)
	}
}

func TestFillRejectsUnreadableTemplate(t *testing.T) {
	if _, err := Fill([]byte("not a zip"), workbook.Mapping{}, values.Set{}); err == nil {
		t.Fatal("expected error")
	}
}
