package workbook

import (
	"errors"
	"testing"
)

func TestParseCellRef(t *testing.T) {
	cases := []struct {
		in    string
		sheet string
		cell  string
	}{
		{"Sheet1!B12", "Sheet1", "B12"},
		{" Sheet1!b2 ", "Sheet1", "B2"},
		{"Sheet1!$C$3", "Sheet1", "C3"},
		{"'Prijs lijst'!D4", "Prijs lijst", "D4"},
		{"'Bob''s'!A1", "Bob's", "A1"},
		{"Weird!Name!E5", "Weird!Name", "E5"},
	}
	for _, tc := range cases {
		ref, err := ParseCellRef(tc.in)
		if err != nil {
			t.Fatalf("ParseCellRef(%q): %v", tc.in, err)
		}
		if ref.Sheet != tc.sheet || ref.Cell != tc.cell {
			t.Errorf("ParseCellRef(%q) = %+v, want %s!%s", tc.in, ref, tc.sheet, tc.cell)
		}
	}
}

func TestParseCellRefRejects(t *testing.T) {
	for _, in := range []string{"", "B12", "!B12", "Sheet1!", "Sheet1!12", "Sheet1!B0", "''!A1"} {
		if _, err := ParseCellRef(in); !errors.Is(err, ErrInvalidCellRef) {
			t.Errorf("ParseCellRef(%q) err = %v, want ErrInvalidCellRef", in, err)
		}
	}
}

func TestLooksLikeCellRef(t *testing.T) {
	if !LooksLikeCellRef("Sheet1!B1") {
		t.Error("expected Sheet1!B1 to pass")
	}
	if LooksLikeCellRef("B1") {
		t.Error("expected B1 to fail")
	}
}

func TestRefAt(t *testing.T) {
	ref, err := RefAt("Sheet1", Position{Row: 12, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := ref.String(); got != "Sheet1!B12" {
		t.Errorf("RefAt = %q, want Sheet1!B12", got)
	}
}

func TestMappingInvalid(t *testing.T) {
	m := Mapping{"ean": "Sheet1!B1", "sku": "C2", "abv": ""}
	bad := m.Invalid()
	if len(bad) != 2 || bad[0] != "abv" || bad[1] != "sku" {
		t.Errorf("Invalid() = %v, want [abv sku]", bad)
	}
}
