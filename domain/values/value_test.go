package values

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalKinds(t *testing.T) {
	var set Set
	raw := `{"a":"Tripel","b":8.5,"c":true,"d":null,"e":{"x":1, "y":[1,2]},"f":24}`
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatal(err)
	}

	want := map[string]Kind{
		"a": KindString,
		"b": KindNumber,
		"c": KindBool,
		"d": KindNull,
		"e": KindStructured,
		"f": KindNumber,
	}
	for k, kind := range want {
		if set[k].Kind() != kind {
			t.Errorf("%s kind = %v, want %v", k, set[k].Kind(), kind)
		}
	}
	if got := set["e"].CellValue(); got != `{"x":1,"y":[1,2]}` {
		t.Errorf("structured cell value = %v", got)
	}
	if got := set["f"].CellValue(); got != int64(24) {
		t.Errorf("integral number = %#v, want int64(24)", got)
	}
	if got := set["b"].CellValue(); got != 8.5 {
		t.Errorf("fractional number = %#v, want 8.5", got)
	}
}

func TestFromStructured(t *testing.T) {
	v, err := From(map[string]any{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != KindStructured || v.String() != `{"k":"v"}` {
		t.Errorf("From(map) = %v (%v)", v.String(), v.Kind())
	}
}

func TestOverlay(t *testing.T) {
	base := Set{"abv": Number(8.5), "artikelnaam": String("Tripel")}
	top := Set{"abv": Null(), "artikelnaam": String("Tripel Reserve"), "ean": Null()}

	out := base.Overlay(top)
	if out["abv"].CellValue() != 8.5 {
		t.Errorf("null overlay erased abv: %v", out["abv"])
	}
	if out["artikelnaam"].String() != "Tripel Reserve" {
		t.Errorf("artikelnaam = %q", out["artikelnaam"].String())
	}
	if !out["ean"].IsNull() {
		t.Errorf("ean = %v, want null", out["ean"])
	}
	if base["artikelnaam"].String() != "Tripel" {
		t.Error("Overlay mutated the receiver")
	}
}
