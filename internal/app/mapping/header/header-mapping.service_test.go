package header_mapping_service

import (
	"context"
	"testing"
)

func TestFlatten(t *testing.T) {
	got, err := Flatten(`{"mappings":[{"key":"ean","cell":"Sheet1!B1"},{"key":" sku ","cell":"Sheet1!C2 "},{"key":"","cell":"Sheet1!A1"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"ean":"Sheet1!B1","sku":"Sheet1!C2"}`
	if got != want {
		t.Errorf("Flatten = %s, want %s", got, want)
	}
}

func TestFlattenPassesThroughOtherShapes(t *testing.T) {
	raw := `{"ean":"Sheet1!B1"}`
	got, err := Flatten(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got != raw {
		t.Errorf("Flatten = %s, want passthrough", got)
	}
}

func TestUnconfigured(t *testing.T) {
	s := &HeaderMappingService{}
	if s.Configured(context.Background()) {
		t.Fatal("service without client reports configured")
	}
	if _, err := s.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without client")
	}
}
