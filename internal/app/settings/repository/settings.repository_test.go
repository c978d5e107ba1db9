package settings_repository

import (
	"context"
	"testing"

	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/internal/shared/dbtest"
)

func TestFirstAndSave(t *testing.T) {
	repo := New(dbtest.Open(t))
	ctx := context.Background()

	s, err := repo.First(ctx)
	if err != nil || s != nil {
		t.Fatalf("first = %+v, err = %v, want nil", s, err)
	}

	sub := "brouwerij"
	created := &models.Settings{BrewwSubdomain: &sub}
	if err := repo.Save(ctx, created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("save did not assign an id")
	}

	key := "gemini"
	created.GeminiApiKey = &key
	if err := repo.Save(ctx, created); err != nil {
		t.Fatal(err)
	}

	s, err = repo.First(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != created.ID || s.GeminiApiKey == nil || *s.GeminiApiKey != "gemini" {
		t.Errorf("settings = %+v", s)
	}
}
