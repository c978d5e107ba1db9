package templates_repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/domain/workbook"
	"github.com/init-pkg/sheet-export/internal/shared/dbtest"
)

func TestMalformedIDIsNotFound(t *testing.T) {
	// no database needed: the id is rejected before any query
	repo := New(nil)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "abc"); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("Get: err = %v, want not_found", err)
	}
	if err := repo.UpdateMapping(ctx, "abc", workbook.Mapping{}); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("UpdateMapping: err = %v, want not_found", err)
	}
	if err := repo.Delete(ctx, "abc"); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("Delete: err = %v, want not_found", err)
	}
}

func TestRepository(t *testing.T) {
	db := dbtest.Open(t)
	repo := New(db)
	ctx := context.Background()

	w := &models.Wholesaler{Name: "Drankgroothandel", Slug: "drankgroothandel"}
	if err := db.Create(w).Error; err != nil {
		t.Fatal(err)
	}

	tpl := &models.Template{
		Name:         "Artikelformulier",
		WholesalerID: w.ID,
		Workbook:     []byte("pristine"),
		Mapping:      models.MappingJSON(workbook.Mapping{"ean": "Sheet1!B2"}),
	}
	if err := repo.Create(ctx, tpl); err != nil {
		t.Fatal(err)
	}

	list, err := repo.List(ctx, w.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Workbook != nil {
		t.Errorf("list = %+v, want one entry without workbook", list)
	}

	if err := repo.UpdateMapping(ctx, tpl.ID, workbook.Mapping{"sku": "Sheet1!C3"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(ctx, tpl.ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Workbook) != "pristine" || got.Mapping.Mapping()["sku"] != "Sheet1!C3" {
		t.Errorf("template = %+v", got)
	}

	unknown := uuid.NewString()
	if err := repo.UpdateMapping(ctx, unknown, workbook.Mapping{}); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("UpdateMapping unknown: err = %v", err)
	}
	if err := repo.Delete(ctx, tpl.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, tpl.ID); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("Delete twice: err = %v", err)
	}

	orphan := &models.Template{Name: "x", WholesalerID: unknown, Workbook: []byte("x"), Mapping: models.MappingJSON{}}
	if err := repo.Create(ctx, orphan); errs.KindOf(err) != errs.KindValidation {
		t.Errorf("Create orphan: err = %v, want validation", err)
	}
}
