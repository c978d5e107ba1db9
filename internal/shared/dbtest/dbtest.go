// Package dbtest opens the Postgres database repository tests run against.
// Tests skip unless SHEET_EXPORT_TEST_DSN points at a disposable database.
package dbtest

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	postgres_client "github.com/init-pkg/sheet-export/internal/clients/postgres"
)

const DsnEnv = "SHEET_EXPORT_TEST_DSN"

// Open migrates the database, empties every table and returns a handle that
// is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv(DsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", DsnEnv)
	}

	if err := postgres_client.Migrate(context.Background(), dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	err = db.Exec("TRUNCATE settings, field_values, field_definitions, templates, wholesalers CASCADE").Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}
