package app

import (
	"context"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

type ExcelParserService interface {
	Parse(ctx context.Context, file []byte) (*workbook.Workbook, error)
}
