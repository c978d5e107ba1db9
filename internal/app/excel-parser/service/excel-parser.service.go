package excel_parser_service

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

type ExcelParserService struct {
	log *slog.Logger
}

var _ app.ExcelParserService = &ExcelParserService{}

func New(log *slog.Logger) *ExcelParserService {
	return &ExcelParserService{log}
}

func (this *ExcelParserService) Parse(ctx context.Context, file []byte) (*workbook.Workbook, error) {
	if len(file) == 0 {
		return nil, errs.Validation("Missing workbook.")
	}

	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "Workbook could not be read"})
	}
	defer f.Close()

	res, err := ReadWorkbook(f)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	this.log.InfoContext(ctx, "Excel parsing completed", "sheets", len(res.Sheets))
	return res, nil
}
