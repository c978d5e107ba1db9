package excel_parser_service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

// ReadWorkbook converts every sheet of f into a sparse typed grid.
func ReadWorkbook(f *excelize.File) (*workbook.Workbook, error) {
	res := &workbook.Workbook{}
	for _, name := range f.GetSheetList() {
		sheet, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		res.Sheets = append(res.Sheets, sheet)
	}
	return res, nil
}

func readSheet(f *excelize.File, name string) (*workbook.Sheet, error) {
	sheet := workbook.NewSheet(name)

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		for c, text := range row {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			pos := workbook.Position{Row: r + 1, Col: c + 1}
			axis, err := excelize.CoordinatesToCellName(pos.Col, pos.Row)
			if err != nil {
				continue
			}
			sheet.Set(pos, workbook.Cell{Kind: cellKind(f, name, axis), Text: text})
		}
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		span, ok := parseSpan(merge.GetStartAxis(), merge.GetEndAxis())
		if !ok {
			continue
		}
		sheet.Spans = append(sheet.Spans, span)
	}

	return sheet, nil
}

func cellKind(f *excelize.File, sheet, axis string) workbook.CellKind {
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return workbook.KindText
	}

	switch typ {
	case excelize.CellTypeBool:
		return workbook.KindBool
	case excelize.CellTypeDate:
		return workbook.KindDate
	case excelize.CellTypeNumber:
		return workbook.KindNumber
	case excelize.CellTypeError:
		return workbook.KindError
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return workbook.KindText
	}

	// Untyped cells are numbers unless the raw value says otherwise.
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return workbook.KindText
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return workbook.KindNumber
	}
	return workbook.KindText
}

func parseSpan(start, end string) (workbook.Span, bool) {
	startCol, startRow, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return workbook.Span{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return workbook.Span{}, false
	}
	return workbook.Span{
		From: workbook.Position{Row: startRow, Col: startCol},
		To:   workbook.Position{Row: endRow, Col: endCol},
	}, true
}
