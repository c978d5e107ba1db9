package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Separator splits the sheet name from the coordinate in a cell reference.
const Separator = "!"

var ErrInvalidCellRef = errors.New("invalid cell reference")

// CellRef is a sheet-qualified single cell locator, e.g. Sheet1!B12.
type CellRef struct {
	Sheet string
	Cell  string
}

func (r CellRef) String() string {
	return r.Sheet + Separator + r.Cell
}

// LooksLikeCellRef is the minimal shape check applied to mapping values.
func LooksLikeCellRef(v string) bool {
	return strings.Contains(v, Separator)
}

// ParseCellRef splits on the last separator and validates the coordinate.
// Quoted sheet names ('My Sheet'!A1) are unquoted.
func ParseCellRef(v string) (CellRef, error) {
	v = strings.TrimSpace(v)
	idx := strings.LastIndex(v, Separator)
	if idx <= 0 || idx == len(v)-1 {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidCellRef, v)
	}

	sheet := v[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	cell := strings.ToUpper(strings.ReplaceAll(v[idx+1:], "$", ""))
	if sheet == "" {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidCellRef, v)
	}
	if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidCellRef, v)
	}

	return CellRef{Sheet: sheet, Cell: cell}, nil
}

// RefAt builds the reference for a 1-based position on sheet.
func RefAt(sheet string, pos Position) (CellRef, error) {
	cell, err := excelize.CoordinatesToCellName(pos.Col, pos.Row)
	if err != nil {
		return CellRef{}, err
	}
	return CellRef{Sheet: sheet, Cell: cell}, nil
}
