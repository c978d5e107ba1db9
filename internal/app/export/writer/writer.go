// Package writer replays a mapping and a value set onto the pristine
// template workbook.
package writer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/values"
	"github.com/init-pkg/sheet-export/domain/workbook"
)

const (
	ReasonInvalidRef   = "invalid cell reference"
	ReasonSheetMissing = "sheet not found"
)

type Result struct {
	Content []byte
	Written int
	// Skipped lists mapped entries with a value that could not be placed.
	Skipped []app.SkippedEntry
}

// Fill opens a fresh copy of pristine for every call. Keys without a value,
// or with a null value, leave the template cell as is.
func Fill(pristine []byte, mapping workbook.Mapping, set values.Set) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(pristine))
	if err != nil {
		return nil, fmt.Errorf("open template workbook: %w", err)
	}
	defer f.Close()

	res := &Result{Skipped: []app.SkippedEntry{}}
	for _, key := range mapping.Keys() {
		v, ok := set[key]
		if !ok || v.IsNull() {
			continue
		}

		raw := mapping[key]
		ref, err := workbook.ParseCellRef(raw)
		if err != nil {
			res.Skipped = append(res.Skipped, app.SkippedEntry{Key: key, Cell: raw, Reason: ReasonInvalidRef})
			continue
		}
		if idx, err := f.GetSheetIndex(ref.Sheet); err != nil || idx == -1 {
			res.Skipped = append(res.Skipped, app.SkippedEntry{Key: key, Cell: raw, Reason: ReasonSheetMissing})
			continue
		}

		if err := f.SetCellValue(ref.Sheet, ref.Cell, v.CellValue()); err != nil {
			res.Skipped = append(res.Skipped, app.SkippedEntry{Key: key, Cell: raw, Reason: err.Error()})
			continue
		}
		res.Written++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	res.Content = buf.Bytes()
	return res, nil
}

// FileName is the download name for a template.
func FileName(templateName string) string {
	return templateName + ".xlsx"
}
