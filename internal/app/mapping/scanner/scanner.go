// Package scanner proposes label -> cell candidates from grid adjacency and
// renders the transcript sent to inference.
package scanner

import (
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

// DefaultTranscriptRows caps the rows per sheet sent to inference.
const DefaultTranscriptRows = 200

type KeyNormalizer interface {
	Normalize(text string) string
}

type Scanner struct {
	normalizer     KeyNormalizer
	transcriptRows int
}

func New(normalizer KeyNormalizer) *Scanner {
	return &Scanner{normalizer: normalizer, transcriptRows: DefaultTranscriptRows}
}

func (this *Scanner) WithTranscriptRows(n int) *Scanner {
	if n > 0 {
		this.transcriptRows = n
	}
	return this
}

// Candidates walks sheets in workbook order and cells row-major. A text
// label claims the first empty neighbour to its right, else below it. The
// first claim of a key wins.
func (this *Scanner) Candidates(wb *workbook.Workbook) workbook.Mapping {
	out := workbook.Mapping{}
	for _, sheet := range wb.Sheets {
		for _, pos := range sortedPositions(sheet) {
			cell := sheet.Cells[pos]
			if cell.Kind != workbook.KindText {
				continue
			}
			key := this.normalizer.Normalize(cell.Text)
			if key == "" {
				continue
			}
			if _, claimed := out[key]; claimed {
				continue
			}
			target, ok := emptyNeighbour(sheet, pos)
			if !ok {
				continue
			}
			ref, err := workbook.RefAt(sheet.Name, target)
			if err != nil {
				continue
			}
			out[key] = ref.String()
		}
	}
	return out
}

// Transcript renders each sheet as a "Sheet: name" line followed by its first
// rows, cells joined with " | ". It also returns the number of row lines.
func (this *Scanner) Transcript(wb *workbook.Workbook) (string, int) {
	var lines []string
	rowCount := 0
	for _, sheet := range wb.Sheets {
		lines = append(lines, "Sheet: "+sheet.Name)
		last := min(sheet.MaxRow, this.transcriptRows)
		for r := 1; r <= last; r++ {
			lines = append(lines, rowText(sheet, r))
			rowCount++
		}
	}
	return strings.Join(lines, "\n"), rowCount
}

func emptyNeighbour(sheet *workbook.Sheet, pos workbook.Position) (workbook.Position, bool) {
	last := pos
	if span, ok := sheet.SpanOf(pos); ok {
		last = span.To
	}

	right := workbook.Position{Row: pos.Row, Col: last.Col + 1}
	if right.Col <= excelize.MaxColumns && sheet.At(right).IsEmpty() {
		return anchor(sheet, right), true
	}

	below := workbook.Position{Row: last.Row + 1, Col: pos.Col}
	if below.Row <= excelize.TotalRows && sheet.At(below).IsEmpty() {
		return anchor(sheet, below), true
	}

	return workbook.Position{}, false
}

// anchor moves a position inside a merged region to its top-left cell, the
// only one Excel shows.
func anchor(sheet *workbook.Sheet, pos workbook.Position) workbook.Position {
	if span, ok := sheet.SpanOf(pos); ok {
		return span.From
	}
	return pos
}

func rowText(sheet *workbook.Sheet, row int) string {
	lastCol := 0
	for pos := range sheet.Cells {
		if pos.Row == row && pos.Col > lastCol {
			lastCol = pos.Col
		}
	}
	if lastCol == 0 {
		return ""
	}

	cells := make([]string, lastCol)
	for c := 1; c <= lastCol; c++ {
		cells[c-1] = sheet.Cells[workbook.Position{Row: row, Col: c}].Text
	}
	return strings.Join(cells, " | ")
}

func sortedPositions(sheet *workbook.Sheet) []workbook.Position {
	out := make([]workbook.Position, 0, len(sheet.Cells))
	for pos := range sheet.Cells {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
