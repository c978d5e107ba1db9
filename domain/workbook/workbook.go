// Package workbook holds the parsed, library independent view of a
// spreadsheet that the mapping engine works on.
package workbook

type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindError
)

type Cell struct {
	Kind CellKind
	// Text is the display text of the cell, trimmed.
	Text string
}

func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || c.Text == ""
}

// Position is 1-based, matching spreadsheet coordinates.
type Position struct {
	Row int
	Col int
}

// Span is a merged region. Top-left holds the value.
type Span struct {
	From Position
	To   Position
}

type Sheet struct {
	Name  string
	Cells map[Position]Cell
	Spans []Span
	// MaxRow and MaxCol bound the populated area.
	MaxRow int
	MaxCol int
}

func NewSheet(name string) *Sheet {
	return &Sheet{Name: name, Cells: make(map[Position]Cell)}
}

func (s *Sheet) Set(pos Position, cell Cell) {
	if cell.IsEmpty() {
		return
	}
	s.Cells[pos] = cell
	if pos.Row > s.MaxRow {
		s.MaxRow = pos.Row
	}
	if pos.Col > s.MaxCol {
		s.MaxCol = pos.Col
	}
}

// At returns the cell at pos. Cells covered by a merge but not its top-left
// read as the merged value.
func (s *Sheet) At(pos Position) Cell {
	if c, ok := s.Cells[pos]; ok {
		return c
	}
	if span, ok := s.SpanOf(pos); ok && span.From != pos {
		return s.Cells[span.From]
	}
	return Cell{}
}

func (s *Sheet) SpanOf(pos Position) (Span, bool) {
	for _, span := range s.Spans {
		if pos.Row >= span.From.Row && pos.Row <= span.To.Row &&
			pos.Col >= span.From.Col && pos.Col <= span.To.Col {
			return span, true
		}
	}
	return Span{}, false
}

type Workbook struct {
	Sheets []*Sheet
}

func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
