package model

// BorderMode describes how a table is bordered.
type BorderMode int

const (
	// BorderCell draws borders around every cell. This is the default.
	BorderCell BorderMode = iota
	// Borderless draws no borders at all.
	Borderless
)

// VerticalAlign is the vertical alignment of cell content.
type VerticalAlign int

const (
	VAlignTop VerticalAlign = iota
	VAlignCenter
	VAlignBottom
)

// Table is a block element holding rows of cells.
type Table struct {
	Rows           []Row
	ColumnWidthsPt []float64 // grid column widths in points, may be empty
	Borders        BorderMode
}

func (*Table) isBlock() {}

// AddRow appends a row to the table.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// ColumnCount returns the number of grid columns: the explicit column-width
// count when the grid is known, otherwise the first row's cell count,
// otherwise 1.
func (t *Table) ColumnCount() int {
	if n := len(t.ColumnWidthsPt); n > 0 {
		return n
	}
	if len(t.Rows) > 0 && len(t.Rows[0].Cells) > 0 {
		return len(t.Rows[0].Cells)
	}
	return 1
}

// Row is a single table row.
type Row struct {
	Cells []Cell
}

// Cell is a single table cell.
//
// A Continuation cell is part of a vertical merge but not its origin: it
// carries no renderable content and must be skipped entirely by consumers.
type Cell struct {
	Paragraphs   []Paragraph
	ColSpan      int // >= 1
	Continuation bool
	VAlign       VerticalAlign
	Background   *string // hex RGB fill, nil when unset or "auto"
}
