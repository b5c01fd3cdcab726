package model

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Document represents a parsed word-processing document. It owns all of its
// blocks; there are no back-references.
type Document struct {
	Blocks []Block
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{Blocks: make([]Block, 0)}
}

// AddBlock appends a block element to the document.
func (d *Document) AddBlock(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Block is a top-level document element: a *Paragraph or a *Table.
type Block interface {
	isBlock()
}

// Numbering describes list membership of a paragraph. Both fields are always
// set; partial numbering information in the source is treated as absent.
type Numbering struct {
	Level  uint   // 0-based indentation level
	ListID string // numbering definition identifier
}

// Paragraph is a block of formatted runs.
//
// The indent fields are in points and nil when the source carries no explicit
// value; the serializer substitutes 0.0 for missing left/right indents and
// omits a missing first-line indent entirely.
type Paragraph struct {
	Alignment       Alignment
	LeftIndent      *float64
	RightIndent     *float64
	FirstLineIndent *float64
	Numbering       *Numbering
	Runs            []Run
}

func (*Paragraph) isBlock() {}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r Run) {
	p.Runs = append(p.Runs, r)
}
