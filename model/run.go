package model

// Run is an inline paragraph element. The concrete types below form a closed
// union; the serializer dispatches on them with an exhaustive type switch.
type Run interface {
	isRun()
}

// TextRun is a span of text with uniform character formatting.
// Text is non-empty by construction: the parser drops runs that resolve to
// empty text and match no special case.
type TextRun struct {
	Text       string
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool
	FontFamily string  // default "Times New Roman"
	FontSize   float64 // points, default 12
	Color      *string // hex RGB like "FF0000", nil when unset or "auto"
}

func (*TextRun) isRun() {}

// TabRun is a horizontal tab.
type TabRun struct{}

func (*TabRun) isRun() {}

// LineBreakRun is an explicit line break within a paragraph.
type LineBreakRun struct{}

func (*LineBreakRun) isRun() {}

// PageBreakRun is an explicit page break. The serializer stops processing
// the remainder of the paragraph when it reaches one.
type PageBreakRun struct{}

func (*PageBreakRun) isRun() {}

// ImageRun is an embedded picture. Data is nil when the drawing's
// relationship could not be resolved to media bytes; such runs survive
// parsing and are dropped during serialization.
type ImageRun struct {
	Data     []byte
	Format   string // sniffed format name ("png", "jpeg", ...), "" if unknown
	WidthPt  float64
	HeightPt float64
}

func (*ImageRun) isRun() {}

// Resolved reports whether the image bytes were found in the package media.
func (r *ImageRun) Resolved() bool {
	return len(r.Data) > 0
}

// FootnoteRefRun marks a footnote reference. Label is the display label
// rendered at the reference point (for example "1"); Body is the footnote
// text, which the serializer relocates to the end of the page or document.
type FootnoteRefRun struct {
	Label string
	Body  string
}

func (*FootnoteRefRun) isRun() {}
