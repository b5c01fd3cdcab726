package udf

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/omertekin2002/word-to-udf/model"
)

// Placeholder characters appended where the target format requires content
// but the source has none.
const (
	zeroWidthSpace    = "\u200b" // empty paragraph / empty document
	objectReplacement = "\ufffc" // image glyph
	emptyCellSpace    = " "
)

// footnoteRule is the separator line emitted above relocated footnotes.
const footnoteRule = "____________________"

// tableSpanBudget is the total proportional width distributed across table
// columns. Per-column shares are rounded individually and need not sum back
// to the budget.
const tableSpanBudget = 300

// Serialize walks the document model and produces the flat content buffer
// with its element tree. It never fails; all error modes live upstream in
// the parser.
func Serialize(doc *model.Document) *Document {
	s := &serializer{}

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *model.Paragraph:
			el, pageBreak := s.paragraph(b, false)
			s.elements = append(s.elements, el)
			if pageBreak {
				// Pending footnotes land immediately before the break marker.
				s.flushFootnotes()
				s.elements = append(s.elements, s.pageBreak())
			}
		case *model.Table:
			s.elements = append(s.elements, s.table(b))
		}
	}

	s.flushFootnotes()

	// The target format rejects empty content, so an empty model still
	// yields one placeholder paragraph.
	if s.cursor == 0 {
		s.elements = append(s.elements, s.placeholderParagraph())
	}

	return &Document{Content: s.buf.String(), Elements: s.elements}
}

// pendingFootnote is a footnote collected at its reference point, waiting
// for the next flush point.
type pendingFootnote struct {
	label string
	body  string
}

// serializer is the working state of one conversion. It is not reentrant; a
// concurrent conversion must use a fresh instance.
type serializer struct {
	buf      strings.Builder
	cursor   int // character length of buf, source of truth for offsets
	elements []Element
	pending  []pendingFootnote
}

// append writes text to the buffer and returns the offset range it now
// occupies.
func (s *serializer) append(text string) (start, length int) {
	start = s.cursor
	s.buf.WriteString(text)
	length = utf8.RuneCountInString(text)
	s.cursor += length
	return start, length
}

// paragraph serializes one paragraph. The second return value reports that a
// page-break run terminated the paragraph early; the caller owes a footnote
// flush and a break marker. Inside table cells page breaks degrade to line
// breaks and never terminate.
func (s *serializer) paragraph(p *model.Paragraph, inCell bool) (Element, bool) {
	start := s.cursor
	children, pageBreak := s.runs(p.Runs, inCell)

	if s.cursor == start {
		// Every paragraph must contribute non-zero length.
		ps, n := s.append(zeroWidthSpace)
		children = append(children, defaultContent(ps, n))
	}

	el := Element{
		Kind:     KindParagraph,
		Start:    start,
		Length:   s.cursor - start,
		Attrs:    paragraphAttrs(p),
		Children: children,
	}
	return el, pageBreak
}

// runs serializes paragraph runs in order, appending buffer text and
// collecting leaf elements.
func (s *serializer) runs(runs []model.Run, inCell bool) ([]Element, bool) {
	var children []Element

	for _, run := range runs {
		switch r := run.(type) {
		case *model.TextRun:
			start, n := s.append(r.Text)
			children = append(children, textContent(start, n, r))

		case *model.TabRun:
			start, n := s.append("\t")
			children = append(children, Element{Kind: KindTab, Start: start, Length: n})

		case *model.LineBreakRun:
			// The newline is covered by the paragraph element; no leaf.
			s.append("\n")

		case *model.PageBreakRun:
			if inCell {
				s.append("\n")
				continue
			}
			return children, true

		case *model.ImageRun:
			if !r.Resolved() {
				continue // dangling reference, dropped here not in the parser
			}
			start, n := s.append(objectReplacement)
			children = append(children, Element{
				Kind:   KindImage,
				Start:  start,
				Length: n,
				Attrs: []Attr{
					{"imageData", base64.StdEncoding.EncodeToString(r.Data)},
					{"width", formatPt(r.WidthPt)},
					{"height", formatPt(r.HeightPt)},
				},
			})

		case *model.FootnoteRefRun:
			start, n := s.append(r.Label)
			children = append(children, superscriptContent(start, n))
			s.pending = append(s.pending, pendingFootnote{label: r.Label, body: r.Body})
		}
	}

	return children, false
}

// pageBreak appends the break marker character and returns its element.
func (s *serializer) pageBreak() Element {
	start, n := s.append("\n")
	return Element{Kind: KindPageBreak, Start: start, Length: n}
}

// flushFootnotes drains the pending footnote queue: a blank spacer
// paragraph, a separator rule, then one paragraph per footnote with a
// superscripted label prefix and the body in regular weight. No-op when
// nothing is pending.
func (s *serializer) flushFootnotes() {
	if len(s.pending) == 0 {
		return
	}

	s.elements = append(s.elements, s.placeholderParagraph())

	ruleStart, ruleLen := s.append(footnoteRule)
	s.elements = append(s.elements, Element{
		Kind:     KindParagraph,
		Start:    ruleStart,
		Length:   ruleLen,
		Attrs:    defaultParagraphAttrs(),
		Children: []Element{defaultContent(ruleStart, ruleLen)},
	})

	for _, fn := range s.pending {
		start := s.cursor
		ls, ln := s.append(fn.label + ". ")
		children := []Element{superscriptContent(ls, ln)}
		if fn.body != "" {
			bs, bn := s.append(fn.body)
			children = append(children, defaultContent(bs, bn))
		}
		s.elements = append(s.elements, Element{
			Kind:     KindParagraph,
			Start:    start,
			Length:   s.cursor - start,
			Attrs:    defaultParagraphAttrs(),
			Children: children,
		})
	}

	s.pending = s.pending[:0]
}

// placeholderParagraph emits a zero-width character with a minimal
// default-formatted content element.
func (s *serializer) placeholderParagraph() Element {
	start, n := s.append(zeroWidthSpace)
	return Element{
		Kind:     KindParagraph,
		Start:    start,
		Length:   n,
		Attrs:    defaultParagraphAttrs(),
		Children: []Element{defaultContent(start, n)},
	}
}

// table serializes one table. Continuation cells of vertical merges are
// skipped entirely: they emit no element and consume no buffer.
func (s *serializer) table(t *model.Table) Element {
	start := s.cursor
	cols := t.ColumnCount()

	attrs := []Attr{
		{"columnCount", strconv.Itoa(cols)},
		{"columnSpans", columnSpans(t.ColumnWidthsPt, cols)},
		{"border", borderAttr(t.Borders)},
	}

	var rows []Element
	for i := range t.Rows {
		rows = append(rows, s.row(&t.Rows[i]))
	}

	return Element{Kind: KindTable, Start: start, Length: s.cursor - start, Attrs: attrs, Children: rows}
}

func (s *serializer) row(r *model.Row) Element {
	start := s.cursor
	var cells []Element
	for i := range r.Cells {
		if r.Cells[i].Continuation {
			continue
		}
		cells = append(cells, s.cell(&r.Cells[i]))
	}
	return Element{Kind: KindRow, Start: start, Length: s.cursor - start, Children: cells}
}

func (s *serializer) cell(c *model.Cell) Element {
	start := s.cursor

	attrs := []Attr{{"vAlign", strconv.Itoa(int(c.VAlign))}}
	if c.Background != nil {
		attrs = append(attrs, Attr{"bgColor", strconv.Itoa(int(foreground(c.Background)))})
	}
	if c.ColSpan > 1 {
		attrs = append(attrs, Attr{"colSpan", strconv.Itoa(c.ColSpan)})
	}

	var children []Element
	if len(c.Paragraphs) == 0 {
		ps, n := s.append(emptyCellSpace)
		children = append(children, Element{
			Kind:     KindParagraph,
			Start:    ps,
			Length:   n,
			Attrs:    defaultParagraphAttrs(),
			Children: []Element{defaultContent(ps, n)},
		})
	} else {
		for i := range c.Paragraphs {
			if i > 0 {
				s.append("\n")
			}
			el, _ := s.paragraph(&c.Paragraphs[i], true)
			children = append(children, el)
		}
	}

	return Element{Kind: KindCell, Start: start, Length: s.cursor - start, Attrs: attrs, Children: children}
}

// columnSpans distributes the span budget across columns. Known widths get
// individually rounded proportional shares (no renormalization); unknown
// widths split the budget evenly.
func columnSpans(widths []float64, cols int) string {
	parts := make([]string, 0, cols)
	if len(widths) > 0 {
		var total float64
		for _, w := range widths {
			total += w
		}
		for _, w := range widths {
			span := 0
			if total > 0 {
				span = int(math.Round(w / total * tableSpanBudget))
			}
			parts = append(parts, strconv.Itoa(span))
		}
	} else {
		each := tableSpanBudget / cols
		for i := 0; i < cols; i++ {
			parts = append(parts, strconv.Itoa(each))
		}
	}
	return strings.Join(parts, ",")
}

func borderAttr(m model.BorderMode) string {
	if m == model.Borderless {
		return "borderNone"
	}
	return "borderCell"
}

// alignmentCode maps the model alignment onto the target's numeric codes.
func alignmentCode(a model.Alignment) int {
	switch a {
	case model.AlignCenter:
		return 1
	case model.AlignRight:
		return 2
	case model.AlignJustify:
		return 3
	default:
		return 0
	}
}

// paragraphAttrs renders paragraph attributes. Left and right indents are
// always present with a 0.0 default; the first-line indent only when the
// source carried one. List rendering follows the parity of the list id:
// even ids come out bulleted, odd ids numbered.
func paragraphAttrs(p *model.Paragraph) []Attr {
	attrs := []Attr{
		{"Alignment", strconv.Itoa(alignmentCode(p.Alignment))},
		{"LeftIndent", formatPt(indentOrZero(p.LeftIndent))},
		{"RightIndent", formatPt(indentOrZero(p.RightIndent))},
	}
	if p.FirstLineIndent != nil {
		attrs = append(attrs, Attr{"FirstLineIndent", formatPt(*p.FirstLineIndent)})
	}
	if p.Numbering != nil {
		attrs = append(attrs,
			Attr{"listLevel", strconv.FormatUint(uint64(p.Numbering.Level), 10)},
			Attr{"listId", p.Numbering.ListID},
		)
		if listIDValue(p.Numbering.ListID)%2 == 0 {
			attrs = append(attrs,
				Attr{"bulleted", "true"},
				Attr{"bulletType", "BULLET_TYPE_ELLIPSE"},
			)
		} else {
			attrs = append(attrs,
				Attr{"numbered", "true"},
				Attr{"numberType", "NUMBER_TYPE_NUMBER_DOT"},
			)
		}
	}
	return attrs
}

func defaultParagraphAttrs() []Attr {
	return []Attr{
		{"Alignment", "0"},
		{"LeftIndent", "0.0"},
		{"RightIndent", "0.0"},
	}
}

// listIDValue reads the list id as a number for the parity heuristic.
// Non-numeric ids fall back to their byte sum.
func listIDValue(id string) int {
	if v, err := strconv.Atoi(id); err == nil {
		if v < 0 {
			v = -v
		}
		return v
	}
	sum := 0
	for i := 0; i < len(id); i++ {
		sum += int(id[i])
	}
	return sum
}

func indentOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// textContent builds the content element for a text run.
func textContent(start, length int, r *model.TextRun) Element {
	attrs := []Attr{
		{"family", r.FontFamily},
		{"size", formatSize(r.FontSize)},
	}
	if r.Bold {
		attrs = append(attrs, Attr{"bold", "true"})
	}
	if r.Italic {
		attrs = append(attrs, Attr{"italic", "true"})
	}
	if r.Underline {
		attrs = append(attrs, Attr{"underline", "true"})
	}
	if r.Strike {
		attrs = append(attrs, Attr{"strikethrough", "true"})
	}
	attrs = append(attrs, Attr{"foreground", strconv.Itoa(int(foreground(r.Color)))})
	return Element{Kind: KindContent, Start: start, Length: length, Attrs: attrs}
}

// defaultContent builds a minimally formatted content element.
func defaultContent(start, length int) Element {
	return Element{Kind: KindContent, Start: start, Length: length, Attrs: []Attr{
		{"family", defaultFamily},
		{"size", formatSize(defaultSize)},
		{"foreground", strconv.Itoa(defaultForeground)},
	}}
}

// superscriptContent builds the content element used for footnote labels.
func superscriptContent(start, length int) Element {
	return Element{Kind: KindContent, Start: start, Length: length, Attrs: []Attr{
		{"family", defaultFamily},
		{"size", formatSize(defaultSize)},
		{"superscript", "true"},
		{"foreground", strconv.Itoa(defaultForeground)},
	}}
}
