package udf

import (
	"strconv"
	"strings"
)

// Element kinds emitted by the serializer.
const (
	KindParagraph = "paragraph"
	KindTable     = "table"
	KindRow       = "row"
	KindCell      = "cell"
	KindPageBreak = "page-break"
	KindContent   = "content"
	KindTab       = "tab"
	KindImage     = "image"
)

// Element is one structural or formatting annotation over the content
// buffer. Start and Length address the buffer in characters. Top-level
// elements (paragraphs, tables, page breaks) partition the buffer in
// emission order; content, tab, and image elements nest inside paragraphs.
type Element struct {
	Kind     string
	Start    int
	Length   int
	Attrs    []Attr
	Children []Element
}

// Attr is a single element attribute. Attributes are kept as an ordered
// slice so the emitted XML is byte-stable.
type Attr struct {
	Name  string
	Value string
}

// Attr returns the value of a named attribute, or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Document is the serialized form of a conversion: the flat content buffer
// and the element tree addressing it.
type Document struct {
	Content  string
	Elements []Element
}

// Default formatting constants for placeholder and footnote content.
const (
	defaultFamily     = "Times New Roman"
	defaultSize       = 12.0
	defaultForeground = -16777216 // opaque black
)

// formatPt renders a point value the way the consuming editor expects,
// always with one decimal ("0.0", "36.0").
func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatSize renders a font size without a forced decimal ("12", "11.5").
func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// foreground converts an optional hex RGB color to the signed 32-bit ARGB
// integer the target format uses, alpha fixed at 0xFF. A nil or unparseable
// color maps to opaque black (-16777216); "#FF0000" maps to -65536.
func foreground(hex *string) int32 {
	if hex == nil {
		return defaultForeground
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(*hex, "#"), 16, 64)
	if err != nil {
		return defaultForeground
	}
	return int32(0xFF000000 | uint32(v&0xFFFFFF))
}
