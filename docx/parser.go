package docx

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/omertekin2002/word-to-udf/model"
)

// Formatting defaults applied when a run carries no explicit value.
const (
	defaultFontFamily = "Times New Roman"
	defaultFontSize   = 12.0
	defaultImageSide  = 100.0 // points, used when a drawing has no extent
)

// Parse reads a DOCX package from raw bytes and returns the normalized
// document model.
//
// It fails with ErrMalformedPackage when the container or the body XML is
// unreadable, and with ErrUnsupportedDocument (wrapping the cause) for any
// other parse-time failure.
func Parse(data []byte) (*model.Document, error) {
	return parse(data, false)
}

// ParseWithoutMedia parses like Parse but skips media extraction. Every
// image run is left unresolved and will be dropped by the serializer.
func ParseWithoutMedia(data []byte) (*model.Document, error) {
	return parse(data, true)
}

// ParseFile reads and parses a DOCX file from disk.
func ParseFile(filename string) (*model.Document, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func parse(data []byte, skipMedia bool) (*model.Document, error) {
	r, err := newReader(data, skipMedia)
	if err != nil {
		return nil, err
	}

	p := &parser{reader: r}
	doc := model.NewDocument()
	if r.document.Body == nil {
		return doc, nil
	}
	for _, block := range r.document.Body.Blocks {
		switch {
		case block.Paragraph != nil:
			doc.AddBlock(p.paragraph(block.Paragraph))
		case block.Table != nil:
			doc.AddBlock(p.table(block.Table))
		}
	}
	return doc, nil
}

// parser walks the unmarshalled body and builds model blocks. It carries the
// footnote sequence counter so display labels come out 1, 2, 3, ... in
// reference order.
type parser struct {
	reader      *Reader
	footnoteSeq int
}

// paragraph converts one paragraph element, dropping runs that resolve to
// nothing.
func (p *parser) paragraph(px *paragraphXML) *model.Paragraph {
	para := &model.Paragraph{
		Alignment: mapAlignment(px.Properties.Justification.Val),
	}

	ind := px.Properties.Indent
	para.LeftIndent = twipsToPoints(ind.Left)
	para.RightIndent = twipsToPoints(ind.Right)
	para.FirstLineIndent = twipsToPoints(ind.FirstLine)

	// Numbering counts only when both the level and the list id are explicit.
	num := px.Properties.NumPr
	if num.ILvl.Val != "" && num.NumID.Val != "" {
		if lvl, err := strconv.ParseUint(num.ILvl.Val, 10, 32); err == nil {
			para.Numbering = &model.Numbering{Level: uint(lvl), ListID: num.NumID.Val}
		}
	}

	for i := range px.Runs {
		if run := p.run(&px.Runs[i]); run != nil {
			para.AddRun(run)
		}
	}
	return para
}

// run classifies one run element. Classification is first-match: drawing,
// tab, break, footnote reference, then plain text. A run with empty text and
// no special marker yields nil.
func (p *parser) run(rx *runXML) model.Run {
	if len(rx.Drawings) > 0 {
		return p.imageRun(&rx.Drawings[0])
	}
	if len(rx.Tabs) > 0 {
		return &model.TabRun{}
	}
	if len(rx.Breaks) > 0 {
		if rx.Breaks[0].Type == "page" {
			return &model.PageBreakRun{}
		}
		return &model.LineBreakRun{}
	}
	if len(rx.FootnoteRefs) > 0 {
		p.footnoteSeq++
		return &model.FootnoteRefRun{
			Label: strconv.Itoa(p.footnoteSeq),
			Body:  p.reader.footnotes[rx.FootnoteRefs[0].ID],
		}
	}
	return textRun(rx)
}

// imageRun resolves a drawing to an image run. Unresolved relationships
// leave Data nil; the serializer decides what to do with dangling images.
func (p *parser) imageRun(d *drawingXML) model.Run {
	inline := d.Inline
	if inline == nil {
		inline = d.Anchor
	}

	run := &model.ImageRun{WidthPt: defaultImageSide, HeightPt: defaultImageSide}
	if inline == nil {
		return run
	}

	if w := emuToPoints(inline.Extent.CX); w != nil {
		run.WidthPt = *w
	}
	if h := emuToPoints(inline.Extent.CY); h != nil {
		run.HeightPt = *h
	}
	if inline.Blip != nil {
		run.Data = p.reader.resolveImage(inline.Blip.Embed)
		run.Format = sniffImageFormat(run.Data)
	}
	return run
}

// textRun builds a text run from the run's concatenated text content and
// character formatting. Returns nil when the text is empty.
func textRun(rx *runXML) model.Run {
	var sb strings.Builder
	for _, t := range rx.Text {
		sb.WriteString(t.Value)
	}
	text := norm.NFC.String(sb.String())
	if text == "" {
		return nil
	}

	rp := rx.Properties
	run := &model.TextRun{
		Text:       text,
		Bold:       toggleOn(rp.Bold),
		Italic:     toggleOn(rp.Italic),
		Underline:  rp.Underline.Val != "" && rp.Underline.Val != "none",
		Strike:     rp.Strike.present() && rp.Strike.Val != "false",
		FontFamily: defaultFontFamily,
		FontSize:   defaultFontSize,
	}
	if rp.Font.ASCII != "" {
		run.FontFamily = rp.Font.ASCII
	}
	if rp.FontSize.Val != "" {
		if half, err := strconv.ParseFloat(rp.FontSize.Val, 64); err == nil {
			run.FontSize = half / 2
		}
	}
	if rp.Color.Val != "" && rp.Color.Val != "auto" {
		hex := strings.TrimPrefix(rp.Color.Val, "#")
		run.Color = &hex
	}
	return run
}

// toggleOn resolves a toggle property: present means true unless explicitly
// negated with "false" or "0".
func toggleOn(b boolXML) bool {
	return b.present() && b.Val != "false" && b.Val != "0"
}

// table converts one table element.
func (p *parser) table(tx *tableXML) *model.Table {
	tbl := &model.Table{Borders: borderMode(tx.Properties.Borders)}

	for _, col := range tx.Grid.Cols {
		if w := twipsToPoints(col.W); w != nil {
			tbl.ColumnWidthsPt = append(tbl.ColumnWidthsPt, *w)
		} else {
			tbl.ColumnWidthsPt = append(tbl.ColumnWidthsPt, 0)
		}
	}

	for i := range tx.Rows {
		tbl.AddRow(p.row(&tx.Rows[i]))
	}
	return tbl
}

// borderMode classifies the table's border properties. A table is borderless
// only when a tblBorders element is present and every position in it is
// absent or explicitly "none"/"nil"; everything else keeps cell borders.
func borderMode(b tableBordersXML) model.BorderMode {
	if b.XMLName.Local == "" {
		return model.BorderCell
	}
	positions := []borderXML{b.Top, b.Bottom, b.Left, b.Right, b.InsideH, b.InsideV}
	for _, pos := range positions {
		if pos.Val != "" && pos.Val != "none" && pos.Val != "nil" {
			return model.BorderCell
		}
	}
	return model.Borderless
}

func (p *parser) row(rx *tableRowXML) model.Row {
	row := model.Row{}
	for i := range rx.Cells {
		row.Cells = append(row.Cells, p.cell(&rx.Cells[i]))
	}
	return row
}

func (p *parser) cell(cx *tableCellXML) model.Cell {
	props := cx.Properties
	cell := model.Cell{ColSpan: 1, VAlign: model.VAlignTop}

	if props.GridSpan.Val != "" {
		if span, err := strconv.Atoi(props.GridSpan.Val); err == nil && span > 0 {
			cell.ColSpan = span
		}
	}

	// A vMerge with no val (or "continue") continues a merge started above;
	// "restart" begins one and renders normally.
	if props.VMerge.present() && props.VMerge.Val != "restart" {
		cell.Continuation = true
	}

	switch props.VAlign.Val {
	case "center":
		cell.VAlign = model.VAlignCenter
	case "bottom":
		cell.VAlign = model.VAlignBottom
	}

	if props.Shading.Fill != "" && props.Shading.Fill != "auto" {
		fill := strings.TrimPrefix(props.Shading.Fill, "#")
		cell.Background = &fill
	}

	for i := range cx.Paragraphs {
		cell.Paragraphs = append(cell.Paragraphs, *p.paragraph(&cx.Paragraphs[i]))
	}
	return cell
}

// mapAlignment maps OOXML justification values onto the model's alignment
// enum. Unknown values fall back to left.
func mapAlignment(val string) model.Alignment {
	switch val {
	case "center":
		return model.AlignCenter
	case "end", "right":
		return model.AlignRight
	case "both", "distribute":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}

// twipsToPoints converts a twip value (1/20 point) to rounded points.
// Returns nil when the attribute is absent or unparseable.
func twipsToPoints(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	pt := math.Round(v / 20)
	return &pt
}

// emuToPoints converts an EMU value (914400 per inch) to rounded points.
func emuToPoints(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	pt := math.Round(v / 914400 * 72)
	return &pt
}
