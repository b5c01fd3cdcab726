package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML holds the document body with paragraphs and tables interleaved in
// document order. Struct-tag unmarshalling would collect them into separate
// slices, so the order-preserving walk is done by UnmarshalXML below.
type bodyXML struct {
	Blocks []blockXML
}

// blockXML is one ordered body element. Exactly one field is set.
type blockXML struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes the body, keeping paragraph/table order.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Blocks = append(b.Blocks, blockXML{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Blocks = append(b.Blocks, blockXML{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>). Runs are kept in
// document order; hyperlink wrappers are transparent, their inner runs are
// appended in place.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML decodes a paragraph, flattening hyperlink wrappers so run
// order survives.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, h.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	NumPr         numberingPropsXML `xml:"numPr"`
	Justification justificationXML  `xml:"jc"`
	Indent        indentXML         `xml:"ind"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

// valXML represents an element whose payload is a single val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // start, end, left, right, center, both, distribute
}

// indentXML represents paragraph indentation, in twips.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties   runPropsXML  `xml:"rPr"`
	Text         []textXML    `xml:"t"`
	Tabs         []tabXML     `xml:"tab"`
	Breaks       []breakXML   `xml:"br"`
	Drawings     []drawingXML `xml:"drawing"`
	FootnoteRefs []noteRefXML `xml:"footnoteReference"`
}

// noteRefXML represents a footnote reference (<w:footnoteReference>).
type noteRefXML struct {
	ID string `xml:"id,attr"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML `xml:"b"`
	Italic    boolXML `xml:"i"`
	Underline valXML  `xml:"u"`
	Strike    boolXML `xml:"strike"`
	FontSize  valXML  `xml:"sz"`
	Font      fontXML `xml:"rFonts"`
	Color     valXML  `xml:"color"`
}

// boolXML represents a toggle property. Presence of the element means true
// unless the val attribute explicitly negates it.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// present reports whether the element appeared in the source.
func (b boolXML) present() bool {
	return b.XMLName.Local != ""
}

// fontXML represents font settings.
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct{}

// breakXML represents a break (line or page).
type breakXML struct {
	Type string `xml:"type,attr"` // page, column, textWrapping
}

// drawingXML represents an embedded drawing/image.
type drawingXML struct {
	Inline *inlineXML `xml:"inline"`
	Anchor *inlineXML `xml:"anchor"`
}

// inlineXML represents an inline or anchored image.
type inlineXML struct {
	Extent extentXML `xml:"extent"`
	Blip   *blipXML  `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// extentXML represents image dimensions in EMUs.
type extentXML struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

// blipXML represents an image reference.
type blipXML struct {
	Embed string `xml:"embed,attr"` // relationship ID
}

// hyperlinkXML represents a hyperlink wrapper around runs.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Borders tableBordersXML `xml:"tblBorders"`
}

// tableBordersXML represents table borders.
type tableBordersXML struct {
	XMLName xml.Name
	Top     borderXML `xml:"top"`
	Bottom  borderXML `xml:"bottom"`
	Left    borderXML `xml:"left"`
	Right   borderXML `xml:"right"`
	InsideH borderXML `xml:"insideH"`
	InsideV borderXML `xml:"insideV"`
}

// borderXML represents a single border position.
type borderXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"` // single, none, nil, ...
}

// tableGridXML represents the table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column, width in twips.
type gridColXML struct {
	W string `xml:"w,attr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	GridSpan valXML     `xml:"gridSpan"`
	VMerge   vMergeXML  `xml:"vMerge"`
	Shading  shadingXML `xml:"shd"`
	VAlign   valXML     `xml:"vAlign"`
}

// vMergeXML represents vertical merge state. An element present with no val
// (or val "continue") continues a merge; "restart" starts one.
type vMergeXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

func (v vMergeXML) present() bool {
	return v.XMLName.Local != ""
}

// shadingXML represents cell shading.
type shadingXML struct {
	Fill string `xml:"fill,attr"` // background color hex or "auto"
}

// relationshipsXML represents word/_rels/document.xml.rels.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML maps a relationship id to its target part.
type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// footnotesXML represents word/footnotes.xml.
type footnotesXML struct {
	XMLName   xml.Name      `xml:"footnotes"`
	Footnotes []footnoteXML `xml:"footnote"`
}

// footnoteXML represents one footnote body. Word emits separator and
// continuation stubs with a type attribute; real footnotes have none.
type footnoteXML struct {
	ID         string         `xml:"id,attr"`
	Type       string         `xml:"type,attr"`
	Paragraphs []paragraphXML `xml:"p"`
}
