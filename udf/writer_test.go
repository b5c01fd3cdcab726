package udf

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/omertekin2002/word-to-udf/model"
)

func TestXMLBoilerplate(t *testing.T) {
	d := Serialize(model.NewDocument())
	xml := d.XML()

	for _, want := range []string{
		xmlDeclaration,
		templateOpen,
		propertiesBlock,
		stylesBlock,
		`<elements resolver="hvl-default">`,
		"<content><![CDATA[",
		"]]></content>",
		templateClose,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.HasPrefix(xml, xmlDeclaration) {
		t.Error("output must start with the XML declaration")
	}
}

func TestXMLElementRendering(t *testing.T) {
	d := &Document{
		Content: "ab",
		Elements: []Element{
			{
				Kind:   KindParagraph,
				Start:  0,
				Length: 2,
				Attrs:  []Attr{{"Alignment", "0"}},
				Children: []Element{
					{Kind: KindContent, Start: 0, Length: 2, Attrs: []Attr{{"family", "Arial"}}},
				},
			},
			{Kind: KindPageBreak, Start: 2, Length: 0},
		},
	}
	xml := d.XML()

	if !strings.Contains(xml, `<paragraph Alignment="0" startOffset="0" length="2">`) {
		t.Error("paragraph open tag not rendered with trailing offsets")
	}
	if !strings.Contains(xml, `<content family="Arial" startOffset="0" length="2" />`) {
		t.Error("childless element should self-close")
	}
	if !strings.Contains(xml, "</paragraph>") {
		t.Error("paragraph close tag missing")
	}
	if !strings.Contains(xml, `<page-break startOffset="2" length="0" />`) {
		t.Error("page break element not rendered")
	}
}

func TestXMLAttrEscaping(t *testing.T) {
	d := &Document{
		Content: "x",
		Elements: []Element{{
			Kind:   KindContent,
			Length: 1,
			Attrs:  []Attr{{"family", `A&B <"quoted">`}},
		}},
	}
	if !strings.Contains(d.XML(), `family="A&amp;B &lt;&quot;quoted&quot;&gt;"`) {
		t.Errorf("attribute not escaped: %s", d.XML())
	}
}

func TestCDATAEscaping(t *testing.T) {
	doc := model.NewDocument()
	doc.AddBlock(&model.Paragraph{Runs: []model.Run{
		&model.TextRun{Text: "a]]>b", FontFamily: "Times New Roman", FontSize: 12},
	}})
	xml := Serialize(doc).XML()

	if strings.Contains(xml, "<![CDATA[a]]>b]]>") {
		t.Fatal("]]> in content terminates the CDATA section early")
	}
	if !strings.Contains(xml, "a]]]]><![CDATA[>b") {
		t.Error("CDATA split sequence missing")
	}
}

func TestPackageDeterministic(t *testing.T) {
	xml := Serialize(model.NewDocument()).XML()

	first, err := Package(xml)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Package(xml)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input should produce identical container bytes")
	}
}

func TestPackageSingleEntry(t *testing.T) {
	xml := Serialize(model.NewDocument()).XML()
	packed, err := Package(xml)
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(packed), int64(len(packed)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != ContentEntryName {
		t.Fatalf("container entries = %v, want single %s", entryNames(zr), ContentEntryName)
	}
	if zr.File[0].Method != zip.Deflate {
		t.Error("entry should be deflate-compressed")
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != xml {
		t.Error("round-tripped entry content does not match input")
	}
}

func entryNames(zr *zip.Reader) []string {
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}
