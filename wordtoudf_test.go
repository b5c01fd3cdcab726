package wordtoudf

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/omertekin2002/word-to-udf/udf"
)

const fixtureDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"
            xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
            xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
            xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
  <w:body>
    <w:p>
      <w:r><w:rPr><w:b/></w:rPr><w:t>Sayın Yetkili,</w:t></w:r>
    </w:p>
    <w:p>
      <w:r>
        <w:drawing>
          <wp:inline>
            <wp:extent cx="914400" cy="457200"/>
            <a:graphic><a:graphicData>
              <pic:pic><pic:blipFill><a:blip r:embed="rId10"/></pic:blipFill></pic:pic>
            </a:graphicData></a:graphic>
          </wp:inline>
        </w:drawing>
      </w:r>
    </w:p>
  </w:body>
</w:document>`

const fixtureRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId10" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`

var fixtureImageBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// buildFixture assembles an in-memory DOCX package with one bold paragraph
// and one embedded image.
func buildFixture(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string][]byte{
		"[Content_Types].xml":          []byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`),
		"word/document.xml":            []byte(fixtureDocumentXML),
		"word/_rels/document.xml.rels": []byte(fixtureRelsXML),
		"word/media/image1.png":        fixtureImageBytes,
	}
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// contentXML unzips the UDF container and returns the content.xml text.
func contentXML(t *testing.T, container []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != udf.ContentEntryName {
		t.Fatalf("container should hold a single %s entry", udf.ContentEntryName)
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestConvertEndToEnd(t *testing.T) {
	out, err := FromBytes(buildFixture(t)).Convert()
	if err != nil {
		t.Fatal(err)
	}

	xml := contentXML(t, out)
	if !strings.Contains(xml, "Sayın Yetkili,") {
		t.Error("paragraph text missing from content buffer")
	}
	if !strings.Contains(xml, `bold="true"`) {
		t.Error("bold formatting missing")
	}
	wantData := base64.StdEncoding.EncodeToString(fixtureImageBytes)
	if !strings.Contains(xml, `imageData="`+wantData+`"`) {
		t.Error("embedded image bytes missing")
	}
	if !strings.Contains(xml, `width="72.0" height="36.0"`) {
		t.Error("image dimensions not converted to points")
	}
	if !strings.Contains(xml, `<template format_id="1.8">`) {
		t.Error("template envelope missing")
	}
}

func TestConvertWithoutMedia(t *testing.T) {
	base := FromBytes(buildFixture(t))

	out, err := base.WithoutMedia().Convert()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(contentXML(t, out), "imageData=") {
		t.Error("image should be dropped when media extraction is disabled")
	}

	// The original converter is unaffected by the derived configuration.
	out, err = base.Convert()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(contentXML(t, out), "imageData=") {
		t.Error("original converter lost its media handling")
	}
}

func TestConvertDeterministic(t *testing.T) {
	src := buildFixture(t)
	first := Must(FromBytes(src).Convert())
	second := Must(FromBytes(src).Convert())
	if !bytes.Equal(first, second) {
		t.Error("converting the same input twice should be byte-identical")
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := FromBytes([]byte("not a zip")).Convert(); !errors.Is(err, ErrMalformedPackage) {
		t.Errorf("garbage input: got %v, want ErrMalformedPackage", err)
	}
	if _, err := Open("testdata/does-not-exist.docx").Convert(); !errors.Is(err, ErrMalformedPackage) {
		t.Errorf("missing file: got %v, want ErrMalformedPackage", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
