// Package docx parses DOCX (Office Open XML) word-processing packages into
// the normalized document model.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

// Reader provides access to the parts of a DOCX package: the body XML, the
// relationship table, footnote bodies, and embedded media.
type Reader struct {
	zr        *zip.Reader
	document  *documentXML
	rels      map[string]relationshipXML
	footnotes map[string]string // footnote id -> plain body text
	media     map[string][]byte // media basename -> raw bytes
}

// NewReader opens a DOCX package from raw bytes. Media binaries are
// extracted eagerly so image runs can be resolved synchronously later.
func NewReader(data []byte) (*Reader, error) {
	return newReader(data, false)
}

func newReader(data []byte, skipMedia bool) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %w", ErrMalformedPackage, err)
	}

	r := &Reader{
		zr:        zr,
		rels:      make(map[string]relationshipXML),
		footnotes: make(map[string]string),
		media:     make(map[string][]byte),
	}

	if err := r.parseDocument(); err != nil {
		return nil, err
	}
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("%w: parsing relationships: %w", ErrUnsupportedDocument, err)
	}
	if err := r.parseFootnotes(); err != nil {
		return nil, fmt.Errorf("%w: parsing footnotes: %w", ErrUnsupportedDocument, err)
	}
	if !skipMedia {
		if err := r.extractMedia(); err != nil {
			return nil, fmt.Errorf("%w: extracting media: %w", ErrUnsupportedDocument, err)
		}
	}

	return r, nil
}

// entryText returns the text content of a named package entry.
func (r *Reader) entryText(name string) ([]byte, error) {
	return r.entryBytes(name)
}

// entryBytes returns the binary content of a named package entry.
func (r *Reader) entryBytes(name string) ([]byte, error) {
	for _, f := range r.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry not found: %s", name)
}

// entriesUnder returns the names of package entries below a path prefix.
func (r *Reader) entriesUnder(prefix string) []string {
	var names []string
	for _, f := range r.zr.File {
		if strings.HasPrefix(f.Name, prefix) && f.Name != prefix {
			names = append(names, f.Name)
		}
	}
	return names
}

// decodeXML unmarshals a package part, tolerating non-UTF-8 encodings.
func decodeXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

// parseDocument reads and unmarshals word/document.xml. A missing or
// unreadable body means the package as a whole is malformed.
func (r *Reader) parseDocument() error {
	data, err := r.entryText("word/document.xml")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPackage, err)
	}

	r.document = &documentXML{}
	if err := decodeXML(data, r.document); err != nil {
		return fmt.Errorf("%w: unmarshaling document.xml: %w", ErrMalformedPackage, err)
	}
	return nil
}

// parseRelationships reads the document relationship table. The file is
// optional; without it image references simply dangle.
func (r *Reader) parseRelationships() error {
	data, err := r.entryText("word/_rels/document.xml.rels")
	if err != nil {
		return nil
	}

	var rels relationshipsXML
	if err := decodeXML(data, &rels); err != nil {
		return err
	}
	for _, rel := range rels.Relationships {
		r.rels[rel.ID] = rel
	}
	return nil
}

// parseFootnotes reads word/footnotes.xml and builds the footnote body
// table. Separator and continuation stubs are excluded.
func (r *Reader) parseFootnotes() error {
	data, err := r.entryText("word/footnotes.xml")
	if err != nil {
		return nil
	}

	var fns footnotesXML
	if err := decodeXML(data, &fns); err != nil {
		return err
	}
	for _, fn := range fns.Footnotes {
		if fn.Type == "separator" || fn.Type == "continuationSeparator" {
			continue
		}
		r.footnotes[fn.ID] = footnoteText(fn.Paragraphs)
	}
	return nil
}

// footnoteText flattens footnote paragraphs to plain text.
func footnoteText(paragraphs []paragraphXML) string {
	var parts []string
	for _, p := range paragraphs {
		var sb strings.Builder
		for _, run := range p.Runs {
			for _, t := range run.Text {
				sb.WriteString(t.Value)
			}
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// extractMedia reads every entry under word/media/ into the media map,
// keyed by basename.
func (r *Reader) extractMedia() error {
	for _, name := range r.entriesUnder("word/media/") {
		data, err := r.entryBytes(name)
		if err != nil {
			return err
		}
		r.media[path.Base(name)] = data
	}
	return nil
}

// resolveImage follows a relationship id to media bytes. Returns nil when
// the relationship or the media entry is missing.
func (r *Reader) resolveImage(relID string) []byte {
	rel, ok := r.rels[relID]
	if !ok {
		return nil
	}
	return r.media[path.Base(rel.Target)]
}

// readFile is a small helper for ParseFile.
func readFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file: %w", ErrMalformedPackage, err)
	}
	return data, nil
}
