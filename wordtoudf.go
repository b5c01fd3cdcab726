// Package wordtoudf converts DOCX word-processing documents into UDF, the
// offset-addressed XML document format.
//
// Basic usage:
//
//	data, err := wordtoudf.Open("petition.docx").Convert()
//	if err != nil {
//	    // handle error
//	}
//
// Writing straight to disk:
//
//	err := wordtoudf.Open("petition.docx").ConvertTo("petition.udf")
//
// For finer control the docx and udf packages expose the two pipeline
// stages directly: docx.Parse produces the normalized document model and
// udf.Serialize turns it into the flat-buffer element form.
package wordtoudf

import (
	"fmt"
	"os"

	"github.com/omertekin2002/word-to-udf/docx"
	"github.com/omertekin2002/word-to-udf/model"
	"github.com/omertekin2002/word-to-udf/udf"
)

// Converter provides a fluent interface for converting a single document.
// Each configuration method returns a new Converter instance, so a
// configured converter can be shared and chained safely.
type Converter struct {
	filename string
	data     []byte

	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a converter for a DOCX file on disk. The file is read when
// a terminal operation runs.
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares a converter for an in-memory DOCX package.
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// clone creates a copy of the Converter with copied options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// WithoutMedia disables media extraction. Image references will not be
// resolved and image runs are dropped from the output.
func (c *Converter) WithoutMedia() *Converter {
	nc := c.clone()
	nc.options.withoutMedia = true
	return nc
}

// Document parses the source and returns the normalized document model
// without serializing it.
func (c *Converter) Document() (*model.Document, error) {
	if c.err != nil {
		return nil, c.err
	}

	data := c.data
	if data == nil {
		var err error
		data, err = os.ReadFile(c.filename)
		if err != nil {
			return nil, fmt.Errorf("%w: reading file: %w", ErrMalformedPackage, err)
		}
	}

	if c.options.withoutMedia {
		return docx.ParseWithoutMedia(data)
	}
	return docx.Parse(data)
}

// Convert runs the full pipeline and returns the bytes of the UDF
// container. A parse failure prevents serialization from running at all; a
// successful parse always serializes.
func (c *Converter) Convert() ([]byte, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}
	return udf.Package(udf.Serialize(doc).XML())
}

// ConvertTo runs Convert and writes the result to the named file.
func (c *Converter) ConvertTo(filename string) error {
	data, err := c.Convert()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	data := wordtoudf.Must(wordtoudf.Open("doc.docx").Convert())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
