package wordtoudf

import "github.com/omertekin2002/word-to-udf/docx"

// Parser error kinds, re-exported so callers can classify failures with
// errors.Is without importing the docx package.
var (
	// ErrMalformedPackage means the package container or body XML could not
	// be read at all.
	ErrMalformedPackage = docx.ErrMalformedPackage

	// ErrUnsupportedDocument means the package opened but its content could
	// not be parsed; it wraps the underlying cause.
	ErrUnsupportedDocument = docx.ErrUnsupportedDocument
)
