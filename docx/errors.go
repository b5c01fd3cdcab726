package docx

import "errors"

var (
	// ErrMalformedPackage is returned when the package container or the body
	// XML cannot be read at all.
	ErrMalformedPackage = errors.New("docx: malformed package")

	// ErrUnsupportedDocument is returned when the package opens but its
	// content cannot be parsed. It wraps the underlying cause.
	ErrUnsupportedDocument = errors.New("docx: unsupported document")
)
