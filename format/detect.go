// Package format provides input format detection for the converter.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) package.
	DOCX
	// UDF indicates a UDF container (already converted).
	UDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case UDF:
		return "UDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case UDF:
		return ".udf"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".udf":
		return UDF
	default:
		return Unknown
	}
}

// DetectBytes inspects content to determine the format. Both formats are
// ZIP containers, so the archive entry list is what tells them apart:
// DOCX carries word/document.xml, UDF carries a single content.xml.
func DetectBytes(data []byte) Format {
	if len(data) < 4 || data[0] != 0x50 || data[1] != 0x4B || data[2] != 0x03 || data[3] != 0x04 {
		return Unknown
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	hasContentXML := false
	for _, f := range zr.File {
		switch f.Name {
		case "word/document.xml":
			return DOCX
		case "content.xml":
			hasContentXML = true
		}
	}
	if hasContentXML {
		return UDF
	}
	return Unknown
}
