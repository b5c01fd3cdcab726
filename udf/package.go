package udf

import (
	"archive/zip"
	"bytes"
	"io"
)

// ContentEntryName is the single archive entry the consuming editor reads.
const ContentEntryName = "content.xml"

// Package wraps the final XML string in the UDF container: a zip archive
// with exactly one compressed content.xml entry. The entry header carries no
// timestamp, so identical input yields identical bytes.
func Package(xmlContent string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   ContentEntryName,
		Method: zip.Deflate,
	})
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, xmlContent); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
