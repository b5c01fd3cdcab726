// Package udf serializes the normalized document model into the UDF target
// format.
//
// UDF stores every character of a document in one flat text buffer and
// layers structure on top of it as elements addressed by (startOffset,
// length) pairs, offsets counted in characters. The serializer walks the
// model once, appending text to the buffer and recording elements as it
// goes; footnote bodies are queued at their reference point and emitted at
// the next page break or at document end.
//
// Serialization never fails on a well-formed model: degenerate inputs
// (empty documents, empty paragraphs, empty cells, unresolved images) get
// placeholder characters instead of errors.
package udf
