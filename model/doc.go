// Package model defines the normalized document model shared by the DOCX
// parser and the UDF serializer.
//
// A Document is an ordered sequence of block elements (paragraphs and
// tables). Paragraphs hold ordered runs; runs form a closed union of text,
// tab, break, image, and footnote-reference variants, dispatched with
// exhaustive type switches. Formatting lives in explicit fields with
// documented defaults rather than dynamic attribute lookup.
//
// The model is produced once per conversion by the docx package and is
// treated as immutable afterwards.
package model
