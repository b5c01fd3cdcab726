// Command word2udf converts a DOCX file to a UDF document.
//
// Usage:
//
//	word2udf [-quiet] input.docx [output.udf]
//
// When the output path is omitted, the input path with a .udf extension is
// used.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	wordtoudf "github.com/omertekin2002/word-to-udf"
	"github.com/omertekin2002/word-to-udf/format"
	"github.com/omertekin2002/word-to-udf/model"
	"github.com/omertekin2002/word-to-udf/udf"
)

func main() {
	quiet := flag.Bool("quiet", false, "suppress the conversion summary")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: word2udf [-quiet] <input.docx> [output.udf]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	input := args[0]
	output := outputPath(input, args)

	if err := run(input, output, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "word2udf: %v\n", err)
		os.Exit(1)
	}
}

func outputPath(input string, args []string) string {
	if len(args) == 2 {
		return args[1]
	}
	base := strings.TrimSuffix(input, format.Detect(input).Extension())
	return base + ".udf"
}

func run(input, output string, quiet bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if f := format.DetectBytes(data); f != format.DOCX {
		return fmt.Errorf("%s: not a DOCX package (detected %s)", input, f)
	}

	doc, err := wordtoudf.FromBytes(data).Document()
	if err != nil {
		return err
	}

	serialized := udf.Serialize(doc)
	packed, err := udf.Package(serialized.XML())
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, packed, 0o644); err != nil {
		return err
	}

	if !quiet {
		printSummary(output, doc, serialized)
	}
	return nil
}

// printSummary reports what the conversion produced.
func printSummary(output string, doc *model.Document, serialized *udf.Document) {
	paragraphs, tables := 0, 0
	formats := map[string]int{}
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *model.Paragraph:
			paragraphs++
			for _, run := range b.Runs {
				if img, ok := run.(*model.ImageRun); ok && img.Format != "" {
					formats[img.Format]++
				}
			}
		case *model.Table:
			tables++
		}
	}

	fmt.Printf("wrote %s: %d paragraphs, %d tables, %d elements, %d chars\n",
		output, paragraphs, tables, len(serialized.Elements), len([]rune(serialized.Content)))
	for f, n := range formats {
		fmt.Printf("  embedded %s images: %d\n", f, n)
	}
}
