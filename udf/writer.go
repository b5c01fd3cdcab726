package udf

import (
	"fmt"
	"strings"
)

// Boilerplate blocks of the target XML. The consuming editor matches these
// byte for byte, so they are fixed strings rather than marshalled structs.
const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n"

	templateOpen  = `<template format_id="1.8">` + "\n"
	templateClose = "</template>\n"

	propertiesBlock = `<properties><pageFormat mediaSizeName="1" leftMargin="42.51968479156494" rightMargin="28.346456050872803" topMargin="14.173228025436401" bottomMargin="14.173228025436401" paperOrientation="1" headerFOffset="20.0" footerFOffset="20.0" /></properties>` + "\n"

	stylesBlock = `<styles><style name="default" description="Geçerli" family="Dialog" size="12" bold="false" italic="false" foreground="-13421773" FONT_ATTRIBUTE_KEY="javax.swing.plaf.FontUIResource[family=Dialog,name=Dialog,style=plain,size=12]" /><style name="hvl-default" family="Times New Roman" size="12" description="Gövde" /></styles>` + "\n"
)

// XML renders the serialized document as the final target XML string: the
// declaration, one CDATA content block, the fixed page geometry, the element
// tree, and the fixed style table.
func (d *Document) XML() string {
	var sb strings.Builder
	sb.WriteString(xmlDeclaration)
	sb.WriteString(templateOpen)

	sb.WriteString("<content><![CDATA[")
	sb.WriteString(escapeCDATA(d.Content))
	sb.WriteString("]]></content>\n")

	sb.WriteString(propertiesBlock)

	sb.WriteString(`<elements resolver="hvl-default">` + "\n")
	for i := range d.Elements {
		writeElement(&sb, &d.Elements[i])
	}
	sb.WriteString("</elements>\n")

	sb.WriteString(stylesBlock)
	sb.WriteString(templateClose)
	return sb.String()
}

// writeElement emits one element and its children. Attribute order is the
// order recorded by the serializer; startOffset and length always come last.
func writeElement(sb *strings.Builder, el *Element) {
	sb.WriteByte('<')
	sb.WriteString(el.Kind)
	for _, a := range el.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	fmt.Fprintf(sb, ` startOffset="%d" length="%d"`, el.Start, el.Length)

	if len(el.Children) == 0 {
		sb.WriteString(" />\n")
		return
	}
	sb.WriteString(">\n")
	for i := range el.Children {
		writeElement(sb, &el.Children[i])
	}
	sb.WriteString("</")
	sb.WriteString(el.Kind)
	sb.WriteString(">\n")
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// escapeCDATA splits any "]]>" occurring in the buffer so the CDATA section
// stays well formed.
func escapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
