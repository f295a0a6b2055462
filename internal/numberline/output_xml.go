package numberline

import (
	"bytes"
	"encoding/xml"
	"strings"
)

type xmlNumberline struct {
	XMLName xml.Name     `xml:"Numberline"`
	Version string       `xml:"version,attr"`
	Section []xmlSection `xml:"section"`
}

type xmlSection struct {
	Type   string     `xml:"type,attr"`
	Fields []xmlField `xml:"field"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

func RenderXML(frame Frame) string {
	doc := xmlNumberline{Version: FormatVersion(AppVersion)}
	for _, section := range sections(frame) {
		doc.Section = append(doc.Section, buildXMLSection(section))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	_ = enc.Encode(doc)
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

func buildXMLSection(section Section) xmlSection {
	fields := make([]xmlField, 0, len(section.Fields))
	for _, field := range section.Fields {
		fields = append(fields, xmlField{Name: field.Name, Value: field.Value})
	}
	return xmlSection{Type: string(section.Kind), Fields: fields}
}
