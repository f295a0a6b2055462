package numberline

import "bytes"

func RenderCSV(frame Frame) string {
	var buf bytes.Buffer
	for _, section := range sections(frame) {
		writeCSVSection(&buf, section)
	}
	return buf.String()
}

func writeCSVSection(buf *bytes.Buffer, section Section) {
	buf.WriteString(string(section.Kind))
	buf.WriteString("\n")
	for _, field := range section.Fields {
		buf.WriteString(field.Name)
		buf.WriteString(",")
		buf.WriteString(field.Value)
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
