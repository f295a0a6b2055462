package numberline

import (
	"bytes"
	"fmt"
	"strings"
)

func RenderText(frame Frame) string {
	var buf bytes.Buffer
	for i, section := range sections(frame) {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeSection(&buf, section)
	}
	buf.WriteString("\n")
	buf.WriteString(reportByLine())
	buf.WriteString("\n")
	output := strings.TrimRight(buf.String(), "\n")
	return output + "\n\n"
}

func reportByLine() string {
	return fmt.Sprintf("ReportBy : %s - %s", AppName, FormatVersion(AppVersion))
}

func writeSection(buf *bytes.Buffer, section Section) {
	buf.WriteString(string(section.Kind))
	buf.WriteString("\n")
	for _, field := range section.Fields {
		buf.WriteString(padRight(field.Name, 41))
		buf.WriteString(": ")
		buf.WriteString(field.Value)
		buf.WriteString("\n")
	}
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
