// Package render turns documents into the formats leaving the editor: plain
// text for download, markdown, and a printable HTML page. It also reads
// markdown back into a document.
package render

import (
	"strings"

	"linuxword/internal/document"
)

// LineSeparator separates blocks in exported plain text.
const LineSeparator = "\n"

// PlainText returns the document as UTF-8 text, one block per line.
func PlainText(doc document.Document) string {
	return doc.PlainText(LineSeparator)
}

// ExportFilename returns the download filename for a document name.
// Path separators and control characters are replaced so the name stays a
// single file name.
func ExportFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return '-'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		cleaned = "document"
	}
	return cleaned + ".txt"
}
