package render

import (
	"strings"
	"unicode/utf16"

	"linuxword/internal/document"
)

// styleTags maps inline styles to the HTML tags used in markdown output.
// Tags nest cleanly where emphasis delimiters would not.
var styleTags = []struct {
	style document.InlineStyle
	tag   string
}{
	{document.Bold, "strong"},
	{document.Italic, "em"},
	{document.Underline, "u"},
}

// Markdown renders the document as CommonMark. Alignment becomes a
// <div align> wrapper and inline styles become <strong>, <em> and <u>.
func Markdown(doc document.Document) string {
	var sb strings.Builder
	blocks := doc.Blocks()
	for i, b := range blocks {
		if i > 0 {
			if b.Type.IsList() && blocks[i-1].Type.IsList() {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		writeBlock(&sb, b)
	}
	sb.WriteString("\n")
	return sb.String()
}

func writeBlock(sb *strings.Builder, b document.Block) {
	body := inlineMarkdown(b)
	switch b.Type {
	case document.HeaderOne:
		sb.WriteString("# " + body)
	case document.HeaderTwo:
		sb.WriteString("## " + body)
	case document.HeaderThree:
		sb.WriteString("### " + body)
	case document.UnorderedListItem:
		sb.WriteString(strings.Repeat("  ", b.Depth) + "- " + body)
	case document.OrderedListItem:
		sb.WriteString(strings.Repeat("   ", b.Depth) + "1. " + body)
	case document.AlignLeft, document.AlignCenter, document.AlignRight:
		sb.WriteString(`<div align="` + string(b.Type) + `">` + "\n\n")
		if body == "" {
			body = "<br>"
		}
		sb.WriteString(body)
		sb.WriteString("\n\n</div>")
	default:
		if body == "" {
			body = "<br>"
		}
		sb.WriteString(body)
	}
}

// inlineMarkdown escapes the block text and wraps styled runs in tags.
func inlineMarkdown(b document.Block) string {
	units := utf16.Encode([]rune(b.Text))
	if len(units) == 0 {
		return ""
	}

	var sb strings.Builder
	start := 0
	for start < len(units) {
		active := activeTags(b, start)
		end := start + 1
		for end < len(units) && sameTags(active, activeTags(b, end)) {
			end++
		}
		for _, tag := range active {
			sb.WriteString("<" + tag + ">")
		}
		sb.WriteString(escape(string(utf16.Decode(units[start:end])), start == 0))
		for i := len(active) - 1; i >= 0; i-- {
			sb.WriteString("</" + active[i] + ">")
		}
		start = end
	}
	return sb.String()
}

func activeTags(b document.Block, offset int) []string {
	var tags []string
	for _, st := range styleTags {
		if b.HasStyle(offset, st.style) {
			tags = append(tags, st.tag)
		}
	}
	return tags
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// escape backslash-escapes markdown punctuation. At the start of a line it
// also escapes list and ordered-list markers, and writes leading spaces and
// tabs as character references so they cannot open an indented code block.
func escape(s string, lineStart bool) string {
	var sb strings.Builder
	leading := lineStart
	for i, r := range s {
		if leading {
			switch r {
			case ' ':
				sb.WriteString("&#32;")
				continue
			case '\t':
				sb.WriteString("&#9;")
				continue
			}
			leading = false
		}
		switch r {
		case '\n':
			sb.WriteString("<br>")
			continue
		case '\\', '`', '*', '_', '[', ']', '<', '>', '#', '!', '|', '~', '&':
			sb.WriteByte('\\')
		case '-', '+':
			if lineStart && i == 0 {
				sb.WriteByte('\\')
			}
		case '.', ')':
			if lineStart && i > 0 && isDigits(s[:i]) {
				sb.WriteByte('\\')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
