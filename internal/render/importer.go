package render

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"linuxword/internal/document"
)

var (
	alignOpenRe  = regexp.MustCompile(`^<div align="(left|center|right)">\s*$`)
	alignCloseRe = regexp.MustCompile(`^</div>\s*$`)
	breakRe      = regexp.MustCompile(`^<br\s*/?>\s*$`)
)

// inlineTags maps inline HTML tags to styles when reading markdown.
var inlineTags = map[string]document.InlineStyle{
	"strong": document.Bold,
	"b":      document.Bold,
	"em":     document.Italic,
	"i":      document.Italic,
	"u":      document.Underline,
}

// Importer reads markdown into a document using goldmark's AST.
type Importer struct {
	parser goldmark.Markdown
}

// NewImporter creates an Importer.
func NewImporter() *Importer {
	return &Importer{
		parser: goldmark.New(),
	}
}

// Import parses markdown content into a document. Headings up to level
// three, paragraphs, list items and <div align> wrappers map to block types;
// emphasis and <strong>/<em>/<u> tags map to inline styles.
func (im *Importer) Import(content []byte) (document.Document, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return document.Empty(), nil
	}

	reader := text.NewReader(content)
	root := im.parser.Parser().Parse(reader)

	w := &blockWalker{source: content}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		w.block(n, 0)
	}
	return document.FromBlocks(w.blocks)
}

// blockWalker collects document blocks from top-level markdown nodes.
type blockWalker struct {
	source []byte
	blocks []document.Block
	align  document.BlockType
}

func (w *blockWalker) block(n ast.Node, depth int) {
	switch node := n.(type) {
	case *ast.Heading:
		w.blocks = append(w.blocks, w.inline(node, headingType(node.Level), 0))

	case *ast.Paragraph, *ast.TextBlock:
		t := document.Unstyled
		if w.align != "" {
			t = w.align
		}
		w.blocks = append(w.blocks, w.inline(node, t, 0))

	case *ast.List:
		t := document.UnorderedListItem
		if node.IsOrdered() {
			t = document.OrderedListItem
		}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*ast.List); ok {
					w.block(c, depth+1)
					continue
				}
				w.blocks = append(w.blocks, w.inline(c, t, depth))
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			w.blocks = append(w.blocks, document.NewBlock(strings.TrimRight(string(line.Value(w.source)), "\n")))
		}

	case *ast.Blockquote:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			w.block(c, depth)
		}

	case *ast.HTMLBlock:
		w.htmlBlock(node)
	}
}

func (w *blockWalker) htmlBlock(node *ast.HTMLBlock) {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	raw := strings.TrimSpace(sb.String())

	switch {
	case alignOpenRe.MatchString(raw):
		w.align = document.BlockType(alignOpenRe.FindStringSubmatch(raw)[1])
	case alignCloseRe.MatchString(raw):
		w.align = ""
	case breakRe.MatchString(raw):
		t := document.Unstyled
		if w.align != "" {
			t = w.align
		}
		b := document.NewBlock("")
		b.Type = t
		w.blocks = append(w.blocks, b)
	}
}

func headingType(level int) document.BlockType {
	switch level {
	case 1:
		return document.HeaderOne
	case 2:
		return document.HeaderTwo
	case 3:
		return document.HeaderThree
	}
	return document.Unstyled
}

// inline flattens the inline children of n into one block.
func (w *blockWalker) inline(n ast.Node, t document.BlockType, depth int) document.Block {
	c := &inlineCollector{source: w.source, counts: map[document.InlineStyle]int{}}
	c.walk(n)

	b := document.NewBlock(c.text.String())
	b.Type = t
	if t.IsList() {
		b.Depth = depth
	}
	b.Styles = c.styles
	return b
}

type inlineCollector struct {
	source []byte
	text   strings.Builder
	length int
	counts map[document.InlineStyle]int
	styles []document.StyleRange
}

func (c *inlineCollector) write(s string) {
	if s == "" {
		return
	}
	n := len(utf16.Encode([]rune(s)))
	for _, st := range []document.InlineStyle{document.Bold, document.Italic, document.Underline} {
		if c.counts[st] > 0 {
			c.styles = append(c.styles, document.StyleRange{Offset: c.length, Length: n, Style: st})
		}
	}
	c.text.WriteString(s)
	c.length += n
}

func (c *inlineCollector) walk(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			c.write(unescapeText(node.Segment.Value(c.source)))
			if node.HardLineBreak() {
				c.write("\n")
			} else if node.SoftLineBreak() {
				c.write(" ")
			}

		case *ast.String:
			c.write(string(node.Value))

		case *ast.Emphasis:
			st := document.Italic
			if node.Level >= 2 {
				st = document.Bold
			}
			c.counts[st]++
			c.walk(node)
			c.counts[st]--

		case *ast.RawHTML:
			c.rawHTML(node)

		case *ast.AutoLink:
			c.write(string(node.Label(c.source)))

		default:
			c.walk(child)
		}
	}
}

// rawHTML toggles styles for known inline tags; <br> becomes a newline.
func (c *inlineCollector) rawHTML(node *ast.RawHTML) {
	var sb strings.Builder
	for i := 0; i < node.Segments.Len(); i++ {
		seg := node.Segments.At(i)
		sb.Write(seg.Value(c.source))
	}
	tag := strings.ToLower(strings.TrimSpace(sb.String()))
	if breakRe.MatchString(tag) {
		c.write("\n")
		return
	}

	closing := strings.HasPrefix(tag, "</")
	name := strings.Trim(tag, "</> ")
	st, ok := inlineTags[name]
	if !ok {
		return
	}
	if closing {
		if c.counts[st] > 0 {
			c.counts[st]--
		}
		return
	}
	c.counts[st]++
}

// unescapeText resolves backslash escapes and numeric character references
// in a single pass, so an escaped "\&" is never read as a reference.
func unescapeText(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); i++ {
		switch {
		case b[i] == '\\' && i+1 < len(b) && util.IsPunct(b[i+1]):
			i++
			sb.WriteByte(b[i])
		case b[i] == '&' && i+1 < len(b) && b[i+1] == '#':
			end := bytes.IndexByte(b[i:], ';')
			if end < 0 {
				sb.WriteByte(b[i])
				continue
			}
			ref := b[i : i+end+1]
			if resolved := util.ResolveNumericReferences(ref); !bytes.Equal(resolved, ref) {
				sb.Write(resolved)
				i += end
				continue
			}
			sb.WriteByte(b[i])
		default:
			sb.WriteByte(b[i])
		}
	}
	return sb.String()
}
