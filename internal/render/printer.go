package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"linuxword/internal/document"
)

// Printer renders documents as a print-ready HTML page. The page opens the
// browser's print dialog as soon as it has loaded.
type Printer struct {
	markdown goldmark.Markdown
	template *template.Template
}

// printPageData holds template data for the print page.
type printPageData struct {
	Title   string
	Content template.HTML
}

// NewPrinter creates a Printer.
func NewPrinter() *Printer {
	tmpl := template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: Georgia, 'Times New Roman', serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 800px;
      line-height: 1.6;
      color: #000;
      background: #fff;
    }
    h1, h2, h3 {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    }
    @media print {
      body {
        padding: 0;
      }
    }
  </style>
  <script>
    window.addEventListener('load', function () { window.print(); });
  </script>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &Printer{
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// HTML renders the document body as an HTML fragment.
func (p *Printer) HTML(doc document.Document) (string, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(Markdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Render writes the full print page for doc to w.
func (p *Printer) Render(w io.Writer, title string, doc document.Document) error {
	body, err := p.HTML(doc)
	if err != nil {
		return err
	}
	data := printPageData{
		Title:   title,
		Content: template.HTML(body),
	}
	if err := p.template.Execute(w, data); err != nil {
		return fmt.Errorf("execute print template: %w", err)
	}
	return nil
}
