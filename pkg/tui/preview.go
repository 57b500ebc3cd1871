package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"

	"github.com/scrawl/scrawl-cli/pkg/debug"
	"github.com/scrawl/scrawl-cli/pkg/models"
)

// renderPreview produces the read-only preview of a document for the
// given width. Markdown goes through glamour, HTML is reduced to its
// text content, plain text is word-wrapped as-is. On any render failure
// the raw text is returned so the preview never goes blank.
func renderPreview(kind models.DocKind, text string, width int, style string) string {
	if width < 10 {
		width = 10
	}

	start := time.Now()
	defer func() {
		debug.LogTiming("preview render", time.Since(start))
	}()

	switch kind {
	case models.KindMarkdown:
		return renderMarkdown(text, width, style)
	case models.KindHTML:
		return wordwrap.String(htmlToText(text), width)
	default:
		return wordwrap.String(text, width)
	}
}

func renderMarkdown(text string, width int, style string) string {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		debug.Log("preview: renderer init failed: %v", err)
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		debug.Log("preview: markdown render failed: %v", err)
		return text
	}
	return out
}

// blockTags are HTML elements that imply a line break around their text.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dd": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

// htmlToText extracts the readable text from an HTML document, dropping
// scripts, styles and markup. Block elements become line breaks.
func htmlToText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		debug.Log("preview: html parse failed: %v", err)
		return src
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head", "noscript":
				return
			case "br":
				b.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(doc)

	return tidyText(b.String())
}

// tidyText collapses runs of spaces and blank lines left behind by
// markup removal.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
