package model

import (
	"github.com/charmbracelet/glamour"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func renderMarkdown(md string, width int, style string) (string, error) {
	if width < 40 {
		width = 40
	}

	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}

	return r.Render(md)
}

func renderMarkdownToANSI(md string, width int) string {
	if width < 40 {
		width = 40
	}
	return string(markdown.Render(md, width-4, 4))
}

// renderPreview prefers glamour and falls back to go-term-markdown.
func renderPreview(md string, width int, style string) string {
	if out, err := renderMarkdown(md, width, style); err == nil {
		return out
	}
	return renderMarkdownToANSI(md, width)
}
