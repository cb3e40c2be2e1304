package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer converts assistant Markdown into styled terminal
// output. The underlying glamour renderer is cached and only rebuilt
// when the word-wrap width actually changes.
type markdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

func newTermRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

// newMarkdownRenderer creates a renderer for the given width.
// Returns nil when glamour cannot initialize, callers fall back to
// plain text in that case.
func newMarkdownRenderer(width int) *markdownRenderer {
	if width <= 0 {
		width = 80
	}

	r, err := newTermRenderer(width)
	if err != nil {
		return nil
	}

	return &markdownRenderer{renderer: r, width: width}
}

// SetWidth rebuilds the renderer when the width changed. The previous
// renderer stays in place if the rebuild fails.
func (m *markdownRenderer) SetWidth(width int) {
	if m == nil || width <= 0 || m.width == width {
		return
	}

	r, err := newTermRenderer(width)
	if err != nil {
		return
	}

	m.renderer = r
	m.width = width
}

// Render converts Markdown to styled terminal output, returning the
// input unchanged when rendering is unavailable or fails.
func (m *markdownRenderer) Render(text string) string {
	if m == nil || m.renderer == nil {
		return text
	}

	rendered, err := m.renderer.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimSuffix(rendered, "\n")
}
