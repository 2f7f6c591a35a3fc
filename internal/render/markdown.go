// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// markdown.go - Glamour-backed markdown rendering for assistant messages.
//
// Renders markdown responses with syntax highlighting and formatting for
// terminal display. Falls back to the raw text whenever the renderer is
// unavailable or fails, so a rendering problem never loses message content.
package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultWrapWidth is the word-wrap width used when no width is known.
	DefaultWrapWidth = 80

	// MinWrapWidth is the narrowest wrap we bother asking glamour for.
	MinWrapWidth = 20
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// Markdown renders assistant markdown for terminal display. Safe for
// concurrent use; the underlying glamour renderer is rebuilt when the
// wrap width changes.
type Markdown struct {
	mu       sync.Mutex
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a markdown renderer with the default wrap width.
func NewMarkdown() *Markdown {
	m := &Markdown{width: DefaultWrapWidth}
	m.renderer = newTermRenderer(m.width)
	return m
}

func newTermRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		return nil
	}
	return r
}

// SetWidth updates the wrap width, rebuilding the renderer if needed.
func (m *Markdown) SetWidth(width int) {
	if width < MinWrapWidth {
		width = MinWrapWidth
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if width == m.width {
		return
	}
	m.width = width
	m.renderer = newTermRenderer(width)
}

// Render renders markdown content for terminal display. Returns the
// original content if rendering fails or the renderer is unavailable.
func (m *Markdown) Render(content string) string {
	m.mu.Lock()
	r := m.renderer
	m.mu.Unlock()

	if r == nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Glamour pads output with leading/trailing blank lines; the chat
	// viewport supplies its own spacing between messages.
	return strings.Trim(rendered, "\n")
}
