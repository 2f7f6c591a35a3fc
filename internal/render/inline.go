// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inline.go - Lightweight inline emphasis for the line-mode REPL.
//
// The plain REPL does not run glamour; instead **bold** and *italic*
// spans are mapped onto terminal attributes with lipgloss so responses
// stay readable without a full markdown pipeline.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// PATTERNS
// =============================================================================

// PERFORMANCE: Pre-compiled regex (compiled once at startup)
var (
	boldRegex   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRegex = regexp.MustCompile(`\*([^*]+)\*`)
	codeRegex   = regexp.MustCompile("`([^`]+)`")
)

// =============================================================================
// STYLES
// =============================================================================

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true)
	codeStyle   = lipgloss.NewStyle().Faint(true)
)

// =============================================================================
// INLINE RENDERING
// =============================================================================

// Inline applies terminal emphasis to **bold**, *italic* and `code`
// spans. Content is otherwise passed through verbatim; unbalanced
// markers are left alone.
func Inline(content string) string {
	out := boldRegex.ReplaceAllStringFunc(content, func(match string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(match, "**"), "**")
		return boldStyle.Render(inner)
	})
	out = italicRegex.ReplaceAllStringFunc(out, func(match string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(match, "*"), "*")
		return italicStyle.Render(inner)
	})
	out = codeRegex.ReplaceAllStringFunc(out, func(match string) string {
		inner := strings.Trim(match, "`")
		return codeStyle.Render(inner)
	})
	return out
}
