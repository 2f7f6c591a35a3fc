// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the nexus-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
	"github.com/nexusai/nexus-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with NexusAI branding
// =============================================================================

// Header is the title bar showing the brand and active conversation.
type Header struct {
	Title             string // Main title (default: "NexusAI")
	ConversationTitle string // Active conversation title
	BackendURL        string // Configured backend, shown as subtitle
	Width             int    // Available width
	theme             *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "NexusAI",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetConversationTitle updates the active conversation title.
func (h *Header) SetConversationTitle(title string) {
	h.ConversationTitle = title
}

// SetBackendURL updates the backend subtitle.
func (h *Header) SetBackendURL(url string) {
	h.BackendURL = url
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	subtitleParts := []string{}

	if h.ConversationTitle != "" {
		titleStyle := lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
		subtitleParts = append(subtitleParts,
			titleStyle.Render(util.TruncateRunes(h.ConversationTitle, innerWidth/2)))
	}

	if h.BackendURL != "" {
		urlStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
		subtitleParts = append(subtitleParts, urlStyle.Render(h.BackendURL))
	}

	lines := []string{brand}
	if len(subtitleParts) > 0 {
		lines = append(lines, strings.Join(subtitleParts, "  "))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 2).
		Width(width - 2).
		Align(lipgloss.Center)

	return box.Render(content)
}

// ViewCompact renders a single-line header for small terminals.
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	line := brandStyle.Render(h.Title)
	if h.ConversationTitle != "" {
		sepStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		line += sepStyle.Render(" | ") +
			lipgloss.NewStyle().Foreground(styles.TextSecondary).
				Render(util.TruncateRunes(h.ConversationTitle, h.Width-20))
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Width(h.Width).
		Padding(0, 1).
		Render(line)
}
