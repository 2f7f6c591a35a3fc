// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the nexus-tui.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
	"github.com/nexusai/nexus-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status
type Status int

const (
	StatusReady Status = iota
	StatusWaiting
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusWaiting:
		return "Waiting..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusWaiting:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar showing backend and session state.
type StatusBar struct {
	BackendURL        string // Base URL of the chat backend
	BackendOnline     bool   // Result of the last health check
	SessionID         string // Current client session identifier
	ConversationCount int    // Number of conversations this session
	Status            Status // Current status
	Width             int    // Available width
	ShowShortcuts     bool   // Show keyboard shortcuts
	theme             *styles.Theme
}

// NewStatusBar creates a status bar with defaults.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the available width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetBackend updates backend connectivity state.
func (s *StatusBar) SetBackend(url string, online bool) {
	s.BackendURL = url
	s.BackendOnline = online
}

// View renders the status bar for the current width.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact bar: backend indicator and status only.
func (s *StatusBar) viewNarrow() string {
	parts := []string{
		s.renderBackendBadge(),
		s.getStatusStyle().Render(s.Status.Icon() + " " + s.Status.String()),
	}

	bar := strings.Join(parts, "  ")
	return s.theme.StatusBar.Width(s.Width).Render(bar)
}

// viewWide renders the full bar: backend, session, conversations, shortcuts.
func (s *StatusBar) viewWide() string {
	left := []string{
		s.renderBackendBadge(),
		s.getStatusStyle().Render(s.Status.Icon() + " " + s.Status.String()),
	}

	if s.ConversationCount > 0 {
		left = append(left, s.theme.ShortcutDesc.Render(
			fmt.Sprintf("%d conversation(s)", s.ConversationCount)))
	}

	if s.SessionID != "" {
		left = append(left, s.theme.ShortcutDesc.Render(
			util.TruncateRunes(s.SessionID, 13)))
	}

	leftView := strings.Join(left, "  ")

	rightView := ""
	if s.ShowShortcuts {
		rightView = s.renderShortcuts()
	}

	gap := s.Width - lipgloss.Width(leftView) - lipgloss.Width(rightView) - 2
	if gap < 1 {
		gap = 1
	}

	bar := leftView + strings.Repeat(" ", gap) + rightView
	return s.theme.StatusBar.Width(s.Width).Render(bar)
}

// renderBackendBadge renders the backend connectivity indicator.
func (s *StatusBar) renderBackendBadge() string {
	if s.BackendOnline {
		return s.theme.BackendOnline.Render(styles.StatusIndicators.Active + " online")
	}
	return s.theme.BackendOffline.Render(styles.StatusIndicators.Error + " offline")
}

// renderShortcuts renders the keyboard shortcut hints.
func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "send"},
		{"C-n", "new"},
		{"C-p", "switch"},
		{"C-c", "quit"},
	}

	var parts []string
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+" "+s.theme.ShortcutDesc.Render(sc.desc))
	}

	return strings.Join(parts, "  ")
}

// getStatusStyle returns the style for the current status.
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusReady:
		return s.theme.SuccessStyle
	case StatusWaiting:
		return s.theme.PendingBadge
	case StatusError:
		return s.theme.ErrorStyle
	default:
		return s.theme.InfoStyle
	}
}
