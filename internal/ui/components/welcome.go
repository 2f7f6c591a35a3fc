// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the nexus-tui.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN MODEL
// =============================================================================

// Welcome is the welcome screen shown before the first message is sent.
type Welcome struct {
	// Display info
	version    string
	backendURL string
	online     bool

	// Dimensions
	width  int
	height int

	// Theme
	theme *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetBackend sets the backend URL and connectivity state.
func (w *Welcome) SetBackend(url string, online bool) {
	w.backendURL = url
	w.online = online
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the welcome screen.
func (w Welcome) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (w Welcome) Update(msg tea.Msg) (Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	}
	return w, nil
}

// View renders the welcome screen centered in the available area.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 24
	}

	boxWidth := 56
	if boxWidth > width-4 {
		boxWidth = width - 4
	}
	if boxWidth < 36 {
		boxWidth = 36
	}

	content := w.renderLogo()
	content += "\n" + w.renderVersion()
	content += "\n\n" + w.renderBackendInfo()
	content += "\n\n" + w.renderPressKey()

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 4).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderLogo renders the ASCII brand logo.
func (w Welcome) renderLogo() string {
	logo := "" +
		" _  _  ____  _  _  __  __  ___ \n" +
		"( \\( )( ___)( \\/ )(  )(  )/ __)\n" +
		" )  (  )__)  )  (  )(__)( \\__ \\\n" +
		"(_)\\_)(____)(_/\\_)(______)(___/"

	return w.theme.WelcomeLogo.Render(logo)
}

// renderVersion renders the version line.
func (w Welcome) renderVersion() string {
	return w.theme.PickerMeta.Render("nexus-tui " + w.version)
}

// renderBackendInfo renders backend URL and connectivity.
func (w Welcome) renderBackendInfo() string {
	status := styles.RenderError("backend offline")
	if w.online {
		status = styles.RenderSuccess("backend online")
	}
	url := w.theme.WelcomeInfo.Render(w.backendURL)
	return url + "\n" + status
}

// renderPressKey renders the "start typing" hint.
func (w Welcome) renderPressKey() string {
	return w.theme.WelcomeInfo.Render("Type a message and press ") +
		w.theme.WelcomeKey.Render("Enter") +
		w.theme.WelcomeInfo.Render(" to chat")
}
