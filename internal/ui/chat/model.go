// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusai/nexus-tui/internal/config"
	"github.com/nexusai/nexus-tui/internal/nexus"
	"github.com/nexusai/nexus-tui/internal/render"
	"github.com/nexusai/nexus-tui/internal/session"
	"github.com/nexusai/nexus-tui/internal/ui/components"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxInputLength caps a single outgoing message.
	MaxInputLength = 4000

	// healthCheckInterval is how often the backend is pinged.
	healthCheckInterval = 15 * time.Second
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateWaiting              // A chat request is in flight
	StateError                // Showing an error
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state      State
	showPicker bool
	ready      bool

	// Conversation session
	ctrl *session.Controller

	// Backend health client
	client *nexus.Client

	// Config
	cfg *config.Config

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI Components
	viewport  viewport.Model
	input     textinput.Model
	typing    components.TypingIndicator
	header    *components.Header
	statusBar *components.StatusBar
	picker    *components.ConversationPicker
	welcome   components.Welcome
	markdown  *render.Markdown

	// Key bindings
	keyMap KeyMap

	// Backend state
	backendOnline bool

	// Error state
	lastError *ErrorMsg
}

// New creates the chat model wired to a session controller and health client.
func New(ctrl *session.Controller, client *nexus.Client, cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.CharLimit = MaxInputLength
	input.Prompt = "> "
	input.Focus()

	welcome := components.NewWelcome(theme)
	welcome.SetBackend(cfg.Backend.URL, false)

	header := components.NewHeader(theme)
	header.SetBackendURL(cfg.Backend.URL)

	return Model{
		state:     StateReady,
		ctrl:      ctrl,
		client:    client,
		cfg:       cfg,
		theme:     theme,
		input:     input,
		typing:    components.NewTypingIndicator(),
		header:    header,
		statusBar: components.NewStatusBar(theme),
		picker:    components.NewConversationPicker(theme),
		welcome:   welcome,
		markdown:  render.NewMarkdown(),
		keyMap:    DefaultKeyMap(),
	}
}

// Init starts input blinking and the first backend health check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.checkBackendCmd(),
		m.healthTickCmd(),
	)
}

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd runs one send round trip off the UI goroutine. The controller
// appends the user message immediately and reconciles the reply itself, so
// the command only reports that state changed.
func (m Model) sendCmd(content string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Send(context.Background(), content)
		return StateChangedMsg{}
	}
}

// checkBackendCmd pings the backend health endpoint.
func (m Model) checkBackendCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.CheckRunning(ctx); err != nil {
			return BackendStatusMsg{Running: false, Error: err}
		}
		return BackendStatusMsg{Running: true}
	}
}

// healthTickCmd schedules the next periodic health check.
func (m Model) healthTickCmd() tea.Cmd {
	return tea.Tick(healthCheckInterval, func(t time.Time) tea.Msg {
		return HealthTickMsg{Time: t}
	})
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// PickerOpen reports whether the conversation picker overlay is showing.
func (m Model) PickerOpen() bool {
	return m.showPicker
}

// SetVersion sets the build version shown on the welcome screen.
func (m *Model) SetVersion(version string) {
	m.welcome.SetVersion(version)
}
