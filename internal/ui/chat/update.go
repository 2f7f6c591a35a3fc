// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the Bubble Tea update loop: keyboard dispatch, state
// change handling, and backend status tracking.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusai/nexus-tui/internal/ui/components"
)

// Update handles incoming Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StateChangedMsg:
		return m.handleStateChanged()

	case BackendStatusMsg:
		m.backendOnline = msg.Running
		m.statusBar.SetBackend(m.cfg.Backend.URL, msg.Running)
		m.welcome.SetBackend(m.cfg.Backend.URL, msg.Running)
		return m, nil

	case HealthTickMsg:
		return m, tea.Batch(m.checkBackendCmd(), m.healthTickCmd())

	case SubmitInputMsg:
		return m.handleSubmit(msg.Content)

	case ClearInputMsg:
		m.input.SetValue("")
		return m, nil

	case ErrorMsg:
		m.state = StateError
		m.lastError = &msg
		return m, nil

	case ErrorDismissMsg:
		m.state = StateReady
		m.lastError = nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd
	}

	// Everything else flows into the text input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	headerHeight := 4
	inputHeight := 3
	statusHeight := 1
	viewportHeight := msg.Height - headerHeight - inputHeight - statusHeight
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = newViewport(msg.Width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewportHeight
	}

	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.picker.SetWidth(minInt(msg.Width-8, 70))
	m.welcome.SetSize(msg.Width, viewportHeight)
	m.input.Width = msg.Width - 6
	m.markdown.SetWidth(msg.Width - 10)

	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEYBOARD DISPATCH
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always wins
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.showPicker {
		return m.handlePickerKey(msg)
	}

	// Dismiss a visible error on any key
	if m.state == StateError {
		m.state = StateReady
		m.lastError = nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m.handleSubmit(content)

	case key.Matches(msg, m.keyMap.NewConv):
		m.ctrl.NewConversation()
		return m.handleStateChanged()

	case key.Matches(msg, m.keyMap.Picker):
		m.showPicker = true
		m.picker.SetConversations(m.ctrl.Conversations(), m.ctrl.ActiveID())
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePickerKey routes keys while the conversation picker is open.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Close):
		m.showPicker = false
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.picker.MoveUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.picker.MoveDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if conv := m.picker.Selected(); conv != nil {
			m.ctrl.SetActive(conv.ID)
		}
		m.showPicker = false
		return m.handleStateChanged()

	case key.Matches(msg, m.keyMap.Delete):
		if conv := m.picker.Selected(); conv != nil {
			m.ctrl.Delete(conv.ID)
			m.picker.SetConversations(m.ctrl.Conversations(), m.ctrl.ActiveID())
		}
		return m.handleStateChanged()
	}

	return m, nil
}

// =============================================================================
// STATE HANDLERS
// =============================================================================

// handleSubmit kicks off a send round trip and reflects the optimistic
// append immediately.
func (m Model) handleSubmit(content string) (tea.Model, tea.Cmd) {
	cmd := m.sendCmd(content)

	m.state = StateWaiting
	m.statusBar.SetStatus(components.StatusWaiting)
	tickCmd := m.typing.Start()

	return m, tea.Batch(cmd, tickCmd)
}

// handleStateChanged re-reads controller state into every component.
func (m Model) handleStateChanged() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.ctrl.Pending() {
		m.state = StateWaiting
		m.statusBar.SetStatus(components.StatusWaiting)
		if !m.typing.IsActive() {
			cmd = m.typing.Start()
		}
	} else {
		m.state = StateReady
		m.statusBar.SetStatus(components.StatusReady)
		m.typing.Stop()
	}

	status := m.ctrl.GetStatus()
	m.statusBar.SessionID = status.SessionID
	m.statusBar.ConversationCount = status.Conversations

	if conv := m.activeConversation(); conv != nil {
		m.header.SetConversationTitle(conv.GetTitle())
	} else {
		m.header.SetConversationTitle("")
	}

	if m.showPicker {
		m.picker.SetConversations(m.ctrl.Conversations(), m.ctrl.ActiveID())
	}

	m.refreshViewport()
	return m, cmd
}
