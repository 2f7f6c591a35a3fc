// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file renders the chat layout: header, transcript viewport, typing
// indicator, input area, and status bar, with the conversation picker as
// an overlay.
package chat

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusai/nexus-tui/internal/model"
	"github.com/nexusai/nexus-tui/internal/session"
	"github.com/nexusai/nexus-tui/internal/ui/components"
)

// View renders the complete chat interface.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	typing := m.renderTyping()
	input := m.renderInput()
	status := m.statusBar.View()

	sections := []string{header, body}
	if typing != "" {
		sections = append(sections, typing)
	}
	sections = append(sections, input, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) renderHeader() string {
	if m.height < 20 {
		return m.header.ViewCompact()
	}
	return m.header.View()
}

// renderBody shows the picker overlay, an error box, the welcome screen, or
// the conversation transcript.
func (m Model) renderBody() string {
	if m.showPicker {
		return lipgloss.Place(
			m.width, m.viewport.Height,
			lipgloss.Center, lipgloss.Center,
			m.picker.View(),
		)
	}

	if m.state == StateError && m.lastError != nil {
		return m.renderError()
	}

	if len(m.ctrl.ActiveMessages()) == 0 && !m.ctrl.Pending() {
		return m.welcome.View()
	}

	return m.viewport.View()
}

func (m Model) renderError() string {
	title := m.theme.ErrorTitle.Render(m.lastError.Title)
	message := m.theme.ErrorMessage.Render(m.lastError.Message)
	tip := m.theme.ErrorTip.Render("Press any key to dismiss")

	box := m.theme.ErrorBox.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", tip))

	return lipgloss.Place(
		m.width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) renderTyping() string {
	if !m.typing.IsActive() {
		return ""
	}
	return m.theme.Container.Render(m.typing.View())
}

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// =============================================================================
// VIEWPORT CONTENT
// =============================================================================

// refreshViewport rebuilds the transcript and pins the view to the newest
// message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	messages := m.ctrl.ActiveMessages()

	list := components.NewMessageList(m.theme)
	list.SetWidth(m.viewport.Width - 2)
	list.SetMessages(messages)
	list.NoticeText = session.FailureNotice
	if m.cfg.UI.Markdown {
		list.ContentFunc = m.markdown.Render
	}

	m.viewport.SetContent(list.View())
	m.viewport.GotoBottom()
}

// activeConversation finds the active conversation, or nil when none exists.
func (m Model) activeConversation() *model.Conversation {
	activeID := m.ctrl.ActiveID()
	if activeID == "" {
		return nil
	}
	for _, conv := range m.ctrl.Conversations() {
		if conv.ID == activeID {
			return conv
		}
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
