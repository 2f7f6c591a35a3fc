// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the nexus-tui.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nexusai/nexus-tui/internal/model"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
	"github.com/nexusai/nexus-tui/internal/util"
)

// =============================================================================
// CONVERSATION PICKER COMPONENT
// =============================================================================

// ConversationPicker is an overlay list for switching between conversations.
type ConversationPicker struct {
	conversations []*model.Conversation
	activeID      string
	selected      int
	width         int
	maxVisible    int
	theme         *styles.Theme
}

// NewConversationPicker creates an empty picker.
func NewConversationPicker(theme *styles.Theme) *ConversationPicker {
	return &ConversationPicker{
		width:      60,
		maxVisible: 10,
		theme:      theme,
	}
}

// SetConversations replaces the list, clamping the selection.
func (p *ConversationPicker) SetConversations(convs []*model.Conversation, activeID string) {
	p.conversations = convs
	p.activeID = activeID
	if p.selected >= len(convs) {
		p.selected = len(convs) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// SetWidth updates the picker width.
func (p *ConversationPicker) SetWidth(width int) {
	if width > 20 {
		p.width = width
	}
}

// MoveUp moves the selection up one entry.
func (p *ConversationPicker) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection down one entry.
func (p *ConversationPicker) MoveDown() {
	if p.selected < len(p.conversations)-1 {
		p.selected++
	}
}

// Selected returns the currently highlighted conversation, or nil.
func (p *ConversationPicker) Selected() *model.Conversation {
	if p.selected < 0 || p.selected >= len(p.conversations) {
		return nil
	}
	return p.conversations[p.selected]
}

// Len returns the number of listed conversations.
func (p *ConversationPicker) Len() int {
	return len(p.conversations)
}

// View renders the picker overlay box.
func (p *ConversationPicker) View() string {
	title := p.theme.PickerTitle.Render("Conversations")

	if len(p.conversations) == 0 {
		empty := p.theme.PickerMeta.Render("No conversations yet")
		return p.theme.PickerBox.Width(p.width).Render(title + "\n\n" + empty)
	}

	// Scroll window around the selection
	start := 0
	if p.selected >= p.maxVisible {
		start = p.selected - p.maxVisible + 1
	}
	end := start + p.maxVisible
	if end > len(p.conversations) {
		end = len(p.conversations)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, p.renderItem(p.conversations[i], i == p.selected))
	}

	hint := p.theme.PickerMeta.Render("enter: switch  d: delete  esc: close")

	body := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" + hint
	return p.theme.PickerBox.Width(p.width).Render(body)
}

// renderItem renders one conversation row.
func (p *ConversationPicker) renderItem(conv *model.Conversation, selected bool) string {
	itemWidth := p.width - 6
	if itemWidth < 20 {
		itemWidth = 20
	}

	marker := "  "
	if conv.ID == p.activeID {
		marker = styles.StatusIndicators.Active + " "
	}

	title := util.TruncateRunes(conv.GetTitle(), itemWidth-16)
	meta := fmt.Sprintf("%d msg", conv.MessageCount())

	gap := itemWidth - lipgloss.Width(marker+title) - lipgloss.Width(meta)
	if gap < 1 {
		gap = 1
	}

	row := marker + title + strings.Repeat(" ", gap) + meta

	if selected {
		return p.theme.PickerItemSelected.Render(row)
	}
	return p.theme.PickerItem.Render(row)
}
