// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/nexusai/nexus-tui/internal/model"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// CONVERSATION PICKER TESTS
// =============================================================================

func pickerConversations(titles ...string) []*model.Conversation {
	var convs []*model.Conversation
	for _, title := range titles {
		convs = append(convs, model.NewConversation(title))
	}
	return convs
}

func TestPickerEmpty(t *testing.T) {
	p := NewConversationPicker(styles.NewTheme())

	view := p.View()
	if !strings.Contains(view, "No conversations yet") {
		t.Errorf("empty picker should show placeholder, got %q", view)
	}
	if p.Selected() != nil {
		t.Error("Selected() on empty picker should be nil")
	}
}

func TestPickerSelection(t *testing.T) {
	p := NewConversationPicker(styles.NewTheme())
	convs := pickerConversations("alpha", "beta", "gamma")
	p.SetConversations(convs, convs[0].ID)

	if got := p.Selected(); got != convs[0] {
		t.Errorf("initial selection = %v, want first entry", got)
	}

	p.MoveDown()
	if got := p.Selected(); got != convs[1] {
		t.Error("MoveDown should advance the selection")
	}

	p.MoveDown()
	p.MoveDown() // already at the end
	if got := p.Selected(); got != convs[2] {
		t.Error("MoveDown should clamp at the last entry")
	}

	p.MoveUp()
	if got := p.Selected(); got != convs[1] {
		t.Error("MoveUp should retreat the selection")
	}
}

func TestPickerSelectionClampedOnShrink(t *testing.T) {
	p := NewConversationPicker(styles.NewTheme())
	convs := pickerConversations("a", "b", "c")
	p.SetConversations(convs, "")
	p.MoveDown()
	p.MoveDown()

	// List shrinks under the selection
	p.SetConversations(convs[:1], "")
	if got := p.Selected(); got != convs[0] {
		t.Errorf("selection should clamp to remaining entries, got %v", got)
	}
}

func TestPickerViewShowsTitles(t *testing.T) {
	p := NewConversationPicker(styles.NewTheme())
	convs := pickerConversations("First topic", "Second topic")
	p.SetConversations(convs, convs[1].ID)
	p.SetWidth(60)

	view := p.View()
	if !strings.Contains(view, "First topic") || !strings.Contains(view, "Second topic") {
		t.Errorf("picker dropped titles: %q", view)
	}
	if !strings.Contains(view, styles.StatusIndicators.Active) {
		t.Errorf("picker missing active marker: %q", view)
	}
}
