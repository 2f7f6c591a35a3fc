// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeaderShowsBrand(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)

	view := h.View()
	if !strings.Contains(view, "NexusAI") {
		t.Errorf("header should contain the brand name, got: %q", view)
	}
}

func TestHeaderShowsConversationTitle(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)
	h.SetConversationTitle("Trip planning")

	view := h.View()
	if !strings.Contains(view, "Trip planning") {
		t.Errorf("header should contain the conversation title, got: %q", view)
	}
}

func TestHeaderTruncatesLongTitle(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(40)
	long := strings.Repeat("x", 200)
	h.SetConversationTitle(long)

	view := h.View()
	if strings.Contains(view, long) {
		t.Error("header should truncate titles wider than the header")
	}
}

func TestHeaderShowsBackendURL(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)
	h.SetBackendURL("http://127.0.0.1:8000")

	view := h.View()
	if !strings.Contains(view, "127.0.0.1:8000") {
		t.Errorf("header should contain the backend URL, got: %q", view)
	}
}

func TestHeaderViewCompact(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)
	h.SetConversationTitle("quick question")

	compact := h.ViewCompact()
	if !strings.Contains(compact, "NexusAI") {
		t.Errorf("compact header should contain the brand name, got: %q", compact)
	}
	if strings.Count(compact, "\n") > 0 {
		t.Error("compact header should render on a single line")
	}
}
