// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN TESTS
// =============================================================================

func TestWelcomeShowsVersion(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetVersion("1.2.3")
	w.SetSize(80, 24)

	view := w.View()
	if !strings.Contains(view, "nexus-tui 1.2.3") {
		t.Errorf("welcome should contain the version line, got: %q", view)
	}
}

func TestWelcomeDefaultVersion(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(80, 24)

	if !strings.Contains(w.View(), "nexus-tui dev") {
		t.Error("welcome should fall back to the dev version string")
	}
}

func TestWelcomeBackendStatus(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(100, 30)

	w.SetBackend("http://127.0.0.1:8000", true)
	if !strings.Contains(w.View(), "backend online") {
		t.Error("welcome should report the backend as online")
	}

	w.SetBackend("http://127.0.0.1:8000", false)
	if !strings.Contains(w.View(), "backend offline") {
		t.Error("welcome should report the backend as offline")
	}
}

func TestWelcomeShowsStartHint(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(80, 24)

	view := w.View()
	if !strings.Contains(view, "Enter") {
		t.Errorf("welcome should mention the Enter key, got: %q", view)
	}
}

func TestWelcomeUpdateResizes(t *testing.T) {
	w := NewWelcome(styles.NewTheme())

	w, cmd := w.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd != nil {
		t.Error("resize should not produce a command")
	}
	if w.width != 120 || w.height != 40 {
		t.Errorf("expected size 120x40, got %dx%d", w.width, w.height)
	}
}

func TestWelcomeZeroSizeStillRenders(t *testing.T) {
	w := NewWelcome(styles.NewTheme())

	view := w.View()
	if view == "" {
		t.Error("welcome should render with default dimensions before the first resize")
	}
}
