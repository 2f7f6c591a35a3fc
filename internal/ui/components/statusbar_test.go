// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusWaiting, "Waiting..."},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusBarBackendBadge(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(100)

	sb.SetBackend("http://127.0.0.1:8000", true)
	if view := sb.View(); !strings.Contains(view, "online") {
		t.Errorf("status bar missing online badge: %q", view)
	}

	sb.SetBackend("http://127.0.0.1:8000", false)
	if view := sb.View(); !strings.Contains(view, "offline") {
		t.Errorf("status bar missing offline badge: %q", view)
	}
}

func TestStatusBarWaiting(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(100)
	sb.SetStatus(StatusWaiting)

	if view := sb.View(); !strings.Contains(view, "Waiting") {
		t.Errorf("status bar missing waiting state: %q", view)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(40)
	sb.SessionID = "sess_0123456789abcdef"
	sb.ConversationCount = 3

	// Narrow bar drops session and conversation details
	view := sb.View()
	if strings.Contains(view, "sess_") {
		t.Errorf("narrow bar should omit session id: %q", view)
	}
}

func TestStatusBarWideShowsSession(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(120)
	sb.SessionID = "sess_0123456789abcdef"
	sb.ConversationCount = 2

	view := sb.View()
	if !strings.Contains(view, "sess_") {
		t.Errorf("wide bar should show session id: %q", view)
	}
	if !strings.Contains(view, "2 conversation(s)") {
		t.Errorf("wide bar should show conversation count: %q", view)
	}
}
