// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"testing"

	"github.com/nexusai/nexus-tui/internal/config"
	"github.com/nexusai/nexus-tui/internal/nexus"
	"github.com/nexusai/nexus-tui/internal/session"
	"github.com/nexusai/nexus-tui/internal/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fixedBackend struct {
	reply string
}

func (b *fixedBackend) Chat(ctx context.Context, messages []nexus.Message) (string, error) {
	return b.reply, nil
}

// newTestREPL builds a REPL without touching the liner or history file.
func newTestREPL() (*REPL, *session.Controller) {
	ctrl := session.NewController(store.New(), &fixedBackend{reply: "ok"})
	return &REPL{
		ctrl:   ctrl,
		client: nexus.NewClient(),
		cfg:    config.Default(),
	}, ctrl
}

// =============================================================================
// SLASH COMMAND TESTS
// =============================================================================

func TestSlashCommandQuit(t *testing.T) {
	r, _ := newTestREPL()

	for _, cmd := range []string{"/quit", "/q", "/exit"} {
		keepGoing, err := r.handleSlashCommand(cmd)
		if err != nil {
			t.Errorf("%s returned error: %v", cmd, err)
		}
		if keepGoing {
			t.Errorf("%s should stop the loop", cmd)
		}
	}
}

func TestSlashCommandNew(t *testing.T) {
	r, ctrl := newTestREPL()

	keepGoing, err := r.handleSlashCommand("/new")
	if err != nil {
		t.Fatalf("/new returned error: %v", err)
	}
	if !keepGoing {
		t.Error("/new should keep the loop running")
	}
	if len(ctrl.Conversations()) != 1 {
		t.Errorf("conversations = %d, want 1", len(ctrl.Conversations()))
	}
}

func TestSlashCommandSwitchByIndex(t *testing.T) {
	r, ctrl := newTestREPL()
	first := ctrl.NewConversation()
	ctrl.NewConversation() // second is now active

	// Listing is newest first: index 2 is the older conversation
	if _, err := r.handleSlashCommand("/switch 2"); err != nil {
		t.Fatalf("/switch returned error: %v", err)
	}

	if ctrl.ActiveID() != first.ID {
		t.Errorf("active = %q, want %q", ctrl.ActiveID(), first.ID)
	}
}

func TestSlashCommandSwitchBadIndex(t *testing.T) {
	r, ctrl := newTestREPL()
	ctrl.NewConversation()

	for _, arg := range []string{"/switch 0", "/switch 9", "/switch x", "/switch"} {
		if _, err := r.handleSlashCommand(arg); err == nil {
			t.Errorf("%q should fail", arg)
		}
	}
}

func TestSlashCommandDelete(t *testing.T) {
	r, ctrl := newTestREPL()
	ctrl.NewConversation()

	if _, err := r.handleSlashCommand("/delete 1"); err != nil {
		t.Fatalf("/delete returned error: %v", err)
	}
	if len(ctrl.Conversations()) != 0 {
		t.Errorf("conversations = %d, want 0", len(ctrl.Conversations()))
	}
}

func TestSlashCommandUnknown(t *testing.T) {
	r, _ := newTestREPL()

	keepGoing, err := r.handleSlashCommand("/nonsense")
	if err == nil {
		t.Error("unknown command should error")
	}
	if !keepGoing {
		t.Error("unknown command should not stop the loop")
	}
}

// =============================================================================
// MESSAGE FLOW TESTS
// =============================================================================

func TestProcessMessageAppendsRoundTrip(t *testing.T) {
	r, ctrl := newTestREPL()

	r.processMessage(context.Background(), "hello")

	messages := ctrl.ActiveMessages()
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want user + assistant", len(messages))
	}
	if messages[0].Content != "hello" {
		t.Errorf("first message = %q, want user content", messages[0].Content)
	}
	if messages[1].Content != "ok" {
		t.Errorf("second message = %q, want backend reply", messages[1].Content)
	}
}
