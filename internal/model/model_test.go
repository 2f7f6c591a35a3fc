// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	before := time.Now()
	msg := NewUserMessage("hello")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want user", msg.Role)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want hello", msg.Content)
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID = %q, want msg_ prefix", msg.ID)
	}
	if msg.Timestamp.Before(before) {
		t.Error("Timestamp should be set at creation")
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "NexusAI"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewAssistantMessage("a long assistant reply that keeps going")
	if got := msg.Preview(10); got != "a long ..." {
		t.Errorf("Preview(10) = %q", got)
	}

	short := NewAssistantMessage("hi")
	if got := short.Preview(10); got != "hi" {
		t.Errorf("Preview(10) = %q, want unchanged", got)
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation(t *testing.T) {
	conv := NewConversation("")

	if !strings.HasPrefix(conv.ID, "conv_") {
		t.Errorf("ID = %q, want conv_ prefix", conv.ID)
	}
	if conv.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", conv.Title, DefaultTitle)
	}
	if !conv.IsEmpty() {
		t.Error("new conversation should be empty")
	}
	if conv.CreatedAt != conv.UpdatedAt {
		t.Error("CreatedAt should equal UpdatedAt at creation")
	}
}

func TestNewConversation_SeedTitle(t *testing.T) {
	conv := NewConversation("what is TCP?")
	if conv.Title != "what is TCP?" {
		t.Errorf("Title = %q", conv.Title)
	}
}

func TestConversation_AddMessage(t *testing.T) {
	conv := NewConversation("")
	created := conv.UpdatedAt

	time.Sleep(time.Millisecond)
	conv.AddMessage(NewUserMessage("first"))
	conv.AddMessage(NewAssistantMessage("second"))

	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want 2", conv.MessageCount())
	}
	if conv.Messages[0].Content != "first" || conv.Messages[1].Content != "second" {
		t.Error("messages should keep append order")
	}
	if !conv.UpdatedAt.After(created) {
		t.Error("UpdatedAt should advance on append")
	}
	if conv.GetLastMessage().Content != "second" {
		t.Errorf("GetLastMessage = %q", conv.GetLastMessage().Content)
	}
}

func TestConversation_APIMessages(t *testing.T) {
	conv := NewConversation("")
	conv.AddMessage(NewUserMessage("u1"))
	conv.AddMessage(NewAssistantMessage("a1"))
	conv.AddMessage(NewUserMessage("u2"))

	wire := conv.APIMessages()
	if len(wire) != 3 {
		t.Fatalf("len = %d, want 3", len(wire))
	}

	wantRoles := []string{"user", "assistant", "user"}
	wantContent := []string{"u1", "a1", "u2"}
	for i := range wire {
		if wire[i].Role != wantRoles[i] {
			t.Errorf("wire[%d].Role = %q, want %q", i, wire[i].Role, wantRoles[i])
		}
		if wire[i].Content != wantContent[i] {
			t.Errorf("wire[%d].Content = %q, want %q", i, wire[i].Content, wantContent[i])
		}
	}
}

// =============================================================================
// TITLE TESTS
// =============================================================================

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short content unchanged", "hello", "hello"},
		{"exactly thirty runes unchanged", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"longer content keeps thirty runes plus ellipsis", strings.Repeat("a", 31), strings.Repeat("a", 30) + "..."},
		{"newlines flattened", "line one\nline two", "line one line two"},
		{"unicode counted by rune", strings.Repeat("é", 35), strings.Repeat("é", 30) + "..."},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveTitle(tc.content); got != tc.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}

func TestConversation_GetTitle(t *testing.T) {
	conv := NewConversation("")
	if conv.GetTitle() != DefaultTitle {
		t.Errorf("GetTitle = %q", conv.GetTitle())
	}

	conv.Title = "custom"
	if conv.GetTitle() != "custom" {
		t.Errorf("GetTitle = %q", conv.GetTitle())
	}
}

func TestConversation_Preview(t *testing.T) {
	conv := NewConversation("")
	if conv.Preview() != "Empty conversation" {
		t.Errorf("Preview = %q", conv.Preview())
	}

	conv.AddMessage(NewUserMessage("explain virtual memory"))
	if conv.Preview() != "explain virtual memory" {
		t.Errorf("Preview = %q", conv.Preview())
	}
}
