// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory conversation collection for a session.
package store

import (
	"time"

	"github.com/nexusai/nexus-tui/internal/model"
)

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// ConversationStore is the authoritative in-memory set of conversations for
// one application session, plus the active-conversation reference.
//
// The store is a pure data structure: no I/O and no internal locking. All
// mutations flow through a single writer (the session controller), which
// owns the serialization discipline.
type ConversationStore struct {
	conversations []*model.Conversation
	activeID      string
}

// New creates an empty conversation store.
func New() *ConversationStore {
	return &ConversationStore{
		conversations: make([]*model.Conversation, 0),
	}
}

// =============================================================================
// MUTATION PRIMITIVES
// =============================================================================

// Create allocates a new conversation and prepends it to the collection.
// An empty seedTitle yields the default placeholder title.
func (s *ConversationStore) Create(seedTitle string) *model.Conversation {
	conv := model.NewConversation(seedTitle)
	s.conversations = append([]*model.Conversation{conv}, s.conversations...)
	return conv
}

// Delete removes the conversation with the given id. Deleting an unknown id
// is a no-op, not an error. If the deleted conversation was active, the
// active reference is cleared.
func (s *ConversationStore) Delete(id string) {
	for i, conv := range s.conversations {
		if conv.ID == id {
			s.conversations = append(s.conversations[:i], s.conversations[i+1:]...)
			if s.activeID == id {
				s.activeID = ""
			}
			return
		}
	}
}

// Append appends a message to the conversation with the given id and bumps
// its UpdatedAt. Appending to an unknown id is a silent no-op: the caller
// contract is to avoid it, but an interleaved deletion during an in-flight
// request must not become an error.
func (s *ConversationStore) Append(conversationID string, msg *model.Message) {
	conv := s.Get(conversationID)
	if conv == nil {
		return
	}
	conv.AddMessage(msg)
}

// Touch bumps a conversation's UpdatedAt without appending.
func (s *ConversationStore) Touch(conversationID string) {
	if conv := s.Get(conversationID); conv != nil {
		conv.UpdatedAt = time.Now()
	}
}

// SetActive sets the active-conversation reference. The id is not validated:
// an unknown id behaves like "no active conversation" (empty message view).
// An empty id clears the reference.
func (s *ConversationStore) SetActive(id string) {
	s.activeID = id
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Get returns the conversation with the given id, or nil.
func (s *ConversationStore) Get(id string) *model.Conversation {
	if id == "" {
		return nil
	}
	for _, conv := range s.conversations {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

// ActiveID returns the active-conversation id, or "" when none is active.
func (s *ConversationStore) ActiveID() string {
	return s.activeID
}

// Active returns the active conversation, or nil when none is active or the
// reference is stale.
func (s *ConversationStore) Active() *model.Conversation {
	return s.Get(s.activeID)
}

// ActiveMessages returns the ordered message list of the active
// conversation, or an empty slice when no conversation is active.
func (s *ConversationStore) ActiveMessages() []*model.Message {
	conv := s.Active()
	if conv == nil {
		return []*model.Message{}
	}
	return conv.Messages
}

// List returns the conversations in insertion order, newest first.
// The returned slice is a copy; the conversations themselves are shared.
func (s *ConversationStore) List() []*model.Conversation {
	out := make([]*model.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// Len returns the number of conversations.
func (s *ConversationStore) Len() int {
	return len(s.conversations)
}
