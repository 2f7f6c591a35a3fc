// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the chat session controller.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexusai/nexus-tui/internal/model"
	"github.com/nexusai/nexus-tui/internal/nexus"
	"github.com/nexusai/nexus-tui/internal/store"
)

// FailureNotice is the fixed assistant message recorded when a send fails
// for any reason (backend unreachable, error status, malformed reply).
const FailureNotice = "NexusAI is unreachable right now. Check that the backend is running, then send your message again."

// Backend is the remote inference endpoint the controller talks to.
// nexus.Client satisfies it; tests substitute stubs.
type Backend interface {
	Chat(ctx context.Context, messages []nexus.Message) (string, error)
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller orchestrates conversation selection and the send/reconcile
// protocol against the backend.
//
// All store mutations are serialized on the controller mutex; the network
// call itself runs outside the lock, so other operations (switching,
// creating, deleting conversations, further sends) may interleave with an
// outstanding request. Reconciliation re-resolves the conversation by id,
// never through a captured reference, so an interleaved deletion turns the
// outcome into a no-op instead of a misdirected append.
type Controller struct {
	mu sync.Mutex

	store   *store.ConversationStore
	backend Backend

	// Session identity
	sessionID string
	startTime time.Time

	// Outstanding backend calls; pending is observable as inFlight > 0
	inFlight int

	// Fired after every observable mutation (messages, conversations,
	// active id, pending). Wired to the presentation layer's refresh
	// mechanism; may be nil.
	notify func()
}

// NewController creates a controller over the given store and backend.
func NewController(st *store.ConversationStore, backend Backend) *Controller {
	return &Controller{
		store:     st,
		backend:   backend,
		sessionID: "sess_" + uuid.NewString(),
		startTime: time.Now(),
	}
}

// SetNotify registers the callback fired after each observable mutation.
// The callback runs outside the controller lock.
func (c *Controller) SetNotify(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

func (c *Controller) notifyChanged() {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// =============================================================================
// SEND PROTOCOL
// =============================================================================

// Send runs the full send-message protocol for one user message: optimistic
// append, backend call, reconciliation. It blocks until the outcome is
// recorded and never returns an error; every outcome is visible only
// through the conversation's message list and the pending flag.
//
// Content that is empty after trimming is a no-op. If no conversation is
// active, one is created implicitly and titled from the message content.
func (c *Controller) Send(ctx context.Context, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	c.mu.Lock()
	conv := c.store.Active()
	if conv == nil {
		conv = c.store.Create(model.DeriveTitle(content))
		c.store.SetActive(conv.ID)
	}
	convID := conv.ID

	// Optimistic append, then snapshot the payload from the store state
	// inside the same critical section. The snapshot must include the
	// message just appended; building it from state captured earlier
	// drops the newest user message from the request.
	c.store.Append(convID, model.NewUserMessage(content))
	payload := conv.APIMessages()

	c.inFlight++
	c.mu.Unlock()
	c.notifyChanged()

	reply, err := c.backend.Chat(ctx, payload)

	c.mu.Lock()
	c.inFlight--
	if err != nil {
		reply = FailureNotice
	}
	// Re-resolve by id: a no-op if the conversation was deleted while the
	// request was in flight.
	c.store.Append(convID, model.NewAssistantMessage(reply))
	c.mu.Unlock()
	c.notifyChanged()
}

// =============================================================================
// CONVERSATION OPERATIONS
// =============================================================================

// NewConversation creates an empty conversation with the placeholder title
// and makes it active.
func (c *Controller) NewConversation() *model.Conversation {
	c.mu.Lock()
	conv := c.store.Create("")
	c.store.SetActive(conv.ID)
	c.mu.Unlock()
	c.notifyChanged()
	return conv
}

// Delete removes a conversation. Unknown ids are a no-op. Deleting the
// active conversation leaves no conversation active.
func (c *Controller) Delete(id string) {
	c.mu.Lock()
	c.store.Delete(id)
	c.mu.Unlock()
	c.notifyChanged()
}

// SetActive switches the active conversation. The id is not validated; an
// empty id means no active conversation.
func (c *Controller) SetActive(id string) {
	c.mu.Lock()
	c.store.SetActive(id)
	c.mu.Unlock()
	c.notifyChanged()
}

// =============================================================================
// OBSERVABLE STATE
// =============================================================================

// Pending reports whether at least one backend call is outstanding.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// ActiveID returns the active-conversation id, or "".
func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.ActiveID()
}

// ActiveMessages returns a snapshot of the active conversation's ordered
// message list. Messages are immutable, so sharing the elements is safe.
func (c *Controller) ActiveMessages() []*model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := c.store.ActiveMessages()
	out := make([]*model.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Conversations returns a snapshot of the conversation list, newest first.
func (c *Controller) Conversations() []*model.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.List()
}

// SessionID returns the id of this application session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time snapshot of session-wide state for display.
type Status struct {
	SessionID     string
	StartTime     time.Time
	Duration      time.Duration
	Conversations int
	Pending       bool
}

// GetStatus returns the current session status.
func (c *Controller) GetStatus() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		SessionID:     c.sessionID,
		StartTime:     c.startTime,
		Duration:      time.Since(c.startTime),
		Conversations: c.store.Len(),
		Pending:       c.inFlight > 0,
	}
}
