// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nexus provides the HTTP client for communicating with the NexusAI backend.
package nexus

// =============================================================================
// WIRE TYPES
// =============================================================================

// Message is a single chat message in the backend wire format.
// Only role and content cross the wire; message ids and timestamps are
// client-side concerns.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles accepted by the backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// NewUserMessage creates a user-role wire message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role wire message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ChatRequest is the request body for POST /api/chat.
// Messages are ordered oldest-first and carry the full conversation history
// up to and including the newest user message.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse is the success response body from POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// APIError is the error body the backend returns on non-2xx statuses.
type APIError struct {
	Detail string `json:"detail"`
}
