// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nexus provides the HTTP client for communicating with the NexusAI backend.
//
// The backend exposes a single chat-completion endpoint: the client POSTs
// the full conversation history (oldest first) and receives the assistant's
// reply as plain text.
//
// # Key Types
//
//   - Client: HTTP client for the backend API
//   - Message: Chat message wire format ({role, content} only)
//   - ChatRequest: Request body for POST /api/chat
//   - ChatResponse: Success body carrying the reply text
//   - ClientError: Typed error with a category for handling
//
// # Usage
//
// Create a client and send a chat request:
//
//	client := nexus.NewClient()
//	reply, err := client.Chat(ctx, []nexus.Message{
//	    {Role: "user", Content: "Hello"},
//	})
//
// All failures (unreachable backend, non-2xx status, malformed body) come
// back as *ClientError; use IsUnreachable/IsTimeout or errors.As to
// distinguish categories when needed.
//
// Outbound calls are throttled with a token-bucket limiter because the
// backend fronts a shared free-tier inference provider.
package nexus
