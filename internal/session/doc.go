// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the chat session controller.
//
// The controller owns the send-message protocol: it appends the user's
// message optimistically, ships the full conversation history to the
// backend, and reconciles the outcome — the assistant's reply on success, a
// fixed failure notice otherwise — back into the conversation. Failures are
// recorded as visible messages, never surfaced as errors to the caller.
//
// A pending flag is held for exactly the lifetime of each backend call and
// released on every exit path. Concurrent sends are permitted; their
// completion order is unspecified, but appends serialize on the controller
// mutex so message order within a conversation always equals append order.
//
// Observers register a notify callback that fires after every observable
// mutation; the TUI wires it to the Bubble Tea program's message queue.
package session
