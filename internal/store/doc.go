// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory conversation collection for a session.
//
// ConversationStore owns every Conversation and Message instance
// exclusively; other components hold only by-id references. Mutations are
// atomic primitives (create, delete, append, set-active) that keep the
// active-conversation reference consistent with the collection.
//
// The store carries no locking of its own. The session controller is the
// single writer and serializes access; see the session package.
//
// Conversations live for the application session only. There is no
// persistence across restarts.
package store
