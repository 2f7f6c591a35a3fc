// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// A Conversation is a titled, ordered, append-only sequence of Messages.
// Messages are immutable once appended; message order equals append order
// and is never rewritten. Conversations and messages carry client-generated
// ids that are stable for their lifetime and never cross the wire.
package model
