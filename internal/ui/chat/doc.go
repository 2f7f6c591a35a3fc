// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the full-screen chat view for the nexus-tui application.

The package implements a Bubble Tea model composed from the components
package. It owns no conversation data: every render reads a fresh snapshot
from the session controller, and every mutation goes through controller
operations (Send, NewConversation, SetActive, Delete).

# Architecture

	model.go    - Model struct, constructor, async commands
	update.go   - Update loop: keyboard dispatch and state handlers
	view.go     - Layout composition and viewport content
	messages.go - Bubble Tea message types
	keys.go     - Key bindings and help text

# Data Flow

User input follows one path: Enter submits the trimmed input, sendCmd runs
the controller round trip off the UI goroutine, and the controller's notify
hook pushes StateChangedMsg back into the program. The transcript viewport
is rebuilt from controller state on every such message, so the optimistic
user append shows up before the backend reply arrives and the typing
indicator tracks the controller's pending flag rather than local guesses.

Backend connectivity is polled on a fixed interval and only affects the
status bar and welcome screen; sending is never blocked on a health check.
*/
package chat
