// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli provides the line-mode chat REPL for nexus-tui.

The REPL covers terminals where the full-screen TUI cannot run (piped
stdin, dumb terminals) and the --plain flag. It drives the same session
controller as the TUI, so conversation semantics are identical: optimistic
user appends, implicit conversation creation, and failure notices recorded
as assistant messages.

Input uses peterh/liner for readline-style editing with a persistent
history file under the nexus config directory.
*/
package cli
