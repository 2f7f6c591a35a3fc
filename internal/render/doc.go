// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render formats assistant output for terminal display.
//
// Two rendering paths exist: Markdown wraps a glamour terminal renderer
// for the full-screen TUI, and Inline maps basic emphasis spans onto
// lipgloss attributes for the line-mode REPL. Both degrade to the raw
// text rather than failing.
package render
