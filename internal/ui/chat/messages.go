// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Session: conversation state change notifications from the controller
//   - Backend: health checks and connectivity status
//   - Input: user input submission
//   - Errors: error display and dismissal
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import "time"

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// StateChangedMsg signals that conversation state changed and views need a
// refresh. The session controller fires it through its notify hook after
// every append, conversation switch, create, or delete.
type StateChangedMsg struct{}

// =============================================================================
// BACKEND MESSAGES
// =============================================================================

// BackendCheckMsg requests a backend health check.
type BackendCheckMsg struct{}

// BackendStatusMsg reports backend connection status.
type BackendStatusMsg struct {
	Running bool
	Error   error
}

// HealthTickMsg drives the periodic backend health check.
type HealthTickMsg struct {
	Time time.Time
}

// =============================================================================
// INPUT MESSAGES
// =============================================================================

// SubmitInputMsg signals that the user submitted input.
type SubmitInputMsg struct {
	Content string
}

// ClearInputMsg signals that input should be cleared.
type ClearInputMsg struct{}

// =============================================================================
// ERROR MESSAGES
// =============================================================================

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Title   string
	Message string
}

// ErrorDismissMsg dismisses the current error display.
type ErrorDismissMsg struct{}
