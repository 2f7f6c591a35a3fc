// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the nexus-tui application.

This package contains a collection of styled components built on top of the
Bubble Tea and Lip Gloss libraries. Each component is consistent with the
nexus-tui design language defined in the styles package.

# Display Components

Header (header.go) - Application header with brand, conversation title, and backend URL.
StatusBar (statusbar.go) - Bottom status bar with backend state, session info, and shortcuts.
MessageBubble (message.go) - Styled message bubbles for user, assistant, and notice messages.
Welcome (welcome.go) - Welcome screen shown before the first message.

# Interactive Components

ConversationPicker (picker.go) - Overlay list for switching and deleting conversations.

# Progress and Feedback

Spinner (spinner.go) - Animated ASCII spinner with elapsed-time display.
TypingIndicator (spinner.go) - Spinner variant shown while a chat request is in flight.

# Design Principles

Components hold no application state beyond what they display. The chat model
owns conversation data and pushes snapshots into components before rendering.
All indicators pair color with ASCII shapes for colorblind accessibility.
*/
package components
