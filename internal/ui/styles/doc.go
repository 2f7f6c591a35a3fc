// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the nexus-tui application.

This package defines the color palette and the Theme type used throughout the
terminal UI. All colors use Lip Gloss AdaptiveColor for automatic light/dark
terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for assistant messages and selections
  - Cyan - Brand color for info, prompts, and user highlights
  - Emerald - Success states and the backend-online indicator
  - Amber - Warnings, pending states, failure notices
  - Rose - Errors and the backend-offline indicator

## Semantic Colors

Message bubbles use semantic color tokens:

	UserBubbleBg      - Background for user messages
	AssistantBubbleBg - Background for assistant messages
	NoticeBubbleBg    - Background for in-conversation failure notices

# Theme System (theme.go)

Theme holds every configured lipgloss.Style for the application. NewTheme
detects the terminal's color profile and dark/light background via termenv
and builds the full style set once at startup. Responsive layouts use
GetLayoutMode, which maps the terminal width onto narrow, medium, or wide.

# Accessibility

Status states always pair a color with an ASCII shape indicator
(StatusIndicators) so they remain readable for colorblind users and on
terminals without color support.
*/
package styles
