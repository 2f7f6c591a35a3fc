// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := []struct {
		name  string
		light string
		dark  string
	}{
		{"Purple", Purple.Light, Purple.Dark},
		{"Cyan", Cyan.Light, Cyan.Dark},
		{"Emerald", Emerald.Light, Emerald.Dark},
		{"Rose", Rose.Light, Rose.Dark},
		{"Amber", Amber.Light, Amber.Dark},
		{"Surface", Surface.Light, Surface.Dark},
		{"TextPrimary", TextPrimary.Light, TextPrimary.Dark},
		{"UserBubbleBg", UserBubbleBg.Light, UserBubbleBg.Dark},
		{"AssistantBubbleBg", AssistantBubbleBg.Light, AssistantBubbleBg.Dark},
		{"NoticeBubbleBg", NoticeBubbleBg.Light, NoticeBubbleBg.Dark},
	}

	for _, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s should define both light and dark variants", c.name)
		}
		if !strings.HasPrefix(c.light, "#") || !strings.HasPrefix(c.dark, "#") {
			t.Errorf("%s variants should be hex colors, got %q / %q", c.name, c.light, c.dark)
		}
	}
}

func TestBubbleColorsDistinct(t *testing.T) {
	// User, assistant and notice bubbles must be visually distinct
	if UserBubbleBg == AssistantBubbleBg {
		t.Error("user and assistant bubble backgrounds should differ")
	}
	if AssistantBubbleBg == NoticeBubbleBg {
		t.Error("assistant and notice bubble backgrounds should differ")
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicators(t *testing.T) {
	indicators := map[string]string{
		"Success": StatusIndicators.Success,
		"Error":   StatusIndicators.Error,
		"Warning": StatusIndicators.Warning,
		"Info":    StatusIndicators.Info,
		"Pending": StatusIndicators.Pending,
		"Active":  StatusIndicators.Active,
	}

	for name, symbol := range indicators {
		if symbol == "" {
			t.Errorf("indicator %s should be non-empty", name)
		}
		// ACCESSIBILITY: indicators must be plain ASCII
		for _, r := range symbol {
			if r > 127 {
				t.Errorf("indicator %s contains non-ASCII rune %q", name, r)
			}
		}
	}
}

func TestStatusIndicatorsUniqueness(t *testing.T) {
	seen := map[string]string{}
	for name, symbol := range map[string]string{
		"Success": StatusIndicators.Success,
		"Error":   StatusIndicators.Error,
		"Warning": StatusIndicators.Warning,
		"Info":    StatusIndicators.Info,
		"Pending": StatusIndicators.Pending,
		"Active":  StatusIndicators.Active,
	} {
		if prev, dup := seen[symbol]; dup {
			t.Errorf("indicators %s and %s share symbol %q", prev, name, symbol)
		}
		seen[symbol] = name
	}
}

// =============================================================================
// RENDER HELPER TESTS
// =============================================================================

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		symbol string
	}{
		{"RenderSuccess", RenderSuccess, StatusIndicators.Success},
		{"RenderError", RenderError, StatusIndicators.Error},
		{"RenderWarning", RenderWarning, StatusIndicators.Warning},
		{"RenderInfo", RenderInfo, StatusIndicators.Info},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.render("backend checked")
			if !strings.Contains(out, tc.symbol) {
				t.Errorf("%s output %q missing indicator %q", tc.name, out, tc.symbol)
			}
			if !strings.Contains(out, "backend checked") {
				t.Errorf("%s output %q lost the message", tc.name, out)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	ok := RenderStatus(true, "reachable")
	if !strings.Contains(ok, StatusIndicators.Success) {
		t.Errorf("success status missing success indicator: %q", ok)
	}

	bad := RenderStatus(false, "unreachable")
	if !strings.Contains(bad, StatusIndicators.Error) {
		t.Errorf("failure status missing error indicator: %q", bad)
	}
}

func TestRenderHelpersEmptyString(t *testing.T) {
	// Must not panic on empty input
	for _, render := range []func(string) string{RenderSuccess, RenderError, RenderWarning, RenderInfo} {
		if out := render(""); out == "" {
			t.Error("render helper should still emit the indicator for empty messages")
		}
	}
}
