// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package color implements WCAG 2.0 contrast math and automatic repair of
// generated color schemes. Model-suggested palettes are never rejected:
// non-conformant fields are overwritten with safe fallbacks instead.
package color

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Fallback constants used by ValidateScheme. They are mutually safe: every
// pair of them passes the rule that could select it, so a single repair pass
// always converges (verified in tests).
const (
	FallbackBackground = "#ffffff"
	FallbackText       = "#1f2937"
	FallbackSecondary  = "#f3f4f6"
	FallbackPrimary    = "#2563eb"
)

// WCAG AA thresholds.
const (
	MinTextContrast  = 4.5 // normal text on background
	MinLargeContrast = 3.0 // large text / headings
)

var hexRe = regexp.MustCompile(`^#?([a-fA-F0-9]{2})([a-fA-F0-9]{2})([a-fA-F0-9]{2})$`)

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a #rrggbb color. The leading # is optional.
func ParseHex(hex string) (RGB, bool) {
	m := hexRe.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return RGB{}, false
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// Luminance returns the WCAG 2.0 relative luminance of a hex color in [0,1].
// Unparseable colors report 0 so they read as maximally dark.
func Luminance(hex string) float64 {
	rgb, ok := ParseHex(hex)
	if !ok {
		return 0
	}
	lin := func(c uint8) float64 {
		s := float64(c) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(rgb.R) + 0.7152*lin(rgb.G) + 0.0722*lin(rgb.B)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors,
// in [1, 21]. The ratio is symmetric in its arguments.
func ContrastRatio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	brightest := math.Max(la, lb)
	darkest := math.Min(la, lb)
	return (brightest + 0.05) / (darkest + 0.05)
}

// MeetsAA reports whether foreground on background satisfies WCAG AA.
func MeetsAA(foreground, background string, largeText bool) bool {
	ratio := ContrastRatio(foreground, background)
	if largeText {
		return ratio >= MinLargeContrast
	}
	return ratio >= MinTextContrast
}

// Scheme is a candidate five-color design scheme.
type Scheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
}

// ValidateScheme repairs a candidate scheme in place and returns it.
// The check order matters: background and text are stabilized first so the
// later secondary and primary checks run against the corrected values.
// Each repair is logged as a warning; the result is always usable.
func ValidateScheme(logger *slog.Logger, s Scheme) Scheme {
	if logger == nil {
		logger = slog.Default()
	}

	if lum := Luminance(s.Background); lum < 0.85 {
		logger.Warn("background color too dark, replacing",
			"color", s.Background, "luminance", fmt.Sprintf("%.2f", lum))
		s.Background = FallbackBackground
	}

	if lum := Luminance(s.Text); lum > 0.3 {
		logger.Warn("text color too light, replacing",
			"color", s.Text, "luminance", fmt.Sprintf("%.2f", lum))
		s.Text = FallbackText
	}

	if ratio := ContrastRatio(s.Text, s.Background); ratio < MinTextContrast {
		logger.Warn("text/background contrast below AA, forcing dark text",
			"ratio", fmt.Sprintf("%.2f", ratio))
		s.Text = FallbackText
	}

	// Secondary is used as a background surface in several template
	// variants, so it must stay light and readable under the text color.
	if Luminance(s.Secondary) < 0.8 || ContrastRatio(s.Text, s.Secondary) < MinTextContrast {
		logger.Warn("secondary color too dark or low contrast, replacing",
			"color", s.Secondary)
		s.Secondary = FallbackSecondary
	}

	if ratio := ContrastRatio(s.Primary, s.Background); ratio < MinLargeContrast {
		logger.Warn("primary/background contrast below AA large-text, replacing",
			"ratio", fmt.Sprintf("%.2f", ratio))
		s.Primary = FallbackPrimary
	}

	if ratio := ContrastRatio(s.Primary, s.Secondary); ratio < MinLargeContrast {
		logger.Warn("primary/secondary contrast below AA large-text, replacing",
			"ratio", fmt.Sprintf("%.2f", ratio))
		s.Primary = FallbackPrimary
	}

	return s
}
