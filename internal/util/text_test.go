// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	if got := ReadingTime("", 200); got != 0 {
		t.Errorf("empty content = %d, want 0", got)
	}
	if got := ReadingTime("<p></p>", 200); got != 0 {
		t.Errorf("markup-only content = %d, want 0", got)
	}
	if got := ReadingTime("just a few words", 200); got != 1 {
		t.Errorf("short content = %d, want 1", got)
	}

	long := strings.Repeat("ord ", 450)
	if got := ReadingTime(long, 200); got != 3 {
		t.Errorf("450 words at 200 wpm = %d, want 3", got)
	}

	// Zero wpm falls back to 200.
	if got := ReadingTime(long, 0); got != 3 {
		t.Errorf("default wpm = %d, want 3", got)
	}
}

func TestReadingTime_IgnoresTags(t *testing.T) {
	html := "<h2>Rubrik</h2><p>" + strings.Repeat("ord ", 199) + "</p>"
	if got := ReadingTime(html, 200); got != 1 {
		t.Errorf("200 words in HTML = %d, want 1", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10, "..."); got != "short" {
		t.Errorf("under limit = %q", got)
	}
	got := Truncate("en lång text som ska kortas ner", 10, "...")
	if got != "en lång..." {
		t.Errorf("truncated = %q, want %q", got, "en lång...")
	}
	if len([]rune(got)) > 10 {
		t.Errorf("result exceeds limit: %q", got)
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	in := strings.Repeat("ö", 20)
	got := Truncate(in, 10, "…")
	if len([]rune(got)) != 10 {
		t.Errorf("rune length = %d, want 10", len([]rune(got)))
	}
}

func TestStripHTML(t *testing.T) {
	if got := StripHTML("<p>Hej <strong>du</strong></p>"); got != "Hej du" {
		t.Errorf("StripHTML = %q", got)
	}
}
