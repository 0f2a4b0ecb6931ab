// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// ReadingTime estimates reading time in whole minutes for HTML or plain
// text content, at wordsPerMinute (200 if zero or negative). Always at
// least one minute for non-empty content.
func ReadingTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	text := strings.TrimSpace(htmlTagRe.ReplaceAllString(content, ""))
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Truncate shortens text to at most maxLength runes, appending suffix when
// truncation happens. The suffix counts toward the limit.
func Truncate(text string, maxLength int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	cut := maxLength - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(runes[:cut])) + suffix
}

// StripHTML removes all markup tags, leaving text content.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}
