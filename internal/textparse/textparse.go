// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package textparse extracts typed records from free-text model output.
// The model is not schema-constrained, so parsing is lenient by contract:
// it can under-populate but never fail.
package textparse

import (
	"strings"
)

// Result holds parsed values plus the set of keys that fell back to their
// caller-supplied defaults. UsedDefaults lets callers and tests distinguish
// "model followed the schema" from "model was ignored" without changing the
// lenient external contract.
type Result struct {
	Values       map[string]string
	UsedDefaults map[string]bool
}

// Get returns the parsed value for key, or the empty string.
func (r Result) Get(key string) string {
	return r.Values[key]
}

// Parse scans raw for lines of the form "KEY: value" where KEY is an exact,
// case-sensitive match against a schema key. The remainder after the first
// colon is trimmed; anything from a parenthetical comment marker "(" onward
// is discarded. Duplicate keys: last occurrence wins. Keys absent from the
// input keep their schema default.
func Parse(raw string, schema map[string]string) Result {
	res := Result{
		Values:       make(map[string]string, len(schema)),
		UsedDefaults: make(map[string]bool, len(schema)),
	}
	for key, def := range schema {
		res.Values[key] = def
		res.UsedDefaults[key] = true
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		idx := strings.Index(trimmed, ":")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:idx])
		if _, ok := schema[key]; !ok {
			continue
		}
		value := trimmed[idx+1:]
		if paren := strings.Index(value, "("); paren >= 0 {
			value = value[:paren]
		}
		res.Values[key] = strings.TrimSpace(value)
		res.UsedDefaults[key] = false
	}

	return res
}

// StripFences removes Markdown code-fence wrapping from a raw model
// response. Fences labeled html and bare triple-backtick fences are both
// handled; inline occurrences are removed as well since models sometimes
// fence only part of an answer.
func StripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
