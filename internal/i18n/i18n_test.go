// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"testing"
)

func TestGetConfig_Known(t *testing.T) {
	cfg := GetConfig("German")
	if cfg.Code != "de" || cfg.Slugs.About != "ueber-uns" {
		t.Errorf("German config = %+v", cfg)
	}
}

func TestGetConfig_FallsBackToSwedish(t *testing.T) {
	for _, lang := range []string{"", "Klingon", "swedish"} {
		cfg := GetConfig(lang)
		if cfg.Code != "sv" {
			t.Errorf("GetConfig(%q).Code = %q, want sv", lang, cfg.Code)
		}
	}
}

func TestInternalSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blog", "blogg"},
		{"blogg", "blogg"},
		{"about", "om-oss"},
		{"ueber-uns", "om-oss"},
		{"om-oss", "om-oss"},
		{"contact", "kontakt"},
		{"kontakt", "kontakt"},
		{"unknown-page", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := InternalSlug(tt.in); got != tt.want {
			t.Errorf("InternalSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("Norwegian") {
		t.Error("Norwegian should be supported")
	}
	if IsSupported("norwegian") {
		t.Error("language names are case-sensitive")
	}
}

func TestEveryLanguageHasCompleteLabels(t *testing.T) {
	for _, lang := range Languages() {
		cfg := GetConfig(string(lang))
		if cfg.Slugs.Blog == "" || cfg.Slugs.About == "" || cfg.Slugs.Contact == "" {
			t.Errorf("%s has empty slugs: %+v", lang, cfg.Slugs)
		}
		if cfg.Labels.ReadMore == "" || cfg.Labels.NoPosts == "" || cfg.Labels.AllPosts == "" {
			t.Errorf("%s has empty labels", lang)
		}
	}
}
