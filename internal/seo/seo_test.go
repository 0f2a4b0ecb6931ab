// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/vinterdal/bloggverk/internal/model"
)

func testSite(language string) *model.Website {
	return &model.Website{
		ID:              "w1",
		Name:            "Odlingsbloggen",
		Language:        language,
		MetaDescription: "En blogg om <em>odling</em>.",
	}
}

func testPosts() []*model.Post {
	return []*model.Post{
		{
			Slug:    "varsadd",
			Title:   "Vårsådd i mars",
			Excerpt: "<p>Så kommer du igång.</p>",
			PublishedAt: sql.NullTime{
				Time:  time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
				Valid: true,
			},
		},
		{Slug: "utan-datum", Title: "Odaterad"},
	}
}

func TestRSS(t *testing.T) {
	out, err := RSS(testSite("Swedish"), testPosts(), "https://odling.se/")
	if err != nil {
		t.Fatalf("RSS failed: %v", err)
	}
	feed := string(out)

	if !strings.HasPrefix(feed, "<?xml") {
		t.Error("missing XML header")
	}
	for _, want := range []string{
		"<title>Odlingsbloggen</title>",
		"<language>sv</language>",
		"<link>https://odling.se/blogg/varsadd</link>",
		"<guid>https://odling.se/blogg/varsadd</guid>",
		"<pubDate>Sun, 15 Mar 2026 08:00:00 +0000</pubDate>",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q\n%s", want, feed)
		}
	}
	if strings.Contains(feed, "<em>") {
		t.Error("markup leaked into the feed description")
	}
}

func TestRSS_LocalizedSlugs(t *testing.T) {
	out, err := RSS(testSite("English"), testPosts(), "https://blog.example.com")
	if err != nil {
		t.Fatalf("RSS failed: %v", err)
	}
	if !strings.Contains(string(out), "https://blog.example.com/blog/varsadd") {
		t.Error("English site should link posts under /blog/")
	}
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap(testSite("German"), testPosts(), "https://de.example.com")
	if err != nil {
		t.Fatalf("Sitemap failed: %v", err)
	}
	sm := string(out)

	for _, want := range []string{
		"http://www.sitemaps.org/schemas/sitemap/0.9",
		"<loc>https://de.example.com/</loc>",
		"<loc>https://de.example.com/blog</loc>",
		"<loc>https://de.example.com/ueber-uns</loc>",
		"<loc>https://de.example.com/kontakt</loc>",
		"<loc>https://de.example.com/blog/varsadd</loc>",
		"<lastmod>2026-03-15</lastmod>",
	} {
		if !strings.Contains(sm, want) {
			t.Errorf("sitemap missing %q\n%s", want, sm)
		}
	}
}

func TestSitemap_NoLastModWithoutDate(t *testing.T) {
	out, err := Sitemap(testSite("Swedish"), []*model.Post{{Slug: "p", Title: "P"}}, "https://x.se")
	if err != nil {
		t.Fatalf("Sitemap failed: %v", err)
	}
	if strings.Contains(string(out), "<lastmod>") {
		t.Error("undated post produced a lastmod entry")
	}
}

func TestRobots(t *testing.T) {
	got := Robots("https://odling.se")
	if !strings.Contains(got, "Sitemap: https://odling.se/sitemap.xml") {
		t.Errorf("robots.txt = %q", got)
	}
	if !strings.Contains(got, "User-agent: *") {
		t.Errorf("robots.txt = %q", got)
	}
}
