// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the per-tenant search surfaces: RSS feed, sitemap and
// robots.txt.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/vinterdal/bloggverk/internal/i18n"
	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/util"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RSS renders the RSS 2.0 feed for one site.
func RSS(w *model.Website, posts []*model.Post, baseURL string) ([]byte, error) {
	lang := i18n.GetConfig(w.Language)
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if p.PublishedAt.Valid {
			pubDate = p.PublishedAt.Time.Format(time.RFC1123Z)
		}
		postURL := joinURL(baseURL, lang.Slugs.Blog, p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: util.StripHTML(p.Excerpt),
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       w.Name,
			Link:        baseURL,
			Description: util.StripHTML(w.MetaDescription),
			Language:    lang.Code,
			Items:       items,
		},
	}
	return encode(feed)
}

// Sitemap renders the sitemap.xml for one site: the structural pages plus
// every published post.
func Sitemap(w *model.Website, posts []*model.Post, baseURL string) ([]byte, error) {
	lang := i18n.GetConfig(w.Language)
	urls := []sitemapURL{
		{Loc: baseURL + "/"},
		{Loc: joinURL(baseURL, lang.Slugs.Blog)},
		{Loc: joinURL(baseURL, lang.Slugs.About)},
		{Loc: joinURL(baseURL, lang.Slugs.Contact)},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: joinURL(baseURL, lang.Slugs.Blog, p.Slug)}
		if p.PublishedAt.Valid {
			u.LastMod = p.PublishedAt.Time.Format("2006-01-02")
		}
		urls = append(urls, u)
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return encode(sitemap)
}

// Robots renders robots.txt pointing at the sitemap.
func Robots(baseURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", baseURL)
}

func encode(v any) ([]byte, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding xml: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
