// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n holds per-language site configuration: HTML language codes,
// date locales, localized page slugs and the UI label catalog used by the
// template variants. Tenants store a language name; everything else derives
// from it here. Swedish is the default for unknown or missing languages.
package i18n

// Language identifies a supported site language by its stored name.
type Language string

// Supported languages.
const (
	Swedish   Language = "Swedish"
	English   Language = "English"
	German    Language = "German"
	Norwegian Language = "Norwegian"
)

// DefaultLanguage is used when a tenant row carries no or an unknown language.
const DefaultLanguage = Swedish

// Slugs holds the localized URL slugs for the three structural pages.
type Slugs struct {
	Blog    string
	About   string
	Contact string
}

// Labels holds the translated UI strings the template variants need.
type Labels struct {
	Blog              string
	About             string
	Contact           string
	Home              string
	ReadMore          string
	LatestPosts       string
	RelatedPosts      string
	Author            string
	PublishedAt       string
	ReadingTime       string
	Minutes           string
	AllRightsReserved string
	TableOfContents   string
	Previous          string
	Next              string
	NoPosts           string
	AllPosts          string
	Share             string
}

// Config is the full per-language configuration.
type Config struct {
	Code   string // HTML lang attribute
	Locale string // BCP 47 locale for dates
	Slugs  Slugs
	Labels Labels
}

var configs = map[Language]Config{
	Swedish: {
		Code:   "sv",
		Locale: "sv-SE",
		Slugs:  Slugs{Blog: "blogg", About: "om-oss", Contact: "kontakt"},
		Labels: Labels{
			Blog: "Blogg", About: "Om oss", Contact: "Kontakt", Home: "Hem",
			ReadMore: "Läs mer", LatestPosts: "Senaste inläggen",
			RelatedPosts: "Relaterade inlägg", Author: "Författare",
			PublishedAt: "Publicerad", ReadingTime: "Lästid", Minutes: "min",
			AllRightsReserved: "Alla rättigheter förbehållna",
			TableOfContents:   "Innehåll", Previous: "Föregående", Next: "Nästa",
			NoPosts: "Inga blogginlägg hittades.", AllPosts: "Alla blogginlägg",
			Share: "Dela",
		},
	},
	English: {
		Code:   "en",
		Locale: "en-GB",
		Slugs:  Slugs{Blog: "blog", About: "about", Contact: "contact"},
		Labels: Labels{
			Blog: "Blog", About: "About", Contact: "Contact", Home: "Home",
			ReadMore: "Read more", LatestPosts: "Latest posts",
			RelatedPosts: "Related posts", Author: "Author",
			PublishedAt: "Published", ReadingTime: "Reading time", Minutes: "min",
			AllRightsReserved: "All rights reserved",
			TableOfContents:   "Table of contents", Previous: "Previous", Next: "Next",
			NoPosts: "No blog posts found.", AllPosts: "All blog posts",
			Share: "Share",
		},
	},
	German: {
		Code:   "de",
		Locale: "de-DE",
		Slugs:  Slugs{Blog: "blog", About: "ueber-uns", Contact: "kontakt"},
		Labels: Labels{
			Blog: "Blog", About: "Über uns", Contact: "Kontakt", Home: "Startseite",
			ReadMore: "Weiterlesen", LatestPosts: "Neueste Beiträge",
			RelatedPosts: "Ähnliche Beiträge", Author: "Autor",
			PublishedAt: "Veröffentlicht am", ReadingTime: "Lesezeit", Minutes: "Min",
			AllRightsReserved: "Alle Rechte vorbehalten",
			TableOfContents:   "Inhaltsverzeichnis", Previous: "Vorheriger", Next: "Nächster",
			NoPosts: "Keine Blogbeiträge gefunden.", AllPosts: "Alle Blogbeiträge",
			Share: "Teilen",
		},
	},
	Norwegian: {
		Code:   "no",
		Locale: "nb-NO",
		Slugs:  Slugs{Blog: "blogg", About: "om-oss", Contact: "kontakt"},
		Labels: Labels{
			Blog: "Blogg", About: "Om oss", Contact: "Kontakt", Home: "Hjem",
			ReadMore: "Les mer", LatestPosts: "Siste innlegg",
			RelatedPosts: "Relaterte innlegg", Author: "Forfatter",
			PublishedAt: "Publisert", ReadingTime: "Lesetid", Minutes: "min",
			AllRightsReserved: "Alle rettigheter reservert",
			TableOfContents:   "Innhold", Previous: "Forrige", Next: "Neste",
			NoPosts: "Ingen blogginnlegg funnet.", AllPosts: "Alle blogginnlegg",
			Share: "Del",
		},
	},
}

// GetConfig returns the configuration for a stored language name, falling
// back to Swedish for empty or unknown values.
func GetConfig(language string) Config {
	if cfg, ok := configs[Language(language)]; ok {
		return cfg
	}
	return configs[DefaultLanguage]
}

// Languages returns the supported language names.
func Languages() []Language {
	return []Language{Swedish, English, German, Norwegian}
}

// IsSupported reports whether the given language name is known.
func IsSupported(language string) bool {
	_, ok := configs[Language(language)]
	return ok
}

// InternalSlug maps any localized structural-page slug to the canonical
// internal (Swedish) slug used for routing, or "" if the slug is unknown.
func InternalSlug(slug string) string {
	for _, cfg := range configs {
		switch slug {
		case cfg.Slugs.Blog:
			return configs[Swedish].Slugs.Blog
		case cfg.Slugs.About:
			return configs[Swedish].Slugs.About
		case cfg.Slugs.Contact:
			return configs[Swedish].Slugs.Contact
		}
	}
	return ""
}
