// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the persisted domain types: per-tenant website
// configuration, blog posts and diagnostic events.
package model

import (
	"time"
)

// Available fonts the design generator may choose from. The generated
// font identifiers are validated against this closed set.
var Fonts = []string{
	"Inter",
	"Roboto",
	"Poppins",
	"Playfair Display",
	"Lora",
	"Merriweather",
	"Open Sans",
	"Montserrat",
	"DM Sans",
	"Source Sans Pro",
}

// IsKnownFont reports whether name is in the closed font set.
func IsKnownFont(name string) bool {
	for _, f := range Fonts {
		if f == name {
			return true
		}
	}
	return false
}

// TemplatePoolSize is the number of variants per template slot.
const TemplatePoolSize = 5

// DesignTokens is the generated visual theme of one site: five colors and
// two font identifiers.
type DesignTokens struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	FontHeading     string `json:"font_heading"`
	FontBody        string `json:"font_body"`
}

// DefaultDesignTokens is the fixed fallback used when the model's design
// response cannot be parsed.
func DefaultDesignTokens() DesignTokens {
	return DesignTokens{
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#e0e7ff",
		AccentColor:     "#7c3aed",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		FontHeading:     "Inter",
		FontBody:        "Inter",
	}
}

// TemplateSlots holds the five independently chosen 1-based template
// variant indices.
type TemplateSlots struct {
	Header    int `json:"template_header"`
	Footer    int `json:"template_footer"`
	FrontPage int `json:"template_front_page"`
	BlogPost  int `json:"template_blog_post"`
	Page      int `json:"template_page"`
}

// FeatureToggles holds the per-site boolean feature switches, drawn
// uniformly at generation time.
type FeatureToggles struct {
	Breadcrumbs        bool `json:"show_breadcrumbs"`
	RelatedPosts       bool `json:"show_related_posts"`
	SearchBar          bool `json:"show_search_bar"`
	ShareButtons       bool `json:"show_share_buttons"`
	TableOfContents    bool `json:"show_table_of_contents"`
	AuthorBox          bool `json:"show_author_box"`
	TagsDisplay        bool `json:"show_tags_display"`
	ReadingTime        bool `json:"show_reading_time"`
	PostNavigation     bool `json:"show_post_navigation"`
	ReadingProgressBar bool `json:"show_reading_progress_bar"`
}

// Website is one tenant's full configuration record. It is created once by
// the generation pipeline and only mutated by administrative deletion or
// regeneration.
type Website struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	HostName  string    `json:"host_name"`
	Name      string    `json:"website_name"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`

	AboutUs          string `json:"about_us"`
	ContactUs        string `json:"contact_us"`
	HeroTitle        string `json:"frontpage_hero_title"`
	HeroText         string `json:"frontpage_hero_text"`
	OutroText        string `json:"frontpage_outro_text"`
	MetaDescription  string `json:"meta_description"`

	Design  DesignTokens   `json:"design"`
	Slots   TemplateSlots  `json:"slots"`
	Toggles FeatureToggles `json:"toggles"`

	// Presentation hints persisted verbatim.
	ContainerWidth string `json:"container_width"`
	BorderRadius   string `json:"border_radius"`

	// Optional author persona.
	AuthorName  string `json:"author_name,omitempty"`
	AuthorBio   string `json:"author_bio,omitempty"`
	AuthorImage string `json:"author_image,omitempty"`
	AuthorSlug  string `json:"author_slug,omitempty"`

	// Optional branding and social links.
	LogoURL         string `json:"logo_url,omitempty"`
	FaviconIcon     string `json:"favicon_icon,omitempty"`
	SocialTwitter   string `json:"social_twitter,omitempty"`
	SocialFacebook  string `json:"social_facebook,omitempty"`
	SocialInstagram string `json:"social_instagram,omitempty"`
	SocialLinkedIn  string `json:"social_linkedin,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
	AIDisclosure bool   `json:"ai_disclosure"`
}

// HasAuthor reports whether a persona was generated for this site.
func (w *Website) HasAuthor() bool {
	return w.AuthorName != ""
}
