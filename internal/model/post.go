// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Post is one blog post belonging to a website. Posts are created by a
// separate authoring job and are read-only on the rendering path.
type Post struct {
	ID        string    `json:"id"`
	WebsiteID string    `json:"website_id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string         `json:"title"`
	Excerpt  string         `json:"excerpt"`
	Content  string         `json:"content"`
	ImageURL sql.NullString `json:"image_url,omitempty"`

	AuthorName   string         `json:"author_name"`
	AuthorAvatar sql.NullString `json:"author_avatar,omitempty"`

	Published   bool         `json:"published"`
	PublishedAt sql.NullTime `json:"published_at,omitempty"`

	Tags []string `json:"tags,omitempty"`

	MetaTitle       sql.NullString `json:"meta_title,omitempty"`
	MetaDescription sql.NullString `json:"meta_description,omitempty"`
}

// IsPublished reports whether the post is visible to public reads.
func (p *Post) IsPublished() bool {
	return p.Published
}

// PrimaryCategory returns the first tag, treated as the post's primary
// category by several layouts, or "" when untagged.
func (p *Post) PrimaryCategory() string {
	if len(p.Tags) == 0 {
		return ""
	}
	return p.Tags[0]
}
