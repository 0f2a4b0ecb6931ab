// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vinterdal/bloggverk/internal/model"
)

const postColumns = `id, website_id, slug, created_at, updated_at,
	title, excerpt, content, image_url, author_name, author_avatar,
	published, published_at, tags, meta_title, meta_description`

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var p model.Post
	var tags string
	err := row.Scan(
		&p.ID, &p.WebsiteID, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
		&p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.AuthorName, &p.AuthorAvatar,
		&p.Published, &p.PublishedAt, &tags, &p.MetaTitle, &p.MetaDescription,
	)
	if err != nil {
		return nil, err
	}
	if tags != "" {
		// Tag order is significant: the first tag is the primary category.
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("decoding post tags: %w", err)
		}
	}
	return &p, nil
}

// CreatePost inserts a post row. Used by the authoring job, not the
// rendering path.
func (s *Store) CreatePost(ctx context.Context, p *model.Post) (*model.Post, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encoding post tags: %w", err)
	}
	if p.Tags == nil {
		tags = []byte("[]")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO posts (id, website_id, slug, title, excerpt, content, image_url,
			author_name, author_avatar, published, published_at, tags, meta_title, meta_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.WebsiteID, p.Slug, p.Title, p.Excerpt, p.Content, p.ImageURL,
		p.AuthorName, p.AuthorAvatar, p.Published, p.PublishedAt, string(tags),
		p.MetaTitle, p.MetaDescription,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	return s.getPostByID(ctx, p.ID)
}

func (s *Store) getPostByID(ctx context.Context, id string) (*model.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching post by id: %w", err)
	}
	return p, nil
}

// ListPublishedPosts returns published posts for one website, newest first.
// A non-positive limit returns all posts.
func (s *Store) ListPublishedPosts(ctx context.Context, websiteID string, limit int) ([]*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE website_id = ? AND published = 1
		ORDER BY published_at DESC`
	args := []any{websiteID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing published posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPublishedPostBySlug fetches one published post, (nil, nil) when the
// slug is unknown or the post is unpublished.
func (s *Store) GetPublishedPostBySlug(ctx context.Context, websiteID, slug string) (*model.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts
		WHERE website_id = ? AND slug = ? AND published = 1`, websiteID, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching post by slug: %w", err)
	}
	return p, nil
}

// PublishScheduledPosts flips unpublished posts whose publish time has
// arrived. Returns the number of posts published.
func (s *Store) PublishScheduledPosts(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts SET published = 1, updated_at = ?
		WHERE published = 0 AND published_at IS NOT NULL AND published_at <= ?`,
		now, now)
	if err != nil {
		return 0, fmt.Errorf("publishing scheduled posts: %w", err)
	}
	return res.RowsAffected()
}
