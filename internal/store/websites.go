// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vinterdal/bloggverk/internal/model"
)

const websiteColumns = `id, created_at, host_name, website_name, topic, language,
	about_us, contact_us, frontpage_hero_title, frontpage_hero_text, frontpage_outro_text, meta_description,
	primary_color, secondary_color, accent_color, background_color, text_color, font_heading, font_body,
	template_header, template_footer, template_front_page, template_blog_post, template_page,
	container_width, border_radius,
	show_breadcrumbs, show_related_posts, show_search_bar, show_share_buttons, show_table_of_contents,
	show_author_box, show_tags_display, show_reading_time, show_post_navigation, show_reading_progress_bar,
	author_name, author_bio, author_image, author_slug,
	logo_url, favicon_icon, social_twitter, social_facebook, social_instagram, social_linkedin,
	contact_email, ai_disclosure`

func scanWebsite(row interface{ Scan(...any) error }) (*model.Website, error) {
	var w model.Website
	err := row.Scan(
		&w.ID, &w.CreatedAt, &w.HostName, &w.Name, &w.Topic, &w.Language,
		&w.AboutUs, &w.ContactUs, &w.HeroTitle, &w.HeroText, &w.OutroText, &w.MetaDescription,
		&w.Design.PrimaryColor, &w.Design.SecondaryColor, &w.Design.AccentColor,
		&w.Design.BackgroundColor, &w.Design.TextColor, &w.Design.FontHeading, &w.Design.FontBody,
		&w.Slots.Header, &w.Slots.Footer, &w.Slots.FrontPage, &w.Slots.BlogPost, &w.Slots.Page,
		&w.ContainerWidth, &w.BorderRadius,
		&w.Toggles.Breadcrumbs, &w.Toggles.RelatedPosts, &w.Toggles.SearchBar, &w.Toggles.ShareButtons,
		&w.Toggles.TableOfContents, &w.Toggles.AuthorBox, &w.Toggles.TagsDisplay, &w.Toggles.ReadingTime,
		&w.Toggles.PostNavigation, &w.Toggles.ReadingProgressBar,
		&w.AuthorName, &w.AuthorBio, &w.AuthorImage, &w.AuthorSlug,
		&w.LogoURL, &w.FaviconIcon, &w.SocialTwitter, &w.SocialFacebook, &w.SocialInstagram, &w.SocialLinkedIn,
		&w.ContactEmail, &w.AIDisclosure,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWebsite inserts one website row and returns it with its assigned ID.
// This is the generation pipeline's single all-or-nothing side effect.
func (s *Store) CreateWebsite(ctx context.Context, w *model.Website) (*model.Website, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO websites (
			id, host_name, website_name, topic, language,
			about_us, contact_us, frontpage_hero_title, frontpage_hero_text, frontpage_outro_text, meta_description,
			primary_color, secondary_color, accent_color, background_color, text_color, font_heading, font_body,
			template_header, template_footer, template_front_page, template_blog_post, template_page,
			container_width, border_radius,
			show_breadcrumbs, show_related_posts, show_search_bar, show_share_buttons, show_table_of_contents,
			show_author_box, show_tags_display, show_reading_time, show_post_navigation, show_reading_progress_bar,
			author_name, author_bio, author_image, author_slug,
			logo_url, favicon_icon, social_twitter, social_facebook, social_instagram, social_linkedin,
			contact_email, ai_disclosure
		) VALUES (?, ?, ?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?, ?, ?, ?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?)`,
		w.ID, w.HostName, w.Name, w.Topic, w.Language,
		w.AboutUs, w.ContactUs, w.HeroTitle, w.HeroText, w.OutroText, w.MetaDescription,
		w.Design.PrimaryColor, w.Design.SecondaryColor, w.Design.AccentColor,
		w.Design.BackgroundColor, w.Design.TextColor, w.Design.FontHeading, w.Design.FontBody,
		w.Slots.Header, w.Slots.Footer, w.Slots.FrontPage, w.Slots.BlogPost, w.Slots.Page,
		w.ContainerWidth, w.BorderRadius,
		w.Toggles.Breadcrumbs, w.Toggles.RelatedPosts, w.Toggles.SearchBar, w.Toggles.ShareButtons,
		w.Toggles.TableOfContents, w.Toggles.AuthorBox, w.Toggles.TagsDisplay, w.Toggles.ReadingTime,
		w.Toggles.PostNavigation, w.Toggles.ReadingProgressBar,
		w.AuthorName, w.AuthorBio, w.AuthorImage, w.AuthorSlug,
		w.LogoURL, w.FaviconIcon, w.SocialTwitter, w.SocialFacebook, w.SocialInstagram, w.SocialLinkedIn,
		w.ContactEmail, w.AIDisclosure,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting website: %w", err)
	}

	return s.GetWebsiteByID(ctx, w.ID)
}

// GetWebsiteByHostname fetches a website by exact hostname match. A missing
// row is a valid outcome and returns (nil, nil), distinct from transport
// errors.
func (s *Store) GetWebsiteByHostname(ctx context.Context, hostname string) (*model.Website, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+websiteColumns+` FROM websites WHERE host_name = ?`, hostname)
	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching website by hostname: %w", err)
	}
	return w, nil
}

// GetWebsiteByID fetches a website by ID, (nil, nil) when absent.
func (s *Store) GetWebsiteByID(ctx context.Context, id string) (*model.Website, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+websiteColumns+` FROM websites WHERE id = ?`, id)
	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching website by id: %w", err)
	}
	return w, nil
}

// ListWebsites returns all websites ordered by creation time, newest first.
func (s *Store) ListWebsites(ctx context.Context) ([]*model.Website, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+websiteColumns+` FROM websites ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing websites: %w", err)
	}
	defer rows.Close()

	var websites []*model.Website
	for rows.Next() {
		w, err := scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning website: %w", err)
		}
		websites = append(websites, w)
	}
	return websites, rows.Err()
}

// DeleteWebsite removes a website; its posts go with it via the foreign-key
// cascade.
func (s *Store) DeleteWebsite(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM websites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting website: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
