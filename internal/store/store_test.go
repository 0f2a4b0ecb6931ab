// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinterdal/bloggverk/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return New(db)
}

func testWebsite(host string) *model.Website {
	return &model.Website{
		HostName: host,
		Name:     "Testbloggen",
		Topic:    "testning",
		Language: "Swedish",
		AboutUs:  "<p>Om oss</p>",
		Design:   model.DefaultDesignTokens(),
		Slots:    model.TemplateSlots{Header: 1, Footer: 2, FrontPage: 3, BlogPost: 4, Page: 5},
		Toggles: model.FeatureToggles{
			Breadcrumbs: true, ReadingTime: true,
		},
		ContainerWidth: "max-w-7xl",
		BorderRadius:   "rounded-lg",
		ContactEmail:   "kontakt@testbloggen.se",
		AIDisclosure:   true,
	}
}

func TestCreateWebsite_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateWebsite(ctx, testWebsite("test.example.com"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := s.GetWebsiteByHostname(ctx, "test.example.com")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Testbloggen", fetched.Name)
	assert.Equal(t, model.DefaultDesignTokens(), fetched.Design)
	assert.Equal(t, created.Slots, fetched.Slots)
	assert.True(t, fetched.Toggles.Breadcrumbs)
	assert.False(t, fetched.Toggles.SearchBar)
	assert.True(t, fetched.AIDisclosure)
}

func TestCreateWebsite_DuplicateHostnameRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateWebsite(ctx, testWebsite("dup.example.com"))
	require.NoError(t, err)
	_, err = s.CreateWebsite(ctx, testWebsite("dup.example.com"))
	assert.Error(t, err, "host_name has a unique constraint")
}

func TestGetWebsiteByHostname_MissingIsNilNil(t *testing.T) {
	s := newTestStore(t)

	w, err := s.GetWebsiteByHostname(context.Background(), "nothing.example.com")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestListWebsites_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testWebsite("a.example.com")
	a.CreatedAt = time.Now().Add(-time.Hour)
	_, err := s.CreateWebsite(ctx, a)
	require.NoError(t, err)
	_, err = s.CreateWebsite(ctx, testWebsite("b.example.com"))
	require.NoError(t, err)

	websites, err := s.ListWebsites(ctx)
	require.NoError(t, err)
	require.Len(t, websites, 2)
}

func TestDeleteWebsite_CascadesToPosts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWebsite(ctx, testWebsite("del.example.com"))
	require.NoError(t, err)

	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID:   w.ID,
		Slug:        "forsta-inlagget",
		Title:       "Första inlägget",
		Content:     "<p>Innehåll</p>",
		Published:   true,
		PublishedAt: sql.NullTime{Time: time.Now(), Valid: true},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteWebsite(ctx, w.ID))

	gone, err := s.GetWebsiteByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	post, err := s.GetPublishedPostBySlug(ctx, w.ID, "forsta-inlagget")
	require.NoError(t, err)
	assert.Nil(t, post, "posts must be deleted with their website")
}

func TestDeleteWebsite_Missing(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteWebsite(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListPublishedPosts_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWebsite(ctx, testWebsite("posts.example.com"))
	require.NoError(t, err)

	base := time.Now().Add(-24 * time.Hour)
	for i, slug := range []string{"aldst", "mellan", "nyast"} {
		_, err = s.CreatePost(ctx, &model.Post{
			WebsiteID:   w.ID,
			Slug:        slug,
			Title:       slug,
			Published:   true,
			PublishedAt: sql.NullTime{Time: base.Add(time.Duration(i) * time.Hour), Valid: true},
		})
		require.NoError(t, err)
	}
	// An unpublished draft never shows up.
	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID: w.ID, Slug: "utkast", Title: "Utkast", Published: false,
	})
	require.NoError(t, err)

	posts, err := s.ListPublishedPosts(ctx, w.ID, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "nyast", posts[0].Slug)
	assert.Equal(t, "aldst", posts[2].Slug)

	limited, err := s.ListPublishedPosts(ctx, w.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetPublishedPostBySlug_DraftIsInvisible(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWebsite(ctx, testWebsite("draft.example.com"))
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID: w.ID, Slug: "utkast", Title: "Utkast", Published: false,
	})
	require.NoError(t, err)

	p, err := s.GetPublishedPostBySlug(ctx, w.ID, "utkast")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPost_TagsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWebsite(ctx, testWebsite("tags.example.com"))
	require.NoError(t, err)

	created, err := s.CreatePost(ctx, &model.Post{
		WebsiteID:   w.ID,
		Slug:        "taggat",
		Title:       "Taggat inlägg",
		Published:   true,
		PublishedAt: sql.NullTime{Time: time.Now(), Valid: true},
		Tags:        []string{"odling", "vår", "tips"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"odling", "vår", "tips"}, created.Tags)
	assert.Equal(t, "odling", created.PrimaryCategory())
}

func TestPublishScheduledPosts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWebsite(ctx, testWebsite("sched.example.com"))
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID: w.ID, Slug: "due", Title: "Dags",
		Published:   false,
		PublishedAt: sql.NullTime{Time: now.Add(-time.Minute), Valid: true},
	})
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID: w.ID, Slug: "future", Title: "Senare",
		Published:   false,
		PublishedAt: sql.NullTime{Time: now.Add(time.Hour), Valid: true},
	})
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, &model.Post{
		WebsiteID: w.ID, Slug: "no-date", Title: "Odaterad", Published: false,
	})
	require.NoError(t, err)

	n, err := s.PublishScheduledPosts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, err := s.GetPublishedPostBySlug(ctx, w.ID, "due")
	require.NoError(t, err)
	require.NotNil(t, p)

	future, err := s.GetPublishedPostBySlug(ctx, w.ID, "future")
	require.NoError(t, err)
	assert.Nil(t, future, "future posts stay unpublished")
}

func TestEvents_InsertAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, model.EventLevelWarning, "color", "background color too dark"))
	require.NoError(t, s.InsertEvent(ctx, model.EventLevelError, "pipeline", "generation step failed"))

	events, err := s.ListRecentEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, model.EventLevelError, events[0].Level)
	assert.Equal(t, "pipeline", events[0].Source)
}
