// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vinterdal/bloggverk/internal/cache"
	"github.com/vinterdal/bloggverk/internal/pipeline"
	"github.com/vinterdal/bloggverk/internal/render"
	"github.com/vinterdal/bloggverk/internal/resolver"
	"github.com/vinterdal/bloggverk/internal/store"
	"github.com/vinterdal/bloggverk/web"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))
	return store.New(db)
}

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	r, err := render.New(render.Config{TemplatesFS: sub})
	require.NoError(t, err)
	return r
}

func newTestResolver(t *testing.T, st *store.Store) *resolver.Resolver {
	t.Helper()
	c := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Hour})
	t.Cleanup(func() { _ = c.Close() })
	return resolver.New(st, c, time.Hour, quietLogger())
}

// cannedProvider answers every completion with content keyed by call order.
type cannedProvider struct {
	responses []string
	calls     int
}

func (p *cannedProvider) Complete(_ context.Context, _, _ string) (string, error) {
	resp := p.responses[p.calls%len(p.responses)]
	p.calls++
	return resp, nil
}

func newTestLauncher(st *store.Store) *pipeline.Launcher {
	provider := &cannedProvider{responses: []string{
		"<p>Om oss</p>",
		"<p>Kontakt</p>",
		"HERO_TITLE: Rubrik\nHERO_TEXT: Text\nOUTRO_TEXT: <p>Avslut</p>",
		"PRIMARY_COLOR: #2563eb\nSECONDARY_COLOR: #e0e7ff\nACCENT_COLOR: #7c3aed\n" +
			"BACKGROUND_COLOR: #ffffff\nTEXT_COLOR: #1f2937\nFONT_HEADING: Inter\nFONT_BODY: Inter",
		"Meta description.",
	}}
	return pipeline.New(pipeline.Config{
		Store:    st,
		Provider: provider,
		Logger:   quietLogger(),
	})
}
