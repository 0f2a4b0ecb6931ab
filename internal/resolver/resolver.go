// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resolver maps request hostnames to tenant configuration, with a
// TTL cache in front of the store.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vinterdal/bloggverk/internal/cache"
	"github.com/vinterdal/bloggverk/internal/model"
)

// localPrefixes are development hosts. They keep their port so several local
// sites can run side by side, and they always bypass the cache.
var localPrefixes = []string{"localhost", "127.0.0.1"}

// NormalizeHostname canonicalizes a raw Host header value: lowercase, and
// the port stripped except for local development hosts. The function is
// idempotent.
func NormalizeHostname(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range localPrefixes {
		if host == prefix || strings.HasPrefix(host, prefix+":") {
			return host
		}
	}
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	return host
}

// isLocal reports whether a normalized hostname is a development host.
func isLocal(host string) bool {
	for _, prefix := range localPrefixes {
		if host == prefix || strings.HasPrefix(host, prefix+":") {
			return true
		}
	}
	return false
}

// WebsiteStore is the subset of the store the resolver needs.
type WebsiteStore interface {
	GetWebsiteByHostname(ctx context.Context, hostname string) (*model.Website, error)
}

// Resolver resolves hostnames to websites through a typed TTL cache.
type Resolver struct {
	store  WebsiteStore
	cache  *cache.TypedCache[model.Website]
	logger *slog.Logger
}

// New creates a Resolver. The cacher may be shared with other components;
// resolver entries live under the "website:" key prefix with the given TTL.
func New(st WebsiteStore, cacher cache.Cacher, ttl time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:  st,
		cache:  cache.NewTypedCache[model.Website](cacher, ttl),
		logger: logger,
	}
}

// Resolve normalizes rawHost and returns its website. An unknown hostname
// returns (nil, nil); only transport failures return an error. Local
// development hosts always hit the store so launches show up immediately.
// Not-found is never cached, so a site launched mid-TTL is visible on its
// first request.
func (r *Resolver) Resolve(ctx context.Context, rawHost string) (*model.Website, error) {
	host := NormalizeHostname(rawHost)

	if isLocal(host) {
		return r.store.GetWebsiteByHostname(ctx, host)
	}

	key := "website:" + host
	if w, ok := r.cache.Get(ctx, key); ok {
		return w, nil
	}

	w, err := r.store.GetWebsiteByHostname(ctx, host)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, key, w); err != nil {
		r.logger.Warn("caching website failed", "hostname", host, "error", err)
	}
	return w, nil
}

// Invalidate drops a hostname from the cache, for use after deletion.
func (r *Resolver) Invalidate(ctx context.Context, rawHost string) {
	host := NormalizeHostname(rawHost)
	if err := r.cache.Delete(ctx, "website:"+host); err != nil {
		r.logger.Warn("cache invalidation failed", "hostname", host, "error", err)
	}
}
