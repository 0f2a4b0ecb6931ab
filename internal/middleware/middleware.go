// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware: tenant resolution, localized
// slug routing and admin API authentication.
package middleware

import (
	"context"
	"net/http"

	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/resolver"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyWebsite carries the resolved tenant for the request, or nil for
// an unknown hostname.
const ContextKeyWebsite ContextKey = "website"

// ResolveWebsite resolves the request hostname to a website and stores the
// result in the request context. A nil website (unknown hostname) is passed
// through; the handler decides how to present it. Transport errors are 500s.
func ResolveWebsite(res *resolver.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			website, err := res.Resolve(r.Context(), r.Host)
			if err != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyWebsite, website)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WebsiteFromContext returns the resolved website, or nil.
func WebsiteFromContext(ctx context.Context) *model.Website {
	w, _ := ctx.Value(ContextKeyWebsite).(*model.Website)
	return w
}
