// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strings"

	"github.com/vinterdal/bloggverk/internal/i18n"
)

// LocalizedSlugs routes localized structural-page URLs. Non-canonical slugs
// are rewritten in place to the canonical internal routes, and canonical
// slugs requested on a non-Swedish site are redirected (301) to the site's
// localized URLs. Requires ResolveWebsite earlier in the chain.
func LocalizedSlugs(next http.Handler) http.Handler {
	canonical := i18n.GetConfig(string(i18n.DefaultLanguage)).Slugs

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		website := WebsiteFromContext(r.Context())

		// Canonical slug on a localized site: redirect out to the
		// localized slug so each site exposes a single URL per page.
		if website != nil && website.Language != string(i18n.DefaultLanguage) {
			slugs := i18n.GetConfig(website.Language).Slugs
			switch {
			case path == "/"+canonical.About && slugs.About != canonical.About:
				http.Redirect(w, r, "/"+slugs.About, http.StatusMovedPermanently)
				return
			case path == "/"+canonical.Contact && slugs.Contact != canonical.Contact:
				http.Redirect(w, r, "/"+slugs.Contact, http.StatusMovedPermanently)
				return
			case (path == "/"+canonical.Blog || strings.HasPrefix(path, "/"+canonical.Blog+"/")) &&
				slugs.Blog != canonical.Blog:
				http.Redirect(w, r,
					strings.Replace(path, "/"+canonical.Blog, "/"+slugs.Blog, 1),
					http.StatusMovedPermanently)
				return
			}
		}

		// Localized slug inbound: rewrite to the canonical route so the
		// router only ever sees canonical paths.
		segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
		if len(segments) > 0 && segments[0] != "" {
			if internal := i18n.InternalSlug(segments[0]); internal != "" && internal != segments[0] {
				rewritten := "/" + internal
				if len(segments) == 2 {
					rewritten += "/" + segments[1]
				}
				r.URL.Path = rewritten
			}
		}

		next.ServeHTTP(w, r)
	})
}
