// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the public frontend and the admin JSON API.
package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vinterdal/bloggverk/internal/i18n"
	"github.com/vinterdal/bloggverk/internal/middleware"
	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/render"
	"github.com/vinterdal/bloggverk/internal/resolver"
	"github.com/vinterdal/bloggverk/internal/seo"
	"github.com/vinterdal/bloggverk/internal/store"
	"github.com/vinterdal/bloggverk/internal/variant"
)

// frontPagePostLimit is the number of posts shown on the front page.
const frontPagePostLimit = 6

// Frontend serves the public pages of every tenant.
type Frontend struct {
	store    *store.Store
	renderer *render.Renderer
	logger   *slog.Logger

	// baseURL overrides per-request URL derivation when set.
	baseURL string
}

// NewFrontend creates the frontend handler set.
func NewFrontend(st *store.Store, r *render.Renderer, logger *slog.Logger, baseURL string) *Frontend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Frontend{store: st, renderer: r, logger: logger, baseURL: baseURL}
}

// site returns the resolved tenant, or renders the branded not-found page
// and returns nil.
func (h *Frontend) site(w http.ResponseWriter, r *http.Request) *model.Website {
	website := middleware.WebsiteFromContext(r.Context())
	if website == nil {
		host := resolver.NormalizeHostname(r.Host)
		h.logger.Info("no site for hostname", "hostname", host)
		if err := h.renderer.RenderNotFound(w, host); err != nil {
			http.Error(w, "site not found for hostname: "+host, http.StatusNotFound)
		}
		return nil
	}
	return website
}

// requestBaseURL derives the external base URL for absolute links.
func (h *Frontend) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return strings.TrimRight(h.baseURL, "/")
	}
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host
}

// pageData assembles the render data shared by every page of a site.
func (h *Frontend) pageData(r *http.Request, website *model.Website) *render.PageData {
	lang := i18n.GetConfig(website.Language)
	data := &render.PageData{
		Website:        website,
		Lang:           lang,
		Title:          website.Name,
		Canonical:      h.requestBaseURL(r) + r.URL.Path,
		HeaderTemplate: variant.Dispatch(website.Slots.Header, render.HeaderTemplates),
		FooterTemplate: variant.Dispatch(website.Slots.Footer, render.FooterTemplates),
	}
	if website.AIDisclosure {
		d := i18n.GetDisclaimer(website.ID, website.Language, website.Name, website.ContactEmail)
		data.Disclaimer = &d
	}
	return data
}

// Home renders the front page.
func (h *Frontend) Home(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, frontPagePostLimit)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}

	data := h.pageData(r, website)
	data.MetaDescription = website.MetaDescription
	data.ContentTemplate = variant.Dispatch(website.Slots.FrontPage, render.FrontPageTemplates)
	data.Posts = posts
	h.render(w, data)
}

// Blog renders the blog index with all published posts.
func (h *Frontend) Blog(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, 0)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}

	data := h.pageData(r, website)
	lang := i18n.GetConfig(website.Language)
	data.Title = lang.Labels.Blog + " - " + website.Name
	data.MetaDescription = website.MetaDescription
	data.ContentTemplate = "blog_index"
	data.Posts = posts
	h.render(w, data)
}

// BlogPost renders one published post.
func (h *Frontend) BlogPost(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	slug := chi.URLParam(r, "slug")
	post, err := h.store.GetPublishedPostBySlug(r.Context(), website.ID, slug)
	if err != nil {
		h.serverError(w, "fetching post", err)
		return
	}
	if post == nil {
		h.notFound(w, r, website)
		return
	}

	// Previous/next navigation walks the published list in display order.
	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, 0)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}
	var prev, next *model.Post
	for i, p := range posts {
		if p.ID != post.ID {
			continue
		}
		if i > 0 {
			next = posts[i-1]
		}
		if i < len(posts)-1 {
			prev = posts[i+1]
		}
		break
	}

	data := h.pageData(r, website)
	data.Title = post.Title + " - " + website.Name
	if post.MetaTitle.Valid && post.MetaTitle.String != "" {
		data.Title = post.MetaTitle.String
	}
	data.MetaDescription = post.Excerpt
	if post.MetaDescription.Valid && post.MetaDescription.String != "" {
		data.MetaDescription = post.MetaDescription.String
	}
	data.ContentTemplate = variant.Dispatch(website.Slots.BlogPost, render.BlogPostTemplates)
	data.Post = post
	data.Posts = posts
	data.PrevPost = prev
	data.NextPost = next
	h.render(w, data)
}

// About renders the about page.
func (h *Frontend) About(w http.ResponseWriter, r *http.Request) {
	h.staticPage(w, r, func(website *model.Website, lang i18n.Config) (string, string) {
		return lang.Labels.About, website.AboutUs
	})
}

// Contact renders the contact page.
func (h *Frontend) Contact(w http.ResponseWriter, r *http.Request) {
	h.staticPage(w, r, func(website *model.Website, lang i18n.Config) (string, string) {
		return lang.Labels.Contact, website.ContactUs
	})
}

func (h *Frontend) staticPage(w http.ResponseWriter, r *http.Request,
	pick func(*model.Website, i18n.Config) (title, body string)) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	lang := i18n.GetConfig(website.Language)
	title, body := pick(website, lang)

	data := h.pageData(r, website)
	data.Title = title + " - " + website.Name
	data.MetaDescription = website.MetaDescription
	data.ContentTemplate = variant.Dispatch(website.Slots.Page, render.PageTemplates)
	data.PageContent = template.HTML(body) // #nosec G203 -- sanitized at generation time
	h.render(w, data)
}

// Author renders the author persona page, 404 when the site has no persona
// or the slug does not match.
func (h *Frontend) Author(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	slug := chi.URLParam(r, "slug")
	if !website.HasAuthor() || website.AuthorSlug != slug {
		h.notFound(w, r, website)
		return
	}

	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, frontPagePostLimit)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}

	data := h.pageData(r, website)
	lang := i18n.GetConfig(website.Language)
	data.Title = website.AuthorName + " - " + website.Name
	data.MetaDescription = lang.Labels.Author + ": " + website.AuthorName
	data.ContentTemplate = "author_page"
	data.Posts = posts
	h.render(w, data)
}

// Feed serves the RSS feed.
func (h *Frontend) Feed(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, 0)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}
	out, err := seo.RSS(website, posts, h.requestBaseURL(r))
	if err != nil {
		h.serverError(w, "building feed", err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(out)
}

// Sitemap serves sitemap.xml.
func (h *Frontend) Sitemap(w http.ResponseWriter, r *http.Request) {
	website := h.site(w, r)
	if website == nil {
		return
	}

	posts, err := h.store.ListPublishedPosts(r.Context(), website.ID, 0)
	if err != nil {
		h.serverError(w, "listing posts", err)
		return
	}
	out, err := seo.Sitemap(website, posts, h.requestBaseURL(r))
	if err != nil {
		h.serverError(w, "building sitemap", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// Robots serves robots.txt.
func (h *Frontend) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.Robots(h.requestBaseURL(r))))
}

// NotFound handles unmatched routes on a resolved site.
func (h *Frontend) NotFound(w http.ResponseWriter, r *http.Request) {
	website := middleware.WebsiteFromContext(r.Context())
	if website == nil {
		host := resolver.NormalizeHostname(r.Host)
		if err := h.renderer.RenderNotFound(w, host); err != nil {
			http.Error(w, "site not found for hostname: "+host, http.StatusNotFound)
		}
		return
	}
	h.notFound(w, r, website)
}

// notFound renders a minimal in-site 404 using the page template.
func (h *Frontend) notFound(w http.ResponseWriter, r *http.Request, website *model.Website) {
	lang := i18n.GetConfig(website.Language)
	data := h.pageData(r, website)
	data.Title = "404 - " + website.Name
	data.ContentTemplate = variant.Dispatch(website.Slots.Page, render.PageTemplates)
	data.PageContent = template.HTML("<p>" + template.HTMLEscapeString(lang.Labels.NoPosts) + "</p>")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, data); err != nil {
		h.logger.Error("rendering 404 page", "error", err)
	}
}

func (h *Frontend) render(w http.ResponseWriter, data *render.PageData) {
	if err := h.renderer.Render(w, data); err != nil {
		h.logger.Error("rendering page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Frontend) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
