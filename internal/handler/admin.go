// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vinterdal/bloggverk/internal/pipeline"
	"github.com/vinterdal/bloggverk/internal/resolver"
	"github.com/vinterdal/bloggverk/internal/store"
)

// Admin serves the authenticated JSON API for launching and managing sites.
type Admin struct {
	store    *store.Store
	launcher *pipeline.Launcher
	resolver *resolver.Resolver
	logger   *slog.Logger
}

// NewAdmin creates the admin API handler set.
func NewAdmin(st *store.Store, l *pipeline.Launcher, res *resolver.Resolver, logger *slog.Logger) *Admin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Admin{store: st, launcher: l, resolver: res, logger: logger}
}

// launchRequest is the POST /api/admin/websites body.
type launchRequest struct {
	Name     string `json:"name"`
	Topic    string `json:"topic"`
	Hostname string `json:"hostname"`
}

// CreateWebsite runs the full generation pipeline for a new site. The call
// is synchronous: it returns once the site row is persisted.
func (h *Admin) CreateWebsite(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Topic = strings.TrimSpace(req.Topic)
	req.Hostname = strings.TrimSpace(req.Hostname)
	if req.Name == "" || req.Topic == "" || req.Hostname == "" {
		writeJSONError(w, http.StatusBadRequest, "name, topic and hostname are required")
		return
	}

	existing, err := h.store.GetWebsiteByHostname(r.Context(), resolver.NormalizeHostname(req.Hostname))
	if err != nil {
		h.logger.Error("checking hostname", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to generate website")
		return
	}
	if existing != nil {
		writeJSONError(w, http.StatusConflict, "hostname already in use")
		return
	}

	website, err := h.launcher.Launch(r.Context(), req.Name, req.Topic, req.Hostname)
	if err != nil {
		// Step details stay in the log; the API returns a generic message.
		h.logger.Error("website generation failed", "hostname", req.Hostname, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to generate website")
		return
	}

	writeJSONSuccess(w, http.StatusCreated, map[string]any{
		"website_id": website.ID,
		"hostname":   website.HostName,
		"design":     website.Design,
	})
}

// ListWebsites returns all tenants, newest first.
func (h *Admin) ListWebsites(w http.ResponseWriter, r *http.Request) {
	websites, err := h.store.ListWebsites(r.Context())
	if err != nil {
		h.logger.Error("listing websites", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list websites")
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"websites": websites})
}

// DeleteWebsite removes a tenant and its posts, and drops it from the
// resolution cache.
func (h *Admin) DeleteWebsite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	website, err := h.store.GetWebsiteByID(r.Context(), id)
	if err != nil {
		h.logger.Error("fetching website", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to delete website")
		return
	}
	if website == nil {
		writeJSONError(w, http.StatusNotFound, "website not found")
		return
	}

	if err := h.store.DeleteWebsite(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "website not found")
			return
		}
		h.logger.Error("deleting website", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to delete website")
		return
	}
	h.resolver.Invalidate(r.Context(), website.HostName)

	writeJSONSuccess(w, http.StatusOK, map[string]any{"deleted": id})
}

// ListEvents returns recent diagnostic events for operators.
func (h *Admin) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListRecentEvents(r.Context(), 100)
	if err != nil {
		h.logger.Error("listing events", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"events": events})
}
