// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/store"
)

func newAdminRouter(t *testing.T, st *store.Store) *chi.Mux {
	t.Helper()
	admin := NewAdmin(st, newTestLauncher(st), newTestResolver(t, st), quietLogger())
	r := chi.NewRouter()
	r.Post("/websites", admin.CreateWebsite)
	r.Get("/websites", admin.ListWebsites)
	r.Delete("/websites/{id}", admin.DeleteWebsite)
	r.Get("/events", admin.ListEvents)
	return r
}

func TestCreateWebsite_Success(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	body := `{"name":"Odlingsbloggen","topic":"odling","hostname":"Odling.Example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/websites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success   bool               `json:"success"`
		WebsiteID string             `json:"website_id"`
		Hostname  string             `json:"hostname"`
		Design    model.DesignTokens `json:"design"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.WebsiteID)
	assert.Equal(t, "odling.example.com", resp.Hostname)
	assert.Equal(t, "#2563eb", resp.Design.PrimaryColor)

	w, err := st.GetWebsiteByHostname(context.Background(), "odling.example.com")
	require.NoError(t, err)
	require.NotNil(t, w)
}

func TestCreateWebsite_Validation(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing topic", `{"name":"X","hostname":"x.se"}`},
		{"blank name", `{"name":"   ","topic":"t","hostname":"x.se"}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/websites", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateWebsite_HostnameConflict(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	body := `{"name":"Första","topic":"t","hostname":"dup.example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/websites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	body = `{"name":"Andra","topic":"t","hostname":"DUP.example.com:443"}`
	req = httptest.NewRequest(http.MethodPost, "/websites", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListWebsites(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	req := httptest.NewRequest(http.MethodGet, "/websites", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success  bool             `json:"success"`
		Websites []*model.Website `json:"websites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Websites)
}

func TestDeleteWebsite(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	w, err := st.CreateWebsite(context.Background(), &model.Website{
		HostName: "del.example.com", Name: "X", Topic: "t", Language: "Swedish",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/websites/"+w.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	gone, err := st.GetWebsiteByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteWebsite_NotFound(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	req := httptest.NewRequest(http.MethodDelete, "/websites/no-such-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEvents(t *testing.T) {
	st := newTestStore(t)
	router := newAdminRouter(t, st)

	require.NoError(t, st.InsertEvent(context.Background(), model.EventLevelWarning, "color", "repair"))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Events []*model.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "color", resp.Events[0].Source)
}
