// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildSlashRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(RedirectSlashes(router))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/docs/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

func TestRedirectSlashes_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"GET with trailing slash", http.MethodGet, "/health/", http.StatusTemporaryRedirect, "/health"},
		{"several trailing slashes", http.MethodGet, "/health//", http.StatusTemporaryRedirect, "/health"},
		{"query is kept", http.MethodGet, "/health/?x=1", http.StatusTemporaryRedirect, "/health?x=1"},
		{"POST keeps 307", http.MethodPost, "/login/", http.StatusTemporaryRedirect, "/login"},
		{"parameterised route", http.MethodGet, "/orders/7/", http.StatusTemporaryRedirect, "/orders/7"},
		{"other method still redirects", http.MethodDelete, "/health/", http.StatusTemporaryRedirect, "/health"},
		{"exact match is served", http.MethodGet, "/health", http.StatusOK, ""},
		{"route registered with slash", http.MethodGet, "/docs/", http.StatusOK, ""},
		{"unknown path", http.MethodGet, "/nope/", http.StatusNotFound, ""},
		{"root", http.MethodGet, "/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := buildSlashRouter()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
