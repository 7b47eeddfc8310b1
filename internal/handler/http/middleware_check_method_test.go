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

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/resource", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "GET /items passes through",
			method:         http.MethodGet,
			path:           "/items",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /items passes through",
			method:         http.MethodPost,
			path:           "/items",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "PUT /items lists both methods",
			method:         http.MethodPut,
			path:           "/items",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
		{
			name:           "POST /items/{id} matched through the pattern",
			method:         http.MethodPost,
			path:           "/items/7",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "GET /resource",
			method:         http.MethodGet,
			path:           "/resource",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "DELETE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Allow"))
			if tt.expectedStatus == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_CalledDirectlyForUnknownPath(t *testing.T) {
	router := buildRouter()

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}
