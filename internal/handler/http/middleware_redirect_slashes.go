// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RedirectSlashes returns a middleware that answers 307 Temporary Redirect
// when the request path ends with "/", no route matches it as is, and the
// path without the trailing slashes is registered for some method.
//
// 307 keeps the method and body, so POST /login/ is replayed as POST /login.
// Paths that match nothing either way fall through to the router and end up
// in the NotFound handler.
func RedirectSlashes(router *chi.Mux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/" || !strings.HasSuffix(path, "/") || router.Match(chi.NewRouteContext(), r.Method, path) {
				next.ServeHTTP(w, r)
				return
			}

			trimmed := strings.TrimRight(path, "/")
			if trimmed == "" || !matchesAnyMethod(router, trimmed) {
				next.ServeHTTP(w, r)
				return
			}

			target := *r.URL
			target.Path = trimmed
			target.RawPath = ""
			http.Redirect(w, r, target.RequestURI(), http.StatusTemporaryRedirect)
		})
	}
}

func matchesAnyMethod(router *chi.Mux, path string) bool {
	for _, method := range routableMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			return true
		}
	}
	return false
}
