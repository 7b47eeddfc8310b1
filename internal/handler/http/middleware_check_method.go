// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/qa-demo-api/internal/app"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// routableMethods are probed when building the Allow header of a 405.
var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with {"detail":"Method Not Allowed"} and an Allow header
// listing the methods registered for the requested path. Parameterised
// patterns such as /orders/{order_id} are matched through [chi.Mux.Match].
//
// If the requested method IS registered for the path, the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		if router.Match(chi.NewRouteContext(), r.Method, requestedURL) {
			router.ServeHTTP(w, r)
			return
		}

		var allowed []string
		for _, method := range routableMethods {
			if router.Match(chi.NewRouteContext(), method, requestedURL) {
				allowed = append(allowed, method)
			}
		}

		// Nothing is registered under this path at all.
		if len(allowed) == 0 {
			utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteDetail(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
}
