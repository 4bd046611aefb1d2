// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for chi.Mux.MethodNotAllowed. It answers 404
// instead of 405 when the path is known but the method is not, so that
// callers cannot probe which methods a route accepts.
//
// Only exact route patterns are compared; routes with URL parameters always
// fall through to 404.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}
		http.NotFound(w, r)
	}
}
