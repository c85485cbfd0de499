// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-vault/internal/app"
	"github.com/MKhiriev/legacy-vault/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with the plain-text body "Method Not Allowed" and an Allow header
// listing the methods registered for the requested path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); allowed != "" {
			w.Header().Set("Allow", allowed)
		}
		utils.WriteText(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// allowedMethods looks up the route whose pattern equals path exactly.
func allowedMethods(router *chi.Mux, path string) string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		sort.Strings(methods)
		return strings.Join(methods, ", ")
	}
	return ""
}
