// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/renglo-api/internal/utils"
)

// allowedMethods lists the methods routes serves for path, in sorted order.
func allowedMethods(routes chi.Routes, path string) []string {
	var methods []string
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		rctx := chi.NewRouteContext()
		if routes.Match(rctx, method, path) {
			methods = append(methods, method)
		}
	}
	slices.Sort(methods)
	return methods
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. It is only
// reached for a path some route matches, and answers 405 with an Allow
// header and a JSON error body.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if h.router != nil {
		if methods := allowedMethods(h.router, r.URL.Path); len(methods) > 0 {
			w.Header().Set("Allow", strings.Join(methods, ", "))
		}
	}

	utils.WriteError(w, MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
