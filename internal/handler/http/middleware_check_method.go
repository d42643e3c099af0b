// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists but is not served for the requested method answers 404
// instead of chi's default 405, so callers cannot probe for routes.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// parameterised patterns are matched too
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound answers every unknown route with the API envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.APIResponse{Success: false, Message: "Not found"}, http.StatusNotFound)
}
