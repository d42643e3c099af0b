// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.metrics.Middleware)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Get("/api/metrics", h.metrics.Handler().ServeHTTP)
	}

	router.Group(func(r chi.Router) {
		r.Use(withDecompression, withCompression)

		// account workflows
		r.Post("/api/sign-up", h.signUp)
		r.Post("/api/verify-code", h.verifyCode)
		r.Post("/api/resend-verification", h.resendVerification)

		// anonymous messages
		r.Post("/api/send-message", h.sendMessage)
		r.Get("/api/accept-messages/{username}", h.acceptMessages)
		r.Post("/api/suggest-messages", h.suggestMessages)
		r.Post("/api/refine-message", h.refineMessage)

		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
