// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/metrics"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.metrics.RecordAuthAttempt(metrics.RegisterFailure)
		writeError(w, r, errInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.metrics.RecordAuthAttempt(metrics.RegisterFailure)
		writeError(w, r, err)
		return
	}

	h.metrics.RecordAuthAttempt(metrics.RegisterSuccess)
	log.Info().Str("username", req.Username).Msg("user registered")
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: result.Message}, http.StatusCreated)
}

func (h *Handler) verifyCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.metrics.RecordAuthAttempt(metrics.VerifyFailure)
		writeError(w, r, errInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Verify(r.Context(), req)
	if err != nil {
		h.metrics.RecordAuthAttempt(metrics.VerifyFailure)
		writeError(w, r, err)
		return
	}

	h.metrics.RecordAuthAttempt(metrics.VerifySuccess)
	log.Info().Str("username", req.Username).Msg("user verified")
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: result.Message}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResendRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.metrics.RecordAuthAttempt(metrics.ResendFailure)
		writeError(w, r, errInvalidJSON)
		return
	}

	result, err := h.services.AuthService.ResendCode(r.Context(), req)
	if err != nil {
		h.metrics.RecordAuthAttempt(metrics.ResendFailure)
		writeError(w, r, err)
		return
	}

	h.metrics.RecordAuthAttempt(metrics.ResendSuccess)
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: result.Message}, http.StatusOK)
}
