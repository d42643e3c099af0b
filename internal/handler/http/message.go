// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
	"github.com/go-chi/chi/v5"
)

const msgMessageSent = "Message sent successfully"

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	if err := h.services.MessageService.Send(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: msgMessageSent}, http.StatusCreated)
}

func (h *Handler) acceptMessages(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	accepting, err := h.services.MessageService.AcceptingStatus(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, IsAcceptingMessages: &accepting}, http.StatusOK)
}
