// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
)

// suggestMessages answers with "q1||q2||q3" as plain text. It never fails.
func (h *Handler) suggestMessages(w http.ResponseWriter, r *http.Request) {
	suggestions := h.services.SuggestionService.Suggest(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(suggestions))
}

func (h *Handler) refineMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefineRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	refined, err := h.services.SuggestionService.Refine(r.Context(), req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: refined}, http.StatusOK)
}
