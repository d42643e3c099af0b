// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/service"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/internal/validators"
	"github.com/MKhiriev/truvoice/models"
)

// errorReply is the status and client-facing message an error maps to.
type errorReply struct {
	status  int
	message string
}

// errorStatusMap is checked in order and the first target found in the
// error chain wins.
var errorStatusMap = []struct {
	target error
	reply  errorReply
}{
	{errInvalidJSON, errorReply{http.StatusBadRequest, "Invalid JSON was passed"}},

	{service.ErrInvalidDataProvided, errorReply{http.StatusBadRequest, "Invalid data provided"}},
	{service.ErrVerifyFieldsRequired, errorReply{http.StatusBadRequest, "Username and verification code are required"}},
	{service.ErrUsernameRequired, errorReply{http.StatusBadRequest, "Username is required"}},
	{service.ErrMessageRequired, errorReply{http.StatusBadRequest, "Message is required"}},

	{service.ErrUsernameTaken, errorReply{http.StatusBadRequest, "Username is already taken"}},
	{service.ErrEmailExists, errorReply{http.StatusBadRequest, "User already exists with this email"}},
	{service.ErrSignUpRejected, errorReply{http.StatusBadRequest, "Error registering user"}},
	{service.ErrRegistrationFailed, errorReply{http.StatusInternalServerError, "Error registering user"}},

	{service.ErrInvalidCode, errorReply{http.StatusBadRequest, "Invalid verification code"}},
	{service.ErrCodeExpired, errorReply{http.StatusBadRequest, "Verification code has expired"}},
	{service.ErrUserNotFound, errorReply{http.StatusNotFound, "User not found"}},
	{service.ErrAlreadyVerified, errorReply{http.StatusBadRequest, "User is already verified"}},
	{service.ErrVerificationFailed, errorReply{http.StatusInternalServerError, "Verification failed"}},
	{service.ErrResendFailed, errorReply{http.StatusBadRequest, "Error resending verification code"}},

	{service.ErrNotAcceptingMessages, errorReply{http.StatusForbidden, "User is not accepting messages"}},
	{service.ErrSendMessageFailed, errorReply{http.StatusInternalServerError, "Error sending message"}},
	{service.ErrStatusLookupFailed, errorReply{http.StatusInternalServerError, "Error getting message acceptance status"}},

	{service.ErrGeneratorNotConfigured, errorReply{http.StatusInternalServerError, "Gemini API key not configured"}},
	{service.ErrRefineFailed, errorReply{http.StatusInternalServerError, "Failed to refine message. Please try again."}},
}

var internalErrorReply = errorReply{http.StatusInternalServerError, "Internal server error"}

func replyFromError(err error) errorReply {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.reply
		}
	}
	return internalErrorReply
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// messageFromError builds the client-facing message for err. Invalid
// registration or message data names the offending field; the other request
// errors keep their fixed wording. Provider rejections carry the provider's
// own text.
func messageFromError(err error) string {
	var fieldErr *validators.FieldError
	if errors.Is(err, service.ErrInvalidDataProvided) && errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}

	reply := replyFromError(err)
	detail := service.Detail(err)
	switch {
	case detail == "":
		return reply.message
	case errors.Is(err, service.ErrSignUpRejected):
		return detail
	default:
		return reply.message + ": " + detail
	}
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.APIResponse{Success: false, Message: messageFromError(err)}, status)
}
