// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// IsAcceptingMessages is only set by the accept-messages lookup.
	IsAcceptingMessages *bool `json:"isAcceptingMessages,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// AuthResult is what the account workflows report back to the transport
// layer on success: a human-readable message, usually the identity
// provider's own wording.
type AuthResult struct {
	Message string
}
