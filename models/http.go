// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/sign-up.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=20,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyRequest is the body of POST /api/verify-code.
type VerifyRequest struct {
	Username         string `json:"username" validate:"required"`
	VerificationCode string `json:"verificationCode" validate:"required"`
}

// ResendRequest is the body of POST /api/resend-verification.
type ResendRequest struct {
	Username string `json:"username" validate:"required"`
}

// SendMessageRequest is the body of POST /api/send-message.
type SendMessageRequest struct {
	Username string `json:"username" validate:"required"`
	Content  string `json:"content" validate:"required,min=10,max=300"`
}

// RefineRequest is the body of POST /api/refine-message.
type RefineRequest struct {
	Message string `json:"message" validate:"required"`
}
