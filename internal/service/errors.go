// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Request errors.
var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrVerifyFieldsRequired = errors.New("username and verification code are required")
	ErrUsernameRequired     = errors.New("username is required")
	ErrMessageRequired      = errors.New("message is required")
)

// Registration errors.
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailExists        = errors.New("user already exists with this email")
	ErrSignUpRejected     = errors.New("identity provider rejected sign-up")
	ErrRegistrationFailed = errors.New("error registering user")
)

// Verification and resend errors.
var (
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code has expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("user is already verified")
	ErrVerificationFailed = errors.New("verification failed")
	ErrResendFailed       = errors.New("error resending verification code")
)

// Message errors.
var (
	ErrNotAcceptingMessages = errors.New("user is not accepting messages")
	ErrSendMessageFailed    = errors.New("error sending message")
	ErrStatusLookupFailed   = errors.New("error getting message acceptance status")
)

// Generator errors.
var (
	ErrGeneratorNotConfigured = errors.New("gemini api key not configured")
	ErrRefineFailed           = errors.New("failed to refine message")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")

// DetailedError attaches a client-facing detail, usually the identity
// provider's own wording, to one of the errors above.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// Detail returns the client-facing detail carried by err, if any.
func Detail(err error) string {
	var de *DetailedError
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}
