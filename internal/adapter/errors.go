// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Identity provider error categories. Provider failures are returned as a
// [*ProviderError] that unwraps to one of these.
var (
	ErrCodeMismatch     = errors.New("confirmation code mismatch")
	ErrCodeExpired      = errors.New("confirmation code expired")
	ErrUserNotFound     = errors.New("user not found in identity provider")
	ErrAlreadyConfirmed = errors.New("user already confirmed")
	ErrUsernameExists   = errors.New("username already exists in identity provider")
	ErrInvalidPassword  = errors.New("password does not conform to policy")
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrRequestRejected covers any other client-side rejection
	// (throttling, limits, bad secret hash, ...).
	ErrRequestRejected = errors.New("identity provider rejected the request")

	// ErrProviderUnavailable covers transport failures and server-side
	// provider faults.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Text generator errors.
var (
	ErrGeneratorNotConfigured = errors.New("text generator is not configured")
	ErrGeneratorFailed        = errors.New("text generator request failed")
	ErrEmptyGeneration        = errors.New("text generator returned no text")
)

// ProviderError carries the provider's own message next to the error
// category it was classified into.
type ProviderError struct {
	Err     error
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderMessage returns the provider's message carried by err, or "" when
// err holds none.
func ProviderMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return ""
}
