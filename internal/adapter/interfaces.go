// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound collaborators of the TruVoice server:
// the identity provider that owns account credentials and confirmation codes,
// and the generative model used for message suggestions.
//
// [IdentityProvider] is implemented on top of AWS Cognito
// ([NewCognitoIdentityProvider]); [TextGenerator] on top of the Gemini REST
// API ([NewGeminiTextGenerator]).
//
// Error values defined in errors.go are mapped from provider exceptions and
// HTTP status codes so that callers can use [errors.Is] for provider-agnostic
// error handling (e.g. [ErrCodeMismatch] for a wrong confirmation code).
package adapter

import (
	"context"

	"github.com/MKhiriev/truvoice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider is the remote authority over account existence and
// confirmation state. Every call that acts on behalf of a user carries the
// app client secret hash computed from the username.
type IdentityProvider interface {
	// SignUp creates an unconfirmed account and triggers delivery of a
	// confirmation code to email.
	SignUp(ctx context.Context, username, password, email string) (models.SignUpResult, error)

	// ConfirmSignUp moves the account from unconfirmed to confirmed when code
	// is correct and unexpired.
	ConfirmSignUp(ctx context.Context, username, code string) error

	// ResendConfirmationCode issues a new confirmation code for an
	// unconfirmed account.
	ResendConfirmationCode(ctx context.Context, username string) (models.CodeDelivery, error)

	// GetUserStatus reports the account state. An account the provider does
	// not know yields [models.AccountUnknown] and a nil error.
	GetUserStatus(ctx context.Context, username string) (models.AccountStatus, error)
}

// TextGenerator produces text for a single prompt.
type TextGenerator interface {
	// Generate returns the model's answer to prompt. It fails with
	// [ErrGeneratorNotConfigured] when no API key is set.
	Generate(ctx context.Context, prompt string) (string, error)
}
