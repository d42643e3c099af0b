// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/truvoice/models"
)

// AuthService runs the account workflows that keep the local user store in
// step with the identity provider.
type AuthService interface {
	// Register reconciles a sign-up against existing local records and
	// creates the provider account.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Verify submits a one-time code to the provider and mirrors a successful
	// confirmation locally.
	Verify(ctx context.Context, req models.VerifyRequest) (models.AuthResult, error)

	// ResendCode asks the provider for a fresh code unless the account is
	// already confirmed.
	ResendCode(ctx context.Context, req models.ResendRequest) (models.AuthResult, error)
}

// MessageService stores anonymous messages on user profiles.
type MessageService interface {
	Send(ctx context.Context, req models.SendMessageRequest) error
	AcceptingStatus(ctx context.Context, username string) (bool, error)
}

// SuggestionService produces message text with the help of a text generator.
type SuggestionService interface {
	// Suggest never fails; it falls back to a built-in question list.
	Suggest(ctx context.Context) string
	Refine(ctx context.Context, message string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// MessageServiceWrapper defines middleware composition for MessageService.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
