// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/truvoice/internal/adapter"
	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/store"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
)

const (
	msgRegistered  = "User registered successfully. Please check your email for the verification code."
	msgVerified    = "Account verified successfully"
	msgCodeResent  = "Verification code resent successfully"
	unknownProblem = "Unknown error"
)

// authService is the concrete implementation of AuthService.
// The identity provider owns credentials and the confirmation lifecycle; the
// user repository only mirrors it.
type authService struct {
	// userRepository holds the local mirror of provider accounts.
	userRepository store.UserRepository

	// provider is the remote identity provider.
	provider adapter.IdentityProvider

	// hashCost is the bcrypt cost of the locally stored password hash.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the given repository and
// identity provider.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, provider adapter.IdentityProvider, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		provider:       provider,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// Register creates the provider account and reconciles the local record.
//
// Before the provider is called:
//   - a verified record holding the username yields ErrUsernameTaken;
//   - a verified record holding the email yields ErrEmailExists.
//
// After a successful sign-up the local write reuses the unverified record
// holding the username, else the unverified record holding the email, else
// inserts a new one. A provider failure leaves the store untouched.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("username", req.Username).Logger()

	if _, err := a.userRepository.FindVerifiedByUsername(ctx, req.Username); err == nil {
		log.Info().Msg("username is held by a verified user")
		return models.AuthResult{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("verified user lookup failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	byEmail, err := a.userRepository.FindByEmail(ctx, req.Email)
	emailMatch := err == nil
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user lookup by email failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	if emailMatch && byEmail.IsVerified {
		log.Info().Msg("email is held by a verified user")
		return models.AuthResult{}, ErrEmailExists
	}

	_, err = a.userRepository.FindUnverifiedByUsername(ctx, req.Username)
	usernameMatch := err == nil
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("unverified user lookup failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if _, err = a.provider.SignUp(ctx, req.Username, req.Password, req.Email); err != nil {
		log.Err(err).Msg("identity provider sign-up failed")
		return models.AuthResult{}, mapSignUpError(err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	// the username-keyed upsert covers both the reuse-by-username and the
	// insert case; only an email-only match needs an explicit target
	targetID := ""
	if !usernameMatch && emailMatch {
		targetID = byEmail.ID
	}

	_, err = a.userRepository.UpsertUnverified(ctx, targetID, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("target_id", targetID).Msg("local user write failed after provider sign-up")
		return models.AuthResult{}, mapUpsertError(err, targetID)
	}

	log.Info().Bool("reused_by_username", usernameMatch).Bool("reused_by_email", targetID != "").Msg("user registered")
	return models.AuthResult{Message: msgRegistered}, nil
}

// Verify confirms the account with the provider, then marks the local record
// verified. The local update is best-effort: the provider is authoritative,
// so a missing record or a failed write is logged and success is reported.
func (a *authService) Verify(ctx context.Context, req models.VerifyRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("username", req.Username).Logger()

	if err := a.provider.ConfirmSignUp(ctx, req.Username, req.VerificationCode); err != nil {
		log.Err(err).Msg("identity provider confirmation failed")
		return models.AuthResult{}, mapConfirmError(err)
	}

	if err := a.userRepository.MarkVerified(ctx, req.Username); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Msg("confirmed user has no local record")
		} else {
			log.Err(err).Msg("confirmed user could not be marked verified locally")
		}
	}

	log.Info().Msg("user verified")
	return models.AuthResult{Message: msgVerified}, nil
}

// ResendCode issues a fresh confirmation code for an account that exists and
// is not yet confirmed.
func (a *authService) ResendCode(ctx context.Context, req models.ResendRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("username", req.Username).Logger()

	status, err := a.provider.GetUserStatus(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("identity provider status lookup failed")
		return models.AuthResult{}, &DetailedError{Err: ErrResendFailed, Detail: providerDetail(err)}
	}

	switch status {
	case models.AccountUnknown:
		return models.AuthResult{}, ErrUserNotFound
	case models.AccountConfirmed:
		return models.AuthResult{}, ErrAlreadyVerified
	}

	delivery, err := a.provider.ResendConfirmationCode(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("identity provider resend failed")
		return models.AuthResult{}, &DetailedError{Err: ErrResendFailed, Detail: providerDetail(err)}
	}

	log.Info().Str("destination", delivery.Destination).Msg("confirmation code resent")
	return models.AuthResult{Message: msgCodeResent}, nil
}

func mapSignUpError(err error) error {
	if errors.Is(err, adapter.ErrProviderUnavailable) {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return &DetailedError{Err: ErrSignUpRejected, Detail: providerDetail(err)}
}

func mapConfirmError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrCodeMismatch):
		return ErrInvalidCode
	case errors.Is(err, adapter.ErrCodeExpired):
		return ErrCodeExpired
	case errors.Is(err, adapter.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, adapter.ErrAlreadyConfirmed):
		return ErrAlreadyVerified
	default:
		return &DetailedError{Err: ErrVerificationFailed, Detail: providerDetail(err)}
	}
}

func mapUpsertError(err error, targetID string) error {
	switch {
	case errors.Is(err, store.ErrUserAlreadyVerified) && targetID != "":
		return ErrEmailExists
	case errors.Is(err, store.ErrUserAlreadyVerified), errors.Is(err, store.ErrUsernameConflict):
		return ErrUsernameTaken
	default:
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
}

func providerDetail(err error) string {
	if msg := adapter.ProviderMessage(err); msg != "" {
		return msg
	}
	return unknownProblem
}
