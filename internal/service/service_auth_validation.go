// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/truvoice/internal/validators"
	"github.com/MKhiriev/truvoice/models"
)

// AuthValidationService rejects malformed account requests before any
// store or identity provider call is made.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Verify(ctx context.Context, req models.VerifyRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrVerifyFieldsRequired, err)
	}

	return v.inner.Verify(ctx, req)
}

func (v *AuthValidationService) ResendCode(ctx context.Context, req models.ResendRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrUsernameRequired, err)
	}

	return v.inner.ResendCode(ctx, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// MessageValidationService checks message requests before they reach the
// store.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *MessageValidationService) Send(ctx context.Context, req models.SendMessageRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Send(ctx, req)
}

func (v *MessageValidationService) AcceptingStatus(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, ErrUsernameRequired
	}

	return v.inner.AcceptingStatus(ctx, username)
}

func (v *MessageValidationService) Wrap(inner MessageService) MessageService {
	v.inner = inner
	return v
}
