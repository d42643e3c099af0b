// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/truvoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice_01",
		Email:    "a@x.com",
		Password: "Passw0rd!",
	}
}

func requireFieldError(t *testing.T, err error) *FieldError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected *FieldError, got %T", err)
	return fe
}

// ---------------------------------------------------------------------------
// TestNewRequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_RegisterRequest
// ---------------------------------------------------------------------------

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name      string
		mutate    func(r *models.RegisterRequest)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:   "valid",
			mutate: func(r *models.RegisterRequest) {},
		},
		{
			name:      "missing username",
			mutate:    func(r *models.RegisterRequest) { r.Username = "" },
			wantField: "username",
			wantTag:   "required",
			wantMsg:   "Username is required",
		},
		{
			name:      "short username",
			mutate:    func(r *models.RegisterRequest) { r.Username = "a" },
			wantField: "username",
			wantTag:   "min",
			wantMsg:   "Username must be at least 2 characters",
		},
		{
			name:      "long username",
			mutate:    func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 21) },
			wantField: "username",
			wantTag:   "max",
			wantMsg:   "Username must be no more than 20 characters",
		},
		{
			name:      "username with special characters",
			mutate:    func(r *models.RegisterRequest) { r.Username = "al!ce" },
			wantField: "username",
			wantTag:   "username",
			wantMsg:   "Username must not contain special characters",
		},
		{
			name:      "bad email",
			mutate:    func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantField: "email",
			wantTag:   "email",
			wantMsg:   "Invalid email address",
		},
		{
			name:      "short password",
			mutate:    func(r *models.RegisterRequest) { r.Password = "12345" },
			wantField: "password",
			wantTag:   "min",
			wantMsg:   "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			fe := requireFieldError(t, err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantTag, fe.Tag)
			assert.Equal(t, tt.wantMsg, fe.Error())
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Pointer
// ---------------------------------------------------------------------------

func TestValidate_Pointer(t *testing.T) {
	v := NewRequestValidator()
	req := &models.VerifyRequest{Username: "alice"}

	fe := requireFieldError(t, v.Validate(context.Background(), req))
	assert.Equal(t, "verificationCode", fe.Field)
	assert.Equal(t, "Verification code is required", fe.Error())
}

// ---------------------------------------------------------------------------
// TestValidate_Fields
// ---------------------------------------------------------------------------

func TestValidate_Fields(t *testing.T) {
	v := NewRequestValidator()

	// content is too short, but only username is checked
	req := models.SendMessageRequest{Username: "bob", Content: "hi"}
	assert.NoError(t, v.Validate(context.Background(), req, "username"))

	fe := requireFieldError(t, v.Validate(context.Background(), req, "content"))
	assert.Equal(t, "content", fe.Field)
	assert.Equal(t, "Content must be at least 10 characters", fe.Error())
}

// ---------------------------------------------------------------------------
// TestValidate_UnsupportedType
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "alice"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestFieldError
// ---------------------------------------------------------------------------

func TestFieldError_UnknownTagAndField(t *testing.T) {
	fe := &FieldError{Field: "nickname", Tag: "alpha"}

	assert.Equal(t, "nickname is invalid", fe.Error())
	assert.ErrorIs(t, fe, ErrValidationFailed)
}
