// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError describes the first rule a request field broke. It unwraps to
// [ErrValidationFailed].
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the validation rule that failed (required, min, email, ...).
	Tag string
	// Param is the rule parameter, e.g. "6" for min=6.
	Param string
}

func (e *FieldError) Error() string {
	name := fieldLabel(e.Field)

	switch e.Tag {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param)
	case "max":
		return fmt.Sprintf("%s must be no more than %s characters", name, e.Param)
	case "email":
		return "Invalid email address"
	case tagUsername:
		return "Username must not contain special characters"
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}

var fieldLabels = map[string]string{
	"username":         "Username",
	"email":            "Email",
	"password":         "Password",
	"verificationCode": "Verification code",
	"content":          "Content",
	"message":          "Message",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
