// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// missing connection string for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCognitoConfigs indicates missing identity provider settings.
	ErrInvalidCognitoConfigs = errors.New("invalid cognito configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
