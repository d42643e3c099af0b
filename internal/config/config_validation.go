// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultHTTPAddress   = "localhost:8080"
	defaultStorageDriver = DriverPostgres
	defaultMongoDatabase = "truvoice"
	defaultLogLevel      = "debug"
	defaultAIModel       = "gemini-2.5-flash"
	defaultAIBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultAITimeout     = 30 * time.Second
	defaultCognitoRegion = "us-east-1"
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = defaultAIBaseURL
	}
	if cfg.AI.RequestTimeout == 0 {
		cfg.AI.RequestTimeout = defaultAITimeout
	}
	if cfg.Cognito.Region == "" {
		cfg.Cognito.Region = defaultCognitoRegion
	}
}

// validate checks that the final merged [StructuredConfig] can start the
// server: a known storage driver with its connection string, and a complete
// set of identity provider credentials.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
		}
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" {
			return fmt.Errorf("%w: empty mongo URI", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if missing := cfg.Cognito.missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidCognitoConfigs, strings.Join(missing, ", "))
	}

	if cfg.App.PasswordHashCost < 0 || cfg.App.PasswordHashCost > 31 {
		return fmt.Errorf("%w: password hash cost %d", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	return nil
}

// missing lists the env names of required Cognito settings that are empty.
func (c Cognito) missing() []string {
	required := []struct {
		name  string
		value string
	}{
		{"COGNITO_REGION", c.Region},
		{"COGNITO_USER_POOL_ID", c.UserPoolID},
		{"COGNITO_CLIENT_ID", c.ClientID},
		{"COGNITO_CLIENT_SECRET", c.ClientSecret},
		{"COGNITO_ACCESS_KEY_ID", c.AccessKeyID},
		{"COGNITO_SECRET_ACCESS_KEY", c.SecretAccessKey},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}
