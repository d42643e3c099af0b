// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Version          string `json:"version"`
		LogLevel         string `json:"log_level"`
		PasswordHashCost int    `json:"password_hash_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Cognito struct {
		Region          string `json:"region"`
		UserPoolID      string `json:"user_pool_id"`
		ClientID        string `json:"client_id"`
		ClientSecret    string `json:"client_secret"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
		Endpoint        string `json:"endpoint"`
	} `json:"cognito,omitempty"`

	AI struct {
		APIKey         string   `json:"gemini_api_key"`
		Model          string   `json:"model"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Cognito: Cognito{
			Region:          jsonCfg.Cognito.Region,
			UserPoolID:      jsonCfg.Cognito.UserPoolID,
			ClientID:        jsonCfg.Cognito.ClientID,
			ClientSecret:    jsonCfg.Cognito.ClientSecret,
			AccessKeyID:     jsonCfg.Cognito.AccessKeyID,
			SecretAccessKey: jsonCfg.Cognito.SecretAccessKey,
			Endpoint:        jsonCfg.Cognito.Endpoint,
		},
		AI: AI{
			APIKey:         jsonCfg.AI.APIKey,
			Model:          jsonCfg.AI.Model,
			BaseURL:        jsonCfg.AI.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.AI.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
