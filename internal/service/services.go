// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/truvoice/internal/adapter"
	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/store"
)

type Services struct {
	AuthService       AuthService
	MessageService    MessageService
	SuggestionService SuggestionService
	AppInfoService    AppInfoService
}

// Adapters groups the remote collaborators the services call.
type Adapters struct {
	IdentityProvider adapter.IdentityProvider
	TextGenerator    adapter.TextGenerator
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, adapters.IdentityProvider, cfg.App, logger))
	messageService := NewMessageValidationService().
		Wrap(NewMessageService(storages.UserRepository, logger))

	return &Services{
		AuthService:       authService,
		MessageService:    messageService,
		SuggestionService: NewSuggestionService(adapters.TextGenerator, cfg.AI, logger),
		AppInfoService:    appInfoService,
	}, nil
}
