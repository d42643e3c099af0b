// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/store"
	"github.com/MKhiriev/truvoice/models"
)

type messageService struct {
	userRepository store.UserRepository
	now            func() time.Time
	logger         *logger.Logger
}

func NewMessageService(userRepository store.UserRepository, logger *logger.Logger) MessageService {
	return &messageService{
		userRepository: userRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// Send appends an anonymous message to the profile of req.Username, provided
// the user accepts messages.
func (s *messageService) Send(ctx context.Context, req models.SendMessageRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("username", req.Username).Msg("recipient lookup failed")
		return fmt.Errorf("%w: %w", ErrSendMessageFailed, err)
	}

	if !user.IsAcceptingMessages {
		return ErrNotAcceptingMessages
	}

	msg := models.Message{Content: req.Content, CreatedAt: s.now().UTC()}
	if err = s.userRepository.AppendMessage(ctx, req.Username, msg); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("username", req.Username).Msg("message could not be stored")
		return fmt.Errorf("%w: %w", ErrSendMessageFailed, err)
	}

	return nil
}

func (s *messageService) AcceptingStatus(ctx context.Context, username string) (bool, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("status lookup failed")
		return false, fmt.Errorf("%w: %w", ErrStatusLookupFailed, err)
	}

	return user.IsAcceptingMessages, nil
}
