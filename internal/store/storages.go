// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
)

// Storages aggregates the repositories of the selected backend together
// with the function that releases its connections.
type Storages struct {
	UserRepository UserRepository

	closeFn func(ctx context.Context) error
}

// NewStorages connects to the backend named by cfg.Driver and builds its
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewUserRepository(db, utils.NewUUIDGenerator(), log),
			closeFn:        func(context.Context) error { return db.Close() },
		}, nil
	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(m, log),
			closeFn:        m.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the backend connections.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
