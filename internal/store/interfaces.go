// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local user records that mirror identity
// provider accounts. Two backends implement [UserRepository]: PostgreSQL
// (database/sql over pgx, queries built with squirrel, schema managed by
// goose) and MongoDB. [NewStorages] selects one from configuration.
//
// Both backends enforce a unique username and expose a single conditional
// write, [UserRepository.UpsertUnverified], so that concurrent registrations
// for one username cannot create two records or overwrite a verified one.
package store

import (
	"context"

	"github.com/MKhiriev/truvoice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes local user records. Find methods return
// [ErrNoUserWasFound] when nothing matches and never load Messages.
type UserRepository interface {
	// FindVerifiedByUsername returns the verified record owning username.
	FindVerifiedByUsername(ctx context.Context, username string) (models.User, error)

	// FindUnverifiedByUsername returns the unverified record holding username.
	FindUnverifiedByUsername(ctx context.Context, username string) (models.User, error)

	// FindByUsername returns the record holding username regardless of state.
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByEmail returns a record with this email. Verified records are
	// preferred, then the oldest one.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// UpsertUnverified writes user as an unverified record in one
	// conditional statement and returns the stored state.
	//
	// With a non-empty targetID the record with that ID is overwritten
	// (username, email, password hash, is_verified=false) only while it is
	// still unverified; otherwise [ErrUserAlreadyVerified]. A username held by
	// another record yields [ErrUsernameConflict].
	//
	// With an empty targetID the unverified record holding user.Username is
	// overwritten, or a new record is inserted with messages accepted and no
	// messages. If a verified record holds the username the result is
	// [ErrUserAlreadyVerified].
	UpsertUnverified(ctx context.Context, targetID string, user models.User) (models.User, error)

	// MarkVerified sets is_verified on the record holding username.
	MarkVerified(ctx context.Context, username string) error

	// AppendMessage adds msg to the end of the user's messages.
	AppendMessage(ctx context.Context, username string, msg models.Message) error
}
