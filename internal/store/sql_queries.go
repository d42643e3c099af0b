// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/truvoice/models"
	"github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"is_verified",
	"is_accepting_messages",
	"created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

// buildFindUserQuery selects a single user matching where.
func buildFindUserQuery(where squirrel.Sqlizer, orderBy ...string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy(orderBy...).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertUnverifiedByUsernameQuery inserts a fresh unverified record or,
// when the username is taken by an unverified record, overwrites that one.
// A verified holder makes the conflict branch a no-op, so nothing is returned.
func buildUpsertUnverifiedByUsernameQuery(id string, user models.User, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns(userColumns...).
		Values(id, user.Username, user.Email, user.PasswordHash, false, true, now).
		Suffix(`ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			is_verified = false
		WHERE users.is_verified = false`).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildOverwriteUnverifiedByIDQuery overwrites the record with id while it is
// still unverified.
func buildOverwriteUnverifiedByIDQuery(id string, user models.User) (string, []any, error) {
	query, args, err := psql.
		Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("is_verified", false).
		Where(squirrel.Eq{"id": id, "is_verified": false}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkVerifiedQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Update(usersTable).
		Set("is_verified", true).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAppendMessageQuery inserts a message for the user holding username in
// one statement; no row is inserted when the user does not exist.
func buildAppendMessageQuery(username string, msg models.Message) (string, []any, error) {
	owner := squirrel.
		Select("id").
		Column(squirrel.Expr("?::text", msg.Content)).
		Column(squirrel.Expr("?::timestamptz", msg.CreatedAt)).
		From(usersTable).
		Where(squirrel.Eq{"username": username})

	query, args, err := psql.
		Insert(messagesTable).
		Columns("user_id", "content", "created_at").
		Select(owner).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
