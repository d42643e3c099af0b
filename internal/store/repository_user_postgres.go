// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// idGenerator issues primary keys for new rows.
type idGenerator interface {
	Generate() string
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    idGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, ids idGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

func (r *userRepository) FindVerifiedByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindVerifiedByUsername", squirrel.Eq{"username": username, "is_verified": true})
}

func (r *userRepository) FindUnverifiedByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindUnverifiedByUsername", squirrel.Eq{"username": username, "is_verified": false})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindByUsername", squirrel.Eq{"username": username})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindByEmail", squirrel.Eq{"email": email}, "is_verified DESC", "created_at ASC")
}

func (r *userRepository) findOne(ctx context.Context, op string, where squirrel.Sqlizer, orderBy ...string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(where, orderBy...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error building query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository."+op).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpsertUnverified implements [UserRepository] with a single statement:
// INSERT .. ON CONFLICT (username) DO UPDATE .. WHERE not verified for the
// username path, and a guarded UPDATE for an explicit target.
//
// Error handling:
//   - no row returned → [ErrUserAlreadyVerified].
//   - PostgreSQL unique_violation (23505) → [ErrUsernameConflict].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpsertUnverified(ctx context.Context, targetID string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		query string
		args  []any
		err   error
	)
	if targetID == "" {
		query, args, err = buildUpsertUnverifiedByUsernameQuery(r.ids.Generate(), user, r.now().UTC())
	} else {
		query, args, err = buildOverwriteUnverifiedByIDQuery(targetID, user)
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUnverified").Msg("error building query")
		return models.User{}, err
	}

	saved, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserAlreadyVerified
		}

		log.Err(err).Str("func", "*userRepository.UpsertUnverified").Msg("error writing user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameConflict
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

func (r *userRepository) MarkVerified(ctx context.Context, username string) error {
	query, args, err := buildMarkVerifiedQuery(username)
	if err != nil {
		return err
	}

	return r.execAffectingUser(ctx, "MarkVerified", query, args)
}

func (r *userRepository) AppendMessage(ctx context.Context, username string, msg models.Message) error {
	query, args, err := buildAppendMessageQuery(username, msg)
	if err != nil {
		return err
	}

	return r.execAffectingUser(ctx, "AppendMessage", query, args)
}

// execAffectingUser runs a statement that must touch exactly the rows of one
// existing user; zero affected rows means the user does not exist.
func (r *userRepository) execAffectingUser(ctx context.Context, op, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&user.IsAcceptingMessages,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) != "" {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
