// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user in the users collection.
type userDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Username            string             `bson:"username"`
	Email               string             `bson:"email"`
	Password            string             `bson:"password"`
	IsVerified          bool               `bson:"isVerified"`
	IsAcceptingMessages bool               `bson:"isAcceptingMessages"`
	Messages            []models.Message   `bson:"messages,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:                  d.ID.Hex(),
		Username:            d.Username,
		Email:               d.Email,
		PasswordHash:        d.Password,
		IsVerified:          d.IsVerified,
		IsAcceptingMessages: d.IsAcceptingMessages,
		Messages:            d.Messages,
		CreatedAt:           d.CreatedAt,
	}
}

// withoutMessages keeps lookups from pulling the whole inbox.
var withoutMessages = bson.M{"messages": 0}

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
type mongoUserRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
	now    func() time.Time
}

// NewMongoUserRepository constructs a [UserRepository] over the users
// collection of m.
func NewMongoUserRepository(m *Mongo, logger *logger.Logger) UserRepository {
	return newMongoUserRepository(m.Database.Collection(usersCollection), logger)
}

func newMongoUserRepository(users *mongo.Collection, logger *logger.Logger) *mongoUserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		logger: logger,
		users:  users,
		now:    time.Now,
	}
}

func (r *mongoUserRepository) FindVerifiedByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindVerifiedByUsername", bson.M{"username": username, "isVerified": true}, nil)
}

func (r *mongoUserRepository) FindUnverifiedByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindUnverifiedByUsername", bson.M{"username": username, "isVerified": false}, nil)
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "FindByUsername", bson.M{"username": username}, nil)
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindByEmail", bson.M{"email": email},
		bson.D{{Key: "isVerified", Value: -1}, {Key: "createdAt", Value: 1}})
}

func (r *mongoUserRepository) findOne(ctx context.Context, op string, filter bson.M, sort bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetProjection(withoutMessages)
	if sort != nil {
		opts.SetSort(sort)
	}

	var doc userDocument
	if err := r.users.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*mongoUserRepository."+op).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.toModel(), nil
}

// UpsertUnverified implements [UserRepository] with a single FindOneAndUpdate.
// Without a target the filter is {username, isVerified: false} with upsert,
// so a verified holder of the username trips the unique index instead of
// being overwritten.
func (r *mongoUserRepository) UpsertUnverified(ctx context.Context, targetID string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		filter bson.M
		update bson.M
		opts   = options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(withoutMessages)
	)

	if targetID == "" {
		filter = bson.M{"username": user.Username, "isVerified": false}
		update = bson.M{
			"$set": bson.M{
				"email":      user.Email,
				"password":   user.PasswordHash,
				"isVerified": false,
			},
			"$setOnInsert": bson.M{
				"isAcceptingMessages": true,
				"messages":            []models.Message{},
				"createdAt":           r.now().UTC(),
			},
		}
		opts.SetUpsert(true)
	} else {
		id, err := primitive.ObjectIDFromHex(targetID)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %s", ErrInvalidID, targetID)
		}
		filter = bson.M{"_id": id, "isVerified": false}
		update = bson.M{
			"$set": bson.M{
				"username":   user.Username,
				"email":      user.Email,
				"password":   user.PasswordHash,
				"isVerified": false,
			},
		}
	}

	var doc userDocument
	err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	switch {
	case err == nil:
		return doc.toModel(), nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserAlreadyVerified
	case mongo.IsDuplicateKeyError(err):
		if targetID == "" {
			return models.User{}, ErrUserAlreadyVerified
		}
		return models.User{}, ErrUsernameConflict
	default:
		log.Err(err).Str("func", "*mongoUserRepository.UpsertUnverified").Msg("error writing user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

func (r *mongoUserRepository) MarkVerified(ctx context.Context, username string) error {
	return r.updateOne(ctx, "MarkVerified", username, bson.M{"$set": bson.M{"isVerified": true}})
}

func (r *mongoUserRepository) AppendMessage(ctx context.Context, username string, msg models.Message) error {
	return r.updateOne(ctx, "AppendMessage", username, bson.M{"$push": bson.M{"messages": msg}})
}

func (r *mongoUserRepository) updateOne(ctx context.Context, op, username string, update bson.M) error {
	log := logger.FromContext(ctx)

	res, err := r.users.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository."+op).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
