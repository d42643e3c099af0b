// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// Mongo wraps a connected client and the database holding the users
// collection.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings the primary and makes sure the
// users collection carries its indexes.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error pinging mongo")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	m := &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
		logger:   log,
	}

	if err = m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("database", cfg.Database).Msg("connected to mongo")
	return m, nil
}

// EnsureIndexes creates the unique username index and the email lookup
// index. Creating an existing index is a no-op.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Database.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes())
	if err != nil {
		m.logger.Err(err).Str("func", "*Mongo.EnsureIndexes").Msg("error creating indexes")
		return fmt.Errorf("error creating indexes: %w", err)
	}
	return nil
}

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email"),
		},
	}
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
