// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the local mirror of a TruVoice account.
//
// The identity provider owns credentials and the confirmation lifecycle;
// this record only caches whether the account is verified and holds the
// anonymous messages addressed to the user.
type User struct {
	// ID is the store-assigned identifier (uuid for PostgreSQL, ObjectID hex
	// for MongoDB). It never leaves the server.
	ID string `json:"-" bson:"-"`

	// Username is unique across the store and is the key of the public
	// profile link.
	Username string `json:"username" bson:"username"`

	// Email is a secondary lookup key.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt hash of the password submitted at sign-up.
	// It is only ever overwritten, never compared by this service.
	PasswordHash string `json:"-" bson:"password"`

	// IsVerified is false at creation and becomes true after the identity
	// provider confirms the account.
	IsVerified bool `json:"isVerified" bson:"isVerified"`

	// IsAcceptingMessages is true at creation.
	IsAcceptingMessages bool `json:"isAcceptingMessages" bson:"isAcceptingMessages"`

	// Messages holds anonymous messages in arrival order.
	Messages []Message `json:"messages" bson:"messages"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Message is a single anonymous message left on a user's profile.
type Message struct {
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
