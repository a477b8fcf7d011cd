// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package domains

import (
	"errors"
	"time"
)

// ID is the type for identity. It is unique and immutable.
//
// It is used to identify a user, deck, note, or other entity.
//
// We assume that the ID is never deleted or reused.
type ID int64

// Session_t is the type for a session.
type Session_t struct {
	Id        string    // unique identifier for the session
	CreatedAt time.Time // always UTC
	ExpiresAt time.Time // always UTC

	UserId ID // owner of the session
}

// User_t is the type for a user.
type User_t struct {
	ID ID // unique identifier

	Email string // email address, stored lower-cased

	HashedPassword string // bcrypt hashed password

	Created   time.Time // always UTC
	LastLogin time.Time // always UTC, the zero time.Time if never logged in
}

// authentication domain errors

var (
	ErrInvalidSession = errors.New("invalid session")
)
