// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playbymail/civil/cerrs"
	"github.com/playbymail/civil/domains"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser creates a new user with a bcrypt hashed password.
// The email is normalized to lower case.
func (s *Store) CreateUser(email, plainTextSecret string) (*domains.User_t, error) {
	if strings.TrimSpace(email) != email || !strings.Contains(email, "@") {
		return nil, cerrs.ErrInvalidEmail
	}
	email = strings.ToLower(email)

	// hash the password. can fail if the password is too long.
	hashedPassword, err := HashPassword(plainTextSecret)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rslt, err := s.db.ExecContext(s.ctx,
		`INSERT INTO users (email, hashed_password, created_at) VALUES (?1, ?2, ?3)`,
		email, hashedPassword, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return nil, cerrs.ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := rslt.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domains.User_t{
		ID:             domains.ID(id),
		Email:          email,
		HashedPassword: hashedPassword,
		Created:        now,
	}, nil
}

// AuthenticateUser verifies the password for the email and returns
// the user. The caller gets ErrInvalidCredentials whether the email is
// unknown or the password is wrong; the distinction stays in the logs.
func (s *Store) AuthenticateUser(email, plainTextSecret string) (*domains.User_t, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user domains.User_t
	var lastLogin sql.NullTime
	row := s.db.QueryRowContext(s.ctx,
		`SELECT id, email, hashed_password, created_at, last_login FROM users WHERE email = ?1`,
		email)
	if err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.Created, &lastLogin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("db: auth: %q: unknown email\n", email)
			return nil, cerrs.ErrInvalidCredentials
		}
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	if !CheckPassword(user.HashedPassword, plainTextSecret) {
		log.Printf("db: auth: %q: password mismatch\n", email)
		return nil, cerrs.ErrInvalidCredentials
	}

	if _, err := s.db.ExecContext(s.ctx,
		`UPDATE users SET last_login = ?1 WHERE id = ?2`,
		time.Now().UTC(), user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateSession replaces any existing sessions for the user with a
// fresh one and returns its id.
func (s *Store) CreateSession(userId domains.ID, ttl time.Duration) (string, error) {
	if err := s.DeleteUserSessions(userId); err != nil {
		return "", err
	}

	sessionId := uuid.NewString()
	now := time.Now().UTC()
	if _, err := s.db.ExecContext(s.ctx,
		`INSERT INTO sessions (sess_id, user_id, created_at, expires_at) VALUES (?1, ?2, ?3, ?4)`,
		sessionId, int64(userId), now, now.Add(ttl)); err != nil {
		return "", err
	}

	return sessionId, nil
}

func (s *Store) DeleteUserSessions(userId domains.ID) error {
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM sessions WHERE user_id = ?1`, int64(userId))
	return err
}

// GetSession resolves a session id to its user.
// Expired sessions are deleted on sight.
func (s *Store) GetSession(id string) (*domains.User_t, error) {
	var userId int64
	var expiresAt time.Time
	row := s.db.QueryRowContext(s.ctx,
		`SELECT user_id, expires_at FROM sessions WHERE sess_id = ?1`, id)
	if err := row.Scan(&userId, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domains.ErrInvalidSession
		}
		return nil, err
	}

	if !time.Now().Before(expiresAt) {
		_, _ = s.db.ExecContext(s.ctx, `DELETE FROM sessions WHERE sess_id = ?1`, id)
		return nil, cerrs.ErrSessionExpired
	}

	var user domains.User_t
	var lastLogin sql.NullTime
	row = s.db.QueryRowContext(s.ctx,
		`SELECT id, email, created_at, last_login FROM users WHERE id = ?1`, userId)
	if err := row.Scan(&user.ID, &user.Email, &user.Created, &lastLogin); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	return &user, nil
}

// HashPassword uses bcrypt with the default cost.
func HashPassword(plainTextSecret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainTextSecret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashedPassword, plainTextSecret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainTextSecret)) == nil
}
