// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/playbymail/civil/cerrs"
	"github.com/playbymail/civil/domains"
)

// CreateDeck creates a new deck for the user.
// Returns the created deck.
func (s *Store) CreateDeck(userId domains.ID, kind domains.DeckKind, name string) (*domains.Deck_t, error) {
	if !kind.Known() {
		return nil, cerrs.ErrInvalidDeckKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cerrs.ErrNotFound
	}

	now := time.Now().UTC()
	rslt, err := s.db.ExecContext(s.ctx,
		`INSERT INTO decks (user_id, kind, name, created_at) VALUES (?1, ?2, ?3, ?4)`,
		int64(userId), string(kind), name, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: decks.user_id, decks.name") {
			return nil, cerrs.ErrDuplicateDeckName
		}
		return nil, err
	}
	id, err := rslt.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domains.Deck_t{
		ID:      domains.ID(id),
		UserId:  userId,
		Kind:    kind,
		Name:    name,
		Created: now,
	}, nil
}

// GetDeck returns the deck if it belongs to the user.
func (s *Store) GetDeck(userId, deckId domains.ID) (*domains.Deck_t, error) {
	var deck domains.Deck_t
	var kind string
	row := s.db.QueryRowContext(s.ctx,
		`SELECT id, user_id, kind, name, created_at FROM decks WHERE id = ?1 AND user_id = ?2`,
		int64(deckId), int64(userId))
	if err := row.Scan(&deck.ID, &deck.UserId, &kind, &deck.Name, &deck.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerrs.ErrDeckNotFound
		}
		return nil, err
	}
	deck.Kind = domains.DeckKind(kind)
	return &deck, nil
}

// ListDecks returns every deck owned by the user, ordered by name.
func (s *Store) ListDecks(userId domains.ID) ([]*domains.Deck_t, error) {
	rows, err := s.db.QueryContext(s.ctx,
		`SELECT id, user_id, kind, name, created_at FROM decks WHERE user_id = ?1 ORDER BY name`,
		int64(userId))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []*domains.Deck_t
	for rows.Next() {
		var deck domains.Deck_t
		var kind string
		if err := rows.Scan(&deck.ID, &deck.UserId, &kind, &deck.Name, &deck.Created); err != nil {
			return nil, err
		}
		deck.Kind = domains.DeckKind(kind)
		decks = append(decks, &deck)
	}
	return decks, rows.Err()
}

// DeleteDeck removes the deck and, via foreign keys, its notes and
// their cards.
func (s *Store) DeleteDeck(userId, deckId domains.ID) error {
	rslt, err := s.db.ExecContext(s.ctx,
		`DELETE FROM decks WHERE id = ?1 AND user_id = ?2`,
		int64(deckId), int64(userId))
	if err != nil {
		return err
	}
	if n, err := rslt.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return cerrs.ErrDeckNotFound
	}
	return nil
}
