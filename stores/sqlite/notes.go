// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/playbymail/civil/cerrs"
	"github.com/playbymail/civil/domains"
)

// CreateNote adds a note to one of the user's decks. Content is the
// raw markup source; rendering happens at read time.
func (s *Store) CreateNote(userId, deckId domains.ID, kind domains.NoteKind, content string) (*domains.Note_t, error) {
	if !kind.Known() {
		return nil, cerrs.ErrInvalidNoteKind
	}

	// the deck lookup doubles as the ownership check
	if _, err := s.GetDeck(userId, deckId); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rslt, err := s.db.ExecContext(s.ctx,
		`INSERT INTO notes (deck_id, kind, content, created_at, updated_at) VALUES (?1, ?2, ?3, ?4, ?4)`,
		int64(deckId), string(kind), content, now)
	if err != nil {
		return nil, err
	}
	id, err := rslt.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domains.Note_t{
		ID:      domains.ID(id),
		DeckId:  deckId,
		Kind:    kind,
		Content: content,
		Created: now,
		Updated: now,
	}, nil
}

// GetNote returns the note if it lives in one of the user's decks.
func (s *Store) GetNote(userId, noteId domains.ID) (*domains.Note_t, error) {
	var note domains.Note_t
	var kind string
	row := s.db.QueryRowContext(s.ctx,
		`SELECT n.id, n.deck_id, n.kind, n.content, n.created_at, n.updated_at
         FROM notes n, decks d
         WHERE n.id = ?1 AND n.deck_id = d.id AND d.user_id = ?2`,
		int64(noteId), int64(userId))
	if err := row.Scan(&note.ID, &note.DeckId, &kind, &note.Content, &note.Created, &note.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerrs.ErrNoteNotFound
		}
		return nil, err
	}
	note.Kind = domains.NoteKind(kind)
	return &note, nil
}

// ListNotesForDeck returns the deck's notes in creation order.
func (s *Store) ListNotesForDeck(userId, deckId domains.ID) ([]*domains.Note_t, error) {
	if _, err := s.GetDeck(userId, deckId); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(s.ctx,
		`SELECT id, deck_id, kind, content, created_at, updated_at
         FROM notes WHERE deck_id = ?1 ORDER BY id`,
		int64(deckId))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domains.Note_t
	for rows.Next() {
		var note domains.Note_t
		var kind string
		if err := rows.Scan(&note.ID, &note.DeckId, &kind, &note.Content, &note.Created, &note.Updated); err != nil {
			return nil, err
		}
		note.Kind = domains.NoteKind(kind)
		notes = append(notes, &note)
	}
	return notes, rows.Err()
}

// UpdateNote replaces the note's content.
func (s *Store) UpdateNote(userId, noteId domains.ID, content string) (*domains.Note_t, error) {
	note, err := s.GetNote(userId, noteId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := s.db.ExecContext(s.ctx,
		`UPDATE notes SET content = ?1, updated_at = ?2 WHERE id = ?3`,
		content, now, int64(noteId)); err != nil {
		return nil, err
	}

	note.Content = content
	note.Updated = now
	return note, nil
}

// DeleteNote removes the note and, via foreign keys, its cards.
func (s *Store) DeleteNote(userId, noteId domains.ID) error {
	if _, err := s.GetNote(userId, noteId); err != nil {
		return err
	}
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM notes WHERE id = ?1`, int64(noteId))
	return err
}
