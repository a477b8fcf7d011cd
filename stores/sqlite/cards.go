// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/playbymail/civil/cerrs"
	"github.com/playbymail/civil/domains"
	"github.com/playbymail/civil/internal/sr"
)

// CreateCard attaches a flashcard to one of the user's notes. The new
// card is due immediately.
func (s *Store) CreateCard(userId, noteId domains.ID, prompt string) (*domains.Card_t, error) {
	if _, err := s.GetNote(userId, noteId); err != nil {
		return nil, err
	}

	state := sr.NewCardState(time.Now())
	rslt, err := s.db.ExecContext(s.ctx,
		`INSERT INTO cards (user_id, note_id, prompt, next_test_date, easiness_factor, inter_repetition_interval)
         VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
		int64(userId), int64(noteId), prompt,
		state.NextTestDate, state.EasinessFactor, state.InterRepetitionInterval)
	if err != nil {
		return nil, err
	}
	id, err := rslt.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domains.Card_t{
		ID:                      domains.ID(id),
		UserId:                  userId,
		NoteId:                  noteId,
		Prompt:                  prompt,
		NextTestDate:            state.NextTestDate,
		EasinessFactor:          state.EasinessFactor,
		InterRepetitionInterval: state.InterRepetitionInterval,
	}, nil
}

// GetCard returns the card if the user owns it.
func (s *Store) GetCard(userId, cardId domains.ID) (*domains.Card_t, error) {
	var card domains.Card_t
	row := s.db.QueryRowContext(s.ctx,
		`SELECT id, user_id, note_id, prompt, next_test_date, easiness_factor, inter_repetition_interval
         FROM cards WHERE id = ?1 AND user_id = ?2`,
		int64(cardId), int64(userId))
	if err := row.Scan(&card.ID, &card.UserId, &card.NoteId, &card.Prompt,
		&card.NextTestDate, &card.EasinessFactor, &card.InterRepetitionInterval); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerrs.ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// CardsDue returns every card whose next test date has passed.
func (s *Store) CardsDue(userId domains.ID, now time.Time) ([]*domains.Card_t, error) {
	rows, err := s.db.QueryContext(s.ctx,
		`SELECT id, user_id, note_id, prompt, next_test_date, easiness_factor, inter_repetition_interval
         FROM cards WHERE user_id = ?1 AND next_test_date < ?2 ORDER BY next_test_date`,
		int64(userId), now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domains.Card_t
	for rows.Next() {
		var card domains.Card_t
		if err := rows.Scan(&card.ID, &card.UserId, &card.NoteId, &card.Prompt,
			&card.NextTestDate, &card.EasinessFactor, &card.InterRepetitionInterval); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// CardRated applies an SM-2 review to the card and records the rating.
// The card update and the rating row commit in one transaction.
func (s *Store) CardRated(userId, cardId domains.ID, rating int) (*domains.Card_t, error) {
	card, err := s.GetCard(userId, cardId)
	if err != nil {
		return nil, err
	}

	state, err := sr.Rate(sr.CardState{
		NextTestDate:            card.NextTestDate,
		EasinessFactor:          card.EasinessFactor,
		InterRepetitionInterval: card.InterRepetitionInterval,
	}, rating, time.Now())
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(s.ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(s.ctx,
		`UPDATE cards
         SET next_test_date = ?2, easiness_factor = ?3, inter_repetition_interval = ?4
         WHERE id = ?1`,
		int64(cardId), state.NextTestDate, state.EasinessFactor, state.InterRepetitionInterval); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(s.ctx,
		`INSERT INTO card_ratings (card_id, rating) VALUES (?1, ?2)`,
		int64(cardId), rating); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	card.NextTestDate = state.NextTestDate
	card.EasinessFactor = state.EasinessFactor
	card.InterRepetitionInterval = state.InterRepetitionInterval
	return card, nil
}
