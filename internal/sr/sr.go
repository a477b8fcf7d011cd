// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sr implements the SM-2 spaced repetition schedule used for
// flashcard reviews. It is pure calculation; persistence lives in the
// store.
package sr

import (
	"math"
	"time"

	"github.com/playbymail/civil/cerrs"
)

// CardState is the scheduling state carried by a card between reviews.
type CardState struct {
	NextTestDate            time.Time
	EasinessFactor          float64
	InterRepetitionInterval int // days
}

const (
	// MinRating and MaxRating bound the self-assessed recall quality.
	MinRating = 0
	MaxRating = 5

	// DefaultEasinessFactor seeds a freshly created card.
	DefaultEasinessFactor = 2.5

	// DefaultInterval is the first repetition interval in days.
	DefaultInterval = 1

	// minEasinessFactor is the SM-2 floor; below this every review
	// would repeat near-daily forever.
	minEasinessFactor = 1.3
)

// NewCardState returns the state for a card that has never been
// reviewed. The first test is due immediately.
func NewCardState(now time.Time) CardState {
	return CardState{
		NextTestDate:            now.UTC(),
		EasinessFactor:          DefaultEasinessFactor,
		InterRepetitionInterval: DefaultInterval,
	}
}

// Rate applies one review to the card state. Rating runs from 0
// (total blackout) to 5 (perfect recall). A rating below 3 resets the
// interval to a single day; otherwise the interval progresses
// 1 -> 6 -> round(previous * EF). The easiness factor is adjusted per
// SM-2 and never drops below the floor.
func Rate(card CardState, rating int, now time.Time) (CardState, error) {
	if rating < MinRating || rating > MaxRating {
		return CardState{}, cerrs.ErrInvalidRating
	}

	q := float64(rating)
	ef := card.EasinessFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < minEasinessFactor {
		ef = minEasinessFactor
	}

	interval := DefaultInterval
	if rating >= 3 {
		switch card.InterRepetitionInterval {
		case 0, 1:
			interval = 6
		default:
			interval = int(math.Round(float64(card.InterRepetitionInterval) * ef))
		}
	}

	return CardState{
		NextTestDate:            now.UTC().AddDate(0, 0, interval),
		EasinessFactor:          ef,
		InterRepetitionInterval: interval,
	}, nil
}
