package models

import "time"

// SRS algorithm constants (SM-2 based).
const (
	MinEasinessFactor     = 1.3
	InitialEasinessFactor = 2.5
	InitialInterval       = 1 // days
)

// Difficulty is the learner's self-graded recall quality. The scale comes
// from the four-button grading UI: 1 is intentionally unused.
type Difficulty int

const (
	// DifficultyAgain means the character was not recalled at all.
	DifficultyAgain Difficulty = 0
	// DifficultyHard means recalled, but with significant effort.
	DifficultyHard Difficulty = 2
	// DifficultyGood means recalled correctly.
	DifficultyGood Difficulty = 3
	// DifficultyEasy means recalled instantly.
	DifficultyEasy Difficulty = 4
)

// IsValid reports whether d is one of the four legal grading values.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyAgain, DifficultyHard, DifficultyGood, DifficultyEasy:
		return true
	}
	return false
}

// IsPass reports whether d counts as a correct recall for aggregate counters.
func (d Difficulty) IsPass() bool {
	return d >= DifficultyGood
}

// SRSState holds the per-item scheduling state of the SM-2 algorithm.
type SRSState struct {
	EasinessFactor float64    `json:"easinessFactor"` // never below MinEasinessFactor
	Interval       int        `json:"interval"`       // days, always >= 1
	Repetitions    int        `json:"repetitions"`    // consecutive passes
	NextReview     *time.Time `json:"nextReview"`     // nil until first review
}

// DefaultSRS returns the scheduling state for an item that has never been
// reviewed.
func DefaultSRS() *SRSState {
	return &SRSState{
		EasinessFactor: InitialEasinessFactor,
		Interval:       InitialInterval,
		Repetitions:    0,
		NextReview:     nil,
	}
}
