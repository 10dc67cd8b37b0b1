package models

import "time"

// AttemptSource tags where a recorded attempt came from.
type AttemptSource string

const (
	// SourceCharacter marks an attempt from single-character practice.
	SourceCharacter AttemptSource = "character"
	// SourceWord marks a character attempt derived from a word attempt.
	SourceWord AttemptSource = "word"
)

// AttemptRecord is one entry in a character's practice history.
type AttemptRecord struct {
	Timestamp  time.Time     `json:"timestamp"`
	Correct    bool          `json:"correct"`
	Difficulty *Difficulty   `json:"difficulty,omitempty"` // set for character-mode attempts
	Source     AttemptSource `json:"source"`
	WordID     string        `json:"wordId,omitempty"` // set when Source is SourceWord
}

// CharacterProgress accumulates per-character practice results.
// Invariants: Correct <= Attempts and len(History) == Attempts.
type CharacterProgress struct {
	Attempts    int             `json:"attempts"`
	Correct     int             `json:"correct"`
	LastAttempt *time.Time      `json:"lastAttempt"`
	History     []AttemptRecord `json:"history"`
	SRS         *SRSState       `json:"srs,omitempty"` // nil only in legacy persisted data
}

// NewCharacterProgress returns a zeroed record with default SRS state.
func NewCharacterProgress() *CharacterProgress {
	return &CharacterProgress{
		History: []AttemptRecord{},
		SRS:     DefaultSRS(),
	}
}

// CharacterTally counts correct/incorrect outcomes of one character within
// word practice.
type CharacterTally struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// WordProgress accumulates per-word practice results, including how each
// constituent character fared across attempts.
type WordProgress struct {
	Attempts           int                        `json:"attempts"`
	Correct            int                        `json:"correct"`
	LastAttempt        *time.Time                 `json:"lastAttempt"`
	CharacterBreakdown map[string]*CharacterTally `json:"characterBreakdown"`
}

// NewWordProgress returns a zeroed word record.
func NewWordProgress() *WordProgress {
	return &WordProgress{
		CharacterBreakdown: map[string]*CharacterTally{},
	}
}

// CharacterStats is a read-only snapshot of one character's results.
type CharacterStats struct {
	Attempts    int        `json:"attempts"`
	Correct     int        `json:"correct"`
	SuccessRate float64    `json:"successRate"` // percentage, 0-100
	LastAttempt *time.Time `json:"lastAttempt"`
}

// OverallStats aggregates character results across all studied characters.
type OverallStats struct {
	TotalAttempts      int     `json:"totalAttempts"`
	TotalCorrect       int     `json:"totalCorrect"`
	OverallSuccessRate float64 `json:"overallSuccessRate"`
	CharactersStudied  int     `json:"charactersStudied"`
}

// WordStats is a read-only snapshot of one word's results.
type WordStats struct {
	Attempts           int                        `json:"attempts"`
	Correct            int                        `json:"correct"`
	SuccessRate        float64                    `json:"successRate"`
	LastAttempt        *time.Time                 `json:"lastAttempt"`
	CharacterBreakdown map[string]*CharacterTally `json:"characterBreakdown"`
}

// WordOverallStats aggregates word results across all practiced words.
type WordOverallStats struct {
	TotalWords     int     `json:"totalWords"`
	Attempted      int     `json:"attempted"`
	AverageSuccess float64 `json:"averageSuccess"`
}

// RecentAttempt is a history entry joined with the character it belongs to,
// for the recent-activity feed.
type RecentAttempt struct {
	CharacterKey string `json:"characterId"`
	AttemptRecord
}

// SuccessRate computes a percentage with division-by-zero handling.
func SuccessRate(correct, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(correct) / float64(attempts) * 100
}
