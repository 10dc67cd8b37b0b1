package progress

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/example/kanastudy/internal/database"
	"github.com/example/kanastudy/internal/spaced_repetition"
	"github.com/example/kanastudy/pkg/models"
)

// Persisted state lives under three independent keys, each a JSON object.
const (
	progressKey      = "kana_progress"
	wordProgressKey  = "kana_word_progress"
	dailyPracticeKey = "kana_daily_practice"
)

// Tracker is the progress store: per-character and per-word practice
// results, SRS scheduling state, and the daily practice log, persisted
// through an injected key-value store.
//
// Every operation is a whole-blob read-modify-write. Corrupt or missing
// blobs read as empty; failed writes are logged and the in-memory result is
// still returned, so no operation here is fatal.
type Tracker struct {
	store database.Store
	sm2   *spaced_repetition.SM2
	log   *PracticeLog
	now   func() time.Time
}

// NewTracker creates a tracker persisting through the given store.
func NewTracker(store database.Store) *Tracker {
	return &Tracker{
		store: store,
		sm2:   spaced_repetition.NewSM2(),
		log:   NewPracticeLog(store),
		now:   time.Now,
	}
}

// SetClock overrides the time source for the tracker, its scheduler and its
// practice log. Tests use this to freeze "now".
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
	t.sm2.Now = now
	t.log.now = now
}

// RecordCharacterAttempt records one self-graded attempt at a character,
// creating the record on first sight. It updates counters, appends to the
// history, advances the SRS state and bumps today's practice count.
func (t *Tracker) RecordCharacterAttempt(characterKey string, difficulty models.Difficulty) *models.CharacterProgress {
	progress := t.loadProgress()

	record := progress[characterKey]
	if record == nil {
		record = models.NewCharacterProgress()
		progress[characterKey] = record
	}

	ts := t.now()
	d := difficulty
	correct := difficulty.IsPass()

	record.Attempts++
	if correct {
		record.Correct++
	}
	record.LastAttempt = &ts
	record.History = append(record.History, models.AttemptRecord{
		Timestamp:  ts,
		Correct:    correct,
		Difficulty: &d,
		Source:     models.SourceCharacter,
	})
	next := t.sm2.Next(*record.SRS, difficulty)
	record.SRS = &next

	t.saveProgress(progress)
	t.log.RecordToday()
	return record
}

// RecordWordAttempt records one word attempt. The word is correct iff no
// characters were marked incorrect. Every constituent character also gets a
// character-level attempt (difficulty good on pass, again on fail) plus a
// breakdown tally on the word record. The daily log is bumped once for the
// whole word event.
func (t *Tracker) RecordWordAttempt(wordID string, allCharacterKeys, incorrectCharacterKeys []string) {
	ts := t.now()
	incorrect := make(map[string]bool, len(incorrectCharacterKeys))
	for _, key := range incorrectCharacterKeys {
		incorrect[key] = true
	}

	// Word-level record and per-character breakdown.
	words := t.loadWordProgress()
	wordRecord := words[wordID]
	if wordRecord == nil {
		wordRecord = models.NewWordProgress()
		words[wordID] = wordRecord
	}
	wordRecord.Attempts++
	if len(incorrectCharacterKeys) == 0 {
		wordRecord.Correct++
	}
	wordRecord.LastAttempt = &ts
	for _, key := range allCharacterKeys {
		tally := wordRecord.CharacterBreakdown[key]
		if tally == nil {
			tally = &models.CharacterTally{}
			wordRecord.CharacterBreakdown[key] = tally
		}
		if incorrect[key] {
			tally.Incorrect++
		} else {
			tally.Correct++
		}
	}
	t.saveWordProgress(words)

	// Character-level decomposition: each character of the word counts as
	// one attempt, graded good or again by whether it was missed.
	progress := t.loadProgress()
	for _, key := range allCharacterKeys {
		record := progress[key]
		if record == nil {
			record = models.NewCharacterProgress()
			progress[key] = record
		}
		correct := !incorrect[key]
		record.Attempts++
		if correct {
			record.Correct++
		}
		record.LastAttempt = &ts
		record.History = append(record.History, models.AttemptRecord{
			Timestamp: ts,
			Correct:   correct,
			Source:    models.SourceWord,
			WordID:    wordID,
		})
		difficulty := models.DifficultyAgain
		if correct {
			difficulty = models.DifficultyGood
		}
		next := t.sm2.Next(*record.SRS, difficulty)
		record.SRS = &next
	}
	t.saveProgress(progress)

	t.log.RecordToday()
}

// CharacterStats returns a read-only snapshot for one character.
func (t *Tracker) CharacterStats(characterKey string) models.CharacterStats {
	record := t.loadProgress()[characterKey]
	if record == nil || record.Attempts == 0 {
		return models.CharacterStats{}
	}
	return models.CharacterStats{
		Attempts:    record.Attempts,
		Correct:     record.Correct,
		SuccessRate: models.SuccessRate(record.Correct, record.Attempts),
		LastAttempt: record.LastAttempt,
	}
}

// OverallStats aggregates across every studied character.
func (t *Tracker) OverallStats() models.OverallStats {
	return aggregate(t.loadProgress(), func(string) bool { return true })
}

// OverallStatsForScript aggregates across the characters of one script only.
func (t *Tracker) OverallStatsForScript(script models.Script) models.OverallStats {
	return aggregate(t.loadProgress(), func(key string) bool {
		s, _ := models.ParseCharacterKey(key)
		return s == script
	})
}

func aggregate(progress map[string]*models.CharacterProgress, include func(key string) bool) models.OverallStats {
	var stats models.OverallStats
	for key, record := range progress {
		if !include(key) {
			continue
		}
		stats.CharactersStudied++
		stats.TotalAttempts += record.Attempts
		stats.TotalCorrect += record.Correct
	}
	stats.OverallSuccessRate = models.SuccessRate(stats.TotalCorrect, stats.TotalAttempts)
	return stats
}

// WordStats returns a read-only snapshot for one word.
func (t *Tracker) WordStats(wordID string) models.WordStats {
	record := t.loadWordProgress()[wordID]
	if record == nil || record.Attempts == 0 {
		return models.WordStats{CharacterBreakdown: map[string]*models.CharacterTally{}}
	}
	return models.WordStats{
		Attempts:           record.Attempts,
		Correct:            record.Correct,
		SuccessRate:        models.SuccessRate(record.Correct, record.Attempts),
		LastAttempt:        record.LastAttempt,
		CharacterBreakdown: record.CharacterBreakdown,
	}
}

// WordOverallStats aggregates across every practiced word.
func (t *Tracker) WordOverallStats() models.WordOverallStats {
	words := t.loadWordProgress()

	var stats models.WordOverallStats
	var totalAttempts, totalCorrect int
	for _, record := range words {
		stats.TotalWords++
		if record.Attempts > 0 {
			stats.Attempted++
			totalAttempts += record.Attempts
			totalCorrect += record.Correct
		}
	}
	stats.AverageSuccess = models.SuccessRate(totalCorrect, totalAttempts)
	return stats
}

// WordPerformance pairs a word id with its stats for ranked listings.
type WordPerformance struct {
	WordID string
	Stats  models.WordStats
}

// AllWordStats lists every practiced word sorted by success rate, worst
// first when ascending is true.
func (t *Tracker) AllWordStats(ascending bool) []WordPerformance {
	words := t.loadWordProgress()

	var out []WordPerformance
	for id, record := range words {
		if record.Attempts == 0 {
			continue
		}
		out = append(out, WordPerformance{
			WordID: id,
			Stats: models.WordStats{
				Attempts:           record.Attempts,
				Correct:            record.Correct,
				SuccessRate:        models.SuccessRate(record.Correct, record.Attempts),
				LastAttempt:        record.LastAttempt,
				CharacterBreakdown: record.CharacterBreakdown,
			},
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Stats.SuccessRate < out[j].Stats.SuccessRate
		}
		return out[i].Stats.SuccessRate > out[j].Stats.SuccessRate
	})
	return out
}

// RecentAttempts returns the newest limit attempts across all characters.
func (t *Tracker) RecentAttempts(limit int) []models.RecentAttempt {
	progress := t.loadProgress()

	var all []models.RecentAttempt
	for key, record := range progress {
		for _, attempt := range record.History {
			all = append(all, models.RecentAttempt{CharacterKey: key, AttemptRecord: attempt})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// DueCharacters ranks the candidates due for review, most urgent first.
func (t *Tracker) DueCharacters(candidates []models.Character) []models.Character {
	return t.sm2.DueCharacters(candidates, t.loadProgress())
}

// Streaks returns current/longest consecutive-day practice runs.
func (t *Tracker) Streaks() models.StreakData {
	return t.log.Streaks()
}

// DailyHistory returns the raw per-day attempt counts for calendar views.
func (t *Tracker) DailyHistory() []models.DailyPracticeEntry {
	return t.log.History()
}

// ResetAll clears character progress, word progress and the daily log.
func (t *Tracker) ResetAll() {
	if err := t.store.Delete(progressKey, wordProgressKey, dailyPracticeKey); err != nil {
		log.Printf("Error resetting progress: %v", err)
	}
}

func (t *Tracker) loadProgress() map[string]*models.CharacterProgress {
	raw, err := t.store.Load(progressKey)
	if err != nil {
		log.Printf("Error reading progress: %v", err)
		return map[string]*models.CharacterProgress{}
	}
	if raw == nil {
		return map[string]*models.CharacterProgress{}
	}
	var progress map[string]*models.CharacterProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		log.Printf("Error parsing progress: %v", err)
		return map[string]*models.CharacterProgress{}
	}
	return upgradeProgress(progress)
}

func (t *Tracker) saveProgress(progress map[string]*models.CharacterProgress) {
	raw, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Error encoding progress: %v", err)
		return
	}
	if err := t.store.Save(progressKey, raw); err != nil {
		log.Printf("Error saving progress: %v", err)
	}
}

func (t *Tracker) loadWordProgress() map[string]*models.WordProgress {
	raw, err := t.store.Load(wordProgressKey)
	if err != nil {
		log.Printf("Error reading word progress: %v", err)
		return map[string]*models.WordProgress{}
	}
	if raw == nil {
		return map[string]*models.WordProgress{}
	}
	var words map[string]*models.WordProgress
	if err := json.Unmarshal(raw, &words); err != nil {
		log.Printf("Error parsing word progress: %v", err)
		return map[string]*models.WordProgress{}
	}
	return upgradeWordProgress(words)
}

func (t *Tracker) saveWordProgress(words map[string]*models.WordProgress) {
	raw, err := json.Marshal(words)
	if err != nil {
		log.Printf("Error encoding word progress: %v", err)
		return
	}
	if err := t.store.Save(wordProgressKey, raw); err != nil {
		log.Printf("Error saving word progress: %v", err)
	}
}
