package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/kanastudy/internal/database"
	"github.com/example/kanastudy/pkg/models"
)

func newTestTracker(t *testing.T) (*Tracker, *database.MemoryStore, time.Time) {
	t.Helper()
	store := database.NewMemoryStore()
	tracker := NewTracker(store)
	now := time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)
	tracker.SetClock(func() time.Time { return now })
	return tracker, store, now
}

func TestRecordCharacterAttemptInitializesLazily(t *testing.T) {
	tracker, _, now := newTestTracker(t)

	record := tracker.RecordCharacterAttempt("ka", models.DifficultyGood)

	require.Equal(t, 1, record.Attempts)
	require.Equal(t, 1, record.Correct)
	require.Equal(t, now, *record.LastAttempt)
	require.Len(t, record.History, 1)
	require.Equal(t, models.SourceCharacter, record.History[0].Source)
	require.Equal(t, models.DifficultyGood, *record.History[0].Difficulty)
	require.Equal(t, 1, record.SRS.Repetitions)
}

func TestCorrectNeverExceedsAttempts(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	grades := []models.Difficulty{
		models.DifficultyAgain, models.DifficultyGood, models.DifficultyHard,
		models.DifficultyEasy, models.DifficultyAgain, models.DifficultyGood,
	}
	for _, d := range grades {
		record := tracker.RecordCharacterAttempt("shi", d)
		require.LessOrEqual(t, record.Correct, record.Attempts)
		require.Len(t, record.History, record.Attempts)
		require.GreaterOrEqual(t, record.SRS.EasinessFactor, models.MinEasinessFactor)
		require.GreaterOrEqual(t, record.SRS.Interval, 1)
	}

	stats := tracker.CharacterStats("shi")
	require.Equal(t, 6, stats.Attempts)
	require.Equal(t, 3, stats.Correct) // good, easy, good
	require.InDelta(t, 50.0, stats.SuccessRate, 0.001)
}

func TestCharacterStatsReadIsIdempotent(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	tracker.RecordCharacterAttempt("ka", models.DifficultyHard)

	first := tracker.CharacterStats("ka")
	second := tracker.CharacterStats("ka")
	require.Equal(t, first, second)
}

func TestRecordWordAttemptDecomposes(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	tracker.RecordWordAttempt("sakana", []string{"sa", "ka", "na"}, []string{"ka"})

	// Every character got one attempt; only the ones not marked wrong count
	// as correct.
	for _, key := range []string{"sa", "na"} {
		stats := tracker.CharacterStats(key)
		require.Equal(t, 1, stats.Attempts, key)
		require.Equal(t, 1, stats.Correct, key)
	}
	missed := tracker.CharacterStats("ka")
	require.Equal(t, 1, missed.Attempts)
	require.Equal(t, 0, missed.Correct)

	// The word itself is incorrect because the incorrect list was non-empty.
	wordStats := tracker.WordStats("sakana")
	require.Equal(t, 1, wordStats.Attempts)
	require.Equal(t, 0, wordStats.Correct)
	require.Equal(t, &models.CharacterTally{Correct: 1}, wordStats.CharacterBreakdown["sa"])
	require.Equal(t, &models.CharacterTally{Incorrect: 1}, wordStats.CharacterBreakdown["ka"])

	// One word event bumps the daily log exactly once.
	history := tracker.DailyHistory()
	require.Len(t, history, 1)
	require.Equal(t, 1, history[0].AttemptCount)
}

func TestRecordWordAttemptTagsCharacterHistory(t *testing.T) {
	tracker, store, _ := newTestTracker(t)
	tracker.RecordWordAttempt("sushi", []string{"su", "shi"}, nil)

	recents := tracker.RecentAttempts(10)
	require.Len(t, recents, 2)
	for _, attempt := range recents {
		require.Equal(t, models.SourceWord, attempt.Source)
		require.Equal(t, "sushi", attempt.WordID)
		require.True(t, attempt.Correct)
	}

	// Word-sourced history entries carry no difficulty in the persisted blob.
	raw, err := store.Load("kana_progress")
	require.NoError(t, err)
	require.NotContains(t, string(raw), "difficulty")
}

func TestOverallStatsForScript(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	tracker.RecordCharacterAttempt("ka", models.DifficultyGood)
	tracker.RecordCharacterAttempt("katakana_ka", models.DifficultyAgain)
	tracker.RecordCharacterAttempt("katakana_su", models.DifficultyGood)

	all := tracker.OverallStats()
	require.Equal(t, 3, all.CharactersStudied)
	require.Equal(t, 3, all.TotalAttempts)
	require.Equal(t, 2, all.TotalCorrect)

	kata := tracker.OverallStatsForScript(models.ScriptKatakana)
	require.Equal(t, 2, kata.CharactersStudied)
	require.Equal(t, 1, kata.TotalCorrect)

	hira := tracker.OverallStatsForScript(models.ScriptHiragana)
	require.Equal(t, 1, hira.CharactersStudied)
}

func TestAllWordStatsSorted(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	tracker.RecordWordAttempt("sushi", []string{"su", "shi"}, nil)
	tracker.RecordWordAttempt("neko", []string{"ne", "ko"}, []string{"ne"})

	worstFirst := tracker.AllWordStats(true)
	require.Len(t, worstFirst, 2)
	require.Equal(t, "neko", worstFirst[0].WordID)
	require.Equal(t, "sushi", worstFirst[1].WordID)

	bestFirst := tracker.AllWordStats(false)
	require.Equal(t, "sushi", bestFirst[0].WordID)
}

func TestCorruptBlobReadsAsEmpty(t *testing.T) {
	tracker, store, _ := newTestTracker(t)
	require.NoError(t, store.Save("kana_progress", []byte("{not json")))

	stats := tracker.OverallStats()
	require.Equal(t, models.OverallStats{}, stats)

	// Recording over the corrupt blob starts fresh rather than failing.
	record := tracker.RecordCharacterAttempt("ka", models.DifficultyGood)
	require.Equal(t, 1, record.Attempts)
}

func TestWriteFailureStillReturnsResult(t *testing.T) {
	tracker, store, _ := newTestTracker(t)
	store.FailSaves = errors.New("disk full")

	record := tracker.RecordCharacterAttempt("ka", models.DifficultyGood)
	require.Equal(t, 1, record.Attempts)

	// Nothing was persisted, so a fresh read sees no progress.
	require.Equal(t, 0, tracker.CharacterStats("ka").Attempts)
}

func TestLegacyRecordsUpgradeOnRead(t *testing.T) {
	tracker, store, _ := newTestTracker(t)
	legacy := `{"ka":{"attempts":4,"correct":3,"lastAttempt":null,"history":[]}}`
	require.NoError(t, store.Save("kana_progress", []byte(legacy)))

	record := tracker.RecordCharacterAttempt("ka", models.DifficultyGood)
	require.Equal(t, 5, record.Attempts)
	require.Equal(t, 4, record.Correct)
	// The backfilled default state went through one good review.
	require.Equal(t, 1, record.SRS.Repetitions)
	require.Equal(t, 1, record.SRS.Interval)
}

func TestUpgradeProgressIsPure(t *testing.T) {
	legacy := map[string]*models.CharacterProgress{
		"ka": {Attempts: 2, Correct: 1},
		"su": {Attempts: 1, Correct: 1, SRS: &models.SRSState{EasinessFactor: 2.1, Interval: 3}},
	}
	upgraded := upgradeProgress(legacy)

	require.Equal(t, models.DefaultSRS(), upgraded["ka"].SRS)
	require.NotNil(t, upgraded["ka"].History)
	// Records that already have SRS state keep it.
	require.InDelta(t, 2.1, upgraded["su"].SRS.EasinessFactor, 0.001)

	require.Empty(t, upgradeProgress(nil))
}

func TestDueCharactersAfterReset(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	pool := []models.Character{
		{ID: "ka", Script: models.ScriptHiragana},
		{ID: "su", Script: models.ScriptHiragana},
	}
	tracker.RecordCharacterAttempt("ka", models.DifficultyEasy)

	tracker.ResetAll()

	require.Equal(t, models.OverallStats{}, tracker.OverallStats())
	require.Equal(t, models.WordOverallStats{}, tracker.WordOverallStats())
	require.Equal(t, models.StreakData{}, tracker.Streaks())

	// Everything is never-studied again, so the whole pool is due.
	due := tracker.DueCharacters(pool)
	require.Len(t, due, 2)
}

func TestRecentAttemptsNewestFirst(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	current := base
	tracker.SetClock(func() time.Time { return current })

	tracker.RecordCharacterAttempt("ka", models.DifficultyGood)
	current = base.Add(time.Minute)
	tracker.RecordCharacterAttempt("su", models.DifficultyAgain)
	current = base.Add(2 * time.Minute)
	tracker.RecordCharacterAttempt("ka", models.DifficultyEasy)

	recents := tracker.RecentAttempts(2)
	require.Len(t, recents, 2)
	require.Equal(t, "ka", recents[0].CharacterKey)
	require.Equal(t, models.DifficultyEasy, *recents[0].Difficulty)
	require.Equal(t, "su", recents[1].CharacterKey)
}
