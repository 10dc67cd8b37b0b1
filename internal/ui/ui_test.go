package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/kanastudy/internal/database"
	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/internal/progress"
	"github.com/example/kanastudy/pkg/models"
)

func newTestUI(t *testing.T, input string) (*UI, *bytes.Buffer, *progress.Tracker) {
	t.Helper()
	tracker := progress.NewTracker(database.NewMemoryStore())
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	tracker.SetClock(func() time.Time { return now })

	out := &bytes.Buffer{}
	u := New(strings.NewReader(input), out, tracker)
	return u, out, tracker
}

func TestRunQuitCommand(t *testing.T) {
	u, out, _ := newTestUI(t, "quit\n")
	require.NoError(t, u.Run(context.Background()))
	require.Contains(t, out.String(), "Commands:")
}

func TestRunStopsOnClosedInput(t *testing.T) {
	u, _, _ := newTestUI(t, "")
	require.NoError(t, u.Run(context.Background()))
}

func TestStatsCommandWithoutHistory(t *testing.T) {
	u, out, _ := newTestUI(t, "stats\nquit\n")
	require.NoError(t, u.Run(context.Background()))
	require.Contains(t, out.String(), "No practice recorded yet")
}

func TestStatsCommandShowsPerScriptTotals(t *testing.T) {
	u, out, tracker := newTestUI(t, "stats\nquit\n")
	tracker.RecordCharacterAttempt("a", models.DifficultyGood)
	tracker.RecordCharacterAttempt("katakana_ka", models.DifficultyAgain)

	require.NoError(t, u.Run(context.Background()))
	require.Contains(t, out.String(), "hiragana")
	require.Contains(t, out.String(), "katakana")
	require.Contains(t, out.String(), "Due for review")
}

func TestStreakCalendarIsChronological(t *testing.T) {
	tracker := progress.NewTracker(database.NewMemoryStore())
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.Local)
	tracker.SetClock(func() time.Time { return now })

	// Practice on three consecutive days.
	for i := 0; i < 3; i++ {
		tracker.RecordCharacterAttempt("a", models.DifficultyGood)
		now = now.AddDate(0, 0, 1)
	}

	out := &bytes.Buffer{}
	u := New(strings.NewReader("streak\nquit\n"), out, tracker)
	require.NoError(t, u.Run(context.Background()))

	text := out.String()
	calendarAt := strings.Index(text, "Recent practice days:")
	require.GreaterOrEqual(t, calendarAt, 0)

	calendar := text[calendarAt:]
	first := strings.Index(calendar, "2026-08-25")
	second := strings.Index(calendar, "2026-08-26")
	third := strings.Index(calendar, "2026-08-27")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	require.Less(t, first, second)
	require.Less(t, second, third)
}

func TestResetRequiresConfirmation(t *testing.T) {
	u, out, tracker := newTestUI(t, "reset\nno\nquit\n")
	tracker.RecordCharacterAttempt("a", models.DifficultyGood)

	require.NoError(t, u.Run(context.Background()))
	require.Contains(t, out.String(), "Reset cancelled")
	require.Equal(t, 1, tracker.CharacterStats("a").Attempts)
}

func TestResetErasesProgress(t *testing.T) {
	u, _, tracker := newTestUI(t, "reset\nyes\nquit\n")
	tracker.RecordCharacterAttempt("a", models.DifficultyGood)

	require.NoError(t, u.Run(context.Background()))
	require.Equal(t, 0, tracker.CharacterStats("a").Attempts)
}

func TestSendReminderMentionsStreak(t *testing.T) {
	u, out, tracker := newTestUI(t, "")
	tracker.RecordCharacterAttempt("a", models.DifficultyGood)

	require.NoError(t, u.SendReminder(3, tracker.Streaks()))
	text := out.String()
	require.Contains(t, text, "3 character(s) due")
	require.Contains(t, text, "streak")
}

func TestSplitCommand(t *testing.T) {
	command, arg := splitCommand("import  /tmp/words.csv ")
	require.Equal(t, "import", command)
	require.Equal(t, "/tmp/words.csv", arg)

	command, arg = splitCommand("  STATS ")
	require.Equal(t, "stats", command)
	require.Empty(t, arg)
}

func TestSelectedCharacters(t *testing.T) {
	all := selectedCharacters(models.ScriptHiragana, "all")
	require.Len(t, all, len(kana.Hiragana))

	vowels := selectedCharacters(models.ScriptKatakana, "vowels")
	require.Len(t, vowels, 5)
	require.Equal(t, models.ScriptKatakana, vowels[0].Script)

	mixed := selectedCharacters(models.ScriptHiragana, "vowels, k-row")
	require.Len(t, mixed, 10)
}

func TestParseDifficulty(t *testing.T) {
	difficulty, ok := parseDifficulty("3")
	require.True(t, ok)
	require.Equal(t, models.DifficultyGood, difficulty)

	// 1 is intentionally not a valid grade.
	_, ok = parseDifficulty("1")
	require.False(t, ok)

	_, ok = parseDifficulty("x")
	require.False(t, ok)
}
