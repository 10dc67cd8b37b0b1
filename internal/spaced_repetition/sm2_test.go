package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/kanastudy/pkg/models"
)

func frozenSM2(t *testing.T) (*SM2, time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	sm := NewSM2()
	sm.Now = func() time.Time { return now }
	return sm, now
}

func TestNextGoodProgression(t *testing.T) {
	sm, now := frozenSM2(t)

	state := *models.DefaultSRS()

	// First good answer: one repetition, one day out.
	state = sm.Next(state, models.DifficultyGood)
	require.Equal(t, 1, state.Repetitions)
	require.Equal(t, 1, state.Interval)
	require.InDelta(t, 2.36, state.EasinessFactor, 0.001)
	require.Equal(t, now.AddDate(0, 0, 1), *state.NextReview)

	// Second good answer jumps to six days.
	state = sm.Next(state, models.DifficultyGood)
	require.Equal(t, 2, state.Repetitions)
	require.Equal(t, 6, state.Interval)
	require.InDelta(t, 2.22, state.EasinessFactor, 0.001)

	// Third good answer uses the geometric formula: round(6 * EF').
	state = sm.Next(state, models.DifficultyGood)
	require.Equal(t, 3, state.Repetitions)
	require.InDelta(t, 2.08, state.EasinessFactor, 0.001)
	require.Equal(t, 12, state.Interval)
}

func TestNextFailureResets(t *testing.T) {
	sm, _ := frozenSM2(t)

	state := models.SRSState{EasinessFactor: 2.5, Interval: 30, Repetitions: 5}
	state = sm.Next(state, models.DifficultyAgain)

	require.Equal(t, 0, state.Repetitions)
	require.Equal(t, 1, state.Interval)
	require.NotNil(t, state.NextReview)
}

func TestNextHardStillPasses(t *testing.T) {
	sm, _ := frozenSM2(t)

	state := *models.DefaultSRS()
	state = sm.Next(state, models.DifficultyHard)

	// Hard is a pass: repetitions advance and the 1.2 multiplier applies.
	require.Equal(t, 1, state.Repetitions)
	require.Equal(t, 1, state.Interval) // round(1 * 1.2) = 1
}

func TestNextEasyCompoundsEasiness(t *testing.T) {
	sm, _ := frozenSM2(t)

	state := models.SRSState{EasinessFactor: 2.5, Interval: 6, Repetitions: 2}
	state = sm.Next(state, models.DifficultyEasy)

	// For q=4 the EF delta is zero, and the factor is applied twice:
	// round(round(6 * EF') * EF').
	require.InDelta(t, 2.5, state.EasinessFactor, 0.001)
	require.Equal(t, 3, state.Repetitions)
	require.Equal(t, 38, state.Interval) // round(round(6*2.5) * 2.5) = round(15*2.5)
}

func TestNextEasinessFactorFloor(t *testing.T) {
	sm, _ := frozenSM2(t)

	state := *models.DefaultSRS()
	for i := 0; i < 10; i++ {
		state = sm.Next(state, models.DifficultyAgain)
		require.GreaterOrEqual(t, state.EasinessFactor, models.MinEasinessFactor)
		require.GreaterOrEqual(t, state.Interval, 1)
	}
	require.InDelta(t, models.MinEasinessFactor, state.EasinessFactor, 0.001)
}

func TestNextDeterministicWithFrozenClock(t *testing.T) {
	sm, _ := frozenSM2(t)

	state := models.SRSState{EasinessFactor: 2.1, Interval: 4, Repetitions: 3}
	first := sm.Next(state, models.DifficultyGood)
	second := sm.Next(state, models.DifficultyGood)

	require.Equal(t, first.EasinessFactor, second.EasinessFactor)
	require.Equal(t, first.Interval, second.Interval)
	require.Equal(t, first.Repetitions, second.Repetitions)
	require.Equal(t, *first.NextReview, *second.NextReview)
}

func TestDueCharactersOrdering(t *testing.T) {
	sm, now := frozenSM2(t)

	neverStudied := models.Character{ID: "a", Script: models.ScriptHiragana}
	overdue := models.Character{ID: "ka", Script: models.ScriptHiragana}
	notDue := models.Character{ID: "sa", Script: models.ScriptHiragana}

	overdueAt := now.AddDate(0, 0, -5)
	futureAt := now.AddDate(0, 0, 3)
	progress := map[string]*models.CharacterProgress{
		"ka": {SRS: &models.SRSState{EasinessFactor: 2.5, Interval: 5, NextReview: &overdueAt}},
		"sa": {SRS: &models.SRSState{EasinessFactor: 2.5, Interval: 3, NextReview: &futureAt}},
	}

	due := sm.DueCharacters([]models.Character{neverStudied, overdue, notDue}, progress)

	// Five days overdue (priority 7) outranks never studied (priority 1);
	// the not-yet-due character is excluded entirely.
	require.Len(t, due, 2)
	require.Equal(t, "ka", due[0].ID)
	require.Equal(t, "a", due[1].ID)
}

func TestDueCharactersLegacyRecordWithoutSRS(t *testing.T) {
	sm, _ := frozenSM2(t)

	char := models.Character{ID: "ta", Script: models.ScriptHiragana}
	progress := map[string]*models.CharacterProgress{
		"ta": {Attempts: 3, Correct: 2}, // legacy record, no SRS block
	}

	due := sm.DueCharacters([]models.Character{char}, progress)
	require.Len(t, due, 1)
}

func TestDueCharactersEmptyPool(t *testing.T) {
	sm, _ := frozenSM2(t)
	require.Empty(t, sm.DueCharacters(nil, nil))
}
