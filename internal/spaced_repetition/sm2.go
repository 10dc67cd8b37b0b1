package spaced_repetition

import (
	"math"
	"sort"
	"time"

	"github.com/example/kanastudy/pkg/models"
)

// SM2 implements the SuperMemo-2 derived scheduling used for kana review.
type SM2 struct {
	// HardMultiplier stretches the interval of a barely-passed review.
	HardMultiplier float64
	// Now supplies the clock; overridable in tests.
	Now func() time.Time
}

// NewSM2 creates a scheduler with the default settings.
func NewSM2() *SM2 {
	return &SM2{
		HardMultiplier: 1.2,
		Now:            time.Now,
	}
}

// Next computes the scheduling state that follows current after a review
// graded with the given difficulty. It always returns a valid state: the
// easiness factor never drops below models.MinEasinessFactor and the
// interval is always at least one day.
func (sm *SM2) Next(current models.SRSState, difficulty models.Difficulty) models.SRSState {
	// EF' = EF + (0.1 - (5 - q) * (0.08 + (5 - q) * 0.02))
	q := float64(difficulty)
	newEF := current.EasinessFactor + (0.1 - (5.0-q)*(0.08+(5.0-q)*0.02))
	if newEF < models.MinEasinessFactor {
		newEF = models.MinEasinessFactor
	}

	var newInterval, newRepetitions int

	if !difficulty.IsPass() {
		// Failed - reset repetitions and interval
		newRepetitions = 0
		newInterval = 1
	} else {
		newRepetitions = current.Repetitions + 1

		switch newRepetitions {
		case 1:
			newInterval = 1
		case 2:
			newInterval = 6
		default:
			newInterval = round(float64(current.Interval) * newEF)
		}

		// Difficulty-specific adjustment. Easy applies the easiness factor
		// a second time on top of the base formula.
		switch difficulty {
		case models.DifficultyHard:
			newInterval = round(float64(newInterval) * sm.HardMultiplier)
		case models.DifficultyEasy:
			newInterval = round(float64(newInterval) * newEF)
		}
	}

	if newInterval < 1 {
		newInterval = 1
	}

	nextReview := sm.Now().AddDate(0, 0, newInterval)
	return models.SRSState{
		EasinessFactor: newEF,
		Interval:       newInterval,
		Repetitions:    newRepetitions,
		NextReview:     &nextReview,
	}
}

// Review priority tiers: items never studied get a flat base priority;
// overdue items start above that and grow with how overdue they are.
const (
	neverStudiedPriority = 1.0
	overdueBasePriority  = 2.0
)

// DueCharacters filters candidates down to the ones due for review and
// orders them most urgent first. A character with no progress record or no
// scheduled review counts as never studied. Characters not yet due are
// excluded; if nothing is due the caller falls back to the full pool.
func (sm *SM2) DueCharacters(candidates []models.Character, progress map[string]*models.CharacterProgress) []models.Character {
	now := sm.Now()

	type scored struct {
		char     models.Character
		priority float64
	}
	var due []scored

	for _, char := range candidates {
		record := progress[char.Key()]
		if record == nil || record.SRS == nil || record.SRS.NextReview == nil {
			due = append(due, scored{char: char, priority: neverStudiedPriority})
			continue
		}
		overdueBy := now.Sub(*record.SRS.NextReview)
		if overdueBy < 0 {
			// Not due yet
			continue
		}
		daysOverdue := overdueBy.Hours() / 24
		due = append(due, scored{char: char, priority: overdueBasePriority + daysOverdue})
	}

	// Higher priority first; stable so equal priorities keep input order.
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].priority > due[j].priority
	})

	result := make([]models.Character, len(due))
	for i, item := range due {
		result[i] = item.char
	}
	return result
}

func round(v float64) int {
	return int(math.Round(v))
}
