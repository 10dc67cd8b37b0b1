package progress

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/example/kanastudy/internal/database"
	"github.com/example/kanastudy/pkg/models"
)

// PracticeLog is the sparse map from local calendar day to attempt count.
// It only ever grows, except on a full reset.
type PracticeLog struct {
	store database.Store
	now   func() time.Time
}

// NewPracticeLog creates a practice log persisting through the given store.
func NewPracticeLog(store database.Store) *PracticeLog {
	return &PracticeLog{store: store, now: time.Now}
}

// RecordToday bumps today's attempt count by one, creating the entry if
// absent.
func (l *PracticeLog) RecordToday() {
	data := l.load()
	today := models.DateKey(l.now())
	data[today]++
	l.save(data)
}

// History returns one entry per practiced day, in no particular order.
func (l *PracticeLog) History() []models.DailyPracticeEntry {
	data := l.load()
	entries := make([]models.DailyPracticeEntry, 0, len(data))
	for date, count := range data {
		entries = append(entries, models.DailyPracticeEntry{Date: date, AttemptCount: count})
	}
	return entries
}

// Streaks computes the current and longest consecutive-day practice runs.
// The current streak only counts while the most recent practiced day is
// today or yesterday; otherwise inactivity has broken it.
func (l *PracticeLog) Streaks() models.StreakData {
	data := l.load()
	if len(data) == 0 {
		return models.StreakData{}
	}

	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	parsed := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		d, err := time.Parse(models.DateKeyLayout, date)
		if err != nil {
			// Skip unparseable keys rather than poisoning the whole log.
			continue
		}
		parsed = append(parsed, d)
	}

	last := dates[len(dates)-1]
	if len(parsed) == 0 {
		return models.StreakData{LastPracticeDate: last}
	}

	// Longest run anywhere in the log.
	longest, run := 1, 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Sub(parsed[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Trailing run, counted only while it reaches into today or yesterday.
	current := 0
	today := models.DateKey(l.now())
	yesterday := models.DateKey(l.now().AddDate(0, 0, -1))
	if last == today || last == yesterday {
		current = 1
		for i := len(parsed) - 1; i > 0; i-- {
			if parsed[i].Sub(parsed[i-1]) != 24*time.Hour {
				break
			}
			current++
		}
	}

	return models.StreakData{
		CurrentStreak:    current,
		LongestStreak:    longest,
		LastPracticeDate: last,
	}
}

func (l *PracticeLog) load() map[string]int {
	raw, err := l.store.Load(dailyPracticeKey)
	if err != nil {
		log.Printf("Error reading daily practice data: %v", err)
		return map[string]int{}
	}
	if raw == nil {
		return map[string]int{}
	}
	var data map[string]int
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("Error parsing daily practice data: %v", err)
		return map[string]int{}
	}
	if data == nil {
		data = map[string]int{}
	}
	return data
}

func (l *PracticeLog) save(data map[string]int) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error encoding daily practice data: %v", err)
		return
	}
	if err := l.store.Save(dailyPracticeKey, raw); err != nil {
		log.Printf("Error saving daily practice data: %v", err)
	}
}
