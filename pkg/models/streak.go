package models

import "time"

// DateKeyLayout is the calendar-day key used by the daily practice log.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a local-calendar-day key (YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyLayout)
}

// DailyPracticeEntry is one day's attempt count, heat-map ready.
type DailyPracticeEntry struct {
	Date         string `json:"date"` // YYYY-MM-DD
	AttemptCount int    `json:"attemptCount"`
}

// StreakData summarizes consecutive-day practice runs.
type StreakData struct {
	CurrentStreak    int    `json:"currentStreak"`  // 0 if the run is broken by inactivity
	LongestStreak    int    `json:"longestStreak"`
	LastPracticeDate string `json:"lastPracticeDate"` // YYYY-MM-DD, empty if never practiced
}
