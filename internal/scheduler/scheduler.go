package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/kanastudy/internal/progress"
	"github.com/example/kanastudy/pkg/models"
)

// Default waking-hours window for reminders.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)

// Notifier surfaces a due-review reminder to the learner. Implementations
// must not block; the reminder is informational only.
type Notifier interface {
	SendReminder(dueCount int, streak models.StreakData) error
}

// Scheduler periodically checks for due reviews and nudges the learner
// through the notifier.
type Scheduler struct {
	scheduler *gocron.Scheduler
	tracker   *progress.Tracker
	pool      func() []models.Character
	notifier  Notifier
}

// New creates a scheduler checking due reviews against the candidate pool
// returned by pool (typically the full character sets of both scripts).
func New(tracker *progress.Tracker, pool func() []models.Character, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		tracker:   tracker,
		pool:      pool,
		notifier:  notifier,
	}
}

// Start begins the hourly due-review check in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndNotify)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndNotify sends a reminder when reviews are due and the current hour
// falls inside the configured waking window.
func (s *Scheduler) checkAndNotify() {
	currentHour := time.Now().Hour()

	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour
	if v := os.Getenv("REMINDER_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if v := os.Getenv("REMINDER_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		return
	}

	if err := s.RunManualCheck(); err != nil {
		log.Printf("Error sending review reminder: %v", err)
	}
}

// RunManualCheck performs one due-review check immediately.
func (s *Scheduler) RunManualCheck() error {
	due := s.tracker.DueCharacters(s.pool())
	if len(due) == 0 {
		return nil
	}
	return s.notifier.SendReminder(len(due), s.tracker.Streaks())
}
