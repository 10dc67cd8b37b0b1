package ui

// Config represents the presentation settings for the terminal interface.
type Config struct {
	// Number of entries shown by the recent-attempts feed
	RecentAttemptsLimit int
	// Number of days shown by the practice calendar
	CalendarDays int
}

// DefaultConfig returns the default interface configuration.
func DefaultConfig() *Config {
	return &Config{
		RecentAttemptsLimit: 10,
		CalendarDays:        30,
	}
}
