package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/internal/progress"
	"github.com/example/kanastudy/internal/session"
	"github.com/example/kanastudy/pkg/models"
)

// UI is the terminal front end: it owns the input scanner and routes
// commands into the session and the progress tracker.
type UI struct {
	in      *bufio.Scanner
	out     io.Writer
	tracker *progress.Tracker
	session *session.Session
	config  *Config
}

// New creates a terminal interface reading from in and writing to out.
func New(in io.Reader, out io.Writer, tracker *progress.Tracker) *UI {
	return &UI{
		in:      bufio.NewScanner(in),
		out:     out,
		tracker: tracker,
		session: session.New(tracker),
		config:  DefaultConfig(),
	}
}

// Run shows the main menu and dispatches commands until the user quits or
// the context is cancelled.
func (u *UI) Run(ctx context.Context) error {
	u.printWelcome()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u.printf("\n> ")
		line, ok := u.readLine()
		if !ok {
			return nil
		}

		switch command, arg := splitCommand(line); command {
		case "":
			continue
		case "study", "s":
			u.handleStudy()
		case "quiz":
			u.handleQuiz()
		case "stats":
			u.handleStats()
		case "words", "w":
			u.handleWordStats()
		case "streak":
			u.handleStreak()
		case "recent", "r":
			u.handleRecent()
		case "import":
			u.handleImport(arg)
		case "reset":
			u.handleReset()
		case "help", "menu", "h":
			u.printMenu()
		case "quit", "q", "exit":
			return nil
		default:
			u.printf("Unknown command %q. Type 'help' to show the menu.\n", command)
		}
	}
}

// SendReminder implements scheduler.Notifier by printing the due count and
// the current streak to the terminal.
func (u *UI) SendReminder(dueCount int, streak models.StreakData) error {
	u.printf("\n⏰ You have %d character(s) due for review.", dueCount)
	if streak.CurrentStreak > 0 {
		u.printf(" Keep your %d-day streak going!", streak.CurrentStreak)
	}
	u.printf("\n")
	return nil
}

func (u *UI) printWelcome() {
	u.printf("Kana Study — hiragana and katakana flashcards\n")
	u.printMenu()
}

func (u *UI) printMenu() {
	u.printf("\nCommands:\n")
	u.printf("  study   - start a practice session\n")
	u.printf("  quiz    - multiple-choice quiz\n")
	u.printf("  stats   - character statistics\n")
	u.printf("  words   - word statistics\n")
	u.printf("  streak  - practice streaks and calendar\n")
	u.printf("  recent  - recent attempts\n")
	u.printf("  import  - import words from an Excel/CSV file (import <path>)\n")
	u.printf("  reset   - erase all progress\n")
	u.printf("  quit    - exit\n")
}

func (u *UI) printf(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format, args...)
}

// readLine reads one trimmed input line; ok is false when input is closed.
func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			log.Printf("Error reading input: %v", err)
		}
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

// prompt prints a question and reads the answer.
func (u *UI) prompt(question string) (string, bool) {
	u.printf("%s", question)
	return u.readLine()
}

func splitCommand(line string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := strings.ToLower(fields[0])
	arg := ""
	if len(fields) == 2 {
		arg = strings.TrimSpace(fields[1])
	}
	return command, arg
}

// scriptByName resolves user input to a script, defaulting to hiragana.
func scriptByName(name string) models.Script {
	if strings.HasPrefix(strings.ToLower(name), "k") {
		return models.ScriptKatakana
	}
	return models.ScriptHiragana
}

// selectedCharacters resolves a comma separated list of group ids (or "all")
// against the chosen script's character set.
func selectedCharacters(script models.Script, groupsInput string) []models.Character {
	set := kana.ForScript(script)
	if groupsInput == "" || strings.EqualFold(groupsInput, "all") {
		return set
	}
	var selected []models.Character
	for _, groupID := range strings.Split(groupsInput, ",") {
		selected = append(selected, kana.CharactersByGroup(set, strings.TrimSpace(groupID))...)
	}
	return selected
}
