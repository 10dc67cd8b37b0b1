package ui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/example/kanastudy/internal/excel"
	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/internal/quiz"
	"github.com/example/kanastudy/internal/session"
	"github.com/example/kanastudy/pkg/models"
)

// handleStudy walks through pool selection and runs the practice loop.
func (u *UI) handleStudy() {
	scriptInput, ok := u.prompt("Script (hiragana/katakana) [hiragana]: ")
	if !ok {
		return
	}
	script := scriptByName(scriptInput)

	u.printf("Groups:\n")
	for _, group := range kana.Groups {
		u.printf("  %-12s %s (%s)\n", group.ID, group.Name, group.Label)
	}
	groupsInput, ok := u.prompt("Groups (comma separated, or 'all') [all]: ")
	if !ok {
		return
	}
	selected := selectedCharacters(script, groupsInput)

	mode := session.ModeCharacters
	if kana.CanEnableWordMode(len(selected)) {
		modeInput, ok := u.prompt("Mode (characters/words/mixed) [characters]: ")
		if !ok {
			return
		}
		switch strings.ToLower(modeInput) {
		case "words", "w":
			mode = session.ModeWords
		case "mixed", "m":
			mode = session.ModeMixed
		}
	}

	if err := u.session.SelectPool(selected, kana.Words, mode); err != nil {
		u.printf("Cannot start session: %v\n", err)
		return
	}

	due := u.tracker.DueCharacters(selected)
	u.printf("\nStarting with %d characters", len(selected))
	if mode != session.ModeCharacters {
		u.printf(" and %d words", len(u.session.AvailableWords()))
	}
	u.printf(" (%d due for review).\n", len(due))
	u.printf("Press Enter to reveal, then grade: 0=again 2=hard 3=good 4=easy, q=quit.\n\n")

	u.practiceLoop()
	u.session.End()
	u.printSessionSummary()
}

// practiceLoop shows items until the user quits or input ends.
func (u *UI) practiceLoop() {
	item := u.session.NextItem()
	for item != nil {
		if item.Word != nil {
			if !u.practiceWord(item.Word) {
				return
			}
		} else if !u.practiceCharacter(item.Character) {
			return
		}
		item = u.session.Current()
	}
}

// practiceCharacter runs one character card; returns false to end the
// session.
func (u *UI) practiceCharacter(char *models.Character) bool {
	answer, ok := u.prompt("  " + char.Kana + "  ")
	if !ok || answer == "q" {
		return false
	}

	u.session.Reveal()
	grade, ok := u.prompt("  -> " + char.Romaji + "   grade (0/2/3/4): ")
	if !ok || grade == "q" {
		return false
	}

	difficulty, valid := parseDifficulty(grade)
	if !valid {
		u.printf("  Grade must be 0, 2, 3 or 4; counting as 'again'.\n")
		difficulty = models.DifficultyAgain
	}
	u.session.GradeCharacter(char.Key(), difficulty)
	return true
}

// practiceWord runs one word card; wrong characters are entered as a space
// separated list of romanizations.
func (u *UI) practiceWord(word *models.Word) bool {
	answer, ok := u.prompt("  " + word.Kana + "  (word) ")
	if !ok || answer == "q" {
		return false
	}

	u.session.Reveal()
	wrong, ok := u.prompt("  -> " + word.Romaji + " (" + word.Meaning + ")   wrong characters (space separated, empty if all correct): ")
	if !ok || wrong == "q" {
		return false
	}

	var incorrect []string
	for _, id := range strings.Fields(wrong) {
		incorrect = append(incorrect, models.CharacterKey(word.Script, id))
	}
	u.session.GradeWord(word.ID, incorrect)
	return true
}

func parseDifficulty(input string) (models.Difficulty, bool) {
	switch strings.TrimSpace(input) {
	case "0":
		return models.DifficultyAgain, true
	case "2":
		return models.DifficultyHard, true
	case "3":
		return models.DifficultyGood, true
	case "4":
		return models.DifficultyEasy, true
	}
	return models.DifficultyAgain, false
}

func (u *UI) printSessionSummary() {
	stats := u.tracker.OverallStats()
	streak := u.tracker.Streaks()
	u.printf("\nSession ended. Overall: %d/%d correct (%.1f%%).",
		stats.TotalCorrect, stats.TotalAttempts, stats.OverallSuccessRate)
	if streak.CurrentStreak > 0 {
		u.printf(" Current streak: %d day(s).", streak.CurrentStreak)
	}
	u.printf("\n")
}

// quizQuestionCount is the number of questions per quiz round.
const quizQuestionCount = 10

// handleQuiz runs a multiple-choice quiz round; answers are recorded as
// character attempts (good when right, again when wrong).
func (u *UI) handleQuiz() {
	scriptInput, ok := u.prompt("Script (hiragana/katakana) [hiragana]: ")
	if !ok {
		return
	}
	script := scriptByName(scriptInput)

	groupsInput, ok := u.prompt("Groups (comma separated, or 'all') [all]: ")
	if !ok {
		return
	}
	pool := selectedCharacters(script, groupsInput)

	questionType := quiz.KanaToRomaji
	directionInput, ok := u.prompt("Direction (kana/romaji prompts) [kana]: ")
	if !ok {
		return
	}
	if strings.HasPrefix(strings.ToLower(directionInput), "r") {
		questionType = quiz.RomajiToKana
	}

	questions, err := quiz.NewGenerator().CreateQuiz(pool, quizQuestionCount, questionType)
	if err != nil {
		u.printf("Cannot start quiz: %v\n", err)
		return
	}

	correct := 0
	for i, question := range questions {
		u.printf("\n%d/%d  %s\n", i+1, len(questions), question.Prompt)
		for j, option := range question.Options {
			u.printf("  %d) %s\n", j+1, option)
		}
		answer, ok := u.prompt("Answer (1-4, q to stop): ")
		if !ok || answer == "q" {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(answer))
		difficulty := models.DifficultyAgain
		if err == nil && choice-1 == question.CorrectIndex {
			u.printf("Correct!\n")
			difficulty = models.DifficultyGood
			correct++
		} else {
			u.printf("Wrong, the answer is %s.\n", question.Options[question.CorrectIndex])
		}
		u.tracker.RecordCharacterAttempt(question.Character.Key(), difficulty)
	}
	u.printf("\nQuiz finished: %d/%d correct.\n", correct, len(questions))
}

// handleStats prints per-script and overall character statistics.
func (u *UI) handleStats() {
	overall := u.tracker.OverallStats()
	if overall.TotalAttempts == 0 {
		u.printf("No practice recorded yet. Type 'study' to start.\n")
		return
	}

	u.printf("\nCharacter statistics\n")
	for _, script := range []models.Script{models.ScriptHiragana, models.ScriptKatakana} {
		stats := u.tracker.OverallStatsForScript(script)
		u.printf("  %-9s %3d studied, %4d attempts, %5.1f%% correct\n",
			script, stats.CharactersStudied, stats.TotalAttempts, stats.OverallSuccessRate)
	}
	u.printf("  %-9s %3d studied, %4d attempts, %5.1f%% correct\n",
		"total", overall.CharactersStudied, overall.TotalAttempts, overall.OverallSuccessRate)

	due := u.tracker.DueCharacters(append(kana.ForScript(models.ScriptHiragana), kana.ForScript(models.ScriptKatakana)...))
	u.printf("  Due for review: %d\n", len(due))
}

// handleWordStats prints word statistics sorted worst first.
func (u *UI) handleWordStats() {
	overall := u.tracker.WordOverallStats()
	if overall.Attempted == 0 {
		u.printf("No word practice recorded yet.\n")
		return
	}

	u.printf("\nWord statistics: %d practiced, average %.1f%% correct\n",
		overall.Attempted, overall.AverageSuccess)
	for _, perf := range u.tracker.AllWordStats(true) {
		u.printf("  %-12s %3d attempts, %5.1f%% correct\n",
			perf.WordID, perf.Stats.Attempts, perf.Stats.SuccessRate)
	}
}

// handleStreak prints streaks and a simple practice calendar.
func (u *UI) handleStreak() {
	streak := u.tracker.Streaks()
	if streak.LastPracticeDate == "" {
		u.printf("No practice recorded yet.\n")
		return
	}

	u.printf("\nCurrent streak: %d day(s)\n", streak.CurrentStreak)
	u.printf("Longest streak: %d day(s)\n", streak.LongestStreak)
	u.printf("Last practiced: %s\n", streak.LastPracticeDate)

	history := u.tracker.DailyHistory()
	if len(history) == 0 {
		return
	}
	// History comes back unordered; date keys sort chronologically as strings.
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date < history[j].Date
	})
	start := len(history) - u.config.CalendarDays
	if start < 0 {
		start = 0
	}
	u.printf("\nRecent practice days:\n")
	for _, entry := range history[start:] {
		u.printf("  %s  %4d attempt(s)\n", entry.Date, entry.AttemptCount)
	}
}

// handleRecent prints the recent-attempts feed, newest first.
func (u *UI) handleRecent() {
	attempts := u.tracker.RecentAttempts(u.config.RecentAttemptsLimit)
	if len(attempts) == 0 {
		u.printf("No attempts recorded yet.\n")
		return
	}

	u.printf("\nRecent attempts:\n")
	for _, attempt := range attempts {
		mark := "✗"
		if attempt.Correct {
			mark = "✓"
		}
		source := ""
		if attempt.Source == models.SourceWord {
			source = "  (word " + attempt.WordID + ")"
		}
		u.printf("  %s  %-14s %s%s\n",
			attempt.Timestamp.Format("2006-01-02 15:04"), attempt.CharacterKey, mark, source)
	}
}

// handleImport loads a custom word list from an Excel or CSV file.
func (u *UI) handleImport(path string) {
	if path == "" {
		u.printf("Usage: import <path-to-xlsx-or-csv>\n")
		return
	}

	result, err := excel.ImportWords(excel.DefaultImportConfig(path))
	if err != nil {
		u.printf("Import failed: %v\n", err)
		return
	}

	u.printf("Processed %d row(s): %d imported, %d skipped.\n",
		result.TotalProcessed, result.Imported, result.Skipped)
	for _, importError := range result.Errors {
		u.printf("  %s\n", importError)
	}
	if result.Imported > 0 {
		kana.Words = append(kana.Words, result.Words...)
		u.printf("Imported words are available in word practice for this run.\n")
	}
}

// handleReset erases all stored progress after confirmation.
func (u *UI) handleReset() {
	confirm, ok := u.prompt("This erases all progress, streaks and history. Type 'yes' to confirm: ")
	if !ok || confirm != "yes" {
		u.printf("Reset cancelled.\n")
		return
	}
	u.tracker.ResetAll()
	u.printf("All progress erased.\n")
}
