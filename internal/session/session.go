package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/internal/progress"
	"github.com/example/kanastudy/pkg/models"
)

// Mode selects which working set a session draws from.
type Mode int

const (
	// ModeCharacters quizzes single characters only.
	ModeCharacters Mode = iota
	// ModeWords quizzes whole words only.
	ModeWords
	// ModeMixed flips a coin between characters and words on every draw.
	ModeMixed
)

// State is the per-session study state machine.
type State int

const (
	// StateSelecting means no working pool is active.
	StateSelecting State = iota
	// StatePrompt means an item is shown, answer hidden.
	StatePrompt
	// StateRevealed means the answer is shown, awaiting a grade.
	StateRevealed
)

// maxRecentItems is the size bound of the anti-repeat window.
const maxRecentItems = 3

// Item is the unit a session presents: exactly one of Character or Word is
// set.
type Item struct {
	Character *models.Character
	Word      *models.Word
}

// Key returns the item's progress identifier.
func (i Item) Key() string {
	if i.Character != nil {
		return i.Character.Key()
	}
	if i.Word != nil {
		return i.Word.ID
	}
	return ""
}

// recentList is the anti-repeat window: most recently drawn ids first,
// truncated so at least one candidate always survives the filter.
type recentList struct {
	ids []string
}

func (r *recentList) push(id string, poolSize int) {
	r.ids = append([]string{id}, r.ids...)
	bound := maxRecentItems
	if poolSize-1 < bound {
		bound = poolSize - 1
	}
	if bound < 0 {
		bound = 0
	}
	if len(r.ids) > bound {
		r.ids = r.ids[:bound]
	}
}

func (r *recentList) contains(id string) bool {
	for _, recent := range r.ids {
		if recent == id {
			return true
		}
	}
	return false
}

func (r *recentList) reset() {
	r.ids = nil
}

// Session orchestrates one study run: it owns the working pool, avoids
// immediate repetition, prefers due items, and routes grades into the
// progress tracker.
type Session struct {
	// ID identifies this study run in logs.
	ID string

	// OnReveal and OnAdvance are out-of-band notifications for the
	// presentation layer (audio playback, stroke diagrams). They are called
	// synchronously but must not block; the session never depends on them.
	OnReveal  func(Item)
	OnAdvance func(Item)

	tracker     *progress.Tracker
	mode        Mode
	characters  []models.Character
	words       []models.Word
	recentChars recentList
	recentWords recentList
	rng         *rand.Rand
	state       State
	current     *Item
}

// New creates an idle session backed by the given tracker.
func New(tracker *progress.Tracker) *Session {
	return &Session{
		ID:      uuid.NewString(),
		tracker: tracker,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   StateSelecting,
	}
}

// SetRandom replaces the random source; tests seed it for repeatability.
func (s *Session) SetRandom(rng *rand.Rand) {
	s.rng = rng
}

// SelectPool establishes the working set for a study run. The word sub-pool
// is the subset of allWords fully covered by the selected characters. Word
// modes require enough selected characters and at least one available word.
func (s *Session) SelectPool(characters []models.Character, allWords []models.Word, mode Mode) error {
	if len(characters) == 0 {
		return fmt.Errorf("no characters selected")
	}

	words := kana.FilterAvailableWords(allWords, characters)
	if mode != ModeCharacters {
		if !kana.CanEnableWordMode(len(characters)) {
			return fmt.Errorf("word practice needs at least %d selected characters", kana.MinCharactersForWordMode)
		}
		if len(words) == 0 {
			return fmt.Errorf("no words available for the selected characters")
		}
	}

	s.characters = characters
	s.words = words
	s.mode = mode
	s.recentChars.reset()
	s.recentWords.reset()
	s.current = nil
	s.state = StateSelecting
	return nil
}

// NextItem draws the next study item, or nil when no pool is active. Due
// items are preferred over the rest of the pool; recently shown items are
// excluded unless that would leave nothing to draw.
func (s *Session) NextItem() *Item {
	var item *Item
	switch s.mode {
	case ModeCharacters:
		item = s.drawCharacter()
	case ModeWords:
		item = s.drawWord()
	case ModeMixed:
		if len(s.words) > 0 && s.rng.Intn(2) == 0 {
			item = s.drawWord()
		} else {
			item = s.drawCharacter()
		}
	}
	if item == nil {
		return nil
	}

	s.current = item
	s.state = StatePrompt
	if s.OnAdvance != nil {
		s.OnAdvance(*item)
	}
	return item
}

// Reveal moves from prompt to answer shown and emits the reveal
// notification.
func (s *Session) Reveal() {
	if s.state != StatePrompt || s.current == nil {
		return
	}
	s.state = StateRevealed
	if s.OnReveal != nil {
		s.OnReveal(*s.current)
	}
}

// GradeCharacter records a self-graded character attempt and draws the next
// item.
func (s *Session) GradeCharacter(characterKey string, difficulty models.Difficulty) *Item {
	s.tracker.RecordCharacterAttempt(characterKey, difficulty)
	return s.NextItem()
}

// GradeWord records a word attempt (incorrectCharacterKeys empty means the
// whole word was right) and draws the next item. The word's full character
// decomposition comes from the session pool, falling back to the built-in
// word list; an unknown word id records nothing.
func (s *Session) GradeWord(wordID string, incorrectCharacterKeys []string) *Item {
	word := s.findWord(wordID)
	if word == nil {
		return s.NextItem()
	}
	s.tracker.RecordWordAttempt(wordID, word.CharacterKeys(), incorrectCharacterKeys)
	return s.NextItem()
}

func (s *Session) findWord(wordID string) *models.Word {
	for i := range s.words {
		if s.words[i].ID == wordID {
			return &s.words[i]
		}
	}
	for i := range kana.Words {
		if kana.Words[i].ID == wordID {
			return &kana.Words[i]
		}
	}
	return nil
}

// End terminates the study run and clears the pool and anti-repeat windows.
func (s *Session) End() {
	s.characters = nil
	s.words = nil
	s.recentChars.reset()
	s.recentWords.reset()
	s.current = nil
	s.state = StateSelecting
}

// State returns the current study state.
func (s *Session) State() State {
	return s.state
}

// Current returns the item being studied, or nil.
func (s *Session) Current() *Item {
	return s.current
}

// AvailableWords returns the word sub-pool of the active selection.
func (s *Session) AvailableWords() []models.Word {
	return s.words
}

func (s *Session) drawCharacter() *Item {
	if len(s.characters) == 0 {
		return nil
	}

	pool := s.tracker.DueCharacters(s.characters)
	if len(pool) == 0 {
		pool = s.characters
	}

	candidates := make([]models.Character, 0, len(pool))
	for _, char := range pool {
		if !s.recentChars.contains(char.Key()) {
			candidates = append(candidates, char)
		}
	}
	if len(candidates) == 0 {
		// The window would exclude everything; ignore it for this draw.
		candidates = pool
	}

	char := candidates[s.rng.Intn(len(candidates))]
	s.recentChars.push(char.Key(), len(s.characters))
	return &Item{Character: &char}
}

func (s *Session) drawWord() *Item {
	if len(s.words) == 0 {
		return nil
	}

	candidates := make([]models.Word, 0, len(s.words))
	for _, word := range s.words {
		if !s.recentWords.contains(word.ID) {
			candidates = append(candidates, word)
		}
	}
	if len(candidates) == 0 {
		candidates = s.words
	}

	word := candidates[s.rng.Intn(len(candidates))]
	s.recentWords.push(word.ID, len(s.words))
	return &Item{Word: &word}
}
