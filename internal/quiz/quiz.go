package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/kanastudy/pkg/models"
)

// QuestionType represents different types of quiz questions.
type QuestionType string

const (
	// KanaToRomaji shows a kana glyph and asks for its romanization.
	KanaToRomaji QuestionType = "kana_to_romaji"
	// RomajiToKana shows a romanization and asks for the glyph.
	RomajiToKana QuestionType = "romaji_to_kana"
)

// Question is a single multiple-choice question.
type Question struct {
	Character    models.Character
	Prompt       string
	Options      []string
	CorrectIndex int
	Type         QuestionType
}

// Generator builds multiple-choice quizzes from a character pool.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SetRandom replaces the random source; tests seed it for repeatability.
func (g *Generator) SetRandom(rng *rand.Rand) {
	g.rng = rng
}

// optionCount is the number of choices per question, subject of the
// question included.
const optionCount = 4

// CreateQuiz generates questionCount multiple-choice questions from the
// pool. Distractors are drawn from the same pool, so it must hold at least
// optionCount characters with distinct option texts; duplicates (a group
// selected twice, say) are collapsed before generation.
func (g *Generator) CreateQuiz(pool []models.Character, questionCount int, questionType QuestionType) ([]Question, error) {
	if questionCount <= 0 {
		return nil, fmt.Errorf("question count must be positive")
	}

	seen := make(map[string]bool, len(pool))
	unique := make([]models.Character, 0, len(pool))
	for _, char := range pool {
		text := optionText(char, questionType)
		if seen[text] {
			continue
		}
		seen[text] = true
		unique = append(unique, char)
	}
	if len(unique) < optionCount {
		return nil, fmt.Errorf("quiz needs at least %d distinct characters, got %d", optionCount, len(unique))
	}

	// Shuffle a copy so repeated quizzes over the same pool vary.
	shuffled := make([]models.Character, len(unique))
	copy(shuffled, unique)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := make([]Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		subject := shuffled[i%len(shuffled)]
		questions = append(questions, g.buildQuestion(subject, shuffled, questionType))
	}
	return questions, nil
}

// optionText is the answer text a character contributes for the given
// question direction.
func optionText(char models.Character, questionType QuestionType) string {
	if questionType == RomajiToKana {
		return char.Kana
	}
	return char.Romaji
}

// buildQuestion assumes pool holds at least optionCount characters with
// distinct option texts; CreateQuiz guarantees that.
func (g *Generator) buildQuestion(subject models.Character, pool []models.Character, questionType QuestionType) Question {
	prompt := subject.Kana
	answer := optionText(subject, questionType)
	if questionType == RomajiToKana {
		prompt = subject.Romaji
	}

	options := []string{answer}
	used := map[string]bool{answer: true}
	for len(options) < optionCount {
		text := optionText(pool[g.rng.Intn(len(pool))], questionType)
		if used[text] {
			continue
		}
		used[text] = true
		options = append(options, text)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correctIndex := 0
	for i, option := range options {
		if option == answer {
			correctIndex = i
			break
		}
	}

	return Question{
		Character:    subject,
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Type:         questionType,
	}
}
