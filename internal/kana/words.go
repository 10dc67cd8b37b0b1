package kana

import (
	"fmt"

	"github.com/example/kanastudy/pkg/models"
)

// MinCharactersForWordMode is the number of selected characters required
// before word practice modes unlock.
const MinCharactersForWordMode = 10

func hw(id, kanaText, romaji, meaning, category string, chars ...string) models.Word {
	return models.Word{
		ID:         id,
		Kana:       kanaText,
		Romaji:     romaji,
		Meaning:    meaning,
		Category:   category,
		Script:     models.ScriptHiragana,
		Characters: chars,
	}
}

func kw(id, kanaText, romaji, meaning, category string, chars ...string) models.Word {
	return models.Word{
		ID:         id,
		Kana:       kanaText,
		Romaji:     romaji,
		Meaning:    meaning,
		Category:   category,
		Script:     models.ScriptKatakana,
		Characters: chars,
	}
}

// Words is the built-in vocabulary list. Custom lists imported from
// spreadsheets are appended to this set at startup.
var Words = []models.Word{
	hw("sushi", "すし", "sushi", "sushi", "food", "su", "shi"),
	hw("sakana", "さかな", "sakana", "fish", "food", "sa", "ka", "na"),
	hw("mizu", "みず", "mizu", "water", "food", "mi", "zu"),
	hw("ocha", "おちゃ", "ocha", "green tea", "food", "o", "cha"),
	hw("tamago", "たまご", "tamago", "egg", "food", "ta", "ma", "go"),
	hw("ringo", "りんご", "ringo", "apple", "food", "ri", "n", "go"),
	hw("neko", "ねこ", "neko", "cat", "animals", "ne", "ko"),
	hw("inu", "いぬ", "inu", "dog", "animals", "i", "nu"),
	hw("tori", "とり", "tori", "bird", "animals", "to", "ri"),
	hw("uma", "うま", "uma", "horse", "animals", "u", "ma"),
	hw("yama", "やま", "yama", "mountain", "nature", "ya", "ma"),
	hw("kawa", "かわ", "kawa", "river", "nature", "ka", "wa"),
	hw("sora", "そら", "sora", "sky", "nature", "so", "ra"),
	hw("hana", "はな", "hana", "flower", "nature", "ha", "na"),
	hw("yuki", "ゆき", "yuki", "snow", "nature", "yu", "ki"),
	hw("ame", "あめ", "ame", "rain", "nature", "a", "me"),
	hw("sakura", "さくら", "sakura", "cherry blossom", "nature", "sa", "ku", "ra"),
	hw("kuruma", "くるま", "kuruma", "car", "objects", "ku", "ru", "ma"),
	hw("tsukue", "つくえ", "tsukue", "desk", "objects", "tsu", "ku", "e"),
	hw("tokei", "とけい", "tokei", "clock", "objects", "to", "ke", "i"),
	hw("kasa", "かさ", "kasa", "umbrella", "objects", "ka", "sa"),
	hw("hon", "ほん", "hon", "book", "objects", "ho", "n"),
	hw("kutsu", "くつ", "kutsu", "shoes", "objects", "ku", "tsu"),
	hw("origami", "おりがみ", "origami", "paper folding", "objects", "o", "ri", "ga", "mi"),
	hw("mimi", "みみ", "mimi", "ear", "body", "mi", "mi"),
	hw("kao", "かお", "kao", "face", "body", "ka", "o"),
	hw("ashi", "あし", "ashi", "leg", "body", "a", "shi"),

	kw("kamera", "カメラ", "kamera", "camera", "objects", "ka", "me", "ra"),
	kw("terebi", "テレビ", "terebi", "television", "objects", "te", "re", "bi"),
	kw("rajio", "ラジオ", "rajio", "radio", "objects", "ra", "ji", "o"),
	kw("piano", "ピアノ", "piano", "piano", "objects", "pi", "a", "no"),
	kw("basu", "バス", "basu", "bus", "objects", "ba", "su"),
	kw("pan", "パン", "pan", "bread", "food", "pa", "n"),
	kw("banana", "バナナ", "banana", "banana", "food", "ba", "na", "na"),
	kw("tomato", "トマト", "tomato", "tomato", "food", "to", "ma", "to"),
	kw("anime", "アニメ", "anime", "animation", "culture", "a", "ni", "me"),
	kw("hoteru", "ホテル", "hoteru", "hotel", "places", "ho", "te", "ru"),
}

// FilterAvailableWords returns the words whose every constituent character
// is in the selected set. Word practice is only meaningful when the learner
// already studies all of a word's characters.
func FilterAvailableWords(words []models.Word, selected []models.Character) []models.Word {
	selectedKeys := make(map[string]bool, len(selected))
	for _, char := range selected {
		selectedKeys[char.Key()] = true
	}

	var out []models.Word
	for _, word := range words {
		available := true
		for _, key := range word.CharacterKeys() {
			if !selectedKeys[key] {
				available = false
				break
			}
		}
		if available {
			out = append(out, word)
		}
	}
	return out
}

// CanEnableWordMode reports whether enough characters are selected for word
// practice.
func CanEnableWordMode(selectedCount int) bool {
	return selectedCount >= MinCharactersForWordMode
}

// Decompose splits kana text into the base character ids of the given
// script. Yōon digraphs are matched greedily before single glyphs. Returns
// an error on any rune that is not part of the character set.
func Decompose(text string, script models.Script) ([]string, error) {
	byGlyph := glyphIndex(script)
	runes := []rune(text)

	var ids []string
	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if id, ok := byGlyph[string(runes[i:i+2])]; ok {
				ids = append(ids, id)
				i += 2
				continue
			}
		}
		id, ok := byGlyph[string(runes[i])]
		if !ok {
			return nil, fmt.Errorf("unknown %s glyph %q in %q", script, string(runes[i]), text)
		}
		ids = append(ids, id)
		i++
	}
	return ids, nil
}

func glyphIndex(script models.Script) map[string]string {
	index := make(map[string]string, len(Hiragana))
	for _, char := range ForScript(script) {
		index[char.Kana] = char.ID
	}
	return index
}
