package kana

import (
	"strings"

	"github.com/example/kanastudy/pkg/models"
)

// ToKatakana converts hiragana text to katakana by shifting the
// U+3041–U+3096 range up by 0x60. Non-hiragana runes pass through.
func ToKatakana(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= 0x3041 && r <= 0x3096 {
			r += 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Katakana mirrors the hiragana set glyph-for-glyph: same base ids, groups
// and readings, with glyphs derived by the script conversion above.
var Katakana = buildKatakana()

func buildKatakana() []models.Character {
	out := make([]models.Character, len(Hiragana))
	for i, char := range Hiragana {
		char.Kana = ToKatakana(char.Kana)
		char.Script = models.ScriptKatakana
		out[i] = char
	}
	return out
}
