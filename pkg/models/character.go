package models

import "strings"

// Script identifies which kana script a character belongs to.
type Script string

const (
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
)

// katakanaKeyPrefix disambiguates katakana progress records from hiragana
// ones in persisted data. The prefix is a serialization concern only; in
// memory a character is identified by the (script, base id) pair.
const katakanaKeyPrefix = "katakana_"

// Character is one atomic kana unit to be learned.
type Character struct {
	ID     string `json:"id"`     // base id shared across scripts, e.g. "ka"
	Kana   string `json:"kana"`   // the glyph, e.g. "か" or "カ"
	Romaji string `json:"romaji"` // romanized reading
	Group  string `json:"group"`  // selector group, e.g. "k-row"
	Row    string `json:"row"`    // gojuon row, e.g. "ka"
	Script Script `json:"script"`
}

// Key returns the identifier used for persisted progress records.
func (c Character) Key() string {
	return CharacterKey(c.Script, c.ID)
}

// CharacterKey builds the persisted progress key for a (script, base id) pair.
func CharacterKey(script Script, baseID string) string {
	if script == ScriptKatakana {
		return katakanaKeyPrefix + baseID
	}
	return baseID
}

// ParseCharacterKey splits a persisted progress key back into its
// (script, base id) pair.
func ParseCharacterKey(key string) (Script, string) {
	if strings.HasPrefix(key, katakanaKeyPrefix) {
		return ScriptKatakana, strings.TrimPrefix(key, katakanaKeyPrefix)
	}
	return ScriptHiragana, key
}
