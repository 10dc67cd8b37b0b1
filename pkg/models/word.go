package models

// Word represents a short vocabulary word built from kana characters.
type Word struct {
	ID         string   `json:"id"`
	Kana       string   `json:"kana"`       // display text, e.g. "すし"
	Romaji     string   `json:"romaji"`     // romanized reading, e.g. "sushi"
	Meaning    string   `json:"meaning"`    // English gloss
	Category   string   `json:"category"`   // e.g. "food", "animals"
	Script     Script   `json:"script"`     // script the word is written in
	Characters []string `json:"characters"` // ordered base ids of constituent characters
}

// CharacterKeys returns the progress keys of the word's constituent
// characters, resolved against the word's script.
func (w Word) CharacterKeys() []string {
	keys := make([]string, len(w.Characters))
	for i, id := range w.Characters {
		keys[i] = CharacterKey(w.Script, id)
	}
	return keys
}
