package kana

import "github.com/example/kanastudy/pkg/models"

// Group is a selector grouping of characters for the practice UI.
type Group struct {
	ID    string
	Name  string
	Label string
}

// Groups lists the selector groups in display order. The same grouping
// applies to both scripts.
var Groups = []Group{
	{ID: "vowels", Name: "Vowels (あ行)", Label: "a i u e o"},
	{ID: "k-row", Name: "K Row (か行)", Label: "ka ki ku ke ko"},
	{ID: "s-row", Name: "S Row (さ行)", Label: "sa shi su se so"},
	{ID: "t-row", Name: "T Row (た行)", Label: "ta chi tsu te to"},
	{ID: "n-row", Name: "N Row (な行)", Label: "na ni nu ne no"},
	{ID: "h-row", Name: "H Row (は行)", Label: "ha hi fu he ho"},
	{ID: "m-row", Name: "M Row (ま行)", Label: "ma mi mu me mo"},
	{ID: "y-row", Name: "Y Row (や行)", Label: "ya yu yo"},
	{ID: "r-row", Name: "R Row (ら行)", Label: "ra ri ru re ro"},
	{ID: "w-row", Name: "W Row (わ行)", Label: "wa wo n"},
	{ID: "g-row", Name: "G Row (が行)", Label: "ga gi gu ge go"},
	{ID: "z-row", Name: "Z Row (ざ行)", Label: "za ji zu ze zo"},
	{ID: "d-row", Name: "D Row (だ行)", Label: "da dji dzu de do"},
	{ID: "b-row", Name: "B Row (ば行)", Label: "ba bi bu be bo"},
	{ID: "p-row", Name: "P Row (ぱ行)", Label: "pa pi pu pe po"},
	{ID: "yoon", Name: "Yōon (拗音)", Label: "kya sha cha nya hya mya rya gya ja bya pya"},
}

func h(id, kana, romaji, group, row string) models.Character {
	return models.Character{
		ID:     id,
		Kana:   kana,
		Romaji: romaji,
		Group:  group,
		Row:    row,
		Script: models.ScriptHiragana,
	}
}

// Hiragana is the full hiragana character set: base gojūon plus
// dakuten/handakuten rows and yōon combinations.
var Hiragana = []models.Character{
	// Vowels (あ行)
	h("a", "あ", "a", "vowels", "a"),
	h("i", "い", "i", "vowels", "a"),
	h("u", "う", "u", "vowels", "a"),
	h("e", "え", "e", "vowels", "a"),
	h("o", "お", "o", "vowels", "a"),

	// K row (か行)
	h("ka", "か", "ka", "k-row", "ka"),
	h("ki", "き", "ki", "k-row", "ka"),
	h("ku", "く", "ku", "k-row", "ka"),
	h("ke", "け", "ke", "k-row", "ka"),
	h("ko", "こ", "ko", "k-row", "ka"),

	// S row (さ行)
	h("sa", "さ", "sa", "s-row", "sa"),
	h("shi", "し", "shi", "s-row", "sa"),
	h("su", "す", "su", "s-row", "sa"),
	h("se", "せ", "se", "s-row", "sa"),
	h("so", "そ", "so", "s-row", "sa"),

	// T row (た行)
	h("ta", "た", "ta", "t-row", "ta"),
	h("chi", "ち", "chi", "t-row", "ta"),
	h("tsu", "つ", "tsu", "t-row", "ta"),
	h("te", "て", "te", "t-row", "ta"),
	h("to", "と", "to", "t-row", "ta"),

	// N row (な行)
	h("na", "な", "na", "n-row", "na"),
	h("ni", "に", "ni", "n-row", "na"),
	h("nu", "ぬ", "nu", "n-row", "na"),
	h("ne", "ね", "ne", "n-row", "na"),
	h("no", "の", "no", "n-row", "na"),

	// H row (は行)
	h("ha", "は", "ha", "h-row", "ha"),
	h("hi", "ひ", "hi", "h-row", "ha"),
	h("fu", "ふ", "fu", "h-row", "ha"),
	h("he", "へ", "he", "h-row", "ha"),
	h("ho", "ほ", "ho", "h-row", "ha"),

	// M row (ま行)
	h("ma", "ま", "ma", "m-row", "ma"),
	h("mi", "み", "mi", "m-row", "ma"),
	h("mu", "む", "mu", "m-row", "ma"),
	h("me", "め", "me", "m-row", "ma"),
	h("mo", "も", "mo", "m-row", "ma"),

	// Y row (や行)
	h("ya", "や", "ya", "y-row", "ya"),
	h("yu", "ゆ", "yu", "y-row", "ya"),
	h("yo", "よ", "yo", "y-row", "ya"),

	// R row (ら行)
	h("ra", "ら", "ra", "r-row", "ra"),
	h("ri", "り", "ri", "r-row", "ra"),
	h("ru", "る", "ru", "r-row", "ra"),
	h("re", "れ", "re", "r-row", "ra"),
	h("ro", "ろ", "ro", "r-row", "ra"),

	// W row (わ行)
	h("wa", "わ", "wa", "w-row", "wa"),
	h("wo", "を", "wo", "w-row", "wa"),
	h("n", "ん", "n", "w-row", "wa"),

	// Dakuten - G row (が行)
	h("ga", "が", "ga", "g-row", "ga"),
	h("gi", "ぎ", "gi", "g-row", "ga"),
	h("gu", "ぐ", "gu", "g-row", "ga"),
	h("ge", "げ", "ge", "g-row", "ga"),
	h("go", "ご", "go", "g-row", "ga"),

	// Dakuten - Z row (ざ行)
	h("za", "ざ", "za", "z-row", "za"),
	h("ji", "じ", "ji", "z-row", "za"),
	h("zu", "ず", "zu", "z-row", "za"),
	h("ze", "ぜ", "ze", "z-row", "za"),
	h("zo", "ぞ", "zo", "z-row", "za"),

	// Dakuten - D row (だ行)
	h("da", "だ", "da", "d-row", "da"),
	h("dji", "ぢ", "dji", "d-row", "da"),
	h("dzu", "づ", "dzu", "d-row", "da"),
	h("de", "で", "de", "d-row", "da"),
	h("do", "ど", "do", "d-row", "da"),

	// Dakuten - B row (ば行)
	h("ba", "ば", "ba", "b-row", "ba"),
	h("bi", "び", "bi", "b-row", "ba"),
	h("bu", "ぶ", "bu", "b-row", "ba"),
	h("be", "べ", "be", "b-row", "ba"),
	h("bo", "ぼ", "bo", "b-row", "ba"),

	// Handakuten - P row (ぱ行)
	h("pa", "ぱ", "pa", "p-row", "pa"),
	h("pi", "ぴ", "pi", "p-row", "pa"),
	h("pu", "ぷ", "pu", "p-row", "pa"),
	h("pe", "ぺ", "pe", "p-row", "pa"),
	h("po", "ぽ", "po", "p-row", "pa"),

	// Yōon combinations (拗音)
	h("kya", "きゃ", "kya", "yoon", "yoon"),
	h("kyu", "きゅ", "kyu", "yoon", "yoon"),
	h("kyo", "きょ", "kyo", "yoon", "yoon"),
	h("sha", "しゃ", "sha", "yoon", "yoon"),
	h("shu", "しゅ", "shu", "yoon", "yoon"),
	h("sho", "しょ", "sho", "yoon", "yoon"),
	h("cha", "ちゃ", "cha", "yoon", "yoon"),
	h("chu", "ちゅ", "chu", "yoon", "yoon"),
	h("cho", "ちょ", "cho", "yoon", "yoon"),
	h("nya", "にゃ", "nya", "yoon", "yoon"),
	h("nyu", "にゅ", "nyu", "yoon", "yoon"),
	h("nyo", "にょ", "nyo", "yoon", "yoon"),
	h("hya", "ひゃ", "hya", "yoon", "yoon"),
	h("hyu", "ひゅ", "hyu", "yoon", "yoon"),
	h("hyo", "ひょ", "hyo", "yoon", "yoon"),
	h("mya", "みゃ", "mya", "yoon", "yoon"),
	h("myu", "みゅ", "myu", "yoon", "yoon"),
	h("myo", "みょ", "myo", "yoon", "yoon"),
	h("rya", "りゃ", "rya", "yoon", "yoon"),
	h("ryu", "りゅ", "ryu", "yoon", "yoon"),
	h("ryo", "りょ", "ryo", "yoon", "yoon"),
	h("gya", "ぎゃ", "gya", "yoon", "yoon"),
	h("gyu", "ぎゅ", "gyu", "yoon", "yoon"),
	h("gyo", "ぎょ", "gyo", "yoon", "yoon"),
	h("ja", "じゃ", "ja", "yoon", "yoon"),
	h("ju", "じゅ", "ju", "yoon", "yoon"),
	h("jo", "じょ", "jo", "yoon", "yoon"),
	h("bya", "びゃ", "bya", "yoon", "yoon"),
	h("byu", "びゅ", "byu", "yoon", "yoon"),
	h("byo", "びょ", "byo", "yoon", "yoon"),
	h("pya", "ぴゃ", "pya", "yoon", "yoon"),
	h("pyu", "ぴゅ", "pyu", "yoon", "yoon"),
	h("pyo", "ぴょ", "pyo", "yoon", "yoon"),
}

// CharactersByGroup returns the characters of one selector group.
func CharactersByGroup(set []models.Character, groupID string) []models.Character {
	var out []models.Character
	for _, char := range set {
		if char.Group == groupID {
			out = append(out, char)
		}
	}
	return out
}

// ForScript returns the full character set of the given script.
func ForScript(script models.Script) []models.Character {
	if script == models.ScriptKatakana {
		return Katakana
	}
	return Hiragana
}
