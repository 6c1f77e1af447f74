package analyzer

import (
	"regexp"

	"github.com/ttm-morphology/morphospace"
)

// arabicMarks matches the Arabic diacritical marks: harakat, tanwin,
// shadda, sukun, superscript alef, and the Quranic annotation signs.
var arabicMarks = regexp.MustCompile("[ؐ-ًؚ-ٰٟۖ-ۜ۟-۪ۤۧۨ-ۭ]")

// arabicMarkNames names the common harakat for Height.Diacritics.
var arabicMarkNames = map[rune]markInfo{
	'َ': {name: "fatha", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ُ': {name: "damma", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ِ': {name: "kasra", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ً': {name: "fathatan", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ٌ': {name: "dammatan", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ٍ': {name: "kasratan", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ّ': {name: "shadda", position: morphospace.PositionAbove, function: morphospace.FunctionGemination},
	'ْ': {name: "sukun", position: morphospace.PositionAbove, function: morphospace.FunctionOther},
	'ٰ': {name: "superscript alef", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
}

// PatternInfo describes an Arabic derivational pattern (wazn).
type PatternInfo struct {
	// Type is "verb" or "noun".
	Type string
	// Form is the Roman-numeral verb form the pattern belongs to.
	Form string
	// Template spells the pattern with radical slots 1, 2, 3.
	Template string
	// Category classifies noun patterns (participle, verbal noun, ...).
	Category string
	// Aspect and Voice apply to verb patterns.
	Aspect string
	Voice  string
	// Description is a short human-readable label.
	Description string
}

// arabicPatterns maps the standard awzan to their descriptions.
var arabicPatterns = map[string]PatternInfo{
	"فَعَلَ": {
		Type: "verb", Form: "I", Template: "1a2a3a",
		Aspect: "perfective", Voice: "active",
		Description: "Form I perfective active",
	},
	"فَعِلَ": {
		Type: "verb", Form: "I", Template: "1a2i3a",
		Aspect: "perfective", Voice: "active",
		Description: "Form I perfective active (medial kasra)",
	},
	"فَاعِل": {
		Type: "noun", Form: "I", Template: "1aa2i3",
		Category:    "active_participle",
		Description: "Active participle (Form I)",
	},
	"مَفْعُول": {
		Type: "noun", Form: "I", Template: "ma12uu3",
		Category:    "passive_participle",
		Description: "Passive participle (Form I)",
	},
	"فِعَال": {
		Type: "noun", Form: "I", Template: "1i2aa3",
		Category:    "verbal_noun",
		Description: "Verbal noun (Form I)",
	},
	"فِعَالَة": {
		Type: "noun", Form: "I", Template: "1i2aa3a",
		Category:    "verbal_noun",
		Description: "Verbal noun (Form I, feminine pattern)",
	},
	"فُعُول": {
		Type: "noun", Form: "I", Template: "1u2uu3",
		Category:    "plural",
		Description: "Broken plural",
	},
	"فُعُل": {
		Type: "noun", Form: "I", Template: "1u2u3",
		Category:    "plural",
		Description: "Broken plural (short pattern)",
	},
	"مَفْعَل": {
		Type: "noun", Form: "I", Template: "ma12a3",
		Category:    "noun_of_place",
		Description: "Noun of place or time",
	},
	"مَفْعَلَة": {
		Type: "noun", Form: "I", Template: "ma12a3a",
		Category:    "noun_of_place",
		Description: "Noun of place (feminine)",
	},
}

// LookupPattern returns the description of an Arabic pattern.
func LookupPattern(pattern string) (PatternInfo, bool) {
	info, ok := arabicPatterns[pattern]
	return info, ok
}

// StripDiacritics removes the Arabic diacritical marks from text.
func StripDiacritics(text string) string {
	return arabicMarks.ReplaceAllString(text, "")
}

// ExtractDiacritics returns the Arabic diacritical marks of text, in
// reading order.
func ExtractDiacritics(text string) []string {
	return arabicMarks.FindAllString(text, -1)
}

// Arabic analyzes the Arabic trilateral root system.
type Arabic struct {
	semitic
}

// NewArabic returns an Arabic analyzer over the built-in lexicon.
func NewArabic() *Arabic {
	return NewArabicWithLexicon(BuiltinArabic())
}

// NewArabicWithLexicon returns an Arabic analyzer over a custom
// lexicon. A nil lexicon means an empty one.
func NewArabicWithLexicon(lex *Lexicon) *Arabic {
	if lex == nil {
		lex = &Lexicon{Roots: make(map[string]RootEntry)}
	}
	return &Arabic{semitic: semitic{
		lang:    morphospace.LangArabic,
		marks:   arabicMarks,
		names:   arabicMarkNames,
		lexicon: lex,
	}}
}
