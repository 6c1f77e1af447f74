package morphospace

import "fmt"

// Language identifies a supported language.
// The set is closed: serialization rejects codes outside it.
type Language int

// Supported languages. The zero value LangUnknown is valid for morphemes
// whose language has not been established.
const (
	LangUnknown Language = iota

	// Semitic
	LangArabic
	LangHebrew
	LangAramaic
	LangAmharic
	LangTigrinya
	LangMaltese
	LangSyriac

	// Indo-European
	LangPortuguese
	LangEnglish
	LangSpanish
	LangFrench
	LangGerman
	LangRussian
	LangHindi
	LangPersian
	LangGreek
	LangLatin
	LangSanskrit

	// Sino-Tibetan
	LangMandarin

	// Turkic
	LangTurkish

	// Japonic
	LangJapanese

	// Koreanic
	LangKorean

	// Austronesian
	LangMalay

	// Dravidian
	LangTamil
)

// languageCodes maps each language to its ISO 639 code.
var languageCodes = map[Language]string{
	LangArabic:     "ar",
	LangHebrew:     "he",
	LangAramaic:    "arc",
	LangAmharic:    "am",
	LangTigrinya:   "ti",
	LangMaltese:    "mt",
	LangSyriac:     "syc",
	LangPortuguese: "pt",
	LangEnglish:    "en",
	LangSpanish:    "es",
	LangFrench:     "fr",
	LangGerman:     "de",
	LangRussian:    "ru",
	LangHindi:      "hi",
	LangPersian:    "fa",
	LangGreek:      "el",
	LangLatin:      "la",
	LangSanskrit:   "sa",
	LangMandarin:   "zh",
	LangTurkish:    "tr",
	LangJapanese:   "ja",
	LangKorean:     "ko",
	LangMalay:      "ms",
	LangTamil:      "ta",
}

// languageNames maps each language to a lowercase English name.
var languageNames = map[Language]string{
	LangArabic:     "arabic",
	LangHebrew:     "hebrew",
	LangAramaic:    "aramaic",
	LangAmharic:    "amharic",
	LangTigrinya:   "tigrinya",
	LangMaltese:    "maltese",
	LangSyriac:     "syriac",
	LangPortuguese: "portuguese",
	LangEnglish:    "english",
	LangSpanish:    "spanish",
	LangFrench:     "french",
	LangGerman:     "german",
	LangRussian:    "russian",
	LangHindi:      "hindi",
	LangPersian:    "persian",
	LangGreek:      "greek",
	LangLatin:      "latin",
	LangSanskrit:   "sanskrit",
	LangMandarin:   "mandarin",
	LangTurkish:    "turkish",
	LangJapanese:   "japanese",
	LangKorean:     "korean",
	LangMalay:      "malay",
	LangTamil:      "tamil",
}

// Code returns the ISO 639 code for l, or "" for LangUnknown.
func (l Language) Code() string {
	return languageCodes[l]
}

// String returns the lowercase English name of l.
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLanguage resolves an ISO 639 code or lowercase English name to a
// Language. The empty string resolves to LangUnknown.
func ParseLanguage(s string) (Language, error) {
	if s == "" {
		return LangUnknown, nil
	}
	for lang, code := range languageCodes {
		if code == s {
			return lang, nil
		}
	}
	for lang, name := range languageNames {
		if name == s {
			return lang, nil
		}
	}
	return LangUnknown, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// MorphologicalType classifies a language's morphological typology.
type MorphologicalType int

const (
	MorphUnknown MorphologicalType = iota
	MorphIsolating
	MorphAgglutinative
	MorphFusional
	MorphPolysynthetic
	// MorphIntroflective covers non-concatenative (Semitic) morphology.
	MorphIntroflective
)

// String returns the lowercase name of the morphological type.
func (t MorphologicalType) String() string {
	switch t {
	case MorphIsolating:
		return "isolating"
	case MorphAgglutinative:
		return "agglutinative"
	case MorphFusional:
		return "fusional"
	case MorphPolysynthetic:
		return "polysynthetic"
	case MorphIntroflective:
		return "introflective"
	default:
		return "unknown"
	}
}

// WritingDirection is the direction a language's script is written in.
type WritingDirection int

const (
	DirectionLTR WritingDirection = iota
	DirectionRTL
	DirectionTTB
)

// String returns the direction as "left-to-right", "right-to-left",
// or "top-to-bottom".
func (d WritingDirection) String() string {
	switch d {
	case DirectionRTL:
		return "right-to-left"
	case DirectionTTB:
		return "top-to-bottom"
	default:
		return "left-to-right"
	}
}

// LanguageFeatures describes the typological and structural features
// of a language.
type LanguageFeatures struct {
	// Language is the language described.
	Language Language
	// Type is the morphological typology.
	Type MorphologicalType
	// Direction is the writing direction.
	Direction WritingDirection
	// ConsonantalRoot reports whether the language builds words on
	// consonantal roots.
	ConsonantalRoot bool
	// Diacritics reports whether the language uses diacritical marks.
	Diacritics bool
	// Tonal reports whether the language has lexical tone.
	Tonal bool
	// Script is the name of the writing system.
	Script string
	// Description is a one-line characterization.
	Description string
}

// languageFeatures holds pre-configured features for the major languages.
var languageFeatures = map[Language]LanguageFeatures{
	LangArabic: {
		Language:        LangArabic,
		Type:            MorphIntroflective,
		Direction:       DirectionRTL,
		ConsonantalRoot: true,
		Diacritics:      true,
		Script:          "Arabic",
		Description:     "Arabic, introflective Semitic with trilateral root system and tashkīl",
	},
	LangHebrew: {
		Language:        LangHebrew,
		Type:            MorphIntroflective,
		Direction:       DirectionRTL,
		ConsonantalRoot: true,
		Diacritics:      true,
		Script:          "Hebrew",
		Description:     "Hebrew, introflective Semitic with trilateral root system and niqqud",
	},
	LangPortuguese: {
		Language:    LangPortuguese,
		Type:        MorphFusional,
		Diacritics:  true,
		Script:      "Latin",
		Description: "Portuguese, fusional Indo-European with rich verbal morphology",
	},
	LangEnglish: {
		Language:    LangEnglish,
		Type:        MorphFusional,
		Script:      "Latin",
		Description: "English, weakly fusional Germanic with analytic tendencies",
	},
	LangRussian: {
		Language:    LangRussian,
		Type:        MorphFusional,
		Script:      "Cyrillic",
		Description: "Russian, fusional Slavic with aspectual pairs and case system",
	},
	LangMandarin: {
		Language:    LangMandarin,
		Type:        MorphIsolating,
		Tonal:       true,
		Script:      "Hanzi",
		Description: "Mandarin Chinese, isolating Sino-Tibetan with tonal contrasts",
	},
	LangSanskrit: {
		Language:    LangSanskrit,
		Type:        MorphFusional,
		Diacritics:  true,
		Script:      "Devanagari",
		Description: "Sanskrit, Pāṇinian system with complex sandhi and derivation",
	},
	LangTurkish: {
		Language:    LangTurkish,
		Type:        MorphAgglutinative,
		Script:      "Latin",
		Description: "Turkish, agglutinative Turkic with vowel harmony",
	},
	LangJapanese: {
		Language:    LangJapanese,
		Type:        MorphAgglutinative,
		Script:      "Kana/Kanji",
		Description: "Japanese, agglutinative with multiple writing systems",
	},
	LangPersian: {
		Language:    LangPersian,
		Type:        MorphFusional,
		Direction:   DirectionRTL,
		Diacritics:  true,
		Script:      "Arabic",
		Description: "Persian, Indo-European written in Arabic script",
	},
}

// Features returns the typological features for l.
// The second return value is false when no features are configured.
func Features(l Language) (LanguageFeatures, bool) {
	f, ok := languageFeatures[l]
	return f, ok
}

// Commensurable reports whether coordinate distances between morphemes
// of languages a and b are meaningful: either the languages are the same,
// or both have configured features of the same morphological type.
func Commensurable(a, b Language) bool {
	if a == b {
		return true
	}
	fa, okA := Features(a)
	fb, okB := Features(b)
	return okA && okB && fa.Type == fb.Type
}
