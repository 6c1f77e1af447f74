package analyzer

import (
	"regexp"

	"github.com/ttm-morphology/morphospace"
)

// hebrewMarks matches the Hebrew pointing: cantillation accents and
// niqqud. hebrewCantillation matches the accent subrange only.
var (
	hebrewMarks        = regexp.MustCompile("[֑-ׇ]")
	hebrewCantillation = regexp.MustCompile("[֑-֯]")
)

// hebrewMarkNames names the niqqud for Height.Diacritics.
var hebrewMarkNames = map[rune]markInfo{
	'ְ': {name: "shva", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֱ': {name: "hataf segol", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֲ': {name: "hataf patah", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֳ': {name: "hataf qamats", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ִ': {name: "hiriq", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֵ': {name: "tsere", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֶ': {name: "segol", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ַ': {name: "patah", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ָ': {name: "qamats", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ֹ': {name: "holam", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ֺ': {name: "holam haser", position: morphospace.PositionAbove, function: morphospace.FunctionVowel},
	'ֻ': {name: "qubuts", position: morphospace.PositionBelow, function: morphospace.FunctionVowel},
	'ּ': {name: "dagesh", position: morphospace.PositionInline, function: morphospace.FunctionGemination},
	'ׁ': {name: "shin dot", position: morphospace.PositionAbove, function: morphospace.FunctionOther},
	'ׂ': {name: "sin dot", position: morphospace.PositionAbove, function: morphospace.FunctionOther},
}

// StripNiqqud removes the Hebrew pointing from text, cantillation
// included.
func StripNiqqud(text string) string {
	return hebrewMarks.ReplaceAllString(text, "")
}

// ExtractNiqqud returns the Hebrew pointing marks of text, in reading
// order.
func ExtractNiqqud(text string) []string {
	return hebrewMarks.FindAllString(text, -1)
}

// Hebrew analyzes the Hebrew root system.
type Hebrew struct {
	semitic
}

// NewHebrew returns a Hebrew analyzer over the built-in lexicon.
func NewHebrew() *Hebrew {
	return NewHebrewWithLexicon(BuiltinHebrew())
}

// NewHebrewWithLexicon returns a Hebrew analyzer over a custom
// lexicon. A nil lexicon means an empty one.
func NewHebrewWithLexicon(lex *Lexicon) *Hebrew {
	if lex == nil {
		lex = &Lexicon{Roots: make(map[string]RootEntry)}
	}
	return &Hebrew{semitic: semitic{
		lang:    morphospace.LangHebrew,
		marks:   hebrewMarks,
		names:   hebrewMarkNames,
		lexicon: lex,
	}}
}

// ParseMorpheme analyzes a pointed Hebrew form. Beyond the shared
// skeleton-and-marks analysis, cantillation accents are split out of
// the vowel marks into Height.Cantillation.
func (h *Hebrew) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	m, err := h.semitic.ParseMorpheme(form)
	if err != nil {
		return morphospace.Morpheme{}, err
	}
	h.splitCantillation(&m.Z)
	return m, nil
}

// AnalyzeRoot builds the root's family and splits cantillation marks
// out of each member's vowels.
func (h *Hebrew) AnalyzeRoot(root string) (*morphospace.RootSpace, error) {
	space, err := h.semitic.AnalyzeRoot(root)
	if err != nil {
		return nil, err
	}
	// Rebuild with cantillation separated; lexicon texts are normally
	// unaccented, so this is usually a no-op.
	rebuilt := morphospace.NewRootSpace(space.Root(), space.Language())
	for _, m := range space.Morphemes() {
		h.splitCantillation(&m.Z)
		if err := rebuilt.Add(m); err != nil {
			return nil, err
		}
	}
	return rebuilt, nil
}

func (h *Hebrew) splitCantillation(z *morphospace.Height) {
	if len(z.Vowels) == 0 {
		return
	}
	var vowels, accents []string
	for _, mark := range z.Vowels {
		if hebrewCantillation.MatchString(mark) {
			accents = append(accents, mark)
			continue
		}
		vowels = append(vowels, mark)
	}
	z.Vowels = vowels
	z.Cantillation = accents
	for _, a := range accents {
		z.AddDiacritic(a, "cantillation accent", morphospace.PositionAbove, morphospace.FunctionCantillation)
	}
}
