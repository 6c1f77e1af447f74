// Package analyzer provides language-specific morphological analysis:
// turning roots and surface forms into coordinate-tagged morphemes.
// Each analyzer knows one language; the spatial index consumes its
// output and performs no linguistic inference of its own.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/ttm-morphology/morphospace"
)

// ErrUnsupported is returned by New for languages without an analyzer.
var ErrUnsupported = errors.New("analyzer: unsupported language")

// Analyzer analyzes one language's morphology.
type Analyzer interface {
	// Language returns the language this analyzer handles.
	Language() morphospace.Language

	// AnalyzeRoot builds the derivational family of a root as a
	// populated RootSpace. Every member carries a complete coordinate
	// triple. An unknown root yields an empty space, not an error.
	AnalyzeRoot(root string) (*morphospace.RootSpace, error)

	// ParseMorpheme analyzes a surface form into a coordinate-tagged
	// morpheme.
	ParseMorpheme(form string) (morphospace.Morpheme, error)

	// Vocalize returns the known fully-marked renderings of a form.
	// Languages without separate vocalization return the form itself.
	Vocalize(form string) []string

	// Disambiguate picks the most plausible vocalization of form given
	// a context phrase, falling back to the form itself when nothing
	// is known.
	Disambiguate(form, context string) string
}

// New returns the analyzer for a language.
func New(lang morphospace.Language) (Analyzer, error) {
	switch lang {
	case morphospace.LangArabic:
		return NewArabic(), nil
	case morphospace.LangHebrew:
		return NewHebrew(), nil
	case morphospace.LangPortuguese:
		return NewPortuguese(), nil
	case morphospace.LangEnglish:
		return NewEnglish(), nil
	case morphospace.LangRussian:
		return NewRussian(), nil
	case morphospace.LangSanskrit:
		return NewSanskrit(), nil
	case morphospace.LangMandarin:
		return NewMandarin(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, lang)
}

// Supported lists the languages New can build an analyzer for.
func Supported() []morphospace.Language {
	return []morphospace.Language{
		morphospace.LangArabic,
		morphospace.LangHebrew,
		morphospace.LangPortuguese,
		morphospace.LangEnglish,
		morphospace.LangRussian,
		morphospace.LangSanskrit,
		morphospace.LangMandarin,
	}
}
