package analyzer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ttm-morphology/morphospace"
)

// Sanskrit analyzes transliterated Sanskrit verb morphology. The
// vocalic configuration id records pitch accent: 1 when the form
// carries an udatta (acute) mark, 0 otherwise.
type Sanskrit struct {
	concat
}

// NewSanskrit returns a Sanskrit analyzer.
func NewSanskrit() *Sanskrit {
	return &Sanskrit{concat: concat{lang: morphospace.LangSanskrit}}
}

// AnalyzeRoot builds the conjugational family of a dhatu. Only gam
// ("go") carries built-in conjugations.
func (s *Sanskrit) AnalyzeRoot(dhatu string) (*morphospace.RootSpace, error) {
	space := morphospace.NewRootSpace(dhatu, morphospace.LangSanskrit)

	forms := []string{dhatu}
	if dhatu == "gam" {
		forms = append(forms, "gacchati", "agaccham", "gamiṣyāmi")
	}

	for _, form := range forms {
		m, err := s.ParseMorpheme(form)
		if err != nil {
			return nil, err
		}
		m.Root = dhatu
		m.X.Root = dhatu
		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("analyze dhatu %q: %w", dhatu, err)
		}
	}
	return space, nil
}

// ParseMorpheme recognizes the built-in gam conjugations and marks
// pitch accent for any form.
func (s *Sanskrit) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	var m morphospace.Morpheme
	switch {
	case strings.Contains(form, "cchati"):
		m = s.inflected(form, "gam", nil, []string{"ati"}, "")
		s.tagTense(&m, "present", 3)
	case strings.Contains(form, "gaccham"):
		m = s.inflected(form, "gam", []string{"a"}, []string{"am"}, "")
		s.tagTense(&m, "imperfect", 1)
	case strings.Contains(form, "mi") &&
		(strings.Contains(form, "sy") || strings.Contains(form, "ṣy")):
		m = s.inflected(form, "gam", nil, []string{"iṣyāmi"}, "")
		s.tagTense(&m, "future", 1)
	default:
		m = s.stemMorpheme(form)
	}

	if hasUdatta(form) {
		m.Z.ConfigurationID = 1
	}
	return m, nil
}

func (s *Sanskrit) tagTense(m *morphospace.Morpheme, tense string, person int) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]morphospace.MetaValue)
	}
	m.Metadata["tense"] = morphospace.StringValue(tense)
	m.Metadata["person"] = morphospace.NumberValue(float64(person))
}

// hasUdatta reports whether the transliteration carries an acute
// pitch-accent mark.
func hasUdatta(form string) bool {
	return strings.ContainsRune(norm.NFD.String(form), '́')
}
