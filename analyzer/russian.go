package analyzer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ttm-morphology/morphospace"
)

// Russian analyzes transliterated Russian morphology, focused on
// verbal aspect and stress. The vocalic configuration id is the rune
// position of the stressed vowel, or 0 when unmarked.
type Russian struct {
	concat
}

// NewRussian returns a Russian analyzer.
func NewRussian() *Russian {
	return &Russian{concat: concat{lang: morphospace.LangRussian}}
}

// AnalyzeRoot generates an aspectual pair for a verb stem: the
// imperfective stem plus its prefixed perfective.
func (r *Russian) AnalyzeRoot(stem string) (*morphospace.RootSpace, error) {
	space := morphospace.NewRootSpace(stem, morphospace.LangRussian)

	forms := []string{stem}
	if !strings.HasPrefix(stem, "pro") {
		forms = append(forms, "pro"+stem)
	}

	for _, form := range forms {
		m, err := r.ParseMorpheme(form)
		if err != nil {
			return nil, err
		}
		// Family members share the stem as root even when parsing
		// would split a prefix off.
		m.Root = stem
		m.X.Root = stem
		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("analyze stem %q: %w", stem, err)
		}
	}
	return space, nil
}

// ParseMorpheme detects the aspect of a Russian verb form from its
// prefix and records the stress position when the form carries a
// combining acute accent.
func (r *Russian) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	stem := form
	var prefixes []string
	perfective := false

	switch {
	case strings.HasPrefix(form, "pro"):
		perfective = true
		prefixes = []string{"pro"}
		stem = form[3:]
	case strings.HasPrefix(form, "s"):
		perfective = true
		prefixes = []string{"s"}
		stem = form[1:]
	}

	var m morphospace.Morpheme
	if len(prefixes) == 0 {
		m = r.stemMorpheme(form)
	} else {
		m = r.inflected(form, stem, prefixes, nil, "")
	}

	aspect := "imperfective"
	if perfective {
		aspect = "perfective"
	}
	if err := m.Y.AddLayer(morphospace.LevelLiteral, "aspect: "+aspect); err != nil {
		return morphospace.Morpheme{}, err
	}
	if m.Metadata == nil {
		m.Metadata = make(map[string]morphospace.MetaValue)
	}
	m.Metadata["perfective"] = morphospace.BoolValue(perfective)

	m.Z.ConfigurationID = stressPosition(form)
	return m, nil
}

// stressPosition returns the 1-based rune index of the vowel carrying
// a combining acute accent, or 0 when the form is unmarked.
func stressPosition(form string) int {
	pos := 0
	for _, r := range norm.NFD.String(form) {
		if r == '́' {
			return pos
		}
		pos++
	}
	return 0
}
