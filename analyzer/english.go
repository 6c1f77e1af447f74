package analyzer

import (
	"fmt"
	"strings"

	"github.com/ttm-morphology/morphospace"
)

// English analyzes English concatenative morphology: regular
// inflectional suffixes on a fixed stem.
type English struct {
	concat
}

// NewEnglish returns an English analyzer.
func NewEnglish() *English {
	return &English{concat: concat{lang: morphospace.LangEnglish}}
}

// AnalyzeRoot generates the regular inflections of an English stem:
// plural or third person singular, progressive, and past.
func (e *English) AnalyzeRoot(stem string) (*morphospace.RootSpace, error) {
	space := morphospace.NewRootSpace(stem, morphospace.LangEnglish)

	members := []morphospace.Morpheme{e.stemMorpheme(stem)}

	if strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") ||
		strings.HasSuffix(stem, "z") || strings.HasSuffix(stem, "ch") ||
		strings.HasSuffix(stem, "sh") {
		members = append(members, e.inflected(stem+"es", stem, nil, []string{"es"}, "plural or third person"))
	} else {
		members = append(members, e.inflected(stem+"s", stem, nil, []string{"s"}, "plural or third person"))
	}

	if strings.HasSuffix(stem, "e") && !strings.HasSuffix(stem, "ee") {
		members = append(members, e.inflected(stem[:len(stem)-1]+"ing", stem, nil, []string{"ing"}, "progressive"))
	} else {
		members = append(members, e.inflected(stem+"ing", stem, nil, []string{"ing"}, "progressive"))
	}

	if strings.HasSuffix(stem, "e") {
		members = append(members, e.inflected(stem+"d", stem, nil, []string{"d"}, "past"))
	} else {
		members = append(members, e.inflected(stem+"ed", stem, nil, []string{"ed"}, "past"))
	}

	for _, m := range members {
		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("analyze stem %q: %w", stem, err)
		}
	}
	return space, nil
}

// ParseMorpheme strips one regular inflectional suffix from an English
// word. The root reconstruction is naive: silent-e stems come back
// without their e.
func (e *English) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	switch {
	case strings.HasSuffix(form, "ing") && len(form) > 3:
		stem := form[:len(form)-3]
		return e.inflected(form, stem, nil, []string{"ing"}, "progressive"), nil
	case strings.HasSuffix(form, "ed") && len(form) > 2:
		stem := form[:len(form)-2]
		return e.inflected(form, stem, nil, []string{"ed"}, "past"), nil
	case strings.HasSuffix(form, "s") && !strings.HasSuffix(form, "ss") && len(form) > 1:
		stem := form[:len(form)-1]
		return e.inflected(form, stem, nil, []string{"s"}, "plural or third person"), nil
	}
	return e.stemMorpheme(form), nil
}
