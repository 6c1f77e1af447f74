package analyzer

import "github.com/ttm-morphology/morphospace"

// concat implements the shared behavior of concatenative-morphology
// analyzers: no separate vocalization layer exists, so Vocalize and
// Disambiguate are identities.
type concat struct {
	lang morphospace.Language
}

func (c concat) Language() morphospace.Language { return c.lang }

func (c concat) Vocalize(form string) []string { return []string{form} }

func (c concat) Disambiguate(form, context string) string { return form }

// stemMorpheme builds the degree-zero member of a stem's family.
func (c concat) stemMorpheme(stem string) morphospace.Morpheme {
	m := morphospace.NewMorpheme(stem, stem, c.lang)
	m.X.Root = stem
	m.Z.BaseForm = stem
	return m
}

// inflected builds a derived member of stem's family: the surface form
// with the affixes that produced it and an inflection label in the
// metadata. The derivation degree is the affix count.
func (c concat) inflected(form, stem string, prefixes, suffixes []string, label string) morphospace.Morpheme {
	m := morphospace.NewMorpheme(form, stem, c.lang)
	m.X = morphospace.Width{
		Root:             stem,
		Prefixes:         prefixes,
		Suffixes:         suffixes,
		DerivationDegree: len(prefixes) + len(suffixes),
	}
	m.Z.BaseForm = form
	if label != "" {
		m.Metadata = map[string]morphospace.MetaValue{
			"inflection": morphospace.StringValue(label),
		}
	}
	return m
}
