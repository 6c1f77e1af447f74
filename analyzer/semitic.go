package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ttm-morphology/morphospace"
)

// markInfo names a vocalization mark for Height.Diacritics.
type markInfo struct {
	name     string
	position string
	function string
}

// semitic implements the shared behavior of consonantal-root
// analyzers: a skeleton is obtained by stripping marks, derivations
// come from a lexicon, and configuration ids follow lexicon order.
type semitic struct {
	lang    morphospace.Language
	marks   *regexp.Regexp
	names   map[rune]markInfo
	lexicon *Lexicon
}

func (s *semitic) Language() morphospace.Language { return s.lang }

// splitRoot normalizes a root given as either a bare skeleton or a
// dash-separated one. The display form keeps or inserts the dashes.
func (s *semitic) splitRoot(root string) (normalized, display string) {
	normalized = strings.NewReplacer("-", "", " ", "").Replace(root)
	if strings.Contains(root, "-") {
		return normalized, root
	}
	runes := []rune(normalized)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return normalized, strings.Join(parts, "-")
}

func (s *semitic) strip(text string) string {
	return s.marks.ReplaceAllString(text, "")
}

func (s *semitic) extract(text string) []string {
	return s.marks.FindAllString(text, -1)
}

// nameMarks records the named diacritics of the extracted marks on h.
func (s *semitic) nameMarks(h *morphospace.Height, found []string) {
	for _, mark := range found {
		r := []rune(mark)[0]
		info, ok := s.names[r]
		if !ok {
			continue
		}
		h.AddDiacritic(mark, info.name, info.position, info.function)
	}
}

// AnalyzeRoot builds the root's derivational family from the lexicon.
// Each example becomes one member; its position in the lexicon assigns
// the vocalic configuration id, starting at 1.
func (s *semitic) AnalyzeRoot(root string) (*morphospace.RootSpace, error) {
	_, display := s.splitRoot(root)
	space := morphospace.NewRootSpace(display, s.lang)

	entry, ok := s.lexicon.Lookup(display)
	if !ok {
		return space, nil
	}

	for i, ex := range entry.Examples {
		skeleton := s.strip(ex.Form)
		found := s.extract(ex.Form)

		m := morphospace.Morpheme{
			Form:     ex.Form,
			Root:     display,
			Language: s.lang,
			Gloss:    ex.Gloss,
			X: morphospace.Width{
				Root:             display,
				Pattern:          ex.Pattern,
				DerivationDegree: ex.Degree,
			},
			Y: morphospace.Depth{
				CurrentLevel:  morphospace.LevelLiteral,
				SemanticField: entry.SemanticField,
			},
			Z: morphospace.Height{
				BaseForm:        skeleton,
				ConfigurationID: i + 1,
				Vowels:          found,
			},
		}
		s.nameMarks(&m.Z, found)

		if len(ex.Layers) == 0 {
			if err := m.Y.AddLayer(morphospace.LevelLiteral, ex.Gloss); err != nil {
				return nil, fmt.Errorf("analyze root %s: %w", display, err)
			}
		}
		for _, layer := range ex.Layers {
			if err := m.Y.AddLayer(morphospace.SemanticLevel(layer.Level), layer.Meaning); err != nil {
				return nil, fmt.Errorf("analyze root %s, form %q: %w", display, ex.Form, err)
			}
		}

		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("analyze root %s: %w", display, err)
		}
	}
	return space, nil
}

// ParseMorpheme analyzes a single form without consulting the lexicon:
// the skeleton becomes the root, the marks the vocalic configuration.
func (s *semitic) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	skeleton := s.strip(form)
	found := s.extract(form)

	m := morphospace.NewMorpheme(form, skeleton, s.lang)
	m.X.Root = skeleton
	m.Z = morphospace.Height{
		BaseForm:        skeleton,
		ConfigurationID: len(found),
		Vowels:          found,
	}
	s.nameMarks(&m.Z, found)
	return m, nil
}

// Vocalize returns every lexicon form whose skeleton matches the
// given form, in stable lexicon order.
func (s *semitic) Vocalize(form string) []string {
	skeleton := s.strip(form)
	var out []string
	for _, root := range s.lexicon.sortedRoots() {
		for _, ex := range s.lexicon.Roots[root].Examples {
			if s.strip(ex.Form) == skeleton {
				out = append(out, ex.Form)
			}
		}
	}
	return out
}

// Disambiguate picks the vocalization whose gloss shares the most
// tokens with the context phrase. Without context, or with no token
// overlap anywhere, the first known vocalization wins; with no known
// vocalization at all, the form comes back unchanged.
func (s *semitic) Disambiguate(form, context string) string {
	skeleton := s.strip(form)

	type candidate struct {
		form  string
		gloss string
	}
	var candidates []candidate
	for _, root := range s.lexicon.sortedRoots() {
		for _, ex := range s.lexicon.Roots[root].Examples {
			if s.strip(ex.Form) == skeleton {
				candidates = append(candidates, candidate{form: ex.Form, gloss: ex.Gloss})
			}
		}
	}
	if len(candidates) == 0 {
		return form
	}

	ctxTokens := tokenize(context)
	best, bestScore := candidates[0].form, 0
	for _, c := range candidates {
		score := overlap(tokenize(c.gloss), ctxTokens)
		if score > bestScore {
			best, bestScore = c.form, score
		}
	}
	return best
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.Trim(f, ".,;:!?/()\"'")
		if f != "" {
			tokens[f] = true
		}
	}
	return tokens
}

func overlap(a, b map[string]bool) int {
	n := 0
	for t := range a {
		if b[t] {
			n++
		}
	}
	return n
}
