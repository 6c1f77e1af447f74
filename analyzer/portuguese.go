package analyzer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ttm-morphology/morphospace"
)

// Portuguese analyzes Portuguese morphology. The vocalic configuration
// id encodes the stressed syllable: 1 oxytone, 2 paroxytone,
// 3 proparoxytone.
type Portuguese struct {
	concat
}

// NewPortuguese returns a Portuguese analyzer.
func NewPortuguese() *Portuguese {
	return &Portuguese{concat: concat{lang: morphospace.LangPortuguese}}
}

// AnalyzeRoot generates the regular plural and diminutive of a
// Portuguese stem.
func (p *Portuguese) AnalyzeRoot(stem string) (*morphospace.RootSpace, error) {
	space := morphospace.NewRootSpace(stem, morphospace.LangPortuguese)

	members := []morphospace.Morpheme{p.stemMorpheme(stem)}

	switch {
	case strings.HasSuffix(stem, "a"), strings.HasSuffix(stem, "e"),
		strings.HasSuffix(stem, "o"), strings.HasSuffix(stem, "u"),
		strings.HasSuffix(stem, "i"):
		members = append(members, p.inflected(stem+"s", stem, nil, []string{"s"}, "plural"))
	case strings.HasSuffix(stem, "r"), strings.HasSuffix(stem, "z"):
		members = append(members, p.inflected(stem+"es", stem, nil, []string{"es"}, "plural"))
	case strings.HasSuffix(stem, "m"):
		members = append(members, p.inflected(stem[:len(stem)-1]+"ns", stem, nil, []string{"ns"}, "plural"))
	}

	if strings.HasSuffix(stem, "a") {
		members = append(members, p.inflected(stem[:len(stem)-1]+"inha", stem, nil, []string{"inha"}, "diminutive"))
	} else if strings.HasSuffix(stem, "o") {
		members = append(members, p.inflected(stem[:len(stem)-1]+"inho", stem, nil, []string{"inho"}, "diminutive"))
	}

	for _, m := range members {
		m.Z.ConfigurationID = DetectStress(m.Form)
		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("analyze stem %q: %w", stem, err)
		}
	}
	return space, nil
}

// ParseMorpheme strips regular plural and diminutive suffixes and
// stamps the stress configuration.
func (p *Portuguese) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	stem := form
	var suffixes []string
	label := ""

	if strings.HasSuffix(form, "s") && !strings.HasSuffix(form, "ss") {
		switch {
		case strings.HasSuffix(form, "ns"):
			stem = form[:len(form)-2] + "m"
			suffixes = append(suffixes, "ns")
			label = "plural"
		case strings.HasSuffix(form, "es") && len(form) > 3:
			stem = form[:len(form)-2]
			suffixes = append(suffixes, "es")
			label = "plural"
		case strings.HasSuffix(form, "is") && len(form) > 3:
			// Vocalized-l plurals (papel / papéis) are left unanalyzed.
		default:
			stem = form[:len(form)-1]
			suffixes = append(suffixes, "s")
			label = "plural"
		}
	}

	if strings.HasSuffix(form, "inha") {
		stem = form[:len(form)-4] + "a"
		suffixes = append(suffixes, "inha")
		label = "diminutive"
	} else if strings.HasSuffix(form, "inho") {
		stem = form[:len(form)-4] + "o"
		suffixes = append(suffixes, "inho")
		label = "diminutive"
	}

	var m morphospace.Morpheme
	if len(suffixes) == 0 {
		m = p.stemMorpheme(form)
	} else {
		m = p.inflected(form, stem, nil, suffixes, label)
	}
	m.Z.ConfigurationID = DetectStress(form)
	return m, nil
}

// DetectStress locates the tonic syllable of a Portuguese word:
// 1 oxytone (last), 2 paroxytone (penultimate), 3 proparoxytone
// (antepenultimate). Written accents decide when present; otherwise
// the standard ending rule applies.
func DetectStress(word string) int {
	decomposed := norm.NFD.String(strings.ToLower(word))

	// Walk the decomposed runes, counting vowel groups and noting
	// which group carries a stress accent.
	groups := 0
	inVowel := false
	accented := -1
	tilded := -1
	for _, r := range decomposed {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			if !inVowel {
				groups++
				inVowel = true
			}
		case '́', '̂':
			// Acute and circumflex mark the tonic vowel.
			if inVowel {
				accented = groups
			}
		case '̃':
			// Tilde marks stress only when no acute/circumflex does.
			if inVowel {
				tilded = groups
			}
		default:
			// Other combining marks do not interrupt a vowel group.
			if r < '̀' || r > 'ͯ' {
				inVowel = false
			}
		}
	}
	if groups == 0 {
		return 1
	}

	stressed := accented
	if stressed == -1 {
		stressed = tilded
	}
	if stressed != -1 {
		fromEnd := groups - stressed + 1
		if fromEnd >= 3 {
			return 3
		}
		return fromEnd
	}

	// No written accent: words in -a(s), -e(s), -o(s), -am, -em, -ens
	// are paroxytone, the rest oxytone.
	plain := strings.Map(stripCombining, decomposed)
	if groups > 1 {
		if strings.HasSuffix(plain, "am") || strings.HasSuffix(plain, "em") ||
			strings.HasSuffix(plain, "ens") {
			return 2
		}
		trimmed := strings.TrimSuffix(plain, "s")
		if strings.HasSuffix(trimmed, "a") || strings.HasSuffix(trimmed, "e") ||
			strings.HasSuffix(trimmed, "o") {
			return 2
		}
	}
	return 1
}

func stripCombining(r rune) rune {
	if r >= '̀' && r <= 'ͯ' {
		return -1
	}
	return r
}
