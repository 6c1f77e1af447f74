package analyzer

import (
	"github.com/ttm-morphology/morphospace"
	"golang.org/x/text/unicode/norm"
)

// NeutralTone is the configuration id of a toneless syllable.
const NeutralTone = 5

// Mandarin analyzes Mandarin Chinese, an isolating tonal language.
// Characters are their own roots; the vocalic configuration id is the
// tone of the first syllable, read off pinyin tone marks.
type Mandarin struct {
	concat
}

// NewMandarin returns a Mandarin analyzer.
func NewMandarin() *Mandarin {
	return &Mandarin{concat: concat{lang: morphospace.LangMandarin}}
}

// AnalyzeRoot treats the character itself as its one-member family.
func (m *Mandarin) AnalyzeRoot(character string) (*morphospace.RootSpace, error) {
	space := morphospace.NewRootSpace(character, morphospace.LangMandarin)
	parsed, err := m.ParseMorpheme(character)
	if err != nil {
		return nil, err
	}
	if err := space.Add(parsed); err != nil {
		return nil, err
	}
	return space, nil
}

// ParseMorpheme analyzes a character without pinyin; the tone defaults
// to neutral.
func (m *Mandarin) ParseMorpheme(form string) (morphospace.Morpheme, error) {
	return m.ParsePinyin(form, "")
}

// ParsePinyin analyzes a character together with its toned pinyin.
func (m *Mandarin) ParsePinyin(form, pinyin string) (morphospace.Morpheme, error) {
	parsed := m.stemMorpheme(form)
	parsed.Z.BaseForm = pinyin

	tones := ExtractTones(pinyin)
	if len(tones) > 0 {
		parsed.Z.ConfigurationID = tones[0]
	} else {
		parsed.Z.ConfigurationID = NeutralTone
	}
	return parsed, nil
}

// ExtractTones reads the tone of each marked vowel in a pinyin string:
// macron 1, acute 2, caron 3, grave 4. A non-empty string without tone
// marks is a single neutral tone.
func ExtractTones(pinyin string) []int {
	var tones []int
	for _, r := range norm.NFD.String(pinyin) {
		switch r {
		case '̄':
			tones = append(tones, 1)
		case '́':
			tones = append(tones, 2)
		case '̌':
			tones = append(tones, 3)
		case '̀':
			tones = append(tones, 4)
		}
	}
	if len(tones) == 0 && pinyin != "" {
		tones = append(tones, NeutralTone)
	}
	return tones
}
