package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-morphology/morphospace"
)

const (
	mlkRoot  = "מ-ל-ך"
	melekh   = "מֶלֶךְ"
	malakh   = "מָלַךְ"
	mlkBare  = "מלך"
	shamar   = "שָׁמַר"
	shamarSk = "שמר"
)

func TestStripNiqqud(t *testing.T) {
	assert.Equal(t, mlkBare, StripNiqqud(melekh))
	assert.Equal(t, shamarSk, StripNiqqud(shamar))
}

func TestHebrewAnalyzeRoot(t *testing.T) {
	h := NewHebrew()
	space, err := h.AnalyzeRoot(mlkRoot)
	require.NoError(t, err)

	assert.Equal(t, mlkRoot, space.Root())
	assert.GreaterOrEqual(t, space.Len(), 1)

	var king *morphospace.Morpheme
	for _, m := range space.Morphemes() {
		m := m
		if m.Form == melekh {
			king = &m
		}
	}
	require.NotNil(t, king, "melekh missing from the family")
	assert.Equal(t, "king", king.Gloss)
	assert.Equal(t, "kingship", king.Y.SemanticField)
}

func TestHebrewSefirahLayer(t *testing.T) {
	h := NewHebrew()
	space, err := h.AnalyzeRoot(mlkRoot)
	require.NoError(t, err)

	// malkhut carries a level-4 layer naming the sefirah.
	found := false
	for _, m := range space.Morphemes() {
		if meaning, ok := m.Y.MysticalMeaning(); ok {
			assert.Contains(t, meaning, "Malkhut")
			found = true
		}
	}
	assert.True(t, found, "no member carries a mystical layer")
}

func TestHebrewParseMorpheme(t *testing.T) {
	h := NewHebrew()
	m, err := h.ParseMorpheme(melekh)
	require.NoError(t, err)

	assert.Equal(t, morphospace.LangHebrew, m.Language)
	assert.Equal(t, mlkBare, m.Z.BaseForm)
	assert.NotEmpty(t, m.Z.Vowels)
	assert.Empty(t, m.Z.Cantillation)

	// segol, segol, shva: all named, all below the letters.
	require.Len(t, m.Z.Diacritics, 3)
	assert.Equal(t, "segol", m.Z.Diacritics[0].Name)
	below := m.Z.DiacriticsByPosition(morphospace.PositionBelow)
	assert.Len(t, below, 3)
}

func TestHebrewCantillationSplit(t *testing.T) {
	// melekh with an etnahta accent under the lamed.
	accented := "מֶלֶ֑ךְ"
	h := NewHebrew()
	m, err := h.ParseMorpheme(accented)
	require.NoError(t, err)

	assert.Equal(t, mlkBare, m.Z.BaseForm)
	require.Len(t, m.Z.Cantillation, 1)
	assert.Equal(t, "֑", m.Z.Cantillation[0])
	assert.Len(t, m.Z.Vowels, 3, "accents are not vowels")

	cant := m.Z.DiacriticsByPosition(morphospace.PositionAbove)
	require.NotEmpty(t, cant)
	assert.Equal(t, morphospace.FunctionCantillation, cant[len(cant)-1].Function)
}

func TestHebrewVocalize(t *testing.T) {
	h := NewHebrew()
	options := h.Vocalize(mlkBare)
	assert.Contains(t, options, melekh, "king reading")
	assert.Contains(t, options, malakh, "he-reigned reading")
}

func TestHebrewDisambiguate(t *testing.T) {
	h := NewHebrew()
	got := h.Disambiguate(mlkBare, "the king of Israel")
	assert.Equal(t, melekh, got)

	got = h.Disambiguate(mlkBare, "he reigned over the land")
	assert.Equal(t, malakh, got)
}
