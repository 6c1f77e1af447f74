package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-morphology/morphospace"
)

const (
	ktbRoot    = "ك-ت-ب"
	kataba     = "كَتَبَ"
	kitab      = "كِتَاب"
	maktub     = "مَكْتُوب"
	ktbBare    = "كتب"
	maktubBare = "مكتوب"
)

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, ktbBare, StripDiacritics(kataba))
	assert.Equal(t, maktubBare, StripDiacritics(maktub))
	assert.Equal(t, "abc", StripDiacritics("abc"))
}

func TestExtractDiacritics(t *testing.T) {
	marks := ExtractDiacritics(kataba)
	assert.Len(t, marks, 3)
	for _, m := range marks {
		assert.Equal(t, "َ", m)
	}
}

func TestArabicAnalyzeRoot(t *testing.T) {
	a := NewArabic()
	space, err := a.AnalyzeRoot(ktbRoot)
	require.NoError(t, err)

	assert.Equal(t, ktbRoot, space.Root())
	assert.Equal(t, morphospace.LangArabic, space.Language())
	assert.Equal(t, 7, space.Len())

	// The bare-skeleton root form works too.
	same, err := a.AnalyzeRoot(ktbBare)
	require.NoError(t, err)
	assert.Equal(t, space.Len(), same.Len())
	assert.Equal(t, ktbRoot, same.Root())
}

func TestArabicAnalyzeRootMembers(t *testing.T) {
	a := NewArabic()
	space, err := a.AnalyzeRoot(ktbRoot)
	require.NoError(t, err)

	var base, written *morphospace.Morpheme
	for _, m := range space.Morphemes() {
		m := m
		switch m.Form {
		case kataba:
			base = &m
		case maktub:
			written = &m
		}
	}
	require.NotNil(t, base, "kataba missing from the family")
	require.NotNil(t, written, "maktub missing from the family")

	// kataba is the bare verb: first configuration, degree zero.
	assert.Equal(t, 0, base.X.DerivationDegree)
	assert.Equal(t, 1, base.Z.ConfigurationID)
	assert.Equal(t, ktbBare, base.Z.BaseForm)
	assert.Equal(t, "writing", base.Y.SemanticField)
	assert.NotEmpty(t, base.Z.Vowels)

	// maktub carries a mystical layer on top of the literal one.
	assert.Equal(t, 1, written.X.DerivationDegree)
	mystical, ok := written.Y.MysticalMeaning()
	require.True(t, ok, "maktub should carry a level-4 layer")
	assert.Contains(t, mystical, "destiny")

	// Patterns recorded on members resolve in the awzan table.
	info, ok := LookupPattern(written.X.Pattern)
	require.True(t, ok)
	assert.Equal(t, "passive_participle", info.Category)
}

func TestArabicAnalyzeRootUnknown(t *testing.T) {
	a := NewArabic()
	space, err := a.AnalyzeRoot("ق-ر-ء")
	require.NoError(t, err)
	assert.Equal(t, 0, space.Len(), "unknown root yields an empty space")
}

func TestArabicParseMorpheme(t *testing.T) {
	a := NewArabic()
	m, err := a.ParseMorpheme(kataba)
	require.NoError(t, err)

	assert.Equal(t, morphospace.LangArabic, m.Language)
	assert.Equal(t, kataba, m.Form)
	assert.Equal(t, ktbBare, m.Root)
	assert.Equal(t, ktbBare, m.Z.BaseForm)
	assert.Equal(t, 3, m.Z.ConfigurationID, "configuration counts the marks")
	assert.Len(t, m.Z.Vowels, 3)

	// Marks get named for the diacritic inventory.
	require.NotEmpty(t, m.Z.Diacritics)
	assert.Equal(t, "fatha", m.Z.Diacritics[0].Name)
	assert.Equal(t, morphospace.PositionAbove, m.Z.Diacritics[0].Position)
}

func TestArabicVocalize(t *testing.T) {
	a := NewArabic()
	options := a.Vocalize(ktbBare)
	assert.Contains(t, options, kataba)
	assert.NotContains(t, options, kitab, "kitab has a different skeleton")

	assert.Empty(t, a.Vocalize("xyz"))
}

func TestArabicDisambiguate(t *testing.T) {
	a := NewArabic()

	// Without context the first known vocalization wins.
	assert.Equal(t, kataba, a.Disambiguate(ktbBare, ""))

	// Unknown skeletons come back unchanged.
	assert.Equal(t, "xyz", a.Disambiguate("xyz", "anything"))
}

func TestLookupPattern(t *testing.T) {
	info, ok := LookupPattern("فَعَلَ")
	require.True(t, ok)
	assert.Equal(t, "verb", info.Type)
	assert.Equal(t, "1a2a3a", info.Template)
	assert.Equal(t, "perfective", info.Aspect)

	_, ok = LookupPattern("nope")
	assert.False(t, ok)
}
