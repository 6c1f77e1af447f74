package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanskritAnalyzeRoot(t *testing.T) {
	s := NewSanskrit()
	space, err := s.AnalyzeRoot("gam")
	require.NoError(t, err)
	require.Equal(t, 4, space.Len())

	got := map[string]bool{}
	for _, m := range space.Morphemes() {
		got[m.Form] = true
		assert.Equal(t, "gam", m.Root)
	}
	assert.True(t, got["gacchati"])
	assert.True(t, got["agaccham"])
	assert.True(t, got["gamiṣyāmi"])

	// Unknown dhatus yield just the bare stem.
	space, err = s.AnalyzeRoot("bhū")
	require.NoError(t, err)
	assert.Equal(t, 1, space.Len())
}

func TestSanskritParseMorpheme(t *testing.T) {
	s := NewSanskrit()

	m, err := s.ParseMorpheme("gacchati")
	require.NoError(t, err)
	assert.Equal(t, "gam", m.Root)
	assert.Equal(t, []string{"ati"}, m.X.Suffixes)
	assert.Equal(t, "present", m.Metadata["tense"].Str)
	assert.Equal(t, 3.0, m.Metadata["person"].Num)

	m, err = s.ParseMorpheme("agaccham")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, m.X.Prefixes)
	assert.Equal(t, "imperfect", m.Metadata["tense"].Str)
	assert.Equal(t, 1.0, m.Metadata["person"].Num)
	assert.Equal(t, 2, m.X.DerivationDegree)

	m, err = s.ParseMorpheme("gamiṣyāmi")
	require.NoError(t, err)
	assert.Equal(t, "future", m.Metadata["tense"].Str)
}

func TestSanskritUdatta(t *testing.T) {
	s := NewSanskrit()

	// Acute pitch accent sets the vocalic configuration.
	m, err := s.ParseMorpheme("agní")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Z.ConfigurationID)

	m, err = s.ParseMorpheme("gam")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Z.ConfigurationID)
}
