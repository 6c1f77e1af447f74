package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTones(t *testing.T) {
	assert.Equal(t, []int{1}, ExtractTones("mā"))
	assert.Equal(t, []int{2}, ExtractTones("má"))
	assert.Equal(t, []int{3}, ExtractTones("hǎo"))
	assert.Equal(t, []int{4}, ExtractTones("mà"))

	// Toneless syllables are neutral.
	assert.Equal(t, []int{5}, ExtractTones("ma"))
	assert.Empty(t, ExtractTones(""))

	// Multi-syllable pinyin yields one tone per mark.
	assert.Equal(t, []int{3, 3}, ExtractTones("nǐhǎo"))
}

func TestParsePinyin(t *testing.T) {
	m := NewMandarin()

	parsed, err := m.ParsePinyin("好", "hǎo")
	require.NoError(t, err)
	assert.Equal(t, "好", parsed.Form)
	assert.Equal(t, "好", parsed.Root)
	assert.Equal(t, "hǎo", parsed.Z.BaseForm)
	assert.Equal(t, 3, parsed.Z.ConfigurationID)

	parsed, err = m.ParsePinyin("妈", "mā")
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Z.ConfigurationID)

	parsed, err = m.ParsePinyin("吗", "ma")
	require.NoError(t, err)
	assert.Equal(t, NeutralTone, parsed.Z.ConfigurationID)
}

func TestMandarinAnalyzeRoot(t *testing.T) {
	m := NewMandarin()
	space, err := m.AnalyzeRoot("好")
	require.NoError(t, err)
	require.Equal(t, 1, space.Len())

	member := space.Morphemes()[0]
	assert.Equal(t, "好", member.Form)
	// Without pinyin the tone defaults to neutral.
	assert.Equal(t, NeutralTone, member.Z.ConfigurationID)
	assert.Equal(t, 0, member.X.DerivationDegree)
}
