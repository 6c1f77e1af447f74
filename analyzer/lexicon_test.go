package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lexiconYAML = `roots:
  q-t-l:
    semantic_field: killing
    examples:
      - form: qatala
        gloss: he killed
        degree: 0
      - form: qaatil
        gloss: killer
        pattern: CaaCiC
        degree: 1
        layers:
          - level: 1
            meaning: one who kills
`

func writeLexicon(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLexicon(t *testing.T) {
	path := writeLexicon(t, t.TempDir(), "test.yaml", lexiconYAML)

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	entry, ok := lex.Lookup("q-t-l")
	require.True(t, ok)
	assert.Equal(t, "killing", entry.SemanticField)
	require.Len(t, entry.Examples, 2)

	assert.Equal(t, "qatala", entry.Examples[0].Form)
	assert.Equal(t, 0, entry.Examples[0].Degree)
	assert.Empty(t, entry.Examples[0].Pattern)

	assert.Equal(t, "qaatil", entry.Examples[1].Form)
	assert.Equal(t, "CaaCiC", entry.Examples[1].Pattern)
	require.Len(t, entry.Examples[1].Layers, 1)
	assert.Equal(t, "one who kills", entry.Examples[1].Layers[0].Meaning)
}

func TestLoadLexiconMissing(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadLexiconBadYAML(t *testing.T) {
	path := writeLexicon(t, t.TempDir(), "bad.yaml", "roots: [not, a, map]")
	_, err := LoadLexicon(path)
	assert.Error(t, err)
}

func TestLoadLexiconDir(t *testing.T) {
	dir := t.TempDir()
	writeLexicon(t, dir, "a.yaml", lexiconYAML)
	writeLexicon(t, dir, "b.yml", `roots:
  d-r-s:
    semantic_field: study
    examples:
      - form: darasa
        gloss: he studied
        degree: 0
`)
	// Non-lexicon files are skipped.
	writeLexicon(t, dir, "notes.txt", "not yaml at all {{{")

	lex, err := LoadLexiconDir(dir)
	require.NoError(t, err)
	assert.Len(t, lex.Roots, 2)

	_, ok := lex.Lookup("q-t-l")
	assert.True(t, ok)
	_, ok = lex.Lookup("d-r-s")
	assert.True(t, ok)
}

func TestLoadLexiconDirLaterWins(t *testing.T) {
	dir := t.TempDir()
	writeLexicon(t, dir, "a.yaml", `roots:
  q-t-l:
    semantic_field: first
    examples: []
`)
	// Directory entries come back sorted, so b.yaml merges after a.yaml.
	writeLexicon(t, dir, "b.yaml", `roots:
  q-t-l:
    semantic_field: second
    examples: []
`)

	lex, err := LoadLexiconDir(dir)
	require.NoError(t, err)
	entry, ok := lex.Lookup("q-t-l")
	require.True(t, ok)
	assert.Equal(t, "second", entry.SemanticField)
}

func TestLexiconMerge(t *testing.T) {
	var lex Lexicon
	lex.Merge(nil)
	assert.Empty(t, lex.Roots)

	lex.Merge(BuiltinArabic())
	lex.Merge(BuiltinHebrew())
	assert.Len(t, lex.Roots, 2)
}

func TestBuiltinLexicons(t *testing.T) {
	arabic := BuiltinArabic()
	entry, ok := arabic.Lookup("ك-ت-ب")
	require.True(t, ok)
	assert.Equal(t, "writing", entry.SemanticField)
	assert.Len(t, entry.Examples, 7)
	assert.Equal(t, 0, entry.Examples[0].Degree, "base verb is the bare root")

	hebrew := BuiltinHebrew()
	entry, ok = hebrew.Lookup("מ-ל-ך")
	require.True(t, ok)
	assert.Equal(t, "kingship", entry.SemanticField)
	assert.Len(t, entry.Examples, 5)
}
