package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Lexicon holds attested derivations per root. Example order matters:
// it assigns the vocalic configuration ids, so a lexicon edit that
// reorders examples renumbers the Z axis of every space built from it.
type Lexicon struct {
	Roots map[string]RootEntry `yaml:"roots"`
}

// RootEntry describes one root and its attested derivations.
type RootEntry struct {
	// SemanticField is the field shared by the root's derivations.
	SemanticField string `yaml:"semantic_field"`
	// Examples lists the attested forms, in configuration-id order.
	Examples []Example `yaml:"examples"`
}

// Example is one attested derivation of a root.
type Example struct {
	// Form is the fully vocalized surface form.
	Form string `yaml:"form"`
	// Gloss is the translation.
	Gloss string `yaml:"gloss"`
	// Pattern is the derivational pattern the form instantiates.
	Pattern string `yaml:"pattern,omitempty"`
	// Degree counts derivation steps from the bare root.
	Degree int `yaml:"degree"`
	// Layers holds semantic layers beyond the plain gloss.
	Layers []LayerEntry `yaml:"layers,omitempty"`
}

// LayerEntry is a semantic layer of an example.
type LayerEntry struct {
	Level   int    `yaml:"level"`
	Meaning string `yaml:"meaning"`
}

// LoadLexicon reads one YAML lexicon file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", path, err)
	}
	if lex.Roots == nil {
		lex.Roots = make(map[string]RootEntry)
	}
	return &lex, nil
}

// LoadLexiconDir reads every .yaml/.yml file in dir and merges them
// into one lexicon. Later files win on duplicate roots.
func LoadLexiconDir(dir string) (*Lexicon, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load lexicon dir: %w", err)
	}
	merged := &Lexicon{Roots: make(map[string]RootEntry)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		lex, err := LoadLexicon(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		merged.Merge(lex)
	}
	return merged, nil
}

// Merge copies other's roots into l, overwriting duplicates.
func (l *Lexicon) Merge(other *Lexicon) {
	if other == nil {
		return
	}
	if l.Roots == nil {
		l.Roots = make(map[string]RootEntry)
	}
	for root, entry := range other.Roots {
		l.Roots[root] = entry
	}
}

// Lookup returns the entry for a root.
func (l *Lexicon) Lookup(root string) (RootEntry, bool) {
	entry, ok := l.Roots[root]
	return entry, ok
}

// sortedRoots returns the lexicon's root keys in a stable order.
func (l *Lexicon) sortedRoots() []string {
	keys := make([]string, 0, len(l.Roots))
	for k := range l.Roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuiltinArabic returns the built-in Arabic lexicon, seeded with the
// K-T-B writing family.
func BuiltinArabic() *Lexicon {
	return &Lexicon{Roots: map[string]RootEntry{
		"ك-ت-ب": {
			SemanticField: "writing",
			Examples: []Example{
				{
					Form:    "كَتَبَ",
					Gloss:   "he wrote",
					Pattern: "فَعَلَ",
					Degree:  0,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "to write / he wrote"},
					},
				},
				{
					Form:    "كَاتِب",
					Gloss:   "writer",
					Pattern: "فَاعِل",
					Degree:  1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "writer / scribe"},
					},
				},
				{
					Form:    "كِتَاب",
					Gloss:   "book",
					Pattern: "فِعَال",
					Degree:  1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "book"},
						{Level: 2, Meaning: "scripture / the Book"},
					},
				},
				{
					Form:    "مَكْتُوب",
					Gloss:   "written",
					Pattern: "مَفْعُول",
					Degree:  1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "written"},
						{Level: 2, Meaning: "letter / missive"},
						{Level: 4, Meaning: "destiny / what is decreed"},
					},
				},
				{
					Form:    "مَكْتَبَة",
					Gloss:   "library",
					Pattern: "مَفْعَلَة",
					Degree:  2,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "library / bookstore"},
					},
				},
				{
					Form:    "كُتُب",
					Gloss:   "books",
					Pattern: "فُعُل",
					Degree:  1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "books (broken plural)"},
					},
				},
				{
					Form:    "كِتَابَة",
					Gloss:   "writing",
					Pattern: "فِعَالَة",
					Degree:  1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "writing / the act of writing"},
					},
				},
			},
		},
	}}
}

// BuiltinHebrew returns the built-in Hebrew lexicon, seeded with the
// M-L-K kingship family.
func BuiltinHebrew() *Lexicon {
	return &Lexicon{Roots: map[string]RootEntry{
		"מ-ל-ך": {
			SemanticField: "kingship",
			Examples: []Example{
				{
					Form:   "מָלַךְ",
					Gloss:  "he reigned",
					Degree: 0,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "to reign / he reigned"},
					},
				},
				{
					Form:   "מֶלֶךְ",
					Gloss:  "king",
					Degree: 1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "king"},
						{Level: 2, Meaning: "sovereign, figuratively any master"},
					},
				},
				{
					Form:   "מַלְכָּה",
					Gloss:  "queen",
					Degree: 1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "queen"},
					},
				},
				{
					Form:   "מַלְכוּת",
					Gloss:  "kingship",
					Degree: 1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "kingship / kingdom"},
						{Level: 4, Meaning: "Malkhut, the tenth sefirah"},
					},
				},
				{
					Form:   "מַמְלָכָה",
					Gloss:  "kingdom",
					Degree: 1,
					Layers: []LayerEntry{
						{Level: 1, Meaning: "kingdom / realm"},
					},
				},
			},
		},
	}}
}
