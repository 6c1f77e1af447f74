package morphospace

import (
	"fmt"
	"strings"
)

// SemanticLevel is a depth level in the hermeneutic stratification of
// meaning, following the PaRDeS and Ẓāhir/Bāṭin traditions.
type SemanticLevel int

const (
	// LevelLiteral is the plain sense (Peshat / Ẓāhir).
	LevelLiteral SemanticLevel = 1
	// LevelAllusive is the hinted sense (Remez).
	LevelAllusive SemanticLevel = 2
	// LevelHomiletic is the expounded sense (Derash).
	LevelHomiletic SemanticLevel = 3
	// LevelMystical is the hidden sense (Sod / Bāṭin).
	LevelMystical SemanticLevel = 4
)

// Valid reports whether l is within the 1–4 range.
func (l SemanticLevel) Valid() bool {
	return l >= LevelLiteral && l <= LevelMystical
}

// String returns the lowercase name of the level.
func (l SemanticLevel) String() string {
	switch l {
	case LevelLiteral:
		return "literal"
	case LevelAllusive:
		return "allusive"
	case LevelHomiletic:
		return "homiletic"
	case LevelMystical:
		return "mystical"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// SemanticLayer is one stratum of meaning within the Depth dimension.
type SemanticLayer struct {
	// Level is the semantic level of this layer.
	Level SemanticLevel
	// Meaning is the meaning carried at this level.
	Meaning string
	// Tradition is the interpretive tradition the meaning comes from
	// (e.g. "rabbinic", "sufi").
	Tradition string
	// Source is a reference or source text.
	Source string
}

// Diacritic positions relative to the base character.
const (
	PositionAbove  = "above"
	PositionBelow  = "below"
	PositionInline = "inline"
)

// Diacritic functions.
const (
	FunctionVowel        = "vowel"
	FunctionGemination   = "gemination"
	FunctionCantillation = "cantillation"
	FunctionOther        = "other"
)

// Diacritic is a single diacritical mark in the Height dimension.
type Diacritic struct {
	// Symbol is the Unicode mark itself.
	Symbol string
	// Name is the human-readable name (e.g. "fatḥa", "hiriq").
	Name string
	// Position is where the mark sits relative to the base character.
	Position string
	// Function is the linguistic function of the mark.
	Function string
}

// Width is the combinatorial-derivational dimension (X axis): the
// morphological structure of a morpheme in terms of its root, affixes,
// and derivational pattern.
type Width struct {
	// Root is the nuclear (typically consonantal) root.
	Root string
	// Prefixes lists attached prefixes in attachment order.
	Prefixes []string
	// Suffixes lists attached suffixes in attachment order.
	Suffixes []string
	// Pattern is the derivational pattern (wazn / mishqal).
	Pattern string
	// DerivationDegree counts derivation steps away from the root.
	// It is a step count, never a positional index.
	DerivationDegree int
	// SyntagmaticContext is the phrasal context, if any.
	SyntagmaticContext string
	// PossibleDerivations lists known derivations from this root.
	PossibleDerivations []string
}

// Position returns the numeric position on the X axis, which is the
// derivation degree.
func (w Width) Position() int {
	return w.DerivationDegree
}

// FullForm reconstructs the concatenated form: prefixes, then root,
// then suffixes. For non-concatenative morphology this may differ from
// the attested surface form.
func (w Width) FullForm() string {
	var b strings.Builder
	for _, p := range w.Prefixes {
		b.WriteString(p)
	}
	b.WriteString(w.Root)
	for _, s := range w.Suffixes {
		b.WriteString(s)
	}
	return b.String()
}

// AddPrefix appends a prefix and increments the derivation degree.
func (w *Width) AddPrefix(prefix string) {
	w.Prefixes = append(w.Prefixes, prefix)
	w.DerivationDegree++
}

// AddSuffix appends a suffix and increments the derivation degree.
func (w *Width) AddSuffix(suffix string) {
	w.Suffixes = append(w.Suffixes, suffix)
	w.DerivationDegree++
}

// clone returns a deep copy of w.
func (w Width) clone() Width {
	out := w
	out.Prefixes = cloneStrings(w.Prefixes)
	out.Suffixes = cloneStrings(w.Suffixes)
	out.PossibleDerivations = cloneStrings(w.PossibleDerivations)
	return out
}

// equal compares two widths field by field.
func (w Width) equal(other Width) bool {
	return w.Root == other.Root &&
		w.Pattern == other.Pattern &&
		w.DerivationDegree == other.DerivationDegree &&
		w.SyntagmaticContext == other.SyntagmaticContext &&
		stringsEqual(w.Prefixes, other.Prefixes) &&
		stringsEqual(w.Suffixes, other.Suffixes) &&
		stringsEqual(w.PossibleDerivations, other.PossibleDerivations)
}

// Depth is the hermeneutic-semantic dimension (Y axis): the
// stratification of meaning from literal to mystical.
type Depth struct {
	// Layers holds the semantic layers in the order they were recorded.
	Layers []SemanticLayer
	// CurrentLevel is the level currently in focus (1–4).
	CurrentLevel SemanticLevel
	// SemanticField is the semantic field (e.g. "writing", "kingship").
	SemanticField string
	// PolysemyType classifies the polysemy ("regular", "irregular",
	// "homonymy").
	PolysemyType string
}

// Level returns the numeric position on the Y axis.
func (d Depth) Level() int {
	return int(d.CurrentLevel)
}

// AddLayer appends a semantic layer with the given level and meaning.
// Levels outside the 1–4 range are rejected, never clamped.
func (d *Depth) AddLayer(level SemanticLevel, meaning string) error {
	if !level.Valid() {
		return fmt.Errorf("add layer %d: %w", int(level), ErrInvalidLevel)
	}
	d.Layers = append(d.Layers, SemanticLayer{Level: level, Meaning: meaning})
	return nil
}

// Layer returns the first layer recorded at the given level.
// The second return value is false when no such layer exists; absence
// is not an error.
func (d Depth) Layer(level SemanticLevel) (SemanticLayer, bool) {
	for _, layer := range d.Layers {
		if layer.Level == level {
			return layer, true
		}
	}
	return SemanticLayer{}, false
}

// LiteralMeaning returns the meaning at the literal level, if present.
func (d Depth) LiteralMeaning() (string, bool) {
	layer, ok := d.Layer(LevelLiteral)
	return layer.Meaning, ok
}

// MysticalMeaning returns the meaning at the mystical level, if present.
func (d Depth) MysticalMeaning() (string, bool) {
	layer, ok := d.Layer(LevelMystical)
	return layer.Meaning, ok
}

// clone returns a deep copy of d.
func (d Depth) clone() Depth {
	out := d
	if d.Layers != nil {
		out.Layers = make([]SemanticLayer, len(d.Layers))
		copy(out.Layers, d.Layers)
	}
	return out
}

// equal compares two depths field by field.
func (d Depth) equal(other Depth) bool {
	if d.CurrentLevel != other.CurrentLevel ||
		d.SemanticField != other.SemanticField ||
		d.PolysemyType != other.PolysemyType ||
		len(d.Layers) != len(other.Layers) {
		return false
	}
	for i := range d.Layers {
		if d.Layers[i] != other.Layers[i] {
			return false
		}
	}
	return true
}

// Height is the suprasegmental-graphical dimension (Z axis): vowel
// points, cantillation marks, and the other vertical information of
// a morpheme.
type Height struct {
	// BaseForm is the base consonantal form, without diacritics.
	BaseForm string
	// Diacritics lists the diacritical marks in recorded order.
	Diacritics []Diacritic
	// Vowels lists the vowels in recorded order.
	Vowels []string
	// Cantillation lists cantillation marks in recorded order.
	Cantillation []string
	// ConfigurationID identifies the vocalic configuration.
	ConfigurationID int
	// AlternativeVocalizations lists other attested vocalizations.
	AlternativeVocalizations []string
}

// Configuration returns the numeric position on the Z axis.
func (h Height) Configuration() int {
	return h.ConfigurationID
}

// HasVocalization reports whether any vowels or diacritics are recorded.
func (h Height) HasVocalization() bool {
	return len(h.Diacritics) > 0 || len(h.Vowels) > 0
}

// VowelPattern returns the vowels joined with "-", in recorded order.
func (h Height) VowelPattern() string {
	return strings.Join(h.Vowels, "-")
}

// AddDiacritic appends a diacritical mark.
func (h *Height) AddDiacritic(symbol, name, position, function string) {
	h.Diacritics = append(h.Diacritics, Diacritic{
		Symbol:   symbol,
		Name:     name,
		Position: position,
		Function: function,
	})
}

// DiacriticsByPosition returns the diacritics recorded at the given
// position ("above", "below", "inline").
func (h Height) DiacriticsByPosition(position string) []Diacritic {
	var out []Diacritic
	for _, d := range h.Diacritics {
		if d.Position == position {
			out = append(out, d)
		}
	}
	return out
}

// clone returns a deep copy of h.
func (h Height) clone() Height {
	out := h
	if h.Diacritics != nil {
		out.Diacritics = make([]Diacritic, len(h.Diacritics))
		copy(out.Diacritics, h.Diacritics)
	}
	out.Vowels = cloneStrings(h.Vowels)
	out.Cantillation = cloneStrings(h.Cantillation)
	out.AlternativeVocalizations = cloneStrings(h.AlternativeVocalizations)
	return out
}

// equal compares two heights field by field.
func (h Height) equal(other Height) bool {
	if h.BaseForm != other.BaseForm ||
		h.ConfigurationID != other.ConfigurationID ||
		len(h.Diacritics) != len(other.Diacritics) {
		return false
	}
	for i := range h.Diacritics {
		if h.Diacritics[i] != other.Diacritics[i] {
			return false
		}
	}
	return stringsEqual(h.Vowels, other.Vowels) &&
		stringsEqual(h.Cantillation, other.Cantillation) &&
		stringsEqual(h.AlternativeVocalizations, other.AlternativeVocalizations)
}

// cloneStrings copies a string slice, preserving nil.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// stringsEqual compares two string slices element-wise; nil and empty
// are considered equal.
func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
