package morphospace

import (
	"fmt"
	"math"
)

// Coordinates is a position in morphemic space: derivation degree on X,
// semantic level on Y, vocalic configuration on Z.
type Coordinates struct {
	X int
	Y int
	Z int
}

// DistanceTo returns the Euclidean distance between c and other.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	dz := float64(c.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String formats the coordinates as "(x, y, z)".
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Morpheme is a morpheme located in three-dimensional space.
// Its coordinates derive from the Width, Depth, and Height dimensions
// and stay fixed for as long as the value itself is unchanged; spaces
// store and return copies so that stored coordinates cannot drift.
type Morpheme struct {
	// Form is the surface form, with vocalization when available.
	Form string
	// Root is the consonantal root or radical.
	Root string
	// Language is the language of the morpheme.
	Language Language
	// Gloss is a translation or gloss.
	Gloss string
	// X is the combinatorial-derivational dimension.
	X Width
	// Y is the hermeneutic-semantic dimension.
	Y Depth
	// Z is the suprasegmental-graphical dimension.
	Z Height
	// Metadata holds additional scalar-valued annotations.
	Metadata map[string]MetaValue
}

// NewMorpheme returns a morpheme with the given form, root, and
// language, at the literal semantic level and zero derivation.
func NewMorpheme(form, root string, lang Language) Morpheme {
	return Morpheme{
		Form:     form,
		Root:     root,
		Language: lang,
		Y:        Depth{CurrentLevel: LevelLiteral},
	}
}

// Coordinates returns the (x, y, z) position of the morpheme.
func (m Morpheme) Coordinates() Coordinates {
	return Coordinates{X: m.X.Position(), Y: m.Y.Level(), Z: m.Z.Configuration()}
}

// Validate checks that the morpheme's semantic levels are within range.
func (m Morpheme) Validate() error {
	if !m.Y.CurrentLevel.Valid() {
		return fmt.Errorf("current level %d: %w", int(m.Y.CurrentLevel), ErrInvalidLevel)
	}
	for _, layer := range m.Y.Layers {
		if !layer.Level.Valid() {
			return fmt.Errorf("layer level %d: %w", int(layer.Level), ErrInvalidLevel)
		}
	}
	return nil
}

// DistanceTo returns the Euclidean distance to another morpheme.
// The distance is symmetric and zero exactly when the coordinates are
// equal. Morphemes of different languages are comparable only when
// their morphological types are commensurable.
func (m Morpheme) DistanceTo(other Morpheme) (float64, error) {
	if !Commensurable(m.Language, other.Language) {
		return 0, fmt.Errorf("distance %s to %s: %w", m.Language, other.Language, ErrIncommensurable)
	}
	return m.Coordinates().DistanceTo(other.Coordinates()), nil
}

// TranslateAlongX derives a new morpheme by affixation. Empty affixes
// are skipped; each attached affix raises the derivation degree by one.
// The receiver is unchanged.
func (m Morpheme) TranslateAlongX(prefix, suffix string) Morpheme {
	out := m.Clone()
	if out.X.Root == "" {
		out.X.Root = m.Root
	}
	if prefix != "" {
		out.X.AddPrefix(prefix)
	}
	if suffix != "" {
		out.X.AddSuffix(suffix)
	}
	out.Form = out.X.FullForm()
	return out
}

// TranslateAlongY returns a copy of the morpheme focused on a different
// semantic level. Levels outside 1–4 are rejected.
func (m Morpheme) TranslateAlongY(level SemanticLevel) (Morpheme, error) {
	if !level.Valid() {
		return Morpheme{}, fmt.Errorf("translate to level %d: %w", int(level), ErrInvalidLevel)
	}
	out := m.Clone()
	out.Y.CurrentLevel = level
	return out, nil
}

// TranslateAlongZ returns a revocalized copy of the morpheme. The old
// vocalization marks are discarded; the base form is kept, falling back
// to the surface form when no base form was recorded.
func (m Morpheme) TranslateAlongZ(vocalization string, configID int) Morpheme {
	out := m.Clone()
	base := m.Z.BaseForm
	if base == "" {
		base = m.Form
	}
	out.Z = Height{BaseForm: base, ConfigurationID: configID}
	out.Form = vocalization
	return out
}

// Clone returns a deep copy of the morpheme.
func (m Morpheme) Clone() Morpheme {
	out := m
	out.X = m.X.clone()
	out.Y = m.Y.clone()
	out.Z = m.Z.clone()
	out.Metadata = cloneMetadata(m.Metadata)
	return out
}

// Equal reports whether m and other are equal field by field.
// Nil and empty slices and maps are considered equal.
func (m Morpheme) Equal(other Morpheme) bool {
	if m.Form != other.Form || m.Root != other.Root ||
		m.Language != other.Language || m.Gloss != other.Gloss {
		return false
	}
	return m.X.equal(other.X) && m.Y.equal(other.Y) && m.Z.equal(other.Z) &&
		metadataEqual(m.Metadata, other.Metadata)
}

// String formats the morpheme with its form, root, and coordinates.
func (m Morpheme) String() string {
	return fmt.Sprintf("Morpheme(form=%q, root=%q, coords=%s)", m.Form, m.Root, m.Coordinates())
}

// SemiticParams collects the fields of a Semitic morpheme for
// NewSemiticMorpheme.
type SemiticParams struct {
	// Form is the vocalized surface form.
	Form string
	// Root is the consonantal root, typically dash-separated.
	Root string
	// Language is the language of the morpheme.
	Language Language
	// Gloss is the translation.
	Gloss string
	// Pattern is the derivational pattern (wazn / mishqal).
	Pattern string
	// DerivationDegree counts derivation steps from the root.
	DerivationDegree int
	// SemanticField is the shared semantic field.
	SemanticField string
	// Layers holds the semantic layers, in order.
	Layers []SemanticLayer
	// ConfigurationID identifies the vocalic configuration.
	ConfigurationID int
	// Vowels lists the vowels of the configuration.
	Vowels []string
}

// NewSemiticMorpheme builds a morpheme for a consonantal-root language
// from its pattern, semantic layers, and vocalic configuration.
func NewSemiticMorpheme(p SemiticParams) (Morpheme, error) {
	for _, layer := range p.Layers {
		if !layer.Level.Valid() {
			return Morpheme{}, fmt.Errorf("semitic morpheme %q, layer level %d: %w",
				p.Form, int(layer.Level), ErrInvalidLevel)
		}
	}
	return Morpheme{
		Form:     p.Form,
		Root:     p.Root,
		Language: p.Language,
		Gloss:    p.Gloss,
		X: Width{
			Root:             p.Root,
			Pattern:          p.Pattern,
			DerivationDegree: p.DerivationDegree,
		},
		Y: Depth{
			Layers:        append([]SemanticLayer(nil), p.Layers...),
			CurrentLevel:  LevelLiteral,
			SemanticField: p.SemanticField,
		},
		Z: Height{
			BaseForm:        p.Root,
			ConfigurationID: p.ConfigurationID,
			Vowels:          cloneStrings(p.Vowels),
		},
	}, nil
}
