package morphospace

import (
	"encoding/json"
	"fmt"
)

// ---- JSON document types ------------------------------------------------

type widthJSON struct {
	Root                string   `json:"root"`
	Prefixes            []string `json:"prefixes,omitempty"`
	Suffixes            []string `json:"suffixes,omitempty"`
	Pattern             string   `json:"pattern,omitempty"`
	DerivationDegree    int      `json:"derivation_degree"`
	SyntagmaticContext  string   `json:"syntagmatic_context,omitempty"`
	PossibleDerivations []string `json:"possible_derivations,omitempty"`
}

type layerJSON struct {
	Level int `json:"level"`
	// LevelName is written for readers of the document; it is derived
	// from Level and ignored when reading.
	LevelName string `json:"level_name,omitempty"`
	Meaning   string `json:"meaning"`
	Tradition string `json:"tradition,omitempty"`
	Source    string `json:"source,omitempty"`
}

type depthJSON struct {
	CurrentLevel  int         `json:"current_level"`
	SemanticField string      `json:"semantic_field,omitempty"`
	PolysemyType  string      `json:"polysemy_type,omitempty"`
	Levels        []layerJSON `json:"levels,omitempty"`
}

type diacriticJSON struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Function string `json:"function,omitempty"`
}

type heightJSON struct {
	BaseForm                 string          `json:"base_form,omitempty"`
	ConfigurationID          int             `json:"configuration_id"`
	Vowels                   []string        `json:"vowels,omitempty"`
	Cantillation             []string        `json:"cantillation,omitempty"`
	Diacritics               []diacriticJSON `json:"diacritics,omitempty"`
	AlternativeVocalizations []string        `json:"alternative_vocalizations,omitempty"`
}

type morphemeJSON struct {
	Form     string `json:"form"`
	Root     string `json:"root"`
	Language string `json:"language,omitempty"`
	Gloss    string `json:"gloss,omitempty"`
	// Coordinates is written for readers of the document; it is derived
	// from the three dimensions and ignored when reading.
	Coordinates []int                `json:"coordinates,omitempty"`
	Width       widthJSON            `json:"width"`
	Depth       depthJSON            `json:"depth"`
	Height      heightJSON           `json:"height"`
	Metadata    map[string]MetaValue `json:"metadata,omitempty"`
}

// ---- encoding -----------------------------------------------------------

// MarshalJSON serializes the morpheme with its derived coordinates
// included, so documents can be read without recomputing positions.
func (m Morpheme) MarshalJSON() ([]byte, error) {
	c := m.Coordinates()
	doc := morphemeJSON{
		Form:        m.Form,
		Root:        m.Root,
		Language:    m.Language.Code(),
		Gloss:       m.Gloss,
		Coordinates: []int{c.X, c.Y, c.Z},
		Width: widthJSON{
			Root:                m.X.Root,
			Prefixes:            m.X.Prefixes,
			Suffixes:            m.X.Suffixes,
			Pattern:             m.X.Pattern,
			DerivationDegree:    m.X.DerivationDegree,
			SyntagmaticContext:  m.X.SyntagmaticContext,
			PossibleDerivations: m.X.PossibleDerivations,
		},
		Depth: depthJSON{
			CurrentLevel:  int(m.Y.CurrentLevel),
			SemanticField: m.Y.SemanticField,
			PolysemyType:  m.Y.PolysemyType,
		},
		Height: heightJSON{
			BaseForm:                 m.Z.BaseForm,
			ConfigurationID:          m.Z.ConfigurationID,
			Vowels:                   m.Z.Vowels,
			Cantillation:             m.Z.Cantillation,
			AlternativeVocalizations: m.Z.AlternativeVocalizations,
		},
		Metadata: m.Metadata,
	}
	for _, layer := range m.Y.Layers {
		doc.Depth.Levels = append(doc.Depth.Levels, layerJSON{
			Level:     int(layer.Level),
			LevelName: layer.Level.String(),
			Meaning:   layer.Meaning,
			Tradition: layer.Tradition,
			Source:    layer.Source,
		})
	}
	for _, d := range m.Z.Diacritics {
		doc.Height.Diacritics = append(doc.Height.Diacritics, diacriticJSON{
			Symbol:   d.Symbol,
			Name:     d.Name,
			Position: d.Position,
			Function: d.Function,
		})
	}
	return json.Marshal(doc)
}

// UnmarshalJSON restores a morpheme from its document form. The stored
// coordinates are ignored in favor of the dimension fields, so a
// morpheme always round-trips to identical coordinates. Unknown
// language codes and out-of-range semantic levels are rejected.
func (m *Morpheme) UnmarshalJSON(data []byte) error {
	var doc morphemeJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode morpheme: %w", err)
	}

	lang, err := ParseLanguage(doc.Language)
	if err != nil {
		return fmt.Errorf("decode morpheme %q: %w", doc.Form, err)
	}

	currentLevel := SemanticLevel(doc.Depth.CurrentLevel)
	if doc.Depth.CurrentLevel == 0 {
		currentLevel = LevelLiteral
	}
	if !currentLevel.Valid() {
		return fmt.Errorf("decode morpheme %q, current level %d: %w",
			doc.Form, doc.Depth.CurrentLevel, ErrInvalidLevel)
	}

	out := Morpheme{
		Form:     doc.Form,
		Root:     doc.Root,
		Language: lang,
		Gloss:    doc.Gloss,
		X: Width{
			Root:                doc.Width.Root,
			Prefixes:            doc.Width.Prefixes,
			Suffixes:            doc.Width.Suffixes,
			Pattern:             doc.Width.Pattern,
			DerivationDegree:    doc.Width.DerivationDegree,
			SyntagmaticContext:  doc.Width.SyntagmaticContext,
			PossibleDerivations: doc.Width.PossibleDerivations,
		},
		Y: Depth{
			CurrentLevel:  currentLevel,
			SemanticField: doc.Depth.SemanticField,
			PolysemyType:  doc.Depth.PolysemyType,
		},
		Z: Height{
			BaseForm:                 doc.Height.BaseForm,
			ConfigurationID:          doc.Height.ConfigurationID,
			Vowels:                   doc.Height.Vowels,
			Cantillation:             doc.Height.Cantillation,
			AlternativeVocalizations: doc.Height.AlternativeVocalizations,
		},
		Metadata: doc.Metadata,
	}

	for _, layer := range doc.Depth.Levels {
		level := SemanticLevel(layer.Level)
		if !level.Valid() {
			return fmt.Errorf("decode morpheme %q, layer level %d: %w",
				doc.Form, layer.Level, ErrInvalidLevel)
		}
		out.Y.Layers = append(out.Y.Layers, SemanticLayer{
			Level:     level,
			Meaning:   layer.Meaning,
			Tradition: layer.Tradition,
			Source:    layer.Source,
		})
	}
	for _, d := range doc.Height.Diacritics {
		out.Z.Diacritics = append(out.Z.Diacritics, Diacritic{
			Symbol:   d.Symbol,
			Name:     d.Name,
			Position: d.Position,
			Function: d.Function,
		})
	}

	*m = out
	return nil
}
