package morphospace

import "fmt"

// RootSpace is a MorphemeSpace scoped to one root in one language: the
// derivational family of that root. Add enforces the scope; every
// query the embedded space offers works unchanged.
type RootSpace struct {
	*MorphemeSpace

	root     string
	language Language
}

// NewRootSpace returns an empty space for the family of root in the
// given language, using the default configuration.
func NewRootSpace(root string, language Language) *RootSpace {
	return &RootSpace{
		MorphemeSpace: New(),
		root:          root,
		language:      language,
	}
}

// NewRootSpaceWithConfig is NewRootSpace with an explicit space
// configuration.
func NewRootSpaceWithConfig(root string, language Language, cfg Config) (*RootSpace, error) {
	inner, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &RootSpace{
		MorphemeSpace: inner,
		root:          root,
		language:      language,
	}, nil
}

// Root returns the root this space is scoped to.
func (s *RootSpace) Root() string { return s.root }

// Language returns the language this space is scoped to.
func (s *RootSpace) Language() Language { return s.language }

// Add stores a copy of m after checking that it belongs to this
// root's family. A morpheme with a different root or language is
// rejected.
func (s *RootSpace) Add(m Morpheme) error {
	if m.Root != s.root {
		return fmt.Errorf("add %q to root space %q: %w", m.Form, s.root, ErrRootMismatch)
	}
	if m.Language != s.language {
		return fmt.Errorf("add %q (%s) to %s root space: %w",
			m.Form, m.Language, s.language, ErrLanguageMismatch)
	}
	return s.MorphemeSpace.Add(m)
}

// ByDerivationDegree returns copies of all members at the given
// derivation degree, in insertion order.
func (s *RootSpace) ByDerivationDegree(degree int) []Morpheme {
	return s.Filter(func(m Morpheme) bool {
		return m.X.DerivationDegree == degree
	})
}

// DerivationTree groups the family by derivation degree: degree 0 is
// the bare root, degree n holds forms n affixation steps away. Members
// within a degree keep insertion order.
func (s *RootSpace) DerivationTree() map[int][]Morpheme {
	tree := make(map[int][]Morpheme)
	for _, m := range s.members {
		tree[m.X.DerivationDegree] = append(tree[m.X.DerivationDegree], m.Clone())
	}
	return tree
}
