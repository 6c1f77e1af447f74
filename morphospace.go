// Package morphospace models morphemes as points in a three-axis
// space: width (X) counts derivation steps away from the root, depth
// (Y) is the semantic interpretation level from literal to mystical,
// and height (Z) identifies the vocalic configuration. Spaces support
// exact, range and nearest-neighbor queries over those coordinates,
// backed by either a linear scan or a k-d tree.
package morphospace

import (
	"fmt"
	"math"
	"sort"
)

// Default bounding extents of a space. They describe the region a
// space is expected to cover and feed documentation and density
// reporting; they are not enforced on Add.
const (
	DefaultMaxX = 10
	DefaultMaxY = 4
	DefaultMaxZ = 20
)

// Config controls how a space is built.
type Config struct {
	// Strategy selects the spatial index. Zero value is StrategyLinear.
	Strategy Strategy

	// MaxX, MaxY and MaxZ are the declared extents along each axis.
	// Zero values take the package defaults.
	MaxX int
	MaxY int
	MaxZ int
}

func (c Config) withDefaults() Config {
	if c.MaxX == 0 {
		c.MaxX = DefaultMaxX
	}
	if c.MaxY == 0 {
		c.MaxY = DefaultMaxY
	}
	if c.MaxZ == 0 {
		c.MaxZ = DefaultMaxZ
	}
	return c
}

// MorphemeSpace is a grow-only collection of morphemes indexed by
// their coordinates. Morphemes are copied on the way in and on the way
// out, so coordinates can never drift underneath the index. Members
// are never removed.
//
// A MorphemeSpace is not safe for concurrent use; callers that share
// one across goroutines must synchronize around it.
type MorphemeSpace struct {
	// members holds the stored morphemes; a member's slice position is
	// its insertion sequence, which the index uses as its identifier.
	members []Morpheme
	index   coordIndex
	cfg     Config
}

// New returns an empty space with the default configuration.
func New() *MorphemeSpace {
	s, err := NewWithConfig(Config{})
	if err != nil {
		// The zero config is always valid.
		panic(err)
	}
	return s
}

// NewWithConfig returns an empty space built per cfg. It fails only
// when cfg names an unknown strategy.
func NewWithConfig(cfg Config) (*MorphemeSpace, error) {
	cfg = cfg.withDefaults()
	ix, err := newCoordIndex(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return &MorphemeSpace{index: ix, cfg: cfg}, nil
}

// NewFromMorphemes returns a default-configured space seeded with the
// given morphemes, in order. It fails on the first invalid morpheme.
func NewFromMorphemes(morphemes ...Morpheme) (*MorphemeSpace, error) {
	s := New()
	for _, m := range morphemes {
		if err := s.Add(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Config returns the configuration the space was built with, extents
// filled in.
func (s *MorphemeSpace) Config() Config { return s.cfg }

// Len returns the number of stored morphemes, duplicates included.
func (s *MorphemeSpace) Len() int { return len(s.members) }

// Add validates m and stores a copy. Duplicates are permitted; each
// copy occupies its own insertion slot.
func (s *MorphemeSpace) Add(m Morpheme) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("add %q: %w", m.Form, err)
	}
	stored := m.Clone()
	seq := len(s.members)
	s.members = append(s.members, stored)
	s.index.insert(stored.Coordinates(), seq)
	return nil
}

// Morphemes returns copies of all members in insertion order.
func (s *MorphemeSpace) Morphemes() []Morpheme {
	return s.cloneSeqs(s.allSeqs())
}

// ByRoot returns copies of all members whose Root equals root, in
// insertion order.
func (s *MorphemeSpace) ByRoot(root string) []Morpheme {
	var out []Morpheme
	for _, m := range s.members {
		if m.Root == root {
			out = append(out, m.Clone())
		}
	}
	return out
}

// Filter returns copies of all members satisfying pred, in insertion
// order. The predicate receives its own copy and may keep or alter it
// freely.
func (s *MorphemeSpace) Filter(pred func(Morpheme) bool) []Morpheme {
	var out []Morpheme
	for _, m := range s.members {
		c := m.Clone()
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// AtCoordinates returns copies of all members sitting exactly at
// (x, y, z), in insertion order.
func (s *MorphemeSpace) AtCoordinates(x, y, z int) []Morpheme {
	return s.cloneSeqs(s.index.at(Coordinates{X: x, Y: y, Z: z}))
}

// InRange returns copies of all members within Euclidean distance
// radius of center, boundary included, in insertion order. A negative
// radius matches nothing.
func (s *MorphemeSpace) InRange(center Coordinates, radius float64) []Morpheme {
	return s.cloneSeqs(s.index.within(center, radius))
}

// InRangeByDistance returns the same members as InRange, sorted by
// ascending distance to center; equidistant members keep insertion
// order.
func (s *MorphemeSpace) InRangeByDistance(center Coordinates, radius float64) []Morpheme {
	seqs := s.index.within(center, radius)
	found := make([]neighborSeq, len(seqs))
	for i, seq := range seqs {
		found[i] = neighborSeq{
			seq:  seq,
			dist: center.DistanceTo(s.members[seq].Coordinates()),
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].seq < found[j].seq
	})
	out := make([]Morpheme, len(found))
	for i, f := range found {
		out[i] = s.members[f.seq].Clone()
	}
	return out
}

// Neighbor pairs a morpheme with its distance to a query point.
type Neighbor struct {
	Morpheme Morpheme
	Distance float64
}

// FindNearest returns up to k members closest to m's coordinates,
// ascending by distance with insertion order breaking ties. Members
// equal to m are excluded, so asking from a stored morpheme never
// returns the morpheme itself, however many copies of it were added.
func (s *MorphemeSpace) FindNearest(m Morpheme, k int) []Neighbor {
	skip := func(seq int) bool { return s.members[seq].Equal(m) }
	found := s.index.nearest(m.Coordinates(), k, skip)
	out := make([]Neighbor, len(found))
	for i, f := range found {
		out[i] = Neighbor{
			Morpheme: s.members[f.seq].Clone(),
			Distance: f.dist,
		}
	}
	return out
}

// Density returns the number of members within radius of center
// divided by the volume of that sphere. A zero radius degenerates to
// the plain count at center; a negative radius has density zero.
func (s *MorphemeSpace) Density(center Coordinates, radius float64) float64 {
	if radius < 0 {
		return 0
	}
	if radius == 0 {
		return float64(len(s.index.at(center)))
	}
	count := len(s.index.within(center, radius))
	volume := 4.0 / 3.0 * math.Pi * radius * radius * radius
	return float64(count) / volume
}

// Range is an inclusive interval along one axis.
type Range struct {
	Min int
	Max int
}

// Statistics summarizes the population of a space.
type Statistics struct {
	// Count is the number of stored morphemes, duplicates included.
	Count int

	// XRange, YRange and ZRange are the occupied intervals per axis.
	// All three are zero when the space is empty.
	XRange Range
	YRange Range
	ZRange Range

	// Languages counts members per language.
	Languages map[Language]int

	// Levels counts members per current semantic level.
	Levels map[SemanticLevel]int

	// Configurations counts members per vocalic configuration id.
	Configurations map[int]int

	// Roots counts members per root; UniqueRoots is len(Roots).
	Roots       map[string]int
	UniqueRoots int
}

// Stats walks the space once and tallies its population.
func (s *MorphemeSpace) Stats() Statistics {
	st := Statistics{
		Count:          len(s.members),
		Languages:      make(map[Language]int),
		Levels:         make(map[SemanticLevel]int),
		Configurations: make(map[int]int),
		Roots:          make(map[string]int),
	}
	for i, m := range s.members {
		c := m.Coordinates()
		if i == 0 {
			st.XRange = Range{Min: c.X, Max: c.X}
			st.YRange = Range{Min: c.Y, Max: c.Y}
			st.ZRange = Range{Min: c.Z, Max: c.Z}
		} else {
			st.XRange = st.XRange.extend(c.X)
			st.YRange = st.YRange.extend(c.Y)
			st.ZRange = st.ZRange.extend(c.Z)
		}
		st.Languages[m.Language]++
		st.Levels[m.Y.CurrentLevel]++
		st.Configurations[c.Z]++
		st.Roots[m.Root]++
	}
	st.UniqueRoots = len(st.Roots)
	return st
}

func (r Range) extend(v int) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

func (s *MorphemeSpace) allSeqs() []int {
	seqs := make([]int, len(s.members))
	for i := range seqs {
		seqs[i] = i
	}
	return seqs
}

func (s *MorphemeSpace) cloneSeqs(seqs []int) []Morpheme {
	if len(seqs) == 0 {
		return nil
	}
	out := make([]Morpheme, len(seqs))
	for i, seq := range seqs {
		out[i] = s.members[seq].Clone()
	}
	return out
}
