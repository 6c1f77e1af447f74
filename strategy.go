package morphospace

import "fmt"

// Strategy selects the spatial index backing a space. The zero value is
// the linear scan, which needs no setup and wins on small spaces; the
// k-d tree pays off once range and nearest-neighbor queries dominate.
type Strategy int

const (
	// StrategyLinear scans every member on each spatial query.
	StrategyLinear Strategy = iota
	// StrategyKDTree keeps members in a 3-d tree and prunes subtrees
	// that cannot contain a match.
	StrategyKDTree
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyKDTree:
		return "kdtree"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "linear":
		return StrategyLinear, nil
	case "kdtree", "kd-tree":
		return StrategyKDTree, nil
	}
	return StrategyLinear, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// neighborSeq pairs a member's insertion sequence with its distance to
// a query point. Both index implementations order results by
// (distance, sequence) so equidistant neighbors resolve the same way
// everywhere.
type neighborSeq struct {
	seq  int
	dist float64
}

// coordIndex answers spatial queries over member coordinates. Members
// are identified by their insertion sequence; the space maps sequences
// back to morphemes. Implementations never remove points.
type coordIndex interface {
	// insert registers a member's coordinates under its sequence.
	insert(p Coordinates, seq int)
	// at returns the sequences of members at exactly p, ascending.
	at(p Coordinates) []int
	// within returns the sequences of members whose Euclidean distance
	// to center is at most radius, ascending.
	within(center Coordinates, radius float64) []int
	// nearest returns up to k members closest to from, ordered by
	// (distance, sequence). Members for which skip returns true are
	// not considered. A nil skip considers everything.
	nearest(from Coordinates, k int, skip func(seq int) bool) []neighborSeq
}

// newCoordIndex builds the index for a strategy.
func newCoordIndex(s Strategy) (coordIndex, error) {
	switch s {
	case StrategyLinear:
		return &linearIndex{}, nil
	case StrategyKDTree:
		return &kdTree{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
}
