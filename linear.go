package morphospace

import "sort"

// linearIndex is the brute-force coordIndex: a flat slice scanned on
// every query. Entries stay in insertion order, so exact-match and
// range queries come out ascending by sequence for free.
type linearIndex struct {
	entries []linearEntry
}

type linearEntry struct {
	point Coordinates
	seq   int
}

func (ix *linearIndex) insert(p Coordinates, seq int) {
	ix.entries = append(ix.entries, linearEntry{point: p, seq: seq})
}

func (ix *linearIndex) at(p Coordinates) []int {
	var seqs []int
	for _, e := range ix.entries {
		if e.point == p {
			seqs = append(seqs, e.seq)
		}
	}
	return seqs
}

func (ix *linearIndex) within(center Coordinates, radius float64) []int {
	if radius < 0 {
		return nil
	}
	var seqs []int
	for _, e := range ix.entries {
		if center.DistanceTo(e.point) <= radius {
			seqs = append(seqs, e.seq)
		}
	}
	return seqs
}

func (ix *linearIndex) nearest(from Coordinates, k int, skip func(seq int) bool) []neighborSeq {
	if k <= 0 {
		return nil
	}
	candidates := make([]neighborSeq, 0, len(ix.entries))
	for _, e := range ix.entries {
		if skip != nil && skip(e.seq) {
			continue
		}
		candidates = append(candidates, neighborSeq{
			seq:  e.seq,
			dist: from.DistanceTo(e.point),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].seq < candidates[j].seq
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
