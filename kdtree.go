package morphospace

import (
	"container/heap"
	"sort"
)

// kdTree is a 3-dimensional k-d tree over member coordinates. Splitting
// cycles through the X, Y and Z axes by depth; points equal on the
// split axis go right, so exact-match lookups only ever descend one
// way. The tree is insert-only and unbalanced, which is fine for
// spaces built once and queried many times.
type kdTree struct {
	root *kdNode
}

type kdNode struct {
	point Coordinates
	seq   int
	left  *kdNode
	right *kdNode
}

func axisValue(p Coordinates, axis int) int {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	return p.Z
}

func (t *kdTree) insert(p Coordinates, seq int) {
	node := &kdNode{point: p, seq: seq}
	if t.root == nil {
		t.root = node
		return
	}
	cur, axis := t.root, 0
	for {
		if axisValue(p, axis) < axisValue(cur.point, axis) {
			if cur.left == nil {
				cur.left = node
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = node
				return
			}
			cur = cur.right
		}
		axis = (axis + 1) % 3
	}
}

func (t *kdTree) at(p Coordinates) []int {
	var seqs []int
	cur, axis := t.root, 0
	for cur != nil {
		if cur.point == p {
			seqs = append(seqs, cur.seq)
		}
		// Points sharing the split value live on the right.
		if axisValue(p, axis) < axisValue(cur.point, axis) {
			cur = cur.left
		} else {
			cur = cur.right
		}
		axis = (axis + 1) % 3
	}
	sort.Ints(seqs)
	return seqs
}

func (t *kdTree) within(center Coordinates, radius float64) []int {
	if radius < 0 {
		return nil
	}
	var seqs []int
	t.collectWithin(t.root, 0, center, radius, &seqs)
	sort.Ints(seqs)
	return seqs
}

func (t *kdTree) collectWithin(node *kdNode, axis int, center Coordinates, radius float64, seqs *[]int) {
	if node == nil {
		return
	}
	if center.DistanceTo(node.point) <= radius {
		*seqs = append(*seqs, node.seq)
	}
	delta := float64(axisValue(center, axis) - axisValue(node.point, axis))
	near, far := node.left, node.right
	if delta >= 0 {
		near, far = node.right, node.left
	}
	next := (axis + 1) % 3
	t.collectWithin(near, next, center, radius, seqs)
	// The far half-space starts |delta| away along this axis; skip it
	// when even its closest point is out of reach.
	if delta < 0 {
		delta = -delta
	}
	if delta <= radius {
		t.collectWithin(far, next, center, radius, seqs)
	}
}

func (t *kdTree) nearest(from Coordinates, k int, skip func(seq int) bool) []neighborSeq {
	if k <= 0 {
		return nil
	}
	h := &kdHeap{}
	t.collectNearest(t.root, 0, from, k, skip, h)
	out := make([]neighborSeq, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(neighborSeq)
	}
	return out
}

func (t *kdTree) collectNearest(node *kdNode, axis int, from Coordinates, k int, skip func(seq int) bool, h *kdHeap) {
	if node == nil {
		return
	}
	if skip == nil || !skip(node.seq) {
		cand := neighborSeq{seq: node.seq, dist: from.DistanceTo(node.point)}
		switch {
		case h.Len() < k:
			heap.Push(h, cand)
		case h.beats(cand):
			(*h)[0] = cand
			heap.Fix(h, 0)
		}
	}
	delta := float64(axisValue(from, axis) - axisValue(node.point, axis))
	near, far := node.left, node.right
	if delta >= 0 {
		near, far = node.right, node.left
	}
	next := (axis + 1) % 3
	t.collectNearest(near, next, from, k, skip, h)
	if delta < 0 {
		delta = -delta
	}
	// The far side can still matter while the heap is short, or while
	// its boundary is no farther than the current worst neighbor. The
	// boundary ties count too: an equidistant point with a smaller
	// sequence displaces the worst.
	if h.Len() < k || delta <= (*h)[0].dist {
		t.collectNearest(far, next, from, k, skip, h)
	}
}

// kdHeap is a bounded max-heap of neighbor candidates, worst on top.
// Worst means farthest, with the larger sequence losing ties.
type kdHeap []neighborSeq

func (h kdHeap) Len() int { return len(h) }

func (h kdHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist > h[j].dist
	}
	return h[i].seq > h[j].seq
}

func (h kdHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *kdHeap) Push(x any) { *h = append(*h, x.(neighborSeq)) }

func (h *kdHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// beats reports whether cand should replace the current worst entry.
func (h kdHeap) beats(cand neighborSeq) bool {
	worst := h[0]
	if cand.dist != worst.dist {
		return cand.dist < worst.dist
	}
	return cand.seq < worst.seq
}
