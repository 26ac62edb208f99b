package orthtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/orthtree/geom"
)

// node is one region of the adaptive subdivision. It owns a bucket of
// directly-stored values and, once split, a bisection covering its area.
// Area and level are fixed at creation; bucket, subdivision and the subtree
// population count mutate with insertions and deletions.
//
// Placement invariant (exclusive mode): a value lives in exactly one bucket
// of the whole tree — either here or in exactly one descendant leaf. Values
// that straddle an inner boundary stay in this node's bucket even when the
// node is split.
type node[V comparable, T geom.Float] struct {
	par    *params
	area   geom.Box[T]
	level  uint
	bucket map[V]geom.Box[T]
	sub    *bisection[V, T] // nil while the node is a leaf
	count  int              // values stored in this node and all descendants
}

func newNode[V comparable, T geom.Float](par *params, area geom.Box[T], level uint) *node[V, T] {
	return &node[V, T]{
		par:    par,
		area:   area,
		level:  level,
		bucket: make(map[V]geom.Box[T]),
	}
}

// canFallDeeper decides whether a box is eligible for placement below this
// node. Exclusive mode requires the box to fit wholly inside one orthant;
// shared mode only bars boxes so large that they cover an orthant of the
// node's area themselves.
func (n *node[V, T]) canFallDeeper(box geom.Box[T]) bool {
	if n.par.shared {
		return !box.ContainOrthant(n.area)
	}
	return n.area.ContainInOrthant(box)
}

func (n *node[V, T]) add(val V, box geom.Box[T]) {
	if n.par.checks {
		if n.par.shared {
			assert(n.area.Intersect(box), "orthtree node add: box out of area")
		} else {
			assert(n.area.ContainStrict(box), "orthtree node add: box out of area")
		}
	}
	if !n.canFallDeeper(box) || (len(n.bucket) < n.par.groupCount && n.sub == nil) {
		n.bucket[val] = box
	} else {
		if n.sub == nil {
			n.split()
		}
		n.sub.addTo(val, box, n.area)
	}
	n.count++
}

// split creates the subdivision and migrates every bucket entry that fits
// one orthant; straddlers remain in the bucket.
func (n *node[V, F]) split() {
	T().Debugf("orthtree: splitting node %v at level %d", n.area, n.level)
	n.sub = newBisection[V, F](n.par, n.area, n.level+1, n.par.dim-1)
	for v, b := range n.bucket {
		if n.canFallDeeper(b) {
			n.sub.addTo(v, b, n.area)
			delete(n.bucket, v)
		}
	}
}

func (n *node[V, T]) del(val V, box geom.Box[T]) {
	n.count--
	if n.count <= n.par.groupCount {
		if n.sub != nil {
			n.collapse()
		}
		delete(n.bucket, val)
		if n.par.checks {
			assert(len(n.bucket) <= n.par.groupCount, "orthtree node del: bucket overflow after collapse")
		}
	} else {
		if _, ok := n.bucket[val]; ok {
			delete(n.bucket, val)
		} else {
			if n.par.checks {
				assert(n.sub != nil, "orthtree node del: value not stored in subtree")
			}
			n.sub.delFrom(val, box, n.area)
		}
	}
}

// collapse pulls all descendant values back into this node's bucket and
// discards the subdivision.
func (n *node[V, F]) collapse() {
	T().Debugf("orthtree: collapsing node %v at level %d", n.area, n.level)
	n.sub.gatherAll(n.bucket)
	n.sub = nil
}

func (n *node[V, T]) gatherAll(into map[V]geom.Box[T]) {
	if n.sub != nil {
		n.sub.gatherAll(into)
	}
	for v, b := range n.bucket {
		if n.par.checks && !n.par.shared {
			_, dup := into[v]
			assert(!dup, "orthtree gather: doubled value in subtree")
		}
		into[v] = b
	}
}

// findPairs appends every intersecting pair within this subtree: pairwise
// among the bucket, each bucket value against the subdivision, then the
// subdivision on its own. Cross-child pairs need no test in exclusive mode,
// children cover disjoint half-spaces.
func (n *node[V, T]) findPairs(pairs *[][2]V) {
	vals := make([]V, 0, len(n.bucket))
	for v := range n.bucket {
		vals = append(vals, v)
	}
	for i, v1 := range vals {
		box1 := n.bucket[v1]
		for _, v2 := range vals[i+1:] {
			if box1.Intersect(n.bucket[v2]) {
				*pairs = append(*pairs, [2]V{v1, v2})
			}
		}
		if n.sub != nil {
			hits := make(map[V]struct{})
			n.sub.findBox(box1, hits)
			for v2 := range hits {
				*pairs = append(*pairs, [2]V{v1, v2})
			}
		}
	}
	if n.sub != nil {
		n.sub.findPairs(pairs)
	}
}

func (n *node[V, T]) findBox(box geom.Box[T], hits map[V]struct{}) {
	for v, b := range n.bucket {
		if box.Intersect(b) {
			hits[v] = struct{}{}
		}
	}
	if n.sub != nil {
		n.sub.findBox(box, hits)
	}
}

func (n *node[V, T]) traverse(onArea func(geom.Box[T], uint), onValue func(geom.Box[T], V, uint)) {
	onArea(n.area, n.level)
	for v, b := range n.bucket {
		onValue(b, v, n.level)
	}
	if n.sub != nil {
		n.sub.traverse(onArea, onValue)
	}
}

func (n *node[V, T]) clear() {
	n.bucket = make(map[V]geom.Box[T])
	n.sub = nil
	n.count = 0
}

// --- section interface adapters --------------------------------------------

// The bisection routes through the section interface; a node terminates the
// per-axis recursion and ignores the routing area.

func (n *node[V, T]) addTo(val V, box geom.Box[T], _ geom.Box[T]) { n.add(val, box) }

func (n *node[V, T]) delFrom(val V, box geom.Box[T], _ geom.Box[T]) { n.del(val, box) }

func (n *node[V, T]) eachNode(f func(*node[V, T])) { f(n) }
