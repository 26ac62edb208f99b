package orthtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/orthtree/geom"
)

// Tree is an adaptive spatial index over axis-aligned boxes.
//
// V is the value type stored in the tree, T the coordinate type. Next to
// the node structure the tree keeps a flat registry of every stored value
// and its box, giving O(1) membership tests and lookups without a tree
// walk. The registry and the node structure are kept consistent by every
// mutating operation.
//
// Trees are not safe for concurrent use.
type Tree[V comparable, T geom.Float] struct {
	par    params
	root   *node[V, T]
	values map[V]geom.Box[T]
}

// New creates a tree covering the given area, with a validated
// configuration. The area's dimension count must match cfg.Dim.
func New[V comparable, F geom.Float](area geom.Box[F], cfg Config) (*Tree[V, F], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if area.Dim() != cfg.Dim {
		return nil, fmt.Errorf("%w: area has %d dimensions, config says %d",
			ErrInvalidConfig, area.Dim(), cfg.Dim)
	}
	t := &Tree[V, F]{
		par: params{
			dim:        cfg.Dim,
			groupCount: cfg.GroupCount,
			shared:     cfg.SharedValues,
			checks:     !cfg.DisableChecks,
		},
		values: make(map[V]geom.Box[F]),
	}
	t.root = newNode[V, F](&t.par, area.Clone(), 1)
	T().Debugf("orthtree: new %d-dimensional tree over %v", cfg.Dim, area)
	return t, nil
}

// Area returns the region the tree covers.
func (t *Tree[V, T]) Area() geom.Box[T] {
	return t.root.area
}

// Len returns the number of stored values.
func (t *Tree[V, T]) Len() int {
	return len(t.values)
}

// Contains reports whether val is stored in the tree.
func (t *Tree[V, T]) Contains(val V) bool {
	_, ok := t.values[val]
	return ok
}

// GetBox returns the box val was stored with. Callers must not modify the
// returned box's corners.
func (t *Tree[V, T]) GetBox(val V) (geom.Box[T], error) {
	box, ok := t.values[val]
	if !ok {
		return geom.Box[T]{}, fmt.Errorf("%w: %v", ErrNoSuchValue, val)
	}
	return box, nil
}

// Values iterates over all stored values and their boxes, in no particular
// order.
func (t *Tree[V, T]) Values() iter.Seq2[V, geom.Box[T]] {
	return func(yield func(V, geom.Box[T]) bool) {
		for v, b := range t.values {
			if !yield(v, b) {
				return
			}
		}
	}
}

// Add stores val with its bounding box. With checks enabled, Add rejects
// values already stored and boxes not contained in the tree's area.
func (t *Tree[V, T]) Add(val V, box geom.Box[T]) error {
	if t.par.checks {
		if box.Dim() != t.par.dim {
			return fmt.Errorf("%w: box has %d dimensions, tree has %d",
				geom.ErrDimensionMismatch, box.Dim(), t.par.dim)
		}
		if !t.root.area.Contain(box) {
			return fmt.Errorf("%w: %v not in %v", ErrOutOfArea, box, t.root.area)
		}
		if _, ok := t.values[val]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateValue, val)
		}
	}
	box = box.Clone()
	t.root.add(val, box)
	t.values[val] = box
	return nil
}

// Del removes val from the tree.
func (t *Tree[V, T]) Del(val V) error {
	box, ok := t.values[val]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchValue, val)
	}
	t.root.del(val, box)
	delete(t.values, val)
	return nil
}

// Change replaces the box stored for val. The value is deleted and
// re-inserted; there is no incremental relocation.
func (t *Tree[V, T]) Change(val V, box geom.Box[T]) error {
	if t.par.checks {
		if box.Dim() != t.par.dim {
			return fmt.Errorf("%w: box has %d dimensions, tree has %d",
				geom.ErrDimensionMismatch, box.Dim(), t.par.dim)
		}
		if !t.root.area.Contain(box) {
			return fmt.Errorf("%w: %v not in %v", ErrOutOfArea, box, t.root.area)
		}
		if _, ok := t.values[val]; !ok {
			return fmt.Errorf("%w: %v", ErrNoSuchValue, val)
		}
	}
	if err := t.Del(val); err != nil {
		return err
	}
	return t.Add(val, box)
}

// Clear removes all values. The tree keeps its area and configuration and
// accepts further insertions like a freshly constructed tree.
func (t *Tree[V, T]) Clear() {
	t.root.clear()
	clear(t.values)
}

// FindIntersected returns all intersecting pairs of stored values. Each
// unordered pair is reported exactly once; pair order and element order
// within a pair are unspecified.
func (t *Tree[V, T]) FindIntersected() [][2]V {
	var pairs [][2]V
	t.root.findPairs(&pairs)
	if !t.par.shared {
		return pairs
	}
	// Shared placement can discover one pair in several leaves.
	seen := make(map[[2]V]struct{}, len(pairs))
	deduped := pairs[:0]
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		if _, ok := seen[[2]V{p[1], p[0]}]; ok {
			continue
		}
		seen[p] = struct{}{}
		deduped = append(deduped, p)
	}
	return deduped
}

// FindIntersectedBy returns all values whose stored box intersects the
// query box, in no particular order.
func (t *Tree[V, T]) FindIntersectedBy(box geom.Box[T]) []V {
	hits := make(map[V]struct{})
	t.root.findBox(box, hits)
	res := make([]V, 0, len(hits))
	for v := range hits {
		res = append(res, v)
	}
	return res
}

// FindIntersectedWith returns all values whose stored box intersects the
// box stored for val, excluding val itself.
func (t *Tree[V, T]) FindIntersectedWith(val V) ([]V, error) {
	box, ok := t.values[val]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchValue, val)
	}
	hits := make(map[V]struct{})
	t.root.findBox(box, hits)
	if t.par.checks {
		_, self := hits[val]
		assert(self, "orthtree find: stored value does not intersect itself")
	}
	delete(hits, val)
	res := make([]V, 0, len(hits))
	for v := range hits {
		res = append(res, v)
	}
	return res, nil
}

// TraverseDeep walks the node structure depth-first in pre-order: each
// node's area and level first, then its bucket entries, then its
// subdivision. Intended for diagnostics and visualization; the callbacks
// must not mutate the tree.
func (t *Tree[V, T]) TraverseDeep(onArea func(area geom.Box[T], level uint),
	onValue func(box geom.Box[T], val V, level uint)) {
	t.root.traverse(onArea, onValue)
}
