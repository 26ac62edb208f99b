package orthtree

import (
	"fmt"

	"github.com/npillmayer/orthtree/geom"
)

// Check validates the structural invariants of the tree: every stored box
// lies within its node's area, subtree population counters agree with the
// stored values, no value is stored twice (exclusive mode), and the flat
// registry mirrors the node structure exactly.
//
// This checker is intentionally strict and meant for tests; it walks the
// whole tree.
func (t *Tree[V, T]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	gathered := make(map[V]geom.Box[T])
	if _, err := t.checkNode(t.root, gathered); err != nil {
		return err
	}
	if !t.par.shared && t.root.count != len(t.values) {
		return fmt.Errorf("%w: root count %d, registry holds %d values",
			ErrCorrupted, t.root.count, len(t.values))
	}
	if len(gathered) != len(t.values) {
		return fmt.Errorf("%w: node structure stores %d values, registry %d",
			ErrCorrupted, len(gathered), len(t.values))
	}
	for v, b := range t.values {
		stored, ok := gathered[v]
		if !ok {
			return fmt.Errorf("%w: registered value %v not stored in any node", ErrCorrupted, v)
		}
		if !stored.Equal(b) {
			return fmt.Errorf("%w: value %v stored with %v, registered with %v",
				ErrCorrupted, v, stored, b)
		}
	}
	return nil
}

func (t *Tree[V, T]) checkNode(n *node[V, T], gathered map[V]geom.Box[T]) (int, error) {
	if n.area.Dim() != t.par.dim {
		return 0, fmt.Errorf("%w: node area %v has wrong dimension count", ErrCorrupted, n.area)
	}
	total := len(n.bucket)
	for v, b := range n.bucket {
		within := n.area.Contain(b)
		if t.par.shared {
			within = n.area.Intersect(b)
		}
		if !within {
			return 0, fmt.Errorf("%w: value %v stored outside node area %v", ErrCorrupted, v, n.area)
		}
		if prev, dup := gathered[v]; dup {
			if !t.par.shared {
				return 0, fmt.Errorf("%w: value %v stored more than once", ErrCorrupted, v)
			}
			if !prev.Equal(b) {
				return 0, fmt.Errorf("%w: shared copies of %v disagree on box", ErrCorrupted, v)
			}
		} else {
			gathered[v] = b
		}
	}
	if n.sub != nil {
		var err error
		n.sub.eachNode(func(child *node[V, T]) {
			if err != nil {
				return
			}
			var stored int
			stored, err = t.checkNode(child, gathered)
			total += stored
		})
		if err != nil {
			return 0, err
		}
	}
	// In shared mode dual placement makes child counters exceed the number
	// of routed insertions; the counter check only holds exclusively.
	if !t.par.shared && n.count != total {
		return 0, fmt.Errorf("%w: node %v counts %d values, stores %d",
			ErrCorrupted, n.area, n.count, total)
	}
	return total, nil
}
