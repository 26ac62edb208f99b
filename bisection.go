package orthtree

import (
	"github.com/npillmayer/orthtree/geom"
)

// section is one half of a bisection level: either a deeper bisection (for
// the remaining axes) or a terminal node. The routing area parameter is the
// area of the owning node; midpoints of untouched axes are identical for
// the node's area and for any of its halves, so the area can be passed down
// unchanged.
type section[V comparable, T geom.Float] interface {
	addTo(val V, box geom.Box[T], area geom.Box[T])
	delFrom(val V, box geom.Box[T], area geom.Box[T])
	gatherAll(into map[V]geom.Box[T])
	findPairs(pairs *[][2]V)
	findBox(box geom.Box[T], hits map[V]struct{})
	traverse(onArea func(geom.Box[T], uint), onValue func(geom.Box[T], V, uint))
	eachNode(f func(*node[V, T]))
}

// bisection splits a region in two halves along one axis. Recursing one
// axis at a time — axis D-1 down to axis 0 — decomposes a node's area into
// its 2^D orthants without dimension-specific code: every level below axis
// 0 terminates in a pair of nodes.
type bisection[V comparable, T geom.Float] struct {
	axis int
	low  section[V, T]
	high section[V, T]
}

func newBisection[V comparable, T geom.Float](par *params, area geom.Box[T], level uint, axis int) *bisection[V, T] {
	lowBox := geom.NewBox(area.Min(), area.Max().MidTo(area.Min(), axis))
	highBox := geom.NewBox(area.Min().MidTo(area.Max(), axis), area.Max())
	b := &bisection[V, T]{axis: axis}
	if axis == 0 {
		b.low = newNode[V, T](par, lowBox, level)
		b.high = newNode[V, T](par, highBox, level)
	} else {
		b.low = newBisection[V, T](par, lowBox, level, axis-1)
		b.high = newBisection[V, T](par, highBox, level, axis-1)
	}
	return b
}

// addTo routes a value into the low half if its box starts at or before the
// axis midpoint, and into the high half if it ends at or after it. The two
// tests are deliberately independent: a box whose boundary coincides with
// the midpoint satisfies both and is placed twice. Exclusive-mode callers
// rule that out via canFallDeeper before descending; shared mode relies on
// the dual placement.
func (b *bisection[V, T]) addTo(val V, box geom.Box[T], area geom.Box[T]) {
	mid := area.MidAxis(b.axis)
	if box.Min()[b.axis] <= mid {
		b.low.addTo(val, box, area)
	}
	if box.Max()[b.axis] >= mid {
		b.high.addTo(val, box, area)
	}
}

// delFrom mirrors addTo's routing, so a deletion reaches every copy.
func (b *bisection[V, T]) delFrom(val V, box geom.Box[T], area geom.Box[T]) {
	mid := area.MidAxis(b.axis)
	if box.Min()[b.axis] <= mid {
		b.low.delFrom(val, box, area)
	}
	if box.Max()[b.axis] >= mid {
		b.high.delFrom(val, box, area)
	}
}

func (b *bisection[V, T]) gatherAll(into map[V]geom.Box[T]) {
	b.low.gatherAll(into)
	b.high.gatherAll(into)
}

func (b *bisection[V, T]) findPairs(pairs *[][2]V) {
	b.low.findPairs(pairs)
	b.high.findPairs(pairs)
}

func (b *bisection[V, T]) findBox(box geom.Box[T], hits map[V]struct{}) {
	b.low.findBox(box, hits)
	b.high.findBox(box, hits)
}

func (b *bisection[V, T]) traverse(onArea func(geom.Box[T], uint), onValue func(geom.Box[T], V, uint)) {
	b.low.traverse(onArea, onValue)
	b.high.traverse(onArea, onValue)
}

func (b *bisection[V, T]) eachNode(f func(*node[V, T])) {
	b.low.eachNode(f)
	b.high.eachNode(f)
}
