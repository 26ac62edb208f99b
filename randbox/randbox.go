package randbox

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

import (
	"math/rand"

	"github.com/guiguan/caster"
	"github.com/npillmayer/orthtree"
	"github.com/npillmayer/orthtree/geom"
)

// Gen produces pseudo-random boxes inside a fixed area. Generation is
// deterministic for a given seed, so failing randomized tests can be
// replayed.
//
// Generated coordinates stay strictly inside the area, keeping the boxes
// legal for trees with the exclusive placement discipline.
type Gen[T geom.Float] struct {
	area      geom.Box[T]
	maxExtent T
	rnd       *rand.Rand
}

// New creates a generator over the given area. maxExtent bounds the box
// edge length per axis; 0 selects a tenth of the area's smallest span.
func New[T geom.Float](area geom.Box[T], maxExtent T, seed int64) *Gen[T] {
	if maxExtent <= 0 {
		span := area.Max()[0] - area.Min()[0]
		for i := 1; i < area.Dim(); i++ {
			if s := area.Max()[i] - area.Min()[i]; s < span {
				span = s
			}
		}
		maxExtent = span / 10
	}
	return &Gen[T]{
		area:      area,
		maxExtent: maxExtent,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// unit returns a random number in the open interval (0,1).
func (g *Gen[T]) unit() T {
	for {
		if u := g.rnd.Float64(); u > 0 {
			return T(u)
		}
	}
}

// Point returns a random point strictly inside the area.
func (g *Gen[T]) Point() geom.Point[T] {
	p := make(geom.Point[T], g.area.Dim())
	for i := range p {
		span := g.area.Max()[i] - g.area.Min()[i]
		p[i] = g.area.Min()[i] + g.unit()*span
	}
	return p
}

// PointBox returns a random zero-volume box.
func (g *Gen[T]) PointBox() geom.Box[T] {
	return geom.NewBoxAt(g.Point())
}

// Box returns a random box with edge lengths up to the generator's extent
// bound. Corners stay strictly inside the area, so a corner that would
// cross the boundary is pulled back to halfway between its start and the
// boundary.
func (g *Gen[T]) Box() geom.Box[T] {
	pnt1 := g.Point()
	pnt2 := make(geom.Point[T], len(pnt1))
	for i := range pnt2 {
		c := pnt1[i] + g.unit()*g.maxExtent
		if m := g.area.Max()[i]; c >= m {
			c = (pnt1[i] + m) / 2
		}
		pnt2[i] = c
	}
	return geom.NewBox(pnt1, pnt2)
}

// Fill adds count random boxes to a tree, with consecutive integer values
// starting at firstID. It returns the first insertion error, if any.
func Fill[T geom.Float](tree *orthtree.Tree[int, T], g *Gen[T], firstID, count int) error {
	for i := 0; i < count; i++ {
		if err := tree.Add(firstID+i, g.Box()); err != nil {
			return err
		}
	}
	return nil
}

// --- Asynchronous generation -----------------------------------------------

// Stream broadcasts generated boxes to any number of subscribers. Workload
// drivers subscribe first, then call Start; the generating goroutine closes
// all subscriber channels when the workload is exhausted.
type Stream[T geom.Float] struct {
	gen   *Gen[T]
	count int
	cast  *caster.Caster
	done  chan struct{}
}

// Stream prepares an asynchronous workload of count boxes. The generator
// must not be used directly while the stream is running.
func (g *Gen[T]) Stream(count int) *Stream[T] {
	return &Stream[T]{
		gen:   g,
		count: count,
		cast:  caster.New(nil), // we will broadcast boxes as they are generated
		done:  make(chan struct{}),
	}
}

// Boxes subscribes to the stream with the given channel capacity. All
// subscriptions must happen before Start.
func (s *Stream[T]) Boxes(capacity uint) <-chan geom.Box[T] {
	ch, _ := s.cast.Sub(nil, capacity)
	out := make(chan geom.Box[T], capacity)
	go func() {
		defer close(out)
		for m := range ch {
			out <- m.(geom.Box[T])
		}
	}()
	return out
}

// Start launches the generating goroutine.
func (s *Stream[T]) Start() {
	go func() {
		defer close(s.done)
		defer s.cast.Close()
		for i := 0; i < s.count; i++ {
			s.cast.Pub(s.gen.Box())
		}
	}()
}

// Done is closed when the stream has published its whole workload.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.done
}
