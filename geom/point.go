package geom

import (
	"fmt"
	"strings"
)

// Point is a position in D-dimensional space.
type Point[T Float] []T

// NewPoint creates a point from its coordinates.
func NewPoint[T Float](coords ...T) Point[T] {
	assert(len(coords) > 0, "point needs at least one coordinate")
	p := make(Point[T], len(coords))
	copy(p, coords)
	return p
}

// Origin returns the origin point of the given dimension count.
func Origin[T Float](dim int) Point[T] {
	assert(dim > 0, "point needs at least one coordinate")
	return make(Point[T], dim)
}

// Dim returns the dimension count.
func (p Point[T]) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point[T]) Clone() Point[T] {
	q := make(Point[T], len(p))
	copy(q, p)
	return q
}

// Translate returns p moved by v.
func (p Point[T]) Translate(v Vector[T]) Point[T] {
	assert(len(p) == len(v), "point translate: dimension mismatch")
	q := make(Point[T], len(p))
	for i := range p {
		q[i] = p[i] + v[i]
	}
	return q
}

// Diff returns the displacement from q to p, i.e. p - q.
func (p Point[T]) Diff(q Point[T]) Vector[T] {
	assert(len(p) == len(q), "point diff: dimension mismatch")
	v := make(Vector[T], len(p))
	for i := range p {
		v[i] = p[i] - q[i]
	}
	return v
}

// Mid returns the point halfway between p and q.
func Mid[T Float](p, q Point[T]) Point[T] {
	assert(len(p) == len(q), "point mid: dimension mismatch")
	m := make(Point[T], len(p))
	for i := range p {
		m[i] = (p[i] + q[i]) / 2
	}
	return m
}

// MidAxis returns the midpoint of p and q on a single axis.
func MidAxis[T Float](p, q Point[T], axis int) T {
	assert(axis >= 0 && axis < len(p), "point mid: invalid axis")
	return (p[axis] + q[axis]) / 2
}

// MidTo returns a copy of p with the coordinate on the given axis replaced
// by the midpoint between p and q on that axis. This is the corner-shifting
// operation used by the bisection scheme.
func (p Point[T]) MidTo(q Point[T], axis int) Point[T] {
	assert(len(p) == len(q), "point midto: dimension mismatch")
	assert(axis >= 0 && axis < len(p), "point midto: invalid axis")
	r := p.Clone()
	r[axis] = (p[axis] + q[axis]) / 2
	return r
}

// Equal reports whether p and q have identical coordinates.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%g", float64(c))
	}
	sb.WriteByte(')')
	return sb.String()
}
