package geom

import (
	"fmt"
	"math"
	"strings"
)

// Float constrains coordinate types to floating-point representations.
type Float interface {
	~float32 | ~float64
}

// Vector is a displacement in D-dimensional space. It carries no positional
// semantics; adding a Vector to a Point yields a translated Point.
//
// The zero-length slice is not a valid vector; use NewVector or Zero.
type Vector[T Float] []T

// NewVector creates a vector from its coordinates.
func NewVector[T Float](coords ...T) Vector[T] {
	assert(len(coords) > 0, "vector needs at least one coordinate")
	v := make(Vector[T], len(coords))
	copy(v, coords)
	return v
}

// Zero returns the zero vector of the given dimension count.
func Zero[T Float](dim int) Vector[T] {
	assert(dim > 0, "vector needs at least one coordinate")
	return make(Vector[T], dim)
}

// Dim returns the dimension count.
func (v Vector[T]) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector[T]) Clone() Vector[T] {
	w := make(Vector[T], len(v))
	copy(w, v)
	return w
}

// Add returns the component-wise sum v + w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	assert(len(v) == len(w), "vector add: dimension mismatch")
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns the component-wise difference v - w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	assert(len(v) == len(w), "vector sub: dimension mismatch")
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Scale returns v scaled by coeff.
func (v Vector[T]) Scale(coeff T) Vector[T] {
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] * coeff
	}
	return r
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	assert(len(v) == len(w), "vector dot: dimension mismatch")
	var sum T
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Length2 returns the squared length of v.
func (v Vector[T]) Length2() T { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vector[T]) Length() T {
	return T(math.Sqrt(float64(v.Length2())))
}

// Normalize returns v scaled to unit length. Vectors with near-zero length
// are returned unchanged to avoid division by zero.
func (v Vector[T]) Normalize() Vector[T] {
	len := v.Length()
	if float64(len) <= epsilonFor[T]() {
		return v.Clone()
	}
	return v.Scale(1 / len)
}

// Equal reports whether v and w have identical coordinates.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%g", float64(c))
	}
	sb.WriteByte(')')
	return sb.String()
}

func epsilonFor[T Float]() float64 {
	var probe T
	switch any(probe).(type) {
	case float32:
		return 1.1920929e-07
	default:
		return 2.220446049250313e-16
	}
}
