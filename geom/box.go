package geom

// Box is an axis-aligned region given by its minimum and maximum corners.
// Every construction path reorders corners per axis, so min[i] <= max[i]
// holds for all axes. Degenerate boxes (min == max on some axes) are legal.
//
// Predicates combine per-axis tests with logical AND over all axes and use
// closed-interval semantics: boundary contact counts as intersection.
type Box[T Float] struct {
	min Point[T]
	max Point[T]
}

// NewBox creates a box spanned by two corner points. The corners need not be
// ordered; coordinates are sorted per axis.
func NewBox[T Float](pnt1, pnt2 Point[T]) Box[T] {
	assert(len(pnt1) == len(pnt2), "box: dimension mismatch")
	b := Box[T]{
		min: make(Point[T], len(pnt1)),
		max: make(Point[T], len(pnt1)),
	}
	for i := range pnt1 {
		if pnt1[i] <= pnt2[i] {
			b.min[i], b.max[i] = pnt1[i], pnt2[i]
		} else {
			b.min[i], b.max[i] = pnt2[i], pnt1[i]
		}
	}
	return b
}

// NewBoxAt creates a zero-volume box located at a single point.
func NewBoxAt[T Float](pnt Point[T]) Box[T] {
	return Box[T]{min: pnt.Clone(), max: pnt.Clone()}
}

// Dim returns the dimension count.
func (b Box[T]) Dim() int { return len(b.min) }

// Min returns the minimum corner. Callers must not modify the result.
func (b Box[T]) Min() Point[T] { return b.min }

// Max returns the maximum corner. Callers must not modify the result.
func (b Box[T]) Max() Point[T] { return b.max }

// Mid returns the center point of the box.
func (b Box[T]) Mid() Point[T] { return Mid(b.min, b.max) }

// MidAxis returns the center coordinate of the box on a single axis.
func (b Box[T]) MidAxis(axis int) T { return MidAxis(b.min, b.max, axis) }

// Clone returns an independent copy of b.
func (b Box[T]) Clone() Box[T] {
	return Box[T]{min: b.min.Clone(), max: b.max.Clone()}
}

// Intersect reports whether b and other overlap, boundary contact included.
func (b Box[T]) Intersect(other Box[T]) bool {
	for i := range b.min {
		if b.min[i] > other.max[i] || b.max[i] < other.min[i] {
			return false
		}
	}
	return true
}

// Intersection returns the tightest box enclosing the overlap of b and
// other. The second return value is false iff the boxes do not intersect.
func (b Box[T]) Intersection(other Box[T]) (Box[T], bool) {
	inter := Box[T]{
		min: make(Point[T], len(b.min)),
		max: make(Point[T], len(b.min)),
	}
	for i := range b.min {
		inter.min[i] = max(b.min[i], other.min[i])
		inter.max[i] = min(b.max[i], other.max[i])
		if inter.min[i] > inter.max[i] {
			return Box[T]{}, false
		}
	}
	return inter, true
}

// Contain reports whether other lies within b, boundaries included.
func (b Box[T]) Contain(other Box[T]) bool {
	for i := range b.min {
		if b.min[i] > other.min[i] || b.max[i] < other.max[i] {
			return false
		}
	}
	return true
}

// ContainStrict reports whether other lies within b without touching b's
// boundary on any axis. Never true for identical boxes.
func (b Box[T]) ContainStrict(other Box[T]) bool {
	for i := range b.min {
		if b.min[i] >= other.min[i] || b.max[i] <= other.max[i] {
			return false
		}
	}
	return true
}

// ContainOrthant reports whether b covers at least one orthant of other,
// i.e. on every axis b spans from other's boundary past other's midpoint.
// A box for which this holds is too large to be pushed below other.
func (b Box[T]) ContainOrthant(other Box[T]) bool {
	for i := range b.min {
		mid := (other.min[i] + other.max[i]) / 2
		if !(b.min[i] <= other.min[i] && b.max[i] >= mid) {
			return false
		}
		if !(b.min[i] <= mid && b.max[i] >= other.max[i]) {
			return false
		}
	}
	return true
}

// ContainInOrthant reports whether other fits entirely inside exactly one
// orthant of b: on every axis other must stay clear of b's boundary and must
// not straddle or touch b's midpoint.
func (b Box[T]) ContainInOrthant(other Box[T]) bool {
	for i := range b.min {
		if other.max[i] >= b.max[i] {
			return false
		}
		if other.min[i] <= b.min[i] {
			return false
		}
		mid := b.MidAxis(i)
		if other.min[i] <= mid && other.max[i] >= mid {
			return false
		}
	}
	return true
}

// Equal reports whether b and other have identical corners.
func (b Box[T]) Equal(other Box[T]) bool {
	return b.min.Equal(other.min) && b.max.Equal(other.max)
}

func (b Box[T]) String() string {
	return b.min.String() + "-" + b.max.String()
}
