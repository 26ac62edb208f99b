/*
Package orthtree implements an adaptive spatial index over axis-aligned
regions in N-dimensional space.

Orthtrees

An orthtree (orthant tree) is the dimension-generic family containing the
quadtree (2D) and octree (3D): a region of space is recursively bisected
along every axis into 2^D orthants. The tree stores value→region
associations and answers intersection queries — all pairwise intersections,
intersections against a query region, intersections against a stored
value's region — without exhaustive pairwise comparison.

Nodes hold values in a bucket until the bucket overflows, then split into
2^D children and push down every value that fits entirely inside one
orthant; values straddling an inner boundary stay in the parent's bucket.
Deletions merge a subtree back into its root node as soon as the subtree's
population falls to the split threshold. Split and merge share one
threshold, so the policy is a simple hysteresis; oscillation near the
threshold is possible and accepted.

	area := geom.NewBox(geom.NewPoint(0.0, 0.0), geom.NewPoint(100.0, 100.0))
	tree, err := orthtree.New[int](area, orthtree.Config{Dim: 2})
	…
	tree.Add(1, geom.NewBox(geom.NewPoint(10.0, 10.0), geom.NewPoint(20.0, 20.0)))
	pairs := tree.FindIntersected()

The coordinate type is a generic parameter (float32 or float64); the
dimension count, split threshold and placement discipline are fixed at
construction through Config. Trees are not safe for concurrent use; callers
must serialize access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package orthtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// assert guards internal structural invariants. Callers gate it behind the
// tree's checks switch; a failing assertion is a defect, not a runtime error.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
