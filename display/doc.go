/*
Package display renders orthtree structures for human inspection.

The package draws the regions and stored values of a 2-dimensional tree
onto a character grid, coloring region outlines by subdivision level. It
consumes only the tree's public traversal contract and never mutates the
tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package display

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrUnsupportedDimension signals a tree that cannot be sketched on a
// 2-dimensional character grid.
var ErrUnsupportedDimension = errors.New("display: only 2-dimensional trees can be sketched")
