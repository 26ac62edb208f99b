/*
Package geom provides the geometric primitives for the orthtree spatial
index: displacement vectors, positions and axis-aligned boxes in
D-dimensional space.

Coordinates are generic over the floating-point type, while the dimension
count is a runtime property of each value, fixed when the value is created.
All operations treat their receivers as immutable and return fresh values;
two primitives never share backing storage unless explicitly documented.

Boxes are closed on all sides: touching boundaries count as intersecting,
and degenerate boxes (zero extent on any subset of axes) are legal
everywhere.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package geom

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
