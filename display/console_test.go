package display_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/orthtree"
	"github.com/npillmayer/orthtree/display"
	"github.com/npillmayer/orthtree/geom"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSketch2D(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	area := geom.NewBox(geom.NewPoint(0.0, 0.0), geom.NewPoint(10.0, 10.0))
	tree, err := orthtree.New[int](area, orthtree.Config{Dim: 2, GroupCount: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	boxes := []geom.Box[float64]{
		geom.NewBox(geom.NewPoint(1.0, 1.0), geom.NewPoint(2.0, 2.0)),
		geom.NewBox(geom.NewPoint(7.0, 7.0), geom.NewPoint(8.0, 8.0)),
		geom.NewBox(geom.NewPoint(7.0, 1.0), geom.NewPoint(8.0, 2.0)),
	}
	for i, b := range boxes {
		if err := tree.Add(i, b); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := display.Sketch(tree, &buf, &display.Config{Width: 40}); err != nil {
		t.Fatalf("Sketch failed: %v", err)
	}
	out := buf.String()
	t.Logf("sketch:\n%s", out)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("sketch should have several rows, got %d", len(lines))
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("sketch should contain region outline corners")
	}
	if got := strings.Count(out, "▪"); got != len(boxes) {
		t.Errorf("sketch should mark %d values, marks %d", len(boxes), got)
	}
}

func TestSketchRejectsOtherDimensions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	area := geom.NewBox(geom.NewPoint(0.0, 0.0, 0.0), geom.NewPoint(1.0, 1.0, 1.0))
	tree, err := orthtree.New[int](area, orthtree.Config{Dim: 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var buf bytes.Buffer
	if err := display.Sketch(tree, &buf, &display.Config{Width: 40}); !errors.Is(err, display.ErrUnsupportedDimension) {
		t.Errorf("3-dimensional tree should be rejected, got %v", err)
	}
}
