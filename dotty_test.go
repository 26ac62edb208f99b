package orthtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := newTree2D(t, bx(0, 0, 8, 8), Config{Dim: 2, GroupCount: 1})
	mustAdd(t, tree, 1, bx(1, 1, 2, 2))
	mustAdd(t, tree, 2, bx(5, 5, 6, 6))
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	dot := sb.String()
	t.Logf("DOT output:\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("DOT output should open a strict digraph")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT output should close the digraph")
	}
	if !strings.Contains(dot, "L1") {
		t.Errorf("DOT output should label the root region's level")
	}
	if !strings.Contains(dot, "(1;1)-(2;2)") {
		t.Errorf("DOT output should contain the box of value 1")
	}
	if !strings.Contains(dot, "->") {
		t.Errorf("DOT output should contain edges")
	}
}
