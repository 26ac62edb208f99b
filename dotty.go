package orthtree

import (
	"fmt"
	"io"

	"github.com/npillmayer/orthtree/geom"
)

// Tree2Dot outputs the node structure of a tree in Graphviz DOT format
// (for debugging purposes). Regions become circles, stored values boxes,
// with edges from each region to its sub-regions and bucket entries.
func Tree2Dot[V comparable, T geom.Float](tree *Tree[V, T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	next := 0
	// preorder traversal: the enclosing region of any visit is the last
	// region seen on a shallower level
	type openRegion struct {
		id    int
		level uint
	}
	var path []openRegion
	tree.TraverseDeep(func(area geom.Box[T], level uint) {
		next++
		for len(path) > 0 && path[len(path)-1].level >= level {
			path = path[:len(path)-1]
		}
		if len(path) > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", path[len(path)-1].id, next)
		}
		label := fmt.Sprintf("L%d\\n%s", level, area)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", next, label, regionDotStyles())
		path = append(path, openRegion{id: next, level: level})
	}, func(box geom.Box[T], val V, level uint) {
		next++
		label := fmt.Sprintf("%v\\n%s", val, box)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", next, label, valueDotStyles())
		if len(path) > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", path[len(path)-1].id, next)
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func regionDotStyles() string {
	return "style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"
}

func valueDotStyles() string {
	return "style=filled,shape=box"
}
