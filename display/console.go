package display

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/orthtree"
	"github.com/npillmayer/orthtree/geom"
	"golang.org/x/term"
)

// Config controls console rendering of a tree.
type Config struct {
	// Width is the sketch width in character cells.
	Width int
	// Colors maps subdivision levels to display colors. It may cover just
	// a subset of the levels occurring in the tree; deeper levels cycle.
	Colors []*color.Color
}

// ConfigFromTerminal creates a rendering config from the current terminal's
// properties, if stdout is interactive, and from defaults otherwise.
func ConfigFromTerminal() *Config {
	config := &Config{
		Width:  defaultWidth,
		Colors: defaultColors(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > minWidth {
			config.Width = w
		}
	}
	return config
}

const (
	defaultWidth = 80
	minWidth     = 24
)

func defaultColors() []*color.Color {
	return []*color.Color{
		color.New(color.FgWhite),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
		color.New(color.FgRed),
	}
}

// Sketch renders the node regions and stored values of a 2-dimensional
// tree as a character grid. Region outlines are colored by subdivision
// level, stored values appear as '▪' at their box's center cell.
//
// If config is nil, a heuristic will create one from the current
// terminal's properties. Trees of any other dimension count are rejected
// with ErrUnsupportedDimension.
func Sketch[V comparable, T geom.Float](tree *orthtree.Tree[V, T], w io.Writer, config *Config) error {
	if tree.Area().Dim() != 2 {
		return fmt.Errorf("%w: tree has %d dimensions", ErrUnsupportedDimension, tree.Area().Dim())
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	width := config.Width
	if width < minWidth {
		width = minWidth
	}
	area := tree.Area()
	spanX := float64(area.Max()[0] - area.Min()[0])
	spanY := float64(area.Max()[1] - area.Min()[1])
	if spanX <= 0 || spanY <= 0 {
		return fmt.Errorf("%w: degenerate tree area %v", ErrUnsupportedDimension, area)
	}
	// terminal cells are roughly twice as tall as wide
	height := int(float64(width) / 2 * spanY / spanX)
	if height < 2 {
		height = 2
	}
	grid := newGrid(width, height)
	cellX := func(c T) int { return grid.clampX(int(float64(c-area.Min()[0]) / spanX * float64(width-1))) }
	cellY := func(c T) int { return grid.clampY(int(float64(c-area.Min()[1]) / spanY * float64(height-1))) }
	tree.TraverseDeep(func(region geom.Box[T], level uint) {
		grid.frame(cellX(region.Min()[0]), cellY(region.Min()[1]),
			cellX(region.Max()[0]), cellY(region.Max()[1]), level)
	}, func(box geom.Box[T], val V, level uint) {
		grid.mark(cellX(box.MidAxis(0)), cellY(box.MidAxis(1)), level)
	})
	return grid.print(w, config.Colors)
}

type cell struct {
	ch    rune
	level uint
}

type grid struct {
	cells         []cell
	width, height int
}

func newGrid(width, height int) *grid {
	g := &grid{
		cells:  make([]cell, width*height),
		width:  width,
		height: height,
	}
	for i := range g.cells {
		g.cells[i].ch = ' '
	}
	return g
}

func (g *grid) clampX(x int) int { return max(0, min(g.width-1, x)) }
func (g *grid) clampY(y int) int { return max(0, min(g.height-1, y)) }

func (g *grid) set(x, y int, ch rune, level uint) {
	c := &g.cells[y*g.width+x]
	// deeper levels win, so subdivisions stay visible inside their parent
	if c.level > level {
		return
	}
	c.ch = ch
	c.level = level
}

// frame draws the rectangle outline of a region.
func (g *grid) frame(x1, y1, x2, y2 int, level uint) {
	for x := x1; x <= x2; x++ {
		g.set(x, y1, '─', level)
		g.set(x, y2, '─', level)
	}
	for y := y1; y <= y2; y++ {
		g.set(x1, y, '│', level)
		g.set(x2, y, '│', level)
	}
	g.set(x1, y1, '┌', level)
	g.set(x2, y1, '┐', level)
	g.set(x1, y2, '└', level)
	g.set(x2, y2, '┘', level)
}

// mark places a stored value. Values always overdraw region outlines.
func (g *grid) mark(x, y int, level uint) {
	c := &g.cells[y*g.width+x]
	c.ch = '▪'
	c.level = level
}

// print writes the grid row by row, top row last so that the y axis points
// up like in the coordinate space.
func (g *grid) print(w io.Writer, colors []*color.Color) error {
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.ch == ' ' || len(colors) == 0 {
				if _, err := fmt.Fprintf(w, "%c", c.ch); err != nil {
					return err
				}
				continue
			}
			col := colors[int(c.level)%len(colors)]
			if _, err := col.Fprintf(w, "%c", c.ch); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
