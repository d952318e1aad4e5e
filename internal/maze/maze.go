// Package maze holds the static maze grid: cell kinds, parsing and
// validation of a literal layout, and the world<->grid coordinate mapping.
// The same nearest-cell snapping is used by collision and progress tracking
// so both always agree on which cell a continuous position belongs to.
package maze

import (
	"fmt"
	"math"
)

// Kind classifies one grid cell.
type Kind byte

const (
	Wall Kind = iota
	Path
	Checkpoint
	Finish
)

// String returns the lowercase cell kind name, for logs.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Checkpoint:
		return "checkpoint"
	case Finish:
		return "finish"
	}
	return "unknown"
}

// Pos is a grid coordinate: X is the column, Z is the row. Pos values are
// comparable, so they double as set keys for checkpoint tracking.
type Pos struct {
	X int
	Z int
}

// Grid is a rectangular, immutable maze. Construct it with Parse; the zero
// value is empty and not usable.
type Grid struct {
	cells       [][]Kind
	width       int
	height      int
	start       Pos
	finish      Pos
	checkpoints []Pos
}

// Layout runes accepted by Parse.
const (
	runeWall       = '#'
	runePath       = '.'
	runeCheckpoint = 'C'
	runeFinish     = 'F'
)

// Parse builds a Grid from layout rows ('#' wall, '.' path, 'C' checkpoint,
// 'F' finish). It fails fast on anything the movement and progress logic
// would otherwise trip over later: the grid must be non-empty and
// rectangular, the outer border must be entirely wall, and there must be
// exactly one finish and at least one path cell. The first path cell in row
// scan order becomes the start cell.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("maze: row 0 is empty")
	}

	g := &Grid{
		cells:  make([][]Kind, len(rows)),
		width:  width,
		height: len(rows),
		start:  Pos{-1, -1},
		finish: Pos{-1, -1},
	}

	for z, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has %d cells, want %d", z, len(row), width)
		}
		g.cells[z] = make([]Kind, width)
		for x, r := range row {
			var k Kind
			switch r {
			case runeWall:
				k = Wall
			case runePath:
				k = Path
			case runeCheckpoint:
				k = Checkpoint
			case runeFinish:
				k = Finish
			default:
				return nil, fmt.Errorf("maze: unknown cell %q at (%d,%d)", r, x, z)
			}
			border := x == 0 || z == 0 || x == width-1 || z == len(rows)-1
			if border && k != Wall {
				return nil, fmt.Errorf("maze: border cell (%d,%d) is %s, want wall", x, z, k)
			}
			g.cells[z][x] = k
			switch k {
			case Path:
				if g.start.X < 0 {
					g.start = Pos{x, z}
				}
			case Checkpoint:
				g.checkpoints = append(g.checkpoints, Pos{x, z})
			case Finish:
				if g.finish.X >= 0 {
					return nil, fmt.Errorf("maze: second finish at (%d,%d)", x, z)
				}
				g.finish = Pos{x, z}
			}
		}
	}

	if g.start.X < 0 {
		return nil, fmt.Errorf("maze: no path cell")
	}
	if g.finish.X < 0 {
		return nil, fmt.Errorf("maze: no finish cell")
	}
	return g, nil
}

// Size returns the grid width (columns) and height (rows).
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Start returns the spawn cell.
func (g *Grid) Start() Pos {
	return g.start
}

// Finish returns the finish cell.
func (g *Grid) Finish() Pos {
	return g.finish
}

// Checkpoints returns the checkpoint cells in row scan order. The caller
// must not mutate the returned slice.
func (g *Grid) Checkpoints() []Pos {
	return g.checkpoints
}

// KindAt returns the cell kind at (x,z). ok is false outside the grid;
// out-of-bounds cells are neither walls nor checkpoints, they simply have
// no effect.
func (g *Grid) KindAt(x, z int) (k Kind, ok bool) {
	if x < 0 || z < 0 || x >= g.width || z >= g.height {
		return Wall, false
	}
	return g.cells[z][x], true
}

// Walkable reports whether (x,z) is inside the grid and not a wall.
func (g *Grid) Walkable(x, z int) bool {
	k, ok := g.KindAt(x, z)
	return ok && k != Wall
}

// Snap maps a continuous world coordinate to a grid index: divide by the
// cell size and round to the nearest integer, with ties toward +infinity.
// Cell (x,z) is centered at world (x*cellSize, z*cellSize).
func Snap(world, cellSize float32) int {
	return int(math.Floor(float64(world)/float64(cellSize) + 0.5))
}

// SnapPos snaps a continuous (x,z) world position to its grid cell.
func SnapPos(x, z, cellSize float32) Pos {
	return Pos{Snap(x, cellSize), Snap(z, cellSize)}
}

// CellCenter returns the world-space center of a cell on the XZ plane.
func CellCenter(p Pos, cellSize float32) (x, z float32) {
	return float32(p.X) * cellSize, float32(p.Z) * cellSize
}
