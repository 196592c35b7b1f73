package labyrinth

// CellKind identifies what occupies one maze grid cell.
type CellKind uint8

const (
	Wall CellKind = iota
	Path
	Start
	Exit
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable reports whether an actor may occupy this cell.
func (k CellKind) Walkable() bool {
	return k != Wall
}

// Grid capacity bounds. Every generation scratch buffer is sized once to
// MaxCells so generation never allocates; requests beyond the cap are
// clamped at the boundary, not rejected.
const (
	MaxMazeW = 95
	MaxMazeH = 95
	MaxCells = MaxMazeW * MaxMazeH
)

// Point is a grid coordinate (column, row).
type Point struct {
	X, Y int
}

// Maze is a finite 2D grid of cells with a designated start and exit.
//
// Invariants, established by the generator and never violated afterwards:
// width and height are odd and >= 7; every non-Wall cell is reachable from
// the start via a 4-connected walkable path; the exit is walkable and
// reachable. The grid is immutable once generated.
type Maze struct {
	width  int
	height int
	cells  []CellKind // row-major, row*width+col
	start  Point
	exit   Point
}

// newMaze allocates an all-Wall grid. Internal: only the generator builds
// mazes.
func newMaze(width, height int) *Maze {
	return &Maze{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
}

// Width returns the grid width in cells.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the grid height in cells.
func (m *Maze) Height() int {
	return m.height
}

// Start returns the start cell coordinate. Always (1, 1).
func (m *Maze) Start() Point {
	return m.start
}

// Exit returns the exit cell coordinate chosen by generation.
func (m *Maze) Exit() Point {
	return m.exit
}

// InBounds reports whether (x, y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the cell kind at (x, y). Out-of-bounds reads fail closed and
// return Wall, which keeps collision queries edge-safe without special
// cases.
func (m *Maze) At(x, y int) CellKind {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.cells[y*m.width+x]
}

// IsWall reports whether (x, y) blocks movement. Out of bounds counts as
// a wall.
func (m *Maze) IsWall(x, y int) bool {
	return !m.At(x, y).Walkable()
}

func (m *Maze) set(x, y int, k CellKind) {
	m.cells[y*m.width+x] = k
}

// walkableNeighbors counts the 4-connected walkable neighbors of (x, y).
func (m *Maze) walkableNeighbors(x, y int) int {
	n := 0
	if m.At(x, y-1).Walkable() {
		n++
	}
	if m.At(x, y+1).Walkable() {
		n++
	}
	if m.At(x-1, y).Walkable() {
		n++
	}
	if m.At(x+1, y).Walkable() {
		n++
	}
	return n
}
