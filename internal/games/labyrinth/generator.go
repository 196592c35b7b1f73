package labyrinth

import (
	"fmt"
	"math/rand"

	"github.com/tinypanel/arcade/internal/config"
)

// Bounded sampling attempts for the best-effort shaping passes. Exhausting
// them is a silent no-op, never a failure: the maze is already valid.
const (
	attemptsPerExtension = 60
	attemptsPerLoop      = 18
)

// Generator produces solvable mazes with level-tuned difficulty shaping.
//
// All search scratch (DFS stack, BFS queue and distance array) is allocated
// once, sized to MaxCells, and reused across generations, so generating a
// new level does no heap work. Cells are packed as row*width+col indices in
// the scratch buffers.
type Generator struct {
	cfg config.LabyrinthConfig

	stack []uint16
	queue []uint16
	dist  []int16
}

// NewGenerator creates a generator whose workspace is sized for the maximum
// grid capacity.
func NewGenerator(cfg config.LabyrinthConfig) *Generator {
	return &Generator{
		cfg:   cfg,
		stack: make([]uint16, MaxCells),
		queue: make([]uint16, MaxCells),
		dist:  make([]int16, MaxCells),
	}
}

// Generate builds a maze of roughly the desired dimensions for the given
// level. Dimensions are forced to the nearest smaller odd number, raised to
// the 7x7 floor and capped at MaxMazeW x MaxMazeH. The same rng seed and
// arguments always produce the identical maze: the single RNG stream is
// consumed in fixed pass order.
//
// Four passes: perfect-maze DFS carve, dead-end extension, loop injection,
// then BFS exit placement at the maximum distance from the start.
func (g *Generator) Generate(width, height, level int, rng *rand.Rand) *Maze {
	width = clampDimension(width, MaxMazeW)
	height = clampDimension(height, MaxMazeH)

	// Construction-time contract: the two-cell-step carve is only correct
	// on odd dimensions of at least 7. clampDimension guarantees this, so
	// a violation here is a programming error, not a runtime condition.
	if width%2 == 0 || height%2 == 0 || width < 7 || height < 7 {
		panic(fmt.Sprintf("labyrinth: invalid carve dimensions %dx%d", width, height))
	}

	m := newMaze(width, height)
	const startX, startY = 1, 1

	g.carvePerfectMaze(m, startX, startY, rng)

	// Difficulty shaping: longer false leads first, then loop openings so
	// the tree property is broken last. Both are best-effort and only ever
	// add walkable cells, so connectivity from pass 1 is preserved.
	cells := width * height
	g.extendDeadEnds(m, g.cfg.ExtensionCountForLevel(level, cells), g.cfg.ExtensionMaxSteps(level), rng)
	g.injectLoops(m, g.cfg.LoopCountForLevel(level, cells), rng)

	exit := g.farthestFrom(m, startX, startY)

	// Markers go in last so the shaping passes never have to dodge them.
	m.start = Point{X: startX, Y: startY}
	m.exit = exit
	m.set(startX, startY, Start)
	m.set(exit.X, exit.Y, Exit)

	return m
}

// clampDimension caps a requested dimension, forces it to the nearest
// smaller odd number and applies the 7-cell floor.
func clampDimension(v, max int) int {
	if v > max {
		v = max
	}
	if v%2 == 0 {
		v--
	}
	if v < 7 {
		v = 7
	}
	return v
}

var (
	dirDX = [4]int{0, 0, -1, 1}
	dirDY = [4]int{-1, 1, 0, 0}
)

// carvePerfectMaze runs an iterative randomized depth-first spanning-tree
// carve from (startX, startY). The explicit stack bounds memory regardless
// of grid size; recursion depth on a 95x95 grid would not.
func (g *Generator) carvePerfectMaze(m *Maze, startX, startY int, rng *rand.Rand) {
	top := 0
	g.stack[top] = pack(m, startX, startY)
	m.set(startX, startY, Path)

	for top >= 0 {
		cx, cy := unpack(m, g.stack[top])

		// Neighbors two cells away that are still walls and strictly
		// inside the border.
		var candidates [4]int
		n := 0
		for dir := 0; dir < 4; dir++ {
			nx := cx + dirDX[dir]*2
			ny := cy + dirDY[dir]*2
			if nx > 0 && nx < m.width-1 && ny > 0 && ny < m.height-1 && m.At(nx, ny) == Wall {
				candidates[n] = dir
				n++
			}
		}

		if n == 0 {
			top--
			continue
		}

		dir := candidates[rng.Intn(n)]
		nx := cx + dirDX[dir]*2
		ny := cy + dirDY[dir]*2

		// Carve the one-cell bridge and the destination.
		m.set(cx+dirDX[dir], cy+dirDY[dir], Path)
		m.set(nx, ny, Path)

		top++
		g.stack[top] = pack(m, nx, ny)
	}
}

// extendDeadEnds lengthens existing dead ends into random corridors,
// creating false leads. A candidate is a Wall cell that, once carved,
// would have exactly one walkable neighbor, i.e. it prolongs a dead end
// rather than opening a junction. Each corridor stops early if it would
// create a junction so it still reads as a dead end.
func (g *Generator) extendDeadEnds(m *Maze, extensions, maxSteps int, rng *rand.Rand) {
	for i := 0; i < extensions; i++ {
		x, y := -1, -1

		for a := 0; a < attemptsPerExtension; a++ {
			rx := 1 + rng.Intn(m.width-2)
			ry := 1 + rng.Intn(m.height-2)
			if m.At(rx, ry) != Wall {
				continue
			}
			if m.walkableNeighbors(rx, ry) != 1 {
				continue
			}
			x, y = rx, ry
			break
		}

		if x < 0 {
			// No dead-end candidate left; the maze is already loopy
			// enough. Not an error.
			return
		}

		m.set(x, y, Path)

		for step := 1; step < maxSteps; step++ {
			if m.walkableNeighbors(x, y) >= 2 {
				break
			}

			var candidates [4]int
			n := 0
			for dir := 0; dir < 4; dir++ {
				nx := x + dirDX[dir]
				ny := y + dirDY[dir]
				if nx > 0 && nx < m.width-1 && ny > 0 && ny < m.height-1 && m.At(nx, ny) == Wall {
					candidates[n] = dir
					n++
				}
			}
			if n == 0 {
				break
			}

			dir := candidates[rng.Intn(n)]
			x += dirDX[dir]
			y += dirDY[dir]
			m.set(x, y, Path)
		}
	}
}

// injectLoops opens walls that connect two opposite corridors, creating
// alternate routes. Only cells with exactly two opposite walkable
// neighbors qualify, so an opening joins two branches without flooding an
// open area. This deliberately breaks the single-path property of the
// spanning tree.
func (g *Generator) injectLoops(m *Maze, openings int, rng *rand.Rand) {
	for i := 0; i < openings; i++ {
		for try := 0; try < attemptsPerLoop; try++ {
			x := 1 + rng.Intn(m.width-2)
			y := 1 + rng.Intn(m.height-2)
			if m.At(x, y) != Wall {
				continue
			}

			up := m.At(x, y-1).Walkable()
			down := m.At(x, y+1).Walkable()
			left := m.At(x-1, y).Walkable()
			right := m.At(x+1, y).Walkable()

			vertical := up && down && !left && !right
			horizontal := left && right && !up && !down
			if vertical || horizontal {
				m.set(x, y, Path)
				break
			}
		}
	}
}

// farthestFrom runs a breadth-first search from (startX, startY) over all
// walkable cells and returns the cell with the maximum BFS distance. Ties
// break on visitation order (first found at the max distance), which makes
// exit placement deterministic for a fixed seed. Running this after the
// shaping passes means the chosen exit reflects the true shortest-path
// distance through false leads and loops.
func (g *Generator) farthestFrom(m *Maze, startX, startY int) Point {
	total := m.width * m.height
	for i := 0; i < total; i++ {
		g.dist[i] = -1
	}

	head, tail := 0, 0
	start := pack(m, startX, startY)
	g.queue[tail] = start
	tail++
	g.dist[start] = 0

	best := Point{X: startX, Y: startY}
	bestD := int16(0)

	for head < tail {
		cur := g.queue[head]
		head++
		cx, cy := unpack(m, cur)
		cd := g.dist[cur]

		if cd > bestD {
			bestD = cd
			best = Point{X: cx, Y: cy}
		}

		for dir := 0; dir < 4; dir++ {
			nx := cx + dirDX[dir]
			ny := cy + dirDY[dir]
			if !m.InBounds(nx, ny) || m.IsWall(nx, ny) {
				continue
			}
			ni := pack(m, nx, ny)
			if g.dist[ni] != -1 {
				continue
			}
			g.dist[ni] = cd + 1
			g.queue[tail] = ni
			tail++
		}
	}

	return best
}

func pack(m *Maze, x, y int) uint16 {
	return uint16(y*m.width + x)
}

func unpack(m *Maze, v uint16) (int, int) {
	return int(v) % m.width, int(v) / m.width
}
