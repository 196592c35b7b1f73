package labyrinth

import (
	"math/rand"
	"testing"

	"github.com/tinypanel/arcade/internal/config"
)

// bfsDistances runs a reference BFS from the maze start and returns the
// distance map (-1 for unreached cells). Independent from the generator's
// own BFS so exit placement is verified against a second implementation.
func bfsDistances(m *Maze) []int {
	dist := make([]int, m.Width()*m.Height())
	for i := range dist {
		dist[i] = -1
	}

	start := m.Start()
	queue := []Point{start}
	dist[start.Y*m.Width()+start.X] = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur.Y*m.Width()+cur.X]

		for _, delta := range []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := cur.X+delta.X, cur.Y+delta.Y
			if !m.InBounds(nx, ny) || m.IsWall(nx, ny) {
				continue
			}
			i := ny*m.Width() + nx
			if dist[i] != -1 {
				continue
			}
			dist[i] = d + 1
			queue = append(queue, Point{nx, ny})
		}
	}
	return dist
}

func newTestGenerator() *Generator {
	return NewGenerator(config.DefaultLabyrinthConfig())
}

func TestGridShape(t *testing.T) {
	tests := []struct {
		name  string
		reqW  int
		reqH  int
		wantW int
		wantH int
	}{
		{"odd input unchanged", 15, 15, 15, 15},
		{"even input shrinks", 16, 20, 15, 19},
		{"below floor clamps up", 3, 4, 7, 7},
		{"zero clamps up", 0, 0, 7, 7},
		{"oversized clamps to cap", 500, 500, MaxMazeW, MaxMazeH},
		{"mixed", 40, 6, 39, 7},
	}

	gen := newTestGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := gen.Generate(tt.reqW, tt.reqH, 1, rand.New(rand.NewSource(1)))
			if m.Width() != tt.wantW || m.Height() != tt.wantH {
				t.Errorf("Generate(%d, %d) size = %dx%d, want %dx%d",
					tt.reqW, tt.reqH, m.Width(), m.Height(), tt.wantW, tt.wantH)
			}
			if m.Width()%2 == 0 || m.Height()%2 == 0 {
				t.Errorf("dimensions must be odd, got %dx%d", m.Width(), m.Height())
			}
			if m.Width() < 7 || m.Height() < 7 {
				t.Errorf("dimensions must be >= 7, got %dx%d", m.Width(), m.Height())
			}
		})
	}
}

func TestConnectivity(t *testing.T) {
	// Every walkable cell must be reachable from start, for a spread of
	// seeds and levels: solvability never regresses after any pass.
	gen := newTestGenerator()
	for _, level := range []int{1, 5, 11, 21, 40} {
		for seed := int64(0); seed < 20; seed++ {
			m := gen.Generate(39, 21, level, rand.New(rand.NewSource(seed)))
			dist := bfsDistances(m)

			for y := 0; y < m.Height(); y++ {
				for x := 0; x < m.Width(); x++ {
					if m.IsWall(x, y) {
						continue
					}
					if dist[y*m.Width()+x] == -1 {
						t.Fatalf("level %d seed %d: walkable cell (%d,%d) unreachable from start",
							level, seed, x, y)
					}
				}
			}

			exit := m.Exit()
			if m.At(exit.X, exit.Y) != Exit {
				t.Fatalf("level %d seed %d: exit cell kind = %v", level, seed, m.At(exit.X, exit.Y))
			}
			if dist[exit.Y*m.Width()+exit.X] <= 0 {
				t.Fatalf("level %d seed %d: exit distance = %d, want > 0",
					level, seed, dist[exit.Y*m.Width()+exit.X])
			}
		}
	}
}

func TestExitOptimality(t *testing.T) {
	gen := newTestGenerator()
	for seed := int64(0); seed < 10; seed++ {
		m := gen.Generate(31, 17, 8, rand.New(rand.NewSource(seed)))
		dist := bfsDistances(m)

		maxD := 0
		for _, d := range dist {
			if d > maxD {
				maxD = d
			}
		}

		exit := m.Exit()
		if got := dist[exit.Y*m.Width()+exit.X]; got != maxD {
			t.Errorf("seed %d: exit distance = %d, want max distance %d", seed, got, maxD)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	gen1 := newTestGenerator()
	gen2 := newTestGenerator()

	m1 := gen1.Generate(39, 21, 12, rand.New(rand.NewSource(777)))
	m2 := gen2.Generate(39, 21, 12, rand.New(rand.NewSource(777)))

	if m1.Exit() != m2.Exit() {
		t.Errorf("exit mismatch: %v vs %v", m1.Exit(), m2.Exit())
	}
	for y := 0; y < m1.Height(); y++ {
		for x := 0; x < m1.Width(); x++ {
			if m1.At(x, y) != m2.At(x, y) {
				t.Fatalf("cell (%d,%d) mismatch: %v vs %v", x, y, m1.At(x, y), m2.At(x, y))
			}
		}
	}
}

func TestStartAndMarkers(t *testing.T) {
	// Scenario: a 15x15 request at level 1 keeps its size, starts at (1,1)
	// and has a reachable exit at positive distance.
	gen := newTestGenerator()
	m := gen.Generate(15, 15, 1, rand.New(rand.NewSource(42)))

	if m.Start() != (Point{1, 1}) {
		t.Errorf("start = %v, want (1,1)", m.Start())
	}
	if m.At(1, 1) != Start {
		t.Errorf("start cell kind = %v, want Start", m.At(1, 1))
	}

	exitCount := 0
	startCount := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			switch m.At(x, y) {
			case Exit:
				exitCount++
			case Start:
				startCount++
			}
		}
	}
	if startCount != 1 || exitCount != 1 {
		t.Errorf("marker counts: %d start, %d exit, want exactly 1 each", startCount, exitCount)
	}
}

func TestSpanningTreeNodesCarved(t *testing.T) {
	// The DFS carve must visit every odd-indexed interior cell; the shaping
	// passes only add walkable cells, never remove them.
	gen := newTestGenerator()
	m := gen.Generate(21, 21, 1, rand.New(rand.NewSource(5)))

	for y := 1; y < m.Height(); y += 2 {
		for x := 1; x < m.Width(); x += 2 {
			if m.IsWall(x, y) {
				t.Errorf("odd-indexed cell (%d,%d) is still a wall", x, y)
			}
		}
	}
}

func TestBorderStaysWalled(t *testing.T) {
	gen := newTestGenerator()
	for seed := int64(0); seed < 5; seed++ {
		m := gen.Generate(25, 19, 30, rand.New(rand.NewSource(seed)))
		for x := 0; x < m.Width(); x++ {
			if !m.IsWall(x, 0) || !m.IsWall(x, m.Height()-1) {
				t.Fatalf("seed %d: border cell in column %d carved", seed, x)
			}
		}
		for y := 0; y < m.Height(); y++ {
			if !m.IsWall(0, y) || !m.IsWall(m.Width()-1, y) {
				t.Fatalf("seed %d: border cell in row %d carved", seed, y)
			}
		}
	}
}

func TestOutOfBoundsReadsFailClosed(t *testing.T) {
	gen := newTestGenerator()
	m := gen.Generate(9, 9, 1, rand.New(rand.NewSource(3)))

	tests := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {m.Width(), 0}, {0, m.Height()}, {-5, -5}, {100, 100},
	}
	for _, tt := range tests {
		if m.At(tt.x, tt.y) != Wall {
			t.Errorf("At(%d,%d) = %v, want Wall", tt.x, tt.y, m.At(tt.x, tt.y))
		}
		if !m.IsWall(tt.x, tt.y) {
			t.Errorf("IsWall(%d,%d) = false, want true", tt.x, tt.y)
		}
	}
}
