package labyrinth

import (
	"strings"
	"testing"

	"github.com/tinypanel/arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

// scriptedFrame produces a repeatable input for a tick index.
func scriptedFrame(i int) core.InputFrame {
	f := core.NewInputFrame()
	switch i % 7 {
	case 0, 1:
		f.Set(core.ActionRight)
	case 2:
		f.Set(core.ActionDown)
	case 3:
		f.SetAxis(0.8, 0.1)
	case 4:
		f.SetAxis(-0.3, -0.9)
	case 5:
		f.Set(core.ActionUp)
	}
	return f
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(42)
	g2 := newTestGame(42)

	if g1.Snapshot() != g2.Snapshot() {
		t.Fatalf("initial snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}

	for i := 0; i < 500; i++ {
		g1.Step(scriptedFrame(i))
		g2.Step(scriptedFrame(i))
		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestDifferentSeedsDifferentMazes(t *testing.T) {
	g1 := newTestGame(1)
	g2 := newTestGame(2)

	same := true
	for y := 0; y < g1.maze.Height() && same; y++ {
		for x := 0; x < g1.maze.Width(); x++ {
			if g1.maze.At(x, y) != g2.maze.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical mazes")
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(7)
	s := g.Snapshot()

	if s.State != StatePlaying {
		t.Errorf("state = %q, want %q", s.State, StatePlaying)
	}
	if s.Level != 1 || s.Score != 0 {
		t.Errorf("level=%d score=%d, want 1 and 0", s.Level, s.Score)
	}
	if s.TileSize != 4 {
		t.Errorf("tile size = %d for level 1 on 120x40, want 4", s.TileSize)
	}
	if s.SecondsLeft != 60 {
		t.Errorf("clock starts at %d, want 60", s.SecondsLeft)
	}
	if s.MazeW%2 == 0 || s.MazeH%2 == 0 || s.MazeW < 7 || s.MazeH < 7 {
		t.Errorf("maze %dx%d is not odd and >= 7", s.MazeW, s.MazeH)
	}

	// Actor starts centered in the start cell.
	start := g.maze.Start()
	wantX := float64(start.X*g.tileSize) + float64(g.tileSize)/2
	wantY := float64(start.Y*g.tileSize) + float64(g.tileSize)/2
	if g.actor.X != wantX || g.actor.Y != wantY {
		t.Errorf("actor at (%v, %v), want start cell center (%v, %v)",
			g.actor.X, g.actor.Y, wantX, wantY)
	}
}

// clearLevel puts the actor on the exit cell and ticks once so the win
// detection fires.
func clearLevel(g *Game) {
	g.actor.PlaceAtCell(g.maze.Exit(), g.tileSize)
	g.actor.VX, g.actor.VY = 0, 0
	g.Step(core.NewInputFrame())
}

func TestWinPauseAndLevelAdvance(t *testing.T) {
	g := newTestGame(11)
	oldMaze := g.maze

	clearLevel(g)

	s := g.Snapshot()
	if s.State != StateWinPause {
		t.Fatalf("state after reaching exit = %q, want %q", s.State, StateWinPause)
	}
	// Award is 10 plus remaining seconds, clock still nearly full.
	if s.Score < 10+55 || s.Score > 10+60 {
		t.Errorf("score after first clear = %d, want 10 + remaining seconds", s.Score)
	}
	if s.Level != 1 {
		t.Errorf("level advanced during pause: %d", s.Level)
	}

	// Movement input during the dwell must not move the actor.
	frozen := g.actor
	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	g.Step(f)
	if g.actor != frozen {
		t.Error("actor moved during win pause")
	}

	// Run the dwell out: 800ms at 60Hz is 48 ticks, one already consumed.
	for i := 0; i < 60 && g.Snapshot().State == StateWinPause; i++ {
		g.Step(core.NewInputFrame())
	}

	s = g.Snapshot()
	if s.State != StatePlaying {
		t.Fatalf("state after dwell = %q, want %q", s.State, StatePlaying)
	}
	if s.Level != 2 {
		t.Errorf("level = %d after dwell, want 2", s.Level)
	}
	if s.SecondsLeft != 60 {
		t.Errorf("clock not reset for new level: %d", s.SecondsLeft)
	}
	if g.maze == oldMaze {
		t.Error("maze was not regenerated")
	}
	start := g.maze.Start()
	wantX := float64(start.X*g.tileSize) + float64(g.tileSize)/2
	if g.actor.X != wantX {
		t.Errorf("actor x = %v after advance, want new start center %v", g.actor.X, wantX)
	}
}

func TestTileSizeDropsPastLevelTen(t *testing.T) {
	g := newTestGame(3)

	// Clear levels 1 through 10; level 11 switches to 2px tiles and the
	// maze regenerates at the finer grid.
	for g.level <= 10 {
		if g.tileSize != 4 {
			t.Fatalf("level %d: tile size %d, want 4", g.level, g.tileSize)
		}
		clearLevel(g)
		for g.winPauseTicks > 0 {
			g.Step(core.NewInputFrame())
		}
	}

	if g.level != 11 {
		t.Fatalf("level = %d, want 11", g.level)
	}
	if g.tileSize != 2 {
		t.Errorf("tile size at level 11 = %d, want 2", g.tileSize)
	}
	if g.maze.Width() < 40 {
		t.Errorf("maze width %d at 2px tiles, expected a denser grid", g.maze.Width())
	}
	start := g.maze.Start()
	wantX := float64(start.X*2) + 1
	if g.actor.X != wantX {
		t.Errorf("actor not repositioned on new grid: x=%v, want %v", g.actor.X, wantX)
	}
	if g.actor.Size > g.tileSize {
		t.Errorf("actor size %d exceeds tile size %d", g.actor.Size, g.tileSize)
	}
}

func TestTimerRunsOut(t *testing.T) {
	g := newTestGame(5)
	g.ticksLeft = 3

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	s := g.Snapshot()
	if s.State != StateGameOver {
		t.Fatalf("state = %q after clock expiry, want %q", s.State, StateGameOver)
	}
	if !g.State().GameOver {
		t.Error("GameState.GameOver not set")
	}

	// Further ticks are inert.
	before := g.Snapshot()
	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	g.Step(f)
	after := g.Snapshot()
	before.Tick, after.Tick = 0, 0
	if before != after {
		t.Error("game advanced after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(5)
	g.score = 123
	g.ticksLeft = 1
	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	f := core.NewInputFrame()
	f.Set(core.ActionRestart)
	g.Step(f)

	s := g.Snapshot()
	if s.State != StatePlaying || s.Score != 0 || s.Level != 1 {
		t.Errorf("after restart: %+v, want playing at level 1 with score 0", s)
	}
	if s.SecondsLeft != 60 {
		t.Errorf("clock after restart = %d, want 60", s.SecondsLeft)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(9)

	f := core.NewInputFrame()
	f.Set(core.ActionPause)
	g.Step(f)
	if g.Snapshot().State != StatePaused {
		t.Fatal("pause did not engage")
	}

	// Clock frozen while paused.
	before := g.ticksLeft
	g.Step(core.NewInputFrame())
	if g.ticksLeft != before {
		t.Error("clock advanced while paused")
	}

	g.Step(f)
	if g.Snapshot().State != StatePlaying {
		t.Error("pause did not release")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 6, ScreenH: 8, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StateTooSmall {
		t.Fatalf("state = %q on 6x8 screen, want %q", g.Snapshot().State, StateTooSmall)
	}

	// Stepping and rendering must be safe without a maze.
	g.Step(core.NewInputFrame())
	scr := core.NewScreen(6, 8)
	g.Render(scr)
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(13)
	scr := core.NewScreen(120, 40)
	g.Render(scr)

	out := scr.String()
	if len(out) == 0 {
		t.Fatal("empty render")
	}

	// HUD row carries the title, level and clock.
	row := scr.Row(0)
	for _, want := range []string{"LABYRINTH", "L:1", "T:60"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row missing %q: %q", want, row)
		}
	}

	// Exit cell painted with the exit glyph.
	exit := g.maze.Exit()
	ex := g.originX + exit.X*g.tileSize
	ey := g.originY + exit.Y*g.tileSize
	if got := scr.Get(ex, ey); got != ExitChar {
		t.Errorf("exit cell glyph = %q, want %q", got, ExitChar)
	}

	// Actor painted at its cell.
	ax := g.originX + int(g.actor.X-g.actor.Half())
	ay := g.originY + int(g.actor.Y-g.actor.Half())
	if got := scr.Get(ax, ay); got != ActorChar {
		t.Errorf("actor cell glyph = %q, want %q", got, ActorChar)
	}
}
