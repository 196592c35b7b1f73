package labyrinth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tinypanel/arcade/internal/config"
	"github.com/tinypanel/arcade/internal/core"
	"github.com/tinypanel/arcade/internal/registry"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	ExitChar   = '▒'
	ActorChar  = '█'
	HUDDivider = '─'
)

// hudHeight is the HUD band at the top of the screen, in rows.
const hudHeight = 2

// Game states
const (
	StatePlaying  = "playing"   // Actor navigating the maze
	StateWinPause = "win_pause" // Exit reached, brief dwell before next level
	StateGameOver = "gameover"  // Timer ran out
	StatePaused   = "paused"    // Game paused
	StateTooSmall = "too_small" // Terminal cannot fit a 7x7 maze
)

// Package-level variables for config/difficulty set via CLI before creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game implements the Labyrinth game: per level a fresh procedurally
// generated maze, a continuously moving actor, a 60 second clock and a
// score of 10 plus the remaining seconds for every cleared maze.
type Game struct {
	cfg config.LabyrinthConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	gen    *Generator
	engine *Engine

	maze     *Maze
	actor    Actor
	tileSize int

	level int
	score int
	tick  uint64

	// Level clock, in ticks.
	ticksLeft int

	// Win pause countdown, in ticks. Nonzero means the dwell is active.
	winPauseTicks int
	lastAward     int // score awarded for the most recent clear, for display

	// Screen layout: maze pixels are drawn one terminal cell each, centered
	// below the HUD band.
	playW, playH     int
	originX, originY int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new Labyrinth game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("labyrinth", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "labyrinth"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Labyrinth"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadLabyrinth(configPath)
	if err != nil {
		cfg = config.DefaultLabyrinthConfig()
	}

	g.cfg = cfg
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.gen = NewGenerator(cfg)
	g.engine = NewEngine(cfg)

	g.tick = 0
	g.score = 0
	g.level = config.StartLevelForPreset(difficultyPreset)
	g.gameOver = false
	g.paused = false
	g.winPauseTicks = 0
	g.lastAward = 0

	g.playW = rt.ScreenW
	g.playH = rt.ScreenH - hudHeight

	g.startLevel()
}

// startLevel generates a maze for the current level and places the actor
// at its start. Generation only runs on level transitions, never mid-level.
func (g *Game) startLevel() {
	tile := g.fitTileSize(config.TileSizeForLevel(g.level))
	if tile == 0 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.tileSize = tile

	g.maze = g.gen.Generate(g.playW/tile, g.playH/tile, g.level, g.rng)

	// Center the maze inside the playfield below the HUD.
	mazePxW := g.maze.Width() * tile
	mazePxH := g.maze.Height() * tile
	g.originX = (g.playW - mazePxW) / 2
	g.originY = hudHeight + (g.playH-mazePxH)/2

	size := g.cfg.Movement.ActorSize
	if size > tile {
		size = tile
	}
	if size < 1 {
		size = 1
	}
	g.actor.Size = size
	g.actor.MaxSpeed = g.speedForLevel(tile)
	g.actor.PlaceAtCell(g.maze.Start(), tile)

	g.ticksLeft = g.cfg.Timing.LevelTimeSecs * g.tickRate()
}

// fitTileSize reduces the desired tile size until a 7x7 maze fits the
// playfield, halving 4 -> 2 -> 1. Returns 0 when even 1px tiles do not fit.
func (g *Game) fitTileSize(desired int) int {
	for tile := desired; tile >= 1; tile /= 2 {
		if g.playW/tile >= 7 && g.playH/tile >= 7 {
			return tile
		}
	}
	return 0
}

// speedForLevel applies the difficulty table, then enforces the
// no-tunneling design constraint: one tick's displacement must stay under
// the tile size.
func (g *Game) speedForLevel(tile int) float64 {
	speed := g.cfg.MaxSpeedForLevel(g.level, tile)
	limit := 0.9 * float64(tile) * float64(g.tickRate())
	if speed > limit {
		speed = limit
	}
	return speed
}

func (g *Game) tickRate() int {
	if g.rt.TickRate <= 0 {
		return 60
	}
	return g.rt.TickRate
}

// secondsLeft returns the level clock rounded up, so the display starts at
// the full level time and partial seconds still count.
func (g *Game) secondsLeft() int {
	rate := g.tickRate()
	return (g.ticksLeft + rate - 1) / rate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.rt.ScreenW,
			ScreenH:  g.rt.ScreenH,
			TickRate: g.rt.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Win pause: the engine is not ticked, the last frame persists for
	// display. When the dwell ends, the next level regenerates.
	if g.winPauseTicks > 0 {
		g.winPauseTicks--
		if g.winPauseTicks == 0 {
			g.level++
			g.startLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	shaped := g.engine.Shape(in)
	if g.engine.Step(&g.actor, g.maze, g.tileSize, shaped, g.rt.Dt()) {
		g.lastAward = 10 + g.secondsLeft()
		g.score += g.lastAward
		g.winPauseTicks = g.cfg.Timing.WinPauseMs * g.tickRate() / 1000
		if g.winPauseTicks < 1 {
			g.winPauseTicks = 1
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small for Labyrinth", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize the terminal (needs at least 7x9)")
		return
	}

	g.renderHUD(dst)

	if g.gameOver {
		mid := dst.Height() / 2
		dst.DrawTextCenteredColored(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d   Level: %d", g.score, g.level))
		dst.DrawTextCenteredColored(mid+2, "Press R to restart, Q to quit", core.ColorGray)
		return
	}

	g.renderMaze(dst)
	g.renderActor(dst)

	if g.winPauseTicks > 0 {
		mid := g.originY + (g.maze.Height()*g.tileSize)/2
		dst.DrawTextCenteredColored(mid-1, "COMPLETED", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("+%d", g.lastAward), core.ColorBrightYellow)
	}

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("LABYRINTH  L:%d", g.level), core.ColorBrightCyan)
	score := fmt.Sprintf("S:%d", g.score)
	dst.DrawTextColored(dst.Width()/2-len(score)/2, 0, score, core.ColorBrightYellow)
	if !g.gameOver {
		timer := fmt.Sprintf("T:%d", g.secondsLeft())
		dst.DrawTextColored(dst.Width()-len(timer)-1, 0, timer, core.ColorCyan)
	}
	dst.DrawHLine(0, hudHeight-1, dst.Width(), HUDDivider)
}

func (g *Game) renderMaze(dst *core.Screen) {
	tile := g.tileSize
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			kind := g.maze.At(x, y)
			if kind == Path || kind == Start {
				continue
			}
			ch := WallChar
			color := core.ColorBlue
			if kind == Exit {
				ch = ExitChar
				color = core.ColorBrightGreen
			}
			for py := 0; py < tile; py++ {
				for px := 0; px < tile; px++ {
					dst.SetColored(g.originX+x*tile+px, g.originY+y*tile+py, ch, color)
				}
			}
		}
	}
}

func (g *Game) renderActor(dst *core.Screen) {
	half := g.actor.Half()
	x0 := g.originX + int(math.Floor(g.actor.X-half))
	y0 := g.originY + int(math.Floor(g.actor.Y-half))
	for py := 0; py < g.actor.Size; py++ {
		for px := 0; px < g.actor.Size; px++ {
			dst.SetColored(x0+px, y0+py, ActorChar, core.ColorBrightYellow)
		}
	}
}
