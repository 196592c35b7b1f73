package labyrinth

import (
	"math"

	"github.com/tinypanel/arcade/internal/config"
	"github.com/tinypanel/arcade/internal/core"
)

// collisionEpsilon nudges the leading edge toward the direction of travel
// before converting to a grid index, so a box resting exactly on a cell
// boundary resolves unambiguously despite float rounding.
const collisionEpsilon = 1e-4

// restThreshold is the speed in px/s below which friction snaps the
// velocity to exactly zero, so a coasting actor settles instead of decaying
// forever.
const restThreshold = 0.05

// Actor is the continuously-positioned player square. Position is the
// center of its bounding box, in pixel space local to the maze (cell (0,0)
// spans pixels [0,tile) on both axes). The box never overlaps a Wall cell
// at the end of a tick; the engine maintains that invariant.
type Actor struct {
	X, Y     float64 // center position, px
	VX, VY   float64 // velocity, px/s
	Size     int     // collision square side, px
	MaxSpeed float64 // px/s, level-scaled
}

// Half returns the actor's collision half-extent.
func (a *Actor) Half() float64 {
	return float64(a.Size) / 2
}

// PlaceAtCell centers the actor in the given grid cell and zeroes its
// velocity. Called whenever a new maze is generated.
func (a *Actor) PlaceAtCell(cell Point, tileSize int) {
	a.X = float64(cell.X*tileSize) + float64(tileSize)/2
	a.Y = float64(cell.Y*tileSize) + float64(tileSize)/2
	a.VX = 0
	a.VY = 0
}

// Engine advances an actor through a maze each tick: shapes raw input,
// smooths velocity and resolves collisions against the wall grid with
// axis-separated AABB sweeps.
//
// Tuning contract: MaxSpeed * dt must stay below the tile size, chosen as a
// design constant by the caller, so one tick's displacement can never skip
// a cell. The leading-edge check then needs no swept interpolation.
type Engine struct {
	deadzone     float64
	smoothing    float64
	stopFriction float64
}

// NewEngine creates a navigation engine from the game configuration.
func NewEngine(cfg config.LabyrinthConfig) *Engine {
	return &Engine{
		deadzone:     cfg.Input.Deadzone,
		smoothing:    cfg.Input.Smoothing,
		stopFriction: cfg.Input.StopFriction,
	}
}

// Shape turns a raw input frame into the effective movement vector.
//
// Analog axes get a per-axis deadzone with continuous rescaling (output
// runs from 0 at the deadzone edge to 1 at full deflection). If the analog
// vector is zero on both axes, the digital 4-directional actions are used
// instead. When both axes are active the smaller one is zeroed: maze
// navigation is effectively 4-directional, and off-axis drift would block
// turns in tight corridors at fine tile sizes.
func (e *Engine) Shape(in core.InputFrame) core.Vec {
	var v core.Vec
	if in.HasAxis {
		v.X = e.shapeAxis(in.Axis.X)
		v.Y = e.shapeAxis(in.Axis.Y)
	}
	if v.IsZero() {
		v = in.DigitalVec()
	}

	if v.X != 0 && v.Y != 0 {
		if math.Abs(v.X) >= math.Abs(v.Y) {
			v.Y = 0
		} else {
			v.X = 0
		}
	}
	return v
}

func (e *Engine) shapeAxis(raw float64) float64 {
	mag := math.Abs(raw)
	if mag < e.deadzone {
		return 0
	}
	scaled := (mag - e.deadzone) / (1 - e.deadzone)
	if scaled > 1 {
		scaled = 1
	}
	if raw < 0 {
		return -scaled
	}
	return scaled
}

// Step advances the actor by one tick against the maze and reports whether
// it reached the exit. shaped is the output of Shape; dt is the fixed tick
// duration in seconds.
func (e *Engine) Step(a *Actor, m *Maze, tileSize int, shaped core.Vec, dt float64) bool {
	a.VX = e.integrateAxis(a.VX, shaped.X*a.MaxSpeed)
	a.VY = e.integrateAxis(a.VY, shaped.Y*a.MaxSpeed)

	// X then Y, independently. Diagonal movement into a corner slides
	// along the wall instead of stopping dead; that falls out of the
	// separation, no special casing.
	x, blockedX := e.resolveMoveX(m, tileSize, a, a.X+a.VX*dt)
	a.X = x
	if blockedX {
		a.VX = 0
	}

	y, blockedY := e.resolveMoveY(m, tileSize, a, a.Y+a.VY*dt)
	a.Y = y
	if blockedY {
		a.VY = 0
	}

	return e.atExit(a, m, tileSize)
}

// integrateAxis smooths the velocity toward the target, or applies stop
// friction when there is no input on the axis.
func (e *Engine) integrateAxis(v, target float64) float64 {
	if target == 0 {
		v *= e.stopFriction
		if math.Abs(v) < restThreshold {
			v = 0
		}
		return v
	}
	return v*(1-e.smoothing) + target*e.smoothing
}

// resolveMoveX checks a proposed X coordinate against the grid.
//
// The leading edge of the box in the direction of travel, nudged by
// epsilon, picks the leading column. Every row the box covers on the Y
// axis (at its current, unchanged Y) is tested in that column; any Wall
// (or out-of-bounds, which reads as Wall) rejects the move and snaps the
// leading edge exactly onto the wall boundary.
func (e *Engine) resolveMoveX(m *Maze, tileSize int, a *Actor, proposed float64) (float64, bool) {
	dir := travelDir(proposed, a.X)
	if dir == 0 {
		return proposed, false
	}

	tile := float64(tileSize)
	half := a.Half()
	leading := proposed + dir*half
	col := int(math.Floor((leading + dir*collisionEpsilon) / tile))

	rowLo := int(math.Floor((a.Y - half + collisionEpsilon) / tile))
	rowHi := int(math.Floor((a.Y + half - collisionEpsilon) / tile))

	for row := rowLo; row <= rowHi; row++ {
		if m.IsWall(col, row) {
			return snapToCell(col, tile, half, dir), true
		}
	}
	return proposed, false
}

// resolveMoveY is the Y-axis counterpart of resolveMoveX: leading row,
// column span from the current X.
func (e *Engine) resolveMoveY(m *Maze, tileSize int, a *Actor, proposed float64) (float64, bool) {
	dir := travelDir(proposed, a.Y)
	if dir == 0 {
		return proposed, false
	}

	tile := float64(tileSize)
	half := a.Half()
	leading := proposed + dir*half
	row := int(math.Floor((leading + dir*collisionEpsilon) / tile))

	colLo := int(math.Floor((a.X - half + collisionEpsilon) / tile))
	colHi := int(math.Floor((a.X + half - collisionEpsilon) / tile))

	for col := colLo; col <= colHi; col++ {
		if m.IsWall(col, row) {
			return snapToCell(row, tile, half, dir), true
		}
	}
	return proposed, false
}

func travelDir(proposed, current float64) float64 {
	if proposed > current {
		return 1
	}
	if proposed < current {
		return -1
	}
	return 0
}

// snapToCell places the box center so its leading edge sits exactly on the
// near boundary of the blocking cell.
func snapToCell(cell int, tile, half, dir float64) float64 {
	if dir > 0 {
		return float64(cell)*tile - half
	}
	return float64(cell+1)*tile + half
}

// atExit reports whether the actor's center cell equals the maze exit.
// A plain equality test, run after collision resolution.
func (e *Engine) atExit(a *Actor, m *Maze, tileSize int) bool {
	cx := int(math.Floor(a.X / float64(tileSize)))
	cy := int(math.Floor(a.Y / float64(tileSize)))
	exit := m.Exit()
	return cx == exit.X && cy == exit.Y
}
