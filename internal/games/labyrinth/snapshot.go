package labyrinth

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	State       string
	TileSize    int
	MazeW       int
	MazeH       int
	ExitX       int
	ExitY       int
	ActorX      float64
	ActorY      float64
	ActorVX     float64
	ActorVY     float64
	SecondsLeft int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.winPauseTicks > 0:
		state = StateWinPause
	}

	s := Snapshot{
		Tick:        g.tick,
		Level:       g.level,
		Score:       g.score,
		State:       state,
		TileSize:    g.tileSize,
		ActorX:      g.actor.X,
		ActorY:      g.actor.Y,
		ActorVX:     g.actor.VX,
		ActorVY:     g.actor.VY,
		SecondsLeft: g.secondsLeft(),
	}
	if g.maze != nil {
		s.MazeW = g.maze.Width()
		s.MazeH = g.maze.Height()
		s.ExitX = g.maze.Exit().X
		s.ExitY = g.maze.Exit().Y
	}
	return s
}
