package config

// TileSizeForLevel returns the maze tile size in pixels for a level.
// Coarse tiles early on, finer (and therefore larger) mazes as the level
// climbs. Pure and deterministic; swapping thresholds never touches the
// generation or navigation algorithms.
func TileSizeForLevel(level int) int {
	switch {
	case level <= 10:
		return 4
	case level <= 20:
		return 2
	default:
		return 1
	}
}

// MaxSpeedForLevel returns the actor's maximum speed in pixels per second
// for the given level and tile size. Coarse tiles allow faster movement;
// finer tiles favor precision. Monotonic in level, capped.
func (c LabyrinthConfig) MaxSpeedForLevel(level, tileSize int) float64 {
	base := c.Movement.BaseSpeedFine
	switch tileSize {
	case 4:
		base = c.Movement.BaseSpeedCoarse
	case 2:
		base = c.Movement.BaseSpeedMedium
	}

	every := c.Movement.SpeedBonusEvery
	if every <= 0 {
		every = 4
	}
	speed := base + float64(level/every)
	if speed > c.Movement.MaxSpeed {
		speed = c.Movement.MaxSpeed
	}
	return speed
}

// ExtensionCountForLevel returns how many dead-end extensions to attempt
// for a maze with the given cell count at the given level.
func (c LabyrinthConfig) ExtensionCountForLevel(level, cells int) int {
	d := c.Difficulty
	return clampInt(cells/nonZero(d.ExtensionBaseDivisor, 90)+level/nonZero(d.ExtensionLevelDivisor, 3),
		d.ExtensionMin, d.ExtensionMax)
}

// ExtensionMaxSteps returns the corridor length bound for one dead-end
// extension at the given level.
func (c LabyrinthConfig) ExtensionMaxSteps(level int) int {
	d := c.Difficulty
	return clampInt(d.ExtensionStepMin+level/nonZero(d.ExtensionStepDivisor, 4),
		d.ExtensionStepMin, d.ExtensionStepMax)
}

// LoopCountForLevel returns how many loop openings to attempt for a maze
// with the given cell count at the given level.
func (c LabyrinthConfig) LoopCountForLevel(level, cells int) int {
	d := c.Difficulty
	return clampInt(cells/nonZero(d.LoopBaseDivisor, 140)+level/nonZero(d.LoopLevelDivisor, 4),
		d.LoopMin, d.LoopMax)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonZero(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
