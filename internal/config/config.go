// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// LabyrinthConfig contains all configuration for the Labyrinth game.
type LabyrinthConfig struct {
	Input      LabyrinthInput      `yaml:"input"`
	Movement   LabyrinthMovement   `yaml:"movement"`
	Timing     LabyrinthTiming     `yaml:"timing"`
	Difficulty LabyrinthDifficulty `yaml:"difficulty"`
}

// LabyrinthInput defines analog input shaping parameters.
type LabyrinthInput struct {
	// Deadzone is the per-axis threshold in [0, 1); values below it clamp
	// to zero, values above are rescaled to stay continuous.
	Deadzone float64 `yaml:"deadzone"`
	// Smoothing is the exponential smoothing constant k in (0, 1] applied
	// to the velocity each tick: v = v*(1-k) + target*k.
	Smoothing float64 `yaml:"smoothing"`
	// StopFriction is the per-tick velocity multiplier (<1) applied on an
	// axis when input on that axis is zero.
	StopFriction float64 `yaml:"stop_friction"`
}

// LabyrinthMovement defines the actor's speed model.
// Speeds are in pixels per second; per-tick displacement is speed * dt.
type LabyrinthMovement struct {
	BaseSpeedCoarse float64 `yaml:"base_speed_coarse"` // 4px tiles
	BaseSpeedMedium float64 `yaml:"base_speed_medium"` // 2px tiles
	BaseSpeedFine   float64 `yaml:"base_speed_fine"`   // 1px tiles
	SpeedBonusEvery int     `yaml:"speed_bonus_every"` // +1 px/s per N levels
	MaxSpeed        float64 `yaml:"max_speed"`         // hard cap
	ActorSize       int     `yaml:"actor_size"`        // collision square side, px
}

// LabyrinthTiming defines level timing.
type LabyrinthTiming struct {
	LevelTimeSecs int `yaml:"level_time_secs"` // countdown per level
	WinPauseMs    int `yaml:"win_pause_ms"`    // dwell after reaching the exit
}

// LabyrinthDifficulty tunes the maze post-processing passes.
//
// Counts follow the shape count = cells/BaseDivisor + level/LevelDivisor,
// clamped to [Min, Max]. The exact constants are tuning, not algorithm.
type LabyrinthDifficulty struct {
	ExtensionBaseDivisor  int `yaml:"extension_base_divisor"`
	ExtensionLevelDivisor int `yaml:"extension_level_divisor"`
	ExtensionMin          int `yaml:"extension_min"`
	ExtensionMax          int `yaml:"extension_max"`
	ExtensionStepMin      int `yaml:"extension_step_min"`
	ExtensionStepMax      int `yaml:"extension_step_max"`
	ExtensionStepDivisor  int `yaml:"extension_step_divisor"`
	LoopBaseDivisor       int `yaml:"loop_base_divisor"`
	LoopLevelDivisor      int `yaml:"loop_level_divisor"`
	LoopMin               int `yaml:"loop_min"`
	LoopMax               int `yaml:"loop_max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
// Higher presets skip the coarse-tile warmup levels.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 6
	case DifficultyHard:
		return 12
	default:
		return 1
	}
}
