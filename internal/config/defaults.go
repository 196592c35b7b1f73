package config

import (
	_ "embed"
)

//go:embed defaults/labyrinth.yaml
var defaultLabyrinthYAML []byte

// DefaultLabyrinthConfig returns the default Labyrinth configuration.
// Kept in sync with defaults/labyrinth.yaml as a fallback if the embedded
// file fails to parse.
func DefaultLabyrinthConfig() LabyrinthConfig {
	return LabyrinthConfig{
		Input: LabyrinthInput{
			Deadzone:     0.18,
			Smoothing:    0.22,
			StopFriction: 0.85,
		},
		Movement: LabyrinthMovement{
			BaseSpeedCoarse: 34.0,
			BaseSpeedMedium: 28.0,
			BaseSpeedFine:   22.0,
			SpeedBonusEvery: 4,
			MaxSpeed:        42.0,
			ActorSize:       2,
		},
		Timing: LabyrinthTiming{
			LevelTimeSecs: 60,
			WinPauseMs:    800,
		},
		Difficulty: LabyrinthDifficulty{
			ExtensionBaseDivisor:  90,
			ExtensionLevelDivisor: 3,
			ExtensionMin:          4,
			ExtensionMax:          60,
			ExtensionStepMin:      4,
			ExtensionStepMax:      10,
			ExtensionStepDivisor:  4,
			LoopBaseDivisor:       140,
			LoopLevelDivisor:      4,
			LoopMin:               2,
			LoopMax:               40,
		},
	}
}
