package config

import (
	_ "embed"
)

//go:embed defaults/arka.yaml
var defaultArkaYAML []byte

// DefaultArkaConfig returns the built-in configuration.
// It mirrors defaults/arka.yaml and is used if the embedded file cannot be parsed.
func DefaultArkaConfig() ArkaConfig {
	return ArkaConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 550,
		},
		Paddle: PaddleConfig{
			Width:  120,
			Height: 10,
			Speed:  8,
		},
		Ball: BallConfig{
			Radius:       8,
			StartOffsetY: 30,
			SpeedX:       4,
			SpeedY:       -4,
		},
		Bricks: BricksConfig{
			Width:     75,
			Height:    20,
			Padding:   10,
			OffsetTop: 30,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MusicVolume:   0.5,
			EffectsVolume: 1.0,
		},
		Loop: LoopConfig{
			FPS:       60,
			HoldTicks: 8,
		},
	}
}
