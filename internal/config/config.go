// Package config provides YAML-based configuration loading for arka.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for values the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// ArkaConfig contains all tunable parameters of the game and its frontends.
type ArkaConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Audio     AudioConfig     `yaml:"audio"`
	Loop      LoopConfig      `yaml:"loop"`
}

// PlayfieldConfig is the logical drawing surface size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and speed per frame.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BallConfig defines the ball size and its reset state.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	StartOffsetY float64 `yaml:"start_offset_y"` // Distance of the start position above the bottom edge
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"` // Negative moves up
}

// BricksConfig defines brick geometry and grid spacing.
type BricksConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`
	OffsetTop float64 `yaml:"offset_top"`
}

// AudioConfig controls the sound engine.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MusicVolume   float64 `yaml:"music_volume"`   // 0.0 - 1.0
	EffectsVolume float64 `yaml:"effects_volume"` // 0.0 - 1.0
}

// LoopConfig controls the frame loop of the frontends.
type LoopConfig struct {
	FPS       int `yaml:"fps"`
	HoldTicks int `yaml:"hold_ticks"` // Frames a terminal key stays held without repeat
}

// Validate checks that the configuration describes a playable board.
func (c ArkaConfig) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.radius", c.Ball.Radius},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"loop.fps", float64(c.Loop.FPS)},
		{"loop.hold_ticks", float64(c.Loop.HoldTicks)},
	}
	for _, ch := range checks {
		if ch.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, ch.name, ch.val)
		}
	}

	if c.Bricks.Padding < 0 || c.Bricks.OffsetTop < 0 {
		return fmt.Errorf("%w: bricks spacing must not be negative", ErrInvalidConfig)
	}
	if c.Paddle.Width > c.Playfield.Width {
		return fmt.Errorf("%w: paddle.width %v exceeds playfield.width %v",
			ErrInvalidConfig, c.Paddle.Width, c.Playfield.Width)
	}
	if c.Ball.StartOffsetY < c.Ball.Radius || c.Ball.StartOffsetY > c.Playfield.Height {
		return fmt.Errorf("%w: ball.start_offset_y %v outside the playfield", ErrInvalidConfig, c.Ball.StartOffsetY)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.EffectsVolume < 0 || c.Audio.EffectsVolume > 1 {
		return fmt.Errorf("%w: audio volumes must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}
