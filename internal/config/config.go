// Package config provides YAML-based game configuration loading for
// Fight Kokaton.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// KokatonConfig contains all configuration for the Fight Kokaton game.
type KokatonConfig struct {
	PlayArea   PlayArea         `yaml:"play_area"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Loop       LoopConfig       `yaml:"loop"`
}

// PlayArea defines the fixed size of the world in world units.
type PlayArea struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect returns the play area as a rectangle anchored at the origin.
func (p PlayArea) Rect() core.Rect {
	return core.NewRect(0, 0, p.Width, p.Height)
}

// PlayerConfig defines the player sprite and its start state.
type PlayerConfig struct {
	X          int `yaml:"x"` // Start center
	Y          int `yaml:"y"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Step       int `yaml:"step"` // Displacement per held direction per frame
	NormalPose int `yaml:"normal_pose"`
	FiringPose int `yaml:"firing_pose"`
	HitPose    int `yaml:"hit_pose"`
}

// HazardConfig defines how hazards are spawned and bounce.
type HazardConfig struct {
	Count     int      `yaml:"count"`
	MinRadius int      `yaml:"min_radius"`
	MaxRadius int      `yaml:"max_radius"`
	Palette   []string `yaml:"palette"`
	// PredictiveBounce checks the next position instead of the current one,
	// so hazards never overshoot the play area.
	PredictiveBounce bool `yaml:"predictive_bounce"`
}

// ProjectileConfig defines the player's projectile.
type ProjectileConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	OffsetX          int  `yaml:"offset_x"` // Spawn offset from the player center
	Speed            int  `yaml:"speed"`
	DespawnOffscreen bool `yaml:"despawn_offscreen"`
}

// ExplosionConfig defines the hazard destruction effect.
type ExplosionConfig struct {
	Life int `yaml:"life"` // Frames before removal
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FrameRate     int           `yaml:"frame_rate"`      // Frame cap for frontends with one frame per update
	FramesPerTick int           `yaml:"frames_per_tick"` // Frames simulated per terminal tick
	GameOverHold  time.Duration `yaml:"game_over_hold"`
}

// Colors resolves the hazard palette to screen colors.
func (h HazardConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(h.Palette))
	for _, name := range h.Palette {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown hazard color %q", ErrInvalid, name)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Validate checks that the configuration describes a playable game.
func (c KokatonConfig) Validate() error {
	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		return fmt.Errorf("%w: play area must be positive, got %dx%d", ErrInvalid, c.PlayArea.Width, c.PlayArea.Height)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: player step must be positive", ErrInvalid)
	}
	if !core.Inside(c.PlayArea.Rect(), core.RectAt(p.X, p.Y, p.Width, p.Height)) {
		return fmt.Errorf("%w: player start (%d, %d) does not fit the play area", ErrInvalid, p.X, p.Y)
	}

	h := c.Hazards
	if h.Count < 0 {
		return fmt.Errorf("%w: hazard count must not be negative", ErrInvalid)
	}
	if h.MinRadius <= 0 || h.MinRadius > h.MaxRadius {
		return fmt.Errorf("%w: hazard radius range [%d, %d] is empty", ErrInvalid, h.MinRadius, h.MaxRadius)
	}
	if 2*h.MaxRadius > c.PlayArea.Width || 2*h.MaxRadius > c.PlayArea.Height {
		return fmt.Errorf("%w: hazards with radius %d do not fit the play area", ErrInvalid, h.MaxRadius)
	}
	if len(h.Palette) == 0 {
		return fmt.Errorf("%w: hazard palette is empty", ErrInvalid)
	}
	if _, err := h.Colors(); err != nil {
		return err
	}

	if c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalid)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("%w: projectile speed must be positive", ErrInvalid)
	}
	if c.Explosion.Life < 0 {
		return fmt.Errorf("%w: explosion life must not be negative", ErrInvalid)
	}

	if c.Loop.FrameRate < 1 {
		return fmt.Errorf("%w: frame rate must be at least 1", ErrInvalid)
	}
	if c.Loop.FramesPerTick < 1 {
		return fmt.Errorf("%w: frames per tick must be at least 1", ErrInvalid)
	}
	if c.Loop.GameOverHold < 0 {
		return fmt.Errorf("%w: game over hold must not be negative", ErrInvalid)
	}
	return nil
}
