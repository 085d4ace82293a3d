package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default Fight Kokaton configuration.
// It mirrors defaults/kokaton.yaml and is used when the embedded file fails to parse.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		PlayArea: PlayArea{
			Width:  1600,
			Height: 900,
		},
		Player: PlayerConfig{
			X:          900,
			Y:          400,
			Width:      100,
			Height:     100,
			Step:       1,
			NormalPose: 3,
			FiringPose: 6,
			HitPose:    8,
		},
		Hazards: HazardConfig{
			Count:     5,
			MinRadius: 10,
			MaxRadius: 50,
			Palette:   []string{"red", "green", "blue"},
		},
		Projectile: ProjectileConfig{
			Width:            60,
			Height:           20,
			OffsetX:          10,
			Speed:            1,
			DespawnOffscreen: true,
		},
		Explosion: ExplosionConfig{
			Life: 40,
		},
		Loop: LoopConfig{
			FrameRate:     500,
			FramesPerTick: 8,
			GameOverHold:  time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKokatonYAML
}
