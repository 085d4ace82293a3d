// Package assets loads the sprite catalog used to draw game entities.
// Sprites are opaque to the game logic: it refers to them by pose number or
// role, and the frontends decide how to draw them.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// ErrMissingSprite is returned (wrapped) when the catalog lacks a sprite the game needs.
var ErrMissingSprite = errors.New("missing sprite")

// SourceEmbedded is reported by Load when the embedded catalog was used.
const SourceEmbedded = "embedded"

// facingNames maps unit direction vectors to catalog keys.
var facingNames = map[[2]int]string{
	{1, 0}:   "right",
	{1, -1}:  "up_right",
	{0, -1}:  "up",
	{-1, -1}: "up_left",
	{-1, 0}:  "left",
	{-1, 1}:  "down_left",
	{0, 1}:   "down",
	{1, 1}:   "down_right",
}

// Sprite is a single drawable: one glyph in one color.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Catalog holds every sprite the game draws.
type Catalog struct {
	Background        Sprite
	BackgroundSpacing int
	ScoreLabel        string
	ScoreColor        core.Color
	Poses             map[int]Sprite
	Facing            map[string]rune
	Hazard            rune
	Projectile        Sprite
	Explosion         []Sprite
}

type rawSprite struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type rawCatalog struct {
	Background struct {
		Glyph   string `yaml:"glyph"`
		Spacing int    `yaml:"spacing"`
		Color   string `yaml:"color"`
	} `yaml:"background"`
	Score struct {
		Label string `yaml:"label"`
		Color string `yaml:"color"`
	} `yaml:"score"`
	Player struct {
		Poses  map[int]rawSprite `yaml:"poses"`
		Facing map[string]string `yaml:"facing"`
	} `yaml:"player"`
	Hazard     rawSprite `yaml:"hazard"`
	Projectile rawSprite `yaml:"projectile"`
	Explosion  struct {
		Color  string   `yaml:"color"`
		Frames []string `yaml:"frames"`
	} `yaml:"explosion"`
}

// Load reads a sprite catalog from path, or the embedded default when path
// is empty. The returned string names the source for logging.
func Load(path string) (*Catalog, string, error) {
	if path == "" {
		c, err := Parse(defaultSpritesYAML)
		return c, SourceEmbedded, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("assets: failed to read sprites %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("assets: sprites %s: %w", path, err)
	}
	return c, path, nil
}

// Parse decodes a YAML sprite catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sprites: %w", err)
	}

	c := &Catalog{
		BackgroundSpacing: raw.Background.Spacing,
		ScoreLabel:        raw.Score.Label,
		Poses:             make(map[int]Sprite, len(raw.Player.Poses)),
		Facing:            make(map[string]rune, len(raw.Player.Facing)),
	}

	var err error
	if raw.Background.Glyph != "" {
		if c.Background, err = toSprite("background", rawSprite{Glyph: raw.Background.Glyph, Color: raw.Background.Color}); err != nil {
			return nil, err
		}
	}
	if c.ScoreColor, err = toColor("score", raw.Score.Color); err != nil {
		return nil, err
	}
	for num, rs := range raw.Player.Poses {
		s, err := toSprite(fmt.Sprintf("pose %d", num), rs)
		if err != nil {
			return nil, err
		}
		c.Poses[num] = s
	}
	for name, glyph := range raw.Player.Facing {
		r, err := toGlyph("facing "+name, glyph)
		if err != nil {
			return nil, err
		}
		c.Facing[name] = r
	}
	if raw.Hazard.Glyph != "" {
		if c.Hazard, err = toGlyph("hazard", raw.Hazard.Glyph); err != nil {
			return nil, err
		}
	}
	if raw.Projectile.Glyph != "" {
		if c.Projectile, err = toSprite("projectile", raw.Projectile); err != nil {
			return nil, err
		}
	}
	for i, frame := range raw.Explosion.Frames {
		s, err := toSprite(fmt.Sprintf("explosion frame %d", i), rawSprite{Glyph: frame, Color: raw.Explosion.Color})
		if err != nil {
			return nil, err
		}
		c.Explosion = append(c.Explosion, s)
	}
	return c, nil
}

// Validate checks that every sprite the game can ask for is present.
// poses lists the player pose numbers in use.
func (c *Catalog) Validate(poses ...int) error {
	for _, num := range poses {
		if _, ok := c.Poses[num]; !ok {
			return fmt.Errorf("%w: player pose %d", ErrMissingSprite, num)
		}
	}
	for _, name := range FacingNames() {
		if _, ok := c.Facing[name]; !ok {
			return fmt.Errorf("%w: player facing %q", ErrMissingSprite, name)
		}
	}
	if c.Hazard == 0 {
		return fmt.Errorf("%w: hazard", ErrMissingSprite)
	}
	if c.Projectile.Glyph == 0 {
		return fmt.Errorf("%w: projectile", ErrMissingSprite)
	}
	if len(c.Explosion) == 0 {
		return fmt.Errorf("%w: explosion frames", ErrMissingSprite)
	}
	return nil
}

// Pose returns the sprite for a player pose number.
func (c *Catalog) Pose(num int) (Sprite, bool) {
	s, ok := c.Poses[num]
	return s, ok
}

// FacingGlyph returns the glyph marking the direction (dx, dy).
func (c *Catalog) FacingGlyph(dx, dy int) (rune, bool) {
	name, ok := facingNames[[2]int{dx, dy}]
	if !ok {
		return 0, false
	}
	r, ok := c.Facing[name]
	return r, ok
}

// ExplosionFrame picks the frame for an explosion with the given remaining
// life out of total. Frames advance as life runs out.
func (c *Catalog) ExplosionFrame(life, total int) Sprite {
	if len(c.Explosion) == 0 {
		return Sprite{Glyph: '*'}
	}
	if total <= 0 || life > total {
		return c.Explosion[0]
	}
	elapsed := total - life
	idx := elapsed * len(c.Explosion) / (total + 1)
	return c.Explosion[core.Min(idx, len(c.Explosion)-1)]
}

// FacingNames returns the eight facing keys in sorted order.
func FacingNames() []string {
	names := make([]string, 0, len(facingNames))
	for _, n := range facingNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func toSprite(what string, rs rawSprite) (Sprite, error) {
	r, err := toGlyph(what, rs.Glyph)
	if err != nil {
		return Sprite{}, err
	}
	c, err := toColor(what, rs.Color)
	if err != nil {
		return Sprite{}, err
	}
	return Sprite{Glyph: r, Color: c}, nil
}

func toGlyph(what, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s: glyph %q must be a single character", what, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func toColor(what, name string) (core.Color, error) {
	if name == "" {
		return core.ColorDefault, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("%s: unknown color %q", what, name)
	}
	return c, nil
}
