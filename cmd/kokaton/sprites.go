package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kokaton/internal/assets"
	"github.com/vovakirdan/tui-kokaton/internal/config"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Validate and list the sprite catalog",
	Long: `Load the sprite catalog (embedded, or --sprites), check it against the
poses the game config needs and print a summary.

Examples:
  kokaton sprites
  kokaton sprites --sprites ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func runSprites(_ *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	catalog, source, err := assets.Load(flagSprites)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cfg.Player.NormalPose, cfg.Player.FiringPose, cfg.Player.HitPose); err != nil {
		return err
	}

	fmt.Printf("Sprite catalog: %s\n\n", source)

	type row struct{ role, glyph, color string }
	var rows []row

	poses := make([]int, 0, len(catalog.Poses))
	for n := range catalog.Poses {
		poses = append(poses, n)
	}
	sort.Ints(poses)
	for _, n := range poses {
		p := catalog.Poses[n]
		rows = append(rows, row{fmt.Sprintf("pose %d%s", n, poseRole(cfg.Player, n)), string(p.Glyph), p.Color.String()})
	}
	for _, name := range assets.FacingNames() {
		rows = append(rows, row{"facing " + name, string(catalog.Facing[name]), ""})
	}
	rows = append(rows,
		row{"hazard", string(catalog.Hazard), "(palette)"},
		row{"projectile", string(catalog.Projectile.Glyph), catalog.Projectile.Color.String()},
	)
	for i, f := range catalog.Explosion {
		rows = append(rows, row{fmt.Sprintf("explosion %d", i), string(f.Glyph), f.Color.String()})
	}
	rows = append(rows,
		row{"background", string(catalog.Background.Glyph), catalog.Background.Color.String()},
		row{"score label", fmt.Sprintf("%q", catalog.ScoreLabel), catalog.ScoreColor.String()},
	)

	// Find max role length for alignment
	maxRoleLen := len("Role")
	for _, r := range rows {
		if len(r.role) > maxRoleLen {
			maxRoleLen = len(r.role)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxRoleLen, "Role", "Glyph", "Color")
	fmt.Printf("  %-*s  %-6s  %s\n", maxRoleLen, "----", "-----", "-----")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-6s  %s\n", maxRoleLen, r.role, r.glyph, r.color)
	}
	return nil
}

// poseRole annotates the poses the game uses.
func poseRole(p config.PlayerConfig, n int) string {
	switch n {
	case p.NormalPose:
		return " (normal)"
	case p.FiringPose:
		return " (firing)"
	case p.HitPose:
		return " (hit)"
	default:
		return ""
	}
}
