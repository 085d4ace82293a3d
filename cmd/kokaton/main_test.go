package main

import (
	"testing"

	"github.com/vovakirdan/tui-kokaton/internal/config"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr, want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}

func TestPoseRole(t *testing.T) {
	p := config.DefaultKokatonConfig().Player
	tests := map[int]string{
		p.NormalPose: " (normal)",
		p.FiringPose: " (firing)",
		p.HitPose:    " (hit)",
		99:           "",
	}
	for n, want := range tests {
		if got := poseRole(p, n); got != want {
			t.Errorf("poseRole(%d) = %q, expected %q", n, got, want)
		}
	}
}
