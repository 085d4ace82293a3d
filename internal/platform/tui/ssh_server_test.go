package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kokaton/internal/config"
)

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestSSHServerConfigReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kokaton.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		ConfigPath:  path,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if got := srv.GameConfig().Hazards.Count; got != 5 {
		t.Fatalf("initial hazard count = %d, expected 5", got)
	}

	if err := os.WriteFile(path, []byte("hazards:\n  count: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return srv.GameConfig().Hazards.Count == 2 }) {
		t.Fatal("valid config change was not picked up")
	}

	if err := os.WriteFile(path, []byte("hazards:\n  count: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)
	if got := srv.GameConfig().Hazards.Count; got != 2 {
		t.Errorf("invalid config must be ignored, hazard count = %d", got)
	}
}

func TestNewSSHServerBadConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		ConfigPath:  filepath.Join(dir, "missing.yaml"),
	}, log.New(io.Discard))
	if err == nil {
		t.Fatal("a missing custom config should fail startup")
	}
}
