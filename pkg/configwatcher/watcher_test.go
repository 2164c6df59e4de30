package configwatcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
	"wellnessa_backend/internal/config"
)

const body = `
jwt:
  secret: watcher-secret
database:
  driver: sqlite
storage:
  local_path: %s
log:
  level: %s
`

func write(t *testing.T, path, level string) {
	t.Helper()
	content := []byte(fmt.Sprintf(body, filepath.Join(filepath.Dir(path), "uploads"), level))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	write(t, path, "info")

	reloaded := make(chan *config.Config, 1)
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- Watch(path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		}, stop)
	}()

	// give the watcher a moment to register
	time.Sleep(200 * time.Millisecond)
	write(t, path, "warn")

	select {
	case cfg := <-reloaded:
		if cfg.Log.Level != "warn" {
			t.Fatalf("expected reloaded level warn, got %q", cfg.Log.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("config was not reloaded")
	}

	close(stop)
	if err := <-done; err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
}
