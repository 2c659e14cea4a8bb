package fblog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, path string, level string) {
	t.Helper()
	config := DefaultConfig()
	config.Level = level
	if err := config.Save(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func waitForMinPriority(t *testing.T, expected Priority) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if MinPriority() == expected {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("MinPriority() = %v, want %v before deadline", MinPriority(), expected)
}

func TestWatchConfigAppliesInitialConfig(t *testing.T) {
	setupCapture(t)
	path := filepath.Join(t.TempDir(), "fblog.toml")
	writeConfigFile(t, path, "error")

	watcher, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig error: %v", err)
	}
	defer watcher.Stop()

	if MinPriority() != PriorityError {
		t.Errorf("MinPriority() = %v, want %v", MinPriority(), PriorityError)
	}
}

func TestWatchConfigReloadsOnChange(t *testing.T) {
	setupCapture(t)
	path := filepath.Join(t.TempDir(), "fblog.toml")
	writeConfigFile(t, path, "info")

	watcher, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig error: %v", err)
	}
	defer watcher.Stop()

	writeConfigFile(t, path, "warn")
	waitForMinPriority(t, PriorityWarn)
}

func TestWatchConfigReportsBadReload(t *testing.T) {
	setupCapture(t)
	path := filepath.Join(t.TempDir(), "fblog.toml")
	writeConfigFile(t, path, "info")

	watcher, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig error: %v", err)
	}
	defer watcher.Stop()

	if err := os.WriteFile(path, []byte("level = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-watcher.Errors():
		if err == nil {
			t.Fatal("nil error reported")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported for broken config")
	}

	// The previous configuration stays in effect.
	if MinPriority() != PriorityInfo {
		t.Errorf("MinPriority() = %v after bad reload, want %v", MinPriority(), PriorityInfo)
	}
}

func TestWatchConfigMissingFile(t *testing.T) {
	if _, err := WatchConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("WatchConfig on a missing file did not error")
	}
}
