package reload

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/afkctl/afk/pkg/config"
)

// reasonRecorder collects the reasons passed to onReload.
type reasonRecorder struct {
	mu      sync.Mutex
	reasons []string
}

func (r *reasonRecorder) record(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, cfg.Reason)
}

func (r *reasonRecorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reasons...)
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Watch(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-errCh
	})

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)
}

func TestWatcher_DirectWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	var rec reasonRecorder
	watcher := NewWatcher(configPath, rec.record)
	watcher.SetDebounce(50 * time.Millisecond)
	startWatcher(t, watcher)

	writeConfig(t, configPath, "reason: meeting\n")

	// Wait for debounce + processing
	time.Sleep(200 * time.Millisecond)

	got := rec.get()
	if len(got) != 1 || got[0] != "meeting" {
		t.Errorf("expected one reload with reason 'meeting', got %v", got)
	}
}

func TestWatcher_AtomicSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	var rec reasonRecorder
	watcher := NewWatcher(configPath, rec.record)
	watcher.SetDebounce(50 * time.Millisecond)
	startWatcher(t, watcher)

	// Simulate atomic save (write to temp, rename)
	tmpPath := filepath.Join(tmpDir, "afk.yaml.tmp")
	writeConfig(t, tmpPath, "reason: coffee\n")
	if err := os.Rename(tmpPath, configPath); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)

	got := rec.get()
	if len(got) < 1 || got[len(got)-1] != "coffee" {
		t.Errorf("expected reload with reason 'coffee' for atomic save, got %v", got)
	}
}

func TestWatcher_MultipleWritesDebounced(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "afk.yaml")
	writeConfig(t, configPath, "reason: a\n")

	var calls atomic.Int32
	watcher := NewWatcher(configPath, func(*config.Config) {
		calls.Add(1)
	})
	watcher.SetDebounce(100 * time.Millisecond)
	startWatcher(t, watcher)

	// Multiple rapid writes should be debounced to one call
	for i := 0; i < 5; i++ {
		writeConfig(t, configPath, "reason: r"+string(rune('a'+i))+"\n")
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)

	if calls.Load() != 1 {
		t.Errorf("expected rapid writes to be debounced to 1 call, got %d", calls.Load())
	}
}

func TestWatcher_InvalidConfigIgnored(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	var calls atomic.Int32
	watcher := NewWatcher(configPath, func(*config.Config) {
		calls.Add(1)
	})
	watcher.SetDebounce(50 * time.Millisecond)
	startWatcher(t, watcher)

	writeConfig(t, configPath, "speed: warp\n")
	time.Sleep(200 * time.Millisecond)

	if calls.Load() != 0 {
		t.Errorf("expected invalid config to be skipped, got %d calls", calls.Load())
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	var calls atomic.Int32
	watcher := NewWatcher(configPath, func(*config.Config) {
		calls.Add(1)
	})
	watcher.SetDebounce(50 * time.Millisecond)
	startWatcher(t, watcher)

	writeConfig(t, filepath.Join(tmpDir, "other.yaml"), "reason: nope\n")
	time.Sleep(200 * time.Millisecond)

	if calls.Load() != 0 {
		t.Errorf("expected unrelated file to be ignored, got %d calls", calls.Load())
	}
}

func TestReasons_StreamsLatest(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	ctx, cancel := context.WithCancel(context.Background())
	reasons := Reasons(ctx, configPath, nil)

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, configPath, "reason: back soon\n")

	select {
	case got := <-reasons:
		if got != "back soon" {
			t.Errorf("expected reason 'back soon', got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reason")
	}

	cancel()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-reasons:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for close")
		}
	}
}

func TestWatcher_UnchangedConfigSkipped(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "afk.yaml")
	writeConfig(t, configPath, "reason: lunch\n")

	var calls atomic.Int32
	watcher := NewWatcher(configPath, func(*config.Config) {
		calls.Add(1)
	})
	watcher.SetDebounce(50 * time.Millisecond)
	startWatcher(t, watcher)

	// Same content with a comment added
	writeConfig(t, configPath, "# still out\nreason: lunch\n")
	time.Sleep(200 * time.Millisecond)

	if calls.Load() != 0 {
		t.Errorf("expected unchanged config to be skipped, got %d calls", calls.Load())
	}
}
