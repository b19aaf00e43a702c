package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"octavia-hq/vela/pkg/compile"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

const addDescriptor = `
namespace: ring
name: add
version: "1"
params:
  operand: 10
`

const twoDocs = `
namespace: ring
name: factor
version: "1"
params:
  seed: 35
---
namespace: transform
name: rotate
version: "2"
params:
  power: 2
backend: permutation
`

func TestFileSource_LoadSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	writeFile(t, path, twoDocs)

	got, err := NewFileSource(path, discardLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d descriptors, want 2", len(got))
	}
	if got[0].Operation() != "ring.factor" || got[1].Operation() != "transform.rotate" {
		t.Errorf("operations = %s, %s", got[0].Operation(), got[1].Operation())
	}
	if got[1].BackendHint != compile.HintPermutation {
		t.Errorf("backend hint = %q, want permutation", got[1].BackendHint)
	}
	if seed, ok := got[0].Params["seed"].(int); !ok || seed != 35 {
		t.Errorf("seed param = %v", got[0].Params["seed"])
	}
}

func TestFileSource_LoadDirectorySkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), addDescriptor)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "namespace: [")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "not yaml")
	writeFile(t, filepath.Join(dir, ".hidden.yaml"), addDescriptor)

	got, err := NewFileSource(dir, discardLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Operation() != "ring.add" {
		t.Fatalf("loaded %v, want just ring.add", got)
	}
}

func TestFileSource_LoadRejectsInvalidDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	writeFile(t, path, "namespace: ring\nname: add\n") // missing version

	if _, err := NewFileSource(path, discardLogger()).Load(context.Background()); err == nil {
		t.Error("Load accepted a descriptor without a version")
	}
}

func TestFileSource_WatchEmitsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	writeFile(t, path, addDescriptor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := NewFileSource(dir, discardLogger())
	src.debounce = 10 * time.Millisecond
	events, err := src.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	writeFile(t, path, twoDocs)

	select {
	case ev := <-events:
		if ev.Err != nil {
			t.Fatalf("reload event carries error: %v", ev.Err)
		}
		if len(ev.Descriptors) != 2 {
			t.Errorf("reload yielded %d descriptors, want 2", len(ev.Descriptors))
		}
		if ev.ID == uuid.Nil {
			t.Error("reload event has zero ID")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event after file change")
	}

	cancel()
	select {
	case _, ok := <-events:
		if ok {
			// A second debounced reload may race cancellation; drain it.
			if _, ok = <-events; ok {
				t.Error("event channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}
}

func TestMemorySource(t *testing.T) {
	descs := []compile.Descriptor{
		{Namespace: "ring", Name: "add", Version: "1"},
	}
	src := NewMemorySource(descs)

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Operation() != "ring.add" {
		t.Fatalf("Load = %v", got)
	}
	// The returned slice is a copy.
	got[0].Name = "mul"
	again, _ := src.Load(context.Background())
	if again[0].Name != "add" {
		t.Error("Load result aliases internal state")
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := src.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	cancel()
	if _, ok := <-events; ok {
		t.Error("memory source emitted an event")
	}
}
