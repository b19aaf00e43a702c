package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"octavia-hq/vela/pkg/compile"
)

// FileSource loads descriptors from a YAML file or a directory of YAML
// files. Directory loads skip files that fail to parse with a warning;
// a single-file load fails hard.
type FileSource struct {
	path     string
	logger   *slog.Logger
	debounce time.Duration
}

// NewFileSource creates a file-based descriptor source. The path can be a
// single file or a directory; in a directory every .yaml and .yml file is
// loaded in name order.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:     path,
		logger:   logger,
		debounce: 100 * time.Millisecond,
	}
}

// Load reads the full descriptor set from disk.
func (s *FileSource) Load(ctx context.Context) ([]compile.Descriptor, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %q: %w", s.path, err)
	}

	var descriptors []compile.Descriptor
	if info.IsDir() {
		descriptors, err = s.loadDirectory()
	} else {
		descriptors, err = s.loadFile(s.path)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("loaded descriptor catalog",
		"path", s.path,
		"descriptor_count", len(descriptors),
	)
	return descriptors, nil
}

func (s *FileSource) loadDirectory() ([]compile.Descriptor, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", s.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var descriptors []compile.Descriptor
	for _, name := range names {
		path := filepath.Join(s.path, name)
		loaded, err := s.loadFile(path)
		if err != nil {
			s.logger.Warn("failed to load descriptor file, skipping",
				"path", path,
				"error", err,
			)
			continue
		}
		descriptors = append(descriptors, loaded...)
	}
	return descriptors, nil
}

// loadFile parses one YAML file, which may hold multiple documents.
func (s *FileSource) loadFile(path string) ([]compile.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	var descriptors []compile.Descriptor
	dec := yaml.NewDecoder(f)
	for {
		var d compile.Descriptor
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to parse descriptor file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid descriptor in %q: %w", path, err)
		}
		descriptors = append(descriptors, d)

		s.logger.Debug("loaded descriptor",
			"path", path,
			"operation", d.FullName(),
		)
	}
	return descriptors, nil
}

// Watch emits a reload event whenever a YAML file under the path changes.
// Bursts of file events within the debounce window collapse into one reload.
// The channel is closed when ctx is cancelled.
func (s *FileSource) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to stat path %q: %w", s.path, err)
	}
	// Watch the containing directory so single-file replaces (the common
	// editor save pattern) are still observed.
	watchPath := s.path
	if !info.IsDir() {
		watchPath = filepath.Dir(s.path)
	}
	if err := watcher.Add(watchPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch path %q: %w", watchPath, err)
	}

	events := make(chan Event, 1)
	go s.watchLoop(ctx, watcher, events, info.IsDir())

	s.logger.Info("descriptor catalog watcher started", "path", s.path)
	return events, nil
}

func (s *FileSource) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- Event, isDir bool) {
	defer watcher.Close()
	defer close(events)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.relevant(ev, isDir) {
				continue
			}
			s.logger.Debug("catalog file event", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			event := Event{ID: uuid.New()}
			event.Descriptors, event.Err = s.Load(ctx)
			if event.Err != nil {
				s.logger.Error("catalog reload failed", "reload_id", event.ID, "error", event.Err)
			} else {
				s.logger.Info("catalog reloaded",
					"reload_id", event.ID,
					"descriptor_count", len(event.Descriptors),
				)
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Keep watching despite transient errors.
			s.logger.Error("catalog watcher error", "error", err)
		}
	}
}

// relevant filters watcher noise: chmods, hidden files, non-YAML files, and,
// in single-file mode, events for sibling files.
func (s *FileSource) relevant(ev fsnotify.Event, isDir bool) bool {
	if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !isDir {
		return filepath.Clean(ev.Name) == filepath.Clean(s.path)
	}
	return isYAML(base)
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
