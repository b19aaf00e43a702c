package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"octavia-hq/vela/pkg/catalog"
	"octavia-hq/vela/pkg/compile"
	"octavia-hq/vela/pkg/config"
	"octavia-hq/vela/pkg/exec"
	"octavia-hq/vela/pkg/telemetry/metrics"
)

// ErrUnknownOperation is returned when no registered descriptor matches the
// requested namespace and name.
var ErrUnknownOperation = errors.New("registry: unknown operation")

// Registry holds the known descriptors and serves compiled artifacts for
// them, caching by content-derived key. All methods are safe for concurrent
// use.
type Registry struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Collector
	cache   Cache
	sweeper *cron.Cron

	mu          sync.RWMutex
	descriptors map[string]compile.Descriptor // by "namespace/name"
}

// Options are the injectable collaborators. Nil fields get defaults: the
// process slog logger, a collector honoring cfg.Telemetry.Metrics, and an
// ArtifactCache built from cfg.Cache.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Cache   Cache
}

// New builds a registry from the configuration. When cfg.Cache.SweepSchedule
// is set, a cron-scheduled TTL sweep starts immediately; Close stops it.
func New(cfg *config.Config, opts Options) (*Registry, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	collector := opts.Metrics
	if collector == nil {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	cache := opts.Cache
	if cache == nil {
		owned := NewArtifactCache(cfg.Cache)
		owned.OnEvict(collector.RecordCacheEviction)
		cache = owned
	}

	r := &Registry{
		cfg:         cfg,
		log:         log,
		metrics:     collector,
		cache:       cache,
		descriptors: make(map[string]compile.Descriptor),
	}

	if cfg.Cache.SweepSchedule != "" {
		r.sweeper = cron.New()
		if _, err := r.sweeper.AddFunc(cfg.Cache.SweepSchedule, r.sweep); err != nil {
			return nil, fmt.Errorf("registry: invalid sweep schedule %q: %w", cfg.Cache.SweepSchedule, err)
		}
		r.sweeper.Start()
		log.Info("cache sweep scheduled", "schedule", cfg.Cache.SweepSchedule)
	}

	return r, nil
}

// Register adds or replaces the descriptor for its namespace/name. Replacing
// invalidates the previous version's cached artifact; re-registering an
// unchanged descriptor keeps the warm entry.
func (r *Registry) Register(d compile.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	name := d.Namespace + "/" + d.Name
	r.mu.Lock()
	old, existed := r.descriptors[name]
	r.descriptors[name] = d
	r.mu.Unlock()

	if existed {
		if oldKey := Key(&old); oldKey != Key(&d) {
			r.cache.Delete(oldKey)
		}
	}
	r.metrics.UpdateCacheSize(r.cache.Size())
	r.log.Info("descriptor registered", "operation", d.FullName(), "replaced", existed)
	return nil
}

// Resolve looks up the descriptor for namespace/name.
func (r *Registry) Resolve(namespace, name string) (compile.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[namespace+"/"+name]
	return d, ok
}

// Descriptors returns the registered descriptors sorted by full name.
func (r *Registry) Descriptors() []compile.Descriptor {
	r.mu.RLock()
	out := make([]compile.Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })
	return out
}

// Operation returns the compiled artifact for a descriptor, compiling and
// caching it on first use.
func (r *Registry) Operation(d compile.Descriptor) (*compile.CompiledOperation, error) {
	key := Key(&d)
	if op, ok := r.cache.Get(key); ok {
		r.metrics.RecordCacheHit()
		return op, nil
	}
	r.metrics.RecordCacheMiss()

	start := time.Now()
	op, err := compile.Compile(d)
	elapsed := time.Since(start)
	if err != nil {
		r.metrics.RecordCompile("", "", "error", elapsed)
		r.log.Error("compilation failed", "operation", d.FullName(), "error", err)
		return nil, err
	}
	r.metrics.RecordCompile(op.Tier.String(), string(op.Backend()), "ok", elapsed)

	r.cache.Set(key, op)
	r.metrics.UpdateCacheSize(r.cache.Size())
	r.log.Debug("descriptor compiled",
		"operation", d.FullName(),
		"artifact_id", op.ID,
		"tier", op.Tier,
		"backend", op.Backend(),
		"duration", elapsed,
	)
	return op, nil
}

// Invoke resolves, compiles (or fetches) and executes one operation.
func (r *Registry) Invoke(namespace, name string, args exec.Args) (exec.Value, error) {
	d, ok := r.Resolve(namespace, name)
	if !ok {
		return exec.Value{}, fmt.Errorf("%w: %s/%s", ErrUnknownOperation, namespace, name)
	}
	op, err := r.Operation(d)
	if err != nil {
		return exec.Value{}, err
	}

	start := time.Now()
	value, err := op.Invoke(args)
	elapsed := time.Since(start)

	outcome := "error"
	if err == nil {
		outcome = string(value.Kind)
	}
	r.metrics.RecordInvoke(string(op.Backend()), outcome, elapsed)
	return value, err
}

// Sync replaces the registered descriptor set with descs, invalidating the
// cached artifact of every descriptor that disappeared or changed. Unchanged
// descriptors keep their warm cache entries.
func (r *Registry) Sync(descs []compile.Descriptor) error {
	next := make(map[string]compile.Descriptor, len(descs))
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return err
		}
		next[d.Namespace+"/"+d.Name] = d
	}

	r.mu.Lock()
	prev := r.descriptors
	r.descriptors = next
	r.mu.Unlock()

	invalidated := 0
	for name, old := range prev {
		oldKey := Key(&old)
		if current, ok := next[name]; !ok || Key(&current) != oldKey {
			r.cache.Delete(oldKey)
			invalidated++
		}
	}
	r.metrics.UpdateCacheSize(r.cache.Size())
	r.log.Info("descriptor set synced",
		"descriptor_count", len(next),
		"invalidated", invalidated,
	)
	return nil
}

// Watch loads the source's descriptors, then consumes its change events in a
// background goroutine until ctx is cancelled, resyncing on every reload.
func (r *Registry) Watch(ctx context.Context, src catalog.Source) error {
	descs, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if err := r.Sync(descs); err != nil {
		return err
	}

	events, err := src.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for ev := range events {
			if ev.Err != nil {
				r.log.Error("catalog reload failed, keeping previous descriptors",
					"reload_id", ev.ID, "error", ev.Err)
				continue
			}
			if err := r.Sync(ev.Descriptors); err != nil {
				r.log.Error("catalog sync failed, keeping previous descriptors",
					"reload_id", ev.ID, "error", err)
			}
		}
	}()
	return nil
}

// CacheSize returns the current number of cached artifacts.
func (r *Registry) CacheSize() int {
	return r.cache.Size()
}

// sweep drops expired artifacts; wired to the cron schedule.
func (r *Registry) sweep() {
	removed := r.cache.Sweep()
	r.metrics.UpdateCacheSize(r.cache.Size())
	if removed > 0 {
		r.log.Info("cache sweep removed expired artifacts", "removed", removed)
	}
}

// Close stops the scheduled sweep, waits for an in-flight run, and closes
// the cache.
func (r *Registry) Close() {
	if r.sweeper != nil {
		<-r.sweeper.Stop().Done()
	}
	r.cache.Close()
}
