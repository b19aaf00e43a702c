package catalog

import (
	"context"

	"github.com/google/uuid"

	"octavia-hq/vela/pkg/compile"
)

// Source yields operation descriptors and change notifications.
type Source interface {
	// Load returns the current full descriptor set.
	Load(ctx context.Context) ([]compile.Descriptor, error)

	// Watch emits an event with the reloaded descriptor set on every
	// change. The channel is closed when ctx is cancelled. Sources that
	// cannot change may return a channel that only ever closes.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event is one catalog reload. Either Descriptors or Err is set; the ID ties
// log lines across the consumers of a single reload.
type Event struct {
	ID          uuid.UUID
	Descriptors []compile.Descriptor
	Err         error
}

// MemorySource serves a fixed descriptor set. Its watch channel never emits.
type MemorySource struct {
	descriptors []compile.Descriptor
}

// NewMemorySource builds a source over the given descriptors.
func NewMemorySource(descriptors []compile.Descriptor) *MemorySource {
	return &MemorySource{descriptors: descriptors}
}

// Load returns the fixed set.
func (s *MemorySource) Load(ctx context.Context) ([]compile.Descriptor, error) {
	out := make([]compile.Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out, nil
}

// Watch returns a channel that closes with ctx and never emits.
func (s *MemorySource) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
