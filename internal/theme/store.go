package theme

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/frota/internal/logger"
)

const writeTimeout = 5 * time.Second

// Storage is the key-value persistence collaborator.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store holds the single current theme. Until Initialize completes the host
// scheme is served as a provisional value. Toggles apply immediately and are
// persisted in the background; persistence failures are logged only.
type Store struct {
	storage Storage
	logger  *logger.Logger

	mu      sync.RWMutex
	current Theme
	ready   bool
	toggled bool

	subMu   sync.Mutex
	subs    map[int]func(Theme)
	nextSub int

	writeMu sync.Mutex
	pending sync.WaitGroup
}

// NewStore creates a Store whose provisional value is the host scheme.
func NewStore(storage Storage, systemScheme string, log *logger.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  log.With("component", "theme"),
		current: Parse(systemScheme),
		subs:    make(map[int]func(Theme)),
	}
}

// Current returns the theme every consumer should render with.
func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Ready reports whether Initialize has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Initialize adopts the persisted theme when present. Otherwise the host
// scheme is kept and written to storage. A toggle made while the read was in
// flight wins over the stored value.
func (s *Store) Initialize(ctx context.Context) Theme {
	stored, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error(ctx, "failed to load theme", "error", err)
	}

	s.mu.Lock()
	if s.ready {
		current := s.current
		s.mu.Unlock()
		return current
	}
	s.ready = true
	persistDefault := err == nil && !ok
	changed := false
	if ok && !s.toggled {
		next := Parse(stored)
		changed = next != s.current
		s.current = next
	}
	current := s.current
	s.mu.Unlock()

	if changed {
		s.notify(current)
	}
	if persistDefault {
		s.persistCurrent(ctx)
	}

	s.logger.Debug(ctx, "theme initialized", "theme", current.String(), "stored", ok)
	return current
}

// Toggle flips the theme, notifies subscribers and returns the new value. The
// write to storage happens asynchronously; use Flush to wait for it.
func (s *Store) Toggle() Theme {
	s.mu.Lock()
	s.current = s.current.Toggle()
	s.toggled = true
	next := s.current
	s.mu.Unlock()

	s.notify(next)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.persistCurrent(context.Background())
	}()

	return next
}

// persistCurrent writes whatever the theme is at write time. Writes are
// serialized, so the last one to finish always carries the latest value.
func (s *Store) persistCurrent(parent context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(parent, writeTimeout)
	defer cancel()

	value := s.Current()
	if err := s.storage.Set(ctx, StorageKey, value.String()); err != nil {
		s.logger.Error(ctx, "failed to save theme", "error", err, "theme", value.String())
	}
}

// Subscribe registers fn to be called synchronously with every new theme. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(Theme)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(t Theme) {
	s.subMu.Lock()
	fns := make([]func(Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(t)
	}
}

// Flush waits for background writes started by Toggle.
func (s *Store) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
