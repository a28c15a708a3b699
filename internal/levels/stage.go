package levels

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/levelrun/internal/flow"
)

// ErrUnknownLevel is returned when loading a level missing from the catalog.
var ErrUnknownLevel = errors.New("levels: unknown level")

// Stage is an in-memory level loader. It tracks which levels are loaded and
// completes asynchronous unloads on background goroutines.
//
// A level reloaded while its asynchronous unload is still pending stays
// loaded: each load bumps a generation counter and a pending unload only
// removes the generation it was issued for.
type Stage struct {
	catalog     *Catalog
	logger      *log.Logger
	unloadDelay time.Duration

	mu     sync.Mutex
	loaded map[string]uint64 // level ID -> generation
	gen    uint64
	loads  int

	group errgroup.Group
}

// StageOption configures a Stage.
type StageOption func(*Stage)

// WithStageLogger sets the logger for load and unload events.
func WithStageLogger(logger *log.Logger) StageOption {
	return func(s *Stage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUnloadDelay makes asynchronous unloads wait before completing,
// simulating level teardown work.
func WithUnloadDelay(d time.Duration) StageOption {
	return func(s *Stage) {
		s.unloadDelay = d
	}
}

// NewStage creates an empty stage for the given catalog.
func NewStage(catalog *Catalog, opts ...StageOption) *Stage {
	s := &Stage{
		catalog: catalog,
		logger:  log.New(io.Discard),
		loaded:  make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ flow.LevelLoader = (*Stage)(nil)

// Load adds a level to the stage. LoadSingle drops everything else first.
func (s *Stage) Load(id string, mode flow.LoadMode) error {
	if !s.catalog.Exists(id) {
		return fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == flow.LoadSingle {
		for k := range s.loaded {
			delete(s.loaded, k)
		}
	}
	s.gen++
	s.loaded[id] = s.gen
	s.loads++
	s.logger.Debug("level loaded", "level", id, "generation", s.gen)
	return nil
}

// Unload removes a level immediately. Unknown levels are a no-op.
func (s *Stage) Unload(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loaded[id]; ok {
		delete(s.loaded, id)
		s.logger.Debug("level unloaded", "level", id)
	}
	return nil
}

// UnloadAsync schedules removal of a level and returns at once.
func (s *Stage) UnloadAsync(id string) error {
	s.mu.Lock()
	gen, ok := s.loaded[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	s.group.Go(func() error {
		if s.unloadDelay > 0 {
			time.Sleep(s.unloadDelay)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if current, still := s.loaded[id]; still && current == gen {
			delete(s.loaded, id)
			s.logger.Debug("level unloaded", "level", id, "async", true)
		}
		return nil
	})
	return nil
}

// Wait blocks until every pending asynchronous unload has completed.
func (s *Stage) Wait() error {
	return s.group.Wait()
}

// Loaded returns the IDs of loaded levels, sorted.
func (s *Stage) Loaded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.loaded))
	for id := range s.loaded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsLoaded reports whether a level is currently loaded.
func (s *Stage) IsLoaded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loaded[id]
	return ok
}

// Loads returns how many load requests succeeded.
func (s *Stage) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}
