package save

import (
	"sync"
	"time"

	"cathouse/pkg/game/state"
)

// DefaultDebounce is how long a debounced checkpoint waits before
// writing, so bursts of progress collapse into one write.
const DefaultDebounce = 500 * time.Millisecond

// Saver writes snapshots to a Store. Checkpoint is debounced;
// CheckpointNow writes synchronously and is used at moments that must
// survive a crash, like feeding a cat or unlocking a door.
type Saver struct {
	store    Store
	debounce time.Duration

	mu      sync.Mutex
	pending *Snapshot
	timer   *time.Timer
}

// NewSaver returns a Saver with the default debounce interval
func NewSaver(store Store) *Saver {
	return &Saver{store: store, debounce: DefaultDebounce}
}

// NewSaverWithDebounce returns a Saver with a custom interval.
// A zero interval makes every Checkpoint write immediately.
func NewSaverWithDebounce(store Store, d time.Duration) *Saver {
	return &Saver{store: store, debounce: d}
}

// Checkpoint records the current state and schedules a write. The
// snapshot is captured now, so later mutations do not leak into it.
func (s *Saver) Checkpoint(g *state.Game) {
	snap := Capture(g)

	if s.debounce <= 0 {
		s.write(snap)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flushPending)
}

func (s *Saver) flushPending() {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()

	if snap != nil {
		s.write(*snap)
	}
}

// CheckpointNow writes the current state synchronously, superseding
// any pending debounced write.
func (s *Saver) CheckpointNow(g *state.Game) error {
	s.mu.Lock()
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.write(Capture(g))
}

// Flush writes any pending debounced snapshot immediately. Called on
// shutdown.
func (s *Saver) Flush() {
	s.flushPending()
}

func (s *Saver) write(snap Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}
	return s.store.Write(data)
}

// Load reads and restores the saved game. ErrNoSave is returned when
// nothing has been saved yet.
func (s *Saver) Load() (*state.Game, error) {
	data, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	snap, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return Restore(snap)
}

// Clear deletes the saved game
func (s *Saver) Clear() error {
	s.mu.Lock()
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.store.Delete()
}
