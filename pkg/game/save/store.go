// Package save persists playthrough progress as a small JSON
// snapshot. Writes are debounced so rapid state changes collapse into
// one disk write, with an immediate path for moments that must not be
// lost.
package save

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSave is returned when no saved game exists
var ErrNoSave = errors.New("no saved game")

// Store abstracts where snapshot bytes live
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Delete() error
}

// FileStore keeps the snapshot in a single file on disk
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSave
	}
	return data, err
}

func (s *FileStore) Write(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func (s *FileStore) Delete() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore keeps the snapshot in memory, used by tests
type MemStore struct {
	mu   sync.Mutex
	data []byte
}

func (s *MemStore) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoSave
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemStore) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
