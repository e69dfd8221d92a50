package dataset

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
	"github.com/adittyaff/pelanggan-mapper/internal/tabular"
)

// Snapshot is one loaded dataset. Snapshots are read-only after creation;
// reloads swap in a whole new snapshot rather than mutating records in place.
type Snapshot struct {
	Records      []models.Record
	Source       string
	StatusColumn string
	Skipped      int
	LoadedAt     time.Time
}

// Store holds the current dataset snapshot for the HTTP layer.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore returns a store with an empty snapshot.
func NewStore() *Store {
	return &Store{snap: &Snapshot{}}
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// LoadFile reads a dataset file and, on success, replaces the snapshot.
// A failed load leaves the previous snapshot in place.
func (s *Store) LoadFile(path string) (*Snapshot, error) {
	res, err := tabular.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.replaceFromResult(res, filepath.Base(path)), nil
}

// LoadReader reads a dataset from an uploaded file. The name's extension
// decides the format, as with LoadFile.
func (s *Store) LoadReader(r io.Reader, name string) (*Snapshot, error) {
	res, err := tabular.Read(r, name)
	if err != nil {
		return nil, err
	}
	return s.replaceFromResult(res, filepath.Base(name)), nil
}

func (s *Store) replaceFromResult(res *tabular.Result, source string) *Snapshot {
	snap := &Snapshot{
		Records:      res.Records,
		Source:       source,
		StatusColumn: res.StatusColumn,
		Skipped:      res.Skipped,
		LoadedAt:     time.Now().UTC(),
	}
	s.Replace(snap)
	return snap
}
