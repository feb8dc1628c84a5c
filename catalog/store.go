package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// ErrNoSnapshot is returned by FileStore.Load when nothing has been saved yet
var ErrNoSnapshot = errors.New("no snapshot saved")

const (
	lockTimeout   = 3 * time.Second
	lockRetryWait = 100 * time.Millisecond
)

// FileStore persists snapshots as JSON. A sibling ".lock" file serializes
// access between processes; an in-process mutex serializes goroutines.
type FileStore struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.RWMutex
}

// NewFileStore creates a store backed by filePath
func NewFileStore(filePath string) *FileStore {
	return &FileStore{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Path returns the snapshot file path
func (s *FileStore) Path() string {
	return s.filePath
}

// Save writes snap, replacing any previous snapshot
func (s *FileStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the target
	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the saved snapshot
func (s *FileStore) Load() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := s.acquire()
	if err != nil {
		return Snapshot{}, err
	}
	defer unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return Snapshot{}, ErrNoSnapshot
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return snap, nil
}

// acquire takes the file lock and returns its release function
func (s *FileStore) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryWait)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
