// Package store persists the recruiting snapshot as one whole JSON document.
// Load returns the full document, Save overwrites it; there are no partial
// reads or writes, which keeps every operation a single read-modify-write
// cycle against one snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hireflow/internal/recruit"
)

// Store is the narrow persistence contract consumed by the service layer.
type Store interface {
	Load() (*recruit.Snapshot, error)
	Save(*recruit.Snapshot) error
}

// FileStore keeps the snapshot in a single JSON file on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot document. A missing file yields an empty snapshot
// so a fresh data file needs no initialization step.
func (f *FileStore) Load() (*recruit.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return recruit.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", f.path, err)
	}

	var snap recruit.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", f.path, err)
	}
	snap.Init()
	return &snap, nil
}

// Save overwrites the whole document, creating parent directories as needed.
func (f *FileStore) Save(snap *recruit.Snapshot) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening snapshot %s: %w", f.path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", f.path, err)
	}
	return nil
}

// Memory is an in-memory store for tests and the interactive console's dry
// runs. Load hands out the same snapshot instance; the single-caller model
// makes that safe.
type Memory struct {
	Snapshot *recruit.Snapshot
	LoadErr  error
	SaveErr  error
	Saves    int
}

func NewMemory() *Memory {
	return &Memory{Snapshot: recruit.NewSnapshot()}
}

func (m *Memory) Load() (*recruit.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		m.Snapshot = recruit.NewSnapshot()
	}
	return m.Snapshot, nil
}

func (m *Memory) Save(snap *recruit.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshot = snap
	m.Saves++
	return nil
}
