package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/obedfeni/dailytrivia/internal/model"
	"github.com/obedfeni/dailytrivia/internal/storage"
)

// Storage keeps the whole store in a single JSON file, rewritten on every
// save. This is the primary backend: the state is small (tens to low
// thousands of records) and one game action performs exactly one write.
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a file storage instance writing to the given path
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap.Players == nil {
		snap.Players = make(map[string]*model.PlayerRecord)
	}
	return &snap, nil
}

func (s *Storage) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to a temp file and rename so a crash mid-write cannot leave a
	// truncated document behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
