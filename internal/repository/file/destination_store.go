package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

var _ ports.DestinationStore = (*DestinationStore)(nil)

// DestinationStore keeps user destinations in a single JSON array on disk.
// Every append rewrites the whole file. The mutex only serializes writers
// inside this process; separate processes sharing the file can still race.
type DestinationStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewDestinationStore(path string) *DestinationStore {
	return &DestinationStore{path: path, now: time.Now}
}

func (s *DestinationStore) Path() string {
	return s.path
}

func (s *DestinationStore) List(ctx context.Context) ([]domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *DestinationStore) Append(ctx context.Context, candidate domain.Destination) (*domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readLocked()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, d := range existing {
		if d.SameLocation(candidate.Name, candidate.Country) {
			return nil, domain.ErrDestinationExists
		}
		if d.ID > maxID {
			maxID = d.ID
		}
	}

	candidate.ID = s.now().UnixMilli()
	if candidate.ID <= maxID {
		candidate.ID = maxID + 1
	}
	candidate.IsUserAdded = true

	updated := make([]domain.Destination, 0, len(existing)+1)
	updated = append(updated, candidate)
	updated = append(updated, existing...)

	if err := s.writeLocked(updated); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *DestinationStore) readLocked() ([]domain.Destination, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Destination{}, nil
		}
		return nil, fmt.Errorf("read destinations file %s: %w", s.path, err)
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, fmt.Errorf("decode destinations file %s: %w", s.path, err)
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}
	for i := range destinations {
		destinations[i].IsUserAdded = true
	}
	return destinations, nil
}

func (s *DestinationStore) writeLocked(destinations []domain.Destination) error {
	data, err := json.MarshalIndent(destinations, "", "  ")
	if err != nil {
		return fmt.Errorf("encode destinations: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace destinations file: %w", err)
	}
	return nil
}
