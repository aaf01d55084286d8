package keystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileStoreName = "credentials.json"

// FileStore keeps credentials in a plain JSON document with owner-only
// permissions. It is the fallback backing for environments where the
// encrypted store cannot be opened, analogous to browser local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFile prepares a file-backed store under dir. The file itself is
// created lazily on the first Set.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, fileStoreName)}, nil
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	items := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode credential file: %w", err)
	}
	return items, nil
}

// save writes through a temp file and rename so a crash mid-write never
// leaves a truncated credential file behind.
func (s *FileStore) save(items map[string]json.RawMessage) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return false, err
	}

	raw, ok := items[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode credential[%s]: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Set(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode credential[%s]: %w", key, err)
	}
	items[key] = raw
	return s.save(items)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.save(items)
}

func (s *FileStore) Close() error { return nil }
