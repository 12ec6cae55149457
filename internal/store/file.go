package store

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore keeps a single session in one file, traditionally ~/.starlanes.
// The key is ignored; a file store holds exactly one session.
type FileStore struct {
	Path string
}

// NewFileStore builds a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultSessionPath is the classic save location in the user's home
// directory.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".starlanes"
	}
	return filepath.Join(home, ".starlanes")
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes atomically: a temporary file next to the target is renamed
// into place, so a crash never leaves a torn session.
func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
