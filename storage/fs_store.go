package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSStore keeps snapshots in a local bucket directory. It is the default
// backend for single-host deployments.
type FSStore struct {
	Dir string
}

// NewFSStore creates the bucket directory if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create bucket dir %s: %w", dir, err)
	}
	return &FSStore{Dir: dir}, nil
}

func (s *FSStore) List(_ context.Context, prefix string, limit int) ([]ObjectInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket dir %s: %w", s.Dir, err)
	}

	objects := []ObjectInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, ObjectInfo{
			Name:      entry.Name(),
			CreatedAt: info.ModTime(),
			SizeBytes: info.Size(),
		})
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Name > objects[j].Name })
	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}
	return objects, nil
}

func (s *FSStore) Upload(_ context.Context, name string, data []byte, _ string, upsert bool) error {
	path := filepath.Join(s.Dir, name)
	if !upsert {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("object %s already exists", name)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", name, err)
	}
	return nil
}

func (s *FSStore) Download(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}
	return data, nil
}

func (s *FSStore) Delete(_ context.Context, names ...string) error {
	for _, name := range names {
		if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete object %s: %w", name, err)
		}
	}
	return nil
}
