package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// poolFileVersion is written into YAML pool files.
const poolFileVersion = 1

// PoolStore persists change pool snapshots.
type PoolStore interface {
	// Save writes snapshot to path, replacing any previous content.
	Save(ctx context.Context, path m.Path, snapshot m.PoolSnapshot) error

	// Load reads the snapshot stored at path. A missing file yields an empty snapshot.
	Load(ctx context.Context, path m.Path) (m.PoolSnapshot, error)
}

// FilePoolStore picks a storage format from the file extension: .db, .sqlite
// and .sqlite3 use SQLite, everything else YAML.
type FilePoolStore struct {
	yaml   *YAMLPoolStore
	sqlite *SQLitePoolStore
}

// NewFilePoolStore constructs a FilePoolStore.
func NewFilePoolStore() *FilePoolStore {
	return &FilePoolStore{
		yaml:   NewYAMLPoolStore(),
		sqlite: NewSQLitePoolStore(),
	}
}

func (s *FilePoolStore) storeFor(path m.Path) PoolStore {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".db", ".sqlite", ".sqlite3":
		return s.sqlite
	default:
		return s.yaml
	}
}

// Save implements PoolStore.
func (s *FilePoolStore) Save(ctx context.Context, path m.Path, snapshot m.PoolSnapshot) error {
	return s.storeFor(path).Save(ctx, path, snapshot)
}

// Load implements PoolStore.
func (s *FilePoolStore) Load(ctx context.Context, path m.Path) (m.PoolSnapshot, error) {
	return s.storeFor(path).Load(ctx, path)
}

// YAMLPoolStore stores snapshots as YAML documents.
type YAMLPoolStore struct{}

// NewYAMLPoolStore constructs a YAMLPoolStore.
func NewYAMLPoolStore() *YAMLPoolStore {
	return &YAMLPoolStore{}
}

type poolFile struct {
	Version int           `yaml:"version"`
	Entries []m.PoolEntry `yaml:"entries"`
}

// Save implements PoolStore.
func (s *YAMLPoolStore) Save(ctx context.Context, path m.Path, snapshot m.PoolSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(poolFile{Version: poolFileVersion, Entries: snapshot.Entries})
	if err != nil {
		return fmt.Errorf("encode pool: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write pool %s: %w", path, err)
	}

	return nil
}

// Load implements PoolStore.
func (s *YAMLPoolStore) Load(ctx context.Context, path m.Path) (m.PoolSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return m.PoolSnapshot{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.PoolSnapshot{}, nil
		}

		return m.PoolSnapshot{}, fmt.Errorf("read pool %s: %w", path, err)
	}

	var file poolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return m.PoolSnapshot{}, fmt.Errorf("decode pool %s: %w", path, err)
	}

	if file.Version > poolFileVersion {
		return m.PoolSnapshot{}, fmt.Errorf("pool %s has unsupported version %d", path, file.Version)
	}

	for i := range file.Entries {
		for j := range file.Entries[i].Changes {
			detach(&file.Entries[i].Changes[j])
		}
	}

	return m.PoolSnapshot{Entries: file.Entries}, nil
}

// detach marks the nodes of a loaded change as tree-less.
func detach(change *m.Change) {
	change.BaseID = change.ID
	change.Node.Parent = m.NoParent
	change.Location.Parent = m.NoParent
}

func ensureParentDir(path m.Path) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	return nil
}
