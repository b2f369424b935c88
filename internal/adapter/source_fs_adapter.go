// Package adapter contains the infrastructure adapters of the fixpool CLI:
// filesystem access, parsing, diffing, conversion and pool persistence.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Suffixes marking the two sides of a pair inside a single directory.
const (
	BeforeSuffix = "_old"
	AfterSuffix  = "_new"
)

// SourceFSAdapter abstracts the filesystem operations used to discover and
// read buggy/fixed file pairs, so the workflow can be tested without disk.
type SourceFSAdapter interface {
	// Walk traverses root. When recursive is false sub-directories are skipped.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// FindPairs pairs X_old.ext with X_new.ext below roots. A root ending in
	// "/..." is scanned recursively.
	FindPairs(ctx context.Context, roots []m.Path, exts []string) ([]m.FilePair, error)

	// DirPairs pairs files with equal relative paths under before and after.
	DirPairs(ctx context.Context, before, after m.Path, exts []string) ([]m.FilePair, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// FindPairs implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) FindPairs(ctx context.Context, roots []m.Path, exts []string) ([]m.FilePair, error) {
	pairs := make(map[string]*m.FilePair)

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir, recursive := splitPattern(root)

		err := a.Walk(m.Path(dir), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !hasExtension(path, exts) {
				return nil
			}

			key, side, ok := pairKey(path)
			if !ok {
				return nil
			}

			pair, exists := pairs[key]
			if !exists {
				pair = &m.FilePair{}
				pairs[key] = pair
			}

			if side == BeforeSuffix {
				pair.Before = m.Path(path)
			} else {
				pair.After = m.Path(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sortedPairs(pairs), nil
}

// DirPairs implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) DirPairs(ctx context.Context, before, after m.Path, exts []string) ([]m.FilePair, error) {
	pairs := make(map[string]*m.FilePair)

	collect := func(root m.Path, assign func(pair *m.FilePair, path m.Path)) error {
		return a.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() || !hasExtension(path, exts) {
				return nil
			}

			rel, err := filepath.Rel(string(root), path)
			if err != nil {
				return err
			}

			pair, ok := pairs[rel]
			if !ok {
				pair = &m.FilePair{}
				pairs[rel] = pair
			}

			assign(pair, m.Path(path))

			return nil
		})
	}

	if err := collect(before, func(pair *m.FilePair, path m.Path) { pair.Before = path }); err != nil {
		return nil, err
	}

	if err := collect(after, func(pair *m.FilePair, path m.Path) { pair.After = path }); err != nil {
		return nil, err
	}

	return sortedPairs(pairs), nil
}

func splitPattern(root m.Path) (string, bool) {
	path := string(root)
	if path == "..." {
		return ".", true
	}

	if strings.HasSuffix(path, "/...") {
		return strings.TrimSuffix(path, "/..."), true
	}

	return path, false
}

func hasExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, want := range exts {
		if ext == want {
			return true
		}
	}

	return false
}

// pairKey strips the _old/_new marker from path, returning the shared key
// and the side it belongs to.
func pairKey(path string) (string, string, bool) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for _, side := range []string{BeforeSuffix, AfterSuffix} {
		if strings.HasSuffix(stem, side) {
			return strings.TrimSuffix(stem, side) + ext, side, true
		}
	}

	return "", "", false
}

func sortedPairs(pairs map[string]*m.FilePair) []m.FilePair {
	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	result := make([]m.FilePair, 0, len(keys))
	for _, key := range keys {
		result = append(result, *pairs[key])
	}

	return result
}
