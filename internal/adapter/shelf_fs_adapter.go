// Package adapter contains the filesystem and process adapters used by the
// domain layer.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/natefinch/atomic"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ShelfFSAdapter abstracts the filesystem operations the shelf and the
// workflow rely on. It hides direct `os` access so the domain logic can be
// tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type ShelfFSAdapter interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(ctx context.Context, path m.Path) bool

	// Exists reports whether anything exists at path.
	Exists(ctx context.Context, path m.Path) bool

	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(ctx context.Context, path m.Path) error

	// Rename moves a file or directory.
	Rename(ctx context.Context, from, to m.Path) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the file at path atomically.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// Glob returns the files below root matching any of the patterns, as
	// paths relative to root, sorted and without duplicates.
	Glob(ctx context.Context, root m.Path, patterns ...string) ([]string, error)

	// Abs returns an absolute, cleaned form of path.
	Abs(ctx context.Context, path m.Path) (m.Path, error)
}

// ErrInvalidPattern is returned by Glob for a malformed pattern.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// LocalShelfFSAdapter is the os backed ShelfFSAdapter.
type LocalShelfFSAdapter struct{}

// NewLocalShelfFSAdapter constructs a LocalShelfFSAdapter instance ready to
// be wired into the domain.
func NewLocalShelfFSAdapter() *LocalShelfFSAdapter {
	return &LocalShelfFSAdapter{}
}

// IsDir reports whether path is an existing directory.
func (a *LocalShelfFSAdapter) IsDir(_ context.Context, path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.IsDir()
}

// Exists reports whether path exists.
func (a *LocalShelfFSAdapter) Exists(_ context.Context, path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// Mkdir creates path without creating missing parents.
func (a *LocalShelfFSAdapter) Mkdir(_ context.Context, path m.Path) error {
	return os.Mkdir(string(path), dirPerm)
}

// Rename moves from to to.
func (a *LocalShelfFSAdapter) Rename(_ context.Context, from, to m.Path) error {
	return os.Rename(string(from), string(to))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalShelfFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalShelfFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path is resolved below the shelf root
	return os.ReadFile(string(path))
}

// WriteFile writes content through a temporary file and renames it in place.
func (a *LocalShelfFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte) error {
	_, statErr := os.Stat(string(path))
	isNew := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(string(path), strings.NewReader(string(content))); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// atomic.WriteFile leaves the temp file mode on new files.
	if isNew {
		if err := os.Chmod(string(path), filePerm); err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
	}

	return nil
}

// Glob matches the patterns against the files below root.
func (a *LocalShelfFSAdapter) Glob(_ context.Context, root m.Path, patterns ...string) ([]string, error) {
	fsys := os.DirFS(string(root))
	seen := make(map[string]struct{})

	var matches []string

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}

		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}

		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, root, err)
		}

		for _, match := range found {
			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			matches = append(matches, filepath.FromSlash(match))
		}
	}

	sort.Strings(matches)

	return matches, nil
}

// Abs returns the absolute form of path.
func (a *LocalShelfFSAdapter) Abs(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
