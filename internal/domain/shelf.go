package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	m "lanoma.dev/pkg/lanoma/internal/model"
	"lanoma.dev/pkg/lanoma/pkg/fspath"
)

var (
	// ErrInvalidShelf is returned when the shelf root is not an existing
	// directory.
	ErrInvalidShelf = errors.New("shelf is not an existing directory")
	// ErrOutsideShelf is returned for subjects whose path climbs above the
	// shelf root.
	ErrOutsideShelf = errors.New("subject resolves outside of the shelf")
	// ErrShelfExists is returned when relocating onto an existing path.
	ErrShelfExists = errors.New("target path already exists")
)

// Shelf is the root directory holding all subjects.
type Shelf struct {
	fs   adapter.ShelfFSAdapter
	root m.Path
}

// NewShelf returns a shelf rooted at root. The directory does not need to
// exist; see Export.
func NewShelf(fs adapter.ShelfFSAdapter, root m.Path) *Shelf {
	return &Shelf{fs: fs, root: root}
}

// OpenShelf returns the shelf rooted at the absolute form of root. It fails
// with ErrInvalidShelf when root is not an existing directory.
func OpenShelf(ctx context.Context, fs adapter.ShelfFSAdapter, root m.Path) (*Shelf, error) {
	abs, err := fs.Abs(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("resolve shelf %s: %w", root, err)
	}

	if !fs.IsDir(ctx, abs) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShelf, abs)
	}

	return NewShelf(fs, abs), nil
}

// Root returns the shelf directory.
func (s *Shelf) Root() m.Path {
	return s.root
}

// IsValid reports whether the root is an existing directory.
func (s *Shelf) IsValid(ctx context.Context) bool {
	return s.fs.IsDir(ctx, s.root)
}

// Export creates the root directory if it does not exist yet. The parent of
// the root must exist.
func (s *Shelf) Export(ctx context.Context) error {
	if s.IsValid(ctx) {
		return nil
	}

	if err := s.fs.Mkdir(ctx, s.root); err != nil {
		return fmt.Errorf("create shelf %s: %w", s.root, err)
	}

	slog.Info("Shelf created", "root", s.root)

	return nil
}

// Relocate renames the shelf directory to newRoot, if it exists, and points
// the shelf at newRoot. It returns the previous root.
func (s *Shelf) Relocate(ctx context.Context, newRoot m.Path) (m.Path, error) {
	old := s.root

	abs, err := s.fs.Abs(ctx, newRoot)
	if err != nil {
		return old, fmt.Errorf("resolve %s: %w", newRoot, err)
	}

	if s.IsValid(ctx) {
		if s.fs.Exists(ctx, abs) {
			return old, fmt.Errorf("%w: %s", ErrShelfExists, abs)
		}

		if err := s.fs.Rename(ctx, old, abs); err != nil {
			return old, fmt.Errorf("move shelf to %s: %w", abs, err)
		}

		slog.Info("Shelf moved", "from", old, "to", abs)
	}

	s.root = abs

	return old, nil
}

// Resolve returns the directory of subject below the shelf root.
func (s *Shelf) Resolve(subject m.Entity) m.Path {
	return subject.Resolve(s.root)
}

// Exists reports whether the directory of subject exists.
func (s *Shelf) Exists(ctx context.Context, subject m.Entity) bool {
	return s.fs.IsDir(ctx, s.Resolve(subject))
}

// ExportSubject creates the directory of subject and of every ancestor that
// is still missing, outermost first. It returns the entities that were
// created.
func (s *Shelf) ExportSubject(ctx context.Context, subject m.Entity) ([]m.Entity, error) {
	if err := subject.Validate(); err != nil {
		return nil, fmt.Errorf("subject %q: %w", subject.FullName, err)
	}

	if subject.EscapesRoot() {
		return nil, fmt.Errorf("%w: %s", ErrOutsideShelf, subject.FullName)
	}

	if !s.IsValid(ctx) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShelf, s.root)
	}

	ancestors := subject.Ancestors()

	var created []m.Entity

	for i := len(ancestors) - 1; i >= 0; i-- {
		entity := ancestors[i]
		dir := s.Resolve(entity)

		if s.fs.IsDir(ctx, dir) {
			continue
		}

		if err := s.fs.Mkdir(ctx, dir); err != nil {
			return created, fmt.Errorf("create subject %s: %w", entity.FullName, err)
		}

		slog.Debug("Subject directory created", "subject", entity.FullName, "dir", dir)

		created = append(created, entity)
	}

	return created, nil
}

// Display returns path relative to the shelf root, for reports. Paths that
// have no relation to the root are returned as they are.
func (s *Shelf) Display(path m.Path) string {
	target, ok := fspath.Normalize(path.String())
	if !ok {
		return path.String()
	}

	base, ok := fspath.Normalize(s.root.String())
	if !ok {
		return path.String()
	}

	rel, ok := fspath.Relative(target, base)
	if !ok || rel.IsAbs() {
		return path.String()
	}

	if len(rel) == 0 {
		return "."
	}

	return rel.FilePath()
}
