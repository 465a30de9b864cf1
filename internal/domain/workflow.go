package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	"lanoma.dev/pkg/lanoma/internal/controller"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

var (
	// ErrSubjectNotFound is returned when a named subject has no directory on
	// the shelf.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrBatchFailed is returned when every unit of a batch failed.
	ErrBatchFailed = errors.New("every unit of the batch failed")
	// ErrNotesWithoutSubject is returned when notes are named without
	// exactly one subject.
	ErrNotesWithoutSubject = errors.New("notes must be given with exactly one subject")
)

// ShelfArgs locates the shelf a command works on.
type ShelfArgs struct {
	Shelf m.Path
}

// InitArgs contains the arguments for creating the shelf.
type InitArgs struct {
	ShelfArgs
}

// AddSubjectsArgs contains the arguments for creating subjects.
type AddSubjectsArgs struct {
	ShelfArgs
	Subjects []string
}

// AddNotesArgs contains the arguments for creating notes in a subject.
type AddNotesArgs struct {
	ShelfArgs
	Subject   string
	Titles    []string
	Extension string
	// Force overwrites notes that already exist.
	Force bool
}

// RemoveSubjectsArgs contains the arguments for deleting subjects.
type RemoveSubjectsArgs struct {
	ShelfArgs
	Subjects []string
}

// RemoveNotesArgs contains the arguments for deleting notes of a subject.
type RemoveNotesArgs struct {
	ShelfArgs
	Subject   string
	Titles    []string
	Extension string
}

// ListArgs contains the arguments for listing subjects and their notes.
type ListArgs struct {
	ShelfArgs
	Subjects []string
	// Files are the note patterns used when a subject sets none.
	Files []string
}

// CompileArgs contains the arguments for compiling subjects.
type CompileArgs struct {
	ShelfArgs
	Subjects []string
	// Notes, when set, are compiled instead of the discovered files. They
	// require exactly one subject.
	Notes []string
	// Master compiles the master document of each subject instead of notes.
	Master bool
	// Command overrides the subject and profile command when set.
	Command string
	// DefaultCommand is used when neither Command nor the subject sets one.
	DefaultCommand string
	// Files overrides the subject and profile patterns when set.
	Files []string
	// DefaultFiles is used when neither Files nor the subject sets any.
	DefaultFiles []string
	Extension    string
	Threads      int
	// Timeout bounds each unit. Zero means no limit.
	Timeout time.Duration
}

// MoveArgs contains the arguments for relocating the shelf.
type MoveArgs struct {
	ShelfArgs
	Target m.Path
}

// Workflow is the set of shelf operations exposed to the command layer.
type Workflow interface {
	Init(ctx context.Context, args InitArgs) error
	AddSubjects(ctx context.Context, args AddSubjectsArgs) error
	AddNotes(ctx context.Context, args AddNotesArgs) error
	RemoveSubjects(ctx context.Context, args RemoveSubjectsArgs) error
	RemoveNotes(ctx context.Context, args RemoveNotesArgs) error
	List(ctx context.Context, args ListArgs) error
	Compile(ctx context.Context, args CompileArgs) error
	Move(ctx context.Context, args MoveArgs) (m.Path, error)
}

type workflow struct {
	adapter.ShelfFSAdapter
	controller.UI
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ShelfFSAdapter,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		ShelfFSAdapter: fsAdapter,
		UI:             ui,
		Orchestrator:   orchestrator,
	}
}

func (w *workflow) Init(ctx context.Context, args InitArgs) error {
	root, err := w.Abs(ctx, args.Shelf)
	if err != nil {
		return fmt.Errorf("resolve shelf %s: %w", args.Shelf, err)
	}

	shelf := NewShelf(w.ShelfFSAdapter, root)
	if err := shelf.Export(ctx); err != nil {
		return err
	}

	return w.withUI(ctx, func() error {
		w.DisplayShelfReady(ctx, root)
		return nil
	})
}

func (w *workflow) AddSubjects(ctx context.Context, args AddSubjectsArgs) error {
	shelf, err := OpenShelf(ctx, w.ShelfFSAdapter, args.Shelf)
	if err != nil {
		return err
	}

	subjects, err := parseSubjects(args.Subjects)
	if err != nil {
		return err
	}

	var created []m.Entity

	for _, subject := range subjects {
		entities, err := shelf.ExportSubject(ctx, subject)
		if err != nil {
			return err
		}

		for _, entity := range entities {
			cfg := SubjectConfig{Name: entity.Name()}
			if err := SaveSubjectConfig(ctx, w.ShelfFSAdapter, shelf.Resolve(entity), cfg); err != nil {
				return err
			}
		}

		created = append(created, entities...)
	}

	return w.withUI(ctx, func() error {
		w.DisplaySubjectsAdded(ctx, created)
		return nil
	})
}

func (w *workflow) AddNotes(ctx context.Context, args AddNotesArgs) error {
	shelf, subject, err := w.openSubject(ctx, args.Shelf, args.Subject)
	if err != nil {
		return err
	}

	notes, err := parseNotes(args.Titles)
	if err != nil {
		return err
	}

	dir := shelf.Resolve(subject)

	var created, skipped []m.Note

	for _, note := range notes {
		path := dir.Join(note.FileName(args.Extension))

		if !args.Force && w.Exists(ctx, path) {
			slog.Info("Note already exists", "subject", subject.FullName, "path", path)

			skipped = append(skipped, note)

			continue
		}

		if err := w.WriteFile(ctx, path, noteContent(note, args.Extension)); err != nil {
			return fmt.Errorf("create note %q: %w", note.Title, err)
		}

		created = append(created, note)
	}

	return w.withUI(ctx, func() error {
		w.DisplayNotesAdded(ctx, subject, created, skipped)
		return nil
	})
}

func (w *workflow) RemoveSubjects(ctx context.Context, args RemoveSubjectsArgs) error {
	shelf, err := OpenShelf(ctx, w.ShelfFSAdapter, args.Shelf)
	if err != nil {
		return err
	}

	subjects, err := parseSubjects(args.Subjects)
	if err != nil {
		return err
	}

	var removed, missing []string

	for _, subject := range subjects {
		if !shelf.Exists(ctx, subject) {
			missing = append(missing, subject.FullName)
			continue
		}

		if err := w.RemoveAll(ctx, shelf.Resolve(subject)); err != nil {
			return fmt.Errorf("remove subject %s: %w", subject.FullName, err)
		}

		removed = append(removed, subject.FullName)
	}

	return w.withUI(ctx, func() error {
		w.DisplayRemoved(ctx, removed, missing)
		return nil
	})
}

func (w *workflow) RemoveNotes(ctx context.Context, args RemoveNotesArgs) error {
	shelf, subject, err := w.openSubject(ctx, args.Shelf, args.Subject)
	if err != nil {
		return err
	}

	notes, err := parseNotes(args.Titles)
	if err != nil {
		return err
	}

	dir := shelf.Resolve(subject)

	var removed, missing []string

	for _, note := range notes {
		path := dir.Join(note.FileName(args.Extension))
		display := shelf.Display(path)

		if !w.Exists(ctx, path) {
			missing = append(missing, display)
			continue
		}

		if err := w.RemoveAll(ctx, path); err != nil {
			return fmt.Errorf("remove note %q: %w", note.Title, err)
		}

		removed = append(removed, display)
	}

	return w.withUI(ctx, func() error {
		w.DisplayRemoved(ctx, removed, missing)
		return nil
	})
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	shelf, err := OpenShelf(ctx, w.ShelfFSAdapter, args.Shelf)
	if err != nil {
		return err
	}

	dirs, err := w.listDirs(ctx, shelf, args.Subjects)
	if err != nil {
		return err
	}

	listings := make([]m.SubjectListing, 0, len(dirs))

	for _, dir := range dirs {
		cfg, err := LoadSubjectConfig(ctx, w.ShelfFSAdapter, dir)
		if err != nil {
			return err
		}

		notes, err := w.Glob(ctx, dir, cfg.FilesOr(args.Files)...)
		if err != nil {
			return err
		}

		name := cfg.Name
		if name == "" {
			name = filepath.Base(dir.String())
		}

		listings = append(listings, m.SubjectListing{
			Name:  name,
			Dir:   shelf.Display(dir),
			Notes: notes,
		})
	}

	return w.withUI(ctx, func() error {
		w.DisplayListing(ctx, listings)
		return nil
	})
}

func (w *workflow) listDirs(ctx context.Context, shelf *Shelf, names []string) ([]m.Path, error) {
	if len(names) > 0 {
		subjects, err := parseSubjects(names)
		if err != nil {
			return nil, err
		}

		dirs := make([]m.Path, 0, len(subjects))

		for _, subject := range subjects {
			if !shelf.Exists(ctx, subject) {
				return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject.FullName)
			}

			dirs = append(dirs, shelf.Resolve(subject))
		}

		return dirs, nil
	}

	matches, err := w.Glob(ctx, shelf.Root(), "**/"+SubjectConfigFile)
	if err != nil {
		return nil, err
	}

	var dirs []m.Path

	for _, match := range matches {
		dir := filepath.Dir(match)
		if dir == "." {
			continue
		}

		dirs = append(dirs, shelf.Root().Join(dir))
	}

	return dirs, nil
}

func (w *workflow) Compile(ctx context.Context, args CompileArgs) error {
	shelf, err := OpenShelf(ctx, w.ShelfFSAdapter, args.Shelf)
	if err != nil {
		return err
	}

	if len(args.Notes) > 0 && len(args.Subjects) != 1 {
		return ErrNotesWithoutSubject
	}

	batches, err := w.buildBatches(ctx, shelf, args)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithCompileMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	var failures []error

	for _, batch := range batches {
		dir := shelf.Display(batch.WorkDir)

		w.DisplayBatchStarted(ctx, dir, batch)

		report, err := w.Orchestrator.Compile(ctx, batch, WithObserver(w.UI), WithUnitTimeout(args.Timeout))
		if err != nil {
			w.DisplayBatchError(ctx, dir, err)

			failures = append(failures, err)

			continue
		}

		w.DisplayCompileReport(ctx, dir, report)

		if report.AllFailed() {
			failures = append(failures, fmt.Errorf("%w: %s", ErrBatchFailed, dir))
		}
	}

	return errors.Join(failures...)
}

func (w *workflow) buildBatches(ctx context.Context, shelf *Shelf, args CompileArgs) ([]m.Batch, error) {
	subjects, err := parseSubjects(args.Subjects)
	if err != nil {
		return nil, err
	}

	notes, err := parseNotes(args.Notes)
	if err != nil {
		return nil, err
	}

	batches := make([]m.Batch, 0, len(subjects))

	for _, subject := range subjects {
		if !shelf.Exists(ctx, subject) {
			return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject.FullName)
		}

		dir := shelf.Resolve(subject)

		cfg, err := LoadSubjectConfig(ctx, w.ShelfFSAdapter, dir)
		if err != nil {
			return nil, err
		}

		command := args.Command
		if command == "" {
			command = cfg.CommandOr(args.DefaultCommand)
		}

		units, err := w.collectUnits(ctx, subject, dir, cfg, notes, args)
		if err != nil {
			return nil, err
		}

		if len(units) == 0 {
			slog.Info("Nothing to compile", "subject", subject.FullName)
			continue
		}

		batches = append(batches, m.Batch{
			WorkDir: dir,
			Units:   units,
			Command: command,
			Threads: args.Threads,
		})
	}

	return batches, nil
}

func (w *workflow) collectUnits(
	ctx context.Context,
	subject m.Entity,
	dir m.Path,
	cfg SubjectConfig,
	notes []m.Note,
	args CompileArgs,
) ([]m.CompilableUnit, error) {
	if args.Master {
		unit := m.NewMasterUnit(subject, dir, args.Extension)
		if !w.Exists(ctx, dir.Join(unit.Source)) {
			slog.Warn("Subject has no master document", "subject", subject.FullName, "source", unit.Source)
			return nil, nil
		}

		return []m.CompilableUnit{unit}, nil
	}

	if len(notes) > 0 {
		units := make([]m.CompilableUnit, 0, len(notes))
		for _, note := range notes {
			units = append(units, m.NewNoteUnit(dir, note, args.Extension))
		}

		return units, nil
	}

	patterns := args.Files
	if len(patterns) == 0 {
		patterns = cfg.FilesOr(args.DefaultFiles)
	}

	matches, err := w.Glob(ctx, dir, patterns...)
	if err != nil {
		return nil, fmt.Errorf("discover notes of %s: %w", subject.FullName, err)
	}

	units := make([]m.CompilableUnit, 0, len(matches))

	for _, match := range matches {
		units = append(units, m.CompilableUnit{
			Kind:    m.UnitNote,
			ID:      filepath.ToSlash(strings.TrimSuffix(match, filepath.Ext(match))),
			Source:  match,
			WorkDir: dir,
		})
	}

	return units, nil
}

func (w *workflow) Move(ctx context.Context, args MoveArgs) (m.Path, error) {
	root, err := w.Abs(ctx, args.Shelf)
	if err != nil {
		return "", fmt.Errorf("resolve shelf %s: %w", args.Shelf, err)
	}

	shelf := NewShelf(w.ShelfFSAdapter, root)

	old, err := shelf.Relocate(ctx, args.Target)
	if err != nil {
		return "", err
	}

	newRoot := shelf.Root()

	return newRoot, w.withUI(ctx, func() error {
		w.DisplayShelfMoved(ctx, old, newRoot)
		return nil
	})
}

func (w *workflow) openSubject(ctx context.Context, root m.Path, name string) (*Shelf, m.Entity, error) {
	shelf, err := OpenShelf(ctx, w.ShelfFSAdapter, root)
	if err != nil {
		return nil, m.Entity{}, err
	}

	subjects, err := parseSubjects([]string{name})
	if err != nil {
		return nil, m.Entity{}, err
	}

	subject := subjects[0]
	if !shelf.Exists(ctx, subject) {
		return nil, m.Entity{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject.FullName)
	}

	return shelf, subject, nil
}

func (w *workflow) withUI(ctx context.Context, display func() error) error {
	if err := w.Start(ctx, controller.WithMessageMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	return display()
}

func parseSubjects(names []string) ([]m.Entity, error) {
	subjects := make([]m.Entity, 0, len(names))

	for _, name := range names {
		subject := m.NewEntity(name)
		if err := subject.Validate(); err != nil {
			return nil, fmt.Errorf("subject %q: %w", name, err)
		}

		if subject.EscapesRoot() {
			return nil, fmt.Errorf("%w: %s", ErrOutsideShelf, name)
		}

		subjects = append(subjects, subject)
	}

	return subjects, nil
}

func parseNotes(titles []string) ([]m.Note, error) {
	notes := make([]m.Note, 0, len(titles))

	for _, title := range titles {
		note := m.NewNote(title)
		if err := note.Validate(); err != nil {
			return nil, fmt.Errorf("note %q: %w", title, err)
		}

		notes = append(notes, note)
	}

	return notes, nil
}

const latexNoteSkeleton = `\documentclass{article}

\title{%s}

\begin{document}
\maketitle

\end{document}
`

func noteContent(note m.Note, ext string) []byte {
	if filepath.Ext(note.FileName(ext)) != m.DefaultNoteExtension {
		return []byte{}
	}

	return []byte(fmt.Sprintf(latexNoteSkeleton, note.Title))
}
