package model

import (
	"path/filepath"
	"strings"
)

// DefaultNoteExtension is the file extension used for notes when none is
// configured.
const DefaultNoteExtension = ".tex"

// MasterNoteStem is the file stem of a subject's master document.
const MasterNoteStem = "master"

// Note is a single document inside a subject.
type Note struct {
	Title string
}

// NewNote trims the title.
func NewNote(title string) Note {
	return Note{Title: strings.TrimSpace(title)}
}

// Slug returns the slugged title used as the file stem.
func (n Note) Slug() string {
	return Slug(n.Title)
}

// Validate returns ErrEmptyName when the title slugs to nothing.
func (n Note) Validate() error {
	if n.Slug() == "" {
		return ErrEmptyName
	}

	return nil
}

// FileName returns the file name of the note for the given extension.
func (n Note) FileName(ext string) string {
	return n.Slug() + normalizeExtension(ext)
}

// PathIn returns the note location relative to the shelf root.
func (n Note) PathIn(subject Entity, ext string) string {
	return filepath.Join(subject.Path().FilePath(), n.FileName(ext))
}

// NoteFromFile builds a note from a file name found on disk, using the stem
// as title.
func NoteFromFile(name string) Note {
	base := filepath.Base(name)

	return NewNote(strings.TrimSuffix(base, filepath.Ext(base)))
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultNoteExtension
	}

	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}

	return ext
}
