// Package model defines the data structures shared by the shelf, the
// compilation orchestrator and the command layer.
package model

import (
	"errors"
	"strings"
	"unicode"

	"lanoma.dev/pkg/lanoma/pkg/fspath"
)

// ErrEmptyName is returned when a name has no usable path segment left after
// normalization or slugging.
var ErrEmptyName = errors.New("name is empty after normalization")

// Entity is a hierarchical name such as "Bachelor I/Semester I/Calculus".
// Subjects are entities; every segment maps to one directory on the shelf.
type Entity struct {
	// FullName is the normalized display form, segments separated by "/".
	FullName string
}

// NewEntity normalizes raw and trims every segment. It never fails; input
// that collapses to nothing yields an entity with an empty FullName.
func NewEntity(raw string) Entity {
	normalized, ok := fspath.Normalize(raw)
	if !ok {
		return Entity{}
	}

	trimmed := make(fspath.Path, 0, len(normalized))

	for _, c := range normalized {
		if c.Kind != fspath.Named {
			trimmed = append(trimmed, c)
			continue
		}

		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}

		trimmed = append(trimmed, fspath.NamedComponent(name))
	}

	// Trimming may turn a segment into "." or "..", so collapse once more.
	again, ok := fspath.Normalize(trimmed.String())
	if !ok {
		return Entity{}
	}

	return Entity{FullName: again.String()}
}

// IsEmpty reports whether the entity has no name at all.
func (e Entity) IsEmpty() bool {
	return e.FullName == ""
}

// Name returns the last segment of the full name verbatim.
func (e Entity) Name() string {
	components := fspath.Parse(e.FullName)
	if len(components) == 0 {
		return ""
	}

	return components[len(components)-1].Text()
}

// Path returns the slugged form of the entity. Root and ".." segments are
// passed through unchanged.
func (e Entity) Path() fspath.Path {
	components := fspath.Parse(e.FullName)
	out := make(fspath.Path, 0, len(components))

	for _, c := range components {
		if c.Kind == fspath.Named {
			c = fspath.NamedComponent(Slug(c.Name))
		}

		out = append(out, c)
	}

	return out
}

// Validate returns ErrEmptyName when the entity or one of its slugged
// segments is empty.
func (e Entity) Validate() error {
	if e.IsEmpty() {
		return ErrEmptyName
	}

	for _, c := range e.Path() {
		if c.Kind == fspath.Named && c.Name == "" {
			return ErrEmptyName
		}
	}

	return nil
}

// Ancestors returns the entity followed by every strict prefix of it,
// longest first. Prefixes with an empty name are left out.
func (e Entity) Ancestors() []Entity {
	components := fspath.Parse(e.FullName)
	ancestors := make([]Entity, 0, len(components))

	for n := len(components); n > 0; n-- {
		ancestor := NewEntity(components[:n].String())
		if ancestor.IsEmpty() {
			continue
		}

		ancestors = append(ancestors, ancestor)
	}

	return ancestors
}

// Resolve joins root with the slugged path of the entity.
func (e Entity) Resolve(root Path) Path {
	return root.Join(e.Path().FilePath())
}

// EscapesRoot reports whether the slugged path climbs above the directory it
// is resolved against.
func (e Entity) EscapesRoot() bool {
	p := e.Path()

	return len(p) > 0 && p[0].Kind == fspath.ParentDir
}

// String implements fmt.Stringer.
func (e Entity) String() string {
	return e.FullName
}

// Slug lowercases s and collapses every run of characters that are not
// letters or digits into a single hyphen. Leading and trailing hyphens are
// dropped, so Slug(Slug(s)) == Slug(s).
func Slug(s string) string {
	var b strings.Builder

	pending := false

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = true
			continue
		}

		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}

		pending = false

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
