// Package fspath provides lexical path handling for shelf paths: splitting a
// path-like string into components, collapsing it, and computing the path of
// one location relative to another. Nothing in this package touches the disk.
package fspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies what a path component denotes.
type Kind int

const (
	// Root is the leading separator of an absolute path.
	Root Kind = iota
	// CurrentDir is a "." component.
	CurrentDir
	// ParentDir is a ".." component.
	ParentDir
	// Named is any other component.
	Named
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Root:
		return "root"
	case CurrentDir:
		return "current"
	case ParentDir:
		return "parent"
	case Named:
		return "named"
	}

	return "unknown"
}

// Component is a single element of a Path.
type Component struct {
	Kind Kind
	Name string
}

// Text returns the textual form of the component as it appears in a path.
func (c Component) Text() string {
	switch c.Kind {
	case Root:
		return "/"
	case CurrentDir:
		return "."
	case ParentDir:
		return ".."
	case Named:
		return c.Name
	}

	return ""
}

// Path is an ordered sequence of components.
type Path []Component

var (
	rootComponent    = Component{Kind: Root}
	currentComponent = Component{Kind: CurrentDir}
	parentComponent  = Component{Kind: ParentDir}
)

// NamedComponent returns a Named component for name.
func NamedComponent(name string) Component {
	return Component{Kind: Named, Name: name}
}

// Parse splits s into components. Repeated separators and trailing
// separators are ignored and a "." is only kept when it is the first component
// of a relative path, so "a/./b" and "a/b" parse to the same components.
func Parse(s string) Path {
	if os.PathSeparator != '/' {
		s = strings.ReplaceAll(s, string(os.PathSeparator), "/")
	}

	var components Path

	if strings.HasPrefix(s, "/") {
		components = append(components, rootComponent)
	}

	for i, part := range strings.Split(s, "/") {
		switch part {
		case "":
			continue
		case ".":
			if i == 0 {
				components = append(components, currentComponent)
			}
		case "..":
			components = append(components, parentComponent)
		default:
			components = append(components, NamedComponent(part))
		}
	}

	return components
}

// IsAbs reports whether the path starts at the root.
func (p Path) IsAbs() bool {
	return len(p) > 0 && p[0].Kind == Root
}

// Equal reports whether both paths have the same components.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Segments returns the textual form of every component except the root.
func (p Path) Segments() []string {
	segments := make([]string, 0, len(p))

	for _, c := range p {
		if c.Kind == Root {
			continue
		}

		segments = append(segments, c.Text())
	}

	return segments
}

// String joins the components with forward slashes. A "." that is not the
// first component is omitted.
func (p Path) String() string {
	var b strings.Builder

	for i, c := range p {
		switch {
		case c.Kind == Root:
			b.WriteString("/")
			continue
		case c.Kind == CurrentDir && i > 0:
			continue
		}

		if b.Len() > 0 && !strings.HasSuffix(b.String(), "/") {
			b.WriteString("/")
		}

		b.WriteString(c.Text())
	}

	return b.String()
}

// FilePath returns the path using the operating system separator.
func (p Path) FilePath() string {
	return filepath.FromSlash(p.String())
}
