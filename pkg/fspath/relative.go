package fspath

// Relative returns the path that, joined to base, denotes dst. Both paths are
// expected to be normalized already.
//
// When only one of the paths is absolute there is a relation only if dst is
// the absolute one, in which case dst is returned as is. A ".." in base at the
// point where the paths diverge cannot be climbed past safely, so no relation
// is reported either. Equal paths yield an empty path and true.
func Relative(dst, base Path) (Path, bool) {
	if dst.IsAbs() != base.IsAbs() {
		if dst.IsAbs() {
			return append(Path(nil), dst...), true
		}

		return nil, false
	}

	out := Path{}
	i, j := 0, 0

	for {
		switch {
		case i >= len(dst) && j >= len(base):
			return out, true

		case j >= len(base):
			return append(out, dst[i:]...), true

		case i >= len(dst):
			out = append(out, parentComponent)
			j++

		case len(out) == 0 && dst[i] == base[j]:
			i++
			j++

		case base[j].Kind == CurrentDir:
			out = append(out, dst[i])
			i++
			j++

		case base[j].Kind == ParentDir:
			return nil, false

		default:
			for range base[j:] {
				out = append(out, parentComponent)
			}

			return append(append(out, dst[i]), dst[i+1:]...), true
		}
	}
}

// RelativeString parses both arguments and calls Relative. The inputs are not
// normalized first.
func RelativeString(dst, base string) (string, bool) {
	rel, ok := Relative(Parse(dst), Parse(base))
	if !ok {
		return "", false
	}

	return rel.String(), true
}
