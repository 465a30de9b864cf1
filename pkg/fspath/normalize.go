package fspath

// Normalize parses s and collapses it lexically. See NormalizePath.
func Normalize(s string) (Path, bool) {
	return NormalizePath(Parse(s))
}

// NormalizePath collapses "." and ".." components without consulting the
// filesystem. A ".." cancels the nearest preceding named component; it is kept
// when nothing precedes it or when it follows another kept "..". A ".." right
// after the root is dropped since the root is its own parent.
//
// The second result is false when nothing is left of the path.
func NormalizePath(p Path) (Path, bool) {
	stack := make(Path, 0, len(p))

	for _, c := range p {
		switch c.Kind {
		case CurrentDir:
			continue
		case ParentDir:
			switch {
			case len(stack) == 0, stack[len(stack)-1].Kind == ParentDir:
				stack = append(stack, c)
			case stack[len(stack)-1].Kind == Root:
				continue
			default:
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, c)
		}
	}

	if stack.String() == "" {
		return nil, false
	}

	return stack, true
}
