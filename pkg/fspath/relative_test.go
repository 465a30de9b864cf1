package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeString(t *testing.T) {
	tests := []struct {
		name   string
		dst    string
		base   string
		want   string
		wantOK bool
	}{
		{"sibling directory", "./tests/lanoma-profile/common", "./tests/lanoma-profile/notes/calculus", "../../common", true},
		{"child directory", "./tests/lanoma-profile/common/calculus", "./tests/lanoma-profile/common", "calculus", true},
		{"same input", "./tests/lanoma-profile/common", "./tests/lanoma-profile/common", "", true},
		{"dst climbs from current dir", "../rust", "./", "../rust", true},
		{"base climbs", "./", "../rust", "", false},
		{"common parent dir", "../rust/././bin", "../rust/", "bin", true},
		{"dst exhausted after common parent dirs", "../rust", "../rust/../../../", "../../..", true},
		{"base exhausted after common parent dirs", "../rust/../../../", "../rust", "../../..", true},
		{"relative dst against absolute base", "./tests/lanoma-profile/common", "/dev/sda/calculus-drive", "", false},
		{"absolute dst against relative base", "/srv/notes", "notes/calculus", "/srv/notes", true},
		{"common root", "/tests/lanoma-profile/common", "/dev/sda/calculus-drive", "../../../tests/lanoma-profile/common", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RelativeString(tt.dst, tt.base)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelative_SamePathIsEmpty(t *testing.T) {
	for _, input := range []string{"a", "a/b/c", "/", "/srv/shelf", "../..", "../x/y"} {
		p, ok := Normalize(input)
		require.True(t, ok)

		rel, ok := Relative(p, p)
		require.True(t, ok, input)
		assert.NotNil(t, rel)
		assert.Empty(t, rel, input)
	}
}

func TestRelative_RootedMismatch(t *testing.T) {
	abs, _ := Normalize("/srv/shelf/calculus")
	rel, _ := Normalize("calculus")

	_, ok := Relative(rel, abs)
	assert.False(t, ok)

	got, ok := Relative(abs, rel)
	require.True(t, ok)
	assert.Equal(t, "/srv/shelf/calculus", got.String())
}

func TestRelative_ShelfSubdirectory(t *testing.T) {
	shelf, _ := Normalize("/home/user/notes")
	subject, _ := Normalize("/home/user/notes/bachelor-i/semester-i")

	got, ok := Relative(subject, shelf)
	require.True(t, ok)
	assert.Equal(t, "bachelor-i/semester-i", got.String())

	back, ok := Relative(shelf, subject)
	require.True(t, ok)
	assert.Equal(t, "../..", back.String())
}
