package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNote_FileName(t *testing.T) {
	note := NewNote("An introduction to calculus concepts")

	assert.Equal(t, "an-introduction-to-calculus-concepts.tex", note.FileName(""))
	assert.Equal(t, "an-introduction-to-calculus-concepts.tex", note.FileName(".tex"))
	assert.Equal(t, "an-introduction-to-calculus-concepts.md", note.FileName("md"))
}

func TestNote_PathIn(t *testing.T) {
	note := NewNote("An introduction to calculus concepts")

	assert.Equal(t,
		filepath.Join("calculus", "an-introduction-to-calculus-concepts.tex"),
		note.PathIn(NewEntity("Calculus"), ".tex"),
	)
	assert.Equal(t,
		filepath.Join("first-year", "semester-i", "calculus", "an-introduction-to-calculus-concepts.tex"),
		note.PathIn(NewEntity("First Year/Semester I/Calculus"), ".tex"),
	)
}

func TestNote_Validate(t *testing.T) {
	assert.NoError(t, NewNote("Taylor Series").Validate())
	assert.ErrorIs(t, NewNote("   ").Validate(), ErrEmptyName)
	assert.ErrorIs(t, NewNote("!!").Validate(), ErrEmptyName)
}

func TestNoteFromFile(t *testing.T) {
	note := NoteFromFile(filepath.Join("calculus", "taylor-series.tex"))

	assert.Equal(t, "taylor-series", note.Title)
	assert.Equal(t, "taylor-series.tex", note.FileName(".tex"))
}

func TestBatch_PoolSize(t *testing.T) {
	units := make([]CompilableUnit, 5)

	tests := []struct {
		name    string
		units   []CompilableUnit
		threads int
		want    int
	}{
		{"empty batch", nil, 4, 0},
		{"zero threads", units, 0, 1},
		{"negative threads", units, -3, 1},
		{"fewer threads than units", units, 3, 3},
		{"clamped to unit count", units, 16, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Batch{Units: tt.units, Threads: tt.threads}
			assert.Equal(t, tt.want, b.PoolSize())
		})
	}
}

func TestCompileReport(t *testing.T) {
	r := CompileReport{Compiled: []string{"a"}, Failed: []string{"b", "c"}}
	assert.Equal(t, 3, r.Total())
	assert.False(t, r.AllFailed())

	assert.True(t, CompileReport{Failed: []string{"a"}}.AllFailed())
	assert.False(t, CompileReport{}.AllFailed())
}

func TestUnits(t *testing.T) {
	subject := NewEntity("Physics/Optics")

	note := NewNoteUnit("/shelf/physics/optics", NewNote("Thin Lenses"), ".tex")
	assert.Equal(t, UnitNote, note.Kind)
	assert.Equal(t, "Thin Lenses", note.ID)
	assert.Equal(t, "thin-lenses.tex", note.Source)
	assert.Equal(t, Path("/shelf/physics/optics"), note.WorkDir)

	master := NewMasterUnit(subject, "/shelf/physics/optics", ".tex")
	assert.Equal(t, UnitMaster, master.Kind)
	assert.Equal(t, "Physics/Optics", master.ID)
	assert.Equal(t, "master.tex", master.Source)
	assert.Equal(t, "master", master.Kind.String())
}
