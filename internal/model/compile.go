package model

// UnitKind tells apart the kinds of documents that can be compiled.
type UnitKind int

const (
	// UnitNote is a regular note of a subject.
	UnitNote UnitKind = iota
	// UnitMaster is the master document of a subject.
	UnitMaster
)

// String returns a readable name for the kind.
func (k UnitKind) String() string {
	switch k {
	case UnitNote:
		return "note"
	case UnitMaster:
		return "master"
	}

	return "unknown"
}

// CompilableUnit is one document handed to the build tool.
type CompilableUnit struct {
	Kind UnitKind
	// ID is what reports show for the unit.
	ID string
	// Source is the document path, relative to WorkDir.
	Source string
	// WorkDir is the directory the build tool runs in.
	WorkDir Path
}

// NewNoteUnit returns the unit compiling note inside subjectDir.
func NewNoteUnit(subjectDir Path, note Note, ext string) CompilableUnit {
	return CompilableUnit{
		Kind:    UnitNote,
		ID:      note.Title,
		Source:  note.FileName(ext),
		WorkDir: subjectDir,
	}
}

// NewMasterUnit returns the unit compiling the master document of subject.
func NewMasterUnit(subject Entity, subjectDir Path, ext string) CompilableUnit {
	return CompilableUnit{
		Kind:    UnitMaster,
		ID:      subject.FullName,
		Source:  NewNote(MasterNoteStem).FileName(ext),
		WorkDir: subjectDir,
	}
}

// Batch is a set of units sharing a working directory, a command template
// and a concurrency degree.
type Batch struct {
	WorkDir Path
	Units   []CompilableUnit
	Command string
	Threads int
}

// IsEmpty reports whether the batch has nothing to compile.
func (b Batch) IsEmpty() bool {
	return len(b.Units) == 0
}

// PoolSize returns the number of workers for the batch: Threads clamped to
// [1, len(Units)]. It is zero for an empty batch.
func (b Batch) PoolSize() int {
	if b.IsEmpty() {
		return 0
	}

	threads := b.Threads
	if threads < 1 {
		threads = 1
	}

	return min(threads, len(b.Units))
}

// CompileReport is the outcome of one batch. Every unit of the batch appears
// in exactly one of Compiled and Failed.
type CompileReport struct {
	WorkDir  Path
	Compiled []string
	Failed   []string
}

// Total returns the number of units accounted for.
func (r CompileReport) Total() int {
	return len(r.Compiled) + len(r.Failed)
}

// AllFailed reports whether the batch had units and none of them compiled.
func (r CompileReport) AllFailed() bool {
	return len(r.Failed) > 0 && len(r.Compiled) == 0
}
