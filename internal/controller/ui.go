// Package controller provides the output adapters for shelf operations and
// compilation progress.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMessage StartMode = iota
	ModeCompile
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithMessageMode sets the UI to print plain results.
func WithMessageMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMessage
	}
}

// WithCompileMode sets the UI to follow compilation progress.
func WithCompileMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompile
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMessage}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
//
// UnitStarted and UnitFinished are called from compile workers and must be
// safe for concurrent use.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayShelfReady(ctx context.Context, root m.Path)
	DisplayShelfMoved(ctx context.Context, from, to m.Path)
	DisplaySubjectsAdded(ctx context.Context, created []m.Entity)
	DisplayNotesAdded(ctx context.Context, subject m.Entity, created, skipped []m.Note)
	DisplayRemoved(ctx context.Context, removed, missing []string)
	DisplayListing(ctx context.Context, listings []m.SubjectListing)
	DisplayBatchStarted(ctx context.Context, dir string, batch m.Batch)
	UnitStarted(ctx context.Context, unit m.CompilableUnit)
	UnitFinished(ctx context.Context, unit m.CompilableUnit, ok bool)
	DisplayCompileReport(ctx context.Context, dir string, report m.CompileReport)
	DisplayBatchError(ctx context.Context, dir string, err error)
}

// NewUI returns the TUI when the output is a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
