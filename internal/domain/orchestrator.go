package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

// ErrBatchDirectory is returned when a batch cannot run in its working
// directory. No unit of such a batch is attempted.
var ErrBatchDirectory = errors.New("cannot enter batch working directory")

// CompileObserver is notified as units start and finish. Calls come from the
// worker goroutines, so implementations must be safe for concurrent use.
type CompileObserver interface {
	UnitStarted(ctx context.Context, unit m.CompilableUnit)
	UnitFinished(ctx context.Context, unit m.CompilableUnit, ok bool)
}

// CompileOption configures a single Compile call.
type CompileOption func(*compileConfig)

type compileConfig struct {
	observer CompileObserver
	timeout  time.Duration
}

// WithObserver reports unit progress to observer.
func WithObserver(observer CompileObserver) CompileOption {
	return func(c *compileConfig) {
		c.observer = observer
	}
}

// WithUnitTimeout bounds the run time of every unit. A unit that runs out of
// time counts as failed. Zero means no limit.
func WithUnitTimeout(timeout time.Duration) CompileOption {
	return func(c *compileConfig) {
		c.timeout = timeout
	}
}

// Orchestrator compiles batches of units with a bounded worker pool.
type Orchestrator interface {
	// Compile runs the batch command once per unit and sorts the units into
	// compiled and failed. The error is non-nil only when the batch as a
	// whole could not run.
	Compile(ctx context.Context, batch m.Batch, opts ...CompileOption) (m.CompileReport, error)
}

type orchestrator struct {
	fsAdapter     adapter.ShelfFSAdapter
	runnerAdapter adapter.CommandRunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and command runner adapters.
func NewOrchestrator(fsAdapter adapter.ShelfFSAdapter, runnerAdapter adapter.CommandRunnerAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter:     fsAdapter,
		runnerAdapter: runnerAdapter,
	}
}

func (o *orchestrator) Compile(ctx context.Context, batch m.Batch, opts ...CompileOption) (m.CompileReport, error) {
	cfg := compileConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	report := m.CompileReport{
		WorkDir:  batch.WorkDir,
		Compiled: []string{},
		Failed:   []string{},
	}

	if batch.IsEmpty() {
		slog.Debug("Nothing to compile", "workDir", batch.WorkDir)
		return report, nil
	}

	if !o.fsAdapter.IsDir(ctx, batch.WorkDir) {
		slog.Error("Batch working directory is not usable", "workDir", batch.WorkDir)
		return report, fmt.Errorf("%w: %s", ErrBatchDirectory, batch.WorkDir)
	}

	poolSize := batch.PoolSize()
	slog.Info("Compiling batch", "workDir", batch.WorkDir, "units", len(batch.Units), "workers", poolSize)

	// Each worker owns exactly one slot, so the slice needs no lock.
	succeeded := make([]bool, len(batch.Units))

	var group errgroup.Group

	group.SetLimit(poolSize)

	for i, unit := range batch.Units {
		group.Go(func() error {
			succeeded[i] = o.compileUnit(ctx, batch, unit, cfg)
			return nil
		})
	}

	_ = group.Wait()

	for i, unit := range batch.Units {
		if succeeded[i] {
			report.Compiled = append(report.Compiled, unit.ID)
		} else {
			report.Failed = append(report.Failed, unit.ID)
		}
	}

	slog.Info("Batch finished", "workDir", batch.WorkDir, "compiled", len(report.Compiled), "failed", len(report.Failed))

	return report, nil
}

func (o *orchestrator) compileUnit(ctx context.Context, batch m.Batch, unit m.CompilableUnit, cfg compileConfig) bool {
	if cfg.observer != nil {
		cfg.observer.UnitStarted(ctx, unit)
	}

	ok := o.runUnit(ctx, batch, unit, cfg.timeout)

	if cfg.observer != nil {
		cfg.observer.UnitFinished(ctx, unit, ok)
	}

	return ok
}

func (o *orchestrator) runUnit(ctx context.Context, batch m.Batch, unit m.CompilableUnit, timeout time.Duration) bool {
	if err := ctx.Err(); err != nil {
		slog.Warn("Unit skipped", "unit", unit.ID, "error", err)
		return false
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	command := RenderCommand(batch.Command, unit.Source)
	slog.Debug("Running build command", "unit", unit.ID, "command", command, "workDir", batch.WorkDir)

	output, err := o.runnerAdapter.RunCommand(ctx, batch.WorkDir, command)
	if err != nil {
		slog.Warn("Unit failed", "unit", unit.ID, "kind", unit.Kind, "error", err, "output", output)
		return false
	}

	slog.Debug("Unit compiled", "unit", unit.ID, "kind", unit.Kind)

	return true
}
