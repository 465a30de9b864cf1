package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayShelfReady prints the shelf location.
func (s *SimpleUI) DisplayShelfReady(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Shelf ready at %s\n", root)
}

// DisplayShelfMoved prints the old and new shelf locations.
func (s *SimpleUI) DisplayShelfMoved(ctx context.Context, from, to m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Shelf moved from %s to %s\n", from, to)
}

// DisplaySubjectsAdded lists the subjects that were created.
func (s *SimpleUI) DisplaySubjectsAdded(ctx context.Context, created []m.Entity) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(created) == 0 {
		s.printf("No new subjects\n")
		return
	}

	for _, subject := range created {
		s.printf("Created subject %s\n", subject.FullName)
	}
}

// DisplayNotesAdded lists the notes created in subject and those left alone.
func (s *SimpleUI) DisplayNotesAdded(ctx context.Context, subject m.Entity, created, skipped []m.Note) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, note := range created {
		s.printf("Created note %q in %s\n", note.Title, subject.FullName)
	}

	for _, note := range skipped {
		s.printf("Skipped note %q in %s: already exists (use --force to overwrite)\n", note.Title, subject.FullName)
	}
}

// DisplayRemoved lists the removed and the missing items.
func (s *SimpleUI) DisplayRemoved(ctx context.Context, removed, missing []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, name := range removed {
		s.printf("Removed %s\n", name)
	}

	for _, name := range missing {
		s.printf("Not found %s\n", name)
	}
}

// DisplayListing prints a table of subjects and their notes.
func (s *SimpleUI) DisplayListing(ctx context.Context, listings []m.SubjectListing) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(listings) == 0 {
		s.printf("No subjects on the shelf\n")
		return
	}

	s.printf("\n%s", renderListingTable(listings))
}

func renderListingTable(listings []m.SubjectListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Subject", "Path", "Notes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	notesCount := 0

	for _, listing := range listings {
		table.Append([]string{listing.Name, listing.Dir, strings.Join(listing.Notes, ", ")})

		notesCount += len(listing.Notes)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Subjects %d", len(listings)),
		"",
		fmt.Sprintf("%d", notesCount),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayBatchStarted announces a batch.
func (s *SimpleUI) DisplayBatchStarted(ctx context.Context, dir string, batch m.Batch) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Compiling %d unit(s) in %s with %d worker(s)\n", len(batch.Units), dir, batch.PoolSize())
}

// UnitStarted shows that a unit is being compiled.
func (s *SimpleUI) UnitStarted(ctx context.Context, unit m.CompilableUnit) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Starting %s %s\n", unit.Kind, unit.ID)
}

// UnitFinished shows the outcome of a unit.
func (s *SimpleUI) UnitFinished(ctx context.Context, unit m.CompilableUnit, ok bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Finished %s %s -> %s\n", unit.Kind, unit.ID, outcomeLabel(ok))
}

// DisplayCompileReport prints the compiled and failed units of a batch.
func (s *SimpleUI) DisplayCompileReport(ctx context.Context, dir string, report m.CompileReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderReportTable(dir, report))
}

func renderReportTable(dir string, report m.CompileReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{dir, "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, id := range report.Compiled {
		table.Append([]string{id, outcomeLabel(true)})
	}

	for _, id := range report.Failed {
		table.Append([]string{id, outcomeLabel(false)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", report.Total()),
		fmt.Sprintf("%d failed", len(report.Failed)),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayBatchError prints why a batch could not run.
func (s *SimpleUI) DisplayBatchError(ctx context.Context, dir string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("Batch %s failed: %v\n", dir, err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func outcomeLabel(ok bool) string {
	if ok {
		return "compiled"
	}

	return "failed"
}
