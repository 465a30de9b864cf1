package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

const maxProgressWidth = 48

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view in compile mode. In message mode results
// are printed as they come.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options...).mode != ModeCompile {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	program := tea.NewProgram(newCompileModel(),
		tea.WithOutput(p.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Progress view stopped", "error", err)
		}
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the progress view and waits for its final frame.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(closeMsg{})
	<-done
}

func (p *TUI) send(msg tea.Msg) bool {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

func (p *TUI) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.output, line)
}

// DisplayShelfReady prints the shelf location.
func (p *TUI) DisplayShelfReady(_ context.Context, root m.Path) {
	p.println(successStyle.Render("✓") + " Shelf ready at " + titleStyle.Render(root.String()))
}

// DisplayShelfMoved prints the old and new shelf locations.
func (p *TUI) DisplayShelfMoved(_ context.Context, from, to m.Path) {
	p.println(successStyle.Render("✓") + " Shelf moved " + mutedStyle.Render(from.String()) + " → " + titleStyle.Render(to.String()))
}

// DisplaySubjectsAdded lists the subjects that were created.
func (p *TUI) DisplaySubjectsAdded(_ context.Context, created []m.Entity) {
	if len(created) == 0 {
		p.println(mutedStyle.Render("No new subjects"))
		return
	}

	for _, subject := range created {
		p.println(successStyle.Render("+") + " " + subject.FullName)
	}
}

// DisplayNotesAdded lists the notes created in subject and those left alone.
func (p *TUI) DisplayNotesAdded(_ context.Context, subject m.Entity, created, skipped []m.Note) {
	for _, note := range created {
		p.println(successStyle.Render("+") + " " + note.Title + mutedStyle.Render(" in "+subject.FullName))
	}

	for _, note := range skipped {
		p.println(mutedStyle.Render("= " + note.Title + " already exists in " + subject.FullName))
	}
}

// DisplayRemoved lists the removed and the missing items.
func (p *TUI) DisplayRemoved(_ context.Context, removed, missing []string) {
	for _, name := range removed {
		p.println(failureStyle.Render("-") + " " + name)
	}

	for _, name := range missing {
		p.println(mutedStyle.Render("? " + name + " not found"))
	}
}

// DisplayListing prints subjects and their notes as a tree.
func (p *TUI) DisplayListing(_ context.Context, listings []m.SubjectListing) {
	if len(listings) == 0 {
		p.println(mutedStyle.Render("No subjects on the shelf"))
		return
	}

	var b strings.Builder

	for _, listing := range listings {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(listing.Name), mutedStyle.Render(listing.Dir))

		for _, note := range listing.Notes {
			fmt.Fprintf(&b, "  %s\n", note)
		}
	}

	p.println(strings.TrimRight(b.String(), "\n"))
}

// DisplayBatchStarted announces a batch to the progress view.
func (p *TUI) DisplayBatchStarted(_ context.Context, dir string, batch m.Batch) {
	msg := batchStartedMsg{dir: dir, total: len(batch.Units), workers: batch.PoolSize()}
	if !p.send(msg) {
		p.println(fmt.Sprintf("Compiling %d unit(s) in %s", msg.total, dir))
	}
}

// UnitStarted forwards unit progress to the progress view.
func (p *TUI) UnitStarted(_ context.Context, unit m.CompilableUnit) {
	p.send(unitStartedMsg{id: unit.ID})
}

// UnitFinished forwards unit progress to the progress view.
func (p *TUI) UnitFinished(_ context.Context, unit m.CompilableUnit, ok bool) {
	p.send(unitFinishedMsg{id: unit.ID, ok: ok})
}

// DisplayCompileReport hands the batch report to the progress view.
func (p *TUI) DisplayCompileReport(_ context.Context, dir string, report m.CompileReport) {
	if !p.send(reportMsg{dir: dir, report: report}) {
		p.println(renderReport(dir, report))
	}
}

// DisplayBatchError hands a batch error to the progress view.
func (p *TUI) DisplayBatchError(_ context.Context, dir string, err error) {
	if !p.send(batchErrorMsg{dir: dir, err: err}) {
		p.println(failureStyle.Render("✗ " + dir + ": " + err.Error()))
	}
}

type (
	batchStartedMsg struct {
		dir     string
		total   int
		workers int
	}
	unitStartedMsg struct {
		id string
	}
	unitFinishedMsg struct {
		id string
		ok bool
	}
	reportMsg struct {
		dir    string
		report m.CompileReport
	}
	batchErrorMsg struct {
		dir string
		err error
	}
	closeMsg struct{}
)

// batchView is the progress of one batch.
type batchView struct {
	dir     string
	total   int
	workers int
	done    int
	failed  int
	running []string
	report  *m.CompileReport
	err     error
}

func (b batchView) finished() bool {
	return b.report != nil || b.err != nil
}

// compileModel is the Bubble Tea model following the batches of a compile
// command.
type compileModel struct {
	spinner  spinner.Model
	progress progress.Model
	batches  []batchView
	quitting bool
}

func newCompileModel() compileModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return compileModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxProgressWidth)),
	}
}

func (cm compileModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

//nolint:cyclop // One case per message type.
func (cm compileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.progress.Width = min(max(msg.Width-16, 10), maxProgressWidth)
		return cm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			cm.quitting = true
			return cm, tea.Quit
		}

		return cm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd

	case batchStartedMsg:
		cm.batches = append(cm.batches, batchView{dir: msg.dir, total: msg.total, workers: msg.workers})
		return cm, nil

	case unitStartedMsg:
		if current := cm.current(); current != nil {
			current.running = append(current.running, msg.id)
		}

		return cm, nil

	case unitFinishedMsg:
		if current := cm.current(); current != nil {
			current.done++
			if !msg.ok {
				current.failed++
			}

			current.running = removeID(current.running, msg.id)
		}

		return cm, nil

	case reportMsg:
		report := msg.report
		cm.batchFor(msg.dir).report = &report

		return cm, nil

	case batchErrorMsg:
		cm.batchFor(msg.dir).err = msg.err
		return cm, nil

	case closeMsg:
		cm.quitting = true
		return cm, tea.Quit
	}

	return cm, nil
}

// current returns the last batch that is still running.
func (cm *compileModel) current() *batchView {
	if len(cm.batches) == 0 {
		return nil
	}

	last := &cm.batches[len(cm.batches)-1]
	if last.finished() {
		return nil
	}

	return last
}

// batchFor returns the running batch for dir, adding one when the batch
// never announced itself.
func (cm *compileModel) batchFor(dir string) *batchView {
	if current := cm.current(); current != nil && current.dir == dir {
		return current
	}

	cm.batches = append(cm.batches, batchView{dir: dir})

	return &cm.batches[len(cm.batches)-1]
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]

	removed := false

	for _, candidate := range ids {
		if !removed && candidate == id {
			removed = true
			continue
		}

		out = append(out, candidate)
	}

	return out
}

func (cm compileModel) View() string {
	var b strings.Builder

	for _, batch := range cm.batches {
		b.WriteString(cm.renderBatch(batch))
	}

	return b.String()
}

func (cm compileModel) renderBatch(batch batchView) string {
	var b strings.Builder

	switch {
	case batch.err != nil:
		fmt.Fprintf(&b, "%s %s\n", failureStyle.Render("✗"), titleStyle.Render(batch.dir))
		fmt.Fprintf(&b, "  %s\n", failureStyle.Render(batch.err.Error()))

	case batch.report != nil:
		b.WriteString(renderReport(batch.dir, *batch.report))
		b.WriteString("\n")

	default:
		percent := 0.0
		if batch.total > 0 {
			percent = float64(batch.done) / float64(batch.total)
		}

		fmt.Fprintf(&b, "%s %s %s\n", cm.spinner.View(), titleStyle.Render(batch.dir),
			mutedStyle.Render(fmt.Sprintf("(%d worker(s))", batch.workers)))
		fmt.Fprintf(&b, "  %s %d/%d", cm.progress.ViewAs(percent), batch.done, batch.total)

		if batch.failed > 0 {
			b.WriteString(failureStyle.Render(fmt.Sprintf(" %d failed", batch.failed)))
		}

		b.WriteString("\n")

		if len(batch.running) > 0 {
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(strings.Join(batch.running, ", ")))
		}
	}

	return b.String()
}

func renderReport(dir string, report m.CompileReport) string {
	var b strings.Builder

	mark := successStyle.Render("✓")
	if len(report.Failed) > 0 {
		mark = failureStyle.Render("✗")
	}

	fmt.Fprintf(&b, "%s %s %s", mark, titleStyle.Render(dir),
		mutedStyle.Render(fmt.Sprintf("%d/%d compiled", len(report.Compiled), report.Total())))

	for _, id := range report.Compiled {
		fmt.Fprintf(&b, "\n  %s %s", successStyle.Render("✓"), id)
	}

	for _, id := range report.Failed {
		fmt.Fprintf(&b, "\n  %s %s", failureStyle.Render("✗"), id)
	}

	return b.String()
}
