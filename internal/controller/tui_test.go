package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

func updateModel(t *testing.T, model compileModel, msgs ...tea.Msg) compileModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := model.Update(msg)

		var ok bool

		model, ok = next.(compileModel)
		require.True(t, ok)
	}

	return model
}

func TestCompileModel_TracksBatchProgress(t *testing.T) {
	model := updateModel(t, newCompileModel(),
		batchStartedMsg{dir: "calculus", total: 3, workers: 2},
		unitStartedMsg{id: "limits"},
		unitStartedMsg{id: "series"},
		unitFinishedMsg{id: "limits", ok: true},
		unitFinishedMsg{id: "series", ok: false},
		unitStartedMsg{id: "broken"},
	)

	require.Len(t, model.batches, 1)

	batch := model.batches[0]
	assert.Equal(t, 2, batch.done)
	assert.Equal(t, 1, batch.failed)
	assert.Equal(t, []string{"broken"}, batch.running)
	assert.False(t, batch.finished())

	view := model.View()
	assert.Contains(t, view, "calculus")
	assert.Contains(t, view, "2/3")
	assert.Contains(t, view, "1 failed")
	assert.Contains(t, view, "broken")
}

func TestCompileModel_ReportsAndErrors(t *testing.T) {
	model := updateModel(t, newCompileModel(),
		batchStartedMsg{dir: "calculus", total: 2, workers: 1},
		reportMsg{dir: "calculus", report: m.CompileReport{Compiled: []string{"limits"}, Failed: []string{"series"}}},
		batchStartedMsg{dir: "algebra", total: 1, workers: 1},
		batchErrorMsg{dir: "algebra", err: errors.New("cannot enter batch working directory")},
		// A report for a batch that never announced itself gets its own entry.
		reportMsg{dir: "geometry", report: m.CompileReport{Compiled: []string{"angles"}}},
	)

	require.Len(t, model.batches, 3)
	assert.True(t, model.batches[0].finished())
	assert.True(t, model.batches[1].finished())
	assert.Equal(t, "geometry", model.batches[2].dir)

	view := model.View()
	assert.Contains(t, view, "1/2 compiled")
	assert.Contains(t, view, "series")
	assert.Contains(t, view, "cannot enter batch working directory")
	assert.Contains(t, view, "angles")
}

func TestCompileModel_Quit(t *testing.T) {
	model := newCompileModel()

	next, cmd := model.Update(closeMsg{})
	require.NotNil(t, cmd)
	assert.True(t, next.(compileModel).quitting)

	next, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(compileModel).quitting)
}

func TestCompileModel_WindowSize(t *testing.T) {
	model := updateModel(t, newCompileModel(), tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 14, model.progress.Width)

	model = updateModel(t, model, tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, maxProgressWidth, model.progress.Width)
}

func TestRemoveID(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, removeID([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a", "a"}, removeID([]string{"a", "a", "a"}, "a"))
	assert.Empty(t, removeID(nil, "a"))
}

func TestTUI_MessageMode(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithMessageMode()))
	ui.DisplaySubjectsAdded(ctx, []m.Entity{m.NewEntity("Physics/Optics")})
	ui.DisplayCompileReport(ctx, "physics/optics", m.CompileReport{Compiled: []string{"thin-lenses"}})
	ui.DisplayListing(ctx, []m.SubjectListing{{Name: "Optics", Dir: "physics/optics", Notes: []string{"thin-lenses.tex"}}})
	ui.Close(ctx)

	got := out.String()
	assert.Contains(t, got, "Physics/Optics")
	assert.Contains(t, got, "1/1 compiled")
	assert.Contains(t, got, "thin-lenses.tex")
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	_, simple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, simple)

	_, tui := NewUI(cmd, true).(*TUI)
	assert.True(t, tui)

	assert.False(t, IsTTY(nil))
}
