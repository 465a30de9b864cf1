//go:build !windows

package adapter

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

func TestLocalCommandRunnerAdapter_RunCommand_Success(t *testing.T) {
	adapter := NewLocalCommandRunnerAdapter()
	workDir := t.TempDir()

	out, err := adapter.RunCommand(context.Background(), m.Path(workDir), "pwd")
	require.NoError(t, err, out)

	want, err := filepath.EvalSymlinks(workDir)
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalCommandRunnerAdapter_RunCommand_DoesNotChangeCwd(t *testing.T) {
	adapter := NewLocalCommandRunnerAdapter()

	before, err := os.Getwd()
	require.NoError(t, err)

	_, err = adapter.RunCommand(context.Background(), m.Path(t.TempDir()), "true")
	require.NoError(t, err)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLocalCommandRunnerAdapter_RunCommand_Failure(t *testing.T) {
	adapter := NewLocalCommandRunnerAdapter()

	out, err := adapter.RunCommand(context.Background(), m.Path(t.TempDir()), "echo broken >&2; exit 3")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, out, "broken")
}

func TestLocalCommandRunnerAdapter_RunCommand_MissingWorkDir(t *testing.T) {
	adapter := NewLocalCommandRunnerAdapter()

	_, err := adapter.RunCommand(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope")), "true")
	require.Error(t, err)
}

func TestLocalCommandRunnerAdapter_RunCommand_ContextDeadline(t *testing.T) {
	adapter := NewLocalCommandRunnerAdapter()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := adapter.RunCommand(ctx, m.Path(t.TempDir()), "sleep 5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}
