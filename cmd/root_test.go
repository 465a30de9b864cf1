package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/domain"
	domainmocks "lanoma.dev/pkg/lanoma/internal/domain/mocks"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

// useMockWorkflow swaps the package workflow for a mock for the duration of
// the test.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// executeCmd runs a fresh root command with the given subcommands and args.
func executeCmd(t *testing.T, args []string, subcommands ...*cobra.Command) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "lanoma", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{shelfFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	out, err := executeCmd(t, []string{})
	require.NoError(t, err)
	assert.Contains(t, out, "LaTeX notes")
}

func TestRootCmd_ShelfFlag(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Shelf == m.Path("/tmp/my-shelf")
	})).Return(nil).Once()

	_, err := executeCmd(t, []string{"--shelf", "/tmp/my-shelf", "list"}, newListCmd())
	require.NoError(t, err)
}

func TestRootCmd_VerboseWritesDebugLog(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("List", mock.Anything, mock.Anything).Return(nil).Once()

	logFile := filepath.Join(t.TempDir(), "lanoma.log")

	_, err := executeCmd(t, []string{"--verbose", "--log-file", logFile, "list"}, newListCmd())
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Running command")
	assert.Contains(t, string(content), "lanoma list")
}
