package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/domain"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFileAndExportsShelf(t *testing.T) {
	tempDir := chdirTemp(t)
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Init", mock.Anything, domain.InitArgs{
		ShelfArgs: domain.ShelfArgs{Shelf: m.Path("notes")},
	}).Return(nil).Once()

	_, err := executeCmd(t, []string{"--shelf", "notes", "init"}, newInitCmd())
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), "compile:")
}

func TestInitCmd_KeepsExistingConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)
	mockWorkflow := useMockWorkflow(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	mockWorkflow.On("Init", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := executeCmd(t, []string{"init"}, newInitCmd())
	require.NoError(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ShelfError(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Init", mock.Anything, mock.Anything).Return(domain.ErrInvalidShelf).Once()

	_, err := executeCmd(t, []string{"init"}, newInitCmd())
	require.ErrorIs(t, err, domain.ErrInvalidShelf)
}
