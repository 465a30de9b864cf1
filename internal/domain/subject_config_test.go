package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/adapter"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

func TestSubjectConfig_RoundTripKeepsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	fs := adapter.NewLocalShelfFSAdapter()
	dir := t.TempDir()

	raw := "name: Calculus\ncommand: tectonic {{note}}\nlecturer: Dr. Who\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SubjectConfigFile), []byte(raw), 0o644))

	cfg, err := LoadSubjectConfig(ctx, fs, m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, "Calculus", cfg.Name)
	assert.Equal(t, "tectonic {{note}}", cfg.Command)
	assert.Equal(t, "Dr. Who", cfg.Extra["lecturer"])

	cfg.Files = []string{"**/*.tex"}
	require.NoError(t, SaveSubjectConfig(ctx, fs, m.Path(dir), cfg))

	again, err := LoadSubjectConfig(ctx, fs, m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.tex"}, again.Files)
	assert.Equal(t, "Dr. Who", again.Extra["lecturer"])
}

func TestLoadSubjectConfig_Missing(t *testing.T) {
	cfg, err := LoadSubjectConfig(context.Background(), adapter.NewLocalShelfFSAdapter(), m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, SubjectConfig{}, cfg)
}

func TestLoadSubjectConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SubjectConfigFile), []byte("files: [unclosed"), 0o644))

	_, err := LoadSubjectConfig(context.Background(), adapter.NewLocalShelfFSAdapter(), m.Path(dir))
	require.Error(t, err)
}

func TestSubjectConfig_Fallbacks(t *testing.T) {
	var empty SubjectConfig

	assert.Equal(t, DefaultCommand, empty.CommandOr(DefaultCommand))
	assert.Equal(t, []string{"*.tex"}, empty.FilesOr([]string{"*.tex"}))

	set := SubjectConfig{Command: "make", Files: []string{"main.tex"}}
	assert.Equal(t, "make", set.CommandOr(DefaultCommand))
	assert.Equal(t, []string{"main.tex"}, set.FilesOr([]string{"*.tex"}))
}
