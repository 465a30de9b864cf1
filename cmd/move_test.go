package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/domain"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

func TestMoveCmd(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := useMockWorkflow(t)

	t.Cleanup(func() { viper.Set(shelfConfigKey, nil) })

	mockWorkflow.On("Move", mock.Anything, domain.MoveArgs{
		ShelfArgs: domain.ShelfArgs{Shelf: m.Path("old")},
		Target:    m.Path("new"),
	}).Return(m.Path("/abs/new"), nil).Once()

	_, err := executeCmd(t, []string{"--shelf", "old", "move", "new"}, newMoveCmd())
	require.NoError(t, err)

	assert.Equal(t, "/abs/new", viper.GetString(shelfConfigKey))
}

func TestMoveCmd_Error(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Move", mock.Anything, mock.Anything).Return(m.Path(""), errors.New("target path already exists")).Once()

	_, err := executeCmd(t, []string{"move", "taken"}, newMoveCmd())
	require.Error(t, err)
}

func TestMoveCmd_RequiresTarget(t *testing.T) {
	useMockWorkflow(t)

	_, err := executeCmd(t, []string{"move"}, newMoveCmd())
	require.Error(t, err)
}
