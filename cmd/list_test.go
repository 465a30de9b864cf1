package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/domain"
)

func TestListCmd(t *testing.T) {
	t.Run("every subject", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)

		mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
			return len(args.Subjects) == 0 && len(args.Files) == 1 && args.Files[0] == "*.tex"
		})).Return(nil).Once()

		_, err := executeCmd(t, []string{"list"}, newListCmd())
		require.NoError(t, err)
	})

	t.Run("named subjects", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)

		mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
			return len(args.Subjects) == 1 && args.Subjects[0] == "Physics/Optics"
		})).Return(nil).Once()

		_, err := executeCmd(t, []string{"ls", "Physics/Optics"}, newListCmd())
		require.NoError(t, err)
	})
}
