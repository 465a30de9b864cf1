package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lanoma.dev/pkg/lanoma/internal/domain"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

func TestAddSubjectsCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("AddSubjects", mock.Anything, domain.AddSubjectsArgs{
		ShelfArgs: domain.ShelfArgs{Shelf: m.Path("/notes")},
		Subjects:  []string{"Bachelor I/Semester I/Calculus", "Physics"},
	}).Return(nil).Once()

	_, err := executeCmd(t,
		[]string{"-s", "/notes", "add", "subjects", "Bachelor I/Semester I/Calculus", "Physics"},
		newAddCmd(),
	)
	require.NoError(t, err)
}

func TestAddSubjectsCmd_RequiresName(t *testing.T) {
	useMockWorkflow(t)

	_, err := executeCmd(t, []string{"add", "subjects"}, newAddCmd())
	require.Error(t, err)
}

func TestAddNotesCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		force bool
	}{
		{"default", []string{"add", "notes", "Calculus", "Taylor Series", "Limits"}, false},
		{"force", []string{"add", "note", "--force", "Calculus", "Taylor Series", "Limits"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)

			mockWorkflow.On("AddNotes", mock.Anything, mock.MatchedBy(func(args domain.AddNotesArgs) bool {
				return args.Subject == "Calculus" &&
					len(args.Titles) == 2 &&
					args.Titles[0] == "Taylor Series" &&
					args.Extension == m.DefaultNoteExtension &&
					args.Force == tt.force
			})).Return(nil).Once()

			_, err := executeCmd(t, tt.args, newAddCmd())
			require.NoError(t, err)
		})
	}
}

func TestAddNotesCmd_SubjectNotFound(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("AddNotes", mock.Anything, mock.Anything).Return(domain.ErrSubjectNotFound).Once()

	out, err := executeCmd(t, []string{"add", "notes", "Algebra", "Groups"}, newAddCmd())
	require.ErrorIs(t, err, domain.ErrSubjectNotFound)
	require.Contains(t, out, "subject not found")
}
