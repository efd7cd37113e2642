package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/reprise/internal/domain"
	domainmocks "github.com/mouse-blink/reprise/internal/domain/mocks"
)

func TestMotifsCmd_DefaultsToFirstPage(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Motifs", mock.Anything, domain.MotifsArgs{Page: 1, PageSize: 10}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs")
	require.NoError(t, err)
}

func TestMotifsCmd_PageFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Motifs", mock.Anything, domain.MotifsArgs{Page: 3, PageSize: 5}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "--page", "3", "-n", "5")
	require.NoError(t, err)
}

func TestMotifsCmd_PageBelowOneIsFirstPage(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Motifs", mock.Anything, mock.MatchedBy(func(args domain.MotifsArgs) bool {
		return args.Page == 1
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "--page", "0")
	require.NoError(t, err)
}

func TestMotifsCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	listErr := errors.New("store offline")

	mockWorkflow.On("Motifs", mock.Anything, mock.Anything).Return(listErr)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs")
	require.ErrorIs(t, err, listErr)
}

func TestMotifsAddCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("AddMotif", mock.Anything, domain.AddMotifArgs{
		Content:  "Know thyself",
		Citation: "Delphi",
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "add", "Know thyself", "--citation", "Delphi")
	require.NoError(t, err)
}

func TestMotifsAddCmd_RequiresContent(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "add")
	require.Error(t, err)
}

func TestMotifsEditCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("EditMotif", mock.Anything, domain.EditMotifArgs{
		UUID:     testMotifUUID,
		Content:  "Know thyself, and nothing in excess",
		Citation: "Delphi",
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(),
		"motifs", "edit", testMotifUUID, "Know thyself, and nothing in excess", "-c", "Delphi")
	require.NoError(t, err)
}

func TestMotifsEditCmd_KeepsCitationByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("EditMotif", mock.Anything, domain.EditMotifArgs{
		UUID:    testMotifUUID,
		Content: "Know thyself",
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "edit", testMotifUUID, "Know thyself")
	require.NoError(t, err)
}

func TestMotifsEditCmd_RequiresUUIDAndContent(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "edit", testMotifUUID)
	require.Error(t, err)
}

func TestMotifsDeleteCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	deleteErr := errors.New("store offline")

	mockWorkflow.On("DeleteMotif", mock.Anything, domain.DeleteMotifArgs{UUID: testMotifUUID}).Return(deleteErr)

	_, err := executeWith(t, mockWorkflow, "", newMotifsCmd(), "motifs", "delete", testMotifUUID)
	require.ErrorIs(t, err, deleteErr)
}

func TestReadContent(t *testing.T) {
	tests := []struct {
		name  string
		arg   string
		stdin string
		want  string
	}{
		{name: "argument", arg: "Know thyself", stdin: "ignored", want: "Know thyself"},
		{name: "stdin", arg: "-", stdin: "Line one\nline two\n", want: "Line one\nline two"},
		{name: "stdin crlf", arg: "-", stdin: "Line one\r\n", want: "Line one"},
		{name: "only one newline dropped", arg: "-", stdin: "Line one\n\n", want: "Line one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newMotifsAddCmd()
			cmd.SetIn(strings.NewReader(tt.stdin))

			got, err := readContent(cmd, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMotifsCmd(t *testing.T) {
	cmd := newMotifsCmd()

	assert.Equal(t, "motifs", cmd.Use)
	assert.Equal(t, motifsLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("page"))
	assert.NotNil(t, cmd.Flags().Lookup("page-size"))

	add, _, err := cmd.Find([]string{"add"})
	require.NoError(t, err)
	assert.NotNil(t, add.Flags().Lookup("citation"))

	for _, name := range []string{"edit", "delete"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}
