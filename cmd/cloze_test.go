package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/reprise/internal/domain"
	domainmocks "github.com/mouse-blink/reprise/internal/domain/mocks"
	m "github.com/mouse-blink/reprise/internal/model"
)

const (
	testMotifUUID = "3f0c8a52-8a8e-4b43-9d3c-2a3f3c0b9a11"
	testClozeUUID = "9b1d3a5e-6c3f-4a59-8f2e-5d9a7c1e2b44"
)

func TestClozeEditCmd_OpensEditorWithoutBins(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("EditClozeDeletion", mock.Anything, mock.MatchedBy(func(args domain.EditArgs) bool {
		return args.MotifUUID == testMotifUUID && args.ClozeUUID == "" && args.Bins == nil
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newClozeCmd(), "cloze", "edit", testMotifUUID)
	require.NoError(t, err)
}

func TestClozeEditCmd_PassesBins(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("EditClozeDeletion", mock.Anything, domain.EditArgs{
		MotifUUID: testMotifUUID,
		ClozeUUID: testClozeUUID,
		Bins:      m.IntervalSet{{Start: 4, End: 8}, {Start: 10, End: 10}},
	}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newClozeCmd(),
		"cloze", "edit", testMotifUUID, "--cloze", testClozeUUID, "--bins", "4-8,10")
	require.NoError(t, err)
}

func TestClozeEditCmd_EmptyBinsSkipsEditor(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("EditClozeDeletion", mock.Anything, mock.MatchedBy(func(args domain.EditArgs) bool {
		return args.Bins != nil && len(args.Bins) == 0
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newClozeCmd(), "cloze", "edit", testMotifUUID, "--bins", "")
	require.NoError(t, err)
}

func TestClozeEditCmd_RejectsMalformedBins(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, "", newClozeCmd(), "cloze", "edit", testMotifUUID, "--bins", "four")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bin range")
}

func TestClozeDeleteCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("DeleteClozeDeletion", mock.Anything, domain.DeleteArgs{ClozeUUID: testClozeUUID}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newClozeCmd(), "cloze", "delete", testClozeUUID)
	require.NoError(t, err)
}

func TestNewClozeCmd(t *testing.T) {
	cmd := newClozeCmd()

	edit, _, err := cmd.Find([]string{"edit"})
	require.NoError(t, err)
	assert.Equal(t, clozeEditLongDescription, edit.Long)
	assert.NotNil(t, edit.Flags().Lookup("cloze"))
	assert.NotNil(t, edit.Flags().Lookup("bins"))

	del, _, err := cmd.Find([]string{"delete"})
	require.NoError(t, err)
	assert.Equal(t, "delete <cloze-uuid>", del.Use)
}
