package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/reprise/internal/domain"
	domainmocks "github.com/mouse-blink/reprise/internal/domain/mocks"
)

func TestCitationsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Citations", mock.Anything).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newCitationsCmd(), "citations")
	require.NoError(t, err)
}

func TestCitationsAddCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("AddCitation", mock.Anything, domain.AddCitationArgs{Title: "Meditations"}).Return(nil)

	_, err := executeWith(t, mockWorkflow, "", newCitationsCmd(), "citations", "add", "Meditations")
	require.NoError(t, err)
}

func TestCitationsCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, "", newCitationsCmd(), "citations", "add", "one", "two")
	require.Error(t, err)
}
