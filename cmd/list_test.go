package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

func TestListCmd_Estimate(t *testing.T) {
	mockWorkflow, settings := stubWorkflow(t)

	mockWorkflow.EXPECT().Estimate(mock.Anything, domain.EstimateArgs{
		Paths:   []m.Path{"./R/..."},
		Exclude: []string{"^vendor/"},
	}).Return(nil)

	_, err := executeCommand(t, newListCmd(), "list", "--exclude", "^vendor/", "--deletions", "disabled", "./R/...")
	require.NoError(t, err)

	assert.Equal(t, "disabled", settings.deletions)
}

func TestListCmd_DefaultPath(t *testing.T) {
	mockWorkflow, _ := stubWorkflow(t)

	mockWorkflow.EXPECT().Estimate(mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./...") && len(args.Exclude) == 0
	})).Return(nil)

	_, err := executeCommand(t, newListCmd(), "list")
	require.NoError(t, err)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup(deletionsFlagName))
	assert.Nil(t, cmd.Flags().Lookup(evaluatorFlagName))
}
