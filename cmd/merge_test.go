package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

func TestMergeCmd_Merge(t *testing.T) {
	mockWorkflow, _ := stubWorkflow(t)

	mockWorkflow.EXPECT().Merge(mock.Anything, domain.MergeArgs{
		Output: m.Path("merged"),
		Inputs: []m.Path{"shard-0", "shard-1"},
	}).Return(nil)

	_, err := executeCommand(t, newMergeCmd(), "merge", "-o", "merged", "shard-0", "shard-1")
	require.NoError(t, err)
}

func TestMergeCmd_RequiresInputs(t *testing.T) {
	stubWorkflow(t)

	_, err := executeCommand(t, newMergeCmd(), "merge")
	assert.Error(t, err)
}
