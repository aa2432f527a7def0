package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/domain"
)

func TestExprCmd_MutateExpression(t *testing.T) {
	mockWorkflow, settings := stubWorkflow(t)

	mockWorkflow.EXPECT().MutateExpression(mock.Anything, domain.ExprArgs{Code: "a + (b * c)"}).Return(nil)

	_, err := executeCommand(t, newExprCmd(), "expr", "--keep-partial", "a + (b * c)")
	require.NoError(t, err)

	assert.True(t, settings.keepPartial)
}

func TestExprCmd_JoinsArguments(t *testing.T) {
	mockWorkflow, _ := stubWorkflow(t)

	mockWorkflow.EXPECT().MutateExpression(mock.Anything, domain.ExprArgs{Code: "x <- 1 + 2"}).Return(nil)

	_, err := executeCommand(t, newExprCmd(), "expr", "x", "<-", "1", "+", "2")
	require.NoError(t, err)
}

func TestExprCmd_RequiresCode(t *testing.T) {
	stubWorkflow(t)

	_, err := executeCommand(t, newExprCmd(), "expr")
	assert.Error(t, err)
}
