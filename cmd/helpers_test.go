package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/domain"
	domainmocks "mutar.dev/pkg/mutar/internal/domain/mocks"
)

// stubWorkflow makes every command use a mock workflow and records the
// pipeline settings it was built with.
func stubWorkflow(t *testing.T) (*domainmocks.MockWorkflow, *pipelineSettings) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := &pipelineSettings{}

	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, settings pipelineSettings) (domain.Workflow, error) {
		*captured = settings
		return mockWorkflow, nil
	}
	t.Cleanup(func() { newWorkflow = original })

	return mockWorkflow, captured
}

// executeCommand runs sub under a fresh root command and returns its output.
func executeCommand(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	t.Setenv("MUTAR_LOG_FILENAME", filepath.Join(t.TempDir(), "mutar.log"))
	t.Cleanup(resetConfig)

	output := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return output.String(), err
}

// resetConfig drops flag bindings left behind by a command run.
func resetConfig() {
	viper.Reset()
	initConfig()
}
