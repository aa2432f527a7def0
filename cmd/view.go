package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the manifest of a previous run",
		Long:  "List the mutants recorded in the manifest of the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := newWorkflow(cmd, settingsFromConfig())
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{Output: m.Path(viper.GetString(outputFlagName))})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
