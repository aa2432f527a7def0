package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/domain"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List R scripts and mutation site counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, settingsFromConfig())
			if err != nil {
				return err
			}

			return wf.Estimate(cmd.Context(), domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	addDeletionsFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
