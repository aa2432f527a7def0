package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <shard-dir>...",
		Short: "Merge sharded runs into a single output directory",
		Long: `Copy the mutants of several sharded runs (mutar run --shard I/N) into the
output directory and write one manifest listing all of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, settingsFromConfig())
			if err != nil {
				return err
			}

			inputs := make([]m.Path, 0, len(args))
			for _, arg := range args {
				inputs = append(inputs, m.Path(arg))
			}

			return wf.Merge(cmd.Context(), domain.MergeArgs{
				Output: m.Path(viper.GetString(outputFlagName)),
				Inputs: inputs,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newMergeCmd())
}
