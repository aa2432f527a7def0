package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

var runParallelFlag int
var runShardFlag string

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Generate mutants",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards, err := parseShardFlag(runShardFlag)
			if err != nil {
				return err
			}

			wf, err := newWorkflow(cmd, settingsFromConfig())
			if err != nil {
				return err
			}

			return wf.Mutate(cmd.Context(), domain.MutateArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   parsePaths(args),
					Exclude: viper.GetStringSlice(excludeConfigKey),
				},
				Output:          m.Path(viper.GetString(outputFlagName)),
				Threads:         viper.GetInt(runParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				MetricsFile:     m.Path(viper.GetString(metricsFileKey)),
				SpillDir:        viper.GetString(spillDirKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.StringVarP(&runShardFlag, runShardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	configurePipelineFlags(cmd)

	flags.String(metricsFileFlagName, viper.GetString(metricsFileKey), "write Prometheus metrics of the run to this textfile")
	bindFlagToConfig(flags.Lookup(metricsFileFlagName), metricsFileKey)

	flags.String(spillDirFlagName, viper.GetString(spillDirKey), "directory for spilled variants (default: system temp dir)")
	bindFlagToConfig(flags.Lookup(spillDirFlagName), spillDirKey)
}

// pipelineFlagKeys maps the flags shared by several commands to their
// config keys.
var pipelineFlagKeys = map[string]string{
	deletionsFlagName:   deletionsKey,
	keepPartialFlagName: keepPartialKey,
	evaluatorFlagName:   evaluatorKey,
	rscriptFlagName:     rscriptKey,
	evalTimeoutFlagName: evalTimeoutKey,
}

// configurePipelineFlags adds the flags that shape which mutants are
// generated and how they are checked.
func configurePipelineFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	addDeletionsFlag(cmd)
	flags.Bool(keepPartialFlagName, viper.GetBool(keepPartialKey), "keep mutants whose deletion hit the head of the root call")
	flags.String(evaluatorFlagName, viper.GetString(evaluatorKey),
		fmt.Sprintf("variant check: %s, %s or %s", evaluatorSyntax, evaluatorRscriptParse, evaluatorRscriptEval))
	flags.String(rscriptFlagName, viper.GetString(rscriptKey), "Rscript binary used by the rscript evaluators")
	flags.Duration(evalTimeoutFlagName, viper.GetDuration(evalTimeoutKey), "time limit for checking one variant (0 disables)")
}

func addDeletionsFlag(cmd *cobra.Command) {
	cmd.Flags().String(deletionsFlagName, viper.GetString(deletionsKey), "delete sites: with-flips, suppress-flips or disabled")
	cmd.PreRun = bindPipelineFlags
}

// bindPipelineFlags binds the pipeline flags of the command about to run.
// The flags are defined on several commands, so each binds its own at run
// time.
func bindPipelineFlags(cmd *cobra.Command, _ []string) {
	for name, key := range pipelineFlagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			bindFlagToConfig(flag, key)
		}
	}
}

func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1, fmt.Errorf("invalid shard %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shard)
	}

	return index, total, nil
}
