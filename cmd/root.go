// Package cmd provides the root command and CLI setup for mutar.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutar.dev/pkg/mutar/internal/adapter"
	"mutar.dev/pkg/mutar/internal/controller"
	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
)

// reportsOutputDirFlag is a root-level flag shared by commands that read/write mutants.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

// defaultPathPattern is scanned when no path is given.
const defaultPathPattern = "./..."

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./R/...        recursively scan the R directory
  - ./R ./tests    scan multiple directories
  - ./R/utils.R    a single script`

const rootLongDescription = `Mutar is a mutation testing tool for R. It parses R scripts, locates
operators that can be flipped (+ to -, < to >, && to ||, ...) and calls that
can be deleted from { } blocks, and writes one whole-file mutant per site so
your test suite can be run against each of them.

` + pathPatternsHelp

const runLongDescription = `Generate mutants for the given paths (default: current directory).

Each kept mutant is written to <output>/<script path>/<script>.mutant_NNN.R and
listed in <output>/manifest.yaml.

` + pathPatternsHelp

const listLongDescription = `List R scripts and the number of mutation sites found in each.

` + pathPatternsHelp

// pipelineSettings selects how sites are located and how variants are checked.
type pipelineSettings struct {
	deletions   string
	keepPartial bool
	evaluator   string
	rscript     string
	evalTimeout time.Duration
}

func settingsFromConfig() pipelineSettings {
	return pipelineSettings{
		deletions:   viper.GetString(deletionsKey),
		keepPartial: viper.GetBool(keepPartialKey),
		evaluator:   viper.GetString(evaluatorKey),
		rscript:     viper.GetString(rscriptKey),
		evalTimeout: viper.GetDuration(evalTimeoutKey),
	}
}

// newWorkflow builds the workflow for one command invocation.
var newWorkflow = buildWorkflow

func buildWorkflow(cmd *cobra.Command, settings pipelineSettings) (domain.Workflow, error) {
	policy, err := domain.ParseDeletionPolicy(settings.deletions)
	if err != nil {
		return nil, err
	}

	evaluator, err := newEvaluator(settings.evaluator, settings.rscript)
	if err != nil {
		return nil, err
	}

	metrics := domain.NewMetrics()
	mutagen := domain.NewMutagen(
		domain.NewLocator(policy, metrics),
		domain.NewMutator(metrics),
		domain.WithKeepPartial(settings.keepPartial),
	)
	orchestrator := domain.NewOrchestrator(mutagen, evaluator, metrics, domain.WithEvalTimeout(settings.evalTimeout))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalRFileAdapter(),
		adapter.NewReportStore(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		orchestrator,
		mutagen,
		metrics,
	), nil
}

func newEvaluator(name, rscript string) (adapter.Evaluator, error) {
	switch name {
	case evaluatorSyntax:
		return adapter.NewSyntaxEvaluator(), nil
	case evaluatorRscriptParse, evaluatorRscriptEval:
		mode := adapter.RscriptParse
		if name == evaluatorRscriptEval {
			mode = adapter.RscriptEval
		}

		evaluator, err := adapter.NewRscriptEvaluator(rscript, mode)
		if err != nil {
			return nil, err
		}

		return evaluator, nil
	}

	return nil, fmt.Errorf("unknown evaluator %q (want %s, %s or %s)",
		name, evaluatorSyntax, evaluatorRscriptParse, evaluatorRscriptEval)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutar",
		Short: "R mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated mutants and the manifest",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{defaultPathPattern}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
