package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"mutar.dev/pkg/mutar/internal/domain"
)

func newExprCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr <code>",
		Short: "Show the mutants of a single R expression",
		Long: `Parse an R expression and print every mutant of its first statement
together with a diff against the original.

Example:
  mutar expr 'a + (b * c)'
  mutar expr '{ x <- f(1); g(x) }'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, settingsFromConfig())
			if err != nil {
				return err
			}

			return wf.MutateExpression(cmd.Context(), domain.ExprArgs{Code: strings.Join(args, " ")})
		},
	}

	configurePipelineFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newExprCmd())
}
