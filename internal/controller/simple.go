package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mutar.dev/pkg/mutar/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayEstimation prints the per-file site counts or the error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimates []m.FileEstimate, err error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(estimates))

	for _, estimate := range estimates {
		if estimate.Err != nil {
			s.printf("skipped %s: %v\n", shortPath(estimate.Source), estimate.Err)
		}
	}

	return nil
}

func renderEstimationTable(estimates []m.FileEstimate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Statements", "Flips", "Deletions", "Sites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var statements, flips, deletes int

	for _, estimate := range estimates {
		if estimate.Err != nil {
			table.Append([]string{shortPath(estimate.Source), "-", "-", "-", "error"})
			continue
		}

		table.Append([]string{
			shortPath(estimate.Source),
			fmt.Sprintf("%d", estimate.Statements),
			fmt.Sprintf("%d", estimate.FlipSites),
			fmt.Sprintf("%d", estimate.DeleteSites),
			fmt.Sprintf("%d", estimate.Total()),
		})

		statements += estimate.Statements
		flips += estimate.FlipSites
		deletes += estimate.DeleteSites
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", statements),
		fmt.Sprintf("%d", flips),
		fmt.Sprintf("%d", deletes),
		fmt.Sprintf("%d", flips+deletes),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generating mutants with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, max(shardCount, 1))
}

// DisplayMutant prints one mutant with its diff.
func (s *SimpleUI) DisplayMutant(ctx context.Context, mutant m.FileMutant) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("#%d %s [%s]\n", mutant.ID, mutant.Description, mutant.Site.Op.Type())

	if mutant.Diff != "" {
		s.printf("%s\n", strings.TrimRight(mutant.Diff, "\n"))
		return
	}

	s.printf("%s", mutant.Code)
}

// DisplayMutantsWritten reports where the mutant files went.
func (s *SimpleUI) DisplayMutantsWritten(ctx context.Context, count int, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Wrote %d mutant(s) to %s\n", count, output)
}

// DisplayMutationSummary prints the per-file generation results.
func (s *SimpleUI) DisplayMutationSummary(ctx context.Context, reports []m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	for _, report := range reports {
		if report.Err != nil {
			s.printf("skipped %s: %v\n", shortPath(report.Source), report.Err)
		}
	}

	return nil
}

func renderSummaryTable(reports []m.FileReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Generated", "Kept", "Discarded"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var generated, kept, discarded int

	for _, report := range reports {
		if report.Err != nil {
			table.Append([]string{shortPath(report.Source), "-", "-", "error"})
			continue
		}

		table.Append([]string{
			shortPath(report.Source),
			fmt.Sprintf("%d", report.Generated),
			fmt.Sprintf("%d", report.Kept),
			fmt.Sprintf("%d", report.Discarded),
		})

		generated += report.Generated
		kept += report.Kept
		discarded += report.Discarded
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("%d", generated),
		fmt.Sprintf("%d", kept),
		fmt.Sprintf("%d", discarded),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayManifest prints the mutants recorded by a previous run.
func (s *SimpleUI) DisplayManifest(ctx context.Context, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Run %s created %s%s\n", manifest.RunID, manifest.CreatedAt.Format(time.RFC3339), shardSuffix(manifest.Shard))
	s.printf("\n%s", renderManifestTable(manifest))

	return nil
}

func renderManifestTable(manifest m.Manifest) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Output", "Operator", "Span", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, entry := range manifest.Mutants {
		table.Append([]string{
			fmt.Sprintf("%d", entry.ID),
			entry.Output,
			entry.Operator,
			spanLabel(entry.Span),
			entry.Outcome,
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Mutants %d", len(manifest.Mutants)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func spanLabel(span m.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", span.StartLine, span.StartCol, span.EndLine, span.EndCol)
}

func shardSuffix(shard string) string {
	if shard == "" {
		return ""
	}

	return " (shard " + shard + ")"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortPath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	if source.Origin.ShortPath != "" {
		return string(source.Origin.ShortPath)
	}

	return string(source.Origin.FullPath)
}
