package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"mutar.dev/pkg/mutar/internal/adapter"
	"mutar.dev/pkg/mutar/internal/controller"
	m "mutar.dev/pkg/mutar/internal/model"
	pkg "mutar.dev/pkg/mutar/pkg"
)

// mutantFilePerm is the permission of written mutant files.
const mutantFilePerm = 0o600

// EstimateArgs selects the sources of a run.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// MutateArgs contains the arguments for generating mutants.
type MutateArgs struct {
	EstimateArgs
	Output          m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	MetricsFile     m.Path
	SpillDir        string
}

// ExprArgs contains the arguments for mutating a single expression.
type ExprArgs struct {
	Code string
}

// MergeArgs names the shard output directories to combine.
type MergeArgs struct {
	Output m.Path
	Inputs []m.Path
}

// ViewArgs points at the output directory of a previous run.
type ViewArgs struct {
	Output m.Path
}

// Workflow drives the command use cases.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Mutate(ctx context.Context, args MutateArgs) error
	MutateExpression(ctx context.Context, args ExprArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	adapter.RFileAdapter
	controller.UI
	Orchestrator
	Mutagen

	metrics *Metrics
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	rFileAdapter adapter.RFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	mutagen Mutagen,
	metrics *Metrics,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		RFileAdapter:    rFileAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Orchestrator:    orchestrator,
		Mutagen:         mutagen,
		metrics:         metrics,
	}
}

// Estimate counts the mutation sites of every selected source and displays
// them. Files that fail to parse are listed with their error.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to get sources", "error", err)

		return fmt.Errorf("get sources: %w", err)
	}

	estimates := make([]m.FileEstimate, 0, len(sources))
	for _, source := range sources {
		estimates = append(estimates, w.estimateSource(ctx, source))
	}

	if err := w.DisplayEstimation(ctx, estimates, nil); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display estimation", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) estimateSource(ctx context.Context, source m.Source) m.FileEstimate {
	estimate := m.FileEstimate{Source: source}

	program, err := w.loadProgram(ctx, source)
	if err != nil {
		estimate.Err = err
		return estimate
	}

	estimate.Statements = len(program.Statements)
	blocks := DetectBlocks(program.Statements)

	for i, statement := range program.Statements {
		for _, site := range w.Locate(statement, program.Spans[i], blocks[i]) {
			switch {
			case !site.Op.IsExcise():
				estimate.FlipSites++
			case Excisable(site.Path):
				estimate.DeleteSites++
			}
		}
	}

	return estimate
}

// fileResult holds the kept variants of one source until they are written.
type fileResult struct {
	source   m.Source
	original []byte
	variants pkg.FileSpill[m.FileMutant]
	report   m.FileReport
}

// Mutate generates the variants of every selected source, writes this
// shard's share of them to the output directory together with a manifest,
// and displays a summary.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to get sources", "error", err)
		return fmt.Errorf("get sources: %w", err)
	}

	w.DisplayConcurrencyInfo(ctx, args.Threads, args.ShardIndex, args.TotalShardCount)

	results, err := w.generateAll(ctx, sources, args)

	defer func() {
		for _, result := range results {
			if result.variants != nil {
				_ = result.variants.Discard()
			}
		}
	}()

	if err != nil {
		return fmt.Errorf("generate mutants: %w", err)
	}

	entries, err := w.writeAll(ctx, results, args)
	if err != nil {
		return fmt.Errorf("write mutants: %w", err)
	}

	manifest := m.Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Shard:     shardLabel(args.ShardIndex, args.TotalShardCount),
		Mutants:   entries,
	}

	if err := w.SaveManifest(ctx, args.Output, manifest); err != nil {
		slog.Error("Failed to save manifest", "output", args.Output, "error", err)
		return fmt.Errorf("save manifest: %w", err)
	}

	w.DisplayMutantsWritten(ctx, len(entries), args.Output)

	reports := make([]m.FileReport, 0, len(results))
	for _, result := range results {
		reports = append(reports, result.report)
	}

	if err := w.DisplayMutationSummary(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.MetricsFile != "" {
		if err := w.metrics.WriteTextfile(string(args.MetricsFile)); err != nil {
			slog.Error("Failed to write metrics", "path", args.MetricsFile, "error", err)
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// generateAll runs the orchestrator over every source with a bounded
// number of workers. Results keep the source order.
func (w *workflow) generateAll(ctx context.Context, sources []m.Source, args MutateArgs) ([]*fileResult, error) {
	results := make([]*fileResult, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	var mu sync.Mutex

	for i, source := range sources {
		group.Go(func() error {
			result, err := w.generateSource(groupCtx, source, args.SpillDir)

			mu.Lock()
			results[i] = result
			mu.Unlock()

			return err
		})
	}

	err := group.Wait()

	return compactResults(results), err
}

func (w *workflow) generateSource(ctx context.Context, source m.Source, spillDir string) (*fileResult, error) {
	result := &fileResult{source: source, report: m.FileReport{Source: source}}

	program, err := w.loadProgram(ctx, source)
	if err != nil {
		slog.Warn("Skipping source", "source", source.Origin.FullPath, "error", err)
		w.metrics.RecordFile(err)
		result.report.Err = err

		return result, nil
	}

	result.original = w.Deparse(program.Statements)

	variants, err := w.Generate(program)
	if err != nil {
		w.metrics.RecordFile(err)
		return result, fmt.Errorf("generate variants for %s: %w", source.Origin.FullPath, err)
	}

	kept, err := w.Filter(ctx, variants)
	if err != nil {
		return result, err
	}

	spill, err := pkg.NewFileSpill[m.FileMutant](spillDir)
	if err != nil {
		return result, err
	}

	result.variants = spill

	for _, variant := range kept {
		variant.Source = source
		if err := spill.Append(variant); err != nil {
			return result, fmt.Errorf("spill variant: %w", err)
		}
	}

	result.report.Generated = len(variants)
	result.report.Kept = len(kept)
	result.report.Discarded = len(variants) - len(kept)

	w.metrics.RecordFile(nil)
	slog.Debug("Generated mutants for source", "source", source.Origin.FullPath, "generated", len(variants), "kept", len(kept))

	return result, nil
}

// writeAll numbers the kept variants across all sources in order and writes
// the ones that belong to this shard.
func (w *workflow) writeAll(ctx context.Context, results []*fileResult, args MutateArgs) ([]m.ManifestEntry, error) {
	entries := make([]m.ManifestEntry, 0)

	var nextID uint

	for _, result := range results {
		if result.variants == nil {
			continue
		}

		err := result.variants.Range(func(index uint64, variant m.FileMutant) error {
			variant.ID = nextID
			nextID++

			if !inShard(variant.ID, args.ShardIndex, args.TotalShardCount) {
				return nil
			}

			entry, err := w.writeVariant(ctx, result, index, variant, args.Output)
			if err != nil {
				return err
			}

			entries = append(entries, entry)

			return nil
		})
		if err != nil {
			return entries, err
		}
	}

	return entries, nil
}

func (w *workflow) writeVariant(ctx context.Context, result *fileResult, index uint64, variant m.FileMutant, output m.Path) (m.ManifestEntry, error) {
	variant.Code = w.Deparse(variant.Statements)
	variant.Diff = unifiedDiff(result.original, variant.Code, string(result.source.Origin.ShortPath))

	dir, name := mutantLocation(result.source, index)
	outDir := w.JoinPath(ctx, string(output), dir)

	if err := w.MkdirAll(ctx, outDir); err != nil {
		slog.Error("Failed to create mutant dir", "dir", outDir, "error", err)
		return m.ManifestEntry{}, fmt.Errorf("create mutant dir: %w", err)
	}

	outPath := w.JoinPath(ctx, string(outDir), name)
	if err := w.WriteFile(ctx, outPath, variant.Code, mutantFilePerm); err != nil {
		slog.Error("Failed to write mutant", "path", outPath, "error", err)
		return m.ManifestEntry{}, fmt.Errorf("write mutant: %w", err)
	}

	rel, err := w.RelPath(ctx, output, outPath)
	if err != nil {
		return m.ManifestEntry{}, fmt.Errorf("relative mutant path: %w", err)
	}

	return m.ManifestEntry{
		ID:          variant.ID,
		Source:      string(result.source.Origin.ShortPath),
		Output:      filepath.ToSlash(string(rel)),
		Statement:   variant.StatementIndex + 1,
		Operator:    variant.Site.Op.Type(),
		Path:        variant.Site.Path.String(),
		Span:        variant.Site.Span,
		Description: variant.Description,
		Outcome:     variant.Outcome.String(),
	}, nil
}

// MutateExpression mutates the first statement of a code string and
// displays every mutant.
func (w *workflow) MutateExpression(ctx context.Context, args ExprArgs) error {
	program, err := w.Parse(ctx, "expr.R", []byte(args.Code))
	if err != nil {
		return fmt.Errorf("parse expression: %w", err)
	}

	if len(program.Statements) == 0 {
		return ErrNoStatements
	}

	statement := program.Statements[0]
	mutants := w.MutateStatement(statement, program.Spans[0], statement.IsBlock())
	original := w.Deparse([]*m.Node{statement})

	for i, mutant := range mutants {
		statements := make([]*m.Node, 0, 1)
		if mutant.Tree != nil {
			statements = append(statements, mutant.Tree)
		}

		code := w.Deparse(statements)

		w.DisplayMutant(ctx, m.FileMutant{
			ID:          uint(i),
			Statements:  statements,
			Description: mutant.Description,
			Site:        mutant.Site,
			Outcome:     mutant.Outcome,
			Code:        code,
			Diff:        unifiedDiff(original, code, "expr.R"),
		})
	}

	return nil
}

// Merge combines the output directories of sharded runs. Mutant files are
// copied into args.Output and the manifests are joined in ID order.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	entries := make([]m.ManifestEntry, 0)
	owners := make(map[uint]m.Path)

	for _, input := range args.Inputs {
		manifest, err := w.LoadManifest(ctx, input)
		if err != nil {
			slog.Error("Failed to load shard manifest", "dir", input, "error", err)
			return fmt.Errorf("load manifest from %s: %w", input, err)
		}

		for _, entry := range manifest.Mutants {
			if owner, ok := owners[entry.ID]; ok {
				return fmt.Errorf("%w: mutant %d in %s and %s", ErrDuplicateMutant, entry.ID, owner, input)
			}

			owners[entry.ID] = input

			if err := w.copyMutant(ctx, input, args.Output, entry.Output); err != nil {
				return err
			}

			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	manifest := m.Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Mutants:   entries,
	}

	if err := w.SaveManifest(ctx, args.Output, manifest); err != nil {
		slog.Error("Failed to save merged manifest", "output", args.Output, "error", err)
		return fmt.Errorf("save manifest: %w", err)
	}

	w.DisplayMutantsWritten(ctx, len(entries), args.Output)

	return nil
}

func (w *workflow) copyMutant(ctx context.Context, from, to m.Path, rel string) error {
	content, err := w.ReadFile(ctx, w.JoinPath(ctx, string(from), filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("read mutant %s: %w", rel, err)
	}

	target := w.JoinPath(ctx, string(to), filepath.FromSlash(rel))
	if err := w.MkdirAll(ctx, m.Path(filepath.Dir(string(target)))); err != nil {
		return fmt.Errorf("create mutant dir: %w", err)
	}

	if err := w.WriteFile(ctx, target, content, mutantFilePerm); err != nil {
		return fmt.Errorf("write mutant %s: %w", rel, err)
	}

	return nil
}

// View displays the manifest of a previous run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	manifest, err := w.LoadManifest(ctx, args.Output)
	if err != nil {
		slog.Error("Failed to load manifest", "output", args.Output, "error", err)
		return fmt.Errorf("load manifest: %w", err)
	}

	return w.DisplayManifest(ctx, manifest)
}

func (w *workflow) loadProgram(ctx context.Context, source m.Source) (m.Program, error) {
	content, err := w.ReadFile(ctx, source.Origin.FullPath)
	if err != nil {
		return m.Program{}, fmt.Errorf("failed to read %s: %w", source.Origin.FullPath, err)
	}

	return w.Parse(ctx, source.Origin.FullPath, content)
}

// mutantLocation returns the output directory (relative to the output root)
// and file name of the index-th kept variant of source.
func mutantLocation(source m.Source, index uint64) (string, string) {
	short := filepath.FromSlash(string(source.Origin.ShortPath))
	stem := strings.TrimSuffix(filepath.Base(short), filepath.Ext(short))
	dir := strings.TrimSuffix(short, filepath.Ext(short))

	return dir, fmt.Sprintf("%s.mutant_%03d.R", stem, index+1)
}

func unifiedDiff(original, mutated []byte, name string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(mutated)),
		FromFile: name,
		ToFile:   name + " (mutant)",
		Context:  3,
	})
	if err != nil {
		slog.Debug("Failed to diff mutant", "name", name, "error", err)
		return ""
	}

	return diff
}

func inShard(id uint, shardIndex, totalShardCount int) bool {
	if totalShardCount <= 1 {
		return true
	}

	return id%uint(totalShardCount) == uint(shardIndex)
}

func shardLabel(shardIndex, totalShardCount int) string {
	if totalShardCount <= 1 {
		return ""
	}

	return fmt.Sprintf("%d/%d", shardIndex, totalShardCount)
}

func compactResults(results []*fileResult) []*fileResult {
	out := make([]*fileResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			out = append(out, result)
		}
	}

	return out
}
