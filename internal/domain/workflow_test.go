package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/adapter"
	adaptermocks "mutar.dev/pkg/mutar/internal/adapter/mocks"
	controllermocks "mutar.dev/pkg/mutar/internal/controller/mocks"
	"mutar.dev/pkg/mutar/internal/domain"
	domainmocks "mutar.dev/pkg/mutar/internal/domain/mocks"
	m "mutar.dev/pkg/mutar/internal/model"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newTestWorkflow(ui *controllermocks.MockUI, metrics *domain.Metrics) domain.Workflow {
	mutagen := newMutagen()

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalRFileAdapter(),
		adapter.NewReportStore(),
		ui,
		domain.NewOrchestrator(mutagen, adapter.NewSyntaxEvaluator(), metrics),
		mutagen,
		metrics,
	)
}

func TestWorkflow_Estimate(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "calc.R", "x <- a + b\nif (x > 1) {\n  y <- x * 2\n}\n")
	writeSource(t, root, "broken.R", "f <- function(x {\n")
	writeSource(t, root, "notes.txt", "a + b\n")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)

	var estimates []m.FileEstimate
	ui.EXPECT().DisplayEstimation(mock.Anything, mock.Anything, nil).
		Run(func(_ context.Context, got []m.FileEstimate, _ error) { estimates = got }).
		Return(nil)
	ui.EXPECT().Wait(mock.Anything).Return()
	ui.EXPECT().Close(mock.Anything).Return()

	err := newTestWorkflow(ui, nil).Estimate(context.Background(), domain.EstimateArgs{Paths: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	require.Len(t, estimates, 2)

	broken := estimates[0]
	assert.Equal(t, "broken.R", string(broken.Source.Origin.ShortPath))
	assert.Error(t, broken.Err)
	assert.Zero(t, broken.Total())

	calc := estimates[1]
	assert.Equal(t, "calc.R", string(calc.Source.Origin.ShortPath))
	require.NoError(t, calc.Err)
	assert.Equal(t, 2, calc.Statements)
	assert.Equal(t, 3, calc.FlipSites)
	assert.Equal(t, 2, calc.DeleteSites)
}

func TestWorkflow_Estimate_CountsOnlyApplicableDeletions(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "ns.R", "{\n  pkg::f(x)\n}\n")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)

	var estimates []m.FileEstimate
	ui.EXPECT().DisplayEstimation(mock.Anything, mock.Anything, nil).
		Run(func(_ context.Context, got []m.FileEstimate, _ error) { estimates = got }).
		Return(nil)
	ui.EXPECT().Wait(mock.Anything).Return()
	ui.EXPECT().Close(mock.Anything).Return()

	err := newTestWorkflow(ui, nil).Estimate(context.Background(), domain.EstimateArgs{Paths: []m.Path{m.Path(root)}})
	require.NoError(t, err)

	require.Len(t, estimates, 1)
	assert.Equal(t, 1, estimates[0].DeleteSites)
	assert.Zero(t, estimates[0].FlipSites)
}

func TestExcisable(t *testing.T) {
	tests := []struct {
		path m.TreePath
		want bool
	}{
		{m.TreePath{}, false},
		{m.TreePath{0}, true},
		{m.TreePath{1}, true},
		{m.TreePath{1, 0}, false},
		{m.TreePath{1, 2}, true},
		{m.TreePath{2, 1, 0}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Excisable(tt.path), tt.path.String())
	}
}

func TestWorkflow_Estimate_GetError(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	fs.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Close(mock.Anything).Return()

	wf := domain.NewWorkflow(fs, adapter.NewLocalRFileAdapter(), adapter.NewReportStore(), ui,
		domainOrchestrator(), newMutagen(), nil)

	err := wf.Estimate(context.Background(), domain.EstimateArgs{Paths: []m.Path{"R"}})
	assert.ErrorContains(t, err, "get sources: boom")
}

func TestWorkflow_Estimate_StartError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal"))

	err := newTestWorkflow(ui, nil).Estimate(context.Background(), domain.EstimateArgs{})
	assert.ErrorContains(t, err, "no terminal")
}

func domainOrchestrator() domain.Orchestrator {
	return domain.NewOrchestrator(newMutagen(), adapter.NewSyntaxEvaluator(), nil)
}

func expectRun(ui *controllermocks.MockUI, threads, shardIndex, shardCount int) *[]m.FileReport {
	var reports []m.FileReport

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Close(mock.Anything).Return()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, threads, shardIndex, shardCount).Return()
	ui.EXPECT().DisplayMutationSummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, got []m.FileReport) { reports = got }).
		Return(nil)

	return &reports
}

func TestWorkflow_Mutate(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "mutants")
	metricsFile := filepath.Join(t.TempDir(), "mutar.prom")
	writeSource(t, root, "calc.R", "x<-a+b\ny <- x*2\n")
	writeSource(t, root, "broken.R", "f <- function(x {\n")

	ui := controllermocks.NewMockUI(t)
	reports := expectRun(ui, 2, 0, 1)
	ui.EXPECT().DisplayMutantsWritten(mock.Anything, 2, m.Path(output)).Return()

	err := newTestWorkflow(ui, domain.NewMetrics()).Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
		Output:          m.Path(output),
		Threads:         2,
		TotalShardCount: 1,
		MetricsFile:     m.Path(metricsFile),
		SpillDir:        t.TempDir(),
	})
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(output, "calc", "calc.mutant_001.R"))
	require.NoError(t, err)
	assert.Equal(t, "x <- a - b\ny <- x * 2\n", string(first))

	second, err := os.ReadFile(filepath.Join(output, "calc", "calc.mutant_002.R"))
	require.NoError(t, err)
	assert.Equal(t, "x <- a + b\ny <- x / 2\n", string(second))

	manifest, err := adapter.NewReportStore().LoadManifest(context.Background(), m.Path(output))
	require.NoError(t, err)
	assert.NotEmpty(t, manifest.RunID)
	assert.Empty(t, manifest.Shard)
	require.Len(t, manifest.Mutants, 2)
	assert.Equal(t, uint(0), manifest.Mutants[0].ID)
	assert.Equal(t, "calc/calc.mutant_001.R", manifest.Mutants[0].Output)
	assert.Equal(t, "PlusOperator", manifest.Mutants[0].Operator)
	assert.Equal(t, 1, manifest.Mutants[0].Statement)
	assert.Equal(t, uint(1), manifest.Mutants[1].ID)
	assert.Equal(t, "MultiplyOperator", manifest.Mutants[1].Operator)
	assert.Equal(t, 2, manifest.Mutants[1].Statement)
	assert.Equal(t, "applied", manifest.Mutants[1].Outcome)

	require.Len(t, *reports, 2)
	assert.Error(t, (*reports)[0].Err)
	assert.Equal(t, "calc.R", string((*reports)[1].Source.Origin.ShortPath))
	assert.Equal(t, 2, (*reports)[1].Generated)
	assert.Equal(t, 2, (*reports)[1].Kept)
	assert.Zero(t, (*reports)[1].Discarded)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `mutar_files_processed_total{result="error"} 1`)
	assert.Contains(t, string(prom), `mutar_file_variants_total{result="kept"} 2`)
}

func TestWorkflow_Mutate_Shard(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()
	writeSource(t, root, "a.R", "p <- 1 + 2\n")
	writeSource(t, root, "b.R", "q <- 3 < 4\nr <- 5 == 6\n")

	ui := controllermocks.NewMockUI(t)
	expectRun(ui, 1, 1, 2)
	ui.EXPECT().DisplayMutantsWritten(mock.Anything, 1, m.Path(output)).Return()

	err := newTestWorkflow(ui, nil).Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
		Output:          m.Path(output),
		Threads:         1,
		ShardIndex:      1,
		TotalShardCount: 2,
	})
	require.NoError(t, err)

	manifest, err := adapter.NewReportStore().LoadManifest(context.Background(), m.Path(output))
	require.NoError(t, err)
	assert.Equal(t, "1/2", manifest.Shard)
	require.Len(t, manifest.Mutants, 1)
	assert.Equal(t, uint(1), manifest.Mutants[0].ID)
	assert.Equal(t, "b.R", manifest.Mutants[0].Source)
	assert.Equal(t, "b/b.mutant_001.R", manifest.Mutants[0].Output)

	code, err := os.ReadFile(filepath.Join(output, "b", "b.mutant_001.R"))
	require.NoError(t, err)
	assert.Equal(t, "q <- 3 > 4\nr <- 5 == 6\n", string(code))

	_, err = os.Stat(filepath.Join(output, "a"))
	assert.True(t, os.IsNotExist(err))
}

func TestWorkflow_Mutate_GetError(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	fs.EXPECT().Get(mock.Anything, mock.Anything, "vendor").Return(nil, errors.New("boom"))

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Close(mock.Anything).Return()

	wf := domain.NewWorkflow(fs, adapter.NewLocalRFileAdapter(), adapter.NewReportStore(), ui,
		domainOrchestrator(), newMutagen(), nil)

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs: domain.EstimateArgs{Paths: []m.Path{"R"}, Exclude: []string{"vendor"}},
	})
	assert.ErrorContains(t, err, "get sources: boom")
}

func TestWorkflow_Mutate_SaveManifestError(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.R", "p <- 1 + 2\n")

	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().SaveManifest(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Close(mock.Anything).Return()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 1, 0, 1).Return()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalRFileAdapter(), store, ui,
		domainOrchestrator(), newMutagen(), nil)

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
		Output:          m.Path(t.TempDir()),
		Threads:         1,
		TotalShardCount: 1,
	})
	assert.ErrorContains(t, err, "save manifest: disk full")
}

func TestWorkflow_Mutate_ParseErrorSkipsSource(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()
	writeSource(t, root, "a.R", "p <- 1 + 2\n")

	rfile := adaptermocks.NewMockRFileAdapter(t)
	rfile.EXPECT().Parse(mock.Anything, m.Path(filepath.Join(root, "a.R")), []byte("p <- 1 + 2\n")).
		Return(m.Program{}, errors.New("unexpected end of input"))

	orchestrator := domainmocks.NewMockOrchestrator(t)

	ui := controllermocks.NewMockUI(t)
	reports := expectRun(ui, 1, 0, 1)
	ui.EXPECT().DisplayMutantsWritten(mock.Anything, 0, m.Path(output)).Return()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), rfile, adapter.NewReportStore(), ui,
		orchestrator, newMutagen(), nil)

	err := wf.Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
		Output:          m.Path(output),
		Threads:         1,
		TotalShardCount: 1,
	})
	require.NoError(t, err)

	require.Len(t, *reports, 1)
	assert.ErrorContains(t, (*reports)[0].Err, "unexpected end of input")
	assert.Zero(t, (*reports)[0].Generated)

	manifest, err := adapter.NewReportStore().LoadManifest(context.Background(), m.Path(output))
	require.NoError(t, err)
	assert.Empty(t, manifest.Mutants)
}

func TestWorkflow_Mutate_OrchestratorErrors(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(o *domainmocks.MockOrchestrator)
		wantErr error
	}{
		{
			name: "generate",
			expect: func(o *domainmocks.MockOrchestrator) {
				o.EXPECT().Generate(mock.Anything).Return(nil, domain.ErrSpanMismatch)
			},
			wantErr: domain.ErrSpanMismatch,
		},
		{
			name: "filter",
			expect: func(o *domainmocks.MockOrchestrator) {
				o.EXPECT().Generate(mock.Anything).Return([]m.FileMutant{{StatementIndex: 0}}, nil)
				o.EXPECT().Filter(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeSource(t, root, "a.R", "p <- 1 + 2\n")

			orchestrator := domainmocks.NewMockOrchestrator(t)
			tt.expect(orchestrator)

			ui := controllermocks.NewMockUI(t)
			ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
			ui.EXPECT().Close(mock.Anything).Return()
			ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 1, 0, 1).Return()

			wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalRFileAdapter(),
				adapter.NewReportStore(), ui, orchestrator, newMutagen(), nil)

			err := wf.Mutate(context.Background(), domain.MutateArgs{
				EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
				Output:          m.Path(t.TempDir()),
				Threads:         1,
				TotalShardCount: 1,
			})
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, "generate mutants")
		})
	}
}

func TestWorkflow_MutateExpression_ParseError(t *testing.T) {
	rfile := adaptermocks.NewMockRFileAdapter(t)
	rfile.EXPECT().Parse(mock.Anything, m.Path("expr.R"), []byte("a +")).
		Return(m.Program{}, errors.New("unexpected end of input"))

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), rfile, adapter.NewReportStore(),
		controllermocks.NewMockUI(t), domainmocks.NewMockOrchestrator(t), newMutagen(), nil)

	err := wf.MutateExpression(context.Background(), domain.ExprArgs{Code: "a +"})
	assert.ErrorContains(t, err, "parse expression: unexpected end of input")
}

func TestWorkflow_MutateExpression(t *testing.T) {
	t.Run("displays every mutant", func(t *testing.T) {
		ui := controllermocks.NewMockUI(t)

		var mutants []m.FileMutant
		ui.EXPECT().DisplayMutant(mock.Anything, mock.Anything).
			Run(func(_ context.Context, mutant m.FileMutant) { mutants = append(mutants, mutant) }).
			Return()

		err := newTestWorkflow(ui, nil).MutateExpression(context.Background(), domain.ExprArgs{Code: "a + (b * c)"})
		require.NoError(t, err)

		require.Len(t, mutants, 2)
		assert.Equal(t, uint(0), mutants[0].ID)
		assert.Equal(t, "a - b * c\n", string(mutants[0].Code))
		assert.Equal(t, uint(1), mutants[1].ID)
		assert.Equal(t, "a + b / c\n", string(mutants[1].Code))
		assert.True(t, strings.Contains(mutants[1].Diff, "+a + b / c"), mutants[1].Diff)
		assert.True(t, strings.Contains(mutants[1].Diff, "-a + b * c"), mutants[1].Diff)
	})

	t.Run("block expressions get deletions", func(t *testing.T) {
		ui := controllermocks.NewMockUI(t)

		var descriptions []string
		ui.EXPECT().DisplayMutant(mock.Anything, mock.Anything).
			Run(func(_ context.Context, mutant m.FileMutant) { descriptions = append(descriptions, mutant.Description) }).
			Return()

		err := newTestWorkflow(ui, nil).MutateExpression(context.Background(), domain.ExprArgs{Code: "{ f(1); g(2) }"})
		require.NoError(t, err)

		require.Len(t, descriptions, 2)
		assert.Contains(t, descriptions[0], "deleted [1] 'f(1)'")
		assert.Contains(t, descriptions[1], "deleted [2] 'g(2)'")
	})

	t.Run("no statements", func(t *testing.T) {
		err := newTestWorkflow(controllermocks.NewMockUI(t), nil).
			MutateExpression(context.Background(), domain.ExprArgs{Code: "# just a comment\n"})

		assert.ErrorIs(t, err, domain.ErrNoStatements)
	})

	t.Run("syntax error", func(t *testing.T) {
		err := newTestWorkflow(controllermocks.NewMockUI(t), nil).
			MutateExpression(context.Background(), domain.ExprArgs{Code: "a +"})

		assert.ErrorContains(t, err, "parse expression")
	})
}

func runShard(t *testing.T, root, output string, shardIndex, written int) {
	t.Helper()

	ui := controllermocks.NewMockUI(t)
	expectRun(ui, 1, shardIndex, 2)
	ui.EXPECT().DisplayMutantsWritten(mock.Anything, written, m.Path(output)).Return()

	err := newTestWorkflow(ui, nil).Mutate(context.Background(), domain.MutateArgs{
		EstimateArgs:    domain.EstimateArgs{Paths: []m.Path{m.Path(root)}},
		Output:          m.Path(output),
		Threads:         1,
		ShardIndex:      shardIndex,
		TotalShardCount: 2,
	})
	require.NoError(t, err)
}

func TestWorkflow_Merge(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.R", "p <- 1 + 2\n")
	writeSource(t, root, "b.R", "q <- 3 < 4\nr <- 5 == 6\n")

	shard0 := t.TempDir()
	shard1 := t.TempDir()
	runShard(t, root, shard0, 0, 2)
	runShard(t, root, shard1, 1, 1)

	merged := filepath.Join(t.TempDir(), "merged")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayMutantsWritten(mock.Anything, 3, m.Path(merged)).Return()

	err := newTestWorkflow(ui, nil).Merge(context.Background(), domain.MergeArgs{
		Output: m.Path(merged),
		Inputs: []m.Path{m.Path(shard1), m.Path(shard0)},
	})
	require.NoError(t, err)

	manifest, err := adapter.NewReportStore().LoadManifest(context.Background(), m.Path(merged))
	require.NoError(t, err)
	assert.Empty(t, manifest.Shard)
	assert.NotEmpty(t, manifest.RunID)
	require.Len(t, manifest.Mutants, 3)

	outputs := make([]string, 0, len(manifest.Mutants))
	for i, entry := range manifest.Mutants {
		assert.Equal(t, uint(i), entry.ID)
		outputs = append(outputs, entry.Output)
	}

	assert.Equal(t, []string{"a/a.mutant_001.R", "b/b.mutant_001.R", "b/b.mutant_002.R"}, outputs)

	code, err := os.ReadFile(filepath.Join(merged, "b", "b.mutant_002.R"))
	require.NoError(t, err)
	assert.Equal(t, "q <- 3 < 4\nr <- 5 != 6\n", string(code))
}

func TestWorkflow_Merge_DuplicateMutant(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.R", "p <- 1 + 2\n")

	shard := t.TempDir()
	runShard(t, root, shard, 0, 1)

	ui := controllermocks.NewMockUI(t)

	err := newTestWorkflow(ui, nil).Merge(context.Background(), domain.MergeArgs{
		Output: m.Path(t.TempDir()),
		Inputs: []m.Path{m.Path(shard), m.Path(shard)},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateMutant)
}

func TestWorkflow_Merge_MissingManifest(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	missing := t.TempDir()

	err := newTestWorkflow(ui, nil).Merge(context.Background(), domain.MergeArgs{
		Output: m.Path(t.TempDir()),
		Inputs: []m.Path{m.Path(missing)},
	})
	assert.ErrorContains(t, err, "load manifest from "+missing)
}

func TestWorkflow_View(t *testing.T) {
	output := t.TempDir()
	saved := m.Manifest{
		RunID: "run-1",
		Mutants: []m.ManifestEntry{
			{ID: 0, Source: "calc.R", Output: "calc/calc.mutant_001.R", Operator: "PlusOperator", Outcome: "applied"},
		},
	}
	require.NoError(t, adapter.NewReportStore().SaveManifest(context.Background(), m.Path(output), saved))

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayManifest(mock.Anything, mock.MatchedBy(func(manifest m.Manifest) bool {
		return manifest.RunID == "run-1" && len(manifest.Mutants) == 1 && manifest.Mutants[0].Operator == "PlusOperator"
	})).Return(nil)

	err := newTestWorkflow(ui, nil).View(context.Background(), domain.ViewArgs{Output: m.Path(output)})
	require.NoError(t, err)
}

func TestWorkflow_View_MissingManifest(t *testing.T) {
	ui := controllermocks.NewMockUI(t)

	err := newTestWorkflow(ui, nil).View(context.Background(), domain.ViewArgs{Output: m.Path(t.TempDir())})
	assert.ErrorContains(t, err, "load manifest")
}
