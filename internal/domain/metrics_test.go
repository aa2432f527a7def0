package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutar.dev/pkg/mutar/internal/model"
)

func TestMetrics_Record(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordSite(m.ActionRewrite)
	metrics.RecordSite(m.ActionRewrite)
	metrics.RecordSite(m.ActionExcise)
	metrics.RecordMutant(m.OutcomeApplied)
	metrics.RecordMutant(m.OutcomeFailed)
	metrics.RecordVariant(true, 0.01)
	metrics.RecordVariant(false, 0.02)
	metrics.RecordVariant(false, 0.03)
	metrics.RecordFile(nil)
	metrics.RecordFile(errors.New("parse"))

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.sitesLocated.WithLabelValues("rewrite")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.sitesLocated.WithLabelValues("excise")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.mutants.WithLabelValues("applied")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.mutants.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.variants.WithLabelValues("kept")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.variants.WithLabelValues("discarded")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.filesProcessed.WithLabelValues("error")), 0)

	count, err := testutil.GatherAndCount(metrics.Registry(), "mutar_evaluation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_LocatorAndMutator(t *testing.T) {
	metrics := NewMetrics()
	statement := m.CallNode(m.Sym("{"), m.Call("-", m.Sym("a"), m.Sym("b")))

	locator := NewLocator(DeletionsWithFlips, metrics)
	sites := locator.Locate(statement, m.Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 9}, true)
	require.Len(t, sites, 2)

	mutator := NewMutator(metrics)
	for i := range sites {
		_, outcome := mutator.Apply(statement, sites, i)
		require.Equal(t, m.OutcomeApplied, outcome)
	}

	_, outcome := mutator.Apply(statement, sites, 5)
	require.Equal(t, m.OutcomeFailed, outcome)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.sitesLocated.WithLabelValues("rewrite")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.sitesLocated.WithLabelValues("excise")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.mutants.WithLabelValues("applied")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.mutants.WithLabelValues("failed")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics

	assert.NotPanics(t, func() {
		metrics.RecordSite(m.ActionExcise)
		metrics.RecordMutant(m.OutcomePartial)
		metrics.RecordVariant(true, 1)
		metrics.RecordFile(nil)
	})
	assert.Nil(t, metrics.Registry())
	assert.NoError(t, metrics.WriteTextfile(filepath.Join(t.TempDir(), "never.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordFile(nil)

	path := filepath.Join(t.TempDir(), "mutar.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `mutar_files_processed_total{result="ok"} 1`), string(data))
}
