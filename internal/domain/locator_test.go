package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/domain"
	m "mutar.dev/pkg/mutar/internal/model"
	"mutar.dev/pkg/mutar/internal/rlang"
)

func parseStatement(t *testing.T, src string) (*m.Node, m.Span) {
	t.Helper()

	statement, span, err := rlang.ParseStatement(src)
	require.NoError(t, err)

	return statement, span
}

type siteSummary struct {
	path string
	kind string
}

func summarizeSites(sites []m.Site) []siteSummary {
	out := make([]siteSummary, 0, len(sites))
	for _, site := range sites {
		out = append(out, siteSummary{path: site.Path.String(), kind: site.Op.Kind})
	}

	return out
}

func TestLocator_Locate(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		insideBlock bool
		policy      domain.DeletionPolicy
		want        []siteSummary
	}{
		{
			name: "single binary operator",
			src:  "a + b",
			want: []siteSummary{{"[]", "Plus"}},
		},
		{
			name: "nested operator in second argument",
			src:  "a + (b * c)",
			want: []siteSummary{{"[]", "Plus"}, {"[2]", "Multiply"}},
		},
		{
			name: "no operators",
			src:  "print(x)",
			want: []siteSummary{},
		},
		{
			name: "assignment is not catalogued",
			src:  "x <- a == b",
			want: []siteSummary{{"[2]", "Equal"}},
		},
		{
			name: "logical operators",
			src:  "a && (b || !c)",
			want: []siteSummary{{"[]", "LogicalAnd"}, {"[2]", "LogicalOr"}},
		},
		{
			name: "function body is a block",
			src:  "function(x) { a - b; { c + d } }",
			want: []siteSummary{
				{"[2 1]", "Minus"},
				{"[2 1]", "Delete"},
				{"[2 2 1]", "Plus"},
				{"[2 2 1]", "Delete"},
			},
		},
		{
			name: "formal defaults are walked without a site for the list",
			src:  "function(x = a > b) x",
			want: []siteSummary{{"[1 1]", "MoreThan"}},
		},
		{
			name:        "top-level block statement",
			src:         "{ f(1); y <- a / b }",
			insideBlock: true,
			want: []siteSummary{
				{"[1]", "Delete"},
				{"[2]", "Delete"},
				{"[2 2]", "Divide"},
				{"[2 2]", "Delete"},
			},
		},
		{
			name:   "suppressing flips keeps only the delete on deletable nodes",
			src:    "if (a < b) { x - 1 }",
			policy: domain.DeletionsSuppressFlips,
			want: []siteSummary{
				{"[1]", "LessThan"},
				{"[2 1]", "Delete"},
			},
		},
		{
			name:   "disabled deletions",
			src:    "if (a < b) { x - 1 }",
			policy: domain.DeletionsDisabled,
			want: []siteSummary{
				{"[1]", "LessThan"},
				{"[2 1]", "Minus"},
			},
		},
		{
			name: "block context ends with the block",
			src:  "f({ g(1) }, h(2))",
			want: []siteSummary{{"[1 1]", "Delete"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, span := parseStatement(t, tt.src)
			locator := domain.NewLocator(tt.policy, nil)

			sites := locator.Locate(statement, span, tt.insideBlock)

			assert.Equal(t, tt.want, summarizeSites(sites))
			for _, site := range sites {
				assert.Equal(t, span, site.Span)
			}
		})
	}
}

func TestLocator_SiteDetails(t *testing.T) {
	statement, span := parseStatement(t, "a + b")

	sites := domain.NewLocator(domain.DeletionsWithFlips, nil).Locate(statement, span, false)
	require.Len(t, sites, 1)

	assert.Empty(t, sites[0].Path)
	assert.Equal(t, "PlusOperator", sites[0].Op.Type())
	assert.Equal(t, m.ActionRewrite, sites[0].Op.Action)
	assert.Equal(t, "+", sites[0].Original)
	assert.Equal(t, m.Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 5}, sites[0].Span)
}

func TestLocator_FlipPrecedesDelete(t *testing.T) {
	statement, span := parseStatement(t, "{ a * b }")

	sites := domain.NewLocator(domain.DeletionsWithFlips, nil).Locate(statement, span, true)
	require.Len(t, sites, 2)

	assert.False(t, sites[0].Op.IsExcise())
	assert.True(t, sites[1].Op.IsExcise())
	assert.Equal(t, "a * b", sites[1].Original)
}

func TestLocator_NilStatement(t *testing.T) {
	sites := domain.NewLocator(domain.DeletionsWithFlips, nil).Locate(nil, m.Span{}, true)

	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

func TestLocator_DoesNotModifyStatement(t *testing.T) {
	statement, span := parseStatement(t, "function(x) { if (x > 0) x - 1 else x + 1 }")
	before := statement.Clone()

	_ = domain.NewLocator(domain.DeletionsWithFlips, nil).Locate(statement, span, false)

	assert.True(t, before.Equal(statement))
}

func TestParseDeletionPolicy(t *testing.T) {
	for _, policy := range []domain.DeletionPolicy{domain.DeletionsWithFlips, domain.DeletionsSuppressFlips, domain.DeletionsDisabled} {
		parsed, err := domain.ParseDeletionPolicy(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	_, err := domain.ParseDeletionPolicy("sometimes")
	assert.ErrorContains(t, err, "unknown deletion policy")
}
