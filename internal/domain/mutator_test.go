package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutar.dev/pkg/mutar/internal/domain"
	"mutar.dev/pkg/mutar/internal/domain/mutagens"
	m "mutar.dev/pkg/mutar/internal/model"
)

func locate(t *testing.T, src string, insideBlock bool) (*m.Node, []m.Site) {
	t.Helper()

	statement, span := parseStatement(t, src)

	return statement, domain.NewLocator(domain.DeletionsWithFlips, nil).Locate(statement, span, insideBlock)
}

func headName(t *testing.T, node *m.Node) string {
	t.Helper()

	sym, ok := node.HeadSymbol()
	require.True(t, ok, "node %s has no symbol head", node)

	return sym.String()
}

func TestMutator_ApplyFlip(t *testing.T) {
	t.Run("flips the root operator", func(t *testing.T) {
		statement, sites := locate(t, "a + b", false)
		require.Len(t, sites, 1)

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, sites, 0)

		require.Equal(t, m.OutcomeApplied, outcome)
		require.NotNil(t, mutant)
		assert.Equal(t, "-", headName(t, mutant.Tree))
		assert.Equal(t, "+", headName(t, statement))
		assert.Equal(t, m.OutcomeApplied, mutant.Outcome)
		assert.Equal(t, sites[0], mutant.Site)
		assert.Equal(t, "Line 1, Col 1 - Line 1, Col 5: '+' -> '-'", mutant.Description)
	})

	t.Run("only the nested node changes", func(t *testing.T) {
		statement, sites := locate(t, "a + (b * c)", false)
		require.Len(t, sites, 2)

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, sites, 1)
		require.Equal(t, m.OutcomeApplied, outcome)

		tree := mutant.Tree
		assert.Equal(t, "+", headName(t, tree))
		assert.True(t, statement.Items[1].Equal(tree.Items[1]))
		assert.Equal(t, "/", headName(t, tree.Items[2]))
		assert.True(t, statement.Items[2].Items[1].Equal(tree.Items[2].Items[1]))
		assert.True(t, statement.Items[2].Items[2].Equal(tree.Items[2].Items[2]))
		assert.Equal(t, "*", headName(t, statement.Items[2]))
	})

	t.Run("mutant shares nothing with the original", func(t *testing.T) {
		statement, sites := locate(t, "f(a < b, g(c))", false)
		before := statement.Clone()

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, sites, 0)
		require.Equal(t, m.OutcomeApplied, outcome)

		mutant.Tree.Items[1].Items[1] = m.Sym("z")
		mutant.Tree.Items[2].Items = append(mutant.Tree.Items[2].Items, m.Num("1"))
		mutant.Tree.Items[0].Sym = m.Intern("h")

		assert.True(t, before.Equal(statement))
	})

	t.Run("flipping twice restores the original", func(t *testing.T) {
		for _, token := range []string{"+", "-", "*", "/", "==", "!=", "<", ">", "<=", ">=", "&", "|", "&&", "||"} {
			statement, sites := locate(t, "x "+token+" y", false)
			require.Len(t, sites, 1, token)

			once, outcome := domain.NewMutator(nil).ApplyFlip(statement, sites, 0)
			require.Equal(t, m.OutcomeApplied, outcome, token)

			back, ok := mutagens.Lookup(sites[0].Op.To)
			require.True(t, ok, token)

			again, outcome := domain.NewMutator(nil).ApplyFlip(once.Tree, []m.Site{{Path: sites[0].Path, Op: back}}, 0)
			require.Equal(t, m.OutcomeApplied, outcome, token)
			assert.True(t, statement.Equal(again.Tree), token)
		}
	})

	t.Run("head mismatch fails", func(t *testing.T) {
		statement, _ := parseStatement(t, "a * b")
		plus, _ := mutagens.LookupToken("+")

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, []m.Site{{Path: m.TreePath{}, Op: plus}}, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	})

	t.Run("unresolvable path fails", func(t *testing.T) {
		statement, _ := parseStatement(t, "a + b")
		plus, _ := mutagens.LookupToken("+")

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, []m.Site{{Path: m.TreePath{7}, Op: plus}}, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	})

	t.Run("excise site is rejected", func(t *testing.T) {
		statement, sites := locate(t, "{ f(1) }", true)
		require.Len(t, sites, 1)

		mutant, outcome := domain.NewMutator(nil).ApplyFlip(statement, sites, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	})
}

func TestMutator_ApplyDelete(t *testing.T) {
	t.Run("removes one argument and keeps the order", func(t *testing.T) {
		statement, sites := locate(t, "{ f(1); g(2); h(3) }", true)
		require.Len(t, sites, 3)

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, sites, 1)
		require.Equal(t, m.OutcomeApplied, outcome)

		assert.Len(t, mutant.Tree.Items, len(statement.Items)-1)
		assert.True(t, statement.Items[1].Equal(mutant.Tree.Items[1]))
		assert.True(t, statement.Items[3].Equal(mutant.Tree.Items[2]))
		assert.Len(t, statement.Items, 4)
		assert.Contains(t, mutant.Description, ": deleted [2] 'g(2)'")
	})

	t.Run("nested deletion", func(t *testing.T) {
		statement, sites := locate(t, "function(x) { y <- x * 2; y }", false)

		var index = -1
		for i, site := range sites {
			if site.Op.IsExcise() && site.Path.String() == "[2 1]" {
				index = i
			}
		}
		require.NotEqual(t, -1, index)

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, sites, index)
		require.Equal(t, m.OutcomeApplied, outcome)

		body := mutant.Tree.Items[2]
		assert.Len(t, body.Items, 2)
		assert.Equal(t, "y", body.Items[1].Sym.String())
		assert.Len(t, statement.Items[2].Items, 3)
	})

	t.Run("root path fails", func(t *testing.T) {
		statement, _ := parseStatement(t, "f(x)")

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: m.TreePath{}, Op: mutagens.Delete()}}, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	})

	t.Run("nested call head fails", func(t *testing.T) {
		statement, _ := parseStatement(t, "f(g(x))")
		before := statement.Clone()

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: m.TreePath{1, 0}, Op: mutagens.Delete()}}, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
		assert.True(t, before.Equal(statement))
	})

	t.Run("negative offset fails without touching the tree", func(t *testing.T) {
		statement, _ := parseStatement(t, "{ a + b }")
		before := statement.Clone()

		for _, path := range []m.TreePath{{1, -1}, {-1}, {1, 7}} {
			mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: path, Op: mutagens.Delete()}}, 0)

			assert.Equal(t, m.OutcomeFailed, outcome, path.String())
			if mutant != nil {
				assert.True(t, before.Equal(mutant.Tree), path.String())
			}
		}

		assert.True(t, before.Equal(statement))
	})

	t.Run("root head is never a clean deletion", func(t *testing.T) {
		statement, _ := parseStatement(t, "f(x)(y)")
		before := statement.Clone()

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: m.TreePath{0}, Op: mutagens.Delete()}}, 0)

		assert.Equal(t, m.OutcomePartial, outcome)
		require.NotNil(t, mutant)
		assert.Equal(t, m.OutcomePartial, mutant.Outcome)
		require.True(t, mutant.Tree.IsCall())
		assert.Len(t, mutant.Tree.Items, 1)
		assert.Equal(t, "y", mutant.Tree.Items[0].Sym.String())
		assert.True(t, before.Equal(statement))
	})

	t.Run("root head with no arguments leaves nothing", func(t *testing.T) {
		statement, _ := parseStatement(t, "g()()")

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: m.TreePath{0}, Op: mutagens.Delete()}}, 0)

		assert.Equal(t, m.OutcomePartial, outcome)
		require.NotNil(t, mutant)
		assert.Nil(t, mutant.Tree)
	})

	t.Run("unresolvable parent returns the unchanged copy", func(t *testing.T) {
		statement, _ := parseStatement(t, "f(a, b)")

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{{Path: m.TreePath{9}, Op: mutagens.Delete()}}, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		require.NotNil(t, mutant)
		assert.True(t, statement.Equal(mutant.Tree))
		assert.NotSame(t, statement, mutant.Tree)
	})

	t.Run("rewrite site is rejected", func(t *testing.T) {
		statement, sites := locate(t, "a + b", false)

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, sites, 0)

		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	})

	t.Run("long text is summarized", func(t *testing.T) {
		statement, _ := parseStatement(t, "{ f(1) }")
		site := m.Site{Path: m.TreePath{1}, Op: mutagens.Delete(), Original: strings.Repeat("x", 80)}

		mutant, outcome := domain.NewMutator(nil).ApplyDelete(statement, []m.Site{site}, 0)
		require.Equal(t, m.OutcomeApplied, outcome)

		assert.Contains(t, mutant.Description, "'"+strings.Repeat("x", 60)+" ...'")
	})
}

func TestMutator_Apply(t *testing.T) {
	statement, sites := locate(t, "{ a - b }", true)
	require.Len(t, sites, 2)

	mutator := domain.NewMutator(nil)

	flipped, outcome := mutator.Apply(statement, sites, 0)
	require.Equal(t, m.OutcomeApplied, outcome)
	assert.Equal(t, "+", headName(t, flipped.Tree.Items[1]))

	deleted, outcome := mutator.Apply(statement, sites, 1)
	require.Equal(t, m.OutcomeApplied, outcome)
	assert.Len(t, deleted.Tree.Items, 1)

	for _, index := range []int{-1, 2, 100} {
		mutant, outcome := mutator.Apply(statement, sites, index)
		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)

		mutant, outcome = mutator.ApplyFlip(statement, sites, index)
		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)

		mutant, outcome = mutator.ApplyDelete(statement, sites, index)
		assert.Equal(t, m.OutcomeFailed, outcome)
		assert.Nil(t, mutant)
	}

	_, outcome = mutator.Apply(statement, nil, 0)
	assert.Equal(t, m.OutcomeFailed, outcome)
}
