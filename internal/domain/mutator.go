package domain

import (
	"fmt"
	"log/slog"
	"strings"

	m "mutar.dev/pkg/mutar/internal/model"
)

const maxDescribedText = 60

// Mutator performs tree surgery for one located site. Every operation works
// on a deep copy; the tree passed in is never modified.
type Mutator interface {
	ApplyFlip(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome)
	ApplyDelete(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome)
	Apply(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome)
}

type mutator struct {
	metrics *Metrics
}

// NewMutator creates a Mutator.
func NewMutator(metrics *Metrics) Mutator {
	return &mutator{metrics: metrics}
}

// Apply dispatches on the site's action.
func (mu *mutator) Apply(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome) {
	if index < 0 || index >= len(sites) {
		return mu.fail(nil, "site index out of range", "index", index, "sites", len(sites))
	}

	if sites[index].Op.IsExcise() {
		return mu.ApplyDelete(original, sites, index)
	}

	return mu.ApplyFlip(original, sites, index)
}

// ApplyFlip rewrites the head token of the call at the site's path.
func (mu *mutator) ApplyFlip(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome) {
	if index < 0 || index >= len(sites) {
		return mu.fail(nil, "site index out of range", "index", index, "sites", len(sites))
	}

	site := sites[index]
	if site.Op.IsExcise() {
		return mu.fail(nil, "flip requested for an excise site", "path", site.Path.String())
	}

	tree := original.Clone()

	target, ok := tree.Resolve(site.Path)
	if !ok {
		return mu.fail(nil, "flip path does not resolve", "path", site.Path.String())
	}

	if err := site.Op.Flip(target); err != nil {
		return mu.fail(nil, "flip rejected", "path", site.Path.String(), "error", err)
	}

	mutant := &m.Mutant{
		Tree:        tree,
		Description: fmt.Sprintf("%s: '%s' -> '%s'", site.Span, site.Op.From, site.Op.To),
		Site:        site,
		Outcome:     m.OutcomeApplied,
	}

	mu.metrics.RecordMutant(m.OutcomeApplied)

	return mutant, m.OutcomeApplied
}

// ApplyDelete removes the node at the site's path from its parent's item
// list. The root and call heads cannot be removed; deleting the root's own
// head is reported as a partial result holding the rest of the statement.
func (mu *mutator) ApplyDelete(original *m.Node, sites []m.Site, index int) (*m.Mutant, m.Outcome) {
	if index < 0 || index >= len(sites) {
		return mu.fail(nil, "site index out of range", "index", index, "sites", len(sites))
	}

	site := sites[index]
	if !site.Op.IsExcise() {
		return mu.fail(nil, "delete requested for a rewrite site", "path", site.Path.String())
	}

	if len(site.Path) == 0 {
		return mu.fail(nil, "refusing to delete the statement root")
	}

	if len(site.Path) == 1 && site.Path[0] == 0 {
		return mu.dropRootHead(original, site)
	}

	if !Excisable(site.Path) {
		return mu.fail(nil, "refusing to delete a call head", "path", site.Path.String())
	}

	tree := original.Clone()

	parent, ok := tree.Resolve(site.Path.Parent())
	offset := site.Path.Last()

	if !ok || !parent.IsCall() || offset < 0 || offset >= len(parent.Items) {
		return mu.fail(&m.Mutant{Tree: tree, Site: site, Outcome: m.OutcomeFailed}, "delete path does not resolve", "path", site.Path.String())
	}

	removed := parent.Items[offset]

	items := make([]*m.Node, 0, len(parent.Items)-1)
	items = append(items, parent.Items[:offset]...)
	items = append(items, parent.Items[offset+1:]...)
	parent.Items = items

	mutant := &m.Mutant{
		Tree:        tree,
		Description: deleteDescription(site, removed),
		Site:        site,
		Outcome:     m.OutcomeApplied,
	}

	mu.metrics.RecordMutant(m.OutcomeApplied)

	return mutant, m.OutcomeApplied
}

// dropRootHead returns what is left of the root call once its head is gone:
// the first argument becomes the head. With nothing left the tree is nil.
func (mu *mutator) dropRootHead(original *m.Node, site m.Site) (*m.Mutant, m.Outcome) {
	if !original.IsCall() {
		return mu.fail(nil, "root is not a call", "path", site.Path.String())
	}

	tree := original.Clone()
	removed := tree.Items[0]

	var rest *m.Node
	if len(tree.Items) > 1 {
		rest = &m.Node{Kind: m.KindCall, Items: tree.Items[1:]}
	}

	mu.metrics.RecordMutant(m.OutcomePartial)
	slog.Debug("root head deletion is partial", "span", site.Span.String())

	return &m.Mutant{
		Tree:        rest,
		Description: deleteDescription(site, removed),
		Site:        site,
		Outcome:     m.OutcomePartial,
	}, m.OutcomePartial
}

// Excisable reports whether ApplyDelete can succeed at path. The statement
// root and the head of a nested call are always refused; the root head [0]
// is allowed as a partial deletion.
func Excisable(path m.TreePath) bool {
	if len(path) == 0 {
		return false
	}

	return len(path) == 1 || path.Last() != 0
}

func (mu *mutator) fail(mutant *m.Mutant, msg string, args ...any) (*m.Mutant, m.Outcome) {
	slog.Debug(msg, args...)
	mu.metrics.RecordMutant(m.OutcomeFailed)

	return mutant, m.OutcomeFailed
}

func deleteDescription(site m.Site, removed *m.Node) string {
	text := site.Original
	if text == "" {
		text = removed.String()
	}

	return fmt.Sprintf("%s: deleted %s '%s'", site.Span, site.Path, summarize(text))
}

// summarize keeps descriptions on one line.
func summarize(text string) string {
	line, _, multiline := strings.Cut(text, "\n")
	if len(line) > maxDescribedText {
		line = line[:maxDescribedText]
		multiline = true
	}

	if multiline {
		return line + " ..."
	}

	return line
}
