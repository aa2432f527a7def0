package domain

import (
	"fmt"
	"log/slog"

	"mutar.dev/pkg/mutar/internal/domain/mutagens"
	m "mutar.dev/pkg/mutar/internal/model"
	"mutar.dev/pkg/mutar/internal/rlang"
)

// DeletionPolicy decides how delete sites relate to flip sites.
type DeletionPolicy int

const (
	// DeletionsWithFlips offers both a flip and a delete on a node that
	// qualifies for both.
	DeletionsWithFlips DeletionPolicy = iota
	// DeletionsSuppressFlips offers only the delete on such a node.
	DeletionsSuppressFlips
	// DeletionsDisabled never offers delete sites.
	DeletionsDisabled
)

var deletionPolicyNames = map[DeletionPolicy]string{
	DeletionsWithFlips:     "with-flips",
	DeletionsSuppressFlips: "suppress-flips",
	DeletionsDisabled:      "disabled",
}

func (p DeletionPolicy) String() string {
	if name, ok := deletionPolicyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseDeletionPolicy maps a configuration value to a policy.
func ParseDeletionPolicy(value string) (DeletionPolicy, error) {
	for policy, name := range deletionPolicyNames {
		if name == value {
			return policy, nil
		}
	}

	return DeletionsWithFlips, fmt.Errorf("unknown deletion policy %q (want with-flips, suppress-flips or disabled)", value)
}

// Locator finds mutation sites in one statement.
type Locator interface {
	Locate(statement *m.Node, span m.Span, insideBlock bool) []m.Site
}

type locator struct {
	policy  DeletionPolicy
	metrics *Metrics
}

// NewLocator creates a Locator applying the given deletion policy.
func NewLocator(policy DeletionPolicy, metrics *Metrics) Locator {
	return &locator{policy: policy, metrics: metrics}
}

// Locate walks the statement in pre-order. A call whose head is a catalogued
// operator yields a flip site; a call inside a { } block that is not itself
// a block yields a delete site. Entering a block marks its whole subtree as
// inside; leaving it restores the outer context.
func (l *locator) Locate(statement *m.Node, span m.Span, insideBlock bool) []m.Site {
	sites := make([]m.Site, 0)
	if statement == nil {
		return sites
	}

	l.walk(statement, m.TreePath{}, insideBlock, span, &sites)

	slog.Debug("located sites", "span", span.String(), "count", len(sites))

	return sites
}

func (l *locator) walk(node *m.Node, path m.TreePath, inside bool, span m.Span, sites *[]m.Site) {
	if !node.IsCall() {
		return
	}

	if node.IsBlock() {
		inside = true
	}

	head, _ := node.HeadSymbol()
	if head == m.FormalsSymbol {
		l.walkChildren(node, path, inside, span, sites)
		return
	}

	deletable := inside && !node.IsBlock() && l.policy != DeletionsDisabled

	if op, ok := mutagens.Lookup(head); ok && !(deletable && l.policy == DeletionsSuppressFlips) {
		*sites = append(*sites, m.Site{
			Path:     path,
			Op:       op,
			Span:     span,
			Original: head.String(),
		})
		l.metrics.RecordSite(op.Action)
	}

	if deletable {
		del := mutagens.Delete()
		*sites = append(*sites, m.Site{
			Path:     path,
			Op:       del,
			Span:     span,
			Original: rlang.DeparseNode(node),
		})
		l.metrics.RecordSite(del.Action)
	}

	l.walkChildren(node, path, inside, span, sites)
}

func (l *locator) walkChildren(node *m.Node, path m.TreePath, inside bool, span m.Span, sites *[]m.Site) {
	for i, child := range node.Items {
		l.walk(child, path.Append(i), inside, span, sites)
	}
}
