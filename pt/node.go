// Package pt implements the concrete syntax tree produced by the combinator
// kernel: rule-tagged nodes carrying their matched leaf tokens, plus the
// structural prune rewrite that collapses degenerate chains.
package pt

// Rule tags a Node with the grammar production that produced it. The zero
// value, NoRule, marks a node with no label (e.g. a bare literal match).
type Rule int

// NoRule is the nil rule tag: a node with this tag is unlabeled.
const NoRule Rule = 0

// Node is a concrete-syntax-tree node: a nullable rule tag, the leaf tokens
// it matched (the concatenation of all descendant literal matches), and an
// ordered list of children.
//
// Invariant (for nodes built by the combinator kernel): Matched equals the
// in-order concatenation of the children's Matched slices when Children is
// non-empty, or the node's own recorded leaves otherwise. Prune's rule 2
// keeps a node's Matched while dropping unlabeled children, so a pruned
// node's Matched can hold tokens that none of its remaining children hold.
type Node struct {
	Rule     Rule
	Matched  []string
	Children []Node
}

// Empty is the sentinel node returned by a failing combinator.
var Empty = Node{}

// Leaf builds a node with no rule tag that matched a single token.
func Leaf(tok string) Node {
	return Node{Matched: []string{tok}}
}

// Tagged builds an empty node (no matched tokens, no children) carrying the
// given rule tag. Used by combinators such as none() that succeed without
// consuming input.
func Tagged(rule Rule) Node {
	return Node{Rule: rule}
}

// Merge appends other's matched tokens to n and pushes other as a new child,
// returning the updated node. n is not mutated; a new Node is returned.
func (n Node) Merge(other Node) Node {
	matched := make([]string, 0, len(n.Matched)+len(other.Matched))
	matched = append(matched, n.Matched...)
	matched = append(matched, other.Matched...)
	children := make([]Node, 0, len(n.Children)+1)
	children = append(children, n.Children...)
	children = append(children, other)
	return Node{Rule: n.Rule, Matched: matched, Children: children}
}

// WithChildren builds a node tagged rule whose children are the given nodes
// in order and whose Matched is their concatenation, as repeated Merge
// calls on Tagged(rule) would.
func WithChildren(rule Rule, children ...Node) Node {
	n := Node{Rule: rule}
	for _, c := range children {
		n = n.Merge(c)
	}
	n.Rule = rule
	return n
}
