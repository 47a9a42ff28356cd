package pt

// RuleSet is a small set of Rule tags, used for the excluded and
// useChildRule arguments to Prune.
type RuleSet map[Rule]bool

// NewRuleSet builds a RuleSet from the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	s := make(RuleSet, len(rules))
	for _, r := range rules {
		s[r] = true
	}
	return s
}

// Has reports whether rule is a member of the set. A nil set contains
// nothing.
func (s RuleSet) Has(rule Rule) bool {
	return s != nil && s[rule]
}

// Prune rewrites t depth-first per SPEC_FULL.md's retained §4.2 rules:
//
//  1. A node with exactly one child, where neither the node's own Rule nor
//     the child's Rule is in excluded, first has that child pruned. If the pruned child is unlabeled, the node
//     absorbs its matched tokens and discards it. Otherwise the node
//     adopts the child's children and Matched; its own Rule becomes the
//     child's Rule iff the node's Rule was NoRule or is in useChildRule.
//  2. Otherwise, each child is pruned and kept iff it is labeled or has
//     more than one grandchild — this drops purely structural noise such
//     as single bare-literal matches with no label.
//
// Prune is idempotent: Prune(Prune(t, x, u), x, u) == Prune(t, x, u).
func Prune(t Node, excluded, useChildRule RuleSet) Node {
	if len(t.Children) == 1 && !excluded.Has(t.Rule) && !excluded.Has(t.Children[0].Rule) {
		child := Prune(t.Children[0], excluded, useChildRule)
		if child.Rule == NoRule {
			return Node{Rule: t.Rule, Matched: child.Matched}
		}
		rule := t.Rule
		if t.Rule == NoRule || useChildRule.Has(t.Rule) {
			rule = child.Rule
		}
		return Node{Rule: rule, Matched: child.Matched, Children: child.Children}
	}

	kept := make([]Node, 0, len(t.Children))
	for _, c := range t.Children {
		pruned := Prune(c, excluded, useChildRule)
		if pruned.Rule != NoRule || len(pruned.Children) > 1 {
			kept = append(kept, pruned)
		}
	}
	return Node{Rule: t.Rule, Matched: t.Matched, Children: kept}
}
