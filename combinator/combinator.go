// Package combinator implements the backtracking, PEG-like parser-combinator
// kernel: none, any, literal, regex, and, or, optional, many, at_least_one,
// and ref. Every combinator is a pure function from a token.Stream to a
// (succeeded, node, remaining) result; failure never consumes input.
package combinator

import (
	"regexp"

	"github.com/lumen-lang/lumen/pt"
	"github.com/lumen-lang/lumen/token"
)

// Parser is a combinator: a pure function mapping a token stream to whether
// it matched, the resulting parse-tree node, and the stream positioned after
// the match (or, on failure, unchanged).
type Parser func(in token.Stream) (ok bool, node pt.Node, rest token.Stream)

// None always succeeds, consumes nothing, and yields an empty node tagged
// rule.
func None(rule pt.Rule) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		return true, pt.Tagged(rule), in
	}
}

// Any consumes exactly one token, provided the stream is non-empty and (if
// excluded is given) excluded does not itself succeed on the stream — a
// successful probe of excluded makes Any fail without consuming anything.
func Any(rule pt.Rule, excluded Parser) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		if excluded != nil {
			if ok, _, _ := excluded(in); ok {
				return false, pt.Empty, in
			}
		}
		tok, rest, ok := in.Advance()
		if !ok {
			return false, pt.Empty, in
		}
		return true, pt.Node{Rule: rule, Matched: []string{tok}}, rest
	}
}

// Literal matches a single token equal to s.
func Literal(rule pt.Rule, s string) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		tok, rest, ok := in.Advance()
		if !ok || tok != s {
			return false, pt.Empty, in
		}
		return true, pt.Node{Rule: rule, Matched: []string{tok}}, rest
	}
}

// Regex matches a single token whose full text is matched by the anchored
// pattern p.
func Regex(rule pt.Rule, p string) Parser {
	re := regexp.MustCompile("^(?:" + p + ")$")
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		tok, rest, ok := in.Advance()
		if !ok || !re.MatchString(tok) {
			return false, pt.Empty, in
		}
		return true, pt.Node{Rule: rule, Matched: []string{tok}}, rest
	}
}

// And runs rules left to right, threading the remaining stream through each.
// Any failure restores the original input stream; success concatenates the
// matched tokens and appends each child's node in order.
func And(rule pt.Rule, rules ...Parser) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		cur := in
		node := pt.Tagged(rule)
		for _, r := range rules {
			ok, child, rest := r(cur)
			if !ok {
				return false, pt.Empty, in
			}
			node = node.Merge(child)
			cur = rest
		}
		return true, node, cur
	}
}

// Or returns the first succeeding alternative. The resulting node has
// exactly one child: the chosen alternative's node, wrapped under rule.
// Alternative order is significant (PEG choice, not ambiguous union).
func Or(rule pt.Rule, rules ...Parser) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		for _, r := range rules {
			if ok, child, rest := r(in); ok {
				return true, pt.Tagged(rule).Merge(child), rest
			}
		}
		return false, pt.Empty, in
	}
}

// Optional matches p if possible, and otherwise succeeds without consuming
// input. Defined as Or(rule, p, None(pt.NoRule)).
func Optional(rule pt.Rule, p Parser) Parser {
	return Or(rule, p, None(pt.NoRule))
}

// AtLeastOne consumes element one or more times, optionally separated by
// delim. With no delimiter, each matched element is appended as a child.
// With a delimiter, the delimiter's own children are appended first (so a
// delimiter that itself matches nothing doesn't introduce a spurious empty
// parent), followed by the element.
//
// Implemented iteratively: resource-bound per SPEC_FULL.md §5, the loop
// never recurses once per element, so nesting depth does not track input
// length.
func AtLeastOne(rule pt.Rule, element Parser, delim Parser) Parser {
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		ok, first, rest := element(in)
		if !ok {
			return false, pt.Empty, in
		}
		node := pt.Tagged(rule).Merge(first)
		cur := rest
		for {
			if delim == nil {
				ok, next, after := element(cur)
				if !ok {
					break
				}
				node = node.Merge(next)
				cur = after
				continue
			}
			dok, dnode, dafter := delim(cur)
			if !dok {
				break
			}
			eok, enode, eafter := element(dafter)
			if !eok {
				break
			}
			for _, c := range dnode.Children {
				node = node.Merge(c)
			}
			node = node.Merge(enode)
			cur = eafter
		}
		return true, node, cur
	}
}

// Many matches element zero or more times, defined as
// Or(rule, AtLeastOne(rule, element, delim), None(pt.NoRule)). Like any Or
// result, the node always has exactly one child; on zero matches that child
// is the empty, unlabeled None node.
func Many(rule pt.Rule, element Parser, delim Parser) Parser {
	return Or(rule, AtLeastOne(rule, element, delim), None(pt.NoRule))
}

// Ref introduces a late-bound reference to a combinator, letting mutually
// recursive grammars (e.g. form referring to element referring back to
// form) be built as a graph of closures rather than requiring the rules to
// exist before their own definition.
func Ref(thunk func() Parser) Parser {
	var cached Parser
	return func(in token.Stream) (bool, pt.Node, token.Stream) {
		if cached == nil {
			cached = thunk()
		}
		return cached(in)
	}
}
