// Package grammar builds the surface grammar of SPEC_FULL.md §4.4 out of
// the combinator kernel: atoms, forms, function definitions, and composite
// type expressions.
package grammar

import (
	"github.com/lumen-lang/lumen/combinator"
	"github.com/lumen-lang/lumen/pt"
	"github.com/lumen-lang/lumen/token"
)

// Grammar holds the entry-point parsers for each named production, so
// callers (and tests, per SPEC_FULL.md §8 scenario S8) can parse against a
// specific rule rather than only a whole program.
type Grammar struct {
	Atom        combinator.Parser
	Element     combinator.Parser
	Form        combinator.Parser
	TypeName    combinator.Parser
	TypeDec     combinator.Parser
	FunctionDef combinator.Parser
	Program     combinator.Parser
}

// Build constructs a Grammar whose atoms/identifiers are recognized by
// identifierPattern (SPEC_FULL.md §9 pins the canonical class but leaves it
// overridable).
func Build(identifierPattern string) *Grammar {
	lparen := combinator.Literal(pt.NoRule, "(")
	rparen := combinator.Literal(pt.NoRule, ")")
	lbracket := combinator.Literal(pt.NoRule, "[")
	rbracket := combinator.Literal(pt.NoRule, "]")
	colon := combinator.Literal(pt.NoRule, ":")
	comma := combinator.Literal(pt.NoRule, ",")
	funKw := combinator.Literal(pt.NoRule, "fun")

	ident := combinator.Regex(identOnly, identifierPattern)
	number := combinator.Regex(numberOnly, `\d+(\.\d+)?`)
	str := combinator.Regex(stringOnly, `"[^"]*"`)

	atom := combinator.Or(ATOM, ident, number, str)

	var element combinator.Parser
	var form combinator.Parser
	var functionDef combinator.Parser
	var typeName combinator.Parser

	// element, form, and function_def are mutually recursive
	// (element -> form -> element, element -> function_def -> element), so
	// each is introduced through Ref and only bound to its real body below.
	// function_def is tried before form: a definition also matches the
	// generic form shape, and PEG choice keeps the first alternative.
	element = combinator.Ref(func() combinator.Parser {
		return combinator.Or(ELEMENT, functionDef, form, atom)
	})

	form = combinator.Ref(func() combinator.Parser {
		return combinator.And(FORM, lparen, combinator.Many(ELEMENTS, element, nil), rparen)
	})

	typeName = combinator.Ref(func() combinator.Parser {
		withSub := combinator.And(TYPE_NAME, ident, lbracket, typeName, rbracket)
		bare := combinator.And(TYPE_NAME, ident)
		return combinator.Or(TYPE_NAME, withSub, bare)
	})

	typeDec := combinator.And(TYPE_DEC, ident, colon, typeName)

	functionDef = combinator.Ref(func() combinator.Parser {
		return combinator.And(FUNCTION_DEF,
			lparen, funKw, ident,
			lparen, combinator.Many(TYPE_DECS, typeDec, comma), rparen,
			element,
			rparen,
		)
	})

	program := combinator.AtLeastOne(PROGRAM, element, nil)

	return &Grammar{
		Atom:        atom,
		Element:     element,
		Form:        form,
		TypeName:    typeName,
		TypeDec:     typeDec,
		FunctionDef: functionDef,
		Program:     program,
	}
}

// ParseResult is the outcome of running a Grammar's parser against a token
// stream to completion.
type ParseResult struct {
	Tree      pt.Node
	Succeeded bool
	// Exhausted is false when the parser matched only a prefix of the
	// stream, per SPEC_FULL.md §5's "malformed input is rejected by the
	// program-level driver when the parser succeeds on a prefix but leaves
	// the stream non-empty".
	Exhausted bool
	Remaining token.Stream
}

// Run executes p against in and reports whether it both succeeded and
// consumed the entire stream.
func Run(p combinator.Parser, in token.Stream) ParseResult {
	ok, node, rest := p(in)
	return ParseResult{
		Tree:      node,
		Succeeded: ok,
		Exhausted: ok && rest.Empty(),
		Remaining: rest,
	}
}

// Prune applies the pruning rewrite with the standard surface-grammar
// exclusion and rule-adoption sets from SPEC_FULL.md §4.4.
func Prune(t pt.Node) pt.Node {
	return pt.Prune(t, Excluded(), UseChildRule())
}
