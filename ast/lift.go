package ast

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/grammar"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/pt"
)

// Lift lowers a pruned parse tree into the term algebra. root is expected to
// be the result of grammar.Prune applied to a whole-program parse: its Rule
// is grammar.PROGRAM (PROGRAM is in the excluded set, so prune never
// collapses it, even for a single top-level term). Any other root is lifted
// as the sole term of a one-term program.
func Lift(root pt.Node) Program {
	if root.Rule == grammar.PROGRAM {
		terms := make([]Term, 0, len(root.Children))
		for _, c := range root.Children {
			terms = append(terms, liftTerm(c))
		}
		return Program{Terms: terms}
	}
	return Program{Terms: []Term{liftTerm(root)}}
}

// liftTerm lowers a single pruned element node (tagged ATOM, FORM, or
// FUNCTION_DEF) into the corresponding term.
func liftTerm(n pt.Node) Term {
	switch n.Rule {
	case grammar.ATOM:
		return liftAtom(n)
	case grammar.FORM:
		return liftForm(n)
	case grammar.FUNCTION_DEF:
		return liftFunction(n)
	default:
		// A malformed or not-yet-collapsed node; treat its raw text as an
		// identifier atom rather than panicking, since the grammar layer
		// is solely responsible for rejecting invalid input.
		return NewNumberAtom(strings.Join(n.Matched, ""))
	}
}

func liftAtom(n pt.Node) Atom {
	text := strings.Join(n.Matched, "")
	if lexer.IsQuotedString(text) {
		return NewStringAtom(text[1 : len(text)-1])
	}
	return NewNumberAtom(text)
}

// formElements returns a FORM node's body as a flat slice of element nodes,
// per the two surviving shapes described in SPEC_FULL.md/DESIGN.md's prune
// trace: a single child tagged ELEMENTS holding the (possibly empty) list,
// or -- when the form holds exactly one element -- that element's own
// concrete node promoted directly into the FORM's place.
func formElements(form pt.Node) []pt.Node {
	if len(form.Children) == 0 {
		return nil
	}
	body := form.Children[0]
	if body.Rule == grammar.ELEMENTS {
		return body.Children
	}
	return []pt.Node{body}
}

func liftForm(n pt.Node) Form {
	elems := formElements(n)
	terms := make([]Term, 0, len(elems))
	for _, e := range elems {
		terms = append(terms, liftTerm(e))
	}
	return Form{Elements: terms}
}

// typeDecs returns a TYPE_DECS node's parameter declarations. After
// grammar.Prune its children are TYPE_DEC nodes for one parameter as well as
// for several (TYPE_DEC is excluded, so a lone TYPE_DEC child is not
// collapsed into its parent). A TYPE_DECS node whose first child is not a
// TYPE_DEC is read as a single declaration built from its own children.
func typeDecs(n pt.Node) []TypeDec {
	if len(n.Children) == 0 {
		return nil
	}
	if n.Children[0].Rule == grammar.TYPE_DEC {
		decs := make([]TypeDec, 0, len(n.Children))
		for _, c := range n.Children {
			decs = append(decs, liftTypeDec(c))
		}
		return decs
	}
	return []TypeDec{liftTypeDec(n)}
}

func liftTypeDec(n pt.Node) TypeDec {
	if len(n.Children) != 2 {
		return TypeDec{}
	}
	name := strings.Join(n.Children[0].Matched, "")
	return TypeDec{Identifier: name, Type: liftTypeName(n.Children[1])}
}

func liftTypeName(n pt.Node) TypeName {
	if len(n.Children) == 0 {
		return TypeName{Base: strings.Join(n.Matched, "")}
	}
	base := strings.Join(n.Children[0].Matched, "")
	sub := liftTypeName(n.Children[1])
	return TypeName{Base: base, Sub: &sub}
}

func liftFunction(n pt.Node) Function {
	if len(n.Children) != 3 {
		return Function{}
	}
	name := strings.Join(n.Children[0].Matched, "")
	args := typeDecs(n.Children[1])
	body := liftTerm(n.Children[2])
	return Function{Name: name, Args: args, Body: body}
}

// Classify reports which of SPEC_FULL.md §4.4's lexical categories an
// Atom's raw text falls into: quoted string, boolean literal, numeric
// literal, or (if all three are false) identifier. The checker uses this
// directly when inferring an Atom's type.
func Classify(text string) (isString, isBool, isNumber bool) {
	if lexer.IsQuotedString(text) {
		return true, false, false
	}
	if text == "true" || text == "false" {
		return false, true, false
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false, false, true
	}
	return false, false, false
}
