package grammar

import "github.com/lumen-lang/lumen/pt"

// Rule tags for every surface-grammar production named in SPEC_FULL.md §4.4.
const (
	_ pt.Rule = iota
	ATOM
	ELEMENT
	ELEMENTS
	FORM
	TYPE_NAME
	TYPE_DEC
	TYPE_DECS
	FUNCTION_DEF
	PROGRAM

	// sub-tags used only internally by the atom/type_name productions.
	identOnly
	numberOnly
	stringOnly
)

// Excluded is the set of rules prune() never collapses through, per
// SPEC_FULL.md §4.4's "excluded = {PROGRAM, TYPE_DEC}".
func Excluded() pt.RuleSet { return pt.NewRuleSet(PROGRAM, TYPE_DEC) }

// UseChildRule is the set of rules whose own tag is replaced by a
// single surviving child's tag during prune, per SPEC_FULL.md §4.4's
// "useChildRule = {ELEMENT, ELEMENTS}".
func UseChildRule() pt.RuleSet { return pt.NewRuleSet(ELEMENT, ELEMENTS) }
