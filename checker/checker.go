// Package checker implements the type inference pass of SPEC_FULL.md §4.6:
// atom, builtin, and user-function inference threaded through a Namespace.
package checker

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/internal/trace"
	"github.com/lumen-lang/lumen/types"
)

// Checker infers types for terms. The zero value is usable (it traces
// nothing); use New with Option values to opt into diagnostics.
type Checker struct {
	log trace.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger attaches a trace.Logger. Form inference, string atoms and
// namespace lookups are reported at Debug level, and each checked function's
// type at Info level; number and boolean literals are not reported.
func WithLogger(l trace.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// New builds a Checker with the given options applied.
func New(opts ...Option) *Checker {
	c := &Checker{log: trace.NoOp}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Infer computes the type of term under ns, per SPEC_FULL.md §4.6.
func (c *Checker) Infer(term ast.Term, ns Namespace) (types.Type, error) {
	switch t := term.(type) {
	case ast.Atom:
		return c.inferAtom(t, ns)
	case ast.Form:
		return c.inferForm(t, ns)
	case ast.Function:
		return nil, fmt.Errorf("Cannot infer type of '%s'", t.Name)
	default:
		return types.Unrecognized, fmt.Errorf("Cannot infer type of unknown term")
	}
}

func (c *Checker) inferAtom(a ast.Atom, ns Namespace) (types.Type, error) {
	if a.Kind == ast.StringValue {
		c.log.Debugf("infer atom %q: string", a.Value)
		return types.NewPrimitive(types.String), nil
	}

	_, isBool, isNumber := ast.Classify(a.Value)
	if isBool {
		return types.NewPrimitive(types.Bool), nil
	}
	if t, ok := ns.Lookup(a.Value); ok {
		c.log.Debugf("infer atom %q: namespace -> %s", a.Value, t.Name())
		return t, nil
	}
	if isNumber {
		return types.NewPrimitive(types.Number), nil
	}
	return types.Unrecognized, fmt.Errorf("Cannot infer type of '%s'", a.Value)
}

func (c *Checker) inferForm(f ast.Form, ns Namespace) (types.Type, error) {
	head := f.Head()
	args := f.Args()
	c.log.Debugf("infer form head=%q argc=%d", head, len(args))

	switch head {
	case "list":
		return c.inferList(args, ns)
	case "++":
		return c.inferAppend(args, ns)
	case "first":
		return c.inferFirstRest(head, args, ns)
	case "rest":
		return c.inferFirstRest(head, args, ns)
	case "if":
		return c.inferIf(args, ns)
	case "print":
		return c.inferPrint(args, ns)
	case "<", ">", "<=", ">=", "=":
		return c.inferComparison(head, args, ns)
	case "+", "-", "*", "/", "^":
		return c.inferArithmetic(head, args, ns)
	case "and", "or":
		return c.inferLogical(head, args, ns)
	case "not":
		return c.inferNot(args, ns)
	case "map", "filter", "lambda", "import":
		return types.Unrecognized, fmt.Errorf("'%s' is not supported by this type checker", head)
	default:
		return c.inferCall(head, args, ns)
	}
}

func (c *Checker) inferCall(head string, args []ast.Term, ns Namespace) (types.Type, error) {
	if t, ok := ns.Lookup(head); ok {
		return t, nil
	}
	return types.Unrecognized, fmt.Errorf("Cannot infer type of '%s'", head)
}

func (c *Checker) inferList(args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) == 0 {
		return types.EmptyList, nil
	}
	acc, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	for i := 1; i < len(args); i++ {
		t, err := c.Infer(args[i], ns)
		if err != nil {
			return types.Unrecognized, err
		}
		joined, ok := types.Join(acc, t)
		if !ok {
			return types.Unrecognized, fmt.Errorf(
				"List %d-th element has type '%s' which is not compatible with inferred type '%s'",
				i, t.Name(), acc.Name())
		}
		acc = joined
	}
	return types.List{Elem: acc}, nil
}

func (c *Checker) inferAppend(args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 2 {
		return types.Unrecognized, fmt.Errorf("'++' expects 2 arguments but got %d", len(args))
	}
	elemT, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	listT, err := c.Infer(args[1], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	if _, ok := listT.(types.EmptyListType); ok {
		return types.List{Elem: elemT}, nil
	}
	if elem, ok := types.ElemOf(listT); ok {
		if joined, ok := types.Join(elemT, elem); ok {
			return types.List{Elem: joined}, nil
		}
	}
	return types.Unrecognized, fmt.Errorf("Cannot append element of type '%s' to '%s'", elemT.Name(), listT.Name())
}

func (c *Checker) inferFirstRest(head string, args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 1 {
		return types.Unrecognized, fmt.Errorf("'%s' expects 1 argument but got %d", head, len(args))
	}
	listT, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	if l, ok := listT.(types.List); ok {
		if head == "first" {
			return l.Elem, nil
		}
		return types.ListStar{Elem: l.Elem}, nil
	}
	return types.Unrecognized, fmt.Errorf("'%s' expected a non-empty List type but got '%s'", head, listT.Name())
}

func (c *Checker) inferIf(args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 3 {
		return types.Unrecognized, fmt.Errorf("'if' expects 3 arguments but got %d", len(args))
	}
	condT, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	if !types.Equal(condT, types.NewPrimitive(types.Bool)) {
		return types.Unrecognized, fmt.Errorf("Expected if condition to have type 'bool' but got '%s'", condT.Name())
	}
	thenT, err := c.Infer(args[1], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	elseT, err := c.Infer(args[2], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	joined, ok := types.Join(thenT, elseT)
	if !ok {
		return types.Unrecognized, fmt.Errorf("Incompatible types in if branches: '%s' and '%s'", thenT.Name(), elseT.Name())
	}
	return joined, nil
}

func (c *Checker) inferPrint(args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 1 {
		return types.Unrecognized, fmt.Errorf("'print' expects 1 argument but got %d", len(args))
	}
	// print's inferred type is its argument's type, not Void: SPEC_FULL.md
	// §9 pins this as the resolved behavior (the tests' wire format wins
	// over the otherwise more intuitive Void contract).
	return c.Infer(args[0], ns)
}

func (c *Checker) inferComparison(op string, args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 2 {
		return types.Unrecognized, fmt.Errorf("'%s' expects 2 arguments but got %d", op, len(args))
	}
	leftT, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	rightT, err := c.Infer(args[1], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	if !types.Equal(leftT, rightT) {
		return types.Unrecognized, fmt.Errorf("'%s' expects '%s' but got '%s' for the second argument", op, leftT.Name(), rightT.Name())
	}
	return types.NewPrimitive(types.Bool), nil
}

func (c *Checker) inferArithmetic(op string, args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) < 2 {
		return types.Unrecognized, fmt.Errorf("'%s' expects at least 2 arguments but got %d", op, len(args))
	}
	number := types.NewPrimitive(types.Number)
	for _, a := range args {
		t, err := c.Infer(a, ns)
		if err != nil {
			return types.Unrecognized, err
		}
		if !types.Equal(t, number) {
			return types.Unrecognized, fmt.Errorf("'%s' expects 'number' but got '%s'", op, t.Name())
		}
	}
	return number, nil
}

func (c *Checker) inferLogical(op string, args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) < 2 {
		return types.Unrecognized, fmt.Errorf("'%s' expects at least 2 arguments but got %d", op, len(args))
	}
	boolean := types.NewPrimitive(types.Bool)
	for _, a := range args {
		t, err := c.Infer(a, ns)
		if err != nil {
			return types.Unrecognized, err
		}
		if !types.Equal(t, boolean) {
			return types.Unrecognized, fmt.Errorf("'%s' expects 'bool' but got '%s'", op, t.Name())
		}
	}
	return boolean, nil
}

func (c *Checker) inferNot(args []ast.Term, ns Namespace) (types.Type, error) {
	if len(args) != 1 {
		return types.Unrecognized, fmt.Errorf("'not' expects 1 argument but got %d", len(args))
	}
	t, err := c.Infer(args[0], ns)
	if err != nil {
		return types.Unrecognized, err
	}
	boolean := types.NewPrimitive(types.Bool)
	if !types.Equal(t, boolean) {
		return types.Unrecognized, fmt.Errorf("'not' expects 'bool' but got '%s'", t.Name())
	}
	return boolean, nil
}
