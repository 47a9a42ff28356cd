package checker

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
)

// CheckFunctions infers the type of every user function in order, threading
// a namespace so later functions may reference earlier ones (namespace
// monotonicity: a successful binding is never overwritten within a single
// pass, per SPEC_FULL.md §8 invariant 6). On the first failing function the
// pass aborts and returns the error together with the namespace already
// built from the functions that succeeded, for diagnostics.
func (c *Checker) CheckFunctions(fns []ast.Function, outer Namespace) (Namespace, error) {
	ns := outer
	if ns == nil {
		ns = Namespace{}
	}
	for _, fn := range fns {
		if IsBuiltin(fn.Name) {
			return ns, fmt.Errorf("cannot redefine builtin '%s'", fn.Name)
		}
		if _, exists := ns.Lookup(fn.Name); exists {
			return ns, fmt.Errorf("cannot redefine function '%s'", fn.Name)
		}

		inner := ns
		for _, dec := range fn.Args {
			t, err := ResolveTypeName(dec.Type)
			if err != nil {
				return ns, fmt.Errorf("in function '%s', parameter '%s': %s", fn.Name, dec.Identifier, err)
			}
			inner = inner.Extend(dec.Identifier, t)
		}

		t, err := c.Infer(fn.Body, inner)
		if err != nil {
			return ns, err
		}
		c.log.Infof("function %q: %s", fn.Name, t.Name())
		ns = ns.Extend(fn.Name, t)
	}
	return ns, nil
}
