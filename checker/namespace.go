package checker

import "github.com/lumen-lang/lumen/types"

// Namespace maps an identifier to its inferred type. It is threaded through
// type checking rather than mutated: Extend returns a new Namespace, so
// extending a namespace for one function's parameters never leaks into a
// sibling function's view of it.
type Namespace map[string]types.Type

// Extend returns a new Namespace equal to ns with name bound to t. ns is
// not modified.
func (ns Namespace) Extend(name string, t types.Type) Namespace {
	out := make(Namespace, len(ns)+1)
	for k, v := range ns {
		out[k] = v
	}
	out[name] = t
	return out
}

// Lookup returns the type bound to name, and whether it was found.
func (ns Namespace) Lookup(name string) (types.Type, bool) {
	t, ok := ns[name]
	return t, ok
}
