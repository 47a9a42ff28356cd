package checker

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/types"
)

// baseTypes resolves a bare TypeName (no Sub) to a primitive or EmptyList,
// per SPEC_FULL.md §4.7.
var baseTypes = map[string]types.Type{
	"number":    types.NewPrimitive(types.Number),
	"string":    types.NewPrimitive(types.String),
	"bool":      types.NewPrimitive(types.Bool),
	"EmptyList": types.EmptyList,
}

// constructors resolves a TypeName with a Sub to the corresponding
// parameterized type.
var constructors = map[string]func(elem types.Type) types.Type{
	"List":  func(elem types.Type) types.Type { return types.List{Elem: elem} },
	"List*": func(elem types.Type) types.Type { return types.ListStar{Elem: elem} },
}

// ResolveTypeName resolves a parsed TypeName against the base-type and
// constructor registries.
func ResolveTypeName(tn ast.TypeName) (types.Type, error) {
	if tn.Sub == nil {
		if t, ok := baseTypes[tn.Base]; ok {
			return t, nil
		}
		if _, ok := constructors[tn.Base]; ok {
			return nil, fmt.Errorf("unknown type '%s', maybe you meant '%s[...]'", tn.Base, tn.Base)
		}
		return nil, fmt.Errorf("unknown type '%s'", tn.Base)
	}
	ctor, ok := constructors[tn.Base]
	if !ok {
		return nil, fmt.Errorf("unknown type constructor '%s'", tn.Base)
	}
	elem, err := ResolveTypeName(*tn.Sub)
	if err != nil {
		return nil, err
	}
	return ctor(elem), nil
}
