// Package types implements the static type lattice of SPEC_FULL.md §3/§8:
// Number | String | Bool | Void | EmptyList | List[T] | List*[T], with a
// join operator and the compatibility relation the checker relies on.
package types

import "fmt"

// Type is any member of the lattice. Every variant is an immutable,
// structurally-compared value; the lattice is freely shareable.
type Type interface {
	// Name renders the type per SPEC_FULL.md §6's exact wire format:
	// lowercase primitive names, "EmptyList", "List<Name(T)>",
	// "List*<Name(T)>".
	Name() string
	typ()
}

// Kind distinguishes the primitive base types.
type Kind int

const (
	Number Kind = iota
	String
	Bool
	Void
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// Primitive is one of Number, String, Bool, or Void.
type Primitive struct {
	Kind Kind
}

func (Primitive) typ()          {}
func (p Primitive) Name() string { return p.Kind.String() }

// NewPrimitive builds a Primitive type of the given kind.
func NewPrimitive(k Kind) Primitive { return Primitive{Kind: k} }

// EmptyListType is inhabited only by the literal (list) with no elements.
type EmptyListType struct{}

func (EmptyListType) typ()          {}
func (EmptyListType) Name() string { return "EmptyList" }

// EmptyList is the sole value of EmptyListType.
var EmptyList Type = EmptyListType{}

// List is a known non-empty list of a fixed element type.
type List struct {
	Elem Type
}

func (List) typ() {}
func (l List) Name() string {
	return fmt.Sprintf("List<%s>", l.Elem.Name())
}

// ListStar is a "possibly empty" list of T: the join of List[T] with
// EmptyList.
type ListStar struct {
	Elem Type
}

func (ListStar) typ() {}
func (l ListStar) Name() string {
	return fmt.Sprintf("List*<%s>", l.Elem.Name())
}

// UnrecognizedType is the absorbing bottom used for error reporting: it is
// compatible with nothing, not even itself.
type UnrecognizedType struct{}

func (UnrecognizedType) typ()          {}
func (UnrecognizedType) Name() string { return "Unrecognized" }

// Unrecognized is the sole value of UnrecognizedType.
var Unrecognized Type = UnrecognizedType{}

// Equal reports structural equality between two types. Two Primitives are
// equal iff their Kind matches; two List/List* are equal iff their element
// types are (recursively) equal; EmptyList equals EmptyList. Unrecognized
// equals nothing, not even itself.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case Primitive:
		y, ok := b.(Primitive)
		return ok && x.Kind == y.Kind
	case EmptyListType:
		_, ok := b.(EmptyListType)
		return ok
	case List:
		y, ok := b.(List)
		return ok && Equal(x.Elem, y.Elem)
	case ListStar:
		y, ok := b.(ListStar)
		return ok && Equal(x.Elem, y.Elem)
	case UnrecognizedType:
		return false
	default:
		return false
	}
}

// Compatible implements SPEC_FULL.md §3's compatibility relation between two
// types that need not be identical (e.g. an EmptyList and a List[T]). The
// checker does not call it; its inference uses Equal and Join.
func Compatible(a, b Type) bool {
	if _, ok := a.(UnrecognizedType); ok {
		return false
	}
	if _, ok := b.(UnrecognizedType); ok {
		return false
	}
	switch x := a.(type) {
	case EmptyListType:
		switch b.(type) {
		case EmptyListType, List, ListStar:
			return true
		}
		return false
	case List:
		switch y := b.(type) {
		case EmptyListType:
			return true
		case List:
			return Equal(x.Elem, y.Elem)
		case ListStar:
			return Equal(x.Elem, y.Elem)
		}
		return false
	case ListStar:
		switch y := b.(type) {
		case EmptyListType:
			return true
		case List:
			return Equal(x.Elem, y.Elem)
		case ListStar:
			return Equal(x.Elem, y.Elem)
		}
		return false
	case Primitive:
		y, ok := b.(Primitive)
		return ok && x.Kind == y.Kind
	default:
		return false
	}
}

// IsListShaped reports whether t is EmptyList, List[_], or List*[_].
func IsListShaped(t Type) bool {
	switch t.(type) {
	case EmptyListType, List, ListStar:
		return true
	}
	return false
}

// ElemOf returns the element type of a list-shaped type, and false if t is
// not list-shaped or is EmptyList (which has no element type).
func ElemOf(t Type) (Type, bool) {
	switch x := t.(type) {
	case List:
		return x.Elem, true
	case ListStar:
		return x.Elem, true
	}
	return nil, false
}
