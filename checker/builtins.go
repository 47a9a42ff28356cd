package checker

// builtinHeads is the fixed set of reserved head symbols from
// SPEC_FULL.md §4.5, shared by the checker and the (out-of-scope)
// transpiler. Redefining any of these as a user function is an error.
var builtinHeads = map[string]bool{
	"import": true, "+": true, "-": true, "*": true, "/": true, "^": true,
	"=": true, ">": true, "<": true, ">=": true, "<=": true,
	"and": true, "or": true, "not": true, "print": true, "list": true,
	"++": true, "first": true, "rest": true, "map": true, "filter": true,
	"lambda": true, "if": true,
}

// IsBuiltin reports whether name is a reserved builtin head symbol.
func IsBuiltin(name string) bool {
	return builtinHeads[name]
}
