// Package lumen is the façade of SPEC_FULL.md component 10: it wires the
// lexer, grammar, prune pass, and AST lifter into a single Parse entry
// point, and the checker into a single Check entry point. Both are pure
// functions of their input, per spec.md §5's determinism requirement.
package lumen

import (
	"errors"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/checker"
	"github.com/lumen-lang/lumen/grammar"
	"github.com/lumen-lang/lumen/internal/errortypes"
	"github.com/lumen-lang/lumen/internal/trace"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/types"
)

// Options configures the façade. The zero value is the default
// configuration: the canonical identifier class (spec.md §9) and no
// tracing.
type Options struct {
	// IdentifierPattern overrides the lexer's identifier character class.
	// Empty means lexer.DefaultOptions().IdentifierPattern.
	IdentifierPattern string

	// Logger, if non-nil, receives Debug/Info/Warn traces from both the
	// parser driver and the checker.
	Logger trace.Logger

	// File names the source for position reporting in errors. Empty
	// means positions are omitted from error messages.
	File string
}

func (o Options) identifierPattern() string {
	if o.IdentifierPattern != "" {
		return o.IdentifierPattern
	}
	return lexer.DefaultOptions().IdentifierPattern
}

func (o Options) logger() trace.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return trace.NoOp
}

// ErrCouldNotParse and ErrCouldNotParseWhole are the two parse-failure
// strings fixed by spec.md §6/§7. The driver wraps one of these with a
// position via internal/errortypes when Options.File is set.
var (
	ErrCouldNotParse      = errors.New("Could not parse!")
	ErrCouldNotParseWhole = errors.New("Could not parse the whole input!")
)

// Parse lexes and parses source into a Program, per spec.md §6's
// parse(source) -> Result<AST, ParseError> entry point.
func Parse(source string, opts Options) (ast.Program, error) {
	log := opts.logger()
	toks := lexer.Lex(source, lexer.Options{IdentifierPattern: opts.identifierPattern()})
	log.Debugf("lexed %d tokens", toks.Len())

	g := grammar.Build(opts.identifierPattern())
	result := grammar.Run(g.Program, toks)

	if !result.Succeeded {
		log.Warnf("parse failed: no rule matched")
		return ast.Program{}, wrapParseError(source, opts, result, ErrCouldNotParse)
	}
	if !result.Exhausted {
		log.Warnf("parse failed: %d tokens left unconsumed", result.Remaining.Len())
		return ast.Program{}, wrapParseError(source, opts, result, ErrCouldNotParseWhole)
	}

	pruned := grammar.Prune(result.Tree)
	program := ast.Lift(pruned)
	log.Infof("parsed %d top-level terms", len(program.Terms))
	return program, nil
}

func wrapParseError(source string, opts Options, result grammar.ParseResult, cause error) error {
	if opts.File == "" {
		return cause
	}
	offset := result.Remaining.Offset()
	if offset < 0 {
		offset = len(source)
	}
	return errortypes.NewErrFilePos(opts.File, source, offset, cause)
}

// CheckError wraps a type-checker failure so callers can still compare
// its message with spec.md §6's verbatim strings via Error(), while also
// exposing which functions (if any) were successfully checked before the
// failure, per spec.md §7's partial-diagnostics requirement.
type CheckError struct {
	Namespace checker.Namespace
	Err       error
}

func (e *CheckError) Error() string { return e.Err.Error() }
func (e *CheckError) Unwrap() error { return e.Err }

// ErrMainNotDefined is returned by Check when a whole program has no "main"
// binding. Only the presence of "main" is checked; a "main" that declares
// parameters is accepted. The façade has no REPL entry point, so every call
// to Check is whole-program and this check always applies.
var ErrMainNotDefined = errors.New("Function 'main' is not defined!")

// Check type-checks every function in program in declaration order,
// threading a namespace so later functions may call earlier ones, per
// spec.md §6's check(namespace) -> Result<TypeMap, TypeError> entry
// point. It then requires "main" to be bound (its parameter count is not
// checked).
func Check(program ast.Program, opts Options) (checker.Namespace, error) {
	c := checker.New(checker.WithLogger(opts.logger()))
	ns, err := c.CheckFunctions(program.Functions(), nil)
	if err != nil {
		return ns, &CheckError{Namespace: ns, Err: err}
	}
	if _, ok := ns.Lookup("main"); !ok {
		return ns, &CheckError{Namespace: ns, Err: ErrMainNotDefined}
	}
	return ns, nil
}

// ParseAndCheck runs Parse then Check, returning the first error
// encountered. It is the convenience path cmd/lumen uses per file.
func ParseAndCheck(source string, opts Options) (checker.Namespace, error) {
	program, err := Parse(source, opts)
	if err != nil {
		return nil, err
	}
	return Check(program, opts)
}

// TypeOf is a small convenience used by cmd/lumen to report a single
// function's inferred type from a namespace already built by Check.
func TypeOf(ns checker.Namespace, name string) (types.Type, bool) {
	return ns.Lookup(name)
}
