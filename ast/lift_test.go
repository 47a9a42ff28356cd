package ast_test

import (
	"testing"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/grammar"
	"github.com/lumen-lang/lumen/lexer"
)

func liftSource(t *testing.T, source string) ast.Program {
	t.Helper()
	toks := lexer.LexDefault(source)
	g := grammar.Build(lexer.DefaultOptions().IdentifierPattern)
	result := grammar.Run(g.Program, toks)
	if !result.Succeeded || !result.Exhausted {
		t.Fatalf("failed to parse %q", source)
	}
	return ast.Lift(grammar.Prune(result.Tree))
}

// S1: parse("(fun main () (+ 1 2))") lowers to
// Function{name="main", args=[], body=Form[+, 1, 2]}.
func TestScenarioS1Lift(t *testing.T) {
	program := liftSource(t, "(fun main () (+ 1 2))")
	if len(program.Terms) != 1 {
		t.Fatalf("expected 1 top-level term, got %d", len(program.Terms))
	}
	fn, ok := program.Terms[0].(ast.Function)
	if !ok {
		t.Fatalf("expected a Function, got %T", program.Terms[0])
	}
	if fn.Name != "main" {
		t.Errorf("expected name 'main', got %q", fn.Name)
	}
	if len(fn.Args) != 0 {
		t.Errorf("expected 0 args, got %d", len(fn.Args))
	}
	form, ok := fn.Body.(ast.Form)
	if !ok {
		t.Fatalf("expected a Form body, got %T", fn.Body)
	}
	if form.Head() != "+" {
		t.Errorf("expected head '+', got %q", form.Head())
	}
	args := form.Args()
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	a0, ok := args[0].(ast.Atom)
	if !ok || a0.Value != "1" {
		t.Errorf("expected first arg atom '1', got %+v", args[0])
	}
	a1, ok := args[1].(ast.Atom)
	if !ok || a1.Value != "2" {
		t.Errorf("expected second arg atom '2', got %+v", args[1])
	}
}

func TestLiftSingleElementForm(t *testing.T) {
	program := liftSource(t, "(not true)")
	form, ok := program.Terms[0].(ast.Form)
	if !ok {
		t.Fatalf("expected a Form, got %T", program.Terms[0])
	}
	if form.Head() != "not" {
		t.Errorf("expected head 'not', got %q", form.Head())
	}
	if len(form.Args()) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(form.Args()))
	}
}

func TestLiftEmptyForm(t *testing.T) {
	program := liftSource(t, "(list)")
	form, ok := program.Terms[0].(ast.Form)
	if !ok {
		t.Fatalf("expected a Form, got %T", program.Terms[0])
	}
	if form.Head() != "list" {
		t.Errorf("expected head 'list', got %q", form.Head())
	}
	if len(form.Args()) != 0 {
		t.Errorf("expected 0 args, got %d", len(form.Args()))
	}
}

func TestLiftStringAtomStripsQuotes(t *testing.T) {
	program := liftSource(t, `(print "hi")`)
	form := program.Terms[0].(ast.Form)
	arg := form.Args()[0].(ast.Atom)
	if arg.Kind != ast.StringValue {
		t.Fatalf("expected a StringValue atom, got kind %v", arg.Kind)
	}
	if arg.Value != "hi" {
		t.Errorf("expected value 'hi' (quotes stripped), got %q", arg.Value)
	}
}

func TestLiftFunctionWithMultipleTypedParams(t *testing.T) {
	program := liftSource(t, "(fun add (x: number, y: number) (+ x y))")
	fn := program.Terms[0].(ast.Function)
	if len(fn.Args) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Args))
	}
	if fn.Args[0].Identifier != "x" || fn.Args[0].Type.Base != "number" {
		t.Errorf("expected param 0 'x: number', got %+v", fn.Args[0])
	}
	if fn.Args[1].Identifier != "y" || fn.Args[1].Type.Base != "number" {
		t.Errorf("expected param 1 'y: number', got %+v", fn.Args[1])
	}
}

func TestLiftFunctionWithSingleTypedParam(t *testing.T) {
	program := liftSource(t, "(fun id (x: number) x)")
	fn := program.Terms[0].(ast.Function)
	if len(fn.Args) != 1 {
		t.Fatalf("expected 1 param, got %d", len(fn.Args))
	}
	if fn.Args[0].Identifier != "x" || fn.Args[0].Type.Base != "number" {
		t.Errorf("expected param 'x: number', got %+v", fn.Args[0])
	}
}

func TestLiftCompositeTypeName(t *testing.T) {
	program := liftSource(t, "(fun f (xs: List[number]) xs)")
	fn := program.Terms[0].(ast.Function)
	tn := fn.Args[0].Type
	if tn.Base != "List" {
		t.Fatalf("expected base 'List', got %q", tn.Base)
	}
	if tn.Sub == nil || tn.Sub.Base != "number" {
		t.Fatalf("expected sub type 'number', got %+v", tn.Sub)
	}
}

func TestLiftMultipleTopLevelTerms(t *testing.T) {
	program := liftSource(t, "(fun a () 1) (fun b () 2)")
	fns := program.Functions()
	if len(fns) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(fns))
	}
	if fns[0].Name != "a" || fns[1].Name != "b" {
		t.Errorf("expected names [a b], got [%s %s]", fns[0].Name, fns[1].Name)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text                           string
		isString, isBool, isNumber bool
	}{
		{`"hi"`, true, false, false},
		{"true", false, true, false},
		{"false", false, true, false},
		{"42", false, false, true},
		{"3.14", false, false, true},
		{"x", false, false, false},
	}
	for _, test := range tests {
		s, b, n := ast.Classify(test.text)
		if s != test.isString || b != test.isBool || n != test.isNumber {
			t.Errorf("Classify(%q) = (%v,%v,%v), want (%v,%v,%v)",
				test.text, s, b, n, test.isString, test.isBool, test.isNumber)
		}
	}
}
