package types_test

import (
	"testing"

	"github.com/lumen-lang/lumen/types"
)

func TestNameFormats(t *testing.T) {
	tests := []struct {
		t    types.Type
		want string
	}{
		{types.NewPrimitive(types.Number), "number"},
		{types.NewPrimitive(types.String), "string"},
		{types.NewPrimitive(types.Bool), "bool"},
		{types.NewPrimitive(types.Void), "void"},
		{types.EmptyList, "EmptyList"},
		{types.Unrecognized, "Unrecognized"},
		{types.List{Elem: types.NewPrimitive(types.Number)}, "List<number>"},
		{types.ListStar{Elem: types.NewPrimitive(types.Number)}, "List*<number>"},
		{types.List{Elem: types.List{Elem: types.NewPrimitive(types.String)}}, "List<List<string>>"},
	}
	for _, test := range tests {
		if got := test.t.Name(); got != test.want {
			t.Errorf("Name() = %q, want %q", got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	string_ := types.NewPrimitive(types.String)
	if !types.Equal(number, types.NewPrimitive(types.Number)) {
		t.Error("expected Number to equal a freshly constructed Number")
	}
	if types.Equal(number, string_) {
		t.Error("expected Number != String")
	}
	if !types.Equal(types.List{Elem: number}, types.List{Elem: types.NewPrimitive(types.Number)}) {
		t.Error("expected structurally-equal Lists to be Equal")
	}
	if types.Equal(types.List{Elem: number}, types.ListStar{Elem: number}) {
		t.Error("expected List and List* to be unequal even with the same element")
	}
	if types.Equal(types.Unrecognized, types.Unrecognized) {
		t.Error("expected Unrecognized to not equal even itself")
	}
}

func TestCompatible(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	if !types.Compatible(types.EmptyList, types.List{Elem: number}) {
		t.Error("expected EmptyList compatible with List[number]")
	}
	if !types.Compatible(types.List{Elem: number}, types.EmptyList) {
		t.Error("expected List[number] compatible with EmptyList")
	}
	if !types.Compatible(types.EmptyList, types.ListStar{Elem: number}) {
		t.Error("expected EmptyList compatible with List*[number]")
	}
	if types.Compatible(types.Unrecognized, number) || types.Compatible(number, types.Unrecognized) {
		t.Error("expected Unrecognized to be compatible with nothing")
	}
	if types.Compatible(number, types.NewPrimitive(types.String)) {
		t.Error("expected Number incompatible with String")
	}
}

func TestIsListShaped(t *testing.T) {
	if !types.IsListShaped(types.EmptyList) {
		t.Error("expected EmptyList to be list-shaped")
	}
	if !types.IsListShaped(types.List{Elem: types.NewPrimitive(types.Number)}) {
		t.Error("expected List to be list-shaped")
	}
	if types.IsListShaped(types.NewPrimitive(types.Number)) {
		t.Error("expected Number to not be list-shaped")
	}
}

func TestElemOf(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	if elem, ok := types.ElemOf(types.List{Elem: number}); !ok || !types.Equal(elem, number) {
		t.Errorf("expected ElemOf(List[number]) = number, got %v, %v", elem, ok)
	}
	if _, ok := types.ElemOf(types.EmptyList); ok {
		t.Error("expected ElemOf(EmptyList) to fail: EmptyList has no element type")
	}
}

// invariant 4, spec.md §8: join commutativity.
func TestJoinCommutative(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	cases := [][2]types.Type{
		{number, number},
		{types.EmptyList, types.List{Elem: number}},
		{types.List{Elem: number}, types.ListStar{Elem: number}},
		{types.List{Elem: types.EmptyList}, types.List{Elem: number}},
	}
	for _, c := range cases {
		ab, okAB := types.Join(c[0], c[1])
		ba, okBA := types.Join(c[1], c[0])
		if okAB != okBA {
			t.Errorf("Join(%v,%v) defined=%v but Join(%v,%v) defined=%v", c[0], c[1], okAB, c[1], c[0], okBA)
			continue
		}
		if okAB && !types.Equal(ab, ba) {
			t.Errorf("Join(%v,%v)=%v != Join(%v,%v)=%v", c[0], c[1], ab.Name(), c[1], c[0], ba.Name())
		}
	}
}

// invariant 5, spec.md §8: EmptyList absorption.
func TestJoinEmptyListAbsorption(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	joined, ok := types.Join(types.List{Elem: number}, types.EmptyList)
	if !ok {
		t.Fatal("expected Join(List[number], EmptyList) to be defined")
	}
	if want := "List*<number>"; joined.Name() != want {
		t.Errorf("expected %s, got %s", want, joined.Name())
	}

	joined, ok = types.Join(types.EmptyList, types.EmptyList)
	if !ok {
		t.Fatal("expected Join(EmptyList, EmptyList) to be defined")
	}
	if joined.Name() != "EmptyList" {
		t.Errorf("expected EmptyList, got %s", joined.Name())
	}
}

func TestJoinIncompatible(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	string_ := types.NewPrimitive(types.String)
	if _, ok := types.Join(number, string_); ok {
		t.Error("expected Join(number, string) to be undefined")
	}
}

func TestJoinAll(t *testing.T) {
	number := types.NewPrimitive(types.Number)
	joined, ok := types.JoinAll([]types.Type{number, number, number})
	if !ok || !types.Equal(joined, number) {
		t.Errorf("expected JoinAll([number,number,number]) = number, got %v, %v", joined, ok)
	}
}
