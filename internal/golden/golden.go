// Package golden provides the snapshot-comparison helpers SPEC_FULL.md §8
// uses to check the inferred namespace for every testdata/*.lum fixture,
// grounded on robfig-soy's own golden-comparison test style
// (bytecode/compiler_test.go's cmp.Diff, soyjs/exec_test.go's
// diff.LineDiff).
package golden

import (
	"fmt"

	"github.com/andreyvit/diff"
	"github.com/google/go-cmp/cmp"
)

// DiffStrings returns a human-readable line diff of want vs got, or ""
// if they are equal. Mirrors soyjs/exec_test.go's diff.LineDiff usage for
// reporting multi-line text mismatches (CLI output, pretty-printed errors).
func DiffStrings(want, got string) string {
	if want == got {
		return ""
	}
	return diff.LineDiff(want, got)
}

// DiffValues returns a structural diff of want vs got, or "" if they are
// equal. Mirrors bytecode/compiler_test.go's cmp.Diff usage for comparing
// parse trees and type maps.
func DiffValues(want, got interface{}) string {
	return cmp.Diff(want, got)
}

// Mismatch formats a standard "does not match" failure message carrying a
// diff, for t.Fatalf/t.Errorf call sites.
func Mismatch(label string, diffText string) string {
	return fmt.Sprintf("%s does not match:\n%s", label, diffText)
}
