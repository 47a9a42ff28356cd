// Package lexer implements the single-pass regex-alternation tokenizer
// described in SPEC_FULL.md §4.3: an ordered union of named token classes,
// with whitespace runs between tokens silently skipped.
package lexer

import (
	"regexp"
	"strings"

	"github.com/lumen-lang/lumen/token"
)

// Options configures the lexer's token classes. The zero value is not
// useful; use DefaultOptions.
type Options struct {
	// IdentifierPattern is the character class for identifiers, resolving
	// SPEC_FULL.md §9's open question: the canonical class is the latest
	// draft, [a-zA-Z\-+*^/0-9<>=]+. Exposed so callers needing the earlier,
	// superseded drafts (or a custom surface dialect) can override it.
	IdentifierPattern string
}

// DefaultOptions is the canonical token-class configuration.
func DefaultOptions() Options {
	return Options{IdentifierPattern: `[a-zA-Z\-+*^/0-9<>=]+`}
}

// classNames lists the named token classes in the fixed precedence order
// SPEC_FULL.md §4.3 specifies: number, string, identifier, parenthesis,
// special. Go's regexp alternation is leftmost-first: at each position the
// earliest branch that matches wins, even when a later branch would match a
// longer token (so "2x" lexes as "2" then "x").
var classNames = []string{"number", "string", "identifier", "parenthesis", "special"}

// Lex tokenizes source into a token.Stream using opts' classes. Newlines are
// treated as ordinary whitespace; the caller (per SPEC_FULL.md §6) is
// expected to have already normalized them to spaces, but Lex tolerates raw
// newlines fine since the token-class union never matches them and gaps
// between matches are simply skipped.
func Lex(source string, opts Options) token.Stream {
	pattern := regexp.MustCompile(strings.Join([]string{
		`(?P<number>\d+(\.\d+)?)`,
		`(?P<string>"[^"]*")`,
		`(?P<identifier>` + opts.IdentifierPattern + `)`,
		`(?P<parenthesis>[()])`,
		`(?P<special>[:,\[\]])`,
	}, "|"))

	var tokens []string
	var offsets []int
	for _, loc := range pattern.FindAllStringIndex(source, -1) {
		tokens = append(tokens, source[loc[0]:loc[1]])
		offsets = append(offsets, loc[0])
	}
	return token.NewWithOffsets(tokens, offsets)
}

// LexDefault tokenizes source using DefaultOptions.
func LexDefault(source string) token.Stream {
	return Lex(source, DefaultOptions())
}

// numberRe and stringRe back IsNumber and IsQuotedString, which the ast
// package uses to classify atom text without re-running the full
// alternation. They repeat the number and string classes of Lex's pattern.
var (
	numberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	stringRe = regexp.MustCompile(`^"[^"]*"$`)
)

// IsNumber reports whether tok is a numeric literal token.
func IsNumber(tok string) bool { return numberRe.MatchString(tok) }

// IsQuotedString reports whether tok is a quoted-string literal token.
func IsQuotedString(tok string) bool { return stringRe.MatchString(tok) }
