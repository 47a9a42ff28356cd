// Package token holds the immutable cursor the combinator kernel parses
// against. A Stream never mutates; Advance returns a new Stream rather than
// moving an internal index, matching the rest of the parser's no-shared-state
// design.
package token

// Stream is an immutable cursor over a sequence of lexer tokens. The zero
// value is an empty stream; construct one over tokens with New.
type Stream struct {
	tokens []string
	pos    int
	// offsets holds the byte offset of each token in the original source,
	// used only for error reporting (see internal/errortypes). It has the
	// same length as tokens, or is nil when offsets were not tracked.
	offsets []int
}

// New builds a Stream over tokens starting at position 0.
func New(tokens []string) Stream {
	return Stream{tokens: tokens}
}

// NewWithOffsets builds a Stream that also remembers each token's byte
// offset in the original source, for position-carrying error messages.
func NewWithOffsets(tokens []string, offsets []int) Stream {
	return Stream{tokens: tokens, offsets: offsets}
}

// Empty reports whether the stream has no more tokens to consume.
func (s Stream) Empty() bool {
	return s.pos >= len(s.tokens)
}

// Len returns the number of tokens remaining in the stream.
func (s Stream) Len() int {
	return len(s.tokens) - s.pos
}

// Advance returns the next token, the stream positioned after it, and
// whether a token was available. The receiver is never modified.
func (s Stream) Advance() (tok string, rest Stream, ok bool) {
	if s.Empty() {
		return "", s, false
	}
	return s.tokens[s.pos], Stream{tokens: s.tokens, pos: s.pos + 1, offsets: s.offsets}, true
}

// Peek returns the next token without consuming it.
func (s Stream) Peek() (tok string, ok bool) {
	if s.Empty() {
		return "", false
	}
	return s.tokens[s.pos], true
}

// Offset returns the byte offset of the next unconsumed token in the
// original source, or -1 if offsets were not tracked or the stream is
// empty. Used by internal/errortypes to attach a position to the deepest
// point a parse got stuck, per SPEC_FULL.md §9's open-question resolution.
func (s Stream) Offset() int {
	if s.offsets == nil || s.Empty() {
		return -1
	}
	return s.offsets[s.pos]
}
