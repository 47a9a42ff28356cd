// Package trace provides the optional, nil-safe diagnostic logging used by
// the parser and checker. It is modeled on fuhongbo-qlbridge's use of
// github.com/araddon/gou for leveled, printf-style logging (u.Debugf,
// u.Infof, u.Warnf), adapted into a small injectable interface so the core
// stays side-effect-free unless a caller opts in, per SPEC_FULL.md §4.8.
package trace

import u "github.com/araddon/gou"

// Logger is the tracing surface the parser and checker accept. All methods
// take a printf-style format and args, matching gou's own call convention.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// noop is the default, zero-cost Logger: every call is a no-op.
type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}

// NoOp is the default Logger used when a caller does not opt into tracing.
var NoOp Logger = noop{}

// Gou adapts the package-level github.com/araddon/gou logger to the Logger
// interface, so callers that want real output can opt in with
// trace.Gou{} rather than reaching for a bespoke logging stack.
type Gou struct{}

func (Gou) Debugf(format string, args ...interface{}) { u.Debugf(format, args...) }
func (Gou) Infof(format string, args ...interface{})  { u.Infof(format, args...) }
func (Gou) Warnf(format string, args ...interface{})  { u.Warnf(format, args...) }
