/*
File    : mxc/diagnostics/diagnostics.go
Package : diagnostics

Structured, located errors shared by every pipeline stage, grounded on the
teacher's "carries a message, satisfies the language's own error protocol"
shape (objects.Error / std's createError helpers) generalized into a closed
Kind enum matching the error table of spec.md §7.
*/
package diagnostics

import "fmt"

// Kind is the closed set of error categories the pipeline can raise.
type Kind string

const (
	LexError            Kind = "LexError"
	ParseError          Kind = "ParseError"
	UnknownStdlibModule Kind = "UnknownStdlibModule"
	ModuleLoadError     Kind = "ModuleLoadError"
	ImmutableAssign     Kind = "ImmutableAssign"
	AccessViolation     Kind = "AccessViolation"
	UnknownType         Kind = "UnknownType"
	InternalError       Kind = "InternalError"
)

// Error is the uniform diagnostic record. It implements Go's error
// interface so it can flow through ordinary Go error-handling idiom while
// still exposing Kind and location to callers that want to branch on it.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// New builds a located Error.
func New(kind Kind, line, column int, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...), Line: line, Column: column}
}

// Unlocated builds an Error with no meaningful source position (e.g.
// UnknownStdlibModule raised before any token is consulted).
func Unlocated(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
}
