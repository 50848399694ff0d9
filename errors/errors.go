// Package errors defines the error taxonomy shared by every stage of the
// pipeline: lexing, parsing, schema building, query validation, input
// coercion and execution all produce the same wire-stable shape.
package errors

import "fmt"

// Kind classifies where in the pipeline an error originated. It is not part
// of the wire response; it lets callers distinguish fatal pipeline failures
// (syntax, build, validation, coercion) from per-field execution errors.
type Kind string

const (
	KindSyntax           Kind = "SYNTAX_ERROR"
	KindSchemaBuild      Kind = "SCHEMA_BUILD_ERROR"
	KindSchemaValidation Kind = "SCHEMA_VALIDATION_ERROR"
	KindValidation       Kind = "VALIDATION_ERROR"
	KindCoercion         Kind = "COERCION_ERROR"
	KindResolver         Kind = "RESOLVER_ERROR"
	KindExecution        Kind = "EXECUTION_ERROR"
	KindUnknownDirective Kind = "UNKNOWN_DIRECTIVE"
)

// Location is a 1-indexed line/column position in the source document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a sorts strictly before b in source order.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// QueryError is the single error type produced anywhere in the pipeline. Its
// JSON encoding is the wire-stable `errors[]` entry described by spec §6.
type QueryError struct {
	Message       string                 `json:"message"`
	Locations     []Location             `json:"locations,omitempty"`
	Path          []interface{}          `json:"path,omitempty"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
	Kind          Kind                   `json:"-"`
	Rule          string                 `json:"-"`
	ResolverError error                  `json:"-"`
}

var _ error = (*QueryError)(nil)

func (e *QueryError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("graphql: %s", e.Message)
	for _, loc := range e.Locations {
		s += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return s
}

// Errorf builds a bare QueryError with no kind, location or path set. Callers
// that need those should use the typed constructors below or set fields
// directly.
func Errorf(format string, args ...interface{}) *QueryError {
	return &QueryError{Message: fmt.Sprintf(format, args...)}
}

// NewSyntaxError builds a KindSyntax error at loc, with an optional one-line
// source snippet appended for context.
func NewSyntaxError(message string, loc Location, snippet string) *QueryError {
	msg := message
	if snippet != "" {
		msg = fmt.Sprintf("%s\n%s", message, snippet)
	}
	return &QueryError{
		Message:   msg,
		Locations: []Location{loc},
		Kind:      KindSyntax,
	}
}

// NewSchemaBuildError builds a KindSchemaBuild error.
func NewSchemaBuildError(format string, args ...interface{}) *QueryError {
	return &QueryError{Message: fmt.Sprintf(format, args...), Kind: KindSchemaBuild}
}

// NewSchemaValidationError builds a KindSchemaValidation error.
func NewSchemaValidationError(loc Location, format string, args ...interface{}) *QueryError {
	return &QueryError{
		Message:   fmt.Sprintf(format, args...),
		Locations: []Location{loc},
		Kind:      KindSchemaValidation,
	}
}

// NewValidationError builds a KindValidation error tagged with the rule that
// produced it, as reported by spec §8's "self-referential fragment reported
// exactly once" style properties.
func NewValidationError(rule string, locs []Location, format string, args ...interface{}) *QueryError {
	return &QueryError{
		Message:   fmt.Sprintf(format, args...),
		Locations: locs,
		Rule:      rule,
		Kind:      KindValidation,
	}
}

// NewCoercionError builds a KindCoercion error with a structural path of
// field/argument/list-index steps, per spec §4.6.
func NewCoercionError(path []interface{}, format string, args ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Kind:    KindCoercion,
	}
}

// NewResolverError wraps an error returned or panicked by a resolver,
// preserving it as ResolverError for callers that want to inspect the
// original cause (e.g. for extensions).
func NewResolverError(cause error, path []interface{}) *QueryError {
	qe := &QueryError{
		Message:       cause.Error(),
		Path:          path,
		Kind:          KindResolver,
		ResolverError: cause,
	}
	if ex, ok := cause.(extensionser); ok {
		qe.Extensions = ex.Extensions()
	}
	return qe
}

// NewExecutionError builds a KindExecution error — an internal invariant
// failure (e.g. non-null propagation) rather than a resolver-raised error.
func NewExecutionError(path []interface{}, format string, args ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Kind:    KindExecution,
	}
}

// NewUnknownDirectiveError builds a KindUnknownDirective error, raised
// directly to the caller of ResolveInfo.GetDirectiveArguments rather than
// collected into a result's errors[].
func NewUnknownDirectiveError(name string) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf("unknown directive %q", name),
		Kind:    KindUnknownDirective,
	}
}

// extensionser is implemented by resolver errors that want to attach
// extensions to the surfaced QueryError.
type extensionser interface {
	Extensions() map[string]interface{}
}

// MultiError aggregates several QueryErrors behind the error interface, for
// call sites (e.g. Schema.Validate) that need a single `error` return.
type MultiError []*QueryError

func (m MultiError) Error() string {
	if len(m) == 0 {
		return "<no errors>"
	}
	s := m[0].Error()
	if len(m) > 1 {
		s += fmt.Sprintf(" (and %d more errors)", len(m)-1)
	}
	return s
}
