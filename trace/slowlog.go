package trace

import (
	"context"
	"encoding/json"
	stdlog "log"
	"time"

	"github.com/lirsacc/graphql/errors"
)

// SlowQueryLog wraps another Tracer and logs a warning line whenever a
// whole query execution's wall time reaches Threshold, grounded on the
// original implementation's SlowQueryLog utility tracer: a duration
// threshold, a pluggable logger, and overridable document/variables
// formatting so a caller can redact sensitive query text before it hits
// the log.
type SlowQueryLog struct {
	// Threshold is the minimum query duration that triggers a log line.
	Threshold time.Duration
	// Next is the Tracer this one delegates every call to; NoOp if nil.
	Next Tracer
	// Logger receives the formatted warning line; stdlog's default
	// logger if nil.
	Logger *stdlog.Logger
	// FormatDocument renders the query text for the log line; the query
	// text unchanged if nil.
	FormatDocument func(query string) string
	// FormatVariables renders the variables map for the log line; a JSON
	// encoding if nil.
	FormatVariables func(variables map[string]interface{}) string
}

func (s SlowQueryLog) next() Tracer {
	if s.Next == nil {
		return NoOp
	}
	return s.Next
}

func (s SlowQueryLog) logger() *stdlog.Logger {
	if s.Logger == nil {
		return stdlog.Default()
	}
	return s.Logger
}

func (s SlowQueryLog) formatDocument(query string) string {
	if s.FormatDocument != nil {
		return s.FormatDocument(query)
	}
	return query
}

func (s SlowQueryLog) formatVariables(variables map[string]interface{}) string {
	if s.FormatVariables != nil {
		return s.FormatVariables(variables)
	}
	b, err := json.Marshal(variables)
	if err != nil {
		return "null"
	}
	return string(b)
}

// TraceQuery starts the wrapped Tracer's query span, then times the whole
// call and logs once it finishes if Threshold was reached or exceeded.
func (s SlowQueryLog) TraceQuery(ctx context.Context, queryString, operationName string, variables map[string]interface{}) (context.Context, QueryFinishFunc) {
	ctx, finish := s.next().TraceQuery(ctx, queryString, operationName, variables)
	start := time.Now()
	return ctx, func(errs []*errors.QueryError) {
		finish(errs)
		if d := time.Since(start); d >= s.Threshold {
			s.logger().Printf(
				"graphql: slow query operation=%q duration=%s document=%s variables=%s",
				operationName, d, s.formatDocument(queryString), s.formatVariables(variables),
			)
		}
	}
}

// TraceField delegates unchanged; slow-field logging isn't this tracer's
// concern, it only watches whole-query wall time.
func (s SlowQueryLog) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, FieldFinishFunc) {
	return s.next().TraceField(ctx, label, typeName, fieldName, trivial, args)
}

// TraceValidation delegates unchanged.
func (s SlowQueryLog) TraceValidation(ctx context.Context) ValidationFinishFunc {
	return s.next().TraceValidation(ctx)
}
