// Package trace defines the tracing seam the executor and validator call
// into around each query, field resolution and validation pass, and a
// no-op default implementation.
package trace

import (
	"context"

	"github.com/lirsacc/graphql/errors"
)

// QueryFinishFunc closes out a query-level span, given the aggregated
// errors of the finished execution.
type QueryFinishFunc func([]*errors.QueryError)

// FieldFinishFunc closes out a field-level span, given that field's error
// (nil on success).
type FieldFinishFunc func(*errors.QueryError)

// ValidationFinishFunc closes out a validation-pass span.
type ValidationFinishFunc func([]*errors.QueryError)

// Tracer instruments the pipeline's three long-running phases: a whole
// query execution, an individual field resolution, and a validation pass.
type Tracer interface {
	TraceQuery(ctx context.Context, queryString, operationName string, variables map[string]interface{}) (context.Context, QueryFinishFunc)
	TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, FieldFinishFunc)
	TraceValidation(ctx context.Context) ValidationFinishFunc
}

type noopTracer struct{}

// NoOp is the default Tracer: every span is a no-op, so a caller that
// doesn't configure tracing pays no overhead beyond the interface calls
// themselves.
var NoOp Tracer = noopTracer{}

func (noopTracer) TraceQuery(ctx context.Context, _ string, _ string, _ map[string]interface{}) (context.Context, QueryFinishFunc) {
	return ctx, func([]*errors.QueryError) {}
}

func (noopTracer) TraceField(ctx context.Context, _ string, _ string, _ string, _ bool, _ map[string]interface{}) (context.Context, FieldFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}

func (noopTracer) TraceValidation(ctx context.Context) ValidationFinishFunc {
	return func([]*errors.QueryError) {}
}
