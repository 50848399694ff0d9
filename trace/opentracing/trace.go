// Package opentracing adapts trace.Tracer to github.com/opentracing/opentracing-go,
// the teacher's direct tracing dependency.
package opentracing

import (
	"context"
	"fmt"

	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/trace"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
)

// Tracer implements trace.Tracer by starting/finishing real
// opentracing.Span values, following the shape of every span the executor
// and validator open.
type Tracer struct{}

var _ trace.Tracer = Tracer{}

func (Tracer) TraceQuery(ctx context.Context, queryString, operationName string, variables map[string]interface{}) (context.Context, trace.QueryFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL request")
	span.SetTag("graphql.query", queryString)
	if operationName != "" {
		span.SetTag("graphql.operationName", operationName)
	}
	if len(variables) != 0 {
		span.LogFields(otlog.Object("graphql.variables", variables))
	}
	return spanCtx, func(errs []*errors.QueryError) {
		annotateErrors(span, errs)
		span.Finish()
	}
}

func (Tracer) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, trace.FieldFinishFunc) {
	if trivial {
		return ctx, func(*errors.QueryError) {}
	}
	span, spanCtx := opentracing.StartSpanFromContext(ctx, label)
	span.SetTag("graphql.type", typeName)
	span.SetTag("graphql.field", fieldName)
	for name, value := range args {
		span.SetTag("graphql.args."+name, value)
	}
	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}

func (Tracer) TraceValidation(ctx context.Context) trace.ValidationFinishFunc {
	span, _ := opentracing.StartSpanFromContext(ctx, "Validate Query")
	return func(errs []*errors.QueryError) {
		annotateErrors(span, errs)
		span.Finish()
	}
}

func annotateErrors(span opentracing.Span, errs []*errors.QueryError) {
	if len(errs) == 0 {
		return
	}
	msg := errs[0].Error()
	if len(errs) > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", len(errs)-1)
	}
	ext.Error.Set(span, true)
	span.SetTag("graphql.error", msg)
}
