package trace_test

import (
	"bytes"
	"context"
	stdlog "log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/trace"
)

func TestNoOpTracerNeverPanicsAndReturnsUsableContext(t *testing.T) {
	ctx := context.Background()

	qctx, finishQuery := trace.NoOp.TraceQuery(ctx, "{ hello }", "", nil)
	assert.Equal(t, ctx, qctx)
	assert.NotPanics(t, func() { finishQuery(nil) })

	fctx, finishField := trace.NoOp.TraceField(ctx, "GraphQL field", "Query", "hello", true, nil)
	assert.Equal(t, ctx, fctx)
	assert.NotPanics(t, func() { finishField(errors.Errorf("boom")) })

	finishValidation := trace.NoOp.TraceValidation(ctx)
	assert.NotPanics(t, func() { finishValidation(nil) })
}

func TestSlowQueryLogLogsWhenThresholdReached(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.SlowQueryLog{
		Threshold: time.Millisecond,
		Logger:    stdlog.New(&buf, "", 0),
	}

	ctx, finish := tr.TraceQuery(context.Background(), "{ hello }", "GetHello", map[string]interface{}{"id": "1"})
	time.Sleep(2 * time.Millisecond)
	finish(nil)

	_ = ctx
	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), `operation="GetHello"`)
	assert.Contains(t, buf.String(), "{ hello }")
	assert.Contains(t, buf.String(), `"id":"1"`)
}

func TestSlowQueryLogSilentUnderThreshold(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.SlowQueryLog{
		Threshold: time.Hour,
		Logger:    stdlog.New(&buf, "", 0),
	}

	_, finish := tr.TraceQuery(context.Background(), "{ hello }", "", nil)
	finish(nil)

	assert.Empty(t, buf.String())
}

func TestSlowQueryLogDelegatesToNextTracer(t *testing.T) {
	inner := &countingTracer{}
	tr := trace.SlowQueryLog{Threshold: time.Hour, Next: inner}

	ctx := context.Background()
	_, finishQuery := tr.TraceQuery(ctx, "{ hello }", "", nil)
	finishQuery(nil)
	_, finishField := tr.TraceField(ctx, "GraphQL field", "Query", "hello", true, nil)
	finishField(nil)
	tr.TraceValidation(ctx)(nil)

	assert.Equal(t, 1, inner.queries)
	assert.Equal(t, 1, inner.fields)
	assert.Equal(t, 1, inner.validations)
}

func TestSlowQueryLogFormatOverridesRedactLoggedText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.SlowQueryLog{
		Threshold:       time.Millisecond,
		Logger:          stdlog.New(&buf, "", 0),
		FormatDocument:  func(string) string { return "<REDACTED>" },
		FormatVariables: func(map[string]interface{}) string { return "<REDACTED>" },
	}

	_, finish := tr.TraceQuery(context.Background(), "{ secret }", "", map[string]interface{}{"token": "x"})
	time.Sleep(2 * time.Millisecond)
	finish(nil)

	assert.Contains(t, buf.String(), "<REDACTED>")
	assert.NotContains(t, buf.String(), "secret")
	assert.NotContains(t, buf.String(), "token")
}

type countingTracer struct {
	queries, fields, validations int
}

func (c *countingTracer) TraceQuery(ctx context.Context, _, _ string, _ map[string]interface{}) (context.Context, trace.QueryFinishFunc) {
	c.queries++
	return ctx, func([]*errors.QueryError) {}
}

func (c *countingTracer) TraceField(ctx context.Context, _, _, _ string, _ bool, _ map[string]interface{}) (context.Context, trace.FieldFinishFunc) {
	c.fields++
	return ctx, func(*errors.QueryError) {}
}

func (c *countingTracer) TraceValidation(ctx context.Context) trace.ValidationFinishFunc {
	c.validations++
	return func([]*errors.QueryError) {}
}
