package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lirsacc/graphql/log"
)

func TestLoggerFuncAdaptsPlainFunction(t *testing.T) {
	var got interface{}
	var l log.Logger = log.LoggerFunc(func(ctx context.Context, value interface{}) {
		got = value
	})
	l.LogPanic(context.Background(), "boom")
	assert.Equal(t, "boom", got)
}

func TestDefaultLoggerLogPanicDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		log.DefaultLogger{}.LogPanic(context.Background(), "recovered value")
	})
}
