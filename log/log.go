// Package log defines the panic-logging seam the executor calls into when
// a resolver panics, so a host application can route it into its own
// logging stack instead of stdlib's `log` package.
package log

import (
	"context"
	stdlog "log"
	"runtime"

	"github.com/segmentio/ksuid"
)

// Logger is consulted whenever the executor recovers a panic from a
// resolver call.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(ctx context.Context, value interface{})

func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) { f(ctx, value) }

// DefaultLogger prints the panic value, a stack trace and a per-panic
// ksuid, so multiple panics in the same log stream can be told apart. The
// id appears only in the log line; the surfaced QueryError does not
// carry it.
type DefaultLogger struct{}

func (DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	stdlog.Printf("graphql: panic occurred [%s]: %v\n%s\ncontext: %v", ksuid.New(), value, buf, ctx)
}
