// Package runtime implements the pluggable concurrency capability the
// executor is parametric over (spec §4.8): three reference Runtimes —
// Blocking, Cooperative and ThreadPool — sharing a common Deferred/Runtime
// contract, so the executor never hard-codes goroutines or a specific
// async flavor.
package runtime

import "context"

// Deferred is a value or error that may not be available yet. Await blocks
// (cooperatively yielding, or truly blocking, depending on the Runtime
// that produced it) until the value is ready or ctx is cancelled.
type Deferred interface {
	Await(ctx context.Context) (interface{}, error)
}

// Runtime is the capability the executor consumes to run field resolution
// with a pluggable scheduling policy, per spec §4.8.
type Runtime interface {
	// WrapValue lifts an already-available value into a resolved Deferred.
	WrapValue(v interface{}) Deferred
	// Submit schedules fn for execution — immediately, cooperatively, or
	// on a worker pool depending on the implementation — and returns a
	// Deferred for its result. ctx is forwarded to fn unchanged; it never
	// gets replaced by a Background context underneath the caller.
	Submit(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) Deferred
	// Gather waits for every Deferred in ds and returns their results in
	// the same order, or the first error encountered.
	Gather(ctx context.Context, ds []Deferred) Deferred
	// Map chains fn onto d's eventual value.
	Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred
	// MapErr chains fn onto d's eventual error, letting a Runtime recover
	// from (or transform) a failed Deferred.
	MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred
}

// resolved is a Deferred whose value is already known — WrapValue's return
// type for every reference Runtime; the Await path never blocks.
type resolved struct {
	value interface{}
	err   error
}

func (r resolved) Await(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.value, r.err
}

// Resolved builds a Deferred already holding (value, err), for Runtime
// implementations and tests that need one directly.
func Resolved(value interface{}, err error) Deferred {
	return resolved{value: value, err: err}
}
