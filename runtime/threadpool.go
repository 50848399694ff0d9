package runtime

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// threadPool backs Deferred with a future on a bounded pool of goroutines:
// resolvers may run in parallel with one another, so per spec §4.8 the
// executor must never assume resolver-returned mutable collections are
// safe to touch from more than one goroutine. Bounded via
// golang.org/x/sync/semaphore, joined via golang.org/x/sync/errgroup — the
// pack's recurring choice for exactly this bounded-fan-out-and-join shape.
type threadPool struct {
	sem *semaphore.Weighted
}

// NewThreadPool builds a Runtime whose Submit calls run on at most
// maxConcurrency goroutines at once.
func NewThreadPool(maxConcurrency int64) Runtime {
	return &threadPool{sem: semaphore.NewWeighted(maxConcurrency)}
}

type futureDeferred struct {
	done  chan struct{}
	value interface{}
	err   error
}

func (f *futureDeferred) Await(ctx context.Context) (interface{}, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *threadPool) WrapValue(v interface{}) Deferred { return Resolved(v, nil) }

func (t *threadPool) Submit(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) Deferred {
	d := &futureDeferred{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		if err := t.sem.Acquire(ctx, 1); err != nil {
			d.err = err
			return
		}
		defer t.sem.Release(1)
		d.value, d.err = fn(ctx)
	}()
	return d
}

// Gather joins ds without going through Submit: a gather that consumed a
// worker slot while awaiting its children would deadlock a small pool once
// the children need slots of their own to make progress, so the joining
// goroutine here never touches the semaphore — only the children (already
// running via their own Submit) do.
func (t *threadPool) Gather(ctx context.Context, ds []Deferred) Deferred {
	d := &futureDeferred{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		out := make([]interface{}, len(ds))
		g, gctx := errgroup.WithContext(ctx)
		for i, dd := range ds {
			i, dd := i, dd
			g.Go(func() error {
				v, err := dd.Await(gctx)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			d.err = err
			return
		}
		d.value = out
	}()
	return d
}

func (t *threadPool) Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred {
	return t.Submit(context.Background(), func(ctx context.Context) (interface{}, error) {
		v, err := d.Await(ctx)
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}

func (t *threadPool) MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred {
	return t.Submit(context.Background(), func(ctx context.Context) (interface{}, error) {
		v, err := d.Await(ctx)
		if err == nil {
			return v, nil
		}
		return fn(err)
	})
}
