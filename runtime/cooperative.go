package runtime

import "context"

// coopScheduler is the single FIFO task queue a Cooperative runtime drains
// from. It is owned by exactly one Cooperative instance — sharing one
// across executions would interleave unrelated operations, which spec
// §4.8 doesn't ask for.
type coopScheduler struct {
	queue []func()
}

func (s *coopScheduler) run(ctx context.Context, until func() bool) error {
	for !until() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(s.queue) == 0 {
			return nil
		}
		task := s.queue[0]
		s.queue = s.queue[1:]
		task()
	}
	return nil
}

// cooperative is a single-threaded scheduler: Submit enqueues fn rather
// than running it, and only a Deferred's own Await (or a Gather that
// contains it) drains the queue — spec §4.8's "yield points occur at
// submit and gather" requirement falls out naturally, since nothing runs
// until something asks for a result.
type cooperative struct {
	sched *coopScheduler
}

// NewCooperative builds a fresh single-threaded Cooperative runtime. Not a
// package singleton like Blocking: it carries a mutable task queue scoped
// to one execution.
func NewCooperative() Runtime {
	return &cooperative{sched: &coopScheduler{}}
}

func (c *cooperative) WrapValue(v interface{}) Deferred { return Resolved(v, nil) }

func (c *cooperative) Submit(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) Deferred {
	d := &coopDeferred{sched: c.sched}
	c.sched.queue = append(c.sched.queue, func() {
		d.value, d.err = fn(ctx)
		d.done = true
	})
	return d
}

func (c *cooperative) Gather(ctx context.Context, ds []Deferred) Deferred {
	return c.Submit(ctx, func(ctx context.Context) (interface{}, error) {
		out := make([]interface{}, len(ds))
		for i, d := range ds {
			v, err := d.Await(ctx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
}

func (c *cooperative) Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred {
	return c.Submit(context.Background(), func(ctx context.Context) (interface{}, error) {
		v, err := d.Await(ctx)
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}

func (c *cooperative) MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred {
	return c.Submit(context.Background(), func(ctx context.Context) (interface{}, error) {
		v, err := d.Await(ctx)
		if err == nil {
			return v, nil
		}
		return fn(err)
	})
}

// coopDeferred is the suspendable handle Submit returns: Await pumps the
// scheduler's shared queue — running whatever else was enqueued, in
// order — until this task's own turn comes up.
type coopDeferred struct {
	sched *coopScheduler
	done  bool
	value interface{}
	err   error
}

func (d *coopDeferred) Await(ctx context.Context) (interface{}, error) {
	if err := d.sched.run(ctx, func() bool { return d.done }); err != nil {
		return nil, err
	}
	return d.value, d.err
}
