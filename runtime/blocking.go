package runtime

import "context"

// Blocking is the simplest reference Runtime of spec §4.8: Deferred is the
// value itself, Submit runs fn eagerly and synchronously, Gather is a
// plain loop. No goroutine is ever spawned. Suited to simple embedding
// where the caller doesn't need concurrent field resolution.
type blocking struct{}

// Blocking is the shared Blocking runtime instance — it carries no state,
// so a single value serves every caller.
var Blocking Runtime = blocking{}

func (blocking) WrapValue(v interface{}) Deferred { return Resolved(v, nil) }

func (blocking) Submit(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) Deferred {
	v, err := fn(ctx)
	return Resolved(v, err)
}

func (blocking) Gather(ctx context.Context, ds []Deferred) Deferred {
	out := make([]interface{}, len(ds))
	for i, d := range ds {
		v, err := d.Await(ctx)
		if err != nil {
			return Resolved(nil, err)
		}
		out[i] = v
	}
	return Resolved(out, nil)
}

func (blocking) Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred {
	v, err := d.Await(context.Background())
	if err != nil {
		return Resolved(nil, err)
	}
	out, err := fn(v)
	return Resolved(out, err)
}

func (blocking) MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred {
	v, err := d.Await(context.Background())
	if err == nil {
		return Resolved(v, nil)
	}
	out, err := fn(err)
	return Resolved(out, err)
}
