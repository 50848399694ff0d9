// Package subscription implements spec.md §4.7/§6's subscription
// initiation contract: resolve a subscription operation's single root
// field to a source event stream, then drive one execution of its
// selection set per emitted event. No transport (WebSocket/SSE) is
// provided — that is explicitly out of scope per SPEC_FULL.md §10, left to
// a caller exactly as the teacher leaves it to consumers like
// dgraph-io-dgraph rather than shipping one itself.
package subscription

import (
	"context"
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/internal/exec"
)

// Event is one message a subscription emits: the completed execution
// result for one source event (Data/Errors, mirroring a query Result).
// Data is nil when a non-null violation collapses that event's result.
type Event struct {
	SubscriptionID string
	Data           interface{}
	Errors         []*errors.QueryError
}

// Subscribe resolves req's single top-level subscription field to a source
// stream and returns a channel emitting one Event per source event, closed
// when the source stream closes or ctx is cancelled. req.Operation.Type
// must be ast.Subscription.
//
// The resolver registered for the root subscription field must return a
// `<-chan interface{}` — the source stream of raw event payloads; anything
// else is a configuration error, returned immediately rather than
// discovered mid-stream.
func Subscribe(ctx context.Context, req *exec.Request, root interface{}) (<-chan *Event, error) {
	fieldDef, selection, source, err := req.SubscriptionField(ctx)
	if err != nil {
		return nil, err
	}

	events, ok := source.(<-chan interface{})
	if !ok {
		if bidi, ok := source.(chan interface{}); ok {
			events = bidi
		} else {
			return nil, fmt.Errorf("subscription field %q must resolve to a <-chan interface{} source stream, got %T", selection.ResponseKey(), source)
		}
	}

	id := ksuid.New().String()
	out := make(chan *Event)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case eventValue, ok := <-events:
				if !ok {
					return
				}
				data, errs := req.ExecuteSubscriptionEvent(ctx, fieldDef, selection, eventValue)
				ev := &Event{SubscriptionID: id, Data: data, Errors: errs}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
