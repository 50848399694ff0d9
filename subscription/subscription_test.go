package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/internal/exec"
	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/log"
	"github.com/lirsacc/graphql/resolvers"
	"github.com/lirsacc/graphql/runtime"
	"github.com/lirsacc/graphql/schema"
	"github.com/lirsacc/graphql/subscription"
	"github.com/lirsacc/graphql/trace"
)

func buildSubscriptionRequest(t *testing.T, source interface{}) *exec.Request {
	t.Helper()
	sdoc, perr := parser.Parse(`
		type Query { hello: String }
		type Subscription { counter: Int! }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)

	s, err := schema.Build(sdoc, schema.Resolvers(map[string]interface{}{
		"Subscription.counter": resolvers.ResolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return source, nil
		}),
	}))
	require.NoError(t, err)

	qdoc, perr := parser.Parse(`subscription { counter }`)
	require.Nil(t, perr)

	return &exec.Request{
		Schema:    s,
		Fragments: map[string]*ast.FragmentDefinition{},
		Operation: qdoc.Operations[0],
		Runtime:   runtime.Blocking,
		Tracer:    trace.NoOp,
		Logger:    log.DefaultLogger{},
	}
}

func TestSubscribeStreamsOneEventPerSourceValue(t *testing.T) {
	source := make(chan interface{}, 3)
	source <- 1
	source <- 2
	source <- 3
	close(source)

	req := buildSubscriptionRequest(t, (<-chan interface{})(source))

	events, err := subscription.Subscribe(context.Background(), req, nil)
	require.NoError(t, err)

	var got []interface{}
	for ev := range events {
		require.Empty(t, ev.Errors)
		got = append(got, ev.Data.(map[string]interface{})["counter"])
		require.NotEmpty(t, ev.SubscriptionID)
	}
	assert.Equal(t, []interface{}{int32(1), int32(2), int32(3)}, got)
}

func TestSubscribeRejectsNonChannelSource(t *testing.T) {
	req := buildSubscriptionRequest(t, "not-a-channel")

	_, err := subscription.Subscribe(context.Background(), req, nil)
	require.Error(t, err)
}

func TestSubscribeStopsOnContextCancellation(t *testing.T) {
	source := make(chan interface{})
	req := buildSubscriptionRequest(t, (<-chan interface{})(source))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := subscription.Subscribe(ctx, req, nil)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected events channel to close after cancellation")
	}
}
