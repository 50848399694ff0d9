package graphql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql"
	"github.com/lirsacc/graphql/resolvers"
)

func TestBuildSchemaParsesValidatesAndAttachesResolvers(t *testing.T) {
	s, err := graphql.BuildSchema(`
		type Query { hello(name: String = "world"): String! }
	`, graphql.Resolvers(map[string]interface{}{
		"Query.hello": resolvers.ResolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return "hello, " + args["name"].(string), nil
		}),
	}))
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Contains(t, graphql.PrintSchema(s), "type Query")
}

func TestBuildSchemaRejectsInvalidSDL(t *testing.T) {
	_, err := graphql.BuildSchema(`type Query`)
	assert.Error(t, err)
}

func TestExecuteRunsQueryEndToEnd(t *testing.T) {
	s, err := graphql.BuildSchema(`
		type Query { hello(name: String = "world"): String! }
	`, graphql.Resolvers(map[string]interface{}{
		"Query.hello": resolvers.ResolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return "hello, " + args["name"].(string), nil
		}),
	}))
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), &graphql.Request{
		Schema: s,
		Query:  `{ hello }`,
	})
	require.Empty(t, result.Errors)
	assert.Equal(t, map[string]interface{}{"hello": "hello, world"}, result.Data)
}

func TestExecuteReportsValidationErrorsWithoutRunning(t *testing.T) {
	s, err := graphql.BuildSchema(`type Query { hello: String }`)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), &graphql.Request{
		Schema: s,
		Query:  `{ doesNotExist }`,
	})
	require.NotEmpty(t, result.Errors)
	assert.Nil(t, result.Data)
}

func TestExecuteRejectsSubscriptionOperation(t *testing.T) {
	s, err := graphql.BuildSchema(`
		type Query { hello: String }
		type Subscription { counter: Int! }
	`)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), &graphql.Request{
		Schema: s,
		Query:  `subscription { counter }`,
	})
	require.NotEmpty(t, result.Errors)
}

func TestSubscribeStreamsResultsAndExposesFieldContext(t *testing.T) {
	var sawFieldName string
	s, err := graphql.BuildSchema(`
		type Query { hello: String }
		type Subscription { counter: Int! }
	`, graphql.Resolvers(map[string]interface{}{
		"Subscription.counter": resolvers.ResolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			if fc, ok := graphql.FieldContextFromContext(ctx); ok {
				sawFieldName = fc.Field.Name
			}
			source := make(chan interface{}, 1)
			source <- 41
			close(source)
			return (<-chan interface{})(source), nil
		}),
	}))
	require.NoError(t, err)

	events, err := graphql.Subscribe(context.Background(), &graphql.Request{
		Schema: s,
		Query:  `subscription { counter }`,
	})
	require.NoError(t, err)

	result, ok := <-events
	require.True(t, ok)
	require.Empty(t, result.Errors)
	assert.Equal(t, map[string]interface{}{"counter": int32(41)}, result.Data)
	assert.Equal(t, "counter", sawFieldName)

	_, ok = <-events
	assert.False(t, ok)
}

func TestParseAndPrintASTRoundTripsQueryStructure(t *testing.T) {
	doc, err := graphql.Parse(`{ hello }`)
	require.NoError(t, err)
	printed := graphql.PrintAST(doc)
	assert.Contains(t, printed, "hello")
	reparsed, err := graphql.Parse(printed)
	require.NoError(t, err)
	assert.Equal(t, printed, graphql.PrintAST(reparsed))
}
