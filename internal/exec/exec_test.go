package exec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/internal/exec"
	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/log"
	"github.com/lirsacc/graphql/resolvers"
	"github.com/lirsacc/graphql/runtime"
	"github.com/lirsacc/graphql/schema"
	"github.com/lirsacc/graphql/trace"
)

func buildRequest(t *testing.T, sdl, query string, resolverMap map[string]interface{}, variables map[string]interface{}) *exec.Request {
	t.Helper()
	sdoc, perr := parser.Parse(sdl, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s, err := schema.Build(sdoc, schema.Resolvers(resolverMap))
	require.NoError(t, err)

	qdoc, perr := parser.Parse(query)
	require.Nil(t, perr)
	require.Len(t, qdoc.Operations, 1)
	op := qdoc.Operations[0]

	fragments := map[string]*ast.FragmentDefinition{}
	for _, f := range qdoc.Fragments {
		fragments[f.Name.Name] = f
	}

	return &exec.Request{
		Schema:    s,
		Fragments: fragments,
		Variables: variables,
		Operation: op,
		Runtime:   runtime.Blocking,
		Tracer:    trace.NoOp,
		Logger:    log.DefaultLogger{},
	}
}

func resolverFunc(fn func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error)) resolvers.ResolverFunc {
	return resolvers.ResolverFunc(fn)
}

func TestExecuteResolvesScalarFields(t *testing.T) {
	req := buildRequest(t, `
		type Query { hello: String! }
	`, `{ hello }`, map[string]interface{}{
		"Query.hello": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return "world", nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{"hello": "world"}, data)
}

// TestNonNullViolationStopsAtNearestNullableAncestor exercises a variant of
// spec.md §4.7's headline scenario with a nullable root field:
// `type Query { a: A } type A { b: String! }` with a's resolver returning
// an empty object, so b resolves to null. b
// being non-null forces a to null; a is itself nullable at the root
// selection set, so only one error is recorded and the query succeeds with
// data: {"a": null}.
func TestNonNullViolationStopsAtNearestNullableAncestor(t *testing.T) {
	req := buildRequest(t, `
		type Query { a: A }
		type A { b: String! }
	`, `{ a { b } }`, map[string]interface{}{
		"Query.a": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{}, nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, []interface{}{"a", "b"}, errs[0].Path)
	assert.Equal(t, map[string]interface{}{"a": nil}, data)
}

// TestNonNullViolationCollapsesWholeResponseWhenRootIsNonNull mirrors the
// same failure one level further: when the outer field is itself
// non-null, the null keeps propagating until it collapses the entire
// response to nil.
func TestNonNullViolationCollapsesWholeResponseWhenRootIsNonNull(t *testing.T) {
	req := buildRequest(t, `
		type Query { a: A! }
		type A { b: String! }
	`, `{ a { b } }`, map[string]interface{}{
		"Query.a": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{}, nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, []interface{}{"a", "b"}, errs[0].Path)
	assert.Nil(t, data)
}

// TestNonNullListElementNullsWholeListButNotFurther checks the
// list-element variant: one failing element of a [A!] list nulls the
// whole list, but the list field itself (nullable) absorbs it.
func TestNonNullListElementNullsWholeListButNotFurther(t *testing.T) {
	req := buildRequest(t, `
		type Query { as: [A!] }
		type A { b: String! }
	`, `{ as { b } }`, map[string]interface{}{
		"Query.as": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return []interface{}{
				map[string]interface{}{"b": "ok"},
				map[string]interface{}{},
			}, nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, []interface{}{"as", 1, "b"}, errs[0].Path)
	assert.Equal(t, map[string]interface{}{"as": nil}, data)
}

func TestExecuteRecoversResolverPanicIntoResolverError(t *testing.T) {
	req := buildRequest(t, `
		type Query { boom: String }
	`, `{ boom }`, map[string]interface{}{
		"Query.boom": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			panic("kaboom")
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "kaboom")
	assert.Equal(t, map[string]interface{}{"boom": nil}, data)
}

func TestExecuteAppliesSkipAndIncludeDirectives(t *testing.T) {
	req := buildRequest(t, `
		type Query { a: String b: String }
	`, `query($skipA: Boolean!) { a @skip(if: $skipA) b @include(if: false) }`,
		map[string]interface{}{
			"Query.a": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
				return "a-value", nil
			}),
			"Query.b": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
				return "b-value", nil
			}),
		}, map[string]interface{}{"skipA": true})

	data, errs := req.Execute(context.Background(), nil)
	require.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{}, data)
}

func TestExecuteMergesFieldsAcrossFragmentSpreads(t *testing.T) {
	req := buildRequest(t, `
		type Query { droid: Droid }
		type Droid { id: ID! name: String! }
	`, `
		{
			droid { id ...Rest }
		}
		fragment Rest on Droid { name }
	`, map[string]interface{}{
		"Query.droid": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "2001", "name": "C-3PO"}, nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{
		"droid": map[string]interface{}{"id": "2001", "name": "C-3PO"},
	}, data)
}

func TestExecuteResolvesInterfaceViaExplicitTypeResolver(t *testing.T) {
	sdoc, perr := parser.Parse(`
		interface Character { name: String! }
		type Human implements Character { name: String! homePlanet: String }
		type Query { hero: Character }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)

	var s *schema.Schema
	s, err := schema.Build(sdoc,
		schema.Resolvers(map[string]interface{}{
			"Query.hero": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
				return map[string]interface{}{"name": "Leia", "homePlanet": "Alderaan"}, nil
			}),
		}),
		schema.TypeResolvers(map[string]schema.TypeResolver{
			"Character": func(interface{}) *schema.Object { return s.Resolve("Human").(*schema.Object) },
		}),
	)
	require.NoError(t, err)

	qdoc, perr := parser.Parse(`{ hero { name ... on Human { homePlanet } } }`)
	require.Nil(t, perr)

	req := &exec.Request{
		Schema:    s,
		Fragments: map[string]*ast.FragmentDefinition{},
		Operation: qdoc.Operations[0],
		Runtime:   runtime.Blocking,
		Tracer:    trace.NoOp,
		Logger:    log.DefaultLogger{},
	}
	data, errs := req.Execute(context.Background(), nil)
	require.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{
		"hero": map[string]interface{}{"name": "Leia", "homePlanet": "Alderaan"},
	}, data)
}

func TestExecuteTypenameMetaField(t *testing.T) {
	req := buildRequest(t, `
		type Query { droid: Droid }
		type Droid { id: ID! }
	`, `{ droid { __typename id } }`, map[string]interface{}{
		"Query.droid": resolverFunc(func(ctx context.Context, root interface{}, info *resolvers.Info, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "2001"}, nil
		}),
	}, nil)

	data, errs := req.Execute(context.Background(), nil)
	require.Empty(t, errs)
	assert.Equal(t, map[string]interface{}{
		"droid": map[string]interface{}{"__typename": "Droid", "id": "2001"},
	}, data)
}
