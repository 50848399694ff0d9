package coerce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/coerce"
	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/schema"
)

func mustBuildSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	doc, perr := parser.Parse(sdl, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s, err := schema.Build(doc)
	require.NoError(t, err)
	return s
}

func firstField(t *testing.T, op *ast.OperationDefinition) *ast.Field {
	t.Helper()
	require.NotEmpty(t, op.Selections)
	f, ok := op.Selections[0].(*ast.Field)
	require.True(t, ok)
	return f
}

func TestVariableValuesAppliesDefaultsAndRejectsMissingNonNull(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query {
			search(term: String!, limit: Int = 10): String
		}
	`)
	doc, perr := parser.Parse(`query Search($term: String!, $limit: Int = 10) { search(term: $term, limit: $limit) }`)
	require.Nil(t, perr)
	op := doc.Operations.Get("Search")
	require.NotNil(t, op)

	vars, err := coerce.VariableValues(s, op.Vars, map[string]interface{}{"term": "r2d2"})
	require.NoError(t, err)
	assert.Equal(t, "r2d2", vars["term"])
	assert.EqualValues(t, 10, vars["limit"])

	_, err = coerce.VariableValues(s, op.Vars, map[string]interface{}{})
	require.Error(t, err)
}

func TestVariableValuesAutoWrapsSingleValueIntoList(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { search(terms: [String!]): String }
	`)
	doc, perr := parser.Parse(`query Search($terms: [String!]) { search(terms: $terms) }`)
	require.Nil(t, perr)
	op := doc.Operations.Get("Search")

	vars, err := coerce.VariableValues(s, op.Vars, map[string]interface{}{"terms": "solo"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"solo"}, vars["terms"])
}

func TestVariableValuesRejectsUnknownInputObjectField(t *testing.T) {
	s := mustBuildSchema(t, `
		input Filter { name: String }
		type Query { search(filter: Filter): String }
	`)
	doc, perr := parser.Parse(`query Search($filter: Filter) { search(filter: $filter) }`)
	require.Nil(t, perr)
	op := doc.Operations.Get("Search")

	_, err := coerce.VariableValues(s, op.Vars, map[string]interface{}{
		"filter": map[string]interface{}{"nope": true},
	})
	require.Error(t, err)
}

func TestArgumentValuesResolvesVariablesAndDefaults(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { greet(name: String = "world", loud: Boolean!): String }
	`)
	doc, perr := parser.Parse(`query Greet($loud: Boolean!) { greet(loud: $loud) }`)
	require.Nil(t, perr)
	op := doc.Operations.Get("Greet")

	fieldDef := s.Query.Fields.Get("greet")
	require.NotNil(t, fieldDef)

	field := firstField(t, op)
	args, err := coerce.ArgumentValues(s, fieldDef.Args, field.Arguments, map[string]interface{}{"loud": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "world", args["name"])
	assert.Equal(t, true, args["loud"])
}

func TestArgumentValuesRejectsMissingRequiredArgument(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { greet(name: String!): String }
	`)
	doc, perr := parser.Parse(`{ greet }`)
	require.Nil(t, perr)
	op := doc.Operations[0]

	fieldDef := s.Query.Fields.Get("greet")
	field := firstField(t, op)

	_, err := coerce.ArgumentValues(s, fieldDef.Args, field.Arguments, nil, nil)
	require.Error(t, err)
}

func TestLiteralCoercesEnumValue(t *testing.T) {
	s := mustBuildSchema(t, `
		enum Episode { NEWHOPE EMPIRE JEDI }
		type Query { hero(episode: Episode!): String }
	`)
	doc, perr := parser.Parse(`{ hero(episode: EMPIRE) }`)
	require.Nil(t, perr)
	field := firstField(t, doc.Operations[0])

	value, _ := field.Arguments.Get("episode")
	episodeType := s.Query.Fields.Get("hero").Args.Get("episode").Type
	coerced, err := coerce.Literal(s, value, episodeType, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "EMPIRE", coerced)
}
