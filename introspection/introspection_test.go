package introspection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/introspection"
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

func TestWrapSchemaExposesQueryAndTypes(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { droid(id: ID!): Droid }
		type Droid { id: ID! name: String! }
	`)
	wrapped := introspection.WrapSchema(s)

	require.NotNil(t, wrapped.QueryType())
	assert.Equal(t, "Query", *wrapped.QueryType().Name())
	assert.Nil(t, wrapped.MutationType())
	assert.Nil(t, wrapped.SubscriptionType())

	var names []string
	for _, t := range wrapped.Types() {
		names = append(names, *t.Name())
	}
	assert.Contains(t, names, "Droid")
	assert.Contains(t, names, "Query")
	assert.Contains(t, names, "String")
}

func TestWrapTypeDescribesObjectFieldsAndKind(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { droid(id: ID!): Droid }
		type Droid { id: ID! name: String! }
	`)
	droid := introspection.WrapType(s.Resolve("Droid").(*schema.Object))
	assert.Equal(t, "OBJECT", droid.Kind())
	assert.Equal(t, "Droid", *droid.Name())

	fields := droid.Fields(nil)
	require.Len(t, fields, 2)
	assert.Equal(t, "id", fields[0].Name())
	assert.Equal(t, "NON_NULL", fields[0].Type().Kind())
}

func TestWrapTypeListAndNonNullUnwrapViaOfType(t *testing.T) {
	s := mustBuildSchema(t, `
		type Query { droids: [Droid!]! }
		type Droid { id: ID! }
	`)
	field := s.Query.Fields.Get("droids")
	wrapped := introspection.WrapType(field.Type)
	assert.Equal(t, "NON_NULL", wrapped.Kind())
	list := wrapped.OfType()
	assert.Equal(t, "LIST", list.Kind())
	inner := list.OfType()
	assert.Equal(t, "NON_NULL", inner.Kind())
	assert.Equal(t, "Droid", *inner.OfType().Name())
}

func TestTypenameOfReturnsConcreteObjectName(t *testing.T) {
	s := mustBuildSchema(t, `type Query { hello: String }`)
	assert.Equal(t, "Query", introspection.TypenameOf(s.Query))
}

func TestMetaFieldsExposeIntrospectionEntryPoints(t *testing.T) {
	assert.Equal(t, "__schema", introspection.SchemaMetaField().Name)
	assert.Equal(t, "__type", introspection.TypeMetaField().Name)
	assert.Equal(t, "__typename", introspection.TypenameMetaField().Name)
	assert.NotNil(t, introspection.TypeMetaField().Args.Get("name"))
}
