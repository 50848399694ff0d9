package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/schema"
)

type upperDescriptionDirective struct {
	schema.BaseSchemaDirective
	calls []string
}

func (d *upperDescriptionDirective) OnField(args map[string]interface{}, _ schema.NamedType, f *schema.Field) (*schema.Field, error) {
	d.calls = append(d.calls, f.Name)
	cp := *f
	cp.Desc = "UPPERED"
	return &cp, nil
}

type removeFieldDirective struct {
	schema.BaseSchemaDirective
}

func (removeFieldDirective) OnField(_ map[string]interface{}, _ schema.NamedType, _ *schema.Field) (*schema.Field, error) {
	return nil, nil
}

type removeObjectDirective struct {
	schema.BaseSchemaDirective
}

func (removeObjectDirective) OnObject(_ map[string]interface{}, _ *schema.Object) (*schema.Object, error) {
	return nil, nil
}

func TestApplySchemaDirectiveTransformsField(t *testing.T) {
	doc, perr := parser.Parse(`
		directive @upper on FIELD_DEFINITION
		type Query { hello: String @upper }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)

	impl := &upperDescriptionDirective{}
	s, err := schema.Build(doc, schema.SchemaDirectives(map[string]schema.SchemaDirective{"upper": impl}))
	require.NoError(t, err)

	hello := s.Query.Fields.Get("hello")
	require.NotNil(t, hello)
	assert.Equal(t, "UPPERED", hello.Desc)
	assert.Equal(t, []string{"hello"}, impl.calls)
}

func TestApplySchemaDirectiveRemovesField(t *testing.T) {
	doc, perr := parser.Parse(`
		directive @drop on FIELD_DEFINITION
		type Query { keep: String gone: String @drop }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)

	s, err := schema.Build(doc, schema.SchemaDirectives(map[string]schema.SchemaDirective{"drop": removeFieldDirective{}}))
	require.NoError(t, err)

	assert.NotNil(t, s.Query.Fields.Get("keep"))
	assert.Nil(t, s.Query.Fields.Get("gone"))
}

func TestApplySchemaDirectiveRemovesObjectAndPrunesReferences(t *testing.T) {
	doc, perr := parser.Parse(`
		directive @drop on OBJECT
		type Query { widget: Widget other: String }
		type Widget @drop { id: ID! }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)

	s, err := schema.Build(doc, schema.SchemaDirectives(map[string]schema.SchemaDirective{"drop": removeObjectDirective{}}))
	require.NoError(t, err)

	assert.Nil(t, s.Resolve("Widget"))
	assert.Nil(t, s.Query.Fields.Get("widget"))
	assert.NotNil(t, s.Query.Fields.Get("other"))
}
