package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/schema"
)

func TestValidateRejectsInterfaceFieldMismatch(t *testing.T) {
	doc, perr := parser.Parse(`
		type Query { character: Character }
		interface Character { id: ID! }
		type Human implements Character { name: String! }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)
	_, err := schema.Build(doc)
	assert.Error(t, err)
}

func TestValidateRejectsNonNullableInputCycle(t *testing.T) {
	doc, perr := parser.Parse(`
		type Query { f(arg: A): String }
		input A { b: B! }
		input B { a: A! }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)
	_, err := schema.Build(doc)
	assert.Error(t, err)
}

func TestValidateAllowsNullableInputCycle(t *testing.T) {
	doc, perr := parser.Parse(`
		type Query { f(arg: A): String }
		input A { b: B }
		input B { a: A }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)
	_, err := schema.Build(doc)
	require.NoError(t, err)
}

func TestValidateRejectsOutputTypeInInputPosition(t *testing.T) {
	doc, perr := parser.Parse(`
		type Query { f(arg: Query): String }
	`, parser.AllowTypeSystem())
	require.Nil(t, perr)
	_, err := schema.Build(doc)
	assert.Error(t, err)
}
