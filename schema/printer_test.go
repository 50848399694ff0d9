package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/schema"
)

func TestPrintSchemaRoundTrips(t *testing.T) {
	src := `
		type Query {
			hero(id: ID!): Character
		}

		interface Character {
			id: ID!
			name: String!
		}

		type Human implements Character {
			id: ID!
			name: String!
			homePlanet: String
		}

		enum Episode {
			NEWHOPE
			EMPIRE
			JEDI
		}

		union SearchResult = Human
	`
	doc, perr := parser.Parse(src, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s, err := schema.Build(doc)
	require.NoError(t, err)

	printed := schema.PrintSchema(s)
	assert.Contains(t, printed, "type Human implements Character")
	assert.Contains(t, printed, "union SearchResult = Human")
	assert.Contains(t, printed, "enum Episode")

	doc2, perr := parser.Parse(printed, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s2, err := schema.Build(doc2)
	require.NoError(t, err)

	assert.Equal(t, s.Query.Fields.Names(), s2.Query.Fields.Names())
	human2 := s2.Resolve("Human").(*schema.Object)
	assert.True(t, human2.Implements("Character"))
}

func TestPrintSchemaExplicitSchemaBlock(t *testing.T) {
	src := `
		schema { query: RootQuery }
		type RootQuery { hello: String }
	`
	doc, perr := parser.Parse(src, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s, err := schema.Build(doc)
	require.NoError(t, err)

	printed := schema.PrintSchema(s)
	assert.Contains(t, printed, "schema {")
	assert.Contains(t, printed, "query: RootQuery")
}
