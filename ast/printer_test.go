package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lirsacc/graphql/ast"
)

func TestPrintField(t *testing.T) {
	f := &ast.Field{
		Alias: ast.Ident{Name: "hero"},
		Name:  ast.Ident{Name: "character"},
		Arguments: ast.ArgumentList{
			{Name: ast.Ident{Name: "id"}, Value: &ast.IntValue{Value: "1000"}},
		},
	}
	out := ast.Print(f)
	assert.Equal(t, `hero: character(id: 1000)`, out)
}

func TestPrintFieldNoAliasWhenSameAsName(t *testing.T) {
	f := &ast.Field{Alias: ast.Ident{Name: "name"}, Name: ast.Ident{Name: "name"}}
	assert.Equal(t, "name", ast.Print(f))
}

func TestPrintOperationShorthand(t *testing.T) {
	op := &ast.OperationDefinition{
		Type: ast.Query,
		Selections: []ast.Selection{
			&ast.Field{Name: ast.Ident{Name: "name"}},
		},
	}
	out := ast.Print(op)
	assert.Equal(t, "{\n  name\n}", out)
}

func TestPrintOperationWithVariables(t *testing.T) {
	op := &ast.OperationDefinition{
		Type: ast.Query,
		Name: ast.Ident{Name: "Hero"},
		Vars: ast.VariableDefinitionList{
			{
				Name: ast.Ident{Name: "episode"},
				Type: ast.NamedType{Name: ast.Ident{Name: "Episode"}},
			},
		},
		Selections: []ast.Selection{
			&ast.Field{
				Name: ast.Ident{Name: "hero"},
				Arguments: ast.ArgumentList{
					{Name: ast.Ident{Name: "episode"}, Value: &ast.Variable{Name: "episode"}},
				},
			},
		},
	}
	out := ast.Print(op)
	assert.Equal(t, "query Hero($episode: Episode) {\n  hero(episode: $episode)\n}", out)
}

func TestPrintInlineFragment(t *testing.T) {
	frag := &ast.InlineFragment{
		On:    ast.NamedType{Name: ast.Ident{Name: "Droid"}},
		HasOn: true,
		Selections: []ast.Selection{
			&ast.Field{Name: ast.Ident{Name: "primaryFunction"}},
		},
	}
	out := ast.Print(frag)
	assert.Equal(t, "... on Droid {\n  primaryFunction\n}", out)
}

func TestPrintListAndObjectValues(t *testing.T) {
	f := &ast.Field{
		Name: ast.Ident{Name: "search"},
		Arguments: ast.ArgumentList{
			{Name: ast.Ident{Name: "tags"}, Value: &ast.ListValue{Values: []ast.Value{
				&ast.StringValue{Value: "a"},
				&ast.StringValue{Value: "b"},
			}}},
			{Name: ast.Ident{Name: "filter"}, Value: &ast.ObjectValue{Fields: []*ast.ObjectField{
				{Name: ast.Ident{Name: "active"}, Value: &ast.BooleanValue{Value: true}},
			}}},
		},
	}
	out := ast.Print(f)
	assert.Equal(t, `search(tags: ["a", "b"], filter: {active: true})`, out)
}
