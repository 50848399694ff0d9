package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lirsacc/graphql/ast"
)

func TestDocumentDeepCopyIsIndependent(t *testing.T) {
	doc := &ast.Document{
		Operations: ast.OperationList{
			{Type: ast.Query, Selections: []ast.Selection{
				&ast.Field{Name: ast.Ident{Name: "a"}},
			}},
		},
	}
	cp := doc.DeepCopy()
	cp.Operations[0].Selections[0].(*ast.Field).Name.Name = "b"
	assert.Equal(t, "a", doc.Operations[0].Selections[0].(*ast.Field).Name.Name)
	assert.Equal(t, "b", cp.Operations[0].Selections[0].(*ast.Field).Name.Name)
}

func TestDeepCopyValuePreservesStructure(t *testing.T) {
	v := &ast.ListValue{Values: []ast.Value{
		&ast.IntValue{Value: "1"},
		&ast.ObjectValue{Fields: []*ast.ObjectField{
			{Name: ast.Ident{Name: "x"}, Value: &ast.NullValue{}},
		}},
	}}
	cp := ast.DeepCopyValue(v).(*ast.ListValue)
	assert.Len(t, cp.Values, 2)
	obj := cp.Values[1].(*ast.ObjectValue)
	assert.Equal(t, "x", obj.Fields[0].Name.Name)
	// mutating the copy must not affect the original
	obj.Fields[0].Name.Name = "y"
	orig := v.Values[1].(*ast.ObjectValue)
	assert.Equal(t, "x", orig.Fields[0].Name.Name)
}

func TestFieldResponseKey(t *testing.T) {
	f := &ast.Field{Name: ast.Ident{Name: "hero"}}
	assert.Equal(t, "hero", f.ResponseKey())

	f.Alias = ast.Ident{Name: "mainHero"}
	assert.Equal(t, "mainHero", f.ResponseKey())
}

func TestTypeRefString(t *testing.T) {
	named := ast.NamedType{Name: ast.Ident{Name: "String"}}
	list := &ast.ListType{OfType: named}
	nonNull := &ast.NonNullType{OfType: list}
	assert.Equal(t, "String", named.String())
	assert.Equal(t, "[String]", list.String())
	assert.Equal(t, "[String]!", nonNull.String())
}
