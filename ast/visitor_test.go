package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lirsacc/graphql/ast"
)

type collectNames struct {
	ast.BaseVisitor
	names []string
}

func (c *collectNames) Enter(n ast.Node) ast.Action {
	if f, ok := n.(*ast.Field); ok {
		c.names = append(c.names, f.Name.Name)
	}
	return ast.Continue
}

func TestWalkVisitsNestedFields(t *testing.T) {
	doc := &ast.Document{
		Operations: ast.OperationList{
			{
				Type: ast.Query,
				Selections: []ast.Selection{
					&ast.Field{
						Name: ast.Ident{Name: "hero"},
						SelectionSet: []ast.Selection{
							&ast.Field{Name: ast.Ident{Name: "name"}},
							&ast.Field{Name: ast.Ident{Name: "id"}},
						},
					},
				},
			},
		},
	}
	v := &collectNames{}
	ast.Walk(v, doc)
	assert.Equal(t, []string{"hero", "name", "id"}, v.names)
}

type haltOnSecond struct {
	ast.BaseVisitor
	seen int
}

func (h *haltOnSecond) Enter(n ast.Node) ast.Action {
	if _, ok := n.(*ast.Field); ok {
		h.seen++
		if h.seen == 2 {
			return ast.Halt
		}
	}
	return ast.Continue
}

func TestWalkHaltStopsTraversal(t *testing.T) {
	doc := &ast.Document{
		Operations: ast.OperationList{
			{Type: ast.Query, Selections: []ast.Selection{
				&ast.Field{Name: ast.Ident{Name: "a"}},
				&ast.Field{Name: ast.Ident{Name: "b"}},
				&ast.Field{Name: ast.Ident{Name: "c"}},
			}},
		},
	}
	v := &haltOnSecond{}
	ast.Walk(v, doc)
	assert.Equal(t, 2, v.seen)
}

type removeField struct {
	target string
}

func (r removeField) TransformField(f *ast.Field) (*ast.Field, ast.Action) {
	if f.Name.Name == r.target {
		return nil, ast.Continue
	}
	return f, ast.Continue
}

func TestTransformFieldsRemovesField(t *testing.T) {
	doc := &ast.Document{
		Operations: ast.OperationList{
			{Type: ast.Query, Selections: []ast.Selection{
				&ast.Field{Name: ast.Ident{Name: "keep"}},
				&ast.Field{Name: ast.Ident{Name: "drop"}},
			}},
		},
	}
	out := ast.TransformFields(doc, removeField{target: "drop"})
	assert.Len(t, out.Operations[0].Selections, 1)
	assert.Equal(t, "keep", out.Operations[0].Selections[0].(*ast.Field).Name.Name)
	// original untouched
	assert.Len(t, doc.Operations[0].Selections, 2)
}

func TestChainVisitorOrder(t *testing.T) {
	var order []string
	mk := func(name string) ast.Visitor {
		return enterLeaveFn{
			enter: func(ast.Node) ast.Action { order = append(order, "enter:"+name); return ast.Continue },
			leave: func(ast.Node) { order = append(order, "leave:"+name) },
		}
	}
	chain := ast.Chain{mk("a"), mk("b")}
	doc := &ast.Document{Operations: ast.OperationList{
		{Type: ast.Query, Selections: []ast.Selection{&ast.Field{Name: ast.Ident{Name: "x"}}}},
	}}
	ast.Walk(chain, doc)
	assert.Contains(t, order, "enter:a")
	assert.Contains(t, order, "enter:b")
	// "a" enters before "b", and "b" leaves before "a" for the same node.
	var enterAIdx, enterBIdx, leaveAIdx, leaveBIdx int
	for i, s := range order {
		switch s {
		case "enter:a":
			enterAIdx = i
		case "enter:b":
			enterBIdx = i
		case "leave:a":
			leaveAIdx = i
		case "leave:b":
			leaveBIdx = i
		}
	}
	assert.Less(t, enterAIdx, enterBIdx)
	assert.Less(t, leaveBIdx, leaveAIdx)
}

type enterLeaveFn struct {
	enter func(ast.Node) ast.Action
	leave func(ast.Node)
}

func (f enterLeaveFn) Enter(n ast.Node) ast.Action { return f.enter(n) }
func (f enterLeaveFn) Leave(n ast.Node)            { f.leave(n) }
