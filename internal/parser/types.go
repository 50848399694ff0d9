package parser

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/internal/lexer"
)

// ParseType parses a NamedType/ListType/NonNullType reference, e.g.
// `[String!]!`.
func ParseType(l *lexer.Lexer) ast.TypeRef {
	t := parseNullableType(l)
	if l.Peek() == '!' {
		loc := l.Location()
		l.ConsumeToken('!')
		return &ast.NonNullType{OfType: t, Loc: loc}
	}
	return t
}

func parseNullableType(l *lexer.Lexer) ast.TypeRef {
	if l.Peek() == '[' {
		loc := l.Location()
		l.ConsumeToken('[')
		ofType := ParseType(l)
		l.ConsumeToken(']')
		return &ast.ListType{OfType: ofType, Loc: loc}
	}
	name, loc := l.ConsumeIdentWithLoc()
	return ast.NamedType{Name: ast.Ident{Name: name, Loc: loc}}
}
