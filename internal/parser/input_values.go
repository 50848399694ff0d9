package parser

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/internal/lexer"
)

// ParseInputValueDefinition parses a single `name: Type = default` entry,
// used for field arguments, directive arguments and input object fields.
func ParseInputValueDefinition(l *lexer.Lexer) *ast.InputValueDefinition {
	v := &ast.InputValueDefinition{}
	v.Loc = l.Location()
	v.Desc = l.DescComment()
	name, loc := l.ConsumeIdentWithLoc()
	v.Name = ast.Ident{Name: name, Loc: loc}
	l.ConsumeToken(':')
	v.TypeLoc = l.Location()
	v.Type = ParseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		v.Default = ParseValue(l, true)
	}
	v.Directives = ParseDirectives(l)
	return v
}

func parseInputValueDefinitionList(l *lexer.Lexer) ast.InputValueDefinitionList {
	var list ast.InputValueDefinitionList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		list = append(list, ParseInputValueDefinition(l))
	}
	l.ConsumeToken(')')
	return list
}
