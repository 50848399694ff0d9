package parser

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/internal/lexer"
)

func parseOperation(l *lexer.Lexer, opType ast.OperationType) *ast.OperationDefinition {
	op := &ast.OperationDefinition{Type: opType}
	if l.Peek() == lexer.Ident {
		name, nameLoc := l.ConsumeIdentWithLoc()
		op.Name = ast.Ident{Name: name, Loc: nameLoc}
	}
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			varLoc := l.Location()
			l.ConsumeToken('$')
			name, nameLoc := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			typeLoc := l.Location()
			typ := ParseType(l)
			v := &ast.VariableDefinition{
				Name:    ast.Ident{Name: name, Loc: nameLoc},
				Type:    typ,
				Loc:     varLoc,
				TypeLoc: typeLoc,
			}
			if l.Peek() == '=' {
				l.ConsumeToken('=')
				v.Default = ParseValue(l, true)
			}
			v.Directives = ParseDirectives(l)
			op.Vars = append(op.Vars, v)
		}
		l.ConsumeToken(')')
	}
	op.Directives = ParseDirectives(l)
	op.Selections = parseSelectionSet(l)
	return op
}

func parseFragmentDefinition(l *lexer.Lexer) *ast.FragmentDefinition {
	f := &ast.FragmentDefinition{}
	name, nameLoc := l.ConsumeIdentWithLoc()
	f.Name = ast.Ident{Name: name, Loc: nameLoc}
	l.ConsumeKeyword("on")
	onName, onLoc := l.ConsumeIdentWithLoc()
	f.On = ast.NamedType{Name: ast.Ident{Name: onName, Loc: onLoc}}
	f.Directives = ParseDirectives(l)
	f.Selections = parseSelectionSet(l)
	return f
}

func parseSelectionSet(l *lexer.Lexer) []ast.Selection {
	var sels []ast.Selection
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		sels = append(sels, parseSelection(l))
	}
	l.ConsumeToken('}')
	return sels
}

func parseSelection(l *lexer.Lexer) ast.Selection {
	if l.Peek() == '.' {
		return parseFragmentSelection(l)
	}
	return parseField(l)
}

func parseField(l *lexer.Lexer) *ast.Field {
	f := &ast.Field{}
	name, nameLoc := l.ConsumeIdentWithLoc()
	f.Alias = ast.Ident{Name: name, Loc: nameLoc}
	f.Name = f.Alias
	if l.Peek() == ':' {
		l.ConsumeToken(':')
		realName, realLoc := l.ConsumeIdentWithLoc()
		f.Name = ast.Ident{Name: realName, Loc: realLoc}
	}
	if l.Peek() == '(' {
		f.Arguments = ParseArgumentList(l)
	}
	f.Directives = ParseDirectives(l)
	if l.Peek() == '{' {
		f.SelSetLoc = l.Location()
		f.SelectionSet = parseSelectionSet(l)
	}
	return f
}

func parseFragmentSelection(l *lexer.Lexer) ast.Selection {
	loc := l.Location()
	l.ConsumeToken('.')
	l.ConsumeToken('.')
	l.ConsumeToken('.')

	if l.Peek() == lexer.Ident {
		name, nameLoc := l.ConsumeIdentWithLoc()
		if name != "on" {
			fs := &ast.FragmentSpread{Name: ast.Ident{Name: name, Loc: nameLoc}, Loc: loc}
			fs.Directives = ParseDirectives(l)
			return fs
		}
		onName, onLoc := l.ConsumeIdentWithLoc()
		f := &ast.InlineFragment{
			On:    ast.NamedType{Name: ast.Ident{Name: onName, Loc: onLoc}},
			HasOn: true,
			Loc:   loc,
		}
		f.Directives = ParseDirectives(l)
		f.Selections = parseSelectionSet(l)
		return f
	}

	f := &ast.InlineFragment{Loc: loc}
	f.Directives = ParseDirectives(l)
	f.Selections = parseSelectionSet(l)
	return f
}
