package parser

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/internal/lexer"
)

func parseIdentList(l *lexer.Lexer) []ast.NamedType {
	var out []ast.NamedType
	for {
		name, loc := l.ConsumeIdentWithLoc()
		out = append(out, ast.NamedType{Name: ast.Ident{Name: name, Loc: loc}})
		if l.Peek() == '&' {
			l.ConsumeToken('&')
			continue
		}
		break
	}
	return out
}

func parseSchemaDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.SchemaDefinition {
	s := &ast.SchemaDefinition{Desc: desc, RootOperationNames: map[ast.OperationType]string{}, Loc: loc}
	s.Directives = ParseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		name, _ := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		typeName := l.ConsumeIdent()
		s.RootOperationNames[ast.OperationType(name)] = typeName
	}
	l.ConsumeToken('}')
	return s
}

func parseFieldsDefinition(l *lexer.Lexer) ast.FieldsDefinition {
	var fields ast.FieldsDefinition
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		f := &ast.FieldDefinition{}
		f.Loc = l.Location()
		f.Desc = l.DescComment()
		name, nameLoc := l.ConsumeIdentWithLoc()
		f.Name = ast.Ident{Name: name, Loc: nameLoc}
		if l.Peek() == '(' {
			f.Arguments = parseInputValueDefinitionList(l)
		}
		l.ConsumeToken(':')
		f.Type = ParseType(l)
		f.Directives = ParseDirectives(l)
		fields = append(fields, f)
	}
	l.ConsumeToken('}')
	return fields
}

func parseObjectTypeDefinition(l *lexer.Lexer, desc string) *ast.ObjectTypeDefinition {
	o := &ast.ObjectTypeDefinition{Desc: desc}
	name, loc := l.ConsumeIdentWithLoc()
	o.Name = ast.Ident{Name: name, Loc: loc}
	o.Loc = loc
	if l.Peek() == lexer.Ident {
		l.ConsumeKeyword("implements")
		o.Interfaces = parseIdentList(l)
	}
	o.Directives = ParseDirectives(l)
	o.Fields = parseFieldsDefinition(l)
	return o
}

func parseInterfaceTypeDefinition(l *lexer.Lexer, desc string) *ast.InterfaceTypeDefinition {
	i := &ast.InterfaceTypeDefinition{Desc: desc}
	name, loc := l.ConsumeIdentWithLoc()
	i.Name = ast.Ident{Name: name, Loc: loc}
	i.Loc = loc
	if l.Peek() == lexer.Ident {
		l.ConsumeKeyword("implements")
		i.Interfaces = parseIdentList(l)
	}
	i.Directives = ParseDirectives(l)
	i.Fields = parseFieldsDefinition(l)
	return i
}

func parseUnionTypeDefinition(l *lexer.Lexer, desc string) *ast.Union {
	u := &ast.Union{Desc: desc}
	name, loc := l.ConsumeIdentWithLoc()
	u.Name = ast.Ident{Name: name, Loc: loc}
	u.Loc = loc
	u.Directives = ParseDirectives(l)
	l.ConsumeToken('=')
	memName, memLoc := l.ConsumeIdentWithLoc()
	u.MemberTypes = []ast.NamedType{{Name: ast.Ident{Name: memName, Loc: memLoc}}}
	for l.Peek() == '|' {
		l.ConsumeToken('|')
		memName, memLoc = l.ConsumeIdentWithLoc()
		u.MemberTypes = append(u.MemberTypes, ast.NamedType{Name: ast.Ident{Name: memName, Loc: memLoc}})
	}
	return u
}

func parseInputObjectTypeDefinition(l *lexer.Lexer, desc string) *ast.InputObject {
	i := &ast.InputObject{Desc: desc}
	name, loc := l.ConsumeIdentWithLoc()
	i.Name = ast.Ident{Name: name, Loc: loc}
	i.Loc = loc
	i.Directives = ParseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		i.Fields = append(i.Fields, ParseInputValueDefinition(l))
	}
	l.ConsumeToken('}')
	return i
}

func parseEnumTypeDefinition(l *lexer.Lexer, desc string) *ast.EnumTypeDefinition {
	e := &ast.EnumTypeDefinition{Desc: desc}
	name, loc := l.ConsumeIdentWithLoc()
	e.Name = ast.Ident{Name: name, Loc: loc}
	e.Loc = loc
	e.Directives = ParseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		v := &ast.EnumValueDefinition{}
		v.Desc = l.DescComment()
		vname, vloc := l.ConsumeIdentWithLoc()
		v.Name = ast.Ident{Name: vname, Loc: vloc}
		v.Directives = ParseDirectives(l)
		e.Values = append(e.Values, v)
	}
	l.ConsumeToken('}')
	return e
}

func parseScalarTypeDefinition(l *lexer.Lexer, desc string) *ast.ScalarTypeDefinition {
	name, loc := l.ConsumeIdentWithLoc()
	s := &ast.ScalarTypeDefinition{Name: ast.Ident{Name: name, Loc: loc}, Desc: desc, Loc: loc}
	s.Directives = ParseDirectives(l)
	return s
}

func parseDirectiveDefinition(l *lexer.Lexer, desc string) *ast.DirectiveDefinition {
	d := &ast.DirectiveDefinition{Desc: desc}
	l.ConsumeToken('@')
	name, loc := l.ConsumeIdentWithLoc()
	d.Name = ast.Ident{Name: name, Loc: loc}
	d.Loc = loc
	if l.Peek() == '(' {
		d.Arguments = parseInputValueDefinitionList(l)
	}
	if l.PeekIdent("repeatable") {
		l.ConsumeKeyword("repeatable")
		d.Repeatable = true
	}
	l.ConsumeKeyword("on")
	for {
		loc := l.ConsumeIdent()
		d.Locations = append(d.Locations, loc)
		if l.Peek() != '|' {
			break
		}
		l.ConsumeToken('|')
	}
	return d
}

func unexpectedTopLevel(l *lexer.Lexer, got string) {
	l.SyntaxError(fmt.Sprintf(
		`unexpected %q, expecting "schema", "type", "interface", "union", "enum", "input", "scalar", "directive" or "extend"`, got))
}
