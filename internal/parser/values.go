package parser

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/internal/lexer"
)

// ParseValue parses a single value node: a variable reference (unless
// constOnly), a scalar/enum literal, or a list/object value whose elements
// are themselves parsed recursively.
func ParseValue(l *lexer.Lexer, constOnly bool) ast.Value {
	loc := l.Location()
	switch l.Peek() {
	case '$':
		if constOnly {
			l.SyntaxError("variable not allowed")
		}
		l.ConsumeToken('$')
		return &ast.Variable{Name: l.ConsumeIdent(), Loc: loc}

	case lexer.Int, lexer.Float, lexer.String, lexer.BlockString, lexer.Ident:
		lit := l.ConsumeLiteral()
		return literalToValue(lit, loc)

	case '-':
		l.ConsumeToken('-')
		lit := l.ConsumeLiteral()
		lit.Text = "-" + lit.Text
		return literalToValue(lit, loc)

	case '[':
		l.ConsumeToken('[')
		var list []ast.Value
		for l.Peek() != ']' {
			list = append(list, ParseValue(l, constOnly))
		}
		l.ConsumeToken(']')
		return &ast.ListValue{Values: list, Loc: loc}

	case '{':
		l.ConsumeToken('{')
		var fields []*ast.ObjectField
		for l.Peek() != '}' {
			name, nameLoc := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			value := ParseValue(l, constOnly)
			fields = append(fields, &ast.ObjectField{Name: ast.Ident{Name: name, Loc: nameLoc}, Value: value})
		}
		l.ConsumeToken('}')
		return &ast.ObjectValue{Fields: fields, Loc: loc}

	default:
		l.SyntaxError("invalid value")
		panic("unreachable")
	}
}

// literalToValue maps a scanned scalar/enum token to its concrete ast.Value
// kind. The lexer reports `null` as an Ident token indistinguishable from an
// enum value at this level, so it is special-cased here.
func literalToValue(lit *lexer.BasicLit, loc errors.Location) ast.Value {
	switch lit.Type {
	case lexer.Int:
		return &ast.IntValue{Value: lit.Text, Loc: loc}
	case lexer.Float:
		return &ast.FloatValue{Value: lit.Text, Loc: loc}
	case lexer.String:
		return &ast.StringValue{Value: lit.Text, Loc: loc}
	case lexer.BlockString:
		return &ast.StringValue{Value: lit.Text, Block: true, Loc: loc}
	case lexer.Ident:
		switch lit.Text {
		case "null":
			return &ast.NullValue{Loc: loc}
		case "true":
			return &ast.BooleanValue{Value: true, Loc: loc}
		case "false":
			return &ast.BooleanValue{Value: false, Loc: loc}
		default:
			return &ast.EnumValue{Value: lit.Text, Loc: loc}
		}
	default:
		return &ast.StringValue{Value: lit.Text, Loc: loc}
	}
}

// ParseArgumentList parses a parenthesized `(name: value, ...)` list. Used
// both for field/directive call arguments.
func ParseArgumentList(l *lexer.Lexer) ast.ArgumentList {
	var args ast.ArgumentList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name, loc := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		value := ParseValue(l, false)
		args = append(args, ast.Argument{Name: ast.Ident{Name: name, Loc: loc}, Value: value})
	}
	l.ConsumeToken(')')
	return args
}

// ParseDirectives parses zero or more `@name(...)` applications. Repeatable
// directives (spec §4.5) are allowed to appear more than once here; whether
// that is legal for a given directive is a validation-time concern.
func ParseDirectives(l *lexer.Lexer) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		loc := l.Location()
		l.ConsumeToken('@')
		name, nameLoc := l.ConsumeIdentWithLoc()
		d := ast.Directive{Name: ast.Ident{Name: name, Loc: nameLoc}, Loc: loc}
		if l.Peek() == '(' {
			d.Arguments = ParseArgumentList(l)
		}
		directives = append(directives, d)
	}
	return directives
}
