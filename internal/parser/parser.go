// Package parser implements a unified recursive-descent parser for both the
// GraphQL query language and the Schema Definition Language, producing the
// shared ast.Document tree. Which grammar productions are legal is governed
// by the AllowTypeSystem option: executable documents (the common case for
// a request body) reject type system definitions, while schema documents
// opt in.
package parser

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/internal/lexer"
)

// Option configures a single Parse call.
type Option func(*options)

type options struct {
	allowTypeSystem bool
}

// AllowTypeSystem permits schema/type/interface/union/enum/input/scalar/
// directive/extend definitions to appear in the document. Parse rejects
// them by default, since a request body is never expected to redefine the
// schema.
func AllowTypeSystem() Option {
	return func(o *options) { o.allowTypeSystem = true }
}

// Parse parses source into a Document. Syntax errors are returned as a
// single *errors.QueryError of KindSyntax; Parse never panics to its caller.
func Parse(source string, opts ...Option) (*ast.Document, *errors.QueryError) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	l := lexer.New(source)
	var doc *ast.Document
	err := l.CatchSyntaxError(func() { doc = parseDocument(l, o) })
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parseDocument(l *lexer.Lexer, o *options) *ast.Document {
	doc := &ast.Document{}
	l.ConsumeWhitespace()
	for l.Peek() != lexer.EOF {
		if l.Peek() == '{' {
			op := &ast.OperationDefinition{Type: ast.Query, Loc: l.Location()}
			op.Selections = parseSelectionSet(l)
			doc.Operations = append(doc.Operations, op)
			continue
		}

		desc := l.DescComment()
		loc := l.Location()
		switch kw := l.ConsumeIdent(); kw {
		case "query":
			op := parseOperation(l, ast.Query)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)
		case "mutation":
			op := parseOperation(l, ast.Mutation)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)
		case "subscription":
			op := parseOperation(l, ast.Subscription)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)
		case "fragment":
			f := parseFragmentDefinition(l)
			f.Loc = loc
			doc.Fragments = append(doc.Fragments, f)

		case "schema":
			requireTypeSystem(l, o, kw)
			doc.Schema = parseSchemaDefinition(l, desc, loc)
		case "type":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseObjectTypeDefinition(l, desc))
		case "interface":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseInterfaceTypeDefinition(l, desc))
		case "union":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseUnionTypeDefinition(l, desc))
		case "enum":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseEnumTypeDefinition(l, desc))
		case "input":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseInputObjectTypeDefinition(l, desc))
		case "scalar":
			requireTypeSystem(l, o, kw)
			doc.Types = append(doc.Types, parseScalarTypeDefinition(l, desc))
		case "directive":
			requireTypeSystem(l, o, kw)
			doc.Directives = append(doc.Directives, parseDirectiveDefinition(l, desc))
		case "extend":
			requireTypeSystem(l, o, kw)
			doc.Extensions = append(doc.Extensions, parseExtension(l))

		default:
			unexpectedTopLevel(l, kw)
		}
	}
	return doc
}

func requireTypeSystem(l *lexer.Lexer, o *options, kw string) {
	if !o.allowTypeSystem {
		l.SyntaxError(fmt.Sprintf("unexpected %q: type system definitions are not allowed in an executable document", kw))
	}
}

func parseExtension(l *lexer.Lexer) ast.Extension {
	loc := l.Location()
	switch kw := l.ConsumeIdent(); kw {
	case "schema":
		ext := &ast.SchemaExtension{Loc: loc, RootOperationNames: map[ast.OperationType]string{}}
		ext.Directives = ParseDirectives(l)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				name, _ := l.ConsumeIdentWithLoc()
				l.ConsumeToken(':')
				typeName := l.ConsumeIdent()
				ext.RootOperationNames[ast.OperationType(name)] = typeName
			}
			l.ConsumeToken('}')
		}
		return ext
	case "type":
		base := parseObjectTypeDefinition(l, "")
		return &ast.ObjectTypeExtension{Name: base.Name, Interfaces: base.Interfaces, Fields: base.Fields, Directives: base.Directives, Loc: loc}
	case "interface":
		base := parseInterfaceTypeDefinition(l, "")
		return &ast.InterfaceTypeExtension{Name: base.Name, Interfaces: base.Interfaces, Fields: base.Fields, Directives: base.Directives, Loc: loc}
	case "union":
		base := parseUnionTypeDefinition(l, "")
		return &ast.UnionExtension{Name: base.Name, MemberTypes: base.MemberTypes, Directives: base.Directives, Loc: loc}
	case "enum":
		base := parseEnumTypeDefinition(l, "")
		return &ast.EnumTypeExtension{Name: base.Name, Values: base.Values, Directives: base.Directives, Loc: loc}
	case "input":
		base := parseInputObjectTypeDefinition(l, "")
		return &ast.InputObjectExtension{Name: base.Name, Fields: base.Fields, Directives: base.Directives, Loc: loc}
	case "scalar":
		base := parseScalarTypeDefinition(l, "")
		return &ast.ScalarTypeExtension{Name: base.Name, Directives: base.Directives, Loc: loc}
	default:
		l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "interface", "union", "enum", "input" or "scalar"`, kw))
		panic("unreachable")
	}
}
