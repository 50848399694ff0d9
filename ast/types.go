package ast

import "github.com/lirsacc/graphql/errors"

// TypeRef is implemented by the three wire-level type reference node kinds
// that appear in query/SDL source: NamedType, ListType and NonNullType.
// These are distinct from the schema's resolved runtime types (see the
// schema package) — a TypeRef is just syntax, not yet checked against a
// schema.
type TypeRef interface {
	Node
	String() string
	isTypeRef()
}

type NamedType struct {
	Name Ident
}

type ListType struct {
	OfType TypeRef
	Loc    errors.Location
}

type NonNullType struct {
	OfType TypeRef
	Loc    errors.Location
}

func (t NamedType) Location() errors.Location  { return t.Name.Loc }
func (t *ListType) Location() errors.Location   { return t.Loc }
func (t *NonNullType) Location() errors.Location { return t.Loc }

func (NamedType) isTypeRef()    {}
func (*ListType) isTypeRef()    {}
func (*NonNullType) isTypeRef() {}

func (t NamedType) String() string    { return t.Name.Name }
func (t *ListType) String() string    { return "[" + t.OfType.String() + "]" }
func (t *NonNullType) String() string { return t.OfType.String() + "!" }
