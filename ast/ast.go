// Package ast represents the GraphQL abstract syntax tree: the typed,
// immutable result of parsing either an executable document (queries,
// mutations, subscriptions, fragments) or a Schema Definition Language
// document.
//
// The node set and naming follow the GraphQL specification as closely as
// Go idiom allows: a closed sum type of pointer-to-struct node kinds, each
// carrying its own source Location, dispatched by type switch rather than
// inheritance.
package ast

import "github.com/lirsacc/graphql/errors"

// Node is implemented by every AST node kind. Visitors and the printer
// dispatch on the concrete type via a type switch; Go has no sealed
// interfaces, but only the types in this package are expected to implement
// it.
type Node interface {
	Location() errors.Location
}

// Document is the root of a parsed source: a list of definitions that may
// mix executable definitions (operations, fragments) and, when the parser
// was invoked with AllowTypeSystem, type system definitions and extensions.
type Document struct {
	Operations OperationList
	Fragments  FragmentList
	Schema     *SchemaDefinition
	Types      []TypeSystemDefinition
	Directives []*DirectiveDefinition
	Extensions []Extension
	Loc        errors.Location
}

func (d *Document) Location() errors.Location { return d.Loc }

// Ident is a name token with its source location, used throughout the tree
// for field/type/argument/variable names.
type Ident struct {
	Name string
	Loc  errors.Location
}

func (i Ident) Location() errors.Location { return i.Loc }

// DeepCopy returns a copy of the document whose operations, fragments,
// variable definitions and selection trees are independent of the original,
// as TransformFields needs (it must never mutate the tree it was handed).
// The copy is not fully deep: argument values, directive lists, the schema
// definition's contents and the type system definitions, directive
// definitions and extensions are shared with the original.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}
	cp := &Document{Loc: d.Loc}
	for _, op := range d.Operations {
		cp.Operations = append(cp.Operations, op.deepCopy())
	}
	for _, f := range d.Fragments {
		cp.Fragments = append(cp.Fragments, f.deepCopy())
	}
	if d.Schema != nil {
		s := *d.Schema
		cp.Schema = &s
	}
	cp.Types = append(cp.Types, d.Types...)
	cp.Directives = append(cp.Directives, d.Directives...)
	cp.Extensions = append(cp.Extensions, d.Extensions...)
	return cp
}
