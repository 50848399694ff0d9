package schema

import (
	"github.com/lirsacc/graphql/errors"
)

// Schema is the fully-resolved, read-only type system a validator and
// executor run against. Once returned from Build, a Schema is never
// mutated — spec §3's "schemas are read-only post-build" lifetime.
type Schema struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object

	Types      map[string]NamedType
	Directives map[string]*DirectiveDef

	objects []*Object
	unions  []*Union
}

// Resolve looks up a named type by name, implementing the Type() accessor
// the validator and coerce packages need to turn an ast.TypeRef into a
// schema Type.
func (s *Schema) Resolve(name string) NamedType {
	return s.Types[name]
}

// RootOperationType returns the root object type for an operation kind, or
// nil if the schema does not support it (e.g. most schemas have no
// subscription root).
func (s *Schema) RootOperationType(kind string) *Object {
	switch kind {
	case "query":
		return s.Query
	case "mutation":
		return s.Mutation
	case "subscription":
		return s.Subscription
	default:
		return nil
	}
}

func newSchema() *Schema {
	s := &Schema{
		Types:      map[string]NamedType{},
		Directives: map[string]*DirectiveDef{},
	}
	for name, t := range builtinScalars() {
		s.Types[name] = t
	}
	for name, d := range builtinDirectives() {
		s.Directives[name] = d
	}
	return s
}

func builtinDirectives() map[string]*DirectiveDef {
	return map[string]*DirectiveDef{
		"include":    includeDirective,
		"skip":       skipDirective,
		"deprecated": deprecatedDirective,
	}
}

// errTypeNotFound builds the KindSchemaBuild error raised when a type
// reference cannot be resolved against the schema being built.
func errTypeNotFound(name string, loc errors.Location) *errors.QueryError {
	err := errors.NewSchemaBuildError("type %q not found", name)
	err.Locations = []errors.Location{loc}
	return err
}
