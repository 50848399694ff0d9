package ast

import "github.com/lirsacc/graphql/errors"

// TypeSystemDefinition is implemented by every SDL type definition kind:
// ScalarTypeDefinition, ObjectTypeDefinition, InterfaceTypeDefinition,
// Union, EnumTypeDefinition and InputObject.
type TypeSystemDefinition interface {
	Node
	TypeName() string
	Description() string
	isTypeSystemDefinition()
}

// Extension is implemented by the `extend ...` counterpart of each
// TypeSystemDefinition kind, plus schema extensions.
type Extension interface {
	Node
	isExtension()
}

type SchemaDefinition struct {
	Desc                string
	Directives          DirectiveList
	RootOperationNames  map[OperationType]string // e.g. query -> "Query"
	Loc                 errors.Location
}

func (s *SchemaDefinition) Location() errors.Location { return s.Loc }

type SchemaExtension struct {
	Directives         DirectiveList
	RootOperationNames map[OperationType]string
	Loc                errors.Location
}

func (s *SchemaExtension) Location() errors.Location { return s.Loc }
func (*SchemaExtension) isExtension()                {}

type ScalarTypeDefinition struct {
	Name       Ident
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
}

func (t *ScalarTypeDefinition) Location() errors.Location { return t.Loc }
func (t *ScalarTypeDefinition) TypeName() string           { return t.Name.Name }
func (t *ScalarTypeDefinition) Description() string        { return t.Desc }
func (t *ScalarTypeDefinition) isTypeSystemDefinition()     {}

type ScalarTypeExtension struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

func (t *ScalarTypeExtension) Location() errors.Location { return t.Loc }
func (*ScalarTypeExtension) isExtension()                {}

// FieldsDefinition is the braces-enclosed field list of an object or
// interface type definition.
type FieldsDefinition []*FieldDefinition

func (l FieldsDefinition) Get(name string) *FieldDefinition {
	for _, f := range l {
		if f.Name.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldsDefinition) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name.Name
	}
	return names
}

type FieldDefinition struct {
	Name       Ident
	Arguments  InputValueDefinitionList
	Type       TypeRef
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

func (f *FieldDefinition) Location() errors.Location { return f.Loc }

type ObjectTypeDefinition struct {
	Name       Ident
	Interfaces []NamedType
	Fields     FieldsDefinition
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

func (t *ObjectTypeDefinition) Location() errors.Location { return t.Loc }
func (t *ObjectTypeDefinition) TypeName() string           { return t.Name.Name }
func (t *ObjectTypeDefinition) Description() string        { return t.Desc }
func (t *ObjectTypeDefinition) isTypeSystemDefinition()     {}

type ObjectTypeExtension struct {
	Name       Ident
	Interfaces []NamedType
	Fields     FieldsDefinition
	Directives DirectiveList
	Loc        errors.Location
}

func (t *ObjectTypeExtension) Location() errors.Location { return t.Loc }
func (*ObjectTypeExtension) isExtension()                {}

type InterfaceTypeDefinition struct {
	Name       Ident
	Interfaces []NamedType // `interface X implements Y` per graphql-spec PR 373
	Fields     FieldsDefinition
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

func (t *InterfaceTypeDefinition) Location() errors.Location { return t.Loc }
func (t *InterfaceTypeDefinition) TypeName() string           { return t.Name.Name }
func (t *InterfaceTypeDefinition) Description() string        { return t.Desc }
func (t *InterfaceTypeDefinition) isTypeSystemDefinition()     {}

type InterfaceTypeExtension struct {
	Name       Ident
	Interfaces []NamedType
	Fields     FieldsDefinition
	Directives DirectiveList
	Loc        errors.Location
}

func (t *InterfaceTypeExtension) Location() errors.Location { return t.Loc }
func (*InterfaceTypeExtension) isExtension()                {}

type Union struct {
	Name        Ident
	MemberTypes []NamedType
	Directives  DirectiveList
	Desc        string
	Loc         errors.Location
}

func (t *Union) Location() errors.Location { return t.Loc }
func (t *Union) TypeName() string           { return t.Name.Name }
func (t *Union) Description() string        { return t.Desc }
func (t *Union) isTypeSystemDefinition()     {}

type UnionExtension struct {
	Name        Ident
	MemberTypes []NamedType
	Directives  DirectiveList
	Loc         errors.Location
}

func (t *UnionExtension) Location() errors.Location { return t.Loc }
func (*UnionExtension) isExtension()                {}

type EnumValueDefinition struct {
	Name       Ident
	Directives DirectiveList
	Desc       string
}

type EnumTypeDefinition struct {
	Name       Ident
	Values     []*EnumValueDefinition
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

func (t *EnumTypeDefinition) Location() errors.Location { return t.Loc }
func (t *EnumTypeDefinition) TypeName() string           { return t.Name.Name }
func (t *EnumTypeDefinition) Description() string        { return t.Desc }
func (t *EnumTypeDefinition) isTypeSystemDefinition()     {}

type EnumTypeExtension struct {
	Name       Ident
	Values     []*EnumValueDefinition
	Directives DirectiveList
	Loc        errors.Location
}

func (t *EnumTypeExtension) Location() errors.Location { return t.Loc }
func (*EnumTypeExtension) isExtension()                {}

type InputValueDefinition struct {
	Name       Ident
	Type       TypeRef
	Default    Value
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
	TypeLoc    errors.Location
}

func (v *InputValueDefinition) Location() errors.Location { return v.Loc }

type InputValueDefinitionList []*InputValueDefinition

func (l InputValueDefinitionList) Get(name string) *InputValueDefinition {
	for _, v := range l {
		if v.Name.Name == name {
			return v
		}
	}
	return nil
}

type InputObject struct {
	Name       Ident
	Fields     InputValueDefinitionList
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

func (t *InputObject) Location() errors.Location { return t.Loc }
func (t *InputObject) TypeName() string           { return t.Name.Name }
func (t *InputObject) Description() string        { return t.Desc }
func (t *InputObject) isTypeSystemDefinition()     {}

type InputObjectExtension struct {
	Name       Ident
	Fields     InputValueDefinitionList
	Directives DirectiveList
	Loc        errors.Location
}

func (t *InputObjectExtension) Location() errors.Location { return t.Loc }
func (*InputObjectExtension) isExtension()                {}

// DirectiveDefinition is a `directive @name(...) [repeatable] on LOC | LOC`
// declaration.
type DirectiveDefinition struct {
	Name       Ident
	Arguments  InputValueDefinitionList
	Repeatable bool
	Locations  []string
	Desc       string
	Loc        errors.Location
}

func (d *DirectiveDefinition) Location() errors.Location { return d.Loc }

// NamedType here intentionally reuses the TypeRef NamedType (a bare name
// reference), since interface/union member lists and `implements` clauses
// are just lists of type references, not definitions.
