// Package schema holds the runtime schema model and the SDL-to-schema
// builder: the materialized, reference-resolved type system that the
// validator and executor run against. Unlike the ast package's TypeRef
// (bare syntax), every Type here is either a built Schema member or a
// List/NonNull wrapper around one, with cycles resolved.
package schema

import (
	"github.com/lirsacc/graphql/errors"
)

// Type is implemented by every schema-level type reference: the six named
// kinds (Scalar, Object, Interface, Union, Enum, InputObject) plus the List
// and NonNull wrappers.
type Type interface {
	// Kind returns the introspection `__TypeKind` value.
	Kind() string
	String() string
}

// NamedType is implemented by the six kinds that carry a name, description
// and declaration location — everything but List/NonNull.
type NamedType interface {
	Type
	TypeName() string
	Description() string
	Location() errors.Location
}

// List wraps an element type: `[T]`.
type List struct{ OfType Type }

// NonNull wraps a nullable type, forbidding a null response/variable value:
// `T!`. Invariant (vi) of spec §3: NonNull never wraps another NonNull.
type NonNull struct{ OfType Type }

func (*List) Kind() string    { return "LIST" }
func (*NonNull) Kind() string { return "NON_NULL" }

func (t *List) String() string    { return "[" + t.OfType.String() + "]" }
func (t *NonNull) String() string { return t.OfType.String() + "!" }

// NullableType unwraps a single layer of NonNull, returning t unchanged if
// it wasn't one. Used throughout the executor's non-null propagation.
func NullableType(t Type) Type {
	if nn, ok := t.(*NonNull); ok {
		return nn.OfType
	}
	return t
}

// NamedOf unwraps List/NonNull layers down to the underlying NamedType.
func NamedOf(t Type) NamedType {
	switch t := t.(type) {
	case *List:
		return NamedOf(t.OfType)
	case *NonNull:
		return NamedOf(t.OfType)
	case NamedType:
		return t
	default:
		return nil
	}
}

// IsInputType reports whether t may legally appear in an input position
// (argument type, input-object field type, variable type) — invariant
// (iii) of spec §3.
func IsInputType(t Type) bool {
	switch t := t.(type) {
	case *List:
		return IsInputType(t.OfType)
	case *NonNull:
		return IsInputType(t.OfType)
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t may legally appear in an output position
// (field type) — invariant (iv) of spec §3.
func IsOutputType(t Type) bool {
	switch t := t.(type) {
	case *List:
		return IsOutputType(t.OfType)
	case *NonNull:
		return IsOutputType(t.OfType)
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// ScalarCoercion implements the serialize/parse-value pair a scalar needs.
// There is no separate literal hook: literals are turned into plain Go
// values and passed to ParseValue. Built-ins and additional_scalars both
// satisfy this.
type ScalarCoercion interface {
	Serialize(value interface{}) (interface{}, error)
	ParseValue(value interface{}) (interface{}, error)
}

type Scalar struct {
	Name  string
	Desc  string
	Loc   errors.Location
	Coerce ScalarCoercion
}

func (*Scalar) Kind() string           { return "SCALAR" }
func (t *Scalar) String() string       { return t.Name }
func (t *Scalar) TypeName() string     { return t.Name }
func (t *Scalar) Description() string  { return t.Desc }
func (t *Scalar) Location() errors.Location { return t.Loc }

type Object struct {
	Name       string
	Interfaces []*Interface
	Fields     FieldList
	Desc       string
	Loc        errors.Location

	interfaceNames []string
}

func (*Object) Kind() string           { return "OBJECT" }
func (t *Object) String() string       { return t.Name }
func (t *Object) TypeName() string     { return t.Name }
func (t *Object) Description() string  { return t.Desc }
func (t *Object) Location() errors.Location { return t.Loc }

// Implements reports whether o declares conformance to the named interface.
func (o *Object) Implements(name string) bool {
	for _, i := range o.Interfaces {
		if i.Name == name {
			return true
		}
	}
	return false
}

// TypeResolver picks the concrete Object a polymorphic (interface/union)
// value belongs to at runtime. When unset, the executor falls back to the
// default_type_resolver behavior described in spec §4.8 (matching by a
// `__typename`-shaped field/method on the value).
type TypeResolver func(value interface{}) *Object

type Interface struct {
	Name          string
	Interfaces    []*Interface // transitive `interface X implements Y` (PR 373)
	PossibleTypes []*Object
	Fields        FieldList
	Desc          string
	Loc           errors.Location
	ResolveType   TypeResolver

	interfaceNames []string
}

func (*Interface) Kind() string           { return "INTERFACE" }
func (t *Interface) String() string       { return t.Name }
func (t *Interface) TypeName() string     { return t.Name }
func (t *Interface) Description() string  { return t.Desc }
func (t *Interface) Location() errors.Location { return t.Loc }

type Union struct {
	Name          string
	PossibleTypes []*Object
	Desc          string
	Loc           errors.Location
	ResolveType   TypeResolver

	typeNames []string
}

func (*Union) Kind() string           { return "UNION" }
func (t *Union) String() string       { return t.Name }
func (t *Union) TypeName() string     { return t.Name }
func (t *Union) Description() string  { return t.Desc }
func (t *Union) Location() errors.Location { return t.Loc }

type EnumValue struct {
	Name       string
	Desc       string
	Deprecated bool
	DeprecationReason string
	Directives ResolvedDirectiveList
}

type Enum struct {
	Name   string
	Values []*EnumValue
	Desc   string
	Loc    errors.Location
}

func (*Enum) Kind() string           { return "ENUM" }
func (t *Enum) String() string       { return t.Name }
func (t *Enum) TypeName() string     { return t.Name }
func (t *Enum) Description() string  { return t.Desc }
func (t *Enum) Location() errors.Location { return t.Loc }

func (e *Enum) Value(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

type InputObject struct {
	Name   string
	Desc   string
	Fields InputValueList
	Loc    errors.Location
}

func (*InputObject) Kind() string           { return "INPUT_OBJECT" }
func (t *InputObject) String() string       { return t.Name }
func (t *InputObject) TypeName() string     { return t.Name }
func (t *InputObject) Description() string  { return t.Desc }
func (t *InputObject) Location() errors.Location { return t.Loc }

// InputValue is the schema-level shape of a resolved argument or input
// object field: {name, type, default_value?, description, deprecated?,
// python_name?} per spec §3. AlternateName is this module's Go-idiomatic
// stand-in for `python_name`. Nothing in this module reads it on an
// InputValue: PackArgs binds arguments by struct field name or `graphql`
// tag.
type InputValue struct {
	Name          string
	Type          Type
	Default       interface{} // coerced default, or nil
	HasDefault    bool
	Desc          string
	Loc           errors.Location
	TypeLoc       errors.Location
	AlternateName string
	Directives    ResolvedDirectiveList
}

type InputValueList []*InputValue

func (l InputValueList) Get(name string) *InputValue {
	for _, v := range l {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (l InputValueList) Names() []string {
	names := make([]string, len(l))
	for i, v := range l {
		names[i] = v.Name
	}
	return names
}

// Field is the schema-level shape of an object/interface field. Resolver,
// when set by a resolvers map passed to Build, is consulted by the
// resolvers package ahead of its reflection-based dispatch chain — see
// spec §6's open question on resolver dispatch order.
type Field struct {
	Name              string
	Args              InputValueList
	Type              Type
	Directives        ResolvedDirectiveList
	Desc              string
	Deprecated        bool
	DeprecationReason string
	AlternateName     string
	Resolver          interface{}
	Loc               errors.Location
}

type FieldList []*Field

func (l FieldList) Get(name string) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// DirectiveDef is a declared `directive @name(...) on LOC...`. Built-ins
// (skip, include, deprecated) are always present per spec §3.
type DirectiveDef struct {
	Name       string
	Desc       string
	Loc        errors.Location
	Locations  []string
	Args       InputValueList
	Repeatable bool
}

// ResolvedDirective is a directive application with arguments already
// coerced against its DirectiveDef (defaults filled in).
type ResolvedDirective struct {
	Name string
	Args map[string]interface{}
}

type ResolvedDirectiveList []*ResolvedDirective

func (l ResolvedDirectiveList) Get(name string) *ResolvedDirective {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}
