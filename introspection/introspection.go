// Package introspection wraps the schema model in the `__Schema`/`__Type`/
// `__Field`/`__InputValue`/`__EnumValue`/`__Directive` shapes the GraphQL
// spec's introspection system exposes, plus the meta-schema (a
// *schema.Object graph for those wrapper types) the executor walks the
// same way it walks any other object type.
//
// Grounded on the teacher's introspection/introspection.go WrapSchema/
// WrapType wrappers, adapted from graph-gophers' internal ast.Schema/
// ast.Type to this module's schema.Schema/schema.Type, and from the
// teacher's own executor-native dispatch to this module's resolvers.Resolver
// so the meta-schema's fields can be resolved by the same executor code
// path as any user-defined field.
package introspection

import (
	"sort"

	"github.com/lirsacc/graphql/schema"
)

// Schema wraps a *schema.Schema for the `__Schema` introspection type.
type Schema struct{ s *schema.Schema }

// WrapSchema adapts a built schema for introspection.
func WrapSchema(s *schema.Schema) *Schema { return &Schema{s} }

func (r *Schema) Types() []*Type {
	names := make([]string, 0, len(r.s.Types))
	for name := range r.s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Type, len(names))
	for i, name := range names {
		out[i] = WrapType(r.s.Types[name])
	}
	return out
}

func (r *Schema) QueryType() *Type { return wrapNamedOrNil(r.s.Query) }
func (r *Schema) MutationType() *Type {
	if r.s.Mutation == nil {
		return nil
	}
	return WrapType(r.s.Mutation)
}
func (r *Schema) SubscriptionType() *Type {
	if r.s.Subscription == nil {
		return nil
	}
	return WrapType(r.s.Subscription)
}

func (r *Schema) Directives() []*Directive {
	names := make([]string, 0, len(r.s.Directives))
	for name := range r.s.Directives {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Directive, len(names))
	for i, name := range names {
		out[i] = &Directive{r.s.Directives[name]}
	}
	return out
}

func wrapNamedOrNil(o *schema.Object) *Type {
	if o == nil {
		return nil
	}
	return WrapType(o)
}

// Type wraps a schema.Type for the `__Type` introspection type.
type Type struct{ t schema.Type }

// WrapType adapts any resolved schema.Type (named or List/NonNull) for
// introspection.
func WrapType(t schema.Type) *Type { return &Type{t} }

func (r *Type) Kind() string { return r.t.Kind() }

func (r *Type) Name() *string {
	if named, ok := r.t.(schema.NamedType); ok {
		n := named.TypeName()
		return &n
	}
	return nil
}

func (r *Type) Description() *string {
	if named, ok := r.t.(schema.NamedType); ok {
		d := named.Description()
		return &d
	}
	return nil
}

func (r *Type) Fields(args map[string]interface{}) []*Field {
	includeDeprecated, _ := args["includeDeprecated"].(bool)
	var fields schema.FieldList
	switch t := r.t.(type) {
	case *schema.Object:
		fields = t.Fields
	case *schema.Interface:
		fields = t.Fields
	default:
		return nil
	}
	out := make([]*Field, 0, len(fields))
	for _, f := range fields {
		if f.Deprecated && !includeDeprecated {
			continue
		}
		out = append(out, &Field{f})
	}
	return out
}

func (r *Type) Interfaces() []*Type {
	switch t := r.t.(type) {
	case *schema.Object:
		out := make([]*Type, len(t.Interfaces))
		for i, iface := range t.Interfaces {
			out[i] = WrapType(iface)
		}
		return out
	case *schema.Interface:
		out := make([]*Type, len(t.Interfaces))
		for i, iface := range t.Interfaces {
			out[i] = WrapType(iface)
		}
		return out
	default:
		return nil
	}
}

func (r *Type) PossibleTypes() []*Type {
	switch t := r.t.(type) {
	case *schema.Interface:
		out := make([]*Type, len(t.PossibleTypes))
		for i, o := range t.PossibleTypes {
			out[i] = WrapType(o)
		}
		return out
	case *schema.Union:
		out := make([]*Type, len(t.PossibleTypes))
		for i, o := range t.PossibleTypes {
			out[i] = WrapType(o)
		}
		return out
	default:
		return nil
	}
}

func (r *Type) EnumValues(args map[string]interface{}) []*EnumValue {
	e, ok := r.t.(*schema.Enum)
	if !ok {
		return nil
	}
	includeDeprecated, _ := args["includeDeprecated"].(bool)
	out := make([]*EnumValue, 0, len(e.Values))
	for _, v := range e.Values {
		if v.Deprecated && !includeDeprecated {
			continue
		}
		out = append(out, &EnumValue{v})
	}
	return out
}

func (r *Type) InputFields() []*InputValue {
	io, ok := r.t.(*schema.InputObject)
	if !ok {
		return nil
	}
	out := make([]*InputValue, len(io.Fields))
	for i, f := range io.Fields {
		out[i] = &InputValue{f}
	}
	return out
}

func (r *Type) OfType() *Type {
	switch t := r.t.(type) {
	case *schema.List:
		return WrapType(t.OfType)
	case *schema.NonNull:
		return WrapType(t.OfType)
	default:
		return nil
	}
}

// Field wraps a schema.Field for the `__Field` introspection type.
type Field struct{ f *schema.Field }

func (r *Field) Name() string        { return r.f.Name }
func (r *Field) Description() *string { d := r.f.Desc; return &d }
func (r *Field) Args() []*InputValue {
	out := make([]*InputValue, len(r.f.Args))
	for i, a := range r.f.Args {
		out[i] = &InputValue{a}
	}
	return out
}
func (r *Field) Type() *Type              { return WrapType(r.f.Type) }
func (r *Field) IsDeprecated() bool       { return r.f.Deprecated }
func (r *Field) DeprecationReason() *string {
	if !r.f.Deprecated {
		return nil
	}
	reason := r.f.DeprecationReason
	return &reason
}

// InputValue wraps a schema.InputValue for `__InputValue` (arguments and
// input-object fields share this shape per spec §3).
type InputValue struct{ iv *schema.InputValue }

func (r *InputValue) Name() string         { return r.iv.Name }
func (r *InputValue) Description() *string { d := r.iv.Desc; return &d }
func (r *InputValue) Type() *Type          { return WrapType(r.iv.Type) }
func (r *InputValue) DefaultValue() *string {
	if !r.iv.HasDefault {
		return nil
	}
	s := schema.PrintDefaultValue(r.iv.Default)
	return &s
}

// EnumValue wraps a schema.EnumValue for `__EnumValue`.
type EnumValue struct{ v *schema.EnumValue }

func (r *EnumValue) Name() string         { return r.v.Name }
func (r *EnumValue) Description() *string { d := r.v.Desc; return &d }
func (r *EnumValue) IsDeprecated() bool   { return r.v.Deprecated }
func (r *EnumValue) DeprecationReason() *string {
	if !r.v.Deprecated {
		return nil
	}
	reason := r.v.DeprecationReason
	return &reason
}

// Directive wraps a schema.DirectiveDef for `__Directive`.
type Directive struct{ d *schema.DirectiveDef }

func (r *Directive) Name() string         { return r.d.Name }
func (r *Directive) Description() *string { d := r.d.Desc; return &d }
func (r *Directive) Locations() []string  { return r.d.Locations }
func (r *Directive) IsRepeatable() bool   { return r.d.Repeatable }
func (r *Directive) Args() []*InputValue {
	out := make([]*InputValue, len(r.d.Args))
	for i, a := range r.d.Args {
		out[i] = &InputValue{a}
	}
	return out
}

// TypenameOf resolves the `__typename` meta-field from the concrete Object
// the executor resolved the value to.
func TypenameOf(concrete *schema.Object) string {
	if concrete == nil {
		return ""
	}
	return concrete.Name
}
