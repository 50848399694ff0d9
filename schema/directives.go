package schema

// SchemaDirective implements the side effects of one `directive @name(...)`
// application, invoked once per location it appears at while a schema is
// being built. Every hook is optional: BaseSchemaDirective supplies a
// no-op default for each, mirroring ast.BaseVisitor's embeddable-default
// pattern, so an implementation only overrides the locations it cares
// about.
//
// A hook returning (nil, nil) for the element it was handed means "remove
// this element" — the Go-idiomatic stand-in for the sentinel described in
// spec §4.4 step 5. Removing a type cascades: fields/arguments/interfaces/
// union members referencing it are dropped too, see pruneDanglingRefs in
// apply_directives.go. A hook returning a non-nil error aborts the build with a
// KindSchemaBuild error.
type SchemaDirective interface {
	OnSchema(args map[string]interface{}, s *Schema) (*Schema, error)
	OnScalar(args map[string]interface{}, t *Scalar) (*Scalar, error)
	OnObject(args map[string]interface{}, t *Object) (*Object, error)
	OnField(args map[string]interface{}, parent NamedType, f *Field) (*Field, error)
	OnArgument(args map[string]interface{}, owner interface{}, a *InputValue) (*InputValue, error)
	OnInterface(args map[string]interface{}, t *Interface) (*Interface, error)
	OnUnion(args map[string]interface{}, t *Union) (*Union, error)
	OnEnum(args map[string]interface{}, t *Enum) (*Enum, error)
	OnEnumValue(args map[string]interface{}, parent *Enum, v *EnumValue) (*EnumValue, error)
	OnInputObject(args map[string]interface{}, t *InputObject) (*InputObject, error)
	OnInputField(args map[string]interface{}, parent *InputObject, f *InputValue) (*InputValue, error)
}

// BaseSchemaDirective is embedded by directive implementations that only
// need a subset of hooks; every method returns its element unchanged.
type BaseSchemaDirective struct{}

func (BaseSchemaDirective) OnSchema(_ map[string]interface{}, s *Schema) (*Schema, error) {
	return s, nil
}

func (BaseSchemaDirective) OnScalar(_ map[string]interface{}, t *Scalar) (*Scalar, error) {
	return t, nil
}

func (BaseSchemaDirective) OnObject(_ map[string]interface{}, t *Object) (*Object, error) {
	return t, nil
}

func (BaseSchemaDirective) OnField(_ map[string]interface{}, _ NamedType, f *Field) (*Field, error) {
	return f, nil
}

func (BaseSchemaDirective) OnArgument(_ map[string]interface{}, _ interface{}, a *InputValue) (*InputValue, error) {
	return a, nil
}

func (BaseSchemaDirective) OnInterface(_ map[string]interface{}, t *Interface) (*Interface, error) {
	return t, nil
}

func (BaseSchemaDirective) OnUnion(_ map[string]interface{}, t *Union) (*Union, error) {
	return t, nil
}

func (BaseSchemaDirective) OnEnum(_ map[string]interface{}, t *Enum) (*Enum, error) {
	return t, nil
}

func (BaseSchemaDirective) OnEnumValue(_ map[string]interface{}, _ *Enum, v *EnumValue) (*EnumValue, error) {
	return v, nil
}

func (BaseSchemaDirective) OnInputObject(_ map[string]interface{}, t *InputObject) (*InputObject, error) {
	return t, nil
}

func (BaseSchemaDirective) OnInputField(_ map[string]interface{}, _ *InputObject, f *InputValue) (*InputValue, error) {
	return f, nil
}

var _ SchemaDirective = BaseSchemaDirective{}
