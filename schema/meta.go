package schema

// meta.go defines the built-in scalars and directives every Schema starts
// from — the GraphQL spec's fixed pre-amble (`Int`, `Float`, `String`,
// `Boolean`, `ID`, `@include`, `@skip`, `@deprecated`). These are shared,
// singleton instances: every Schema's Types/Directives maps point at the
// same *Scalar/*DirectiveDef values, so `==` comparison works for identity
// checks in the validator and executor.

var (
	intType     = &Scalar{Name: "Int", Desc: "The `Int` scalar type represents non-fractional signed whole numeric values.", Coerce: intCoercion{}}
	floatType   = &Scalar{Name: "Float", Desc: "The `Float` scalar type represents signed double-precision fractional values.", Coerce: floatCoercion{}}
	stringType  = &Scalar{Name: "String", Desc: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.", Coerce: stringCoercion{}}
	booleanType = &Scalar{Name: "Boolean", Desc: "The `Boolean` scalar type represents `true` or `false`.", Coerce: booleanCoercion{}}
	idType      = &Scalar{Name: "ID", Desc: "The `ID` scalar type represents a unique identifier.", Coerce: idCoercion{}}
)

// StringType, BooleanType and friends expose the shared builtin scalar
// singletons for callers outside this package that need to build ad hoc
// schema.Field/InputValue definitions against them — the introspection
// package's meta-schema being the sole such caller.
func StringType() *Scalar  { return stringType }
func BooleanType() *Scalar { return booleanType }
func IntType() *Scalar     { return intType }
func FloatType() *Scalar   { return floatType }
func IDType() *Scalar      { return idType }

func builtinScalars() map[string]*Scalar {
	return map[string]*Scalar{
		"Int":     intType,
		"Float":   floatType,
		"String":  stringType,
		"Boolean": booleanType,
		"ID":      idType,
	}
}

var (
	skipDirective = &DirectiveDef{
		Name:      "skip",
		Desc:      "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
		Args:      InputValueList{{Name: "if", Type: &NonNull{OfType: booleanType}, Desc: "Skipped when true."}},
	}
	includeDirective = &DirectiveDef{
		Name:      "include",
		Desc:      "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
		Args:      InputValueList{{Name: "if", Type: &NonNull{OfType: booleanType}, Desc: "Included when true."}},
	}
	deprecatedDirective = &DirectiveDef{
		Name:      "deprecated",
		Desc:      "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []string{"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"},
		Args:      InputValueList{{Name: "reason", Type: stringType, Default: "No longer supported", HasDefault: true}},
	}
)
