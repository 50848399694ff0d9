package introspection

import "github.com/lirsacc/graphql/schema"

// The meta-schema below gives the executor a real *schema.Object graph for
// `__Schema`/`__Type`/`__Field`/`__InputValue`/`__EnumValue`/`__Directive`
// so introspection fields walk through exactly the same collect/resolve/
// complete machinery as any user-defined field — the wrapper types above
// supply the Go values; schema.Field.Resolver is left nil on every meta
// field so the executor's default (reflection) resolver dispatch chain
// finds the matching wrapper method by name.
//
// Built once, eagerly in init(), since the six types form a cycle (Type
// references Field which references Type again).

var (
	typeKindEnum            *schema.Enum
	directiveLocationEnum   *schema.Enum
	schemaType              *schema.Object
	typeType                *schema.Object
	fieldType               *schema.Object
	inputValueType          *schema.Object
	enumValueType           *schema.Object
	directiveType           *schema.Object
)

func init() {
	typeKindEnum = &schema.Enum{
		Name: "__TypeKind",
		Desc: "An enum describing what kind of type a given `__Type` is.",
	}
	for _, v := range []string{"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"} {
		typeKindEnum.Values = append(typeKindEnum.Values, &schema.EnumValue{Name: v})
	}

	directiveLocationEnum = &schema.Enum{
		Name: "__DirectiveLocation",
		Desc: "A Directive can be adjacent to many parts of the GraphQL language.",
	}
	for _, v := range []string{
		"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION",
		"FRAGMENT_SPREAD", "INLINE_FRAGMENT", "VARIABLE_DEFINITION",
		"SCHEMA", "SCALAR", "OBJECT", "FIELD_DEFINITION", "ARGUMENT_DEFINITION",
		"INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT",
		"INPUT_FIELD_DEFINITION",
	} {
		directiveLocationEnum.Values = append(directiveLocationEnum.Values, &schema.EnumValue{Name: v})
	}

	str := &schema.NonNull{OfType: schema.StringType()}
	boolT := &schema.NonNull{OfType: schema.BooleanType()}

	schemaType = &schema.Object{Name: "__Schema", Desc: "A GraphQL Schema defines the capabilities of a GraphQL server."}
	typeType = &schema.Object{Name: "__Type", Desc: "The fundamental unit of any GraphQL Schema is the type."}
	fieldType = &schema.Object{Name: "__Field"}
	inputValueType = &schema.Object{Name: "__InputValue"}
	enumValueType = &schema.Object{Name: "__EnumValue"}
	directiveType = &schema.Object{Name: "__Directive"}

	nonNullList := func(of schema.Type) schema.Type { return &schema.NonNull{OfType: &schema.List{OfType: &schema.NonNull{OfType: of}}} }
	nullableList := func(of schema.Type) schema.Type { return &schema.List{OfType: &schema.NonNull{OfType: of}} }
	includeDeprecatedArg := schema.InputValueList{{Name: "includeDeprecated", Type: schema.BooleanType(), Default: false, HasDefault: true}}

	schemaType.Fields = schema.FieldList{
		{Name: "description", Type: schema.StringType()},
		{Name: "types", Type: nonNullList(typeType)},
		{Name: "queryType", Type: &schema.NonNull{OfType: typeType}},
		{Name: "mutationType", Type: typeType},
		{Name: "subscriptionType", Type: typeType},
		{Name: "directives", Type: nonNullList(directiveType)},
	}

	typeType.Fields = schema.FieldList{
		{Name: "kind", Type: &schema.NonNull{OfType: typeKindEnum}},
		{Name: "name", Type: schema.StringType()},
		{Name: "description", Type: schema.StringType()},
		{Name: "fields", Type: nullableList(fieldType), Args: includeDeprecatedArg},
		{Name: "interfaces", Type: nullableList(typeType)},
		{Name: "possibleTypes", Type: nullableList(typeType)},
		{Name: "enumValues", Type: nullableList(enumValueType), Args: includeDeprecatedArg},
		{Name: "inputFields", Type: nullableList(inputValueType)},
		{Name: "ofType", Type: typeType},
	}

	fieldType.Fields = schema.FieldList{
		{Name: "name", Type: str},
		{Name: "description", Type: schema.StringType()},
		{Name: "args", Type: nonNullList(inputValueType)},
		{Name: "type", Type: &schema.NonNull{OfType: typeType}},
		{Name: "isDeprecated", Type: boolT},
		{Name: "deprecationReason", Type: schema.StringType()},
	}

	inputValueType.Fields = schema.FieldList{
		{Name: "name", Type: str},
		{Name: "description", Type: schema.StringType()},
		{Name: "type", Type: &schema.NonNull{OfType: typeType}},
		{Name: "defaultValue", Type: schema.StringType()},
	}

	enumValueType.Fields = schema.FieldList{
		{Name: "name", Type: str},
		{Name: "description", Type: schema.StringType()},
		{Name: "isDeprecated", Type: boolT},
		{Name: "deprecationReason", Type: schema.StringType()},
	}

	directiveType.Fields = schema.FieldList{
		{Name: "name", Type: str},
		{Name: "description", Type: schema.StringType()},
		{Name: "locations", Type: nonNullList(directiveLocationEnum)},
		{Name: "args", Type: nonNullList(inputValueType)},
		{Name: "isRepeatable", Type: boolT},
	}
}

// SchemaType returns the `__Schema` meta-type.
func SchemaType() *schema.Object { return schemaType }

// TypeType returns the `__Type` meta-type.
func TypeType() *schema.Object { return typeType }

// TypeKindEnum returns the `__TypeKind` meta-enum.
func TypeKindEnum() *schema.Enum { return typeKindEnum }

// SchemaMetaField builds the synthetic `__schema: __Schema!` field the
// executor exposes on the query root type.
func SchemaMetaField() *schema.Field {
	return &schema.Field{Name: "__schema", Type: &schema.NonNull{OfType: schemaType}}
}

// TypeMetaField builds the synthetic `__type(name: String!): __Type` field
// the executor exposes on the query root type.
func TypeMetaField() *schema.Field {
	return &schema.Field{
		Name: "__type",
		Type: typeType,
		Args: schema.InputValueList{{Name: "name", Type: &schema.NonNull{OfType: schema.StringType()}}},
	}
}

// TypenameMetaField builds the synthetic `__typename: String!` field the
// executor exposes on every composite type.
func TypenameMetaField() *schema.Field {
	return &schema.Field{Name: "__typename", Type: &schema.NonNull{OfType: schema.StringType()}}
}
