// Package coerce implements spec §4.6's two coercion routines: turning a
// caller-supplied, already JSON-decoded variables map into the coerced
// variable map an execution runs against, and turning an AST value node
// (an argument, a directive argument, an input object field) into a Go
// value against its declared target type, resolving variable references
// along the way.
//
// Both routines share the same null/missing/list-auto-wrap/input-object
// field-walking shape as schema.coerceDefaultLiteral, generalized to also
// accept raw (non-AST) values for variables and to thread a variable map
// through literal coercion — schema/literal.go stays narrower because SDL
// defaults can never reference a variable.
package coerce

import (
	"fmt"
	"strconv"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// VariableValues coerces raw (the operation's caller-supplied variables,
// already JSON-decoded) against defs, filling in defaults and rejecting
// missing/null values for non-null variables. The result is what
// coerceLiteral consults when it encounters a $variable reference.
func VariableValues(s *schema.Schema, defs ast.VariableDefinitionList, raw map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(defs))
	for _, def := range defs {
		t, err := schema.ResolveTypeRef(s, def.Type)
		if err != nil {
			return nil, asQueryError(err)
		}
		path := []interface{}{def.Name.Name}

		val, has := raw[def.Name.Name]
		if !has || val == nil {
			if !has && def.Default != nil {
				dv, err := coerceLiteral(s, def.Default, t, nil, path)
				if err != nil {
					return nil, err
				}
				out[def.Name.Name] = dv
				continue
			}
			if _, ok := t.(*schema.NonNull); ok {
				return nil, errors.NewCoercionError(path, "Variable %q of required type %q was not provided.", "$"+def.Name.Name, t)
			}
			out[def.Name.Name] = nil
			continue
		}

		coerced, err := coerceValue(s, val, t, path)
		if err != nil {
			return nil, err
		}
		out[def.Name.Name] = coerced
	}
	return out, nil
}

// coerceValue coerces a raw, already-decoded Go value (typically produced
// by a JSON decoder: map[string]interface{}, []interface{}, string,
// float64, bool, nil) against t.
func coerceValue(s *schema.Schema, v interface{}, t schema.Type, path []interface{}) (interface{}, error) {
	if nn, ok := t.(*schema.NonNull); ok {
		if v == nil {
			return nil, errors.NewCoercionError(path, "Expected non-null value, got null for type %q.", nn.String())
		}
		return coerceValue(s, v, nn.OfType, path)
	}
	if v == nil {
		return nil, nil
	}

	if list, ok := t.(*schema.List); ok {
		items, ok := v.([]interface{})
		if !ok {
			// A single value is auto-wrapped into a one-element list.
			single, err := coerceValue(s, v, list.OfType, append(path, 0))
			if err != nil {
				return nil, err
			}
			return []interface{}{single}, nil
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			coerced, err := coerceValue(s, item, list.OfType, append(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil
	}

	switch named := schema.NamedOf(t).(type) {
	case *schema.Scalar:
		coerced, err := named.Coerce.ParseValue(v)
		if err != nil {
			return nil, errors.NewCoercionError(path, "Expected type %q, found %v: %s.", named.Name, v, err)
		}
		return coerced, nil
	case *schema.Enum:
		name, ok := v.(string)
		if !ok || named.Value(name) == nil {
			return nil, errors.NewCoercionError(path, "Value %v does not exist in enum %q.", v, named.Name)
		}
		return name, nil
	case *schema.InputObject:
		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, errors.NewCoercionError(path, "Expected object value for input type %q.", named.Name)
		}
		out := map[string]interface{}{}
		for k := range obj {
			if named.Fields.Get(k) == nil {
				return nil, errors.NewCoercionError(append(path, k), "Field %q is not defined by input type %q.", k, named.Name)
			}
		}
		for _, fieldDef := range named.Fields {
			p := append(path, fieldDef.Name)
			raw, has := obj[fieldDef.Name]
			if !has || raw == nil {
				if !has && fieldDef.HasDefault {
					out[fieldDef.Name] = fieldDef.Default
					continue
				}
				if _, isNonNull := fieldDef.Type.(*schema.NonNull); isNonNull {
					return nil, errors.NewCoercionError(p, "Field %q of required type %q was not provided.", fieldDef.Name, fieldDef.Type)
				}
				out[fieldDef.Name] = nil
				continue
			}
			coerced, err := coerceValue(s, raw, fieldDef.Type, p)
			if err != nil {
				return nil, err
			}
			out[fieldDef.Name] = coerced
		}
		return out, nil
	default:
		return nil, errors.NewCoercionError(path, "Unsupported input target type %q.", t.String())
	}
}

// ArgumentValues coerces a field or directive call's argument list against
// argDefs, resolving $variable references against variables (already
// coerced by VariableValues) and applying argument defaults. path is the
// field/directive location the caller is coercing arguments for.
func ArgumentValues(s *schema.Schema, argDefs schema.InputValueList, args ast.ArgumentList, variables map[string]interface{}, path []interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(argDefs))
	for _, def := range argDefs {
		p := append(append([]interface{}{}, path...), def.Name)
		val, has := args.Get(def.Name)
		if !has {
			if def.HasDefault {
				out[def.Name] = def.Default
			} else if _, ok := def.Type.(*schema.NonNull); ok {
				return nil, errors.NewCoercionError(p, "Argument %q of required type %q was not provided.", def.Name, def.Type)
			}
			continue
		}
		coerced, err := coerceLiteral(s, val, def.Type, variables, p)
		if err != nil {
			return nil, err
		}
		out[def.Name] = coerced
	}
	return out, nil
}

// Literal coerces a single AST value node against t, resolving variable
// references against variables. Exported for the resolvers package, which
// needs the same routine to coerce directive-argument literals for
// Info.GetDirectiveArguments/GetAllDirectiveArguments.
func Literal(s *schema.Schema, v ast.Value, t schema.Type, variables map[string]interface{}, path []interface{}) (interface{}, error) {
	return coerceLiteral(s, v, t, variables, path)
}

// coerceLiteral coerces a single AST value node against t, resolving
// variable references against variables. Used for argument/directive
// argument coercion, where the value comes from parsed query source rather
// than a caller-supplied variables map.
func coerceLiteral(s *schema.Schema, v ast.Value, t schema.Type, variables map[string]interface{}, path []interface{}) (interface{}, error) {
	if vr, ok := v.(*ast.Variable); ok {
		// Validation's VariablesInAllowedPosition already checked that a
		// nullable variable never lands in a non-null argument position
		// unless it carries a matching default, so a lookup miss here
		// means the variable coerced to null, which is what we return.
		return variables[vr.Name], nil
	}

	if nn, ok := t.(*schema.NonNull); ok {
		if _, isNull := v.(*ast.NullValue); isNull {
			return nil, errors.NewCoercionError(path, "Expected non-null value, got null for type %q.", nn.String())
		}
		return coerceLiteral(s, v, nn.OfType, variables, path)
	}
	if _, isNull := v.(*ast.NullValue); isNull {
		return nil, nil
	}

	if list, ok := t.(*schema.List); ok {
		lv, ok := v.(*ast.ListValue)
		if !ok {
			single, err := coerceLiteral(s, v, list.OfType, variables, append(path, 0))
			if err != nil {
				return nil, err
			}
			return []interface{}{single}, nil
		}
		out := make([]interface{}, len(lv.Values))
		for i, e := range lv.Values {
			coerced, err := coerceLiteral(s, e, list.OfType, variables, append(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil
	}

	switch named := schema.NamedOf(t).(type) {
	case *schema.Scalar:
		raw, err := literalRawValue(v)
		if err != nil {
			return nil, errors.NewCoercionError(path, "%s", err)
		}
		coerced, err := named.Coerce.ParseValue(raw)
		if err != nil {
			return nil, errors.NewCoercionError(path, "Expected type %q, found %v: %s.", named.Name, raw, err)
		}
		return coerced, nil
	case *schema.Enum:
		ev, ok := v.(*ast.EnumValue)
		if !ok {
			return nil, errors.NewCoercionError(path, "Enum %q must be represented as an unquoted name.", named.Name)
		}
		if named.Value(ev.Value) == nil {
			return nil, errors.NewCoercionError(path, "Value %q does not exist in enum %q.", ev.Value, named.Name)
		}
		return ev.Value, nil
	case *schema.InputObject:
		obj, ok := v.(*ast.ObjectValue)
		if !ok {
			return nil, errors.NewCoercionError(path, "Expected object literal for input type %q.", named.Name)
		}
		out := map[string]interface{}{}
		for _, f := range obj.Fields {
			fieldDef := named.Fields.Get(f.Name.Name)
			if fieldDef == nil {
				return nil, errors.NewCoercionError(append(path, f.Name.Name), "Field %q is not defined by input type %q.", f.Name.Name, named.Name)
			}
			coerced, err := coerceLiteral(s, f.Value, fieldDef.Type, variables, append(path, f.Name.Name))
			if err != nil {
				return nil, err
			}
			out[fieldDef.Name] = coerced
		}
		for _, fieldDef := range named.Fields {
			if _, ok := out[fieldDef.Name]; ok {
				continue
			}
			p := append(path, fieldDef.Name)
			if fieldDef.HasDefault {
				out[fieldDef.Name] = fieldDef.Default
			} else if _, isNonNull := fieldDef.Type.(*schema.NonNull); isNonNull {
				return nil, errors.NewCoercionError(p, "Field %q of required type %q was not provided.", fieldDef.Name, fieldDef.Type)
			}
		}
		return out, nil
	default:
		return nil, errors.NewCoercionError(path, "Unsupported input target type %q.", t.String())
	}
}

// literalRawValue unboxes an AST scalar literal into the plain Go value a
// ScalarCoercion.ParseValue implementation expects, matching
// schema.rawLiteralValue's shape for the runtime (variable-aware) path.
func literalRawValue(v ast.Value) (interface{}, error) {
	switch v := v.(type) {
	case *ast.IntValue:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Int literal %q", v.Value)
		}
		return n, nil
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Float literal %q", v.Value)
		}
		return f, nil
	case *ast.StringValue:
		return v.Value, nil
	case *ast.BooleanValue:
		return v.Value, nil
	case *ast.EnumValue:
		return v.Value, nil
	default:
		return nil, fmt.Errorf("unsupported scalar literal")
	}
}

func asQueryError(err error) *errors.QueryError {
	if qe, ok := err.(*errors.QueryError); ok {
		return qe
	}
	return errors.Errorf("%s", err)
}
