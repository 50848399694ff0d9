package schema

import (
	"strconv"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
)

// coerceDefaultLiteral turns an SDL-position literal (an input value
// default, or a directive argument on a type-system definition) into a Go
// value against its resolved target type. It is deliberately narrower than
// the coerce package's runtime literal coercion: SDL-position literals
// never reference variables, so there's no variable map to thread through,
// and the error paths that matter are schema-build errors, not
// per-request CoercionErrors.
func coerceDefaultLiteral(s *Schema, v ast.Value, t Type) (interface{}, error) {
	if nn, ok := t.(*NonNull); ok {
		if _, isNull := v.(*ast.NullValue); isNull {
			return nil, errors.NewSchemaBuildError("null is not a valid default for non-null type %q", nn.String())
		}
		return coerceDefaultLiteral(s, v, nn.OfType)
	}
	if _, ok := v.(*ast.NullValue); ok {
		return nil, nil
	}

	if list, ok := t.(*List); ok {
		lv, ok := v.(*ast.ListValue)
		if !ok {
			// Single values are auto-wrapped into a one-element list.
			single, err := coerceDefaultLiteral(s, v, list.OfType)
			if err != nil {
				return nil, err
			}
			return []interface{}{single}, nil
		}
		out := make([]interface{}, 0, len(lv.Values))
		for _, e := range lv.Values {
			coerced, err := coerceDefaultLiteral(s, e, list.OfType)
			if err != nil {
				return nil, err
			}
			out = append(out, coerced)
		}
		return out, nil
	}

	switch named := NamedOf(t).(type) {
	case *Scalar:
		raw, err := rawLiteralValue(v)
		if err != nil {
			return nil, err
		}
		return named.Coerce.ParseValue(raw)
	case *Enum:
		ev, ok := v.(*ast.EnumValue)
		if !ok {
			return nil, errors.NewSchemaBuildError("expected enum value for type %q", named.Name)
		}
		if named.Value(ev.Value) == nil {
			return nil, errors.NewSchemaBuildError("unknown value %q for enum %q", ev.Value, named.Name)
		}
		return ev.Value, nil
	case *InputObject:
		obj, ok := v.(*ast.ObjectValue)
		if !ok {
			return nil, errors.NewSchemaBuildError("expected object literal for input type %q", named.Name)
		}
		out := map[string]interface{}{}
		for _, f := range obj.Fields {
			fieldDef := named.Fields.Get(f.Name.Name)
			if fieldDef == nil {
				return nil, errors.NewSchemaBuildError("unknown field %q on input type %q", f.Name.Name, named.Name)
			}
			coerced, err := coerceDefaultLiteral(s, f.Value, fieldDef.Type)
			if err != nil {
				return nil, err
			}
			out[f.Name.Name] = coerced
		}
		for _, fieldDef := range named.Fields {
			if _, ok := out[fieldDef.Name]; !ok {
				if fieldDef.HasDefault {
					out[fieldDef.Name] = fieldDef.Default
				} else if _, isNonNull := fieldDef.Type.(*NonNull); isNonNull {
					return nil, errors.NewSchemaBuildError("missing required field %q for input type %q", fieldDef.Name, named.Name)
				}
			}
		}
		return out, nil
	}

	return nil, errors.NewSchemaBuildError("unsupported default value target type %q", t.String())
}

func rawLiteralValue(v ast.Value) (interface{}, error) {
	switch v := v.(type) {
	case *ast.IntValue:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, errors.NewSchemaBuildError("invalid Int literal %q", v.Value)
		}
		return n, nil
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, errors.NewSchemaBuildError("invalid Float literal %q", v.Value)
		}
		return f, nil
	case *ast.StringValue:
		return v.Value, nil
	case *ast.BooleanValue:
		return v.Value, nil
	case *ast.EnumValue:
		return v.Value, nil
	default:
		return nil, errors.NewSchemaBuildError("unsupported scalar literal")
	}
}
