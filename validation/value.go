package validation

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// validateLiteral walks a literal value wherever it appears (argument,
// directive argument, input object field, default value) checking
// UniqueInputFieldNames and, for variable references, NoUndefinedVariables
// — recording the variable as used on every operation this context spans.
func validateLiteral(c *opContext, v ast.Value) {
	switch v := v.(type) {
	case *ast.ObjectValue:
		seen := make(nameSet)
		for _, f := range v.Fields {
			validateName(c.context, seen, f.Name, "UniqueInputFieldNames", "input field")
			validateLiteral(c, f.Value)
		}
	case *ast.ListValue:
		for _, e := range v.Values {
			validateLiteral(c, e)
		}
	case *ast.Variable:
		for _, op := range c.ops {
			vd := op.Vars.Get(v.Name)
			if vd == nil {
				suffix := ""
				if op.Name.Name != "" {
					suffix = fmt.Sprintf(" by operation %q", op.Name.Name)
				}
				c.opErrs[op] = append(c.opErrs[op], errors.NewValidationError(
					"NoUndefinedVariables",
					[]errors.Location{v.Loc, op.Loc},
					"Variable %q is not defined%s.", "$"+v.Name, suffix,
				))
				continue
			}
			c.usedVars[op][vd] = struct{}{}
		}
	}
}

// validateValueType checks that literal v could legally populate a value of
// type t, recursing through lists and input objects. A bare variable
// reference is always accepted here (its own compatibility with t is
// checked separately by VariablesInAllowedPosition) as is that any cross-
// reference error still gets attached.
func validateValueType(c *opContext, v ast.Value, t schema.Type) (bool, string) {
	if v, ok := v.(*ast.Variable); ok {
		for _, op := range c.ops {
			vd := op.Vars.Get(v.Name)
			if vd == nil {
				continue
			}
			t2, err := schema.ResolveTypeRef(c.schema, vd.Type)
			if err != nil {
				continue
			}
			if _, isNN := t2.(*schema.NonNull); !isNN && vd.Default != nil {
				t2 = &schema.NonNull{OfType: t2}
			}
			if !typeCanBeUsedAs(t2, t) {
				c.addErrMultiLoc([]errors.Location{vd.Loc, v.Loc}, "VariablesInAllowedPosition",
					"Variable %q of type %q used in position expecting type %q.", "$"+v.Name, t2, t)
			}
		}
		return true, ""
	}

	if nn, ok := t.(*schema.NonNull); ok {
		if isNullLiteral(v) {
			return false, fmt.Sprintf("Expected %q, found null.", t)
		}
		t = nn.OfType
	}
	if isNullLiteral(v) {
		return true, ""
	}

	switch t := t.(type) {
	case *schema.List:
		lv, ok := v.(*ast.ListValue)
		if !ok {
			return validateValueType(c, v, t.OfType)
		}
		for i, e := range lv.Values {
			if ok, reason := validateValueType(c, e, t.OfType); !ok {
				return false, fmt.Sprintf("In element #%d: %s", i, reason)
			}
		}
		return true, ""

	case *schema.Scalar:
		if !literalMatchesScalar(v, t.Name) {
			return false, fmt.Sprintf("Expected type %q, found %s.", t.Name, describeLiteral(v))
		}
		return true, ""

	case *schema.Enum:
		ev, ok := v.(*ast.EnumValue)
		if !ok {
			return false, fmt.Sprintf("Expected type %q, found %s.", t.Name, describeLiteral(v))
		}
		if t.Value(ev.Value) == nil {
			return false, fmt.Sprintf("Expected type %q, found %s.", t.Name, ev.Value)
		}
		return true, ""

	case *schema.InputObject:
		ov, ok := v.(*ast.ObjectValue)
		if !ok {
			return false, fmt.Sprintf("Expected %q, found not an object.", t.Name)
		}
		for _, f := range ov.Fields {
			iv := t.Fields.Get(f.Name.Name)
			if iv == nil {
				return false, fmt.Sprintf("In field %q: Unknown field.", f.Name.Name)
			}
			if ok, reason := validateValueType(c, f.Value, iv.Type); !ok {
				return false, fmt.Sprintf("In field %q: %s", f.Name.Name, reason)
			}
		}
		for _, iv := range t.Fields {
			found := false
			for _, f := range ov.Fields {
				if f.Name.Name == iv.Name {
					found = true
					break
				}
			}
			if !found {
				if _, isNN := iv.Type.(*schema.NonNull); isNN && !iv.HasDefault {
					return false, fmt.Sprintf("In field %q: Expected %q, found null.", iv.Name, iv.Type)
				}
			}
		}
		return true, ""
	}

	return false, fmt.Sprintf("Expected type %q, found %s.", t, describeLiteral(v))
}

func isNullLiteral(v ast.Value) bool {
	_, ok := v.(*ast.NullValue)
	return ok
}

func describeLiteral(v ast.Value) string {
	switch v := v.(type) {
	case *ast.StringValue:
		return fmt.Sprintf("%q", v.Value)
	case *ast.IntValue:
		return v.Value
	case *ast.FloatValue:
		return v.Value
	case *ast.BooleanValue:
		return fmt.Sprintf("%v", v.Value)
	case *ast.EnumValue:
		return v.Value
	case *ast.ListValue:
		return "a list"
	case *ast.ObjectValue:
		return "an object"
	default:
		return "a value"
	}
}

func literalMatchesScalar(v ast.Value, scalarName string) bool {
	switch scalarName {
	case "Int":
		_, ok := v.(*ast.IntValue)
		return ok
	case "Float":
		switch v.(type) {
		case *ast.IntValue, *ast.FloatValue:
			return true
		}
		return false
	case "String":
		_, ok := v.(*ast.StringValue)
		return ok
	case "Boolean":
		_, ok := v.(*ast.BooleanValue)
		return ok
	case "ID":
		switch v.(type) {
		case *ast.IntValue, *ast.StringValue:
			return true
		}
		return false
	default:
		// custom scalars accept any literal shape; actual coercion is
		// deferred to the coerce package at execution time.
		return true
	}
}

// validateVariableValue checks a decoded runtime variable value against its
// declared type, for the VariablesOfCorrectType rule — distinct from
// validateValueType, which checks literal syntax rather than already-
// decoded Go values.
func validateVariableValue(c *opContext, vd *ast.VariableDefinition, val interface{}, t schema.Type) {
	switch t := t.(type) {
	case *schema.NonNull:
		if val == nil {
			c.addErr(vd.Loc, "VariablesOfCorrectType", "Variable %q has invalid value null.\nExpected type %q, found null.", "$"+vd.Name.Name, t)
			return
		}
		validateVariableValue(c, vd, val, t.OfType)
	case *schema.List:
		if val == nil {
			return
		}
		vv, ok := val.([]interface{})
		if !ok {
			validateVariableValue(c, vd, val, t.OfType)
			return
		}
		for _, e := range vv {
			validateVariableValue(c, vd, e, t.OfType)
		}
	case *schema.Enum:
		if val == nil {
			return
		}
		name, ok := val.(string)
		if !ok || t.Value(name) == nil {
			c.addErr(vd.Loc, "VariablesOfCorrectType", "Variable %q has invalid value %v.\nExpected type %q.", "$"+vd.Name.Name, val, t)
		}
	case *schema.InputObject:
		if val == nil {
			return
		}
		in, ok := val.(map[string]interface{})
		if !ok {
			c.addErr(vd.Loc, "VariablesOfCorrectType", "Variable %q has invalid type %T.\nExpected type %q.", "$"+vd.Name.Name, val, t)
			return
		}
		for _, f := range t.Fields {
			validateVariableValue(c, vd, in[f.Name], f.Type)
		}
	}
}
