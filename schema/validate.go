package schema

import (
	"github.com/lirsacc/graphql/errors"
)

// Validate checks every invariant of spec §3 against a fully hydrated
// Schema and returns one KindSchemaValidation error per violation found.
// Build calls this as its last step; a schema obtained any other way
// should call it too before being handed to a validator or executor.
func (s *Schema) Validate() []*errors.QueryError {
	var errs []*errors.QueryError

	if s.Query == nil {
		errs = append(errs, errors.NewSchemaValidationError(errors.Location{}, "schema has no Query root type"))
	}

	for name, t := range s.Types {
		if t.TypeName() != name {
			errs = append(errs, errors.NewSchemaValidationError(t.Location(), "type registered as %q but named %q", name, t.TypeName()))
		}

		switch t := t.(type) {
		case *Object:
			errs = append(errs, validateFields(t.Fields, t.Loc)...)
			for _, iface := range t.Interfaces {
				errs = append(errs, validateImplements(t, iface)...)
			}
		case *Interface:
			errs = append(errs, validateFields(t.Fields, t.Loc)...)
		case *Union:
			if len(t.PossibleTypes) == 0 {
				errs = append(errs, errors.NewSchemaValidationError(t.Loc, "union %q has no member types", t.Name))
			}
		case *Enum:
			if len(t.Values) == 0 {
				errs = append(errs, errors.NewSchemaValidationError(t.Loc, "enum %q has no values", t.Name))
			}
		case *InputObject:
			for _, f := range t.Fields {
				if !IsInputType(f.Type) {
					errs = append(errs, errors.NewSchemaValidationError(f.Loc, "input field %s.%s has non-input type %s", t.Name, f.Name, f.Type.String()))
				}
			}
			errs = append(errs, validateInputCycles(t)...)
		}
	}

	return errs
}

// validateFields checks invariants (iv) output-type-position and, via
// validateArgs, (iii) input-type-position for every argument.
func validateFields(fields FieldList, parentLoc errors.Location) []*errors.QueryError {
	var errs []*errors.QueryError
	if len(fields) == 0 {
		errs = append(errs, errors.NewSchemaValidationError(parentLoc, "type has no fields"))
	}
	for _, f := range fields {
		if !IsOutputType(f.Type) {
			errs = append(errs, errors.NewSchemaValidationError(f.Loc, "field %q has non-output type %s", f.Name, f.Type.String()))
		}
		errs = append(errs, validateNonNullWrapping(f.Type, f.Loc)...)
		for _, a := range f.Args {
			if !IsInputType(a.Type) {
				errs = append(errs, errors.NewSchemaValidationError(a.Loc, "argument %q has non-input type %s", a.Name, a.Type.String()))
			}
			errs = append(errs, validateNonNullWrapping(a.Type, a.Loc)...)
		}
	}
	return errs
}

// validateNonNullWrapping checks invariant (vi): NonNull may only wrap a
// nullable type, never another NonNull.
func validateNonNullWrapping(t Type, loc errors.Location) []*errors.QueryError {
	nn, ok := t.(*NonNull)
	if !ok {
		return nil
	}
	if _, ok := nn.OfType.(*NonNull); ok {
		return []*errors.QueryError{errors.NewSchemaValidationError(loc, "NonNull wraps another NonNull: %s", t.String())}
	}
	return validateNonNullWrapping(nn.OfType, loc)
}

// validateImplements checks invariant (v): every field the interface
// declares must exist on the object with a covariant (same-or-narrower)
// type and argument list.
func validateImplements(obj *Object, iface *Interface) []*errors.QueryError {
	var errs []*errors.QueryError
	for _, ifField := range iface.Fields {
		objField := obj.Fields.Get(ifField.Name)
		if objField == nil {
			errs = append(errs, errors.NewSchemaValidationError(obj.Loc, "%s does not implement field %s.%s required by interface %s", obj.Name, iface.Name, ifField.Name, iface.Name))
			continue
		}
		if !isCovariant(objField.Type, ifField.Type) {
			errs = append(errs, errors.NewSchemaValidationError(objField.Loc, "%s.%s type %s is not covariant with %s.%s type %s", obj.Name, objField.Name, objField.Type, iface.Name, ifField.Name, ifField.Type))
		}
		for _, ifArg := range ifField.Args {
			objArg := objField.Args.Get(ifArg.Name)
			if objArg == nil || objArg.Type.String() != ifArg.Type.String() {
				errs = append(errs, errors.NewSchemaValidationError(objField.Loc, "%s.%s argument %s does not match interface %s.%s", obj.Name, objField.Name, ifArg.Name, iface.Name, ifField.Name))
			}
		}
	}
	return errs
}

// isCovariant reports whether sub may stand in for super in a field
// implementing an interface field: identical types, a narrower NonNull, an
// object implementing a required interface, or a union member.
func isCovariant(sub, super Type) bool {
	if sub.String() == super.String() {
		return true
	}
	if nn, ok := sub.(*NonNull); ok {
		return isCovariant(nn.OfType, super)
	}
	if subList, ok := sub.(*List); ok {
		if superList, ok := super.(*List); ok {
			return isCovariant(subList.OfType, superList.OfType)
		}
		return false
	}
	if obj, ok := sub.(*Object); ok {
		if iface, ok := super.(*Interface); ok {
			return obj.Implements(iface.Name)
		}
		if union, ok := super.(*Union); ok {
			for _, m := range union.PossibleTypes {
				if m.Name == obj.Name {
					return true
				}
			}
		}
	}
	return false
}

// validateInputCycles checks invariant (vii): an input object whose field
// graph contains a non-nullable, non-list cycle can never be satisfied by
// any literal or variable value.
func validateInputCycles(root *InputObject) []*errors.QueryError {
	visiting := map[string]bool{}
	var walk func(t *InputObject) *errors.QueryError
	walk = func(t *InputObject) *errors.QueryError {
		if visiting[t.Name] {
			return errors.NewSchemaValidationError(t.Loc, "input object %q has a non-nullable reference cycle", t.Name)
		}
		visiting[t.Name] = true
		defer delete(visiting, t.Name)
		for _, f := range t.Fields {
			nn, ok := f.Type.(*NonNull)
			if !ok {
				continue // nullable edge breaks the cycle
			}
			if io, ok := nn.OfType.(*InputObject); ok {
				if err := walk(io); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return []*errors.QueryError{err}
	}
	return nil
}
