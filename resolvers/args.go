package resolvers

import (
	"fmt"
	"reflect"
	"strings"
)

// PackArgs binds a coerced argument map into a host-language struct,
// implementing spec §9's "typed-argument builder that binds declared
// arguments into a host-language struct when available". Struct fields are
// matched to argument keys case-insensitively, or by an explicit
// `graphql:"name"` tag; unmatched fields are left at their zero value.
//
// argType may itself be the map type (map[string]interface{}) in which
// case args is returned unpacked, for callers that don't want a typed
// struct.
func PackArgs(args map[string]interface{}, argType reflect.Type) (reflect.Value, error) {
	if argType.Kind() == reflect.Map {
		out := reflect.MakeMap(argType)
		for k, v := range args {
			out.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(v))
		}
		return out, nil
	}

	ptrResult := argType.Kind() == reflect.Ptr
	structType := argType
	if ptrResult {
		structType = argType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("resolvers: cannot pack arguments into %s", argType)
	}

	out := reflect.New(structType).Elem()
	for i := 0; i < structType.NumField(); i++ {
		f := structType.Field(i)
		if f.PkgPath != "" {
			continue
		}
		key := f.Tag.Get("graphql")
		if key == "" {
			key = f.Name
		}
		raw, ok := lookupArg(args, key)
		if !ok {
			continue
		}
		if err := assign(out.Field(i), raw); err != nil {
			return reflect.Value{}, fmt.Errorf("resolvers: argument %q: %w", key, err)
		}
	}

	if ptrResult {
		return out.Addr(), nil
	}
	return out, nil
}

func lookupArg(args map[string]interface{}, key string) (interface{}, bool) {
	if v, ok := args[key]; ok {
		return v, true
	}
	for k, v := range args {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// assign coerces raw (already-decoded from coerce.ArgumentValues: a bare
// value, []interface{}, or map[string]interface{}) into dst, following
// pointers and doing the numeric widening reflect.Value.Set doesn't do for
// free (e.g. an int32 GraphQL Int landing in an `int` struct field).
func assign(dst reflect.Value, raw interface{}) error {
	if raw == nil {
		return nil
	}
	rv := reflect.ValueOf(raw)

	if dst.Kind() == reflect.Ptr {
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), raw); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}

	if dst.Kind() == reflect.Slice && rv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(dst.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if err := assign(out.Index(i), rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
		return nil
	}
	if rv.Type().ConvertibleTo(dst.Type()) {
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64, reflect.String, reflect.Bool,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			dst.Set(rv.Convert(dst.Type()))
			return nil
		}
	}
	return fmt.Errorf("cannot assign %T to %s", raw, dst.Type())
}
