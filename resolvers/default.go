package resolvers

import (
	"context"
	"reflect"
	"strings"
)

// Default implements spec §4.7 step 4's default resolver dispatch chain,
// consulted when a field declares no explicit resolver: mapping-style key
// lookup, then struct field lookup, then bound-method invocation — in that
// order, first match wins. Generic callable-typed struct fields or map
// values are never invoked (spec §9's open question, resolved as "methods
// only").
var Default Resolver = ResolverFunc(defaultResolve)

func defaultResolve(ctx context.Context, root interface{}, info *Info, args map[string]interface{}) (interface{}, error) {
	if root == nil {
		return nil, nil
	}
	key := info.FieldDef.AlternateName
	if key == "" {
		key = info.FieldDef.Name
	}

	v := reflect.ValueOf(root)

	if mv, ok := lookupMap(v, key); ok {
		return mv, nil
	}

	deref := v
	for deref.Kind() == reflect.Ptr || deref.Kind() == reflect.Interface {
		if deref.IsNil() {
			return nil, nil
		}
		deref = deref.Elem()
	}

	if deref.Kind() == reflect.Struct {
		if fv, ok := lookupField(deref, key); ok {
			return fv.Interface(), nil
		}
	}

	if method, ok := lookupMethod(v, key); ok {
		return callMethod(ctx, method, info, args)
	}

	return nil, nil
}

func lookupMap(v reflect.Value, key string) (interface{}, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	mv := v.MapIndex(reflect.ValueOf(key))
	if !mv.IsValid() {
		return nil, false
	}
	return mv.Interface(), true
}

// lookupField matches key exactly against a struct field's `graphql` tag,
// or case-insensitively against its name — the same normalization the teacher's
// resolvers.go applies to method names, applied here to fields too so
// `AlternateName`/`python_name`-style host keys line up regardless of Go's
// exported-field capitalization.
func lookupField(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if tag := f.Tag.Get("graphql"); tag != "" && tag == key {
			return v.Field(i), true
		}
		if normalize(f.Name) == normalize(key) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// lookupMethod finds a bound method whose normalized name matches key.
// Only methods are ever invoked — a struct field or map value that happens
// to hold a func is never called, matching spec §9's resolved open
// question.
func lookupMethod(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		if normalize(t.Method(i).Name) == normalize(key) {
			return v.Method(i), true
		}
	}
	return reflect.Value{}, false
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// Typename applies the same map/attribute/method dispatch chain as
// Default, looking specifically for a "__typename" key/field/method — the
// fallback the executor consults for abstract (interface/union) type
// resolution when no explicit TypeResolver/resolve_type is configured.
func Typename(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	v := reflect.ValueOf(value)
	if mv, ok := lookupMap(v, "__typename"); ok {
		if s, ok := mv.(string); ok {
			return s, true
		}
	}
	deref := v
	for deref.Kind() == reflect.Ptr || deref.Kind() == reflect.Interface {
		if deref.IsNil() {
			return "", false
		}
		deref = deref.Elem()
	}
	if deref.Kind() == reflect.Struct {
		if fv, ok := lookupField(deref, "__typename"); ok {
			if s, ok := fv.Interface().(string); ok {
				return s, true
			}
		}
	}
	if method, ok := lookupMethod(v, "__typename"); ok {
		out := method.Call(nil)
		if len(out) == 1 {
			if s, ok := out[0].Interface().(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// callMethod invokes a resolver method found by lookupMethod. Supported
// signatures, in the combinations the teacher's MethodResolverFactory
// supports: an optional leading context.Context, an optional trailing
// struct of packed arguments, and either a single return value or a
// (value, error) pair.
func callMethod(ctx context.Context, method reflect.Value, info *Info, args map[string]interface{}) (interface{}, error) {
	mt := method.Type()
	var in []reflect.Value

	idx := 0
	if mt.NumIn() > idx && mt.In(idx) == reflect.TypeOf((*context.Context)(nil)).Elem() {
		in = append(in, reflect.ValueOf(ctx))
		idx++
	}
	if mt.NumIn() > idx {
		argType := mt.In(idx)
		packed, err := PackArgs(args, argType)
		if err != nil {
			return nil, err
		}
		in = append(in, packed)
	}

	out := method.Call(in)
	if len(out) == 2 {
		if errVal := out[1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}
	return out[0].Interface(), nil
}
