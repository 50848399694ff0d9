// Package exec implements spec.md §4.7: the executor that walks a
// validated operation against a built schema and root value, producing a
// response value plus a list of collected errors.
//
// Grounded on the teacher's internal/exec/exec.go execNode tree and
// batched-goroutine process loop, generalized from the teacher's
// reflection-only field dispatch to the resolvers package's pluggable
// Resolver chain, and from hard-coded goroutines to the runtime package's
// Runtime capability (spec.md §4.8).
package exec

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/coerce"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/introspection"
	"github.com/lirsacc/graphql/log"
	"github.com/lirsacc/graphql/resolvers"
	"github.com/lirsacc/graphql/runtime"
	"github.com/lirsacc/graphql/schema"
	"github.com/lirsacc/graphql/trace"
)

// Request holds everything a single operation execution needs beyond the
// root value itself: the schema, the operation and its sibling fragments,
// already-coerced variables, and the pluggable capabilities (runtime,
// tracer, logger).
type Request struct {
	Schema    *schema.Schema
	Fragments map[string]*ast.FragmentDefinition
	Variables map[string]interface{}
	Operation *ast.OperationDefinition

	Runtime runtime.Runtime
	Tracer  trace.Tracer
	Logger  log.Logger

	mu   sync.Mutex
	errs []*errors.QueryError
}

func (r *Request) addError(err *errors.QueryError) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// Execute runs r.Operation against root, returning the response data (a
// map[string]interface{}/[]interface{}/scalar tree, or nil if the whole
// operation collapsed to null per non-null propagation) and every error
// collected along the way.
func (r *Request) Execute(ctx context.Context, root interface{}) (interface{}, []*errors.QueryError) {
	rootType := r.Schema.RootOperationType(string(r.Operation.Type))
	if rootType == nil {
		r.addError(errors.NewExecutionError(nil, "schema does not support %s operations", r.Operation.Type))
		return nil, r.errs
	}

	varsForTrace := map[string]interface{}{}
	for k, v := range r.Variables {
		varsForTrace[k] = v
	}
	ctx, finish := r.Tracer.TraceQuery(ctx, "", r.Operation.Name.Name, varsForTrace)

	serial := r.Operation.Type == ast.Mutation
	value, killed := r.executeObjectFields(ctx, rootType, root, r.Operation.Selections, nil, serial)

	finish(r.errs)

	if killed {
		return nil, r.errs
	}
	return value, r.errs
}

// executeObjectFields runs collectFields over selections against
// objectType/objValue, executes each resulting field group — concurrently
// via r.Runtime unless serial is requested (spec.md §5: a mutation's
// top-level fields run strictly serially in document order) — and merges
// the results into a response map. The second return value reports whether
// a non-null violation forced the whole object to collapse to null.
func (r *Request) executeObjectFields(ctx context.Context, objectType *schema.Object, objValue interface{}, selections []ast.Selection, path []interface{}, serial bool) (map[string]interface{}, bool) {
	groups := collectFields(r.Schema, r.Fragments, objectType, selections, r.Variables)

	type outcome struct {
		key       string
		value     interface{}
		propagate bool
	}

	var outcomes []outcome
	if serial {
		for _, g := range groups {
			v, propagate := r.executeField(ctx, objectType, objValue, g, path)
			outcomes = append(outcomes, outcome{g.key, v, propagate})
		}
	} else {
		deferreds := make([]runtime.Deferred, len(groups))
		for i, g := range groups {
			g := g
			deferreds[i] = r.Runtime.Submit(ctx, func(ctx context.Context) (interface{}, error) {
				v, propagate := r.executeField(ctx, objectType, objValue, g, path)
				return outcome{g.key, v, propagate}, nil
			})
		}
		gathered, err := r.Runtime.Gather(ctx, deferreds).Await(ctx)
		if err != nil {
			r.addError(errors.NewExecutionError(path, "%s", err))
			return nil, true
		}
		for _, raw := range gathered.([]interface{}) {
			outcomes = append(outcomes, raw.(outcome))
		}
	}

	result := map[string]interface{}{}
	killed := false
	for _, o := range outcomes {
		if o.propagate {
			killed = true
			continue
		}
		result[o.key] = o.value
	}
	if killed {
		return nil, true
	}
	return result, false
}

// executeField resolves and completes a single response-key field group:
// argument coercion, resolver dispatch (or the introspection meta-field
// special cases), then completeValue. It returns the field's own
// (value, propagate) outcome exactly as completeValue defines them.
func (r *Request) executeField(ctx context.Context, objectType *schema.Object, objValue interface{}, g fieldGroup, parentPath []interface{}) (interface{}, bool) {
	selection := g.fields[0]
	path := append(append([]interface{}{}, parentPath...), g.key)

	var fieldDef *schema.Field
	var resolved interface{}
	var resolveErr error

	switch selection.Name.Name {
	case "__typename":
		fieldDef = introspection.TypenameMetaField()
		resolved = introspection.TypenameOf(objectType)

	case "__schema":
		fieldDef = introspection.SchemaMetaField()
		resolved = introspection.WrapSchema(r.Schema)

	case "__type":
		fieldDef = introspection.TypeMetaField()
		args, err := argumentValuesForField(r.Schema, fieldDef, selection, r.Variables, path)
		if err != nil {
			resolveErr = err
			break
		}
		name, _ := args["name"].(string)
		if t, ok := r.Schema.Types[name]; ok {
			resolved = introspection.WrapType(t)
		}

	default:
		fieldDef = objectType.Fields.Get(selection.Name.Name)
		if fieldDef == nil {
			resolveErr = errors.NewExecutionError(path, "field %q not found on type %q", selection.Name.Name, objectType.Name)
			break
		}
		args, err := argumentValuesForField(r.Schema, fieldDef, selection, r.Variables, path)
		if err != nil {
			resolveErr = err
			break
		}

		trivial := fieldDef.Resolver == nil && len(fieldDef.Args) == 0
		fieldCtx, finish := r.Tracer.TraceField(ctx, "GraphQL field", objectType.Name, fieldDef.Name, trivial, args)
		fieldCtx = withFieldContext(fieldCtx, &FieldContext{
			Object:    objectType,
			Field:     fieldDef,
			Selection: selection,
			Path:      path,
		})

		resolved, resolveErr = r.invokeResolver(fieldCtx, objectType, objValue, fieldDef, selection, args, path)
		if d, ok := resolved.(runtime.Deferred); ok && resolveErr == nil {
			resolved, resolveErr = d.Await(fieldCtx)
		}

		if resolveErr != nil {
			finish(errors.NewResolverError(resolveErr, path))
		} else {
			finish(nil)
		}
	}

	if fieldDef == nil {
		r.addError(asQueryErrorOr(resolveErr, path))
		return nil, true
	}

	mergedSel := mergeSelections(g.fields)
	return r.completeValue(ctx, fieldDef.Type, mergedSel, resolveErr, resolved, path)
}

func argumentValuesForField(s *schema.Schema, fieldDef *schema.Field, selection *ast.Field, variables map[string]interface{}, path []interface{}) (map[string]interface{}, error) {
	return coerce.ArgumentValues(s, fieldDef.Args, selection.Arguments, variables, path)
}

// invokeResolver dispatches to the field's registered resolver, or
// resolvers.Default when none was attached during schema build, recovering
// any panic into a resolver error tagged via r.Logger (spec.md §7: a
// panicking resolver becomes a RESOLVER_ERROR, never a crashed process).
func (r *Request) invokeResolver(ctx context.Context, objectType *schema.Object, objValue interface{}, fieldDef *schema.Field, selection *ast.Field, args map[string]interface{}, path []interface{}) (result interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			if r.Logger != nil {
				r.Logger.LogPanic(ctx, p)
			}
			err = fmt.Errorf("panic occurred: %v", p)
		}
	}()

	resolver, ok := resolvers.AsResolver(fieldDef.Resolver)
	if !ok {
		resolver = resolvers.Default
	}
	info := resolvers.NewInfo(fieldDef, objectType, path, r.Schema, r.Variables, r.Operation, r.Fragments, r.Runtime, selection)
	return resolver.Resolve(ctx, objValue, info, args)
}

// completeValue is called exactly once per "position" — a field slot or a
// list element slot — and implements spec.md §4.7's non-null propagation:
// a position typed NonNull(T) whose value ends up null (whether from a
// resolver error or a nested violation) reports propagate=true so its
// caller's own position absorbs or re-propagates the failure; a nullable
// position always absorbs, returning propagate=false.
func (r *Request) completeValue(ctx context.Context, t schema.Type, selections []ast.Selection, resolveErr error, resolved interface{}, path []interface{}) (interface{}, bool) {
	nonNull := false
	inner := t
	if nn, ok := t.(*schema.NonNull); ok {
		nonNull = true
		inner = nn.OfType
	}

	if resolveErr != nil {
		r.addError(asQueryErrorOr(resolveErr, path))
		return nil, nonNull
	}
	if resolved == nil || isNilValue(resolved) {
		if nonNull {
			r.addError(errors.NewExecutionError(path, "Cannot return null for non-nullable field."))
			return nil, true
		}
		return nil, false
	}

	switch it := inner.(type) {
	case *schema.List:
		items, err := toSlice(resolved)
		if err != nil {
			r.addError(errors.NewExecutionError(path, "%s", err))
			return nil, nonNull
		}
		out := make([]interface{}, len(items))
		killed := false
		for i, item := range items {
			v, propagate := r.completeValue(ctx, it.OfType, selections, nil, item, append(append([]interface{}{}, path...), i))
			if propagate {
				killed = true
				break
			}
			out[i] = v
		}
		if killed {
			return nil, nonNull
		}
		return out, false

	case *schema.Scalar:
		v, err := it.Coerce.Serialize(resolved)
		if err != nil {
			r.addError(errors.NewExecutionError(path, "%s", err))
			return nil, nonNull
		}
		return v, false

	case *schema.Enum:
		name, ok := enumName(resolved)
		if !ok || it.Value(name) == nil {
			r.addError(errors.NewExecutionError(path, "Enum %q does not contain value %v.", it.Name, resolved))
			return nil, nonNull
		}
		return name, false

	case *schema.Object:
		objValue, killed := r.executeObjectFields(ctx, it, resolved, selections, path, false)
		if killed {
			return nil, nonNull
		}
		return objValue, false

	case *schema.Interface:
		concrete, err := r.resolveAbstractType(it.PossibleTypes, it.ResolveType, resolved)
		if err != nil {
			r.addError(err)
			return nil, nonNull
		}
		if concrete == nil {
			r.addError(errors.NewExecutionError(path, "Could not determine concrete type of interface %q for value.", it.Name))
			return nil, nonNull
		}
		objValue, killed := r.executeObjectFields(ctx, concrete, resolved, selections, path, false)
		if killed {
			return nil, nonNull
		}
		return objValue, false

	case *schema.Union:
		concrete, err := r.resolveAbstractType(it.PossibleTypes, it.ResolveType, resolved)
		if err != nil {
			r.addError(err)
			return nil, nonNull
		}
		if concrete == nil {
			r.addError(errors.NewExecutionError(path, "Could not determine concrete type of union %q for value.", it.Name))
			return nil, nonNull
		}
		objValue, killed := r.executeObjectFields(ctx, concrete, resolved, selections, path, false)
		if killed {
			return nil, nonNull
		}
		return objValue, false

	default:
		r.addError(errors.NewExecutionError(path, "unsupported type %q", t.String()))
		return nil, nonNull
	}
}

// resolveAbstractType picks the concrete Object for an interface/union
// value: the schema-declared TypeResolver if one was configured at build
// time, else the default_type_resolver fallback of matching against a
// `__typename`-shaped field/method or the runtime Go type's own name.
func (r *Request) resolveAbstractType(possible []*schema.Object, resolve schema.TypeResolver, value interface{}) (*schema.Object, *errors.QueryError) {
	if resolve != nil {
		return resolve(value), nil
	}
	if name, ok := resolvers.Typename(value); ok {
		for _, obj := range possible {
			if obj.Name == name {
				return obj, nil
			}
		}
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil
	}
	typeName := rv.Type().Name()
	for _, obj := range possible {
		if obj.Name == typeName {
			return obj, nil
		}
	}
	return nil, nil
}

// toSlice adapts an arbitrary Go slice/array value returned by a resolver
// into []interface{}, so list fields aren't constrained to resolvers that
// happen to return exactly that type.
func toSlice(v interface{}) ([]interface{}, error) {
	if items, ok := v.([]interface{}); ok {
		return items, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a list value, got %T", v)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// isNilValue reports whether v is a typed nil (e.g. a nil *Foo boxed in an
// interface{}), which == nil does not catch but which the executor must
// still treat as an absent value.
func isNilValue(v interface{}) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// enumName unboxes a resolver's enum-field return value into its GraphQL
// name: a bare string is used as-is, otherwise a fmt.Stringer (the common
// shape for a Go-native enum type) is consulted.
func enumName(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func asQueryErrorOr(err error, path []interface{}) *errors.QueryError {
	if qe, ok := err.(*errors.QueryError); ok {
		return qe
	}
	return errors.NewResolverError(err, path)
}
