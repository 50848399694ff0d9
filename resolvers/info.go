// Package resolvers defines the resolver contract the executor dispatches
// to, the default (reflection-based) dispatch chain used when a field
// declares no explicit resolver, and the per-field ResolveInfo context
// handed to every resolver call.
//
// Grounded on the teacher's resolvers/resolvers.go ResolverFactory chain
// (MapResolverFactory, FieldResolverFactory, MethodResolverFactory), ported
// from reflect.Value-typed dispatch to the interface{}-typed values this
// module's executor passes around, and narrowed per spec §9's open
// question: only bound methods are ever invoked, never arbitrary
// callable-typed struct fields or map values.
package resolvers

import (
	"context"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/coerce"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// Info is the per-field execution context delivered to every resolver
// call, matching spec §4.7 step 3's ResolveInfo shape.
type Info struct {
	FieldDef   *schema.Field
	ParentType schema.NamedType
	Path       []interface{}
	Schema     *schema.Schema
	Variables  map[string]interface{}
	Operation  *ast.OperationDefinition
	Fragments  map[string]*ast.FragmentDefinition
	Runtime    interface{}

	selection *ast.Field
}

// NewInfo builds an Info; selection is retained privately for the
// directive-argument helpers below.
func NewInfo(fieldDef *schema.Field, parentType schema.NamedType, path []interface{}, s *schema.Schema, variables map[string]interface{}, op *ast.OperationDefinition, fragments map[string]*ast.FragmentDefinition, runtime interface{}, selection *ast.Field) *Info {
	return &Info{
		FieldDef:   fieldDef,
		ParentType: parentType,
		Path:       path,
		Schema:     s,
		Variables:  variables,
		Operation:  op,
		Fragments:  fragments,
		Runtime:    runtime,
		selection:  selection,
	}
}

// GetDirectiveArguments returns the coerced arguments of the first
// application of the named directive on the field currently being
// resolved, or nil if it isn't present. Raises KindUnknownDirective (per
// spec §7) if the schema declares no such directive at all — as opposed to
// it simply not being applied here.
func (i *Info) GetDirectiveArguments(name string) (map[string]interface{}, error) {
	all, err := i.GetAllDirectiveArguments(name)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

// GetAllDirectiveArguments returns the coerced arguments of every
// application of the named (repeatable) directive on the field currently
// being resolved, in source order — spec §8 scenario S6.
func (i *Info) GetAllDirectiveArguments(name string) ([]map[string]interface{}, error) {
	dd, ok := i.Schema.Directives[name]
	if !ok {
		return nil, errors.NewUnknownDirectiveError(name)
	}
	if i.selection == nil {
		return nil, nil
	}
	var out []map[string]interface{}
	for _, d := range i.selection.Directives.All(name) {
		args := map[string]interface{}{}
		for _, argDef := range dd.Args {
			if v, ok := d.Arguments.Get(argDef.Name); ok {
				coerced, err := coerce.Literal(i.Schema, v, argDef.Type, i.Variables, nil)
				if err != nil {
					return nil, err
				}
				args[argDef.Name] = coerced
			} else if argDef.HasDefault {
				args[argDef.Name] = argDef.Default
			}
		}
		out = append(out, args)
	}
	return out, nil
}

// Resolver is implemented by any field's resolve logic. Per spec §9's
// "dynamic resolver signatures" note, every resolver in this module —
// user-supplied or the default dispatch chain — presents this single
// shape: `(context, root, info, args_map) -> value`. Deferred/promise
// values are the concern of the runtime package, not this interface: a
// Resolver may return any value, including one the runtime knows how to
// await.
type Resolver interface {
	Resolve(ctx context.Context, root interface{}, info *Info, args map[string]interface{}) (interface{}, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, root interface{}, info *Info, args map[string]interface{}) (interface{}, error)

func (f ResolverFunc) Resolve(ctx context.Context, root interface{}, info *Info, args map[string]interface{}) (interface{}, error) {
	return f(ctx, root, info, args)
}

// AsResolver adapts whatever value was attached to schema.Field.Resolver
// (built from the resolvers map passed to schema.Build) into a Resolver.
// Accepts a Resolver, a ResolverFunc-shaped plain func, or nil (in which
// case the caller should fall back to Default).
func AsResolver(v interface{}) (Resolver, bool) {
	switch r := v.(type) {
	case nil:
		return nil, false
	case Resolver:
		return r, true
	case func(ctx context.Context, root interface{}, info *Info, args map[string]interface{}) (interface{}, error):
		return ResolverFunc(r), true
	case func(root interface{}, args map[string]interface{}) (interface{}, error):
		return ResolverFunc(func(_ context.Context, root interface{}, _ *Info, args map[string]interface{}) (interface{}, error) {
			return r(root, args)
		}), true
	default:
		return nil, false
	}
}
