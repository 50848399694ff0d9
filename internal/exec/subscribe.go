package exec

import (
	"context"
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// SubscriptionField resolves spec.md §4.7's subscription-specific first
// phase: collect the operation's single top-level field (subscription
// operations select exactly one root field) and invoke its resolver once
// to obtain the source event stream, rather than a leaf value.
//
// Grounded on the teacher's equivalent subscribe entry point; simplified to
// the initiation-only contract SPEC_FULL.md §10 requires (no transport).
func (r *Request) SubscriptionField(ctx context.Context) (*schema.Field, *ast.Field, interface{}, error) {
	rootType := r.Schema.RootOperationType("subscription")
	if rootType == nil {
		return nil, nil, nil, fmt.Errorf("schema does not support subscription operations")
	}

	groups := collectFields(r.Schema, r.Fragments, rootType, r.Operation.Selections, r.Variables)
	if len(groups) != 1 {
		return nil, nil, nil, fmt.Errorf("subscription operations must select exactly one top-level field, got %d", len(groups))
	}
	g := groups[0]
	selection := g.fields[0]
	path := []interface{}{g.key}

	fieldDef := rootType.Fields.Get(selection.Name.Name)
	if fieldDef == nil {
		return nil, nil, nil, fmt.Errorf("field %q not found on type %q", selection.Name.Name, rootType.Name)
	}

	args, err := argumentValuesForField(r.Schema, fieldDef, selection, r.Variables, path)
	if err != nil {
		return nil, nil, nil, err
	}

	fieldCtx := withFieldContext(ctx, &FieldContext{
		Object:    rootType,
		Field:     fieldDef,
		Selection: selection,
		Path:      path,
	})
	source, err := r.invokeResolver(fieldCtx, rootType, nil, fieldDef, selection, args, path)
	if err != nil {
		return nil, nil, nil, err
	}
	return fieldDef, selection, source, nil
}

// ExecuteSubscriptionEvent runs spec.md §4.7's second subscription phase:
// one per-event execution pass, treating eventValue as the already-resolved
// value of the subscription's single root field and completing its
// sub-selection set exactly as a query field would. Each call gets a fresh
// error accumulator, since one subscription drives many independent
// executions over its lifetime.
func (r *Request) ExecuteSubscriptionEvent(ctx context.Context, fieldDef *schema.Field, selection *ast.Field, eventValue interface{}) (interface{}, []*errors.QueryError) {
	r.mu.Lock()
	r.errs = nil
	r.mu.Unlock()

	key := selection.ResponseKey()
	value, killed := r.completeValue(ctx, fieldDef.Type, mergeSelections([]*ast.Field{selection}), nil, eventValue, []interface{}{key})

	r.mu.Lock()
	errs := r.errs
	r.mu.Unlock()

	if killed {
		return nil, errs
	}
	return map[string]interface{}{key: value}, errs
}
