package exec

import (
	"context"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/schema"
)

// FieldContext describes the field a resolver is currently being invoked
// for. It is attached to the context.Context passed into every resolver
// call so a resolver (or middleware wrapping one) can inspect its own call
// site instead of relying on positional parameters alone.
type FieldContext struct {
	Object    *schema.Object
	Field     *schema.Field
	Selection *ast.Field
	Path      []interface{}
}

type fieldContextKey struct{}

func withFieldContext(ctx context.Context, fc *FieldContext) context.Context {
	return context.WithValue(ctx, fieldContextKey{}, fc)
}

// FieldContextFromContext retrieves the FieldContext attached by the
// executor, if any.
func FieldContextFromContext(ctx context.Context) (*FieldContext, bool) {
	fc, ok := ctx.Value(fieldContextKey{}).(*FieldContext)
	return fc, ok
}
