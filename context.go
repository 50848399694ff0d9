package graphql

import (
	"context"

	"github.com/lirsacc/graphql/internal/exec"
)

// FieldContext describes the field currently being resolved: its selection
// (as written in the query, including alias and arguments), its schema
// definition and its response path. It is attached to the context.Context
// passed to every resolver so a resolver can inspect its own call site
// without Resolver threading extra positional parameters.
//
// Grounded on the teacher's context.go GraphQLContext, generalized from a
// selected.Field wrapper to the executor's own FieldContext.
type FieldContext = exec.FieldContext

// FieldContextFromContext retrieves the FieldContext a resolver is running
// under. The second return value is false outside of resolver execution,
// e.g. code invoked from a goroutine that lost the request context.
func FieldContextFromContext(ctx context.Context) (*FieldContext, bool) {
	return exec.FieldContextFromContext(ctx)
}
