// Package validation implements the query validation rules of the GraphQL
// specification: a schema-aware pass over a parsed executable document that
// produces zero or more validation errors without executing anything.
//
// The pass is organized the way the teacher's internal/validation package
// organizes it: a shared context threading the schema, the document, and a
// handful of per-operation/per-fragment bookkeeping maps through a set of
// mutually recursive rule functions, rather than a generic ast.Visitor —
// most rules need the current parent type and field definition alongside
// the node, which a type-blind visitor can't carry.
package validation

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

type varSet map[*ast.VariableDefinition]struct{}

type selectionPair struct{ a, b ast.Selection }

type nameSet map[string]errors.Location

type fieldInfo struct {
	def    *schema.Field
	parent schema.NamedType
}

// context carries state shared across every operation and fragment in a
// single Validate call.
type context struct {
	schema           *schema.Schema
	doc              *ast.Document
	variables        map[string]interface{}
	maxDepth         int
	maxComplexity    int
	errs             []*errors.QueryError
	opErrs           map[*ast.OperationDefinition][]*errors.QueryError
	usedVars         map[*ast.OperationDefinition]varSet
	fieldMap         map[*ast.Field]fieldInfo
	overlapValidated map[selectionPair]struct{}
}

func newContext(s *schema.Schema, doc *ast.Document, variables map[string]interface{}, opts Options) *context {
	return &context{
		schema:           s,
		doc:              doc,
		variables:        variables,
		maxDepth:         opts.MaxDepth,
		maxComplexity:    opts.MaxComplexity,
		opErrs:           map[*ast.OperationDefinition][]*errors.QueryError{},
		usedVars:         map[*ast.OperationDefinition]varSet{},
		fieldMap:         map[*ast.Field]fieldInfo{},
		overlapValidated: map[selectionPair]struct{}{},
	}
}

func (c *context) addErr(loc errors.Location, rule, format string, a ...interface{}) {
	c.addErrMultiLoc([]errors.Location{loc}, rule, format, a...)
}

func (c *context) addErrMultiLoc(locs []errors.Location, rule, format string, a ...interface{}) {
	c.errs = append(c.errs, errors.NewValidationError(rule, locs, format, a...))
}

// opContext narrows a context to the operation(s) a fragment is reached
// from (a fragment used by several operations is validated once against
// each, for variable-usage purposes).
type opContext struct {
	*context
	ops []*ast.OperationDefinition
}

func validateName(c *context, set nameSet, name ast.Ident, rule, kind string) {
	if loc, ok := set[name.Name]; ok {
		c.addErrMultiLoc([]errors.Location{loc, name.Loc}, rule, "There can be only one %s named %q.", kind, name.Name)
		return
	}
	set[name.Name] = name.Loc
}
