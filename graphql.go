// Package graphql is the public entry point: build a schema from SDL,
// parse and validate a query document against it, then execute or
// subscribe to an operation. Everything else (lexing, parsing, schema
// building, validation, coercion, execution) lives in importable
// sub-packages a caller can use directly for finer control; this package
// wires the common path together.
//
// Grounded on the teacher's engine.go (Engine, EngineRequest/EngineResponse,
// orchestration order: parse, validate, resolve operation, coerce
// variables, execute) and context.go (GraphQLContext pulling the current
// field out of context.Context).
package graphql

import (
	"context"
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/coerce"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/internal/exec"
	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/log"
	"github.com/lirsacc/graphql/runtime"
	"github.com/lirsacc/graphql/schema"
	"github.com/lirsacc/graphql/subscription"
	"github.com/lirsacc/graphql/trace"
	"github.com/lirsacc/graphql/validation"
)

// DefaultMaxDepth bounds field nesting (fragments add no depth of their
// own) when a Request leaves MaxDepth unset, matching the teacher's
// Engine.MaxDepth default.
const DefaultMaxDepth = 50

// Schema is a built, validated GraphQL schema, ready to execute operations
// against. See BuildSchema.
type Schema = schema.Schema

// SchemaOption configures BuildSchema. The concrete options - Resolvers,
// AdditionalScalars, SchemaDirectives, TypeResolvers - live in the schema
// package; they are re-exported here so callers of this package don't also
// need to import schema directly for the common case.
type SchemaOption = schema.BuildOption

var (
	// Resolvers attaches a map of "Type.field" resolvers to the fields
	// they belong to at build time.
	Resolvers = schema.Resolvers
	// AdditionalScalars registers ScalarCoercion implementations for
	// custom scalar type definitions in the SDL.
	AdditionalScalars = schema.AdditionalScalars
	// SchemaDirectives registers SchemaDirective hooks by directive name.
	SchemaDirectives = schema.SchemaDirectives
	// TypeResolvers registers explicit abstract-type resolution callbacks
	// by interface/union name.
	TypeResolvers = schema.TypeResolvers
)

// BuildSchema parses sdl as a schema document and builds an executable
// Schema from it, running the schema's own structural validation
// (non-null wrapping, interface covariance, input cycles) before handing
// it back.
func BuildSchema(sdl string, opts ...SchemaOption) (*Schema, error) {
	doc, perr := parser.Parse(sdl, parser.AllowTypeSystem())
	if perr != nil {
		return nil, perr
	}
	s, err := schema.Build(doc, opts...)
	if err != nil {
		return nil, err
	}
	if errs := s.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	return s, nil
}

// Parse parses a query document (operations and fragments, no type system
// definitions).
func Parse(query string) (*ast.Document, error) {
	doc, err := parser.Parse(query)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate runs doc through the full validation rule set against s,
// checking variables against each operation's variable definitions as it
// goes; a maxDepth of zero uses DefaultMaxDepth.
func Validate(s *Schema, doc *ast.Document, variables map[string]interface{}, maxDepth int) []*errors.QueryError {
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	return validation.Validate(s, doc, variables, maxDepth)
}

// PrintAST renders a query document node back to GraphQL query language
// text.
func PrintAST(n ast.Node) string { return ast.Print(n) }

// PrintSchema renders s back to SDL text.
func PrintSchema(s *Schema) string { return schema.PrintSchema(s) }

// Result is the wire-stable response envelope for a single query or
// mutation execution, and for each event of a subscription.
type Result struct {
	Data   interface{}          `json:"data,omitempty"`
	Errors []*errors.QueryError `json:"errors,omitempty"`
}

// Request configures a single Execute or Subscribe call: the query text,
// which operation to run if the document has more than one, its variables
// and root value, and the pluggable capabilities (Runtime, Tracer, Logger)
// - all three default when left nil.
type Request struct {
	Schema        *Schema
	Query         string
	OperationName string
	Variables     map[string]interface{}
	Root          interface{}

	// MaxDepth bounds field nesting; DefaultMaxDepth applies when zero.
	MaxDepth int
	// MaxComplexity bounds the query's estimated field cost; zero disables
	// the check.
	MaxComplexity int

	Runtime runtime.Runtime
	Tracer  trace.Tracer
	Logger  log.Logger
}

// prepare runs the parse/validate/resolve-operation/coerce-variables
// pipeline shared by Execute and Subscribe, producing an internal
// execution request bound to req's single chosen operation.
func (req *Request) prepare() (*exec.Request, *ast.OperationDefinition, []*errors.QueryError) {
	doc, perr := parser.Parse(req.Query)
	if perr != nil {
		return nil, nil, []*errors.QueryError{perr}
	}

	maxDepth := req.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	opts := validation.Options{MaxDepth: maxDepth, MaxComplexity: req.MaxComplexity}
	if errs := validation.ValidateWithOptions(req.Schema, doc, req.Variables, opts); len(errs) > 0 {
		return nil, nil, errs
	}

	op := doc.Operations.Get(req.OperationName)
	if op == nil && req.OperationName == "" && len(doc.Operations) == 1 {
		op = doc.Operations[0]
	}
	if op == nil {
		return nil, nil, []*errors.QueryError{errors.Errorf("no operation %q in query document", req.OperationName)}
	}

	variables, err := coerce.VariableValues(req.Schema, op.Vars, req.Variables)
	if err != nil {
		return nil, nil, []*errors.QueryError{coerceErrorOrWrap(err)}
	}

	fragments := make(map[string]*ast.FragmentDefinition, len(doc.Fragments))
	for _, f := range doc.Fragments {
		fragments[f.Name.Name] = f
	}

	rt := req.Runtime
	if rt == nil {
		rt = runtime.Blocking
	}
	tracer := req.Tracer
	if tracer == nil {
		tracer = trace.NoOp
	}
	logger := req.Logger
	if logger == nil {
		logger = log.DefaultLogger{}
	}

	return &exec.Request{
		Schema:    req.Schema,
		Fragments: fragments,
		Variables: variables,
		Operation: op,
		Runtime:   rt,
		Tracer:    tracer,
		Logger:    logger,
	}, op, nil
}

func coerceErrorOrWrap(err error) *errors.QueryError {
	if qe, ok := err.(*errors.QueryError); ok {
		return qe
	}
	return errors.Errorf("%s", err)
}

// Execute runs req's query or mutation operation to completion. Top-level
// fields of a mutation run in document order, one at a time; every other
// selection set - a query's top-level fields, and any nested selection set
// regardless of operation type - runs concurrently through req.Runtime.
func Execute(ctx context.Context, req *Request) *Result {
	er, op, errs := req.prepare()
	if len(errs) > 0 {
		return &Result{Errors: errs}
	}
	if op.Type == ast.Subscription {
		return &Result{Errors: []*errors.QueryError{errors.Errorf("operation %q is a subscription, use Subscribe instead", op.Name.Name)}}
	}

	data, errs := er.Execute(ctx, req.Root)
	return &Result{Data: data, Errors: errs}
}

// Subscribe runs req's subscription operation, resolving its single root
// field to a source event stream and returning a channel of one Result per
// emitted event. The channel closes when the source stream closes or ctx
// is cancelled. See the subscription package for the resolver contract the
// root field must satisfy.
func Subscribe(ctx context.Context, req *Request) (<-chan *Result, error) {
	er, op, errs := req.prepare()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if op.Type != ast.Subscription {
		return nil, fmt.Errorf("operation %q is not a subscription", op.Name.Name)
	}

	events, err := subscription.Subscribe(ctx, er, req.Root)
	if err != nil {
		return nil, err
	}

	out := make(chan *Result)
	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case out <- &Result{Data: ev.Data, Errors: ev.Errors}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
