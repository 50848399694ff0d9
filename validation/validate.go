package validation

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// Options configures the two optional cost-limiting rules a caller can
// enable on top of the mandatory rule set: MaxDepth (selection-set nesting)
// and MaxComplexity (a simple per-field cost estimate). Zero disables each.
type Options struct {
	MaxDepth      int
	MaxComplexity int
}

// Validate runs every rule of spec §4.5 over doc against s, returning every
// violation found — an empty (nil) slice means doc is safe to execute.
// variables is the caller-supplied, already JSON-decoded variables map,
// consulted by VariablesOfCorrectType; maxDepth of 0 disables the
// (optional) MaxDepthExceeded rule.
func Validate(s *schema.Schema, doc *ast.Document, variables map[string]interface{}, maxDepth int) []*errors.QueryError {
	return ValidateWithOptions(s, doc, variables, Options{MaxDepth: maxDepth})
}

// ValidateWithOptions is Validate plus the optional MaxComplexityExceeded
// rule, scored the way the teacher's SimpleEstimator scores it: one point
// per selected field, summed recursively through inline fragments and
// fragment spreads.
func ValidateWithOptions(s *schema.Schema, doc *ast.Document, variables map[string]interface{}, opts Options) []*errors.QueryError {
	c := newContext(s, doc, variables, opts)

	opNames := make(nameSet)
	fragUsedBy := map[*ast.FragmentDefinition][]*ast.OperationDefinition{}

	for _, op := range doc.Operations {
		c.usedVars[op] = varSet{}
		opc := &opContext{c, []*ast.OperationDefinition{op}}

		if validateMaxDepth(opc, op.Selections, nil, 1) {
			continue
		}
		if validateMaxComplexity(opc, op.Selections) {
			continue
		}

		if op.Name.Name == "" && len(doc.Operations) != 1 {
			c.addErr(op.Loc, "LoneAnonymousOperation", "This anonymous operation must be the only defined operation.")
		}
		if op.Name.Name != "" {
			validateName(c, opNames, op.Name, "UniqueOperationNames", "operation")
		}
		if op.Type == ast.Subscription && len(op.Selections) != 1 {
			c.addErr(op.Loc, "SingleFieldSubscriptions", "Subscription %q must select only one top level field.", op.Name.Name)
		}

		validateDirectives(opc, directiveLocationFor(op.Type), op.Directives)

		varNames := make(nameSet)
		for _, v := range op.Vars {
			validateName(c, varNames, v.Name, "UniqueVariableNames", "variable")

			t, err := schema.ResolveTypeRef(s, v.Type)
			if err != nil {
				c.errs = append(c.errs, err.(*errors.QueryError))
				continue
			}
			if !schema.IsInputType(t) {
				c.addErr(v.TypeLoc, "VariablesAreInputTypes", "Variable %q cannot be non-input type %q.", "$"+v.Name.Name, t)
			}
			validateVariableValue(opc, v, variables[v.Name.Name], t)

			if v.Default != nil {
				validateLiteral(opc, v.Default)
				if nn, ok := t.(*schema.NonNull); ok {
					c.addErr(v.Default.Location(), "DefaultValuesOfCorrectType", "Variable %q of type %q is required and will not use the default value. Perhaps you meant to use type %q.", "$"+v.Name.Name, t, nn.OfType)
				} else if ok, reason := validateValueType(opc, v.Default, t); !ok {
					c.addErr(v.Default.Location(), "DefaultValuesOfCorrectType", "Variable %q of type %q has invalid default value %s.\n%s", "$"+v.Name.Name, t, describeLiteral(v.Default), reason)
				}
			}
		}

		entryPoint := s.RootOperationType(string(op.Type))
		if entryPoint == nil {
			c.addErr(op.Loc, "KnownOperationTypes", "Schema does not support %s operations.", op.Type)
		}
		var root schema.NamedType
		if entryPoint != nil {
			root = entryPoint
		}
		validateSelectionSet(opc, op.Selections, root)

		used := map[*ast.FragmentDefinition]struct{}{}
		markUsedFragments(c, op.Selections, used)
		for frag := range used {
			fragUsedBy[frag] = append(fragUsedBy[frag], op)
		}
	}

	fragNames := make(nameSet)
	fragVisited := map[*ast.FragmentDefinition]struct{}{}
	for _, frag := range doc.Fragments {
		opc := &opContext{c, fragUsedBy[frag]}

		validateName(c, fragNames, frag.Name, "UniqueFragmentNames", "fragment")
		validateDirectives(opc, "FRAGMENT_DEFINITION", frag.Directives)

		t := c.schema.Resolve(frag.On.Name.Name)
		if t != nil && !canBeFragment(t) {
			c.addErr(frag.On.Name.Loc, "FragmentsOnCompositeTypes", "Fragment %q cannot condition on non composite type %q.", frag.Name.Name, t)
			continue
		}

		validateSelectionSet(opc, frag.Selections, t)

		if _, ok := fragVisited[frag]; !ok {
			detectFragmentCycle(c, frag.Selections, fragVisited, nil, map[string]int{frag.Name.Name: 0})
		}
	}

	for _, frag := range doc.Fragments {
		if len(fragUsedBy[frag]) == 0 {
			c.addErr(frag.Loc, "NoUnusedFragments", "Fragment %q is never used.", frag.Name.Name)
		}
	}

	for _, op := range doc.Operations {
		c.errs = append(c.errs, c.opErrs[op]...)
		used := c.usedVars[op]
		for _, v := range op.Vars {
			if _, ok := used[v]; !ok {
				suffix := ""
				if op.Name.Name != "" {
					suffix = fmt.Sprintf(" in operation %q", op.Name.Name)
				}
				c.addErr(v.Loc, "NoUnusedVariables", "Variable %q is never used%s.", "$"+v.Name.Name, suffix)
			}
		}
	}

	return c.errs
}

func directiveLocationFor(t ast.OperationType) string {
	switch t {
	case ast.Mutation:
		return "MUTATION"
	case ast.Subscription:
		return "SUBSCRIPTION"
	default:
		return "QUERY"
	}
}

// validateMaxDepth enforces the optional MaxDepthExceeded rule, returning
// true (and stopping the rest of the pass for this operation) as soon as
// the limit is exceeded, mirroring the teacher's early-exit shape — a
// pathological deeply-nested query shouldn't also pay for every other rule.
func validateMaxDepth(c *opContext, sels []ast.Selection, visited map[*ast.FragmentDefinition]struct{}, depth int) bool {
	if c.maxDepth == 0 {
		return false
	}
	exceeded := false
	if visited == nil {
		visited = map[*ast.FragmentDefinition]struct{}{}
	}
	for _, sel := range sels {
		switch sel := sel.(type) {
		case *ast.Field:
			if depth > c.maxDepth {
				exceeded = true
				c.addErr(sel.Name.Loc, "MaxDepthExceeded", "Field %q has depth %d that exceeds max depth %d", sel.Name.Name, depth, c.maxDepth)
				continue
			}
			exceeded = validateMaxDepth(c, sel.SelectionSet, visited, depth+1) || exceeded
		case *ast.InlineFragment:
			exceeded = validateMaxDepth(c, sel.Selections, visited, depth) || exceeded
		case *ast.FragmentSpread:
			frag := c.doc.Fragments.Get(sel.Name.Name)
			if frag == nil {
				continue
			}
			if _, ok := visited[frag]; ok {
				continue
			}
			visited[frag] = struct{}{}
			exceeded = validateMaxDepth(c, frag.Selections, visited, depth) || exceeded
		}
	}
	return exceeded
}

// validateMaxComplexity enforces the optional MaxComplexityExceeded rule:
// one point per selected field, summed recursively through inline
// fragments and fragment spreads, mirroring the teacher's SimpleEstimator.
func validateMaxComplexity(c *opContext, sels []ast.Selection) bool {
	if c.maxComplexity == 0 {
		return false
	}
	_, exceeded := estimateComplexity(c, sels, map[*ast.FragmentDefinition]struct{}{})
	return exceeded
}

func estimateComplexity(c *opContext, sels []ast.Selection, visited map[*ast.FragmentDefinition]struct{}) (int, bool) {
	complexity := 0
	for _, sel := range sels {
		var loc errors.Location
		switch sel := sel.(type) {
		case *ast.Field:
			loc = sel.Name.Loc
			child, exceeded := estimateComplexity(c, sel.SelectionSet, visited)
			complexity += child + 1
			if exceeded {
				return complexity, true
			}
		case *ast.InlineFragment:
			loc = sel.Loc
			child, exceeded := estimateComplexity(c, sel.Selections, visited)
			complexity += child
			if exceeded {
				return complexity, true
			}
		case *ast.FragmentSpread:
			frag := c.doc.Fragments.Get(sel.Name.Name)
			if frag == nil {
				c.addErr(sel.Loc, "MaxComplexityEvaluationError", "Unknown fragment %q. Unable to evaluate complexity.", sel.Name.Name)
				continue
			}
			if _, ok := visited[frag]; ok {
				continue
			}
			visited[frag] = struct{}{}
			loc = frag.Loc
			child, exceeded := estimateComplexity(c, frag.Selections, visited)
			complexity += child
			if exceeded {
				return complexity, true
			}
		default:
			continue
		}

		if complexity > c.maxComplexity {
			c.addErr(loc, "MaxComplexityExceeded", "The query exceeds the maximum complexity of %d. Actual complexity is %d.", c.maxComplexity, complexity)
			return complexity, true
		}
	}
	return complexity, false
}
