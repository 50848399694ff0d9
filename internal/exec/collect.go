package exec

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/schema"
)

// fieldGroup is one response-key entry produced by collectFields: every
// ast.Field selection across the (possibly merged, via fragment spreads)
// selection set that shares the same response key.
type fieldGroup struct {
	key    string
	fields []*ast.Field
}

// collectFields implements spec.md's named CollectFields algorithm: it
// walks selections, expanding fragment spreads and inline fragments whose
// type condition applies to objectType, evaluating @skip/@include along the
// way, and groups the resulting fields by response key in first-occurrence
// order. Grounded on the teacher's internal/exec/exec.go collectNodes.
func collectFields(s *schema.Schema, fragments map[string]*ast.FragmentDefinition, objectType *schema.Object, selections []ast.Selection, variables map[string]interface{}) []fieldGroup {
	var order []string
	groups := map[string][]*ast.Field{}
	visited := map[string]bool{}

	var collect func(sels []ast.Selection)
	collect = func(sels []ast.Selection) {
		for _, sel := range sels {
			switch sel := sel.(type) {
			case *ast.Field:
				if skipSelection(sel.Directives, variables) {
					continue
				}
				key := sel.ResponseKey()
				if _, ok := groups[key]; !ok {
					order = append(order, key)
				}
				groups[key] = append(groups[key], sel)

			case *ast.FragmentSpread:
				if skipSelection(sel.Directives, variables) {
					continue
				}
				if visited[sel.Name.Name] {
					continue
				}
				visited[sel.Name.Name] = true
				frag := fragments[sel.Name.Name]
				if frag == nil {
					continue
				}
				if !typeConditionApplies(s, frag.On.Name.Name, objectType) {
					continue
				}
				collect(frag.Selections)

			case *ast.InlineFragment:
				if skipSelection(sel.Directives, variables) {
					continue
				}
				if sel.HasOn && !typeConditionApplies(s, sel.On.Name.Name, objectType) {
					continue
				}
				collect(sel.Selections)
			}
		}
	}
	collect(selections)

	out := make([]fieldGroup, len(order))
	for i, key := range order {
		out[i] = fieldGroup{key: key, fields: groups[key]}
	}
	return out
}

// mergeSelections concatenates the sub-selection sets of every ast.Field in
// a response-key group, so a composite-typed field's sub-fields are
// collected across every place it was requested (spec.md's field-merging
// rule; the validator's FieldsInSetCanMerge already guarantees this is
// safe).
func mergeSelections(fields []*ast.Field) []ast.Selection {
	var out []ast.Selection
	for _, f := range fields {
		out = append(out, f.SelectionSet...)
	}
	return out
}

// typeConditionApplies reports whether a fragment's type condition
// (typeName) admits objectType: either it names objectType directly, or it
// names an interface/union objectType implements/belongs to.
func typeConditionApplies(s *schema.Schema, typeName string, objectType *schema.Object) bool {
	if typeName == objectType.Name {
		return true
	}
	switch t := s.Resolve(typeName).(type) {
	case *schema.Interface:
		return objectType.Implements(t.Name)
	case *schema.Union:
		for _, member := range t.PossibleTypes {
			if member.Name == objectType.Name {
				return true
			}
		}
	}
	return false
}

// skipSelection evaluates @skip/@include on a selection per spec.md §4.4:
// @skip(if: true) wins over @include(if: false) when both are present,
// matching the GraphQL spec's evaluation order (skip is checked first).
func skipSelection(directives ast.DirectiveList, variables map[string]interface{}) bool {
	if d := directives.Get("skip"); d != nil {
		if v, ok := d.Arguments.Get("if"); ok {
			if boolLiteral(v, variables) {
				return true
			}
		}
	}
	if d := directives.Get("include"); d != nil {
		if v, ok := d.Arguments.Get("if"); ok {
			if !boolLiteral(v, variables) {
				return true
			}
		}
	}
	return false
}

func boolLiteral(v ast.Value, variables map[string]interface{}) bool {
	switch v := v.(type) {
	case *ast.BooleanValue:
		return v.Value
	case *ast.Variable:
		b, _ := variables[v.Name].(bool)
		return b
	default:
		return false
	}
}
