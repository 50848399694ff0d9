package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

func validateSelectionSet(c *opContext, sels []ast.Selection, t schema.NamedType) {
	for _, sel := range sels {
		validateSelection(c, sel, t)
	}
	for i, a := range sels {
		for _, b := range sels[i+1:] {
			c.validateOverlap(a, b, nil, nil)
		}
	}
}

func validateSelection(c *opContext, sel ast.Selection, t schema.NamedType) {
	switch sel := sel.(type) {
	case *ast.Field:
		validateDirectives(c, "FIELD", sel.Directives)

		name := sel.Name.Name
		var f *schema.Field
		if name == "__typename" {
			if s, ok := c.schema.Resolve("String").(*schema.Scalar); ok {
				f = &schema.Field{Name: "__typename", Type: s}
			}
		} else {
			f = fields(t).Get(name)
			if f == nil && t != nil {
				c.addErr(sel.Name.Loc, "FieldsOnCorrectType", "Cannot query field %q on type %q.", name, t)
			}
		}
		c.fieldMap[sel] = fieldInfo{def: f, parent: t}

		validateArgumentLiterals(c, sel.Arguments)
		if f != nil {
			validateArgumentTypes(c, sel.Arguments, f.Args, sel.Name.Loc,
				func() string { return fmt.Sprintf("field %q of type %q", name, t) },
				func() string { return fmt.Sprintf("Field %q", name) },
			)
		}

		var ft schema.Type
		if f != nil {
			ft = f.Type
			if hasSubfields(ft) && sel.SelectionSet == nil {
				c.addErr(sel.Name.Loc, "ScalarLeafs", "Field %q of type %q must have a selection of subfields.", name, ft)
			}
			if !hasSubfields(ft) && sel.SelectionSet != nil {
				c.addErr(sel.SelSetLoc, "ScalarLeafs", "Field %q must not have a selection since type %q has no subfields.", name, ft)
			}
		}
		if sel.SelectionSet != nil {
			validateSelectionSet(c, sel.SelectionSet, schema.NamedOf(ft))
		}

	case *ast.InlineFragment:
		validateDirectives(c, "INLINE_FRAGMENT", sel.Directives)
		if sel.HasOn {
			cond := c.schema.Resolve(sel.On.Name.Name)
			if cond != nil && !compatible(t, cond) {
				c.addErr(sel.Loc, "PossibleFragmentSpreads", "Fragment cannot be spread here as objects of type %q can never be of type %q.", t, cond)
			}
			t = cond
		}
		if t != nil && !canBeFragment(t) {
			c.addErr(sel.On.Name.Loc, "FragmentsOnCompositeTypes", "Fragment cannot condition on non composite type %q.", t)
			return
		}
		validateSelectionSet(c, sel.Selections, t)

	case *ast.FragmentSpread:
		validateDirectives(c, "FRAGMENT_SPREAD", sel.Directives)
		frag := c.doc.Fragments.Get(sel.Name.Name)
		if frag == nil {
			c.addErr(sel.Name.Loc, "KnownFragmentNames", "Unknown fragment %q.", sel.Name.Name)
			return
		}
		fragType := c.schema.Resolve(frag.On.Name.Name)
		if !compatible(t, fragType) {
			c.addErr(sel.Loc, "PossibleFragmentSpreads", "Fragment %q cannot be spread here as objects of type %q can never be of type %q.", frag.Name.Name, t, fragType)
		}
	}
}

func markUsedFragments(c *context, sels []ast.Selection, used map[*ast.FragmentDefinition]struct{}) {
	for _, sel := range sels {
		switch sel := sel.(type) {
		case *ast.Field:
			markUsedFragments(c, sel.SelectionSet, used)
		case *ast.InlineFragment:
			markUsedFragments(c, sel.Selections, used)
		case *ast.FragmentSpread:
			frag := c.doc.Fragments.Get(sel.Name.Name)
			if frag == nil {
				continue
			}
			if _, ok := used[frag]; ok {
				continue
			}
			used[frag] = struct{}{}
			markUsedFragments(c, frag.Selections, used)
		}
	}
}

// detectFragmentCycle walks fragment spreads depth-first, reporting
// NoFragmentCycles exactly once per cycle (spec §8's "self-referential
// fragment reported exactly once" property) by tracking each fragment's
// index on the current spread path rather than just a visited set.
func detectFragmentCycle(c *context, sels []ast.Selection, visited map[*ast.FragmentDefinition]struct{}, path []*ast.FragmentSpread, pathIndex map[string]int) {
	for _, sel := range sels {
		switch sel := sel.(type) {
		case *ast.Field:
			detectFragmentCycle(c, sel.SelectionSet, visited, path, pathIndex)
		case *ast.InlineFragment:
			detectFragmentCycle(c, sel.Selections, visited, path, pathIndex)
		case *ast.FragmentSpread:
			frag := c.doc.Fragments.Get(sel.Name.Name)
			if frag == nil {
				continue
			}
			path = append(path, sel)
			if i, ok := pathIndex[frag.Name.Name]; ok {
				cycle := path[i:]
				via := ""
				if len(cycle) > 1 {
					names := make([]string, len(cycle)-1)
					for i, f := range cycle[:len(cycle)-1] {
						names[i] = f.Name.Name
					}
					via = " via " + strings.Join(names, ", ")
				}
				locs := make([]errors.Location, len(cycle))
				for i, f := range cycle {
					locs[i] = f.Loc
				}
				c.addErrMultiLoc(locs, "NoFragmentCycles", "Cannot spread fragment %q within itself%s.", frag.Name.Name, via)
				continue
			}
			if _, ok := visited[frag]; ok {
				continue
			}
			visited[frag] = struct{}{}
			pathIndex[frag.Name.Name] = len(path)
			detectFragmentCycle(c, frag.Selections, visited, path, pathIndex)
			delete(pathIndex, frag.Name.Name)
		}
	}
}

// validateOverlap implements OverlappingFieldsCanBeMerged: two selections
// targeting the same response key in the same selection set must either be
// the exact same field call (name, arguments, type) or be unmergeable only
// because they're aliases of truly independent fields.
func (c *context) validateOverlap(a, b ast.Selection, reasons *[]string, locs *[]errors.Location) {
	if a == b {
		return
	}
	pair := selectionPair{a, b}
	if _, ok := c.overlapValidated[pair]; ok {
		return
	}
	c.overlapValidated[pair] = struct{}{}
	c.overlapValidated[selectionPair{b, a}] = struct{}{}

	switch a := a.(type) {
	case *ast.Field:
		switch b := b.(type) {
		case *ast.Field:
			if b.Name.Loc.Before(a.Name.Loc) {
				a, b = b, a
			}
			if r, l := c.validateFieldOverlap(a, b); len(r) != 0 {
				l = append(l, a.Name.Loc, b.Name.Loc)
				if reasons == nil {
					c.addErrMultiLoc(l, "OverlappingFieldsCanBeMerged", "Fields %q conflict because %s. Use different aliases on the fields to fetch both if this was intentional.", a.ResponseKey(), strings.Join(r, " and "))
					return
				}
				for _, rr := range r {
					*reasons = append(*reasons, fmt.Sprintf("subfields %q conflict because %s", a.ResponseKey(), rr))
				}
				*locs = append(*locs, l...)
			}
		case *ast.InlineFragment:
			for _, sel := range b.Selections {
				c.validateOverlap(a, sel, reasons, locs)
			}
		case *ast.FragmentSpread:
			if frag := c.doc.Fragments.Get(b.Name.Name); frag != nil {
				for _, sel := range frag.Selections {
					c.validateOverlap(a, sel, reasons, locs)
				}
			}
		}
	case *ast.InlineFragment:
		for _, sel := range a.Selections {
			c.validateOverlap(sel, b, reasons, locs)
		}
	case *ast.FragmentSpread:
		if frag := c.doc.Fragments.Get(a.Name.Name); frag != nil {
			for _, sel := range frag.Selections {
				c.validateOverlap(sel, b, reasons, locs)
			}
		}
	}
}

func (c *context) validateFieldOverlap(a, b *ast.Field) ([]string, []errors.Location) {
	if a.ResponseKey() != b.ResponseKey() {
		return nil, nil
	}

	if af := c.fieldMap[a].def; af != nil {
		if bf := c.fieldMap[b].def; bf != nil {
			if !typesCompatible(af.Type, bf.Type) {
				return []string{fmt.Sprintf("they return conflicting types %s and %s", af.Type, bf.Type)}, nil
			}
		}
	}

	at, bt := c.fieldMap[a].parent, c.fieldMap[b].parent
	if at == nil || bt == nil || at == bt {
		if a.Name.Name != b.Name.Name {
			return []string{fmt.Sprintf("%s and %s are different fields", a.Name.Name, b.Name.Name)}, nil
		}
		if argumentsConflict(a.Arguments, b.Arguments) {
			return []string{"they have differing arguments"}, nil
		}
	}

	var reasons []string
	var locs []errors.Location
	for _, a2 := range a.SelectionSet {
		for _, b2 := range b.SelectionSet {
			c.validateOverlap(a2, b2, &reasons, &locs)
		}
	}
	return reasons, locs
}

func argumentsConflict(a, b ast.ArgumentList) bool {
	if len(a) != len(b) {
		return true
	}
	for _, argA := range a {
		valB, ok := b.Get(argA.Name.Name)
		if !ok || !reflect.DeepEqual(argA.Value, valB) {
			return true
		}
	}
	return false
}
