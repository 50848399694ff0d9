package validation

import "github.com/lirsacc/graphql/schema"

// fields returns the field set a selection may target on t, or nil if t
// carries no fields of its own (Union, Scalar, Enum, InputObject).
func fields(t schema.NamedType) schema.FieldList {
	switch t := t.(type) {
	case *schema.Object:
		return t.Fields
	case *schema.Interface:
		return t.Fields
	default:
		return nil
	}
}

// possibleTypes returns the concrete object types t could resolve to at
// runtime, used to decide whether a fragment can ever apply.
func possibleTypes(t schema.NamedType) []*schema.Object {
	switch t := t.(type) {
	case *schema.Object:
		return []*schema.Object{t}
	case *schema.Interface:
		return t.PossibleTypes
	case *schema.Union:
		return t.PossibleTypes
	default:
		return nil
	}
}

// compatible reports whether a and b could describe overlapping runtime
// objects — the condition a fragment spread's type must satisfy against
// its spread location (PossibleFragmentSpreads).
func compatible(a, b schema.NamedType) bool {
	for _, pa := range possibleTypes(a) {
		for _, pb := range possibleTypes(b) {
			if pa == pb {
				return true
			}
		}
	}
	return false
}

func canBeFragment(t schema.NamedType) bool {
	switch t.(type) {
	case *schema.Object, *schema.Interface, *schema.Union:
		return true
	default:
		return false
	}
}

func hasSubfields(t schema.Type) bool {
	switch t := t.(type) {
	case *schema.Object, *schema.Interface, *schema.Union:
		return true
	case *schema.List:
		return hasSubfields(t.OfType)
	case *schema.NonNull:
		return hasSubfields(t.OfType)
	default:
		return false
	}
}

func isLeaf(t schema.NamedType) bool {
	switch t.(type) {
	case *schema.Scalar, *schema.Enum:
		return true
	default:
		return false
	}
}

// typesCompatible is the loose check used by the overlapping-fields rule:
// two field types can coexist under the same response key as long as their
// wrapper structure and, for leaf types, their named type, line up exactly.
func typesCompatible(a, b schema.Type) bool {
	al, aList := a.(*schema.List)
	bl, bList := b.(*schema.List)
	if aList || bList {
		return aList && bList && typesCompatible(al.OfType, bl.OfType)
	}

	ann, aNN := a.(*schema.NonNull)
	bnn, bNN := b.(*schema.NonNull)
	if aNN || bNN {
		return aNN && bNN && typesCompatible(ann.OfType, bnn.OfType)
	}

	an, aOK := a.(schema.NamedType)
	bn, bOK := b.(schema.NamedType)
	if !aOK || !bOK {
		return false
	}
	if isLeaf(an) || isLeaf(bn) {
		return an == bn
	}
	return true
}

// typeCanBeUsedAs reports whether a value of type t may be supplied where a
// value of type as is expected — the VariablesInAllowedPosition covariance
// check: non-null may satisfy nullable, list/named shapes must line up
// exactly otherwise.
func typeCanBeUsedAs(t, as schema.Type) bool {
	nnT, okT := t.(*schema.NonNull)
	if okT {
		t = nnT.OfType
	}
	nnAs, okAs := as.(*schema.NonNull)
	if okAs {
		as = nnAs.OfType
		if !okT {
			return false
		}
	}
	if t == as {
		return true
	}
	if lt, ok := t.(*schema.List); ok {
		if las, ok := as.(*schema.List); ok {
			return typeCanBeUsedAs(lt.OfType, las.OfType)
		}
	}
	return false
}
