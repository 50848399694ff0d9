package ast

import "github.com/lirsacc/graphql/errors"

type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

type OperationList []*OperationDefinition

func (l OperationList) Get(name string) *OperationDefinition {
	for _, op := range l {
		if op.Name.Name == name {
			return op
		}
	}
	return nil
}

type FragmentList []*FragmentDefinition

func (l FragmentList) Get(name string) *FragmentDefinition {
	for _, f := range l {
		if f.Name.Name == name {
			return f
		}
	}
	return nil
}

// OperationDefinition is a `query`/`mutation`/`subscription` block,
// including the shorthand anonymous-query form `{ ... }`.
type OperationDefinition struct {
	Type       OperationType
	Name       Ident
	Vars       VariableDefinitionList
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

func (o *OperationDefinition) Location() errors.Location { return o.Loc }

func (o *OperationDefinition) deepCopy() *OperationDefinition {
	cp := &OperationDefinition{Type: o.Type, Name: o.Name, Loc: o.Loc}
	for _, v := range o.Vars {
		cv := *v
		cp.Vars = append(cp.Vars, &cv)
	}
	cp.Directives = append(cp.Directives, o.Directives...)
	for _, s := range o.Selections {
		cp.Selections = append(cp.Selections, deepCopySelection(s))
	}
	return cp
}

// VariableDefinition declares `$name: Type = default` in an operation's
// variable list, with directives-on-variable-definitions support per
// graphql-spec PR 510.
type VariableDefinition struct {
	Name       Ident
	Type       TypeRef
	Default    Value
	Directives DirectiveList
	Loc        errors.Location
	TypeLoc    errors.Location
}

func (v *VariableDefinition) Location() errors.Location { return v.Loc }

type VariableDefinitionList []*VariableDefinition

func (l VariableDefinitionList) Get(name string) *VariableDefinition {
	for _, v := range l {
		if v.Name.Name == name {
			return v
		}
	}
	return nil
}

// Selection is implemented by Field, FragmentSpread and InlineFragment.
type Selection interface {
	Node
	isSelection()
}

type Field struct {
	Alias        Ident
	Name         Ident
	Arguments    ArgumentList
	Directives   DirectiveList
	SelectionSet []Selection
	SelSetLoc    errors.Location
}

func (f *Field) Location() errors.Location { return f.Name.Loc }
func (*Field) isSelection()                {}

// ResponseKey is the field's key in the response map: its alias if present,
// otherwise its name.
func (f *Field) ResponseKey() string {
	if f.Alias.Name != "" {
		return f.Alias.Name
	}
	return f.Name.Name
}

type FragmentSpread struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

func (f *FragmentSpread) Location() errors.Location { return f.Loc }
func (*FragmentSpread) isSelection()                 {}

type InlineFragment struct {
	On         NamedType // zero value (empty Name) means no type condition
	HasOn      bool
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

func (f *InlineFragment) Location() errors.Location { return f.Loc }
func (*InlineFragment) isSelection()                 {}

type FragmentDefinition struct {
	Name       Ident
	On         NamedType
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

func (f *FragmentDefinition) Location() errors.Location { return f.Loc }

func (f *FragmentDefinition) deepCopy() *FragmentDefinition {
	cp := &FragmentDefinition{Name: f.Name, On: f.On, Loc: f.Loc}
	cp.Directives = append(cp.Directives, f.Directives...)
	for _, s := range f.Selections {
		cp.Selections = append(cp.Selections, deepCopySelection(s))
	}
	return cp
}

func deepCopySelection(s Selection) Selection {
	switch s := s.(type) {
	case *Field:
		cp := &Field{Alias: s.Alias, Name: s.Name, SelSetLoc: s.SelSetLoc}
		cp.Arguments = append(cp.Arguments, s.Arguments...)
		cp.Directives = append(cp.Directives, s.Directives...)
		for _, c := range s.SelectionSet {
			cp.SelectionSet = append(cp.SelectionSet, deepCopySelection(c))
		}
		return cp
	case *FragmentSpread:
		cp := *s
		return &cp
	case *InlineFragment:
		cp := &InlineFragment{On: s.On, HasOn: s.HasOn, Loc: s.Loc}
		cp.Directives = append(cp.Directives, s.Directives...)
		for _, c := range s.Selections {
			cp.Selections = append(cp.Selections, deepCopySelection(c))
		}
		return cp
	default:
		panic("ast: unknown selection kind")
	}
}

// Argument is a `name: value` pair, used both for field/directive call
// arguments and (via ArgumentList) default-value-free reuse.
type Argument struct {
	Name  Ident
	Value Value
}

type ArgumentList []Argument

func (l ArgumentList) Get(name string) (Value, bool) {
	for _, a := range l {
		if a.Name.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

type Directive struct {
	Name      Ident
	Arguments ArgumentList
	Loc       errors.Location
}

func (d Directive) Location() errors.Location { return d.Loc }

type DirectiveList []Directive

func (l DirectiveList) Get(name string) *Directive {
	for i := range l {
		if l[i].Name.Name == name {
			return &l[i]
		}
	}
	return nil
}

// All returns every application of a repeatable directive, in source order.
func (l DirectiveList) All(name string) []*Directive {
	var out []*Directive
	for i := range l {
		if l[i].Name.Name == name {
			out = append(out, &l[i])
		}
	}
	return out
}
