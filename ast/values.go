package ast

import "github.com/lirsacc/graphql/errors"

// Value is implemented by every literal/variable value node: IntValue,
// FloatValue, StringValue, BooleanValue, NullValue, EnumValue, ListValue,
// ObjectValue and Variable.
type Value interface {
	Node
	isValue()
}

type IntValue struct {
	Value string // preserves raw source form for large integers
	Loc   errors.Location
}

type FloatValue struct {
	Value string
	Loc   errors.Location
}

type StringValue struct {
	Value string
	Block bool // true if produced from a BLOCK_STRING token
	Loc   errors.Location
}

type BooleanValue struct {
	Value bool
	Loc   errors.Location
}

type NullValue struct {
	Loc errors.Location
}

type EnumValue struct {
	Value string
	Loc   errors.Location
}

type ListValue struct {
	Values []Value
	Loc    errors.Location
}

type ObjectValue struct {
	Fields []*ObjectField
	Loc    errors.Location
}

type ObjectField struct {
	Name  Ident
	Value Value
}

type Variable struct {
	Name string
	Loc  errors.Location
}

func (v *IntValue) Location() errors.Location    { return v.Loc }
func (v *FloatValue) Location() errors.Location  { return v.Loc }
func (v *StringValue) Location() errors.Location { return v.Loc }
func (v *BooleanValue) Location() errors.Location { return v.Loc }
func (v *NullValue) Location() errors.Location   { return v.Loc }
func (v *EnumValue) Location() errors.Location   { return v.Loc }
func (v *ListValue) Location() errors.Location    { return v.Loc }
func (v *ObjectValue) Location() errors.Location  { return v.Loc }
func (v *Variable) Location() errors.Location    { return v.Loc }

func (*IntValue) isValue()    {}
func (*FloatValue) isValue()  {}
func (*StringValue) isValue() {}
func (*BooleanValue) isValue() {}
func (*NullValue) isValue()   {}
func (*EnumValue) isValue()   {}
func (*ListValue) isValue()   {}
func (*ObjectValue) isValue() {}
func (*Variable) isValue()   {}

// DeepCopyValue returns an independent copy of v.
func DeepCopyValue(v Value) Value {
	switch v := v.(type) {
	case nil:
		return nil
	case *IntValue:
		cp := *v
		return &cp
	case *FloatValue:
		cp := *v
		return &cp
	case *StringValue:
		cp := *v
		return &cp
	case *BooleanValue:
		cp := *v
		return &cp
	case *NullValue:
		cp := *v
		return &cp
	case *EnumValue:
		cp := *v
		return &cp
	case *Variable:
		cp := *v
		return &cp
	case *ListValue:
		cp := &ListValue{Loc: v.Loc}
		for _, e := range v.Values {
			cp.Values = append(cp.Values, DeepCopyValue(e))
		}
		return cp
	case *ObjectValue:
		cp := &ObjectValue{Loc: v.Loc}
		for _, f := range v.Fields {
			cp.Fields = append(cp.Fields, &ObjectField{Name: f.Name, Value: DeepCopyValue(f.Value)})
		}
		return cp
	default:
		panic("ast: unknown value kind")
	}
}
