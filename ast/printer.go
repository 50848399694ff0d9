package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders n back to GraphQL source text. It is the `print_ast` entry
// point of spec §6. For an executable document (operations and fragments),
// Print(Parse(S)) re-parses to a structurally equal AST. Type system
// definitions, directive definitions and extensions are not printed: a
// Document's Schema, Types, Directives and Extensions are omitted from the
// output, and value or type nodes passed directly are rendered as a
// "<*ast.T>" placeholder.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func printNode(b *strings.Builder, n Node, depth int) {
	switch n := n.(type) {
	case *Document:
		printDocument(b, n)
	case *OperationDefinition:
		printOperation(b, n)
	case *FragmentDefinition:
		printFragmentDefinition(b, n)
	case *Field:
		printField(b, n, depth)
	case *FragmentSpread:
		printFragmentSpread(b, n)
	case *InlineFragment:
		printInlineFragment(b, n, depth)
	default:
		b.WriteString(fmt.Sprintf("<%T>", n))
	}
}

func printDocument(b *strings.Builder, doc *Document) {
	first := true
	sep := func() {
		if !first {
			b.WriteString("\n\n")
		}
		first = false
	}
	for _, op := range doc.Operations {
		sep()
		printOperation(b, op)
	}
	for _, frag := range doc.Fragments {
		sep()
		printFragmentDefinition(b, frag)
	}
}

func printOperation(b *strings.Builder, op *OperationDefinition) {
	if op.Type == Query && op.Name.Name == "" && len(op.Vars) == 0 && len(op.Directives) == 0 {
		printSelectionSet(b, op.Selections, 0)
		return
	}
	b.WriteString(string(op.Type))
	if op.Name.Name != "" {
		b.WriteString(" ")
		b.WriteString(op.Name.Name)
	}
	if len(op.Vars) > 0 {
		b.WriteString("(")
		for i, v := range op.Vars {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("$")
			b.WriteString(v.Name.Name)
			b.WriteString(": ")
			b.WriteString(v.Type.String())
			if v.Default != nil {
				b.WriteString(" = ")
				printValue(b, v.Default)
			}
			printDirectives(b, v.Directives)
		}
		b.WriteString(")")
	}
	printDirectives(b, op.Directives)
	b.WriteString(" ")
	printSelectionSet(b, op.Selections, 0)
}

func printFragmentDefinition(b *strings.Builder, f *FragmentDefinition) {
	b.WriteString("fragment ")
	b.WriteString(f.Name.Name)
	b.WriteString(" on ")
	b.WriteString(f.On.Name.Name)
	printDirectives(b, f.Directives)
	b.WriteString(" ")
	printSelectionSet(b, f.Selections, 0)
}

func printSelectionSet(b *strings.Builder, sels []Selection, depth int) {
	if len(sels) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, sel := range sels {
		indent(b, depth+1)
		printNode(b, sel, depth+1)
		b.WriteString("\n")
	}
	indent(b, depth)
	b.WriteString("}")
}

func printField(b *strings.Builder, f *Field, depth int) {
	if f.Alias.Name != "" && f.Alias.Name != f.Name.Name {
		b.WriteString(f.Alias.Name)
		b.WriteString(": ")
	}
	b.WriteString(f.Name.Name)
	if len(f.Arguments) > 0 {
		b.WriteString("(")
		for i, a := range f.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Name.Name)
			b.WriteString(": ")
			printValue(b, a.Value)
		}
		b.WriteString(")")
	}
	printDirectives(b, f.Directives)
	if len(f.SelectionSet) > 0 {
		b.WriteString(" ")
		printSelectionSet(b, f.SelectionSet, depth)
	}
}

func printFragmentSpread(b *strings.Builder, f *FragmentSpread) {
	b.WriteString("...")
	b.WriteString(f.Name.Name)
	printDirectives(b, f.Directives)
}

func printInlineFragment(b *strings.Builder, f *InlineFragment, depth int) {
	b.WriteString("...")
	if f.HasOn {
		b.WriteString(" on ")
		b.WriteString(f.On.Name.Name)
	}
	printDirectives(b, f.Directives)
	b.WriteString(" ")
	printSelectionSet(b, f.Selections, depth)
}

func printDirectives(b *strings.Builder, ds DirectiveList) {
	for _, d := range ds {
		b.WriteString(" @")
		b.WriteString(d.Name.Name)
		if len(d.Arguments) > 0 {
			b.WriteString("(")
			for i, a := range d.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.Name.Name)
				b.WriteString(": ")
				printValue(b, a.Value)
			}
			b.WriteString(")")
		}
	}
}

func printBlockString(s string) string {
	escaped := strings.ReplaceAll(s, `"""`, `\"""`)
	return `"""` + escaped + `"""`
}

func printValue(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case *IntValue:
		b.WriteString(v.Value)
	case *FloatValue:
		b.WriteString(v.Value)
	case *StringValue:
		if v.Block {
			b.WriteString(printBlockString(v.Value))
		} else {
			b.WriteString(strconv.Quote(v.Value))
		}
	case *BooleanValue:
		if v.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *NullValue:
		b.WriteString("null")
	case *EnumValue:
		b.WriteString(v.Value)
	case *Variable:
		b.WriteString("$")
		b.WriteString(v.Name)
	case *ListValue:
		b.WriteString("[")
		for i, e := range v.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			printValue(b, e)
		}
		b.WriteString("]")
	case *ObjectValue:
		b.WriteString("{")
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name.Name)
			b.WriteString(": ")
			printValue(b, f.Value)
		}
		b.WriteString("}")
	default:
		b.WriteString(fmt.Sprintf("<%T>", v))
	}
}
