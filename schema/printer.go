package schema

import (
	"fmt"
	"sort"
	"strings"
)

// PrintSchema renders s back to SDL. Declaration order is not preserved —
// types and directives are printed sorted by name — satisfying the
// round-trip property of spec §8 (`build_schema(print_schema(s))` produces
// a schema equal to s, not one with an identical token stream).
func PrintSchema(s *Schema) string {
	var b strings.Builder

	if needsExplicitSchemaBlock(s) {
		b.WriteString("schema {\n")
		if s.Query != nil {
			fmt.Fprintf(&b, "  query: %s\n", s.Query.Name)
		}
		if s.Mutation != nil {
			fmt.Fprintf(&b, "  mutation: %s\n", s.Mutation.Name)
		}
		if s.Subscription != nil {
			fmt.Fprintf(&b, "  subscription: %s\n", s.Subscription.Name)
		}
		b.WriteString("}\n\n")
	}

	for _, name := range sortedCustomDirectiveNames(s) {
		printDirectiveDef(&b, s.Directives[name])
	}

	for _, name := range sortedTypeNames(s) {
		printNamedType(&b, s.Types[name])
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func needsExplicitSchemaBlock(s *Schema) bool {
	if s.Query != nil && s.Query.Name != "Query" {
		return true
	}
	if s.Mutation != nil && s.Mutation.Name != "Mutation" {
		return true
	}
	if s.Subscription != nil && s.Subscription.Name != "Subscription" {
		return true
	}
	return false
}

func isBuiltinDirective(name string) bool {
	return name == "skip" || name == "include" || name == "deprecated"
}

func isBuiltinScalar(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	default:
		return false
	}
}

func sortedCustomDirectiveNames(s *Schema) []string {
	names := make([]string, 0, len(s.Directives))
	for name := range s.Directives {
		if !isBuiltinDirective(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func sortedTypeNames(s *Schema) []string {
	names := make([]string, 0, len(s.Types))
	for name, t := range s.Types {
		if sc, ok := t.(*Scalar); ok && isBuiltinScalar(sc.Name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printDesc(b *strings.Builder, desc string, indent string) {
	if desc == "" {
		return
	}
	fmt.Fprintf(b, "%s\"\"\"%s\"\"\"\n", indent, desc)
}

func printDirectiveDef(b *strings.Builder, d *DirectiveDef) {
	printDesc(b, d.Desc, "")
	fmt.Fprintf(b, "directive @%s%s", d.Name, printArgDefs(d.Args))
	if d.Repeatable {
		b.WriteString(" repeatable")
	}
	fmt.Fprintf(b, " on %s\n\n", strings.Join(d.Locations, " | "))
}

func printNamedType(b *strings.Builder, t NamedType) {
	switch t := t.(type) {
	case *Scalar:
		printDesc(b, t.Desc, "")
		fmt.Fprintf(b, "scalar %s\n\n", t.Name)
	case *Object:
		printDesc(b, t.Desc, "")
		fmt.Fprintf(b, "type %s%s {\n", t.Name, printImplements(t.Interfaces))
		for _, f := range t.Fields {
			printFieldDef(b, f)
		}
		b.WriteString("}\n\n")
	case *Interface:
		printDesc(b, t.Desc, "")
		fmt.Fprintf(b, "interface %s%s {\n", t.Name, printInterfaceImplements(t.Interfaces))
		for _, f := range t.Fields {
			printFieldDef(b, f)
		}
		b.WriteString("}\n\n")
	case *Union:
		printDesc(b, t.Desc, "")
		names := make([]string, len(t.PossibleTypes))
		for i, m := range t.PossibleTypes {
			names[i] = m.Name
		}
		fmt.Fprintf(b, "union %s = %s\n\n", t.Name, strings.Join(names, " | "))
	case *Enum:
		printDesc(b, t.Desc, "")
		fmt.Fprintf(b, "enum %s {\n", t.Name)
		for _, v := range t.Values {
			printDesc(b, v.Desc, "  ")
			fmt.Fprintf(b, "  %s%s\n", v.Name, printDeprecation(v.Deprecated, v.DeprecationReason))
		}
		b.WriteString("}\n\n")
	case *InputObject:
		printDesc(b, t.Desc, "")
		fmt.Fprintf(b, "input %s {\n", t.Name)
		for _, f := range t.Fields {
			printDesc(b, f.Desc, "  ")
			fmt.Fprintf(b, "  %s: %s%s\n", f.Name, f.Type.String(), printDefault(f))
		}
		b.WriteString("}\n\n")
	}
}

func printImplements(ifaces []*Interface) string {
	if len(ifaces) == 0 {
		return ""
	}
	names := make([]string, len(ifaces))
	for i, f := range ifaces {
		names[i] = f.Name
	}
	return " implements " + strings.Join(names, " & ")
}

func printInterfaceImplements(ifaces []*Interface) string {
	return printImplements(ifaces)
}

func printFieldDef(b *strings.Builder, f *Field) {
	printDesc(b, f.Desc, "  ")
	fmt.Fprintf(b, "  %s%s: %s%s\n", f.Name, printArgDefs(f.Args), f.Type.String(), printDeprecation(f.Deprecated, f.DeprecationReason))
}

func printArgDefs(args InputValueList) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s: %s%s", a.Name, a.Type.String(), printDefault(a))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printDefault(v *InputValue) string {
	if !v.HasDefault {
		return ""
	}
	return " = " + PrintDefaultValue(v.Default)
}

// PrintDefaultValue renders an already-coerced Go value (as stored in
// InputValue.Default) back to GraphQL literal syntax. Exported for the
// introspection package's `__InputValue.defaultValue` field.
func PrintDefaultValue(v interface{}) string {
	return printDefaultValue(v)
}

func printDefaultValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = printDefaultValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, printDefaultValue(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func printDeprecation(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}
	if reason == "" || reason == "No longer supported" {
		return " @deprecated"
	}
	return fmt.Sprintf(" @deprecated(reason: %q)", reason)
}
