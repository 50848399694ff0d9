package schema

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
)

// Build turns a parsed SDL document into an executable Schema, following
// the two-phase placeholder-then-hydrate shape of the teacher's
// internal/schema/schema.go Parse method: gather every named type as a
// placeholder first (so cyclic references resolve), then walk back over
// every placeholder filling in fields, arguments, interfaces and members.
func Build(doc *ast.Document, opts ...BuildOption) (*Schema, error) {
	cfg := &buildConfig{}
	for _, o := range opts {
		o(cfg)
	}

	s := newSchema()
	g := &gatherer{
		schema:       s,
		objects:      map[string]*objectDef{},
		interfaces:   map[string]*interfaceDef{},
		unions:       map[string]*unionDef{},
		enums:        map[string]*enumDef{},
		inputObjects: map[string]*inputObjectDef{},
		scalars:      map[string]*ast.ScalarTypeDefinition{},
		scalarExtDirectives: map[string][]ast.DirectiveList{},
		directives:   map[string]*ast.DirectiveDefinition{},
	}

	if err := g.gatherTypes(doc); err != nil {
		return nil, err
	}
	if err := g.gatherExtensions(doc); err != nil {
		return nil, err
	}
	if err := g.instantiateScalars(cfg); err != nil {
		return nil, err
	}
	if err := g.instantiateDirectives(); err != nil {
		return nil, err
	}
	if err := g.hydrate(cfg); err != nil {
		return nil, err
	}
	if err := g.resolveRootTypes(); err != nil {
		return nil, err
	}
	if err := g.applyDirectives(doc, cfg); err != nil {
		if qe, ok := err.(*errors.QueryError); ok {
			return nil, qe
		}
		return nil, errors.NewSchemaBuildError("%s", err)
	}

	if errs := s.Validate(); len(errs) > 0 {
		return nil, errors.MultiError(errs)
	}
	return s, nil
}

// BuildOption configures an optional side input to Build: a resolver map,
// schema directive implementations, custom scalars or type resolvers.
type BuildOption func(*buildConfig)

type buildConfig struct {
	// resolvers maps "TypeName.fieldName" to the resolver value attached
	// to schema.Field.Resolver, consulted by the resolvers package ahead
	// of its reflection-based dispatch chain.
	resolvers map[string]interface{}
	// additionalScalars supplies a ScalarCoercion for every non-builtin
	// scalar declared in the SDL; a declared scalar with no entry here
	// fails the build (spec §4.4 step 3).
	additionalScalars map[string]ScalarCoercion
	// schemaDirectives maps a declared directive name to the
	// implementation invoked for every application of that directive.
	schemaDirectives map[string]SchemaDirective
	// typeResolvers maps an interface/union name to the TypeResolver
	// attached to it, used by the executor for polymorphic dispatch.
	typeResolvers map[string]TypeResolver
}

// Resolvers attaches field resolvers by "TypeName.fieldName" key.
func Resolvers(m map[string]interface{}) BuildOption {
	return func(c *buildConfig) { c.resolvers = m }
}

// AdditionalScalars registers coercion logic for custom scalars declared
// in the SDL. Builtins (Int, Float, String, Boolean, ID) never need an
// entry here.
func AdditionalScalars(m map[string]ScalarCoercion) BuildOption {
	return func(c *buildConfig) { c.additionalScalars = m }
}

// SchemaDirectives registers the implementation invoked for every
// application of the named directive while the schema is built.
func SchemaDirectives(m map[string]SchemaDirective) BuildOption {
	return func(c *buildConfig) { c.schemaDirectives = m }
}

// TypeResolvers attaches a polymorphic TypeResolver to a named
// interface or union.
func TypeResolvers(m map[string]TypeResolver) BuildOption {
	return func(c *buildConfig) { c.typeResolvers = m }
}

// objectDef/interfaceDef/etc. aggregate a base type-system definition with
// whatever `extend ...` blocks target it, so extensions never need to
// mutate the caller's ast.Document.
type objectDef struct {
	obj        *Object
	base       *ast.ObjectTypeDefinition
	fields     []ast.FieldsDefinition
	interfaces [][]ast.NamedType
	directives []ast.DirectiveList
}

type interfaceDef struct {
	iface      *Interface
	base       *ast.InterfaceTypeDefinition
	fields     []ast.FieldsDefinition
	interfaces [][]ast.NamedType
	directives []ast.DirectiveList
}

type unionDef struct {
	union      *Union
	base       *ast.Union
	members    [][]ast.NamedType
	directives []ast.DirectiveList
}

type enumDef struct {
	enum       *Enum
	base       *ast.EnumTypeDefinition
	values     [][]*ast.EnumValueDefinition
	directives []ast.DirectiveList
}

type inputObjectDef struct {
	input      *InputObject
	base       *ast.InputObject
	fields     []ast.InputValueDefinitionList
	directives []ast.DirectiveList
}

type gatherer struct {
	schema       *Schema
	objects      map[string]*objectDef
	interfaces   map[string]*interfaceDef
	unions       map[string]*unionDef
	enums        map[string]*enumDef
	inputObjects map[string]*inputObjectDef
	scalars      map[string]*ast.ScalarTypeDefinition
	scalarExtDirectives map[string][]ast.DirectiveList
	directives   map[string]*ast.DirectiveDefinition
	schemaDef    *ast.SchemaDefinition
	schemaExts   []*ast.SchemaExtension
}

func (g *gatherer) errDuplicate(name string, loc errors.Location) *errors.QueryError {
	err := errors.NewSchemaBuildError("duplicate type definition %q", name)
	err.Locations = []errors.Location{loc}
	return err
}

func (g *gatherer) gatherTypes(doc *ast.Document) error {
	g.schemaDef = doc.Schema
	for _, def := range doc.Types {
		name := def.TypeName()
		if _, ok := g.schema.Types[name]; ok {
			return g.errDuplicate(name, def.Location())
		}
		switch d := def.(type) {
		case *ast.ObjectTypeDefinition:
			obj := &Object{Name: name, Desc: d.Desc, Loc: d.Loc}
			g.schema.Types[name] = obj
			g.objects[name] = &objectDef{obj: obj, base: d}
		case *ast.InterfaceTypeDefinition:
			iface := &Interface{Name: name, Desc: d.Desc, Loc: d.Loc}
			g.schema.Types[name] = iface
			g.interfaces[name] = &interfaceDef{iface: iface, base: d}
		case *ast.Union:
			u := &Union{Name: name, Desc: d.Desc, Loc: d.Loc}
			g.schema.Types[name] = u
			g.unions[name] = &unionDef{union: u, base: d}
		case *ast.EnumTypeDefinition:
			e := &Enum{Name: name, Desc: d.Desc, Loc: d.Loc}
			g.schema.Types[name] = e
			g.enums[name] = &enumDef{enum: e, base: d}
		case *ast.InputObject:
			io := &InputObject{Name: name, Desc: d.Desc, Loc: d.Loc}
			g.schema.Types[name] = io
			g.inputObjects[name] = &inputObjectDef{input: io, base: d}
		case *ast.ScalarTypeDefinition:
			g.scalars[name] = d
		default:
			return errors.NewSchemaBuildError("unsupported type system definition %q", name)
		}
	}
	for _, d := range doc.Directives {
		if _, ok := g.directives[d.Name.Name]; ok {
			return g.errDuplicate(d.Name.Name, d.Loc)
		}
		if _, ok := g.schema.Directives[d.Name.Name]; ok {
			return g.errDuplicate(d.Name.Name, d.Loc)
		}
		g.directives[d.Name.Name] = d
	}
	return nil
}

func (g *gatherer) gatherExtensions(doc *ast.Document) error {
	for _, ext := range doc.Extensions {
		switch e := ext.(type) {
		case *ast.ObjectTypeExtension:
			od, ok := g.objects[e.Name.Name]
			if !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			od.fields = append(od.fields, e.Fields)
			od.interfaces = append(od.interfaces, e.Interfaces)
			od.directives = append(od.directives, e.Directives)
		case *ast.InterfaceTypeExtension:
			id, ok := g.interfaces[e.Name.Name]
			if !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			id.fields = append(id.fields, e.Fields)
			id.interfaces = append(id.interfaces, e.Interfaces)
			id.directives = append(id.directives, e.Directives)
		case *ast.UnionExtension:
			ud, ok := g.unions[e.Name.Name]
			if !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			ud.members = append(ud.members, e.MemberTypes)
			ud.directives = append(ud.directives, e.Directives)
		case *ast.EnumTypeExtension:
			ed, ok := g.enums[e.Name.Name]
			if !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			ed.values = append(ed.values, e.Values)
			ed.directives = append(ed.directives, e.Directives)
		case *ast.InputObjectExtension:
			in, ok := g.inputObjects[e.Name.Name]
			if !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			in.fields = append(in.fields, e.Fields)
			in.directives = append(in.directives, e.Directives)
		case *ast.ScalarTypeExtension:
			if _, ok := g.scalars[e.Name.Name]; !ok {
				return errTypeNotFound(e.Name.Name, e.Loc)
			}
			g.scalarExtDirectives[e.Name.Name] = append(g.scalarExtDirectives[e.Name.Name], e.Directives)
		case *ast.SchemaExtension:
			g.schemaExts = append(g.schemaExts, e)
		default:
			return errors.NewSchemaBuildError("unsupported extension kind")
		}
	}
	return nil
}

func (g *gatherer) instantiateScalars(cfg *buildConfig) error {
	for name, d := range g.scalars {
		coerce, ok := cfg.additionalScalars[name]
		if !ok {
			return errors.NewSchemaBuildError("unknown scalar %q: no coercion registered via AdditionalScalars", name)
		}
		g.schema.Types[name] = &Scalar{Name: name, Desc: d.Desc, Loc: d.Loc, Coerce: coerce}
	}
	return nil
}

func (g *gatherer) instantiateDirectives() error {
	for name, d := range g.directives {
		args, err := resolveInputValueDefs(g.schema, d.Arguments)
		if err != nil {
			return err
		}
		g.schema.Directives[name] = &DirectiveDef{
			Name:       name,
			Desc:       d.Desc,
			Loc:        d.Loc,
			Locations:  d.Locations,
			Args:       args,
			Repeatable: d.Repeatable,
		}
	}
	return nil
}

// ResolveTypeRef resolves a syntax-level ast.TypeRef (as it appears in a
// variable definition) against s. Exported for the validation package,
// which needs to turn `$var: [String!]`'s TypeRef into a schema.Type to
// check it against argument/field types.
func ResolveTypeRef(s *Schema, ref ast.TypeRef) (Type, error) {
	return resolveTypeRef(s, ref)
}

// resolveTypeRef turns a syntax-level ast.TypeRef into a resolved schema
// Type, wrapping List/NonNull layers and looking up named references
// against the schema being built.
func resolveTypeRef(s *Schema, ref ast.TypeRef) (Type, error) {
	switch t := ref.(type) {
	case ast.NamedType:
		named := s.Resolve(t.Name.Name)
		if named == nil {
			return nil, errTypeNotFound(t.Name.Name, t.Name.Loc)
		}
		return named, nil
	case *ast.ListType:
		of, err := resolveTypeRef(s, t.OfType)
		if err != nil {
			return nil, err
		}
		return &List{OfType: of}, nil
	case *ast.NonNullType:
		of, err := resolveTypeRef(s, t.OfType)
		if err != nil {
			return nil, err
		}
		return &NonNull{OfType: of}, nil
	default:
		return nil, errors.NewSchemaBuildError("unsupported type reference")
	}
}

func resolveInputValueDefs(s *Schema, defs ast.InputValueDefinitionList) (InputValueList, error) {
	out := make(InputValueList, 0, len(defs))
	for _, d := range defs {
		t, err := resolveTypeRef(s, d.Type)
		if err != nil {
			return nil, err
		}
		rd, err := resolveDirectiveApplications(s, d.Directives)
		if err != nil {
			return nil, err
		}
		iv := &InputValue{
			Name:       d.Name.Name,
			Type:       t,
			Desc:       d.Desc,
			Loc:        d.Loc,
			TypeLoc:    d.TypeLoc,
			Directives: rd,
		}
		if d.Default != nil {
			v, err := coerceDefaultLiteral(s, d.Default, t)
			if err != nil {
				return nil, err
			}
			iv.Default = v
			iv.HasDefault = true
		}
		out = append(out, iv)
	}
	return out, nil
}

func resolveDirectiveApplications(s *Schema, dl ast.DirectiveList) (ResolvedDirectiveList, error) {
	out := make(ResolvedDirectiveList, 0, len(dl))
	for _, d := range dl {
		dd, ok := s.Directives[d.Name.Name]
		if !ok {
			err := errors.NewSchemaBuildError("directive %q not found", d.Name.Name)
			err.Locations = []errors.Location{d.Loc}
			return nil, err
		}
		args := map[string]interface{}{}
		for _, argDef := range dd.Args {
			if v, ok := d.Arguments.Get(argDef.Name); ok {
				coerced, err := coerceDefaultLiteral(s, v, argDef.Type)
				if err != nil {
					return nil, err
				}
				args[argDef.Name] = coerced
			} else if argDef.HasDefault {
				args[argDef.Name] = argDef.Default
			}
		}
		for _, a := range d.Arguments {
			if dd.Args.Get(a.Name.Name) == nil {
				err := errors.NewSchemaBuildError("unknown argument %q for directive %q", a.Name.Name, d.Name.Name)
				err.Locations = []errors.Location{a.Name.Loc}
				return nil, err
			}
		}
		out = append(out, &ResolvedDirective{Name: d.Name.Name, Args: args})
	}
	return out, nil
}

func directivesDeprecation(dl ResolvedDirectiveList) (bool, string) {
	d := dl.Get("deprecated")
	if d == nil {
		return false, ""
	}
	reason, _ := d.Args["reason"].(string)
	return true, reason
}

func (g *gatherer) hydrate(cfg *buildConfig) error {
	for name, od := range g.objects {
		fields := od.base.Fields
		for _, extra := range od.fields {
			fields = append(fields, extra...)
		}
		ifaceNames := od.base.Interfaces
		for _, extra := range od.interfaces {
			ifaceNames = append(ifaceNames, extra...)
		}

		fl, err := g.resolveFields(name, fields, cfg)
		if err != nil {
			return err
		}
		od.obj.Fields = fl

		for _, in := range ifaceNames {
			t := g.schema.Resolve(in.Name.Name)
			iface, ok := t.(*Interface)
			if !ok {
				return errors.NewSchemaBuildError("type %q does not implement interface %q (not an interface)", name, in.Name.Name)
			}
			od.obj.Interfaces = append(od.obj.Interfaces, iface)
			iface.PossibleTypes = append(iface.PossibleTypes, od.obj)
		}
	}

	for name, id := range g.interfaces {
		fields := id.base.Fields
		for _, extra := range id.fields {
			fields = append(fields, extra...)
		}
		ifaceNames := id.base.Interfaces
		for _, extra := range id.interfaces {
			ifaceNames = append(ifaceNames, extra...)
		}

		fl, err := g.resolveFields(name, fields, cfg)
		if err != nil {
			return err
		}
		id.iface.Fields = fl
		for _, in := range ifaceNames {
			t := g.schema.Resolve(in.Name.Name)
			parent, ok := t.(*Interface)
			if !ok {
				return errors.NewSchemaBuildError("interface %q does not implement interface %q (not an interface)", name, in.Name.Name)
			}
			id.iface.Interfaces = append(id.iface.Interfaces, parent)
		}
		if tr, ok := cfg.typeResolvers[name]; ok {
			id.iface.ResolveType = tr
		}
	}

	for name, ud := range g.unions {
		members := ud.base.MemberTypes
		for _, extra := range ud.members {
			members = append(members, extra...)
		}
		for _, m := range members {
			t := g.schema.Resolve(m.Name.Name)
			obj, ok := t.(*Object)
			if !ok {
				if t == nil {
					return errTypeNotFound(m.Name.Name, m.Location())
				}
				return errors.NewSchemaBuildError("union member %q is not an object type", m.Name.Name)
			}
			ud.union.PossibleTypes = append(ud.union.PossibleTypes, obj)
		}
		if tr, ok := cfg.typeResolvers[name]; ok {
			ud.union.ResolveType = tr
		}
	}

	for _, ed := range g.enums {
		values := ed.base.Values
		for _, extra := range ed.values {
			values = append(values, extra...)
		}
		for _, v := range values {
			rd, err := resolveDirectiveApplications(g.schema, v.Directives)
			if err != nil {
				return err
			}
			deprecated, reason := directivesDeprecation(rd)
			ed.enum.Values = append(ed.enum.Values, &EnumValue{
				Name:              v.Name.Name,
				Desc:              v.Desc,
				Deprecated:        deprecated,
				DeprecationReason: reason,
				Directives:        rd,
			})
		}
	}

	for name, in := range g.inputObjects {
		fields := in.base.Fields
		for _, extra := range in.fields {
			fields = append(fields, extra...)
		}
		fl, err := resolveInputValueDefs(g.schema, fields)
		if err != nil {
			return fmt.Errorf("building input object %q: %w", name, err)
		}
		in.input.Fields = fl
	}

	return nil
}

func (g *gatherer) resolveFields(typeName string, defs ast.FieldsDefinition, cfg *buildConfig) (FieldList, error) {
	out := make(FieldList, 0, len(defs))
	for _, fd := range defs {
		t, err := resolveTypeRef(g.schema, fd.Type)
		if err != nil {
			return nil, err
		}
		args, err := resolveInputValueDefs(g.schema, fd.Arguments)
		if err != nil {
			return nil, err
		}
		rd, err := resolveDirectiveApplications(g.schema, fd.Directives)
		if err != nil {
			return nil, err
		}
		deprecated, reason := directivesDeprecation(rd)
		f := &Field{
			Name:              fd.Name.Name,
			Args:              args,
			Type:              t,
			Directives:        rd,
			Desc:              fd.Desc,
			Deprecated:        deprecated,
			DeprecationReason: reason,
			Loc:               fd.Name.Loc,
		}
		if cfg.resolvers != nil {
			f.Resolver = cfg.resolvers[typeName+"."+fd.Name.Name]
		}
		out = append(out, f)
	}
	return out, nil
}

func (g *gatherer) resolveRootTypes() error {
	names := map[ast.OperationType]string{}
	if g.schemaDef != nil {
		for k, v := range g.schemaDef.RootOperationNames {
			names[k] = v
		}
	}
	for _, ext := range g.schemaExts {
		for k, v := range ext.RootOperationNames {
			names[k] = v
		}
	}
	if len(names) == 0 {
		// No explicit `schema { ... }` block: fall back to the
		// conventional root type names, per the GraphQL spec.
		for _, n := range [3]string{"Query", "Mutation", "Subscription"} {
			if _, ok := g.objects[n]; ok {
				names[operationTypeFor(n)] = n
			}
		}
	}
	for kind, typeName := range names {
		t, ok := g.schema.Types[typeName]
		if !ok {
			return errors.NewSchemaBuildError("root operation type %q not found", typeName)
		}
		obj, ok := t.(*Object)
		if !ok {
			return errors.NewSchemaBuildError("root operation type %q is not an object type", typeName)
		}
		switch kind {
		case ast.Query:
			g.schema.Query = obj
		case ast.Mutation:
			g.schema.Mutation = obj
		case ast.Subscription:
			g.schema.Subscription = obj
		}
	}
	if g.schema.Query == nil {
		return errors.NewSchemaBuildError("schema must define a Query root type")
	}
	return nil
}

func operationTypeFor(conventionalName string) ast.OperationType {
	switch conventionalName {
	case "Query":
		return ast.Query
	case "Mutation":
		return ast.Mutation
	default:
		return ast.Subscription
	}
}
