package schema

import (
	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
)

// applyDirectives runs every schema directive implementation registered via
// SchemaDirectives over the elements it was declared on, in the order
// those elements appear in the source document (spec §4.4 step 5).
// Returning (nil, nil) from a hook removes the element; pruneDanglingRefs
// then drops anything left pointing at a removed type.
func (g *gatherer) applyDirectives(doc *ast.Document, cfg *buildConfig) error {
	if len(cfg.schemaDirectives) == 0 {
		return nil
	}

	removedTypes := map[string]bool{}

	if g.schemaDef != nil || len(g.schemaExts) > 0 {
		dl := g.schemaDef.Directives
		for _, ext := range g.schemaExts {
			dl = append(dl, ext.Directives...)
		}
		rd, err := resolveDirectiveApplications(g.schema, dl)
		if err != nil {
			return err
		}
		for _, app := range rd {
			impl, ok := cfg.schemaDirectives[app.Name]
			if !ok {
				continue
			}
			s, err := impl.OnSchema(app.Args, g.schema)
			if err != nil {
				return err
			}
			if s == nil {
				return errors.NewSchemaBuildError("@%s: a schema cannot be removed", app.Name)
			}
		}
	}

	for _, def := range doc.Types {
		name := def.TypeName()
		switch def.(type) {
		case *ast.ObjectTypeDefinition:
			od, ok := g.objects[name]
			if !ok {
				continue // removed by an earlier hook application
			}
			dl := mergeDirectiveLists(od.base.Directives, od.directives)
			keep, err := applyHooks(g.schema, cfg, dl, od.obj, func(args map[string]interface{}, impl SchemaDirective, obj *Object) (*Object, error) {
				return impl.OnObject(args, obj)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				delete(g.objects, name)
				removedTypes[name] = true
				continue
			}
			if err := applyFieldHooks(g.schema, cfg, keep); err != nil {
				return err
			}
		case *ast.InterfaceTypeDefinition:
			id, ok := g.interfaces[name]
			if !ok {
				continue
			}
			dl := mergeDirectiveLists(id.base.Directives, id.directives)
			keep, err := applyHooks(g.schema, cfg, dl, id.iface, func(args map[string]interface{}, impl SchemaDirective, t *Interface) (*Interface, error) {
				return impl.OnInterface(args, t)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				delete(g.interfaces, name)
				removedTypes[name] = true
				continue
			}
			if err := applyInterfaceFieldHooks(g.schema, cfg, keep); err != nil {
				return err
			}
		case *ast.Union:
			ud, ok := g.unions[name]
			if !ok {
				continue
			}
			dl := mergeDirectiveLists(ud.base.Directives, ud.directives)
			keep, err := applyHooks(g.schema, cfg, dl, ud.union, func(args map[string]interface{}, impl SchemaDirective, t *Union) (*Union, error) {
				return impl.OnUnion(args, t)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				delete(g.unions, name)
				removedTypes[name] = true
			}
		case *ast.EnumTypeDefinition:
			ed, ok := g.enums[name]
			if !ok {
				continue
			}
			dl := mergeDirectiveLists(ed.base.Directives, ed.directives)
			keep, err := applyHooks(g.schema, cfg, dl, ed.enum, func(args map[string]interface{}, impl SchemaDirective, t *Enum) (*Enum, error) {
				return impl.OnEnum(args, t)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				delete(g.enums, name)
				removedTypes[name] = true
				continue
			}
			kept := keep.Values[:0]
			for _, v := range keep.Values {
				nv, err := applyValueHooks(cfg, keep, v)
				if err != nil {
					return err
				}
				if nv != nil {
					kept = append(kept, nv)
				}
			}
			keep.Values = kept
		case *ast.InputObject:
			in, ok := g.inputObjects[name]
			if !ok {
				continue
			}
			dl := mergeDirectiveLists(in.base.Directives, in.directives)
			keep, err := applyHooks(g.schema, cfg, dl, in.input, func(args map[string]interface{}, impl SchemaDirective, t *InputObject) (*InputObject, error) {
				return impl.OnInputObject(args, t)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				delete(g.inputObjects, name)
				removedTypes[name] = true
				continue
			}
			if err := applyInputFieldHooks(cfg, keep); err != nil {
				return err
			}
		case *ast.ScalarTypeDefinition:
			t, ok := g.schema.Types[name].(*Scalar)
			if !ok {
				continue
			}
			dl := mergeDirectiveLists(def.(*ast.ScalarTypeDefinition).Directives, g.scalarExtDirectives[name])
			keep, err := applyHooks(g.schema, cfg, dl, t, func(args map[string]interface{}, impl SchemaDirective, s *Scalar) (*Scalar, error) {
				return impl.OnScalar(args, s)
			})
			if err != nil {
				return err
			}
			if keep == nil {
				delete(g.schema.Types, name)
				removedTypes[name] = true
			}
		}
	}

	if len(removedTypes) > 0 {
		pruneDanglingRefs(g.schema, removedTypes)
	}
	return nil
}

func mergeDirectiveLists(base ast.DirectiveList, extra []ast.DirectiveList) ast.DirectiveList {
	out := base
	for _, e := range extra {
		out = append(out, e...)
	}
	return out
}

// applyHooks resolves dl's directive applications and folds apply over
// elem, honoring the nil-means-remove convention. Repeatable directives
// invoke the hook once per application, in source order.
func applyHooks[T any](s *Schema, cfg *buildConfig, dl ast.DirectiveList, elem *T, apply func(map[string]interface{}, SchemaDirective, *T) (*T, error)) (*T, error) {
	rd, err := resolveDirectiveApplications(s, dl)
	if err != nil {
		return nil, err
	}
	current := elem
	for _, app := range rd {
		impl, ok := cfg.schemaDirectives[app.Name]
		if !ok || current == nil {
			continue
		}
		current, err = apply(app.Args, impl, current)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func applyFieldHooks(s *Schema, cfg *buildConfig, obj *Object) error {
	kept := obj.Fields[:0]
	for _, f := range obj.Fields {
		nf, err := applyOneFieldHooks(s, cfg, obj, f)
		if err != nil {
			return err
		}
		if nf != nil {
			kept = append(kept, nf)
		}
	}
	obj.Fields = kept
	return nil
}

func applyInterfaceFieldHooks(s *Schema, cfg *buildConfig, iface *Interface) error {
	kept := iface.Fields[:0]
	for _, f := range iface.Fields {
		nf, err := applyOneFieldHooks(s, cfg, iface, f)
		if err != nil {
			return err
		}
		if nf != nil {
			kept = append(kept, nf)
		}
	}
	iface.Fields = kept
	return nil
}

func applyOneFieldHooks(s *Schema, cfg *buildConfig, parent NamedType, f *Field) (*Field, error) {
	current := f
	for _, app := range f.Directives {
		impl, ok := cfg.schemaDirectives[app.Name]
		if !ok || current == nil {
			continue
		}
		var err error
		current, err = impl.OnField(app.Args, parent, current)
		if err != nil {
			return nil, err
		}
	}
	if current == nil {
		return nil, nil
	}
	keptArgs := current.Args[:0]
	for _, a := range current.Args {
		na, err := applyOneArgHooks(cfg, current, a)
		if err != nil {
			return nil, err
		}
		if na != nil {
			keptArgs = append(keptArgs, na)
		}
	}
	current.Args = keptArgs
	return current, nil
}

func applyOneArgHooks(cfg *buildConfig, owner interface{}, a *InputValue) (*InputValue, error) {
	current := a
	for _, app := range a.Directives {
		impl, ok := cfg.schemaDirectives[app.Name]
		if !ok || current == nil {
			continue
		}
		var err error
		current, err = impl.OnArgument(app.Args, owner, current)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func applyValueHooks(cfg *buildConfig, parent *Enum, v *EnumValue) (*EnumValue, error) {
	current := v
	for _, app := range v.Directives {
		impl, ok := cfg.schemaDirectives[app.Name]
		if !ok || current == nil {
			continue
		}
		var err error
		current, err = impl.OnEnumValue(app.Args, parent, current)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func applyInputFieldHooks(cfg *buildConfig, obj *InputObject) error {
	kept := obj.Fields[:0]
	for _, f := range obj.Fields {
		current := f
		for _, app := range f.Directives {
			impl, ok := cfg.schemaDirectives[app.Name]
			if !ok || current == nil {
				continue
			}
			var err error
			current, err = impl.OnInputField(app.Args, obj, current)
			if err != nil {
				return err
			}
		}
		if current != nil {
			kept = append(kept, current)
		}
	}
	obj.Fields = kept
	return nil
}

// pruneDanglingRefs drops any reference to a type named in removed:
// object/interface fields of that type, arguments of that type on the
// remaining fields, input fields, interface implementations, union
// members and the schema's root operation types.
func pruneDanglingRefs(s *Schema, removed map[string]bool) {
	refsRemoved := func(t Type) bool {
		named := NamedOf(t)
		return named != nil && removed[named.TypeName()]
	}
	pruneArgs := func(fields FieldList) {
		for _, f := range fields {
			kept := f.Args[:0]
			for _, a := range f.Args {
				if !refsRemoved(a.Type) {
					kept = append(kept, a)
				}
			}
			f.Args = kept
		}
	}

	for _, named := range s.Types {
		switch t := named.(type) {
		case *Object:
			kept := t.Fields[:0]
			for _, f := range t.Fields {
				if !refsRemoved(f.Type) {
					kept = append(kept, f)
				}
			}
			t.Fields = kept
			pruneArgs(t.Fields)

			keptI := t.Interfaces[:0]
			for _, i := range t.Interfaces {
				if !removed[i.Name] {
					keptI = append(keptI, i)
				}
			}
			t.Interfaces = keptI
		case *Interface:
			kept := t.Fields[:0]
			for _, f := range t.Fields {
				if !refsRemoved(f.Type) {
					kept = append(kept, f)
				}
			}
			t.Fields = kept
			pruneArgs(t.Fields)

			keptP := t.PossibleTypes[:0]
			for _, p := range t.PossibleTypes {
				if !removed[p.Name] {
					keptP = append(keptP, p)
				}
			}
			t.PossibleTypes = keptP
		case *Union:
			kept := t.PossibleTypes[:0]
			for _, p := range t.PossibleTypes {
				if !removed[p.Name] {
					kept = append(kept, p)
				}
			}
			t.PossibleTypes = kept
		case *InputObject:
			kept := t.Fields[:0]
			for _, f := range t.Fields {
				if !refsRemoved(f.Type) {
					kept = append(kept, f)
				}
			}
			t.Fields = kept
		}
	}

	if s.Query != nil && removed[s.Query.Name] {
		s.Query = nil
	}
	if s.Mutation != nil && removed[s.Mutation.Name] {
		s.Mutation = nil
	}
	if s.Subscription != nil && removed[s.Subscription.Name] {
		s.Subscription = nil
	}
}
