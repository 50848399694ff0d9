package validation

import (
	"fmt"

	"github.com/lirsacc/graphql/ast"
	"github.com/lirsacc/graphql/errors"
	"github.com/lirsacc/graphql/schema"
)

// validateArgumentLiterals checks UniqueArgumentNames and recurses into
// every argument value for UniqueInputFieldNames/NoUndefinedVariables,
// independent of whether the argument name is even known to the schema.
func validateArgumentLiterals(c *opContext, args ast.ArgumentList) {
	seen := make(nameSet)
	for _, a := range args {
		validateName(c.context, seen, a.Name, "UniqueArgumentNames", "argument")
		validateLiteral(c, a.Value)
	}
}

// validateArgumentTypes checks KnownArgumentNames, ArgumentsOfCorrectType
// and ProvidedNonNullArguments for a call site's arguments against the
// declared argument list. owner/ownerCap build the error messages' subject
// noun phrase, matching the two distinct phrasings a field vs. a directive
// call site need.
func validateArgumentTypes(c *opContext, args ast.ArgumentList, decls schema.InputValueList, loc errors.Location, owner, ownerCap func() string) {
	for _, a := range args {
		decl := decls.Get(a.Name.Name)
		if decl == nil {
			c.addErr(a.Name.Loc, "KnownArgumentNames", "Unknown argument %q on %s.", a.Name.Name, owner())
			continue
		}
		if ok, reason := validateValueType(c, a.Value, decl.Type); !ok {
			c.addErr(a.Value.Location(), "ArgumentsOfCorrectType", "Argument %q has invalid value %s.\n%s", decl.Name, describeLiteral(a.Value), reason)
		}
	}
	for _, decl := range decls {
		if _, isNN := decl.Type.(*schema.NonNull); isNN && !decl.HasDefault {
			if _, ok := args.Get(decl.Name); !ok {
				c.addErr(loc, "ProvidedNonNullArguments", "%s argument %q of type %q is required but not provided.", ownerCap(), decl.Name, decl.Type)
			}
		}
	}
}

// validateDirectives checks UniqueDirectivesPerLocation, KnownDirectives
// (both existence and legal location) and recurses each application's
// arguments through validateArgumentTypes.
func validateDirectives(c *opContext, location string, directives ast.DirectiveList) {
	seen := make(nameSet)
	for _, d := range directives {
		name := d.Name.Name
		if loc, ok := seen[name]; ok {
			c.addErrMultiLoc([]errors.Location{loc, d.Name.Loc}, "UniqueDirectivesPerLocation", "The directive %q can only be used once at this location.", name)
		} else {
			seen[name] = d.Name.Loc
		}

		validateArgumentLiterals(c, d.Arguments)

		dd, ok := c.schema.Directives[name]
		if !ok {
			c.addErr(d.Name.Loc, "KnownDirectives", "Unknown directive %q.", name)
			continue
		}

		allowed := false
		for _, l := range dd.Locations {
			if l == location {
				allowed = true
				break
			}
		}
		if !allowed {
			c.addErr(d.Name.Loc, "KnownDirectives", "Directive %q may not be used on %s.", name, location)
		}

		validateArgumentTypes(c, d.Arguments, dd.Args, d.Name.Loc,
			func() string { return fmt.Sprintf("directive %q", "@"+name) },
			func() string { return fmt.Sprintf("Directive %q", "@"+name) },
		)
	}
}
