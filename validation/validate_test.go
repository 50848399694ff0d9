package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/internal/parser"
	"github.com/lirsacc/graphql/schema"
	"github.com/lirsacc/graphql/validation"
)

const testSchema = `
	type Query {
		hero(episode: Episode): Character
		human(id: ID!): Human
	}

	interface Character {
		id: ID!
		name: String!
	}

	type Human implements Character {
		id: ID!
		name: String!
		homePlanet: String
	}

	enum Episode { NEWHOPE, EMPIRE, JEDI }
`

func mustBuildSchema(t *testing.T) *schema.Schema {
	t.Helper()
	doc, perr := parser.Parse(testSchema, parser.AllowTypeSystem())
	require.Nil(t, perr)
	s, err := schema.Build(doc)
	require.NoError(t, err)
	return s
}

func validateQuery(t *testing.T, query string, variables map[string]interface{}) []string {
	t.Helper()
	s := mustBuildSchema(t)
	doc, perr := parser.Parse(query)
	require.Nil(t, perr)
	errs := validation.Validate(s, doc, variables, 0)
	rules := make([]string, len(errs))
	for i, e := range errs {
		rules[i] = e.Rule
	}
	return rules
}

func TestValidateAcceptsWellFormedQuery(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { id name } }`, nil)
	assert.Empty(t, rules)
}

func TestValidateRejectsUnknownField(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { id nope } }`, nil)
	assert.Contains(t, rules, "FieldsOnCorrectType")
}

func TestValidateRejectsUnknownArgument(t *testing.T) {
	rules := validateQuery(t, `{ hero(notAnArg: JEDI) { id } }`, nil)
	assert.Contains(t, rules, "KnownArgumentNames")
}

func TestValidateRejectsMissingRequiredArgument(t *testing.T) {
	rules := validateQuery(t, `{ human { id } }`, nil)
	assert.Contains(t, rules, "ProvidedNonNullArguments")
}

func TestValidateRejectsScalarWithSubSelection(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { id { nope } } }`, nil)
	assert.Contains(t, rules, "ScalarLeafs")
}

func TestValidateRejectsCompositeWithoutSubSelection(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) }`, nil)
	assert.Contains(t, rules, "ScalarLeafs")
}

func TestValidateRejectsUnknownFragment(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { ...Missing } }`, nil)
	assert.Contains(t, rules, "KnownFragmentNames")
}

func TestValidateRejectsUnusedFragment(t *testing.T) {
	rules := validateQuery(t, `
		fragment CharacterFields on Character { id name }
		{ hero(episode: JEDI) { id } }
	`, nil)
	assert.Contains(t, rules, "NoUnusedFragments")
}

func TestValidateRejectsFragmentCycle(t *testing.T) {
	rules := validateQuery(t, `
		fragment A on Character { ...B }
		fragment B on Character { ...A }
		{ hero(episode: JEDI) { ...A } }
	`, nil)
	assert.Contains(t, rules, "NoFragmentCycles")
}

func TestValidateRejectsUndefinedVariable(t *testing.T) {
	rules := validateQuery(t, `{ human(id: $id) { id } }`, nil)
	assert.Contains(t, rules, "NoUndefinedVariables")
}

func TestValidateRejectsUnusedVariable(t *testing.T) {
	rules := validateQuery(t, `query ($id: ID!) { human(id: "1") { id } }`, nil)
	assert.Contains(t, rules, "NoUnusedVariables")
}

func TestValidateAcceptsUsedVariable(t *testing.T) {
	rules := validateQuery(t, `query ($id: ID!) { human(id: $id) { id } }`, map[string]interface{}{"id": "1000"})
	assert.Empty(t, rules)
}

func TestValidateRejectsIncompatibleVariableType(t *testing.T) {
	rules := validateQuery(t, `query ($ep: String) { hero(episode: $ep) { id } }`, nil)
	assert.Contains(t, rules, "VariablesInAllowedPosition")
}

func TestValidateRejectsDuplicateDirective(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { id @skip(if: true) @skip(if: false) } }`, nil)
	assert.Contains(t, rules, "UniqueDirectivesPerLocation")
}

func TestValidateRejectsUnknownDirective(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: JEDI) { id @bogus } }`, nil)
	assert.Contains(t, rules, "KnownDirectives")
}

func TestValidateRejectsMisplacedDirective(t *testing.T) {
	rules := validateQuery(t, `query @skip(if: true) { hero(episode: JEDI) { id } }`, nil)
	assert.Contains(t, rules, "KnownDirectives")
}

func TestValidateRejectsInvalidEnumLiteral(t *testing.T) {
	rules := validateQuery(t, `{ hero(episode: NOTANEPISODE) { id } }`, nil)
	assert.Contains(t, rules, "ArgumentsOfCorrectType")
}

func TestValidateMaxDepth(t *testing.T) {
	s := mustBuildSchema(t)
	doc, perr := parser.Parse(`{ hero(episode: JEDI) { id } }`)
	require.Nil(t, perr)
	errs := validation.Validate(s, doc, nil, 1)
	var rules []string
	for _, e := range errs {
		rules = append(rules, e.Rule)
	}
	assert.Contains(t, rules, "MaxDepthExceeded")
}

func TestValidateMaxComplexityAllowsQueryUnderLimit(t *testing.T) {
	s := mustBuildSchema(t)
	doc, perr := parser.Parse(`{ human(id: "1000") { id name homePlanet } }`)
	require.Nil(t, perr)

	// human(1) + id(2) + name(3) + homePlanet(4) = complexity 4.
	errs := validation.ValidateWithOptions(s, doc, nil, validation.Options{MaxComplexity: 4})
	assert.Empty(t, errs)
}

func TestValidateMaxComplexityRejectsQueryOverLimit(t *testing.T) {
	s := mustBuildSchema(t)
	doc, perr := parser.Parse(`{ human(id: "1000") { id name homePlanet } }`)
	require.Nil(t, perr)

	errs := validation.ValidateWithOptions(s, doc, nil, validation.Options{MaxComplexity: 3})
	var rules []string
	for _, e := range errs {
		rules = append(rules, e.Rule)
	}
	assert.Contains(t, rules, "MaxComplexityExceeded")
}

func TestValidateMaxComplexityCountsFragmentSpreadFieldsOnce(t *testing.T) {
	s := mustBuildSchema(t)
	doc, perr := parser.Parse(`
		{ human(id: "1000") { ...Names } }
		fragment Names on Human { id name }
	`)
	require.Nil(t, perr)

	// human(1) + fragment spread's id(2) + name(3) = complexity 3.
	errs := validation.ValidateWithOptions(s, doc, nil, validation.Options{MaxComplexity: 3})
	assert.Empty(t, errs)

	errs = validation.ValidateWithOptions(s, doc, nil, validation.Options{MaxComplexity: 2})
	require.NotEmpty(t, errs)
}
