package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	gqlerrors "github.com/lirsacc/graphql/errors"
)

func TestLocationBefore(t *testing.T) {
	a := gqlerrors.Location{Line: 1, Column: 5}
	b := gqlerrors.Location{Line: 1, Column: 6}
	c := gqlerrors.Location{Line: 2, Column: 1}
	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, b.Before(a))
}

func TestQueryErrorMessageIncludesLocations(t *testing.T) {
	err := gqlerrors.NewSyntaxError("unexpected token", gqlerrors.Location{Line: 2, Column: 3}, "")
	assert.Contains(t, err.Error(), "unexpected token")
	assert.Contains(t, err.Error(), "line 2, column 3")
	assert.Equal(t, gqlerrors.KindSyntax, err.Kind)
}

type extendedErr struct{}

func (extendedErr) Error() string { return "boom" }
func (extendedErr) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "BOOM"}
}

func TestNewResolverErrorCapturesExtensions(t *testing.T) {
	qe := gqlerrors.NewResolverError(extendedErr{}, []interface{}{"hero", "name"})
	assert.Equal(t, "boom", qe.Message)
	assert.Equal(t, "BOOM", qe.Extensions["code"])
	assert.Equal(t, []interface{}{"hero", "name"}, qe.Path)
}

func TestNewResolverErrorWithoutExtensions(t *testing.T) {
	qe := gqlerrors.NewResolverError(errors.New("plain"), nil)
	assert.Nil(t, qe.Extensions)
}

func TestMultiErrorMessage(t *testing.T) {
	m := gqlerrors.MultiError{
		gqlerrors.Errorf("first"),
		gqlerrors.Errorf("second"),
	}
	assert.Contains(t, m.Error(), "first")
	assert.Contains(t, m.Error(), "and 1 more errors")
}
