package resolvers_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/resolvers"
)

type searchArgs struct {
	Term  string
	Limit int32 `graphql:"limit"`
}

func TestPackArgsBindsStructByNameAndTag(t *testing.T) {
	args := map[string]interface{}{"Term": "r2d2", "limit": int32(5)}
	v, err := resolvers.PackArgs(args, reflect.TypeOf(searchArgs{}))
	require.NoError(t, err)
	packed := v.Interface().(searchArgs)
	assert.Equal(t, "r2d2", packed.Term)
	assert.EqualValues(t, 5, packed.Limit)
}

func TestPackArgsWidensNumericTypes(t *testing.T) {
	type widened struct{ Limit int }
	args := map[string]interface{}{"Limit": int32(7)}
	v, err := resolvers.PackArgs(args, reflect.TypeOf(widened{}))
	require.NoError(t, err)
	assert.Equal(t, 7, v.Interface().(widened).Limit)
}

func TestPackArgsSupportsPointerStructAndMapPassthrough(t *testing.T) {
	type opt struct{ Name string }
	args := map[string]interface{}{"Name": "Leia"}

	v, err := resolvers.PackArgs(args, reflect.TypeOf(&opt{}))
	require.NoError(t, err)
	assert.Equal(t, "Leia", v.Interface().(*opt).Name)

	m, err := resolvers.PackArgs(args, reflect.TypeOf(map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, "Leia", m.Interface().(map[string]interface{})["Name"])
}

func TestPackArgsRejectsNonStructNonMapType(t *testing.T) {
	_, err := resolvers.PackArgs(nil, reflect.TypeOf(42))
	require.Error(t, err)
}
