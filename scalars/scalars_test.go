package scalars_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lirsacc/graphql/scalars"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	serialized, err := scalars.UUID.Serialize(id)
	require.NoError(t, err)
	assert.Equal(t, id.String(), serialized)

	parsed, err := scalars.UUID.ParseValue(id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), parsed)

	_, err = scalars.UUID.ParseValue("not-a-uuid")
	assert.Error(t, err)
}

func TestJSONStringRoundTrip(t *testing.T) {
	value := map[string]interface{}{"a": float64(1), "b": "two"}
	serialized, err := scalars.JSONString.Serialize(value)
	require.NoError(t, err)

	parsed, err := scalars.JSONString.ParseValue(serialized)
	require.NoError(t, err)
	assert.Equal(t, value, parsed)

	_, err = scalars.JSONString.ParseValue("{not json")
	assert.Error(t, err)
}

func TestDateTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 6, 12, 30, 0, 0, time.UTC)
	serialized, err := scalars.DateTime.Serialize(now)
	require.NoError(t, err)
	assert.Equal(t, now.Format(time.RFC3339), serialized)

	_, err = scalars.DateTime.ParseValue("not-a-time")
	assert.Error(t, err)

	parsed, err := scalars.DateTime.ParseValue(serialized.(string))
	require.NoError(t, err)
	assert.Equal(t, serialized, parsed)
}

func TestDateAndTimeUseNarrowerLayouts(t *testing.T) {
	_, err := scalars.Date.ParseValue("2026-08-06")
	require.NoError(t, err)
	_, err = scalars.Date.ParseValue("2026-08-06T00:00:00Z")
	assert.Error(t, err)

	_, err = scalars.Time.ParseValue("12:30:00Z")
	require.NoError(t, err)
}

func TestBase64StringRoundTrip(t *testing.T) {
	serialized, err := scalars.Base64String.Serialize([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", serialized)

	_, err = scalars.Base64String.ParseValue("not base64!!")
	assert.Error(t, err)
}

func TestRegexTypeRejectsNonMatchingValues(t *testing.T) {
	slug, err := scalars.RegexType(`^[a-z0-9-]+$`)
	require.NoError(t, err)

	v, err := slug.Serialize("droid-42")
	require.NoError(t, err)
	assert.Equal(t, "droid-42", v)

	_, err = slug.Serialize("Not A Slug")
	assert.Error(t, err)

	_, err = scalars.RegexType("(unterminated")
	assert.Error(t, err)
}
