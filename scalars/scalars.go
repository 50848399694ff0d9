// Package scalars implements spec §6's "additional provided extensions":
// custom scalar coercions a caller can register via
// schema.AdditionalScalars but that are never auto-applied. Grounded on
// spec §6's exact list (UUID, JSONString, DateTime/Date/Time,
// Base64String, RegexType) — no pack repo ships a reusable GraphQL scalar
// library for any of these, so each is stdlib-plus-google/uuid, matching
// how every example repo implements custom scalars inline.
package scalars

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/lirsacc/graphql/schema"
)

// UUID serializes/parses github.com/google/uuid.UUID values, the pack's
// recurring choice for identifier scalars.
var UUID schema.ScalarCoercion = uuidCoercion{}

type uuidCoercion struct{}

func (uuidCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case uuid.UUID:
		return v.String(), nil
	case string:
		if _, err := uuid.Parse(v); err != nil {
			return nil, fmt.Errorf("UUID cannot represent value: %v", v)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("UUID cannot represent non-UUID value: %v", v)
	}
}

func (uuidCoercion) ParseValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("UUID must be a string")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return id.String(), nil
}

// JSONString round-trips an arbitrary JSON-encodable value through its
// string representation — useful for opaque payload fields a schema
// doesn't want to model structurally.
var JSONString schema.ScalarCoercion = jsonStringCoercion{}

type jsonStringCoercion struct{}

func (jsonStringCoercion) Serialize(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("JSONString cannot serialize value: %w", err)
	}
	return string(b), nil
}

func (jsonStringCoercion) ParseValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("JSONString must be a string")
	}
	var out interface{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON string: %w", err)
	}
	return out, nil
}

func timeCoercion(layout, name string) schema.ScalarCoercion {
	return isoCoercion{layout: layout, name: name}
}

type isoCoercion struct {
	layout string
	name   string
}

func (c isoCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case time.Time:
		return v.Format(c.layout), nil
	case string:
		if _, err := time.Parse(c.layout, v); err != nil {
			return nil, fmt.Errorf("%s cannot represent value: %v", c.name, v)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%s cannot represent non-time value: %v", c.name, v)
	}
}

func (c isoCoercion) ParseValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be a string", c.name)
	}
	t, err := time.Parse(c.layout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", c.name, s, err)
	}
	return t.Format(c.layout), nil
}

// DateTime, Date and Time serialize/parse ISO 8601 (RFC 3339) textual
// representations at three different granularities.
var (
	DateTime schema.ScalarCoercion = timeCoercion(time.RFC3339, "DateTime")
	Date     schema.ScalarCoercion = timeCoercion("2006-01-02", "Date")
	Time     schema.ScalarCoercion = timeCoercion("15:04:05Z07:00", "Time")
)

// Base64String serializes/parses standard base64-encoded binary payloads.
var Base64String schema.ScalarCoercion = base64Coercion{}

type base64Coercion struct{}

func (base64Coercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(v), nil
	case string:
		if _, err := base64.StdEncoding.DecodeString(v); err != nil {
			return nil, fmt.Errorf("Base64String cannot represent value: %v", v)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("Base64String cannot represent non-binary value: %v", v)
	}
}

func (base64Coercion) ParseValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("Base64String must be a string")
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return nil, fmt.Errorf("invalid base64 string: %w", err)
	}
	return s, nil
}

// RegexType builds a string scalar coercion that additionally rejects any
// value not matching pattern — e.g. for constrained identifiers like
// slugs or currency codes.
func RegexType(pattern string) (schema.ScalarCoercion, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid RegexType pattern %q: %w", pattern, err)
	}
	return regexCoercion{re: re}, nil
}

type regexCoercion struct{ re *regexp.Regexp }

func (c regexCoercion) Serialize(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok || !c.re.MatchString(s) {
		return nil, fmt.Errorf("value does not match pattern %q: %v", c.re.String(), v)
	}
	return s, nil
}

func (c regexCoercion) ParseValue(v interface{}) (interface{}, error) {
	return c.Serialize(v)
}
