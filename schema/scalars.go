package schema

import (
	"fmt"
	"math"
	"strconv"
)

// intCoercion implements the spec's Int serialization/coercion rules: only
// values representable as a 32-bit signed integer are accepted, matching
// every example repo's builtin Int scalar.
type intCoercion struct{}

func (intCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case int32:
		return v, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent value: %v (out of 32-bit range)", v)
		}
		return int32(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent value: %v (out of 32-bit range)", v)
		}
		return int32(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent value: %v", v)
		}
		return int32(v), nil
	default:
		return nil, fmt.Errorf("Int cannot represent non-integer value: %v", v)
	}
}

func (c intCoercion) ParseValue(v interface{}) (interface{}, error) { return c.Serialize(v) }

type floatCoercion struct{}

func (floatCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return nil, fmt.Errorf("Float cannot represent non-numeric value: %v", v)
	}
}

func (c floatCoercion) ParseValue(v interface{}) (interface{}, error) { return c.Serialize(v) }

type stringCoercion struct{}

func (stringCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, fmt.Errorf("String cannot represent non-string value: %v", v)
	}
}

func (c stringCoercion) ParseValue(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("String cannot represent non-string value: %v", v)
	}
	return s, nil
}

type booleanCoercion struct{}

func (booleanCoercion) Serialize(v interface{}) (interface{}, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("Boolean cannot represent non-boolean value: %v", v)
	}
	return b, nil
}

func (c booleanCoercion) ParseValue(v interface{}) (interface{}, error) { return c.Serialize(v) }

// idCoercion accepts either a string or an integer and always serializes to
// string, matching the spec's "ID" rules (and every example repo's ID
// scalar).
type idCoercion struct{}

func (idCoercion) Serialize(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int, int32, int64:
		return fmt.Sprintf("%d", v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, fmt.Errorf("ID cannot represent value: %v", v)
	}
}

func (idCoercion) ParseValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int, int32, int64:
		return fmt.Sprintf("%d", v), nil
	default:
		return nil, fmt.Errorf("ID cannot represent value: %v", v)
	}
}

// parseIntLiteralText validates an IntValue's raw text as a 32-bit Int.
// Nothing in this module calls it; literal coercion goes through
// ScalarCoercion.ParseValue instead.
func parseIntLiteralText(text string) (int32, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid Int literal %q", text)
	}
	return int32(n), nil
}
