package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrUnexpectedType = errors.New("unexpected raw value type")

// Raw values are what encoding/json produces when decoding into interface{}: string,
// float64 or json.Number, bool, nil, map[string]interface{} and []interface{}.

func String(raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", unexpected("string", raw)
	}
	return s, nil
}

func Int(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, unexpected("integer", raw)
		}
		return n, nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
		if v != math.Trunc(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, unexpected("integer", raw)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, unexpected("integer", raw)
	}
}

func Bool(raw interface{}) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, unexpected("boolean", raw)
	}
	return b, nil
}

func Map(raw interface{}) (map[string]interface{}, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, unexpected("object", raw)
	}
	return m, nil
}

func List(raw interface{}) ([]interface{}, error) {
	l, ok := raw.([]interface{})
	if !ok {
		return nil, unexpected("array", raw)
	}
	return l, nil
}

func Strings(raw interface{}) ([]string, error) {
	items, err := List(raw)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, err := String(item)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func unexpected(want string, raw interface{}) error {
	return fmt.Errorf("%w: want %s, got %s", ErrUnexpectedType, want, describe(raw))
}

func describe(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return "string " + strconv.Quote(v)
	case json.Number:
		return "number " + v.String()
	case float64:
		return "number " + strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return "boolean " + strconv.FormatBool(v)
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
