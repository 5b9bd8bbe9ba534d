package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
)

// Document is a parsed JSON configuration object. Values are one of
// map[string]any, []any, string, json.Number, bool or nil.
type Document map[string]any

// Parse decodes a single JSON object. Numbers are kept as json.Number so
// large integers survive a round trip.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	obj, ok := Object(v)
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %s", Kind(v))
	}
	return Document(obj), nil
}

// Object returns v as a JSON object.
func Object(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case Document:
		return map[string]any(o), true
	default:
		return nil, false
	}
}

// List returns v as a JSON array, or nil if it is not one.
func List(v any) []any {
	l, _ := v.([]any)
	return l
}

// String returns v as a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Kind names the JSON type of v for error messages.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, Document:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Int coerces v to an integer. Numbers truncate toward zero, strings use
// their optionally signed leading digits and anything else is 0. Values
// outside the int64 range saturate; use BigInt to compare them exactly.
func Int(v any) int64 {
	b := BigInt(v)
	switch {
	case b.IsInt64():
		return b.Int64()
	case b.Sign() > 0:
		return math.MaxInt64
	default:
		return math.MinInt64
	}
}

// BigInt coerces v like Int without a size limit, so distinct oversized
// values stay distinct.
func BigInt(v any) *big.Int {
	switch n := v.(type) {
	case json.Number:
		if i, ok := new(big.Int).SetString(n.String(), 10); ok {
			return i
		}
		f, err := n.Float64()
		if err != nil {
			return new(big.Int)
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case int:
		return big.NewInt(int64(n))
	case int64:
		return big.NewInt(n)
	case string:
		return leadingInt(n)
	default:
		return new(big.Int)
	}
}

func truncate(f float64) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return new(big.Int)
	}
	i, _ := big.NewFloat(f).Int(nil)
	return i
}

func leadingInt(s string) *big.Int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return new(big.Int)
	}
	i, ok := new(big.Int).SetString(s[:end], 10)
	if !ok {
		return new(big.Int)
	}
	return i
}

// Clone returns a deep copy of d.
func Clone(d Document) Document {
	if d == nil {
		return nil
	}
	return Document(cloneValue(map[string]any(d)).(map[string]any))
}

func cloneValue(v any) any {
	if obj, ok := Object(v); ok {
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[k] = cloneValue(val)
		}
		return out
	}
	if l, ok := v.([]any); ok {
		out := make([]any, len(l))
		for i, val := range l {
			out[i] = cloneValue(val)
		}
		return out
	}
	return v
}

// Plain converts json.Number values to int64 or float64 throughout v so
// encoders other than encoding/json see real numbers.
func Plain(v any) any {
	if obj, ok := Object(v); ok {
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[k] = Plain(val)
		}
		return out
	}
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Plain(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
