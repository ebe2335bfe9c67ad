// Package property normalizes the loosely-typed property records returned by
// upstream chemistry databases. Every read of a Bag goes through Get or Lookup
// so that missing, empty and "N/A" values are treated as unknown, never zero.
package property

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Unavailable is the sentinel upstream sources use for a value they do not have.
const Unavailable = "N/A"

// Bag maps a property name (e.g. "MolecularWeight") to a number, a string,
// or nothing. A Bag is built fresh per compound and never shared.
type Bag map[string]any

// Lookup returns the normalized value for key and whether one was found.
// Absent keys, nil, "" and "N/A" report false. Strings containing a digit
// are parsed as float64 when possible and returned unchanged otherwise.
func Lookup(b Bag, key string) (any, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return nil, false
	}

	s, isString := v.(string)
	if !isString {
		return v, true
	}
	if s == "" || s == Unavailable {
		return nil, false
	}
	if containsDigit(s) {
		// Out-of-range input still parses, as ±Inf.
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f, true
		}
	}
	return s, true
}

// Get returns the normalized value for key, or def when Lookup finds nothing.
func Get(b Bag, key string, def any) any {
	if v, ok := Lookup(b, key); ok {
		return v
	}
	return def
}

// Float reads key as a float64, defaulting to 0 when the value is unknown.
// Values that cannot be coerced (non-numeric strings, NaN, nested objects)
// return an error.
func Float(b Bag, key string) (float64, error) {
	f, err := toFloat(Get(b, key, 0.0))
	if err != nil {
		return 0, eris.Wrapf(err, "property: %s", key)
	}
	if math.IsNaN(f) {
		return 0, eris.Errorf("property: %s is NaN", key)
	}
	return f, nil
}

// Int reads key as an int, defaulting to 0 when the value is unknown.
// Fractional numbers are truncated toward zero; strings and non-finite
// numbers return an error.
func Int(b Bag, key string) (int, error) {
	v := Get(b, key, 0)
	if _, isString := v.(string); isString {
		return 0, eris.Errorf("property: %s is not an integer: %q", key, v)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, eris.Wrapf(err, "property: %s", key)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, eris.Errorf("property: %s is not finite", key)
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, eris.Errorf("property: %s overflows int", key)
	}
	return int(f), nil
}

// Text renders the value for key as display text, or def when unknown.
func Text(b Bag, key, def string) string {
	v, ok := Lookup(b, key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return def
		}
		return string(raw)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, eris.Errorf("not a number: %q", n)
		}
		return f, nil
	default:
		return 0, eris.Errorf("unsupported type %T", v)
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
