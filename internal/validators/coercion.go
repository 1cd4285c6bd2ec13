package validators

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToNumber converts a loosely typed value, typically taken from a decoded
// JSON body or a URL, into a float64.
//
//   - numbers are returned as is;
//   - booleans become 1 or 0;
//   - strings are trimmed, "" becomes 0, "0x"-prefixed strings are read as
//     hexadecimal, anything else must parse as a decimal float;
//   - json.Number is parsed as a float;
//   - nil and every other value become NaN.
func ToNumber(value any) float64 {
	if n, ok := value.(json.Number); ok {
		return stringToNumber(n.String())
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return stringToNumber(v.String())
	default:
		return math.NaN()
	}
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// ParseID coerces value with [ToNumber] and returns it as an id.
// It fails with [ErrInvalidID] unless the result passes [IsValidID].
func ParseID(value any) (int64, error) {
	n := ToNumber(value)
	if !IsValidID(n) {
		return 0, ErrInvalidID
	}

	if n >= math.MaxInt64 {
		return 0, ErrIDOutOfRange
	}

	return int64(n), nil
}
