// Package coerce decides whether raw design-tool strings represent booleans
// or numbers and converts them. The rules are fixed: no locale handling, no
// case folding.
package coerce

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsBoolean reports whether s is exactly "true" or "false".
func IsBoolean(s string) bool {
	return s == "true" || s == "false"
}

// IsNumber reports whether s is a plain decimal literal with a finite value.
func IsNumber(s string) bool {
	if !numberPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// AsBoolean returns true only for the literal "true".
func AsBoolean(s string) bool {
	return s == "true"
}

// AsNumber parses s, returning NaN when s is not a number.
func AsNumber(s string) float64 {
	if !IsNumber(s) {
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// FormatNumber renders f in its shortest decimal form ("3", "1.5", "NaN").
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Text stringifies a raw scalar decoded from a host document.
func Text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case interface{ String() string }:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
