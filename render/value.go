// Package render builds the per-family formatting functions embedded in a
// compiled format specification.  It is the rendering engine behind
// [patfmt.Parse]; the numeric families delegate pattern analysis to
// [github.com/xuri/nfp] and implement only the rendering logic on top of the
// resulting token stream.
//
// Every constructor returns a [Func] that captures nothing but immutable
// pattern data, so a compiled formatter may be invoked concurrently and
// repeatedly without locking.
package render

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// CallOptions is the per-invocation configuration forwarded to a compiled
// formatting function.
type CallOptions struct {
	// Locale is a BCP 47 tag ("en", "de-DE").  Empty means unspecified.
	Locale string
	// Currency is an ISO 4217 code ("USD") or a literal symbol ("$").
	Currency string
}

// Func renders a runtime value to its display string.  Failures surface as
// a [*diag.FormatError] result, never as a panic, so one bad cell value can
// never abort a whole report render.
type Func func(v any, opts CallOptions) (string, error)

// toFloat coerces the closed numeric variant set to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toTime coerces a runtime value to a calendar/time value.
func toTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

// Stringify renders a runtime value using its canonical representation.
// The variant set is closed: number, date/time/datetime, boolean, string,
// nil.  Anything else falls back to fmt.Sprint.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return generalNumber(val)
	case float32:
		return generalNumber(float64(val))
	default:
		if f, ok := toFloat(v); ok {
			// Remaining integer variants.
			return strconv.FormatInt(int64(f), 10)
		}
		return fmt.Sprint(v)
	}
}

// generalNumber formats a float64 with no pattern applied:
//   - integer values are rendered without a decimal point
//   - fractional values use Go's shortest-representation float
func generalNumber(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return strconv.FormatFloat(val, 'G', -1, 64)
	}
	if val == math.Trunc(val) && math.Abs(val) < 1e15 {
		return strconv.FormatInt(int64(val), 10)
	}
	return strconv.FormatFloat(val, 'G', -1, 64)
}

// Passthrough returns a formatter that ignores the pattern entirely and
// emits the value's canonical string form.  Used for the custom family.
func Passthrough() Func {
	return func(v any, _ CallOptions) (string, error) {
		return Stringify(v), nil
	}
}
