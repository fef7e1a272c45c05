/*
# Module: types/coerce.go
Lenient numeric coercion for loosely-typed store attributes.

## Linked Modules
- [types/location](./location.go) - Data shapes carrying untyped fields

## Tags
data-types, coercion, numeric

## Exports
EpochMillis, Coordinate

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/coerce.go" ;
    code:description "Lenient numeric coercion for loosely-typed store attributes" ;
    code:linksTo [
        code:name "types/location" ;
        code:path "./location.go" ;
        code:relationship "Data shapes carrying untyped fields"
    ] ;
    code:exports :EpochMillis, :Coordinate ;
    code:tags "data-types", "coercion", "numeric" .
<!-- End LinkedDoc RDF -->
*/
package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// EpochMillis coerces a store attribute to integer epoch-milliseconds.
// Absent or malformed values coerce to 0, which callers treat as
// "unknown/never".
func EpochMillis(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case int64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
		return 0
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// Coordinate coerces a store attribute to a finite float64 decimal degree.
// The second return is false when the value is absent, non-numeric, or not
// finite; in that case the whole resolution must fail rather than fall back
// to a stale sample.
func Coordinate(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
