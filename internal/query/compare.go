package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/sift/internal/dates"
)

// CompareOp is a comparison operator.
type CompareOp int

const (
	CompareEq  CompareOp = iota // =
	CompareNeq                  // !=
	CompareLt                   // <
	CompareLte                  // <=
	CompareGt                   // >
	CompareGte                  // >=
)

func (op CompareOp) String() string {
	switch op {
	case CompareNeq:
		return "!="
	case CompareLt:
		return "<"
	case CompareLte:
		return "<="
	case CompareGt:
		return ">"
	case CompareGte:
		return ">="
	default:
		return "="
	}
}

// toNumber converts native numeric types. Strings are not numbers here;
// numeric-string equivalence is resolved pairwise in normalizePair so that
// "Foo" vs "foo" stays a string comparison.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
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
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

type cmpKind int

const (
	cmpNumber cmpKind = iota
	cmpString
	cmpTime
)

type cmpVal struct {
	kind cmpKind
	num  float64
	s    string
	ms   int64 // epoch milliseconds, valid when kind == cmpTime
}

// normalize maps a raw value into the number/string/time normal form.
// nil stands in for both null and undefined and becomes the empty string;
// anything that is not a number or a time is stringified via its natural
// string conversion.
func normalize(v any) cmpVal {
	if v == nil {
		return cmpVal{kind: cmpString, s: ""}
	}
	if t, ok := v.(time.Time); ok {
		return cmpVal{kind: cmpTime, ms: dates.EpochMillis(t)}
	}
	if n, ok := toNumber(v); ok {
		return cmpVal{kind: cmpNumber, num: n}
	}
	if s, ok := v.(string); ok {
		return cmpVal{kind: cmpString, s: s}
	}
	if b, ok := v.(bool); ok {
		return cmpVal{kind: cmpString, s: strconv.FormatBool(b)}
	}
	return cmpVal{kind: cmpString, s: fmt.Sprint(v)}
}

func (v cmpVal) stringForm() string {
	switch v.kind {
	case cmpNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case cmpTime:
		return dates.Format(time.UnixMilli(v.ms).UTC())
	default:
		return v.s
	}
}

// normalizePair turns two heterogeneous values into a comparable pair of the
// same kind. The pipeline is total: every value pair resolves.
func normalizePair(a, b any) (cmpVal, cmpVal) {
	av := normalize(a)
	bv := normalize(b)

	// Both dates: compare by epoch milliseconds, no stringification.
	if av.kind == cmpTime && bv.kind == cmpTime {
		return av, bv
	}

	// A lone date collapses to its ISO-8601 string form.
	if av.kind == cmpTime {
		av = cmpVal{kind: cmpString, s: av.stringForm()}
	}
	if bv.kind == cmpTime {
		bv = cmpVal{kind: cmpString, s: bv.stringForm()}
	}

	if av.kind == cmpString && bv.kind == cmpString {
		// Two ISO-shaped strings recover date semantics.
		if dates.IsISO(av.s) && dates.IsISO(bv.s) {
			at, aerr := dates.Parse(av.s)
			bt, berr := dates.Parse(bv.s)
			if aerr == nil && berr == nil {
				return cmpVal{kind: cmpTime, ms: dates.EpochMillis(at)},
					cmpVal{kind: cmpTime, ms: dates.EpochMillis(bt)}
			}
		}
		// Case-insensitive string comparison.
		av.s = strings.ToLower(av.s)
		bv.s = strings.ToLower(bv.s)
		return av, bv
	}

	// Mixed number and string: a numeric string joins the number side,
	// otherwise the number is stringified.
	if av.kind == cmpNumber && bv.kind == cmpString {
		if n, err := strconv.ParseFloat(strings.TrimSpace(bv.s), 64); err == nil {
			return av, cmpVal{kind: cmpNumber, num: n}
		}
		return cmpVal{kind: cmpString, s: av.stringForm()}, cmpVal{kind: cmpString, s: strings.ToLower(bv.s)}
	}
	if av.kind == cmpString && bv.kind == cmpNumber {
		if n, err := strconv.ParseFloat(strings.TrimSpace(av.s), 64); err == nil {
			return cmpVal{kind: cmpNumber, num: n}, bv
		}
		return cmpVal{kind: cmpString, s: strings.ToLower(av.s)}, cmpVal{kind: cmpString, s: bv.stringForm()}
	}

	return av, bv
}

// compareValues returns -1, 0, or 1 for a relative to b after
// normalization. Shared by the comparator, the evaluator, and the sort
// stage so all three agree on ordering.
func compareValues(a, b any) int {
	av, bv := normalizePair(a, b)

	switch av.kind {
	case cmpNumber:
		switch {
		case av.num < bv.num:
			return -1
		case av.num > bv.num:
			return 1
		}
		return 0
	case cmpTime:
		switch {
		case av.ms < bv.ms:
			return -1
		case av.ms > bv.ms:
			return 1
		}
		return 0
	default:
		switch {
		case av.s < bv.s:
			return -1
		case av.s > bv.s:
			return 1
		}
		return 0
	}
}

// Compare applies op to a and b under the normalization pipeline.
// Normalization is total, so every value pair yields a result.
func Compare(op CompareOp, a, b any) bool {
	c := compareValues(a, b)
	switch op {
	case CompareEq:
		return c == 0
	case CompareNeq:
		return c != 0
	case CompareLt:
		return c < 0
	case CompareLte:
		return c <= 0
	case CompareGt:
		return c > 0
	case CompareGte:
		return c >= 0
	}
	return false
}
