package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/sift/internal/dates"
)

// Matches reports whether the tuple satisfies the raw WHERE clause. The
// clause is parsed once; a structural problem in it is the only error
// source. Soft mismatches (missing attributes, unresolvable type
// combinations, empty IN-lists) fold into false.
func Matches(t Tuple, where any, schema Schema) (bool, error) {
	clause, err := ParseWhere(where)
	if err != nil {
		return false, err
	}
	return clause.Matches(t, schema), nil
}

// Matches evaluates the parsed clause against one tuple. An empty clause
// matches every tuple; a populated one is an implicit AND over its entries.
func (w *WhereClause) Matches(t Tuple, schema Schema) bool {
	for _, n := range w.nodes {
		if !n.match(t, schema) {
			return false
		}
	}
	return true
}

func (n *andNode) match(t Tuple, schema Schema) bool {
	for _, b := range n.branches {
		if !b.Matches(t, schema) {
			return false
		}
	}
	return true
}

// An empty OR matches nothing, unlike the empty top-level criterion:
// "or": [] expresses "one of nothing".
func (n *orNode) match(t Tuple, schema Schema) bool {
	for _, b := range n.branches {
		if b.Matches(t, schema) {
			return true
		}
	}
	return false
}

func (n *notNode) match(t Tuple, schema Schema) bool {
	return !n.clause.Matches(t, schema)
}

func (n *likeBlockNode) match(t Tuple, _ Schema) bool {
	for _, p := range n.patterns {
		if !likeString(t[p.attr], p.re) {
			return false
		}
	}
	return true
}

func (n *literalNode) match(t Tuple, schema Schema) bool {
	return matchLiteral(t, n.attr, n.value, schema)
}

func (n *inNode) match(t Tuple, schema Schema) bool {
	for _, v := range n.values {
		if matchLiteral(t, n.attr, v, schema) {
			return true
		}
	}
	return false
}

func (n *modifiersNode) match(t Tuple, schema Schema) bool {
	for _, mod := range n.mods {
		if !matchModifier(t, n.attr, mod, schema) {
			return false
		}
	}
	return true
}

func matchModifier(t Tuple, attr string, mod modifier, schema Schema) bool {
	switch mod.op {
	case modEquals:
		return matchLiteral(t, attr, mod.value, schema)
	case modNot:
		return !matchLiteral(t, attr, mod.value, schema)
	case modNotIn:
		for _, v := range mod.values {
			if matchLiteral(t, attr, v, schema) {
				return false
			}
		}
		return true
	case modStartsWith, modEndsWith, modContains, modLike:
		return likeString(t[attr], mod.re)
	}

	// Ordering comparisons. A missing attribute normalizes like nil, so it
	// compares as the empty string rather than erroring.
	actual, criterion := t[attr], mod.value
	if schema.isDate(attr) {
		actual = coerceDate(actual)
		criterion = coerceDate(criterion)
	}
	switch mod.op {
	case modGreaterThan:
		return Compare(CompareGt, actual, criterion)
	case modLessThan:
		return Compare(CompareLt, actual, criterion)
	case modGreaterThanOrEqual:
		return Compare(CompareGte, actual, criterion)
	case modLessThanOrEqual:
		return Compare(CompareLte, actual, criterion)
	}
	return false
}

// matchLiteral is the equality filter. The attribute must exist on the
// tuple; absence is "no match", never an error. Date-hinted attributes are
// coerced to ISO-8601 strings on both sides, and two numerically parseable
// sides compare as numbers ("3" equals 3).
func matchLiteral(t Tuple, attr string, criterion any, schema Schema) bool {
	if !t.Has(attr) {
		return false
	}
	actual := t[attr]

	if schema.isDate(attr) {
		actual = coerceDate(actual)
		criterion = coerceDate(criterion)
	}

	if an, ok := numericValue(actual); ok {
		if bn, ok := numericValue(criterion); ok {
			return an == bn
		}
	}

	return Compare(CompareEq, actual, criterion)
}

// numericValue resolves native numbers and non-empty numeric strings.
func numericValue(v any) (float64, bool) {
	if n, ok := toNumber(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	}
	return 0, false
}

// coerceDate rewrites date-like values into the canonical ISO-8601 string
// form so the comparator's string/date recovery path sees both sides the
// same way. Values that are not date-like pass through.
func coerceDate(v any) any {
	switch d := v.(type) {
	case time.Time:
		return dates.Format(d)
	case string:
		if dates.IsISO(d) {
			if t, err := dates.Parse(d); err == nil {
				return dates.Format(t)
			}
		}
	}
	return v
}
