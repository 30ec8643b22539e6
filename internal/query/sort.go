package query

import (
	"sort"
	"strings"
)

// SortKey orders tuples by one attribute. Keys earlier in a SortVector take
// precedence; later keys break ties.
type SortKey struct {
	Attr       string
	Descending bool
}

// SortVector is an ordered multi-key sort specification.
type SortVector []SortKey

// RankFunc decides whether an attribute value participates in ordering.
// Unranked values sort after ranked ones regardless of direction ("nulls
// last"). present is the tuple's attribute-presence state.
type RankFunc func(value any, present bool) bool

// defaultRank treats a value as ranked unless it is nil or absent.
func defaultRank(value any, present bool) bool {
	return present && value != nil
}

// ParseSort resolves a raw sort clause into a SortVector. Accepted forms:
//
//   - a SortVector (returned as-is)
//   - a string: comma-separated keys, "-attr" or "attr desc" for descending
//   - a sequence whose elements are strings or single-entry mappings
//   - a single-entry mapping of attribute to direction
//
// Directions are 1/-1 or the words asc/ascending/desc/descending,
// case-insensitive. Multi-entry mappings are rejected: decoded Go maps lose
// key order, and key order is tie-break precedence.
func ParseSort(raw any) (SortVector, error) {
	switch s := raw.(type) {
	case nil:
		return nil, nil
	case SortVector:
		return s, nil
	case string:
		return parseSortString(s)
	case []any:
		var vec SortVector
		for _, elem := range s {
			sub, err := ParseSort(elem)
			if err != nil {
				return nil, err
			}
			vec = append(vec, sub...)
		}
		return vec, nil
	}

	if m, ok := asTupleMap(raw); ok {
		if len(m) > 1 {
			return nil, &SortClauseError{Fragment: raw, Message: "mappings lose key order; use a sequence of single-entry mappings"}
		}
		for attr, dir := range m {
			desc, err := parseDirection(dir)
			if err != nil {
				return nil, err
			}
			return SortVector{{Attr: attr, Descending: desc}}, nil
		}
		return nil, nil
	}

	return nil, &SortClauseError{Fragment: raw, Message: "unsupported sort clause shape"}
}

func parseSortString(s string) (SortVector, error) {
	var vec SortVector
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := SortKey{}
		if attr, dir, found := strings.Cut(part, " "); found {
			desc, err := parseDirection(strings.TrimSpace(dir))
			if err != nil {
				return nil, err
			}
			key.Attr, key.Descending = strings.TrimSpace(attr), desc
		} else if rest, ok := strings.CutPrefix(part, "-"); ok {
			key.Attr, key.Descending = rest, true
		} else {
			key.Attr = part
		}
		if key.Attr == "" {
			return nil, &SortClauseError{Fragment: s, Message: "empty sort attribute"}
		}
		vec = append(vec, key)
	}
	return vec, nil
}

func parseDirection(dir any) (bool, error) {
	if n, ok := toNumber(dir); ok {
		switch n {
		case 1:
			return false, nil
		case -1:
			return true, nil
		}
		return false, &SortClauseError{Fragment: dir, Message: "direction must be 1 or -1"}
	}
	if s, ok := dir.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "asc", "ascending", "1":
			return false, nil
		case "desc", "descending", "-1":
			return true, nil
		}
	}
	return false, &SortClauseError{Fragment: dir, Message: "unrecognized sort direction"}
}

// Sort stably orders tuples by the sort clause. rank defaults to "ranked
// unless nil or absent", which places missing values last in either
// direction. The input slice is left untouched.
func Sort(tuples []Tuple, sortClause any, rank RankFunc) ([]Tuple, error) {
	vector, err := ParseSort(sortClause)
	if err != nil {
		return nil, err
	}
	if rank == nil {
		rank = defaultRank
	}

	out := make([]Tuple, len(tuples))
	copy(out, tuples)

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range vector {
			iVal, iPresent := out[i][key.Attr]
			jVal, jPresent := out[j][key.Attr]

			iRanked := rank(iVal, iPresent)
			jRanked := rank(jVal, jPresent)
			if iRanked != jRanked {
				// The unranked side sorts after, direction notwithstanding.
				return iRanked
			}
			if !iRanked {
				continue
			}

			cmp := compareValues(iVal, jVal)
			if cmp != 0 {
				if key.Descending {
					return cmp > 0
				}
				return cmp < 0
			}
			// Equal on this key; cascade to the next.
		}
		return false
	})
	return out, nil
}
